// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: fms/v1/fms.proto

package fmsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SyncSheetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Async         bool                   `protobuf:"varint,1,opt,name=async,proto3" json:"async,omitempty"`
	TraceId       string                 `protobuf:"bytes,2,opt,name=trace_id,json=traceId,proto3" json:"trace_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncSheetRequest) Reset() {
	*x = SyncSheetRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncSheetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncSheetRequest) ProtoMessage() {}

func (x *SyncSheetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncSheetRequest.ProtoReflect.Descriptor instead.
func (*SyncSheetRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{0}
}

func (x *SyncSheetRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

func (x *SyncSheetRequest) GetTraceId() string {
	if x != nil {
		return x.TraceId
	}
	return ""
}

type SyncSheetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	RowsFetched   int32                  `protobuf:"varint,2,opt,name=rows_fetched,json=rowsFetched,proto3" json:"rows_fetched,omitempty"`
	RowsUpserted  int32                  `protobuf:"varint,3,opt,name=rows_upserted,json=rowsUpserted,proto3" json:"rows_upserted,omitempty"`
	TasksUpserted int32                  `protobuf:"varint,4,opt,name=tasks_upserted,json=tasksUpserted,proto3" json:"tasks_upserted,omitempty"`
	ElapsedMs     int64                  `protobuf:"varint,5,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncSheetResponse) Reset() {
	*x = SyncSheetResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncSheetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncSheetResponse) ProtoMessage() {}

func (x *SyncSheetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncSheetResponse.ProtoReflect.Descriptor instead.
func (*SyncSheetResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{1}
}

func (x *SyncSheetResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *SyncSheetResponse) GetRowsFetched() int32 {
	if x != nil {
		return x.RowsFetched
	}
	return 0
}

func (x *SyncSheetResponse) GetRowsUpserted() int32 {
	if x != nil {
		return x.RowsUpserted
	}
	return 0
}

func (x *SyncSheetResponse) GetTasksUpserted() int32 {
	if x != nil {
		return x.TasksUpserted
	}
	return 0
}

func (x *SyncSheetResponse) GetElapsedMs() int64 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

type JobRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RowIndex      int32                  `protobuf:"varint,2,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	SourceDate    string                 `protobuf:"bytes,3,opt,name=source_date,json=sourceDate,proto3" json:"source_date,omitempty"`
	OtdType       string                 `protobuf:"bytes,4,opt,name=otd_type,json=otdType,proto3" json:"otd_type,omitempty"`
	JobNumber     string                 `protobuf:"bytes,5,opt,name=job_number,json=jobNumber,proto3" json:"job_number,omitempty"`
	OrderBy       string                 `protobuf:"bytes,6,opt,name=order_by,json=orderBy,proto3" json:"order_by,omitempty"`
	CompanyName   string                 `protobuf:"bytes,7,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	BoxType       string                 `protobuf:"bytes,8,opt,name=box_type,json=boxType,proto3" json:"box_type,omitempty"`
	BoxStyle      string                 `protobuf:"bytes,9,opt,name=box_style,json=boxStyle,proto3" json:"box_style,omitempty"`
	BoxColor      string                 `protobuf:"bytes,10,opt,name=box_color,json=boxColor,proto3" json:"box_color,omitempty"`
	PrintingType  string                 `protobuf:"bytes,11,opt,name=printing_type,json=printingType,proto3" json:"printing_type,omitempty"`
	PrintingColor string                 `protobuf:"bytes,12,opt,name=printing_color,json=printingColor,proto3" json:"printing_color,omitempty"`
	Specification string                 `protobuf:"bytes,13,opt,name=specification,proto3" json:"specification,omitempty"`
	City          string                 `protobuf:"bytes,14,opt,name=city,proto3" json:"city,omitempty"`
	Quantity      int32                  `protobuf:"varint,15,opt,name=quantity,proto3" json:"quantity,omitempty"`
	LeadTime      string                 `protobuf:"bytes,16,opt,name=lead_time,json=leadTime,proto3" json:"lead_time,omitempty"`
	RepeatNew     string                 `protobuf:"bytes,17,opt,name=repeat_new,json=repeatNew,proto3" json:"repeat_new,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobRecord) Reset() {
	*x = JobRecord{}
	mi := &file_fms_v1_fms_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobRecord) ProtoMessage() {}

func (x *JobRecord) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobRecord.ProtoReflect.Descriptor instead.
func (*JobRecord) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{2}
}

func (x *JobRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobRecord) GetRowIndex() int32 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

func (x *JobRecord) GetSourceDate() string {
	if x != nil {
		return x.SourceDate
	}
	return ""
}

func (x *JobRecord) GetOtdType() string {
	if x != nil {
		return x.OtdType
	}
	return ""
}

func (x *JobRecord) GetJobNumber() string {
	if x != nil {
		return x.JobNumber
	}
	return ""
}

func (x *JobRecord) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

func (x *JobRecord) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *JobRecord) GetBoxType() string {
	if x != nil {
		return x.BoxType
	}
	return ""
}

func (x *JobRecord) GetBoxStyle() string {
	if x != nil {
		return x.BoxStyle
	}
	return ""
}

func (x *JobRecord) GetBoxColor() string {
	if x != nil {
		return x.BoxColor
	}
	return ""
}

func (x *JobRecord) GetPrintingType() string {
	if x != nil {
		return x.PrintingType
	}
	return ""
}

func (x *JobRecord) GetPrintingColor() string {
	if x != nil {
		return x.PrintingColor
	}
	return ""
}

func (x *JobRecord) GetSpecification() string {
	if x != nil {
		return x.Specification
	}
	return ""
}

func (x *JobRecord) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *JobRecord) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *JobRecord) GetLeadTime() string {
	if x != nil {
		return x.LeadTime
	}
	return ""
}

func (x *JobRecord) GetRepeatNew() string {
	if x != nil {
		return x.RepeatNew
	}
	return ""
}

type StepTask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Step          int32                  `protobuf:"varint,3,opt,name=step,proto3" json:"step,omitempty"`
	StepName      string                 `protobuf:"bytes,4,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	PlanDate      string                 `protobuf:"bytes,5,opt,name=plan_date,json=planDate,proto3" json:"plan_date,omitempty"`
	ActualDate    string                 `protobuf:"bytes,6,opt,name=actual_date,json=actualDate,proto3" json:"actual_date,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	DelayReason   string                 `protobuf:"bytes,8,opt,name=delay_reason,json=delayReason,proto3" json:"delay_reason,omitempty"`
	WorkerName    string                 `protobuf:"bytes,9,opt,name=worker_name,json=workerName,proto3" json:"worker_name,omitempty"`
	CompletedQty  int32                  `protobuf:"varint,10,opt,name=completed_qty,json=completedQty,proto3" json:"completed_qty,omitempty"`
	DelayHours    float64                `protobuf:"fixed64,11,opt,name=delay_hours,json=delayHours,proto3" json:"delay_hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepTask) Reset() {
	*x = StepTask{}
	mi := &file_fms_v1_fms_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepTask) ProtoMessage() {}

func (x *StepTask) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepTask.ProtoReflect.Descriptor instead.
func (*StepTask) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{3}
}

func (x *StepTask) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StepTask) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StepTask) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

func (x *StepTask) GetStepName() string {
	if x != nil {
		return x.StepName
	}
	return ""
}

func (x *StepTask) GetPlanDate() string {
	if x != nil {
		return x.PlanDate
	}
	return ""
}

func (x *StepTask) GetActualDate() string {
	if x != nil {
		return x.ActualDate
	}
	return ""
}

func (x *StepTask) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StepTask) GetDelayReason() string {
	if x != nil {
		return x.DelayReason
	}
	return ""
}

func (x *StepTask) GetWorkerName() string {
	if x != nil {
		return x.WorkerName
	}
	return ""
}

func (x *StepTask) GetCompletedQty() int32 {
	if x != nil {
		return x.CompletedQty
	}
	return 0
}

func (x *StepTask) GetDelayHours() float64 {
	if x != nil {
		return x.DelayHours
	}
	return 0
}

type StepConfig struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Step           int32                  `protobuf:"varint,1,opt,name=step,proto3" json:"step,omitempty"`
	StepName       string                 `protobuf:"bytes,2,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	DoerEmails     []string               `protobuf:"bytes,3,rep,name=doer_emails,json=doerEmails,proto3" json:"doer_emails,omitempty"`
	VisibleColumns []string               `protobuf:"bytes,4,rep,name=visible_columns,json=visibleColumns,proto3" json:"visible_columns,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *StepConfig) Reset() {
	*x = StepConfig{}
	mi := &file_fms_v1_fms_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepConfig) ProtoMessage() {}

func (x *StepConfig) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepConfig.ProtoReflect.Descriptor instead.
func (*StepConfig) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{4}
}

func (x *StepConfig) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

func (x *StepConfig) GetStepName() string {
	if x != nil {
		return x.StepName
	}
	return ""
}

func (x *StepConfig) GetDoerEmails() []string {
	if x != nil {
		return x.DoerEmails
	}
	return nil
}

func (x *StepConfig) GetVisibleColumns() []string {
	if x != nil {
		return x.VisibleColumns
	}
	return nil
}

type ListJobRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobRecordsRequest) Reset() {
	*x = ListJobRecordsRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobRecordsRequest) ProtoMessage() {}

func (x *ListJobRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListJobRecordsRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{5}
}

type ListJobRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*JobRecord           `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobRecordsResponse) Reset() {
	*x = ListJobRecordsResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobRecordsResponse) ProtoMessage() {}

func (x *ListJobRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListJobRecordsResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobRecordsResponse) GetRecords() []*JobRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ListStepTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Step          int32                  `protobuf:"varint,2,opt,name=step,proto3" json:"step,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	PlanFrom      string                 `protobuf:"bytes,4,opt,name=plan_from,json=planFrom,proto3" json:"plan_from,omitempty"`
	PlanTo        string                 `protobuf:"bytes,5,opt,name=plan_to,json=planTo,proto3" json:"plan_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStepTasksRequest) Reset() {
	*x = ListStepTasksRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStepTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStepTasksRequest) ProtoMessage() {}

func (x *ListStepTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStepTasksRequest.ProtoReflect.Descriptor instead.
func (*ListStepTasksRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{7}
}

func (x *ListStepTasksRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListStepTasksRequest) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

func (x *ListStepTasksRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListStepTasksRequest) GetPlanFrom() string {
	if x != nil {
		return x.PlanFrom
	}
	return ""
}

func (x *ListStepTasksRequest) GetPlanTo() string {
	if x != nil {
		return x.PlanTo
	}
	return ""
}

type ListStepTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*StepTask            `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStepTasksResponse) Reset() {
	*x = ListStepTasksResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStepTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStepTasksResponse) ProtoMessage() {}

func (x *ListStepTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStepTasksResponse.ProtoReflect.Descriptor instead.
func (*ListStepTasksResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{8}
}

func (x *ListStepTasksResponse) GetTasks() []*StepTask {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type CompleteStepTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	WorkerName    string                 `protobuf:"bytes,2,opt,name=worker_name,json=workerName,proto3" json:"worker_name,omitempty"`
	DelayReason   string                 `protobuf:"bytes,3,opt,name=delay_reason,json=delayReason,proto3" json:"delay_reason,omitempty"`
	CompletedQty  int32                  `protobuf:"varint,4,opt,name=completed_qty,json=completedQty,proto3" json:"completed_qty,omitempty"`
	DelayHours    float64                `protobuf:"fixed64,5,opt,name=delay_hours,json=delayHours,proto3" json:"delay_hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteStepTaskRequest) Reset() {
	*x = CompleteStepTaskRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteStepTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteStepTaskRequest) ProtoMessage() {}

func (x *CompleteStepTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteStepTaskRequest.ProtoReflect.Descriptor instead.
func (*CompleteStepTaskRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{9}
}

func (x *CompleteStepTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *CompleteStepTaskRequest) GetWorkerName() string {
	if x != nil {
		return x.WorkerName
	}
	return ""
}

func (x *CompleteStepTaskRequest) GetDelayReason() string {
	if x != nil {
		return x.DelayReason
	}
	return ""
}

func (x *CompleteStepTaskRequest) GetCompletedQty() int32 {
	if x != nil {
		return x.CompletedQty
	}
	return 0
}

func (x *CompleteStepTaskRequest) GetDelayHours() float64 {
	if x != nil {
		return x.DelayHours
	}
	return 0
}

type CompleteStepTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *StepTask              `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteStepTaskResponse) Reset() {
	*x = CompleteStepTaskResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteStepTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteStepTaskResponse) ProtoMessage() {}

func (x *CompleteStepTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteStepTaskResponse.ProtoReflect.Descriptor instead.
func (*CompleteStepTaskResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{10}
}

func (x *CompleteStepTaskResponse) GetTask() *StepTask {
	if x != nil {
		return x.Task
	}
	return nil
}

type GetStepConfigsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStepConfigsRequest) Reset() {
	*x = GetStepConfigsRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStepConfigsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStepConfigsRequest) ProtoMessage() {}

func (x *GetStepConfigsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStepConfigsRequest.ProtoReflect.Descriptor instead.
func (*GetStepConfigsRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{11}
}

type GetStepConfigsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Configs       []*StepConfig          `protobuf:"bytes,1,rep,name=configs,proto3" json:"configs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStepConfigsResponse) Reset() {
	*x = GetStepConfigsResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStepConfigsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStepConfigsResponse) ProtoMessage() {}

func (x *GetStepConfigsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStepConfigsResponse.ProtoReflect.Descriptor instead.
func (*GetStepConfigsResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{12}
}

func (x *GetStepConfigsResponse) GetConfigs() []*StepConfig {
	if x != nil {
		return x.Configs
	}
	return nil
}

type SaveStepConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Config        *StepConfig            `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveStepConfigRequest) Reset() {
	*x = SaveStepConfigRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveStepConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveStepConfigRequest) ProtoMessage() {}

func (x *SaveStepConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveStepConfigRequest.ProtoReflect.Descriptor instead.
func (*SaveStepConfigRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{13}
}

func (x *SaveStepConfigRequest) GetConfig() *StepConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type SaveStepConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveStepConfigResponse) Reset() {
	*x = SaveStepConfigResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveStepConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveStepConfigResponse) ProtoMessage() {}

func (x *SaveStepConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveStepConfigResponse.ProtoReflect.Descriptor instead.
func (*SaveStepConfigResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{14}
}

type ExportStepTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	PlanFrom      string                 `protobuf:"bytes,2,opt,name=plan_from,json=planFrom,proto3" json:"plan_from,omitempty"`
	PlanTo        string                 `protobuf:"bytes,3,opt,name=plan_to,json=planTo,proto3" json:"plan_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStepTasksRequest) Reset() {
	*x = ExportStepTasksRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStepTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStepTasksRequest) ProtoMessage() {}

func (x *ExportStepTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStepTasksRequest.ProtoReflect.Descriptor instead.
func (*ExportStepTasksRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{15}
}

func (x *ExportStepTasksRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportStepTasksRequest) GetPlanFrom() string {
	if x != nil {
		return x.PlanFrom
	}
	return ""
}

func (x *ExportStepTasksRequest) GetPlanTo() string {
	if x != nil {
		return x.PlanTo
	}
	return ""
}

type ExportStepTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStepTasksResponse) Reset() {
	*x = ExportStepTasksResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStepTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStepTasksResponse) ProtoMessage() {}

func (x *ExportStepTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStepTasksResponse.ProtoReflect.Descriptor instead.
func (*ExportStepTasksResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{16}
}

func (x *ExportStepTasksResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ReportWindowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportWindowRequest) Reset() {
	*x = ReportWindowRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportWindowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportWindowRequest) ProtoMessage() {}

func (x *ReportWindowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportWindowRequest.ProtoReflect.Descriptor instead.
func (*ReportWindowRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{17}
}

func (x *ReportWindowRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ReportWindowRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type DelayRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Step          int32                  `protobuf:"varint,1,opt,name=step,proto3" json:"step,omitempty"`
	StepName      string                 `protobuf:"bytes,2,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	WorkerName    string                 `protobuf:"bytes,3,opt,name=worker_name,json=workerName,proto3" json:"worker_name,omitempty"`
	TaskCount     int32                  `protobuf:"varint,4,opt,name=task_count,json=taskCount,proto3" json:"task_count,omitempty"`
	AvgDelayHours float64                `protobuf:"fixed64,5,opt,name=avg_delay_hours,json=avgDelayHours,proto3" json:"avg_delay_hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DelayRow) Reset() {
	*x = DelayRow{}
	mi := &file_fms_v1_fms_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DelayRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DelayRow) ProtoMessage() {}

func (x *DelayRow) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DelayRow.ProtoReflect.Descriptor instead.
func (*DelayRow) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{18}
}

func (x *DelayRow) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

func (x *DelayRow) GetStepName() string {
	if x != nil {
		return x.StepName
	}
	return ""
}

func (x *DelayRow) GetWorkerName() string {
	if x != nil {
		return x.WorkerName
	}
	return ""
}

func (x *DelayRow) GetTaskCount() int32 {
	if x != nil {
		return x.TaskCount
	}
	return 0
}

func (x *DelayRow) GetAvgDelayHours() float64 {
	if x != nil {
		return x.AvgDelayHours
	}
	return 0
}

type DelayByStepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*DelayRow            `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DelayByStepResponse) Reset() {
	*x = DelayByStepResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DelayByStepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DelayByStepResponse) ProtoMessage() {}

func (x *DelayByStepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DelayByStepResponse.ProtoReflect.Descriptor instead.
func (*DelayByStepResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{19}
}

func (x *DelayByStepResponse) GetRows() []*DelayRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type PerformanceRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Step          int32                  `protobuf:"varint,1,opt,name=step,proto3" json:"step,omitempty"`
	StepName      string                 `protobuf:"bytes,2,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	Total         int32                  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	Completed     int32                  `protobuf:"varint,4,opt,name=completed,proto3" json:"completed,omitempty"`
	Pending       int32                  `protobuf:"varint,5,opt,name=pending,proto3" json:"pending,omitempty"`
	OnTime        int32                  `protobuf:"varint,6,opt,name=on_time,json=onTime,proto3" json:"on_time,omitempty"`
	Delayed       int32                  `protobuf:"varint,7,opt,name=delayed,proto3" json:"delayed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PerformanceRow) Reset() {
	*x = PerformanceRow{}
	mi := &file_fms_v1_fms_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PerformanceRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PerformanceRow) ProtoMessage() {}

func (x *PerformanceRow) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PerformanceRow.ProtoReflect.Descriptor instead.
func (*PerformanceRow) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{20}
}

func (x *PerformanceRow) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

func (x *PerformanceRow) GetStepName() string {
	if x != nil {
		return x.StepName
	}
	return ""
}

func (x *PerformanceRow) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *PerformanceRow) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *PerformanceRow) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *PerformanceRow) GetOnTime() int32 {
	if x != nil {
		return x.OnTime
	}
	return 0
}

func (x *PerformanceRow) GetDelayed() int32 {
	if x != nil {
		return x.Delayed
	}
	return 0
}

type StepPerformanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*PerformanceRow      `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepPerformanceResponse) Reset() {
	*x = StepPerformanceResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepPerformanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepPerformanceResponse) ProtoMessage() {}

func (x *StepPerformanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepPerformanceResponse.ProtoReflect.Descriptor instead.
func (*StepPerformanceResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{21}
}

func (x *StepPerformanceResponse) GetRows() []*PerformanceRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type DelegationTask struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TaskUid            string                 `protobuf:"bytes,2,opt,name=task_uid,json=taskUid,proto3" json:"task_uid,omitempty"`
	EmployeeName       string                 `protobuf:"bytes,3,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	AssignedToEmail    string                 `protobuf:"bytes,4,opt,name=assigned_to_email,json=assignedToEmail,proto3" json:"assigned_to_email,omitempty"`
	ApproverEmail      string                 `protobuf:"bytes,5,opt,name=approver_email,json=approverEmail,proto3" json:"approver_email,omitempty"`
	Description        string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	TargetDate         string                 `protobuf:"bytes,7,opt,name=target_date,json=targetDate,proto3" json:"target_date,omitempty"`
	Priority           string                 `protobuf:"bytes,8,opt,name=priority,proto3" json:"priority,omitempty"`
	ApprovalNeeded     bool                   `protobuf:"varint,9,opt,name=approval_needed,json=approvalNeeded,proto3" json:"approval_needed,omitempty"`
	AssignedBy         string                 `protobuf:"bytes,10,opt,name=assigned_by,json=assignedBy,proto3" json:"assigned_by,omitempty"`
	Remarks            string                 `protobuf:"bytes,11,opt,name=remarks,proto3" json:"remarks,omitempty"`
	Status             string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	RevisedDateRequest string                 `protobuf:"bytes,13,opt,name=revised_date_request,json=revisedDateRequest,proto3" json:"revised_date_request,omitempty"`
	RevisionRemarks    string                 `protobuf:"bytes,14,opt,name=revision_remarks,json=revisionRemarks,proto3" json:"revision_remarks,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *DelegationTask) Reset() {
	*x = DelegationTask{}
	mi := &file_fms_v1_fms_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DelegationTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DelegationTask) ProtoMessage() {}

func (x *DelegationTask) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DelegationTask.ProtoReflect.Descriptor instead.
func (*DelegationTask) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{22}
}

func (x *DelegationTask) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DelegationTask) GetTaskUid() string {
	if x != nil {
		return x.TaskUid
	}
	return ""
}

func (x *DelegationTask) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *DelegationTask) GetAssignedToEmail() string {
	if x != nil {
		return x.AssignedToEmail
	}
	return ""
}

func (x *DelegationTask) GetApproverEmail() string {
	if x != nil {
		return x.ApproverEmail
	}
	return ""
}

func (x *DelegationTask) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *DelegationTask) GetTargetDate() string {
	if x != nil {
		return x.TargetDate
	}
	return ""
}

func (x *DelegationTask) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *DelegationTask) GetApprovalNeeded() bool {
	if x != nil {
		return x.ApprovalNeeded
	}
	return false
}

func (x *DelegationTask) GetAssignedBy() string {
	if x != nil {
		return x.AssignedBy
	}
	return ""
}

func (x *DelegationTask) GetRemarks() string {
	if x != nil {
		return x.Remarks
	}
	return ""
}

func (x *DelegationTask) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *DelegationTask) GetRevisedDateRequest() string {
	if x != nil {
		return x.RevisedDateRequest
	}
	return ""
}

func (x *DelegationTask) GetRevisionRemarks() string {
	if x != nil {
		return x.RevisionRemarks
	}
	return ""
}

func (x *DelegationTask) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateDelegationTaskRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	EmployeeName    string                 `protobuf:"bytes,1,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	AssignedToEmail string                 `protobuf:"bytes,2,opt,name=assigned_to_email,json=assignedToEmail,proto3" json:"assigned_to_email,omitempty"`
	ApproverEmail   string                 `protobuf:"bytes,3,opt,name=approver_email,json=approverEmail,proto3" json:"approver_email,omitempty"`
	Description     string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	TargetDate      string                 `protobuf:"bytes,5,opt,name=target_date,json=targetDate,proto3" json:"target_date,omitempty"`
	Priority        string                 `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"`
	ApprovalNeeded  bool                   `protobuf:"varint,7,opt,name=approval_needed,json=approvalNeeded,proto3" json:"approval_needed,omitempty"`
	AssignedBy      string                 `protobuf:"bytes,8,opt,name=assigned_by,json=assignedBy,proto3" json:"assigned_by,omitempty"`
	Remarks         string                 `protobuf:"bytes,9,opt,name=remarks,proto3" json:"remarks,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateDelegationTaskRequest) Reset() {
	*x = CreateDelegationTaskRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDelegationTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDelegationTaskRequest) ProtoMessage() {}

func (x *CreateDelegationTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDelegationTaskRequest.ProtoReflect.Descriptor instead.
func (*CreateDelegationTaskRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{23}
}

func (x *CreateDelegationTaskRequest) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetAssignedToEmail() string {
	if x != nil {
		return x.AssignedToEmail
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetApproverEmail() string {
	if x != nil {
		return x.ApproverEmail
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetTargetDate() string {
	if x != nil {
		return x.TargetDate
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetApprovalNeeded() bool {
	if x != nil {
		return x.ApprovalNeeded
	}
	return false
}

func (x *CreateDelegationTaskRequest) GetAssignedBy() string {
	if x != nil {
		return x.AssignedBy
	}
	return ""
}

func (x *CreateDelegationTaskRequest) GetRemarks() string {
	if x != nil {
		return x.Remarks
	}
	return ""
}

type DelegationTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *DelegationTask        `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DelegationTaskResponse) Reset() {
	*x = DelegationTaskResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DelegationTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DelegationTaskResponse) ProtoMessage() {}

func (x *DelegationTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DelegationTaskResponse.ProtoReflect.Descriptor instead.
func (*DelegationTaskResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{24}
}

func (x *DelegationTaskResponse) GetTask() *DelegationTask {
	if x != nil {
		return x.Task
	}
	return nil
}

type ListDelegationTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssigneeEmail string                 `protobuf:"bytes,1,opt,name=assignee_email,json=assigneeEmail,proto3" json:"assignee_email,omitempty"`
	ApproverEmail string                 `protobuf:"bytes,2,opt,name=approver_email,json=approverEmail,proto3" json:"approver_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDelegationTasksRequest) Reset() {
	*x = ListDelegationTasksRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDelegationTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDelegationTasksRequest) ProtoMessage() {}

func (x *ListDelegationTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDelegationTasksRequest.ProtoReflect.Descriptor instead.
func (*ListDelegationTasksRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{25}
}

func (x *ListDelegationTasksRequest) GetAssigneeEmail() string {
	if x != nil {
		return x.AssigneeEmail
	}
	return ""
}

func (x *ListDelegationTasksRequest) GetApproverEmail() string {
	if x != nil {
		return x.ApproverEmail
	}
	return ""
}

type ListDelegationTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*DelegationTask      `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDelegationTasksResponse) Reset() {
	*x = ListDelegationTasksResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDelegationTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDelegationTasksResponse) ProtoMessage() {}

func (x *ListDelegationTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDelegationTasksResponse.ProtoReflect.Descriptor instead.
func (*ListDelegationTasksResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{26}
}

func (x *ListDelegationTasksResponse) GetTasks() []*DelegationTask {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type UpdateDelegationStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	RevisedDate   string                 `protobuf:"bytes,3,opt,name=revised_date,json=revisedDate,proto3" json:"revised_date,omitempty"`
	Remarks       string                 `protobuf:"bytes,4,opt,name=remarks,proto3" json:"remarks,omitempty"`
	Rejection     bool                   `protobuf:"varint,5,opt,name=rejection,proto3" json:"rejection,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDelegationStatusRequest) Reset() {
	*x = UpdateDelegationStatusRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDelegationStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDelegationStatusRequest) ProtoMessage() {}

func (x *UpdateDelegationStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDelegationStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateDelegationStatusRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{27}
}

func (x *UpdateDelegationStatusRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *UpdateDelegationStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateDelegationStatusRequest) GetRevisedDate() string {
	if x != nil {
		return x.RevisedDate
	}
	return ""
}

func (x *UpdateDelegationStatusRequest) GetRemarks() string {
	if x != nil {
		return x.Remarks
	}
	return ""
}

func (x *UpdateDelegationStatusRequest) GetRejection() bool {
	if x != nil {
		return x.Rejection
	}
	return false
}

type TaskComment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	UserName      string                 `protobuf:"bytes,3,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	Comment       string                 `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskComment) Reset() {
	*x = TaskComment{}
	mi := &file_fms_v1_fms_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskComment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskComment) ProtoMessage() {}

func (x *TaskComment) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskComment.ProtoReflect.Descriptor instead.
func (*TaskComment) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{28}
}

func (x *TaskComment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TaskComment) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskComment) GetUserName() string {
	if x != nil {
		return x.UserName
	}
	return ""
}

func (x *TaskComment) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *TaskComment) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type AddTaskCommentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	UserName      string                 `protobuf:"bytes,2,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskCommentRequest) Reset() {
	*x = AddTaskCommentRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskCommentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskCommentRequest) ProtoMessage() {}

func (x *AddTaskCommentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskCommentRequest.ProtoReflect.Descriptor instead.
func (*AddTaskCommentRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{29}
}

func (x *AddTaskCommentRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *AddTaskCommentRequest) GetUserName() string {
	if x != nil {
		return x.UserName
	}
	return ""
}

func (x *AddTaskCommentRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type AddTaskCommentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comment       *TaskComment           `protobuf:"bytes,1,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskCommentResponse) Reset() {
	*x = AddTaskCommentResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskCommentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskCommentResponse) ProtoMessage() {}

func (x *AddTaskCommentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskCommentResponse.ProtoReflect.Descriptor instead.
func (*AddTaskCommentResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{30}
}

func (x *AddTaskCommentResponse) GetComment() *TaskComment {
	if x != nil {
		return x.Comment
	}
	return nil
}

type ListTaskCommentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTaskCommentsRequest) Reset() {
	*x = ListTaskCommentsRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTaskCommentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTaskCommentsRequest) ProtoMessage() {}

func (x *ListTaskCommentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTaskCommentsRequest.ProtoReflect.Descriptor instead.
func (*ListTaskCommentsRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{31}
}

func (x *ListTaskCommentsRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type ListTaskCommentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comments      []*TaskComment         `protobuf:"bytes,1,rep,name=comments,proto3" json:"comments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTaskCommentsResponse) Reset() {
	*x = ListTaskCommentsResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTaskCommentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTaskCommentsResponse) ProtoMessage() {}

func (x *ListTaskCommentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTaskCommentsResponse.ProtoReflect.Descriptor instead.
func (*ListTaskCommentsResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{32}
}

func (x *ListTaskCommentsResponse) GetComments() []*TaskComment {
	if x != nil {
		return x.Comments
	}
	return nil
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Department    string                 `protobuf:"bytes,4,opt,name=department,proto3" json:"department,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Mobile        string                 `protobuf:"bytes,6,opt,name=mobile,proto3" json:"mobile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_fms_v1_fms_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{33}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *User) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetMobile() string {
	if x != nil {
		return x.Mobile
	}
	return ""
}

type UpsertUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	Department    string                 `protobuf:"bytes,3,opt,name=department,proto3" json:"department,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Mobile        string                 `protobuf:"bytes,5,opt,name=mobile,proto3" json:"mobile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUserRequest) Reset() {
	*x = UpsertUserRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUserRequest) ProtoMessage() {}

func (x *UpsertUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUserRequest.ProtoReflect.Descriptor instead.
func (*UpsertUserRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{34}
}

func (x *UpsertUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpsertUserRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *UpsertUserRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *UpsertUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *UpsertUserRequest) GetMobile() string {
	if x != nil {
		return x.Mobile
	}
	return ""
}

type UpsertUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUserResponse) Reset() {
	*x = UpsertUserResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUserResponse) ProtoMessage() {}

func (x *UpsertUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUserResponse.ProtoReflect.Descriptor instead.
func (*UpsertUserResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{35}
}

func (x *UpsertUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type ListUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersRequest.ProtoReflect.Descriptor instead.
func (*ListUsersRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{36}
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersResponse.ProtoReflect.Descriptor instead.
func (*ListUsersResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{37}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type AddHolidayRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddHolidayRequest) Reset() {
	*x = AddHolidayRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddHolidayRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddHolidayRequest) ProtoMessage() {}

func (x *AddHolidayRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddHolidayRequest.ProtoReflect.Descriptor instead.
func (*AddHolidayRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{38}
}

func (x *AddHolidayRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *AddHolidayRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type AddHolidayResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddHolidayResponse) Reset() {
	*x = AddHolidayResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddHolidayResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddHolidayResponse) ProtoMessage() {}

func (x *AddHolidayResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddHolidayResponse.ProtoReflect.Descriptor instead.
func (*AddHolidayResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{39}
}

type EmployeePlan struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeEmail string                 `protobuf:"bytes,1,opt,name=employee_email,json=employeeEmail,proto3" json:"employee_email,omitempty"`
	PlanDate      string                 `protobuf:"bytes,2,opt,name=plan_date,json=planDate,proto3" json:"plan_date,omitempty"`
	PlannedCount  int32                  `protobuf:"varint,3,opt,name=planned_count,json=plannedCount,proto3" json:"planned_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmployeePlan) Reset() {
	*x = EmployeePlan{}
	mi := &file_fms_v1_fms_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmployeePlan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmployeePlan) ProtoMessage() {}

func (x *EmployeePlan) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmployeePlan.ProtoReflect.Descriptor instead.
func (*EmployeePlan) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{40}
}

func (x *EmployeePlan) GetEmployeeEmail() string {
	if x != nil {
		return x.EmployeeEmail
	}
	return ""
}

func (x *EmployeePlan) GetPlanDate() string {
	if x != nil {
		return x.PlanDate
	}
	return ""
}

func (x *EmployeePlan) GetPlannedCount() int32 {
	if x != nil {
		return x.PlannedCount
	}
	return 0
}

type SaveEmployeePlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *EmployeePlan          `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveEmployeePlanRequest) Reset() {
	*x = SaveEmployeePlanRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveEmployeePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveEmployeePlanRequest) ProtoMessage() {}

func (x *SaveEmployeePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveEmployeePlanRequest.ProtoReflect.Descriptor instead.
func (*SaveEmployeePlanRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{41}
}

func (x *SaveEmployeePlanRequest) GetPlan() *EmployeePlan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type SaveEmployeePlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveEmployeePlanResponse) Reset() {
	*x = SaveEmployeePlanResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveEmployeePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveEmployeePlanResponse) ProtoMessage() {}

func (x *SaveEmployeePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveEmployeePlanResponse.ProtoReflect.Descriptor instead.
func (*SaveEmployeePlanResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{42}
}

type ListEmployeePlansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeePlansRequest) Reset() {
	*x = ListEmployeePlansRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeePlansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeePlansRequest) ProtoMessage() {}

func (x *ListEmployeePlansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeePlansRequest.ProtoReflect.Descriptor instead.
func (*ListEmployeePlansRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{43}
}

func (x *ListEmployeePlansRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListEmployeePlansRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListEmployeePlansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plans         []*EmployeePlan        `protobuf:"bytes,1,rep,name=plans,proto3" json:"plans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeePlansResponse) Reset() {
	*x = ListEmployeePlansResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeePlansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeePlansResponse) ProtoMessage() {}

func (x *ListEmployeePlansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeePlansResponse.ProtoReflect.Descriptor instead.
func (*ListEmployeePlansResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{44}
}

func (x *ListEmployeePlansResponse) GetPlans() []*EmployeePlan {
	if x != nil {
		return x.Plans
	}
	return nil
}

type ChecklistTask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Uid           string                 `protobuf:"bytes,2,opt,name=uid,proto3" json:"uid,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	EmployeeEmail string                 `protobuf:"bytes,4,opt,name=employee_email,json=employeeEmail,proto3" json:"employee_email,omitempty"`
	EmployeeName  string                 `protobuf:"bytes,5,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	Frequency     string                 `protobuf:"bytes,6,opt,name=frequency,proto3" json:"frequency,omitempty"`
	TargetDate    string                 `protobuf:"bytes,7,opt,name=target_date,json=targetDate,proto3" json:"target_date,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChecklistTask) Reset() {
	*x = ChecklistTask{}
	mi := &file_fms_v1_fms_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChecklistTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChecklistTask) ProtoMessage() {}

func (x *ChecklistTask) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChecklistTask.ProtoReflect.Descriptor instead.
func (*ChecklistTask) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{45}
}

func (x *ChecklistTask) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChecklistTask) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *ChecklistTask) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ChecklistTask) GetEmployeeEmail() string {
	if x != nil {
		return x.EmployeeEmail
	}
	return ""
}

func (x *ChecklistTask) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *ChecklistTask) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *ChecklistTask) GetTargetDate() string {
	if x != nil {
		return x.TargetDate
	}
	return ""
}

func (x *ChecklistTask) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GenerateChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	EmployeeEmail string                 `protobuf:"bytes,2,opt,name=employee_email,json=employeeEmail,proto3" json:"employee_email,omitempty"`
	EmployeeName  string                 `protobuf:"bytes,3,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	Frequency     string                 `protobuf:"bytes,4,opt,name=frequency,proto3" json:"frequency,omitempty"`
	StartDate     string                 `protobuf:"bytes,5,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateChecklistRequest) Reset() {
	*x = GenerateChecklistRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateChecklistRequest) ProtoMessage() {}

func (x *GenerateChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateChecklistRequest.ProtoReflect.Descriptor instead.
func (*GenerateChecklistRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{46}
}

func (x *GenerateChecklistRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *GenerateChecklistRequest) GetEmployeeEmail() string {
	if x != nil {
		return x.EmployeeEmail
	}
	return ""
}

func (x *GenerateChecklistRequest) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *GenerateChecklistRequest) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *GenerateChecklistRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

type GenerateChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Occurrences   int32                  `protobuf:"varint,1,opt,name=occurrences,proto3" json:"occurrences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateChecklistResponse) Reset() {
	*x = GenerateChecklistResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateChecklistResponse) ProtoMessage() {}

func (x *GenerateChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateChecklistResponse.ProtoReflect.Descriptor instead.
func (*GenerateChecklistResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{47}
}

func (x *GenerateChecklistResponse) GetOccurrences() int32 {
	if x != nil {
		return x.Occurrences
	}
	return 0
}

type ListDueChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeEmail string                 `protobuf:"bytes,1,opt,name=employee_email,json=employeeEmail,proto3" json:"employee_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDueChecklistRequest) Reset() {
	*x = ListDueChecklistRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDueChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDueChecklistRequest) ProtoMessage() {}

func (x *ListDueChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDueChecklistRequest.ProtoReflect.Descriptor instead.
func (*ListDueChecklistRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{48}
}

func (x *ListDueChecklistRequest) GetEmployeeEmail() string {
	if x != nil {
		return x.EmployeeEmail
	}
	return ""
}

type ListDueChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*ChecklistTask       `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDueChecklistResponse) Reset() {
	*x = ListDueChecklistResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDueChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDueChecklistResponse) ProtoMessage() {}

func (x *ListDueChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDueChecklistResponse.ProtoReflect.Descriptor instead.
func (*ListDueChecklistResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{49}
}

func (x *ListDueChecklistResponse) GetTasks() []*ChecklistTask {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type CompleteChecklistTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChecklistTaskRequest) Reset() {
	*x = CompleteChecklistTaskRequest{}
	mi := &file_fms_v1_fms_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChecklistTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChecklistTaskRequest) ProtoMessage() {}

func (x *CompleteChecklistTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChecklistTaskRequest.ProtoReflect.Descriptor instead.
func (*CompleteChecklistTaskRequest) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{50}
}

func (x *CompleteChecklistTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type CompleteChecklistTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChecklistTaskResponse) Reset() {
	*x = CompleteChecklistTaskResponse{}
	mi := &file_fms_v1_fms_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChecklistTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChecklistTaskResponse) ProtoMessage() {}

func (x *CompleteChecklistTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fms_v1_fms_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChecklistTaskResponse.ProtoReflect.Descriptor instead.
func (*CompleteChecklistTaskResponse) Descriptor() ([]byte, []int) {
	return file_fms_v1_fms_proto_rawDescGZIP(), []int{51}
}

var File_fms_v1_fms_proto protoreflect.FileDescriptor

const file_fms_v1_fms_proto_rawDesc = "" +
	"\n" +
	"\x10fms/v1/fms.proto\x12\x06fms.v1\"C\n" +
	"\x10SyncSheetRequest\x12\x14\n" +
	"\x05async\x18\x01 \x01(\bR\x05async\x12\x19\n" +
	"\btrace_id\x18\x02 \x01(\tR\atraceId\"\xb9\x01\n" +
	"\x11SyncSheetResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\x12!\n" +
	"\frows_fetched\x18\x02 \x01(\x05R\vrowsFetched\x12#\n" +
	"\rrows_upserted\x18\x03 \x01(\x05R\frowsUpserted\x12%\n" +
	"\x0etasks_upserted\x18\x04 \x01(\x05R\rtasksUpserted\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x05 \x01(\x03R\telapsedMs\"\x84\x04\n" +
	"\tJobRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\trow_index\x18\x02 \x01(\x05R\browIndex\x12\x1f\n" +
	"\vsource_date\x18\x03 \x01(\tR\n" +
	"sourceDate\x12\x19\n" +
	"\botd_type\x18\x04 \x01(\tR\aotdType\x12\x1d\n" +
	"\n" +
	"job_number\x18\x05 \x01(\tR\tjobNumber\x12\x19\n" +
	"\border_by\x18\x06 \x01(\tR\aorderBy\x12!\n" +
	"\fcompany_name\x18\a \x01(\tR\vcompanyName\x12\x19\n" +
	"\bbox_type\x18\b \x01(\tR\aboxType\x12\x1b\n" +
	"\tbox_style\x18\t \x01(\tR\bboxStyle\x12\x1b\n" +
	"\tbox_color\x18\n" +
	" \x01(\tR\bboxColor\x12#\n" +
	"\rprinting_type\x18\v \x01(\tR\fprintingType\x12%\n" +
	"\x0eprinting_color\x18\f \x01(\tR\rprintingColor\x12$\n" +
	"\rspecification\x18\r \x01(\tR\rspecification\x12\x12\n" +
	"\x04city\x18\x0e \x01(\tR\x04city\x12\x1a\n" +
	"\bquantity\x18\x0f \x01(\x05R\bquantity\x12\x1b\n" +
	"\tlead_time\x18\x10 \x01(\tR\bleadTime\x12\x1d\n" +
	"\n" +
	"repeat_new\x18\x11 \x01(\tR\trepeatNew\"\xc2\x02\n" +
	"\bStepTask\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04step\x18\x03 \x01(\x05R\x04step\x12\x1b\n" +
	"\tstep_name\x18\x04 \x01(\tR\bstepName\x12\x1b\n" +
	"\tplan_date\x18\x05 \x01(\tR\bplanDate\x12\x1f\n" +
	"\vactual_date\x18\x06 \x01(\tR\n" +
	"actualDate\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12!\n" +
	"\fdelay_reason\x18\b \x01(\tR\vdelayReason\x12\x1f\n" +
	"\vworker_name\x18\t \x01(\tR\n" +
	"workerName\x12#\n" +
	"\rcompleted_qty\x18\n" +
	" \x01(\x05R\fcompletedQty\x12\x1f\n" +
	"\vdelay_hours\x18\v \x01(\x01R\n" +
	"delayHours\"\x87\x01\n" +
	"\n" +
	"StepConfig\x12\x12\n" +
	"\x04step\x18\x01 \x01(\x05R\x04step\x12\x1b\n" +
	"\tstep_name\x18\x02 \x01(\tR\bstepName\x12\x1f\n" +
	"\vdoer_emails\x18\x03 \x03(\tR\n" +
	"doerEmails\x12'\n" +
	"\x0fvisible_columns\x18\x04 \x03(\tR\x0evisibleColumns\"\x17\n" +
	"\x15ListJobRecordsRequest\"E\n" +
	"\x16ListJobRecordsResponse\x12+\n" +
	"\arecords\x18\x01 \x03(\v2\x11.fms.v1.JobRecordR\arecords\"\x8f\x01\n" +
	"\x14ListStepTasksRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04step\x18\x02 \x01(\x05R\x04step\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1b\n" +
	"\tplan_from\x18\x04 \x01(\tR\bplanFrom\x12\x17\n" +
	"\aplan_to\x18\x05 \x01(\tR\x06planTo\"?\n" +
	"\x15ListStepTasksResponse\x12&\n" +
	"\x05tasks\x18\x01 \x03(\v2\x10.fms.v1.StepTaskR\x05tasks\"\xbc\x01\n" +
	"\x17CompleteStepTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x1f\n" +
	"\vworker_name\x18\x02 \x01(\tR\n" +
	"workerName\x12!\n" +
	"\fdelay_reason\x18\x03 \x01(\tR\vdelayReason\x12#\n" +
	"\rcompleted_qty\x18\x04 \x01(\x05R\fcompletedQty\x12\x1f\n" +
	"\vdelay_hours\x18\x05 \x01(\x01R\n" +
	"delayHours\"@\n" +
	"\x18CompleteStepTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.fms.v1.StepTaskR\x04task\"\x17\n" +
	"\x15GetStepConfigsRequest\"F\n" +
	"\x16GetStepConfigsResponse\x12,\n" +
	"\aconfigs\x18\x01 \x03(\v2\x12.fms.v1.StepConfigR\aconfigs\"C\n" +
	"\x15SaveStepConfigRequest\x12*\n" +
	"\x06config\x18\x01 \x01(\v2\x12.fms.v1.StepConfigR\x06config\"\x18\n" +
	"\x16SaveStepConfigResponse\"f\n" +
	"\x16ExportStepTasksRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tplan_from\x18\x02 \x01(\tR\bplanFrom\x12\x17\n" +
	"\aplan_to\x18\x03 \x01(\tR\x06planTo\"-\n" +
	"\x17ExportStepTasksResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"K\n" +
	"\x13ReportWindowRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"\xa3\x01\n" +
	"\bDelayRow\x12\x12\n" +
	"\x04step\x18\x01 \x01(\x05R\x04step\x12\x1b\n" +
	"\tstep_name\x18\x02 \x01(\tR\bstepName\x12\x1f\n" +
	"\vworker_name\x18\x03 \x01(\tR\n" +
	"workerName\x12\x1d\n" +
	"\n" +
	"task_count\x18\x04 \x01(\x05R\ttaskCount\x12&\n" +
	"\x0favg_delay_hours\x18\x05 \x01(\x01R\ravgDelayHours\";\n" +
	"\x13DelayByStepResponse\x12$\n" +
	"\x04rows\x18\x01 \x03(\v2\x10.fms.v1.DelayRowR\x04rows\"\xc2\x01\n" +
	"\x0ePerformanceRow\x12\x12\n" +
	"\x04step\x18\x01 \x01(\x05R\x04step\x12\x1b\n" +
	"\tstep_name\x18\x02 \x01(\tR\bstepName\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompleted\x18\x04 \x01(\x05R\tcompleted\x12\x18\n" +
	"\apending\x18\x05 \x01(\x05R\apending\x12\x17\n" +
	"\aon_time\x18\x06 \x01(\x05R\x06onTime\x12\x18\n" +
	"\adelayed\x18\a \x01(\x05R\adelayed\"E\n" +
	"\x17StepPerformanceResponse\x12*\n" +
	"\x04rows\x18\x01 \x03(\v2\x16.fms.v1.PerformanceRowR\x04rows\"\x8a\x04\n" +
	"\x0eDelegationTask\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\btask_uid\x18\x02 \x01(\tR\ataskUid\x12#\n" +
	"\remployee_name\x18\x03 \x01(\tR\femployeeName\x12*\n" +
	"\x11assigned_to_email\x18\x04 \x01(\tR\x0fassignedToEmail\x12%\n" +
	"\x0eapprover_email\x18\x05 \x01(\tR\rapproverEmail\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x1f\n" +
	"\vtarget_date\x18\a \x01(\tR\n" +
	"targetDate\x12\x1a\n" +
	"\bpriority\x18\b \x01(\tR\bpriority\x12'\n" +
	"\x0fapproval_needed\x18\t \x01(\bR\x0eapprovalNeeded\x12\x1f\n" +
	"\vassigned_by\x18\n" +
	" \x01(\tR\n" +
	"assignedBy\x12\x18\n" +
	"\aremarks\x18\v \x01(\tR\aremarks\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x120\n" +
	"\x14revised_date_request\x18\r \x01(\tR\x12revisedDateRequest\x12)\n" +
	"\x10revision_remarks\x18\x0e \x01(\tR\x0frevisionRemarks\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\"\xd8\x02\n" +
	"\x1bCreateDelegationTaskRequest\x12#\n" +
	"\remployee_name\x18\x01 \x01(\tR\femployeeName\x12*\n" +
	"\x11assigned_to_email\x18\x02 \x01(\tR\x0fassignedToEmail\x12%\n" +
	"\x0eapprover_email\x18\x03 \x01(\tR\rapproverEmail\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1f\n" +
	"\vtarget_date\x18\x05 \x01(\tR\n" +
	"targetDate\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x12'\n" +
	"\x0fapproval_needed\x18\a \x01(\bR\x0eapprovalNeeded\x12\x1f\n" +
	"\vassigned_by\x18\b \x01(\tR\n" +
	"assignedBy\x12\x18\n" +
	"\aremarks\x18\t \x01(\tR\aremarks\"D\n" +
	"\x16DelegationTaskResponse\x12*\n" +
	"\x04task\x18\x01 \x01(\v2\x16.fms.v1.DelegationTaskR\x04task\"j\n" +
	"\x1aListDelegationTasksRequest\x12%\n" +
	"\x0eassignee_email\x18\x01 \x01(\tR\rassigneeEmail\x12%\n" +
	"\x0eapprover_email\x18\x02 \x01(\tR\rapproverEmail\"K\n" +
	"\x1bListDelegationTasksResponse\x12,\n" +
	"\x05tasks\x18\x01 \x03(\v2\x16.fms.v1.DelegationTaskR\x05tasks\"\xab\x01\n" +
	"\x1dUpdateDelegationStatusRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12!\n" +
	"\frevised_date\x18\x03 \x01(\tR\vrevisedDate\x12\x18\n" +
	"\aremarks\x18\x04 \x01(\tR\aremarks\x12\x1c\n" +
	"\trejection\x18\x05 \x01(\bR\trejection\"\x8c\x01\n" +
	"\vTaskComment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\x12\x1b\n" +
	"\tuser_name\x18\x03 \x01(\tR\buserName\x12\x18\n" +
	"\acomment\x18\x04 \x01(\tR\acomment\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"g\n" +
	"\x15AddTaskCommentRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x1b\n" +
	"\tuser_name\x18\x02 \x01(\tR\buserName\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\"G\n" +
	"\x16AddTaskCommentResponse\x12-\n" +
	"\acomment\x18\x01 \x01(\v2\x13.fms.v1.TaskCommentR\acomment\"2\n" +
	"\x17ListTaskCommentsRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"K\n" +
	"\x18ListTaskCommentsResponse\x12/\n" +
	"\bcomments\x18\x01 \x03(\v2\x13.fms.v1.TaskCommentR\bcomments\"\x8c\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1e\n" +
	"\n" +
	"department\x18\x04 \x01(\tR\n" +
	"department\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x16\n" +
	"\x06mobile\x18\x06 \x01(\tR\x06mobile\"\x89\x01\n" +
	"\x11UpsertUserRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\x12\x1e\n" +
	"\n" +
	"department\x18\x03 \x01(\tR\n" +
	"department\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x16\n" +
	"\x06mobile\x18\x05 \x01(\tR\x06mobile\"6\n" +
	"\x12UpsertUserResponse\x12 \n" +
	"\x04user\x18\x01 \x01(\v2\f.fms.v1.UserR\x04user\"\x12\n" +
	"\x10ListUsersRequest\"7\n" +
	"\x11ListUsersResponse\x12\"\n" +
	"\x05users\x18\x01 \x03(\v2\f.fms.v1.UserR\x05users\";\n" +
	"\x11AddHolidayRequest\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\x14\n" +
	"\x12AddHolidayResponse\"w\n" +
	"\fEmployeePlan\x12%\n" +
	"\x0eemployee_email\x18\x01 \x01(\tR\remployeeEmail\x12\x1b\n" +
	"\tplan_date\x18\x02 \x01(\tR\bplanDate\x12#\n" +
	"\rplanned_count\x18\x03 \x01(\x05R\fplannedCount\"C\n" +
	"\x17SaveEmployeePlanRequest\x12(\n" +
	"\x04plan\x18\x01 \x01(\v2\x14.fms.v1.EmployeePlanR\x04plan\"\x1a\n" +
	"\x18SaveEmployeePlanResponse\"P\n" +
	"\x18ListEmployeePlansRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"G\n" +
	"\x19ListEmployeePlansResponse\x12*\n" +
	"\x05plans\x18\x01 \x03(\v2\x14.fms.v1.EmployeePlanR\x05plans\"\xf6\x01\n" +
	"\rChecklistTask\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03uid\x18\x02 \x01(\tR\x03uid\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12%\n" +
	"\x0eemployee_email\x18\x04 \x01(\tR\remployeeEmail\x12#\n" +
	"\remployee_name\x18\x05 \x01(\tR\femployeeName\x12\x1c\n" +
	"\tfrequency\x18\x06 \x01(\tR\tfrequency\x12\x1f\n" +
	"\vtarget_date\x18\a \x01(\tR\n" +
	"targetDate\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\"\xc5\x01\n" +
	"\x18GenerateChecklistRequest\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12%\n" +
	"\x0eemployee_email\x18\x02 \x01(\tR\remployeeEmail\x12#\n" +
	"\remployee_name\x18\x03 \x01(\tR\femployeeName\x12\x1c\n" +
	"\tfrequency\x18\x04 \x01(\tR\tfrequency\x12\x1d\n" +
	"\n" +
	"start_date\x18\x05 \x01(\tR\tstartDate\"=\n" +
	"\x19GenerateChecklistResponse\x12 \n" +
	"\voccurrences\x18\x01 \x01(\x05R\voccurrences\"@\n" +
	"\x17ListDueChecklistRequest\x12%\n" +
	"\x0eemployee_email\x18\x01 \x01(\tR\remployeeEmail\"G\n" +
	"\x18ListDueChecklistResponse\x12+\n" +
	"\x05tasks\x18\x01 \x03(\v2\x15.fms.v1.ChecklistTaskR\x05tasks\"7\n" +
	"\x1cCompleteChecklistTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"\x1f\n" +
	"\x1dCompleteChecklistTaskResponse2O\n" +
	"\vSyncService\x12@\n" +
	"\tSyncSheet\x12\x18.fms.v1.SyncSheetRequest\x1a\x19.fms.v1.SyncSheetResponse2\xfa\x03\n" +
	"\fTasksService\x12O\n" +
	"\x0eListJobRecords\x12\x1d.fms.v1.ListJobRecordsRequest\x1a\x1e.fms.v1.ListJobRecordsResponse\x12L\n" +
	"\rListStepTasks\x12\x1c.fms.v1.ListStepTasksRequest\x1a\x1d.fms.v1.ListStepTasksResponse\x12U\n" +
	"\x10CompleteStepTask\x12\x1f.fms.v1.CompleteStepTaskRequest\x1a .fms.v1.CompleteStepTaskResponse\x12O\n" +
	"\x0eGetStepConfigs\x12\x1d.fms.v1.GetStepConfigsRequest\x1a\x1e.fms.v1.GetStepConfigsResponse\x12O\n" +
	"\x0eSaveStepConfig\x12\x1d.fms.v1.SaveStepConfigRequest\x1a\x1e.fms.v1.SaveStepConfigResponse\x12R\n" +
	"\x0fExportStepTasks\x12\x1e.fms.v1.ExportStepTasksRequest\x1a\x1f.fms.v1.ExportStepTasksResponse2\xaa\x01\n" +
	"\x0eReportsService\x12G\n" +
	"\vDelayByStep\x12\x1b.fms.v1.ReportWindowRequest\x1a\x1b.fms.v1.DelayByStepResponse\x12O\n" +
	"\x0fStepPerformance\x12\x1b.fms.v1.ReportWindowRequest\x1a\x1f.fms.v1.StepPerformanceResponse2\xd9\x03\n" +
	"\x11DelegationService\x12[\n" +
	"\x14CreateDelegationTask\x12#.fms.v1.CreateDelegationTaskRequest\x1a\x1e.fms.v1.DelegationTaskResponse\x12^\n" +
	"\x13ListDelegationTasks\x12\".fms.v1.ListDelegationTasksRequest\x1a#.fms.v1.ListDelegationTasksResponse\x12_\n" +
	"\x16UpdateDelegationStatus\x12%.fms.v1.UpdateDelegationStatusRequest\x1a\x1e.fms.v1.DelegationTaskResponse\x12O\n" +
	"\x0eAddTaskComment\x12\x1d.fms.v1.AddTaskCommentRequest\x1a\x1e.fms.v1.AddTaskCommentResponse\x12U\n" +
	"\x10ListTaskComments\x12\x1f.fms.v1.ListTaskCommentsRequest\x1a .fms.v1.ListTaskCommentsResponse2\x8b\x03\n" +
	"\fAdminService\x12C\n" +
	"\n" +
	"UpsertUser\x12\x19.fms.v1.UpsertUserRequest\x1a\x1a.fms.v1.UpsertUserResponse\x12@\n" +
	"\tListUsers\x12\x18.fms.v1.ListUsersRequest\x1a\x19.fms.v1.ListUsersResponse\x12C\n" +
	"\n" +
	"AddHoliday\x12\x19.fms.v1.AddHolidayRequest\x1a\x1a.fms.v1.AddHolidayResponse\x12U\n" +
	"\x10SaveEmployeePlan\x12\x1f.fms.v1.SaveEmployeePlanRequest\x1a .fms.v1.SaveEmployeePlanResponse\x12X\n" +
	"\x11ListEmployeePlans\x12 .fms.v1.ListEmployeePlansRequest\x1a!.fms.v1.ListEmployeePlansResponse2\xa9\x02\n" +
	"\x10ChecklistService\x12X\n" +
	"\x11GenerateChecklist\x12 .fms.v1.GenerateChecklistRequest\x1a!.fms.v1.GenerateChecklistResponse\x12U\n" +
	"\x10ListDueChecklist\x12\x1f.fms.v1.ListDueChecklistRequest\x1a .fms.v1.ListDueChecklistResponse\x12d\n" +
	"\x15CompleteChecklistTask\x12$.fms.v1.CompleteChecklistTaskRequest\x1a%.fms.v1.CompleteChecklistTaskResponseB6Z4github.com/dibiaa/fms-tracker/gen/proto/fms/v1;fmsv1b\x06proto3"

var (
	file_fms_v1_fms_proto_rawDescOnce sync.Once
	file_fms_v1_fms_proto_rawDescData []byte
)

func file_fms_v1_fms_proto_rawDescGZIP() []byte {
	file_fms_v1_fms_proto_rawDescOnce.Do(func() {
		file_fms_v1_fms_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fms_v1_fms_proto_rawDesc), len(file_fms_v1_fms_proto_rawDesc)))
	})
	return file_fms_v1_fms_proto_rawDescData
}

var file_fms_v1_fms_proto_msgTypes = make([]protoimpl.MessageInfo, 52)
var file_fms_v1_fms_proto_goTypes = []any{
	(*SyncSheetRequest)(nil),              // 0: fms.v1.SyncSheetRequest
	(*SyncSheetResponse)(nil),             // 1: fms.v1.SyncSheetResponse
	(*JobRecord)(nil),                     // 2: fms.v1.JobRecord
	(*StepTask)(nil),                      // 3: fms.v1.StepTask
	(*StepConfig)(nil),                    // 4: fms.v1.StepConfig
	(*ListJobRecordsRequest)(nil),         // 5: fms.v1.ListJobRecordsRequest
	(*ListJobRecordsResponse)(nil),        // 6: fms.v1.ListJobRecordsResponse
	(*ListStepTasksRequest)(nil),          // 7: fms.v1.ListStepTasksRequest
	(*ListStepTasksResponse)(nil),         // 8: fms.v1.ListStepTasksResponse
	(*CompleteStepTaskRequest)(nil),       // 9: fms.v1.CompleteStepTaskRequest
	(*CompleteStepTaskResponse)(nil),      // 10: fms.v1.CompleteStepTaskResponse
	(*GetStepConfigsRequest)(nil),         // 11: fms.v1.GetStepConfigsRequest
	(*GetStepConfigsResponse)(nil),        // 12: fms.v1.GetStepConfigsResponse
	(*SaveStepConfigRequest)(nil),         // 13: fms.v1.SaveStepConfigRequest
	(*SaveStepConfigResponse)(nil),        // 14: fms.v1.SaveStepConfigResponse
	(*ExportStepTasksRequest)(nil),        // 15: fms.v1.ExportStepTasksRequest
	(*ExportStepTasksResponse)(nil),       // 16: fms.v1.ExportStepTasksResponse
	(*ReportWindowRequest)(nil),           // 17: fms.v1.ReportWindowRequest
	(*DelayRow)(nil),                      // 18: fms.v1.DelayRow
	(*DelayByStepResponse)(nil),           // 19: fms.v1.DelayByStepResponse
	(*PerformanceRow)(nil),                // 20: fms.v1.PerformanceRow
	(*StepPerformanceResponse)(nil),       // 21: fms.v1.StepPerformanceResponse
	(*DelegationTask)(nil),                // 22: fms.v1.DelegationTask
	(*CreateDelegationTaskRequest)(nil),   // 23: fms.v1.CreateDelegationTaskRequest
	(*DelegationTaskResponse)(nil),        // 24: fms.v1.DelegationTaskResponse
	(*ListDelegationTasksRequest)(nil),    // 25: fms.v1.ListDelegationTasksRequest
	(*ListDelegationTasksResponse)(nil),   // 26: fms.v1.ListDelegationTasksResponse
	(*UpdateDelegationStatusRequest)(nil), // 27: fms.v1.UpdateDelegationStatusRequest
	(*TaskComment)(nil),                   // 28: fms.v1.TaskComment
	(*AddTaskCommentRequest)(nil),         // 29: fms.v1.AddTaskCommentRequest
	(*AddTaskCommentResponse)(nil),        // 30: fms.v1.AddTaskCommentResponse
	(*ListTaskCommentsRequest)(nil),       // 31: fms.v1.ListTaskCommentsRequest
	(*ListTaskCommentsResponse)(nil),      // 32: fms.v1.ListTaskCommentsResponse
	(*User)(nil),                          // 33: fms.v1.User
	(*UpsertUserRequest)(nil),             // 34: fms.v1.UpsertUserRequest
	(*UpsertUserResponse)(nil),            // 35: fms.v1.UpsertUserResponse
	(*ListUsersRequest)(nil),              // 36: fms.v1.ListUsersRequest
	(*ListUsersResponse)(nil),             // 37: fms.v1.ListUsersResponse
	(*AddHolidayRequest)(nil),             // 38: fms.v1.AddHolidayRequest
	(*AddHolidayResponse)(nil),            // 39: fms.v1.AddHolidayResponse
	(*EmployeePlan)(nil),                  // 40: fms.v1.EmployeePlan
	(*SaveEmployeePlanRequest)(nil),       // 41: fms.v1.SaveEmployeePlanRequest
	(*SaveEmployeePlanResponse)(nil),      // 42: fms.v1.SaveEmployeePlanResponse
	(*ListEmployeePlansRequest)(nil),      // 43: fms.v1.ListEmployeePlansRequest
	(*ListEmployeePlansResponse)(nil),     // 44: fms.v1.ListEmployeePlansResponse
	(*ChecklistTask)(nil),                 // 45: fms.v1.ChecklistTask
	(*GenerateChecklistRequest)(nil),      // 46: fms.v1.GenerateChecklistRequest
	(*GenerateChecklistResponse)(nil),     // 47: fms.v1.GenerateChecklistResponse
	(*ListDueChecklistRequest)(nil),       // 48: fms.v1.ListDueChecklistRequest
	(*ListDueChecklistResponse)(nil),      // 49: fms.v1.ListDueChecklistResponse
	(*CompleteChecklistTaskRequest)(nil),  // 50: fms.v1.CompleteChecklistTaskRequest
	(*CompleteChecklistTaskResponse)(nil), // 51: fms.v1.CompleteChecklistTaskResponse
}
var file_fms_v1_fms_proto_depIdxs = []int32{
	2,  // 0: fms.v1.ListJobRecordsResponse.records:type_name -> fms.v1.JobRecord
	3,  // 1: fms.v1.ListStepTasksResponse.tasks:type_name -> fms.v1.StepTask
	3,  // 2: fms.v1.CompleteStepTaskResponse.task:type_name -> fms.v1.StepTask
	4,  // 3: fms.v1.GetStepConfigsResponse.configs:type_name -> fms.v1.StepConfig
	4,  // 4: fms.v1.SaveStepConfigRequest.config:type_name -> fms.v1.StepConfig
	18, // 5: fms.v1.DelayByStepResponse.rows:type_name -> fms.v1.DelayRow
	20, // 6: fms.v1.StepPerformanceResponse.rows:type_name -> fms.v1.PerformanceRow
	22, // 7: fms.v1.DelegationTaskResponse.task:type_name -> fms.v1.DelegationTask
	22, // 8: fms.v1.ListDelegationTasksResponse.tasks:type_name -> fms.v1.DelegationTask
	28, // 9: fms.v1.AddTaskCommentResponse.comment:type_name -> fms.v1.TaskComment
	28, // 10: fms.v1.ListTaskCommentsResponse.comments:type_name -> fms.v1.TaskComment
	33, // 11: fms.v1.UpsertUserResponse.user:type_name -> fms.v1.User
	33, // 12: fms.v1.ListUsersResponse.users:type_name -> fms.v1.User
	40, // 13: fms.v1.SaveEmployeePlanRequest.plan:type_name -> fms.v1.EmployeePlan
	40, // 14: fms.v1.ListEmployeePlansResponse.plans:type_name -> fms.v1.EmployeePlan
	45, // 15: fms.v1.ListDueChecklistResponse.tasks:type_name -> fms.v1.ChecklistTask
	0,  // 16: fms.v1.SyncService.SyncSheet:input_type -> fms.v1.SyncSheetRequest
	5,  // 17: fms.v1.TasksService.ListJobRecords:input_type -> fms.v1.ListJobRecordsRequest
	7,  // 18: fms.v1.TasksService.ListStepTasks:input_type -> fms.v1.ListStepTasksRequest
	9,  // 19: fms.v1.TasksService.CompleteStepTask:input_type -> fms.v1.CompleteStepTaskRequest
	11, // 20: fms.v1.TasksService.GetStepConfigs:input_type -> fms.v1.GetStepConfigsRequest
	13, // 21: fms.v1.TasksService.SaveStepConfig:input_type -> fms.v1.SaveStepConfigRequest
	15, // 22: fms.v1.TasksService.ExportStepTasks:input_type -> fms.v1.ExportStepTasksRequest
	17, // 23: fms.v1.ReportsService.DelayByStep:input_type -> fms.v1.ReportWindowRequest
	17, // 24: fms.v1.ReportsService.StepPerformance:input_type -> fms.v1.ReportWindowRequest
	23, // 25: fms.v1.DelegationService.CreateDelegationTask:input_type -> fms.v1.CreateDelegationTaskRequest
	25, // 26: fms.v1.DelegationService.ListDelegationTasks:input_type -> fms.v1.ListDelegationTasksRequest
	27, // 27: fms.v1.DelegationService.UpdateDelegationStatus:input_type -> fms.v1.UpdateDelegationStatusRequest
	29, // 28: fms.v1.DelegationService.AddTaskComment:input_type -> fms.v1.AddTaskCommentRequest
	31, // 29: fms.v1.DelegationService.ListTaskComments:input_type -> fms.v1.ListTaskCommentsRequest
	34, // 30: fms.v1.AdminService.UpsertUser:input_type -> fms.v1.UpsertUserRequest
	36, // 31: fms.v1.AdminService.ListUsers:input_type -> fms.v1.ListUsersRequest
	38, // 32: fms.v1.AdminService.AddHoliday:input_type -> fms.v1.AddHolidayRequest
	41, // 33: fms.v1.AdminService.SaveEmployeePlan:input_type -> fms.v1.SaveEmployeePlanRequest
	43, // 34: fms.v1.AdminService.ListEmployeePlans:input_type -> fms.v1.ListEmployeePlansRequest
	46, // 35: fms.v1.ChecklistService.GenerateChecklist:input_type -> fms.v1.GenerateChecklistRequest
	48, // 36: fms.v1.ChecklistService.ListDueChecklist:input_type -> fms.v1.ListDueChecklistRequest
	50, // 37: fms.v1.ChecklistService.CompleteChecklistTask:input_type -> fms.v1.CompleteChecklistTaskRequest
	1,  // 38: fms.v1.SyncService.SyncSheet:output_type -> fms.v1.SyncSheetResponse
	6,  // 39: fms.v1.TasksService.ListJobRecords:output_type -> fms.v1.ListJobRecordsResponse
	8,  // 40: fms.v1.TasksService.ListStepTasks:output_type -> fms.v1.ListStepTasksResponse
	10, // 41: fms.v1.TasksService.CompleteStepTask:output_type -> fms.v1.CompleteStepTaskResponse
	12, // 42: fms.v1.TasksService.GetStepConfigs:output_type -> fms.v1.GetStepConfigsResponse
	14, // 43: fms.v1.TasksService.SaveStepConfig:output_type -> fms.v1.SaveStepConfigResponse
	16, // 44: fms.v1.TasksService.ExportStepTasks:output_type -> fms.v1.ExportStepTasksResponse
	19, // 45: fms.v1.ReportsService.DelayByStep:output_type -> fms.v1.DelayByStepResponse
	21, // 46: fms.v1.ReportsService.StepPerformance:output_type -> fms.v1.StepPerformanceResponse
	24, // 47: fms.v1.DelegationService.CreateDelegationTask:output_type -> fms.v1.DelegationTaskResponse
	26, // 48: fms.v1.DelegationService.ListDelegationTasks:output_type -> fms.v1.ListDelegationTasksResponse
	24, // 49: fms.v1.DelegationService.UpdateDelegationStatus:output_type -> fms.v1.DelegationTaskResponse
	30, // 50: fms.v1.DelegationService.AddTaskComment:output_type -> fms.v1.AddTaskCommentResponse
	32, // 51: fms.v1.DelegationService.ListTaskComments:output_type -> fms.v1.ListTaskCommentsResponse
	35, // 52: fms.v1.AdminService.UpsertUser:output_type -> fms.v1.UpsertUserResponse
	37, // 53: fms.v1.AdminService.ListUsers:output_type -> fms.v1.ListUsersResponse
	39, // 54: fms.v1.AdminService.AddHoliday:output_type -> fms.v1.AddHolidayResponse
	42, // 55: fms.v1.AdminService.SaveEmployeePlan:output_type -> fms.v1.SaveEmployeePlanResponse
	44, // 56: fms.v1.AdminService.ListEmployeePlans:output_type -> fms.v1.ListEmployeePlansResponse
	47, // 57: fms.v1.ChecklistService.GenerateChecklist:output_type -> fms.v1.GenerateChecklistResponse
	49, // 58: fms.v1.ChecklistService.ListDueChecklist:output_type -> fms.v1.ListDueChecklistResponse
	51, // 59: fms.v1.ChecklistService.CompleteChecklistTask:output_type -> fms.v1.CompleteChecklistTaskResponse
	38, // [38:60] is the sub-list for method output_type
	16, // [16:38] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_fms_v1_fms_proto_init() }
func file_fms_v1_fms_proto_init() {
	if File_fms_v1_fms_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fms_v1_fms_proto_rawDesc), len(file_fms_v1_fms_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   52,
			NumExtensions: 0,
			NumServices:   6,
		},
		GoTypes:           file_fms_v1_fms_proto_goTypes,
		DependencyIndexes: file_fms_v1_fms_proto_depIdxs,
		MessageInfos:      file_fms_v1_fms_proto_msgTypes,
	}.Build()
	File_fms_v1_fms_proto = out.File
	file_fms_v1_fms_proto_goTypes = nil
	file_fms_v1_fms_proto_depIdxs = nil
}

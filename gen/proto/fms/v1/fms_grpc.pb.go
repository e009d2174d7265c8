// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: fms/v1/fms.proto

package fmsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SyncService_SyncSheet_FullMethodName = "/fms.v1.SyncService/SyncSheet"
)

// SyncServiceClient is the client API for SyncService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SyncService drives sheet synchronization.
type SyncServiceClient interface {
	// SyncSheet runs one sync pass. With async=true the request is queued and
	// the response carries no counts.
	SyncSheet(ctx context.Context, in *SyncSheetRequest, opts ...grpc.CallOption) (*SyncSheetResponse, error)
}

type syncServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSyncServiceClient(cc grpc.ClientConnInterface) SyncServiceClient {
	return &syncServiceClient{cc}
}

func (c *syncServiceClient) SyncSheet(ctx context.Context, in *SyncSheetRequest, opts ...grpc.CallOption) (*SyncSheetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncSheetResponse)
	err := c.cc.Invoke(ctx, SyncService_SyncSheet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyncServiceServer is the server API for SyncService service.
// All implementations must embed UnimplementedSyncServiceServer
// for forward compatibility.
//
// SyncService drives sheet synchronization.
type SyncServiceServer interface {
	// SyncSheet runs one sync pass. With async=true the request is queued and
	// the response carries no counts.
	SyncSheet(context.Context, *SyncSheetRequest) (*SyncSheetResponse, error)
	mustEmbedUnimplementedSyncServiceServer()
}

// UnimplementedSyncServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSyncServiceServer struct{}

func (UnimplementedSyncServiceServer) SyncSheet(context.Context, *SyncSheetRequest) (*SyncSheetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SyncSheet not implemented")
}
func (UnimplementedSyncServiceServer) mustEmbedUnimplementedSyncServiceServer() {}
func (UnimplementedSyncServiceServer) testEmbeddedByValue()                     {}

// UnsafeSyncServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SyncServiceServer will
// result in compilation errors.
type UnsafeSyncServiceServer interface {
	mustEmbedUnimplementedSyncServiceServer()
}

func RegisterSyncServiceServer(s grpc.ServiceRegistrar, srv SyncServiceServer) {
	// If the following call panics, it indicates UnimplementedSyncServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SyncService_ServiceDesc, srv)
}

func _SyncService_SyncSheet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).SyncSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_SyncSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).SyncSheet(ctx, req.(*SyncSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyncService_ServiceDesc is the grpc.ServiceDesc for SyncService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SyncService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.SyncService",
	HandlerType: (*SyncServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SyncSheet",
			Handler:    _SyncService_SyncSheet_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

const (
	TasksService_ListJobRecords_FullMethodName   = "/fms.v1.TasksService/ListJobRecords"
	TasksService_ListStepTasks_FullMethodName    = "/fms.v1.TasksService/ListStepTasks"
	TasksService_CompleteStepTask_FullMethodName = "/fms.v1.TasksService/CompleteStepTask"
	TasksService_GetStepConfigs_FullMethodName   = "/fms.v1.TasksService/GetStepConfigs"
	TasksService_SaveStepConfig_FullMethodName   = "/fms.v1.TasksService/SaveStepConfig"
	TasksService_ExportStepTasks_FullMethodName  = "/fms.v1.TasksService/ExportStepTasks"
)

// TasksServiceClient is the client API for TasksService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TasksService exposes job records, step tasks, and step configuration.
type TasksServiceClient interface {
	ListJobRecords(ctx context.Context, in *ListJobRecordsRequest, opts ...grpc.CallOption) (*ListJobRecordsResponse, error)
	ListStepTasks(ctx context.Context, in *ListStepTasksRequest, opts ...grpc.CallOption) (*ListStepTasksResponse, error)
	CompleteStepTask(ctx context.Context, in *CompleteStepTaskRequest, opts ...grpc.CallOption) (*CompleteStepTaskResponse, error)
	GetStepConfigs(ctx context.Context, in *GetStepConfigsRequest, opts ...grpc.CallOption) (*GetStepConfigsResponse, error)
	SaveStepConfig(ctx context.Context, in *SaveStepConfigRequest, opts ...grpc.CallOption) (*SaveStepConfigResponse, error)
	ExportStepTasks(ctx context.Context, in *ExportStepTasksRequest, opts ...grpc.CallOption) (*ExportStepTasksResponse, error)
}

type tasksServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTasksServiceClient(cc grpc.ClientConnInterface) TasksServiceClient {
	return &tasksServiceClient{cc}
}

func (c *tasksServiceClient) ListJobRecords(ctx context.Context, in *ListJobRecordsRequest, opts ...grpc.CallOption) (*ListJobRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobRecordsResponse)
	err := c.cc.Invoke(ctx, TasksService_ListJobRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) ListStepTasks(ctx context.Context, in *ListStepTasksRequest, opts ...grpc.CallOption) (*ListStepTasksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStepTasksResponse)
	err := c.cc.Invoke(ctx, TasksService_ListStepTasks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) CompleteStepTask(ctx context.Context, in *CompleteStepTaskRequest, opts ...grpc.CallOption) (*CompleteStepTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteStepTaskResponse)
	err := c.cc.Invoke(ctx, TasksService_CompleteStepTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) GetStepConfigs(ctx context.Context, in *GetStepConfigsRequest, opts ...grpc.CallOption) (*GetStepConfigsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStepConfigsResponse)
	err := c.cc.Invoke(ctx, TasksService_GetStepConfigs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) SaveStepConfig(ctx context.Context, in *SaveStepConfigRequest, opts ...grpc.CallOption) (*SaveStepConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveStepConfigResponse)
	err := c.cc.Invoke(ctx, TasksService_SaveStepConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) ExportStepTasks(ctx context.Context, in *ExportStepTasksRequest, opts ...grpc.CallOption) (*ExportStepTasksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportStepTasksResponse)
	err := c.cc.Invoke(ctx, TasksService_ExportStepTasks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TasksServiceServer is the server API for TasksService service.
// All implementations must embed UnimplementedTasksServiceServer
// for forward compatibility.
//
// TasksService exposes job records, step tasks, and step configuration.
type TasksServiceServer interface {
	ListJobRecords(context.Context, *ListJobRecordsRequest) (*ListJobRecordsResponse, error)
	ListStepTasks(context.Context, *ListStepTasksRequest) (*ListStepTasksResponse, error)
	CompleteStepTask(context.Context, *CompleteStepTaskRequest) (*CompleteStepTaskResponse, error)
	GetStepConfigs(context.Context, *GetStepConfigsRequest) (*GetStepConfigsResponse, error)
	SaveStepConfig(context.Context, *SaveStepConfigRequest) (*SaveStepConfigResponse, error)
	ExportStepTasks(context.Context, *ExportStepTasksRequest) (*ExportStepTasksResponse, error)
	mustEmbedUnimplementedTasksServiceServer()
}

// UnimplementedTasksServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTasksServiceServer struct{}

func (UnimplementedTasksServiceServer) ListJobRecords(context.Context, *ListJobRecordsRequest) (*ListJobRecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobRecords not implemented")
}
func (UnimplementedTasksServiceServer) ListStepTasks(context.Context, *ListStepTasksRequest) (*ListStepTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStepTasks not implemented")
}
func (UnimplementedTasksServiceServer) CompleteStepTask(context.Context, *CompleteStepTaskRequest) (*CompleteStepTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteStepTask not implemented")
}
func (UnimplementedTasksServiceServer) GetStepConfigs(context.Context, *GetStepConfigsRequest) (*GetStepConfigsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStepConfigs not implemented")
}
func (UnimplementedTasksServiceServer) SaveStepConfig(context.Context, *SaveStepConfigRequest) (*SaveStepConfigResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveStepConfig not implemented")
}
func (UnimplementedTasksServiceServer) ExportStepTasks(context.Context, *ExportStepTasksRequest) (*ExportStepTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportStepTasks not implemented")
}
func (UnimplementedTasksServiceServer) mustEmbedUnimplementedTasksServiceServer() {}
func (UnimplementedTasksServiceServer) testEmbeddedByValue()                      {}

// UnsafeTasksServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TasksServiceServer will
// result in compilation errors.
type UnsafeTasksServiceServer interface {
	mustEmbedUnimplementedTasksServiceServer()
}

func RegisterTasksServiceServer(s grpc.ServiceRegistrar, srv TasksServiceServer) {
	// If the following call panics, it indicates UnimplementedTasksServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TasksService_ServiceDesc, srv)
}

func _TasksService_ListJobRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).ListJobRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_ListJobRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).ListJobRecords(ctx, req.(*ListJobRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_ListStepTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStepTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).ListStepTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_ListStepTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).ListStepTasks(ctx, req.(*ListStepTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_CompleteStepTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteStepTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).CompleteStepTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_CompleteStepTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).CompleteStepTask(ctx, req.(*CompleteStepTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_GetStepConfigs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStepConfigsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).GetStepConfigs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_GetStepConfigs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).GetStepConfigs(ctx, req.(*GetStepConfigsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_SaveStepConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveStepConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).SaveStepConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_SaveStepConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).SaveStepConfig(ctx, req.(*SaveStepConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_ExportStepTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportStepTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).ExportStepTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_ExportStepTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).ExportStepTasks(ctx, req.(*ExportStepTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TasksService_ServiceDesc is the grpc.ServiceDesc for TasksService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TasksService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.TasksService",
	HandlerType: (*TasksServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListJobRecords",
			Handler:    _TasksService_ListJobRecords_Handler,
		},
		{
			MethodName: "ListStepTasks",
			Handler:    _TasksService_ListStepTasks_Handler,
		},
		{
			MethodName: "CompleteStepTask",
			Handler:    _TasksService_CompleteStepTask_Handler,
		},
		{
			MethodName: "GetStepConfigs",
			Handler:    _TasksService_GetStepConfigs_Handler,
		},
		{
			MethodName: "SaveStepConfig",
			Handler:    _TasksService_SaveStepConfig_Handler,
		},
		{
			MethodName: "ExportStepTasks",
			Handler:    _TasksService_ExportStepTasks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

const (
	ReportsService_DelayByStep_FullMethodName     = "/fms.v1.ReportsService/DelayByStep"
	ReportsService_StepPerformance_FullMethodName = "/fms.v1.ReportsService/StepPerformance"
)

// ReportsServiceClient is the client API for ReportsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReportsService computes MIS summaries.
type ReportsServiceClient interface {
	DelayByStep(ctx context.Context, in *ReportWindowRequest, opts ...grpc.CallOption) (*DelayByStepResponse, error)
	StepPerformance(ctx context.Context, in *ReportWindowRequest, opts ...grpc.CallOption) (*StepPerformanceResponse, error)
}

type reportsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportsServiceClient(cc grpc.ClientConnInterface) ReportsServiceClient {
	return &reportsServiceClient{cc}
}

func (c *reportsServiceClient) DelayByStep(ctx context.Context, in *ReportWindowRequest, opts ...grpc.CallOption) (*DelayByStepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DelayByStepResponse)
	err := c.cc.Invoke(ctx, ReportsService_DelayByStep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) StepPerformance(ctx context.Context, in *ReportWindowRequest, opts ...grpc.CallOption) (*StepPerformanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StepPerformanceResponse)
	err := c.cc.Invoke(ctx, ReportsService_StepPerformance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportsServiceServer is the server API for ReportsService service.
// All implementations must embed UnimplementedReportsServiceServer
// for forward compatibility.
//
// ReportsService computes MIS summaries.
type ReportsServiceServer interface {
	DelayByStep(context.Context, *ReportWindowRequest) (*DelayByStepResponse, error)
	StepPerformance(context.Context, *ReportWindowRequest) (*StepPerformanceResponse, error)
	mustEmbedUnimplementedReportsServiceServer()
}

// UnimplementedReportsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReportsServiceServer struct{}

func (UnimplementedReportsServiceServer) DelayByStep(context.Context, *ReportWindowRequest) (*DelayByStepResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DelayByStep not implemented")
}
func (UnimplementedReportsServiceServer) StepPerformance(context.Context, *ReportWindowRequest) (*StepPerformanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StepPerformance not implemented")
}
func (UnimplementedReportsServiceServer) mustEmbedUnimplementedReportsServiceServer() {}
func (UnimplementedReportsServiceServer) testEmbeddedByValue()                        {}

// UnsafeReportsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReportsServiceServer will
// result in compilation errors.
type UnsafeReportsServiceServer interface {
	mustEmbedUnimplementedReportsServiceServer()
}

func RegisterReportsServiceServer(s grpc.ServiceRegistrar, srv ReportsServiceServer) {
	// If the following call panics, it indicates UnimplementedReportsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReportsService_ServiceDesc, srv)
}

func _ReportsService_DelayByStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReportWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).DelayByStep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_DelayByStep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).DelayByStep(ctx, req.(*ReportWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_StepPerformance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReportWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).StepPerformance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_StepPerformance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).StepPerformance(ctx, req.(*ReportWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportsService_ServiceDesc is the grpc.ServiceDesc for ReportsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReportsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.ReportsService",
	HandlerType: (*ReportsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DelayByStep",
			Handler:    _ReportsService_DelayByStep_Handler,
		},
		{
			MethodName: "StepPerformance",
			Handler:    _ReportsService_StepPerformance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

const (
	DelegationService_CreateDelegationTask_FullMethodName   = "/fms.v1.DelegationService/CreateDelegationTask"
	DelegationService_ListDelegationTasks_FullMethodName    = "/fms.v1.DelegationService/ListDelegationTasks"
	DelegationService_UpdateDelegationStatus_FullMethodName = "/fms.v1.DelegationService/UpdateDelegationStatus"
	DelegationService_AddTaskComment_FullMethodName         = "/fms.v1.DelegationService/AddTaskComment"
	DelegationService_ListTaskComments_FullMethodName       = "/fms.v1.DelegationService/ListTaskComments"
)

// DelegationServiceClient is the client API for DelegationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DelegationService manages one-off delegated tasks and their comments.
type DelegationServiceClient interface {
	CreateDelegationTask(ctx context.Context, in *CreateDelegationTaskRequest, opts ...grpc.CallOption) (*DelegationTaskResponse, error)
	ListDelegationTasks(ctx context.Context, in *ListDelegationTasksRequest, opts ...grpc.CallOption) (*ListDelegationTasksResponse, error)
	UpdateDelegationStatus(ctx context.Context, in *UpdateDelegationStatusRequest, opts ...grpc.CallOption) (*DelegationTaskResponse, error)
	AddTaskComment(ctx context.Context, in *AddTaskCommentRequest, opts ...grpc.CallOption) (*AddTaskCommentResponse, error)
	ListTaskComments(ctx context.Context, in *ListTaskCommentsRequest, opts ...grpc.CallOption) (*ListTaskCommentsResponse, error)
}

type delegationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDelegationServiceClient(cc grpc.ClientConnInterface) DelegationServiceClient {
	return &delegationServiceClient{cc}
}

func (c *delegationServiceClient) CreateDelegationTask(ctx context.Context, in *CreateDelegationTaskRequest, opts ...grpc.CallOption) (*DelegationTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DelegationTaskResponse)
	err := c.cc.Invoke(ctx, DelegationService_CreateDelegationTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *delegationServiceClient) ListDelegationTasks(ctx context.Context, in *ListDelegationTasksRequest, opts ...grpc.CallOption) (*ListDelegationTasksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDelegationTasksResponse)
	err := c.cc.Invoke(ctx, DelegationService_ListDelegationTasks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *delegationServiceClient) UpdateDelegationStatus(ctx context.Context, in *UpdateDelegationStatusRequest, opts ...grpc.CallOption) (*DelegationTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DelegationTaskResponse)
	err := c.cc.Invoke(ctx, DelegationService_UpdateDelegationStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *delegationServiceClient) AddTaskComment(ctx context.Context, in *AddTaskCommentRequest, opts ...grpc.CallOption) (*AddTaskCommentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddTaskCommentResponse)
	err := c.cc.Invoke(ctx, DelegationService_AddTaskComment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *delegationServiceClient) ListTaskComments(ctx context.Context, in *ListTaskCommentsRequest, opts ...grpc.CallOption) (*ListTaskCommentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTaskCommentsResponse)
	err := c.cc.Invoke(ctx, DelegationService_ListTaskComments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DelegationServiceServer is the server API for DelegationService service.
// All implementations must embed UnimplementedDelegationServiceServer
// for forward compatibility.
//
// DelegationService manages one-off delegated tasks and their comments.
type DelegationServiceServer interface {
	CreateDelegationTask(context.Context, *CreateDelegationTaskRequest) (*DelegationTaskResponse, error)
	ListDelegationTasks(context.Context, *ListDelegationTasksRequest) (*ListDelegationTasksResponse, error)
	UpdateDelegationStatus(context.Context, *UpdateDelegationStatusRequest) (*DelegationTaskResponse, error)
	AddTaskComment(context.Context, *AddTaskCommentRequest) (*AddTaskCommentResponse, error)
	ListTaskComments(context.Context, *ListTaskCommentsRequest) (*ListTaskCommentsResponse, error)
	mustEmbedUnimplementedDelegationServiceServer()
}

// UnimplementedDelegationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDelegationServiceServer struct{}

func (UnimplementedDelegationServiceServer) CreateDelegationTask(context.Context, *CreateDelegationTaskRequest) (*DelegationTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDelegationTask not implemented")
}
func (UnimplementedDelegationServiceServer) ListDelegationTasks(context.Context, *ListDelegationTasksRequest) (*ListDelegationTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDelegationTasks not implemented")
}
func (UnimplementedDelegationServiceServer) UpdateDelegationStatus(context.Context, *UpdateDelegationStatusRequest) (*DelegationTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDelegationStatus not implemented")
}
func (UnimplementedDelegationServiceServer) AddTaskComment(context.Context, *AddTaskCommentRequest) (*AddTaskCommentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddTaskComment not implemented")
}
func (UnimplementedDelegationServiceServer) ListTaskComments(context.Context, *ListTaskCommentsRequest) (*ListTaskCommentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTaskComments not implemented")
}
func (UnimplementedDelegationServiceServer) mustEmbedUnimplementedDelegationServiceServer() {}
func (UnimplementedDelegationServiceServer) testEmbeddedByValue()                           {}

// UnsafeDelegationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DelegationServiceServer will
// result in compilation errors.
type UnsafeDelegationServiceServer interface {
	mustEmbedUnimplementedDelegationServiceServer()
}

func RegisterDelegationServiceServer(s grpc.ServiceRegistrar, srv DelegationServiceServer) {
	// If the following call panics, it indicates UnimplementedDelegationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DelegationService_ServiceDesc, srv)
}

func _DelegationService_CreateDelegationTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDelegationTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DelegationServiceServer).CreateDelegationTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DelegationService_CreateDelegationTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DelegationServiceServer).CreateDelegationTask(ctx, req.(*CreateDelegationTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DelegationService_ListDelegationTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDelegationTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DelegationServiceServer).ListDelegationTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DelegationService_ListDelegationTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DelegationServiceServer).ListDelegationTasks(ctx, req.(*ListDelegationTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DelegationService_UpdateDelegationStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDelegationStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DelegationServiceServer).UpdateDelegationStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DelegationService_UpdateDelegationStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DelegationServiceServer).UpdateDelegationStatus(ctx, req.(*UpdateDelegationStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DelegationService_AddTaskComment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTaskCommentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DelegationServiceServer).AddTaskComment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DelegationService_AddTaskComment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DelegationServiceServer).AddTaskComment(ctx, req.(*AddTaskCommentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DelegationService_ListTaskComments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTaskCommentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DelegationServiceServer).ListTaskComments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DelegationService_ListTaskComments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DelegationServiceServer).ListTaskComments(ctx, req.(*ListTaskCommentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DelegationService_ServiceDesc is the grpc.ServiceDesc for DelegationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DelegationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.DelegationService",
	HandlerType: (*DelegationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDelegationTask",
			Handler:    _DelegationService_CreateDelegationTask_Handler,
		},
		{
			MethodName: "ListDelegationTasks",
			Handler:    _DelegationService_ListDelegationTasks_Handler,
		},
		{
			MethodName: "UpdateDelegationStatus",
			Handler:    _DelegationService_UpdateDelegationStatus_Handler,
		},
		{
			MethodName: "AddTaskComment",
			Handler:    _DelegationService_AddTaskComment_Handler,
		},
		{
			MethodName: "ListTaskComments",
			Handler:    _DelegationService_ListTaskComments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

const (
	AdminService_UpsertUser_FullMethodName        = "/fms.v1.AdminService/UpsertUser"
	AdminService_ListUsers_FullMethodName         = "/fms.v1.AdminService/ListUsers"
	AdminService_AddHoliday_FullMethodName        = "/fms.v1.AdminService/AddHoliday"
	AdminService_SaveEmployeePlan_FullMethodName  = "/fms.v1.AdminService/SaveEmployeePlan"
	AdminService_ListEmployeePlans_FullMethodName = "/fms.v1.AdminService/ListEmployeePlans"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService manages the employee directory and daily plan counts.
type AdminServiceClient interface {
	UpsertUser(ctx context.Context, in *UpsertUserRequest, opts ...grpc.CallOption) (*UpsertUserResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	AddHoliday(ctx context.Context, in *AddHolidayRequest, opts ...grpc.CallOption) (*AddHolidayResponse, error)
	SaveEmployeePlan(ctx context.Context, in *SaveEmployeePlanRequest, opts ...grpc.CallOption) (*SaveEmployeePlanResponse, error)
	ListEmployeePlans(ctx context.Context, in *ListEmployeePlansRequest, opts ...grpc.CallOption) (*ListEmployeePlansResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) UpsertUser(ctx context.Context, in *UpsertUserRequest, opts ...grpc.CallOption) (*UpsertUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertUserResponse)
	err := c.cc.Invoke(ctx, AdminService_UpsertUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUsersResponse)
	err := c.cc.Invoke(ctx, AdminService_ListUsers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) AddHoliday(ctx context.Context, in *AddHolidayRequest, opts ...grpc.CallOption) (*AddHolidayResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddHolidayResponse)
	err := c.cc.Invoke(ctx, AdminService_AddHoliday_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SaveEmployeePlan(ctx context.Context, in *SaveEmployeePlanRequest, opts ...grpc.CallOption) (*SaveEmployeePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveEmployeePlanResponse)
	err := c.cc.Invoke(ctx, AdminService_SaveEmployeePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListEmployeePlans(ctx context.Context, in *ListEmployeePlansRequest, opts ...grpc.CallOption) (*ListEmployeePlansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEmployeePlansResponse)
	err := c.cc.Invoke(ctx, AdminService_ListEmployeePlans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService manages the employee directory and daily plan counts.
type AdminServiceServer interface {
	UpsertUser(context.Context, *UpsertUserRequest) (*UpsertUserResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	AddHoliday(context.Context, *AddHolidayRequest) (*AddHolidayResponse, error)
	SaveEmployeePlan(context.Context, *SaveEmployeePlanRequest) (*SaveEmployeePlanResponse, error)
	ListEmployeePlans(context.Context, *ListEmployeePlansRequest) (*ListEmployeePlansResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) UpsertUser(context.Context, *UpsertUserRequest) (*UpsertUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertUser not implemented")
}
func (UnimplementedAdminServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedAdminServiceServer) AddHoliday(context.Context, *AddHolidayRequest) (*AddHolidayResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddHoliday not implemented")
}
func (UnimplementedAdminServiceServer) SaveEmployeePlan(context.Context, *SaveEmployeePlanRequest) (*SaveEmployeePlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveEmployeePlan not implemented")
}
func (UnimplementedAdminServiceServer) ListEmployeePlans(context.Context, *ListEmployeePlansRequest) (*ListEmployeePlansResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployeePlans not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call panics, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_UpsertUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).UpsertUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_UpsertUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).UpsertUser(ctx, req.(*UpsertUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListUsers(ctx, req.(*ListUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_AddHoliday_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddHolidayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).AddHoliday(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_AddHoliday_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).AddHoliday(ctx, req.(*AddHolidayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SaveEmployeePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveEmployeePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SaveEmployeePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SaveEmployeePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SaveEmployeePlan(ctx, req.(*SaveEmployeePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListEmployeePlans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEmployeePlansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListEmployeePlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListEmployeePlans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListEmployeePlans(ctx, req.(*ListEmployeePlansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertUser",
			Handler:    _AdminService_UpsertUser_Handler,
		},
		{
			MethodName: "ListUsers",
			Handler:    _AdminService_ListUsers_Handler,
		},
		{
			MethodName: "AddHoliday",
			Handler:    _AdminService_AddHoliday_Handler,
		},
		{
			MethodName: "SaveEmployeePlan",
			Handler:    _AdminService_SaveEmployeePlan_Handler,
		},
		{
			MethodName: "ListEmployeePlans",
			Handler:    _AdminService_ListEmployeePlans_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

const (
	ChecklistService_GenerateChecklist_FullMethodName     = "/fms.v1.ChecklistService/GenerateChecklist"
	ChecklistService_ListDueChecklist_FullMethodName      = "/fms.v1.ChecklistService/ListDueChecklist"
	ChecklistService_CompleteChecklistTask_FullMethodName = "/fms.v1.ChecklistService/CompleteChecklistTask"
)

// ChecklistServiceClient is the client API for ChecklistService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ChecklistService expands and tracks recurring checklist items.
type ChecklistServiceClient interface {
	GenerateChecklist(ctx context.Context, in *GenerateChecklistRequest, opts ...grpc.CallOption) (*GenerateChecklistResponse, error)
	ListDueChecklist(ctx context.Context, in *ListDueChecklistRequest, opts ...grpc.CallOption) (*ListDueChecklistResponse, error)
	CompleteChecklistTask(ctx context.Context, in *CompleteChecklistTaskRequest, opts ...grpc.CallOption) (*CompleteChecklistTaskResponse, error)
}

type checklistServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChecklistServiceClient(cc grpc.ClientConnInterface) ChecklistServiceClient {
	return &checklistServiceClient{cc}
}

func (c *checklistServiceClient) GenerateChecklist(ctx context.Context, in *GenerateChecklistRequest, opts ...grpc.CallOption) (*GenerateChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateChecklistResponse)
	err := c.cc.Invoke(ctx, ChecklistService_GenerateChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checklistServiceClient) ListDueChecklist(ctx context.Context, in *ListDueChecklistRequest, opts ...grpc.CallOption) (*ListDueChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDueChecklistResponse)
	err := c.cc.Invoke(ctx, ChecklistService_ListDueChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checklistServiceClient) CompleteChecklistTask(ctx context.Context, in *CompleteChecklistTaskRequest, opts ...grpc.CallOption) (*CompleteChecklistTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteChecklistTaskResponse)
	err := c.cc.Invoke(ctx, ChecklistService_CompleteChecklistTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChecklistServiceServer is the server API for ChecklistService service.
// All implementations must embed UnimplementedChecklistServiceServer
// for forward compatibility.
//
// ChecklistService expands and tracks recurring checklist items.
type ChecklistServiceServer interface {
	GenerateChecklist(context.Context, *GenerateChecklistRequest) (*GenerateChecklistResponse, error)
	ListDueChecklist(context.Context, *ListDueChecklistRequest) (*ListDueChecklistResponse, error)
	CompleteChecklistTask(context.Context, *CompleteChecklistTaskRequest) (*CompleteChecklistTaskResponse, error)
	mustEmbedUnimplementedChecklistServiceServer()
}

// UnimplementedChecklistServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedChecklistServiceServer struct{}

func (UnimplementedChecklistServiceServer) GenerateChecklist(context.Context, *GenerateChecklistRequest) (*GenerateChecklistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateChecklist not implemented")
}
func (UnimplementedChecklistServiceServer) ListDueChecklist(context.Context, *ListDueChecklistRequest) (*ListDueChecklistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDueChecklist not implemented")
}
func (UnimplementedChecklistServiceServer) CompleteChecklistTask(context.Context, *CompleteChecklistTaskRequest) (*CompleteChecklistTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteChecklistTask not implemented")
}
func (UnimplementedChecklistServiceServer) mustEmbedUnimplementedChecklistServiceServer() {}
func (UnimplementedChecklistServiceServer) testEmbeddedByValue()                          {}

// UnsafeChecklistServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ChecklistServiceServer will
// result in compilation errors.
type UnsafeChecklistServiceServer interface {
	mustEmbedUnimplementedChecklistServiceServer()
}

func RegisterChecklistServiceServer(s grpc.ServiceRegistrar, srv ChecklistServiceServer) {
	// If the following call panics, it indicates UnimplementedChecklistServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ChecklistService_ServiceDesc, srv)
}

func _ChecklistService_GenerateChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChecklistServiceServer).GenerateChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChecklistService_GenerateChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChecklistServiceServer).GenerateChecklist(ctx, req.(*GenerateChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChecklistService_ListDueChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDueChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChecklistServiceServer).ListDueChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChecklistService_ListDueChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChecklistServiceServer).ListDueChecklist(ctx, req.(*ListDueChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChecklistService_CompleteChecklistTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteChecklistTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChecklistServiceServer).CompleteChecklistTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChecklistService_CompleteChecklistTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChecklistServiceServer).CompleteChecklistTask(ctx, req.(*CompleteChecklistTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ChecklistService_ServiceDesc is the grpc.ServiceDesc for ChecklistService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ChecklistService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fms.v1.ChecklistService",
	HandlerType: (*ChecklistServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateChecklist",
			Handler:    _ChecklistService_GenerateChecklist_Handler,
		},
		{
			MethodName: "ListDueChecklist",
			Handler:    _ChecklistService_ListDueChecklist_Handler,
		},
		{
			MethodName: "CompleteChecklistTask",
			Handler:    _ChecklistService_CompleteChecklistTask_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fms/v1/fms.proto",
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dibiaa/fms-tracker/db/ent/schema"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/dibiaa/fms-tracker/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checklisttaskFields := schema.ChecklistTask{}.Fields()
	_ = checklisttaskFields
	// checklisttaskDescUID is the schema descriptor for uid field.
	checklisttaskDescUID := checklisttaskFields[1].Descriptor()
	// checklisttask.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	checklisttask.UIDValidator = checklisttaskDescUID.Validators[0].(func(string) error)
	// checklisttaskDescDescription is the schema descriptor for description field.
	checklisttaskDescDescription := checklisttaskFields[2].Descriptor()
	// checklisttask.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	checklisttask.DescriptionValidator = checklisttaskDescDescription.Validators[0].(func(string) error)
	// checklisttaskDescEmployeeEmail is the schema descriptor for employee_email field.
	checklisttaskDescEmployeeEmail := checklisttaskFields[3].Descriptor()
	// checklisttask.EmployeeEmailValidator is a validator for the "employee_email" field. It is called by the builders before save.
	checklisttask.EmployeeEmailValidator = checklisttaskDescEmployeeEmail.Validators[0].(func(string) error)
	// checklisttaskDescEmployeeName is the schema descriptor for employee_name field.
	checklisttaskDescEmployeeName := checklisttaskFields[4].Descriptor()
	// checklisttask.DefaultEmployeeName holds the default value on creation for the employee_name field.
	checklisttask.DefaultEmployeeName = checklisttaskDescEmployeeName.Default.(string)
	// checklisttaskDescFrequency is the schema descriptor for frequency field.
	checklisttaskDescFrequency := checklisttaskFields[5].Descriptor()
	// checklisttask.DefaultFrequency holds the default value on creation for the frequency field.
	checklisttask.DefaultFrequency = checklisttaskDescFrequency.Default.(string)
	// checklisttaskDescStatus is the schema descriptor for status field.
	checklisttaskDescStatus := checklisttaskFields[7].Descriptor()
	// checklisttask.DefaultStatus holds the default value on creation for the status field.
	checklisttask.DefaultStatus = checklisttaskDescStatus.Default.(string)
	// checklisttask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	checklisttask.StatusValidator = checklisttaskDescStatus.Validators[0].(func(string) error)
	// checklisttaskDescID is the schema descriptor for id field.
	checklisttaskDescID := checklisttaskFields[0].Descriptor()
	// checklisttask.DefaultID holds the default value on creation for the id field.
	checklisttask.DefaultID = checklisttaskDescID.Default.(func() uuid.UUID)
	delegationtaskFields := schema.DelegationTask{}.Fields()
	_ = delegationtaskFields
	// delegationtaskDescTaskUID is the schema descriptor for task_uid field.
	delegationtaskDescTaskUID := delegationtaskFields[1].Descriptor()
	// delegationtask.TaskUIDValidator is a validator for the "task_uid" field. It is called by the builders before save.
	delegationtask.TaskUIDValidator = delegationtaskDescTaskUID.Validators[0].(func(string) error)
	// delegationtaskDescEmployeeName is the schema descriptor for employee_name field.
	delegationtaskDescEmployeeName := delegationtaskFields[2].Descriptor()
	// delegationtask.DefaultEmployeeName holds the default value on creation for the employee_name field.
	delegationtask.DefaultEmployeeName = delegationtaskDescEmployeeName.Default.(string)
	// delegationtaskDescAssignedToEmail is the schema descriptor for assigned_to_email field.
	delegationtaskDescAssignedToEmail := delegationtaskFields[3].Descriptor()
	// delegationtask.AssignedToEmailValidator is a validator for the "assigned_to_email" field. It is called by the builders before save.
	delegationtask.AssignedToEmailValidator = delegationtaskDescAssignedToEmail.Validators[0].(func(string) error)
	// delegationtaskDescApproverEmail is the schema descriptor for approver_email field.
	delegationtaskDescApproverEmail := delegationtaskFields[4].Descriptor()
	// delegationtask.DefaultApproverEmail holds the default value on creation for the approver_email field.
	delegationtask.DefaultApproverEmail = delegationtaskDescApproverEmail.Default.(string)
	// delegationtaskDescDescription is the schema descriptor for description field.
	delegationtaskDescDescription := delegationtaskFields[5].Descriptor()
	// delegationtask.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	delegationtask.DescriptionValidator = delegationtaskDescDescription.Validators[0].(func(string) error)
	// delegationtaskDescPriority is the schema descriptor for priority field.
	delegationtaskDescPriority := delegationtaskFields[7].Descriptor()
	// delegationtask.DefaultPriority holds the default value on creation for the priority field.
	delegationtask.DefaultPriority = delegationtaskDescPriority.Default.(string)
	// delegationtaskDescApprovalNeeded is the schema descriptor for approval_needed field.
	delegationtaskDescApprovalNeeded := delegationtaskFields[8].Descriptor()
	// delegationtask.DefaultApprovalNeeded holds the default value on creation for the approval_needed field.
	delegationtask.DefaultApprovalNeeded = delegationtaskDescApprovalNeeded.Default.(bool)
	// delegationtaskDescAssignedBy is the schema descriptor for assigned_by field.
	delegationtaskDescAssignedBy := delegationtaskFields[9].Descriptor()
	// delegationtask.DefaultAssignedBy holds the default value on creation for the assigned_by field.
	delegationtask.DefaultAssignedBy = delegationtaskDescAssignedBy.Default.(string)
	// delegationtaskDescRemarks is the schema descriptor for remarks field.
	delegationtaskDescRemarks := delegationtaskFields[10].Descriptor()
	// delegationtask.DefaultRemarks holds the default value on creation for the remarks field.
	delegationtask.DefaultRemarks = delegationtaskDescRemarks.Default.(string)
	// delegationtaskDescStatus is the schema descriptor for status field.
	delegationtaskDescStatus := delegationtaskFields[11].Descriptor()
	// delegationtask.DefaultStatus holds the default value on creation for the status field.
	delegationtask.DefaultStatus = delegationtaskDescStatus.Default.(string)
	// delegationtask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	delegationtask.StatusValidator = delegationtaskDescStatus.Validators[0].(func(string) error)
	// delegationtaskDescPreviousStatus is the schema descriptor for previous_status field.
	delegationtaskDescPreviousStatus := delegationtaskFields[12].Descriptor()
	// delegationtask.DefaultPreviousStatus holds the default value on creation for the previous_status field.
	delegationtask.DefaultPreviousStatus = delegationtaskDescPreviousStatus.Default.(string)
	// delegationtaskDescRevisionRemarks is the schema descriptor for revision_remarks field.
	delegationtaskDescRevisionRemarks := delegationtaskFields[14].Descriptor()
	// delegationtask.DefaultRevisionRemarks holds the default value on creation for the revision_remarks field.
	delegationtask.DefaultRevisionRemarks = delegationtaskDescRevisionRemarks.Default.(string)
	// delegationtaskDescCreatedAt is the schema descriptor for created_at field.
	delegationtaskDescCreatedAt := delegationtaskFields[15].Descriptor()
	// delegationtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	delegationtask.DefaultCreatedAt = delegationtaskDescCreatedAt.Default.(func() time.Time)
	// delegationtaskDescID is the schema descriptor for id field.
	delegationtaskDescID := delegationtaskFields[0].Descriptor()
	// delegationtask.DefaultID holds the default value on creation for the id field.
	delegationtask.DefaultID = delegationtaskDescID.Default.(func() uuid.UUID)
	employeeplanFields := schema.EmployeePlan{}.Fields()
	_ = employeeplanFields
	// employeeplanDescEmployeeEmail is the schema descriptor for employee_email field.
	employeeplanDescEmployeeEmail := employeeplanFields[1].Descriptor()
	// employeeplan.EmployeeEmailValidator is a validator for the "employee_email" field. It is called by the builders before save.
	employeeplan.EmployeeEmailValidator = employeeplanDescEmployeeEmail.Validators[0].(func(string) error)
	// employeeplanDescPlannedCount is the schema descriptor for planned_count field.
	employeeplanDescPlannedCount := employeeplanFields[3].Descriptor()
	// employeeplan.PlannedCountValidator is a validator for the "planned_count" field. It is called by the builders before save.
	employeeplan.PlannedCountValidator = employeeplanDescPlannedCount.Validators[0].(func(int) error)
	// employeeplanDescID is the schema descriptor for id field.
	employeeplanDescID := employeeplanFields[0].Descriptor()
	// employeeplan.DefaultID holds the default value on creation for the id field.
	employeeplan.DefaultID = employeeplanDescID.Default.(func() uuid.UUID)
	holidayFields := schema.Holiday{}.Fields()
	_ = holidayFields
	// holidayDescName is the schema descriptor for name field.
	holidayDescName := holidayFields[1].Descriptor()
	// holiday.NameValidator is a validator for the "name" field. It is called by the builders before save.
	holiday.NameValidator = holidayDescName.Validators[0].(func(string) error)
	jobrecordFields := schema.JobRecord{}.Fields()
	_ = jobrecordFields
	// jobrecordDescRowIndex is the schema descriptor for row_index field.
	jobrecordDescRowIndex := jobrecordFields[1].Descriptor()
	// jobrecord.RowIndexValidator is a validator for the "row_index" field. It is called by the builders before save.
	jobrecord.RowIndexValidator = jobrecordDescRowIndex.Validators[0].(func(int) error)
	// jobrecordDescOtdType is the schema descriptor for otd_type field.
	jobrecordDescOtdType := jobrecordFields[3].Descriptor()
	// jobrecord.DefaultOtdType holds the default value on creation for the otd_type field.
	jobrecord.DefaultOtdType = jobrecordDescOtdType.Default.(string)
	// jobrecordDescJobNumber is the schema descriptor for job_number field.
	jobrecordDescJobNumber := jobrecordFields[4].Descriptor()
	// jobrecord.DefaultJobNumber holds the default value on creation for the job_number field.
	jobrecord.DefaultJobNumber = jobrecordDescJobNumber.Default.(string)
	// jobrecordDescOrderBy is the schema descriptor for order_by field.
	jobrecordDescOrderBy := jobrecordFields[5].Descriptor()
	// jobrecord.DefaultOrderBy holds the default value on creation for the order_by field.
	jobrecord.DefaultOrderBy = jobrecordDescOrderBy.Default.(string)
	// jobrecordDescCompanyName is the schema descriptor for company_name field.
	jobrecordDescCompanyName := jobrecordFields[6].Descriptor()
	// jobrecord.DefaultCompanyName holds the default value on creation for the company_name field.
	jobrecord.DefaultCompanyName = jobrecordDescCompanyName.Default.(string)
	// jobrecordDescBoxType is the schema descriptor for box_type field.
	jobrecordDescBoxType := jobrecordFields[7].Descriptor()
	// jobrecord.DefaultBoxType holds the default value on creation for the box_type field.
	jobrecord.DefaultBoxType = jobrecordDescBoxType.Default.(string)
	// jobrecordDescBoxStyle is the schema descriptor for box_style field.
	jobrecordDescBoxStyle := jobrecordFields[8].Descriptor()
	// jobrecord.DefaultBoxStyle holds the default value on creation for the box_style field.
	jobrecord.DefaultBoxStyle = jobrecordDescBoxStyle.Default.(string)
	// jobrecordDescBoxColor is the schema descriptor for box_color field.
	jobrecordDescBoxColor := jobrecordFields[9].Descriptor()
	// jobrecord.DefaultBoxColor holds the default value on creation for the box_color field.
	jobrecord.DefaultBoxColor = jobrecordDescBoxColor.Default.(string)
	// jobrecordDescPrintingType is the schema descriptor for printing_type field.
	jobrecordDescPrintingType := jobrecordFields[10].Descriptor()
	// jobrecord.DefaultPrintingType holds the default value on creation for the printing_type field.
	jobrecord.DefaultPrintingType = jobrecordDescPrintingType.Default.(string)
	// jobrecordDescPrintingColor is the schema descriptor for printing_color field.
	jobrecordDescPrintingColor := jobrecordFields[11].Descriptor()
	// jobrecord.DefaultPrintingColor holds the default value on creation for the printing_color field.
	jobrecord.DefaultPrintingColor = jobrecordDescPrintingColor.Default.(string)
	// jobrecordDescSpecification is the schema descriptor for specification field.
	jobrecordDescSpecification := jobrecordFields[12].Descriptor()
	// jobrecord.DefaultSpecification holds the default value on creation for the specification field.
	jobrecord.DefaultSpecification = jobrecordDescSpecification.Default.(string)
	// jobrecordDescCity is the schema descriptor for city field.
	jobrecordDescCity := jobrecordFields[13].Descriptor()
	// jobrecord.DefaultCity holds the default value on creation for the city field.
	jobrecord.DefaultCity = jobrecordDescCity.Default.(string)
	// jobrecordDescQuantity is the schema descriptor for quantity field.
	jobrecordDescQuantity := jobrecordFields[14].Descriptor()
	// jobrecord.DefaultQuantity holds the default value on creation for the quantity field.
	jobrecord.DefaultQuantity = jobrecordDescQuantity.Default.(int)
	// jobrecordDescRepeatNew is the schema descriptor for repeat_new field.
	jobrecordDescRepeatNew := jobrecordFields[16].Descriptor()
	// jobrecord.DefaultRepeatNew holds the default value on creation for the repeat_new field.
	jobrecord.DefaultRepeatNew = jobrecordDescRepeatNew.Default.(string)
	// jobrecordDescCreatedAt is the schema descriptor for created_at field.
	jobrecordDescCreatedAt := jobrecordFields[17].Descriptor()
	// jobrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobrecord.DefaultCreatedAt = jobrecordDescCreatedAt.Default.(func() time.Time)
	// jobrecordDescUpdatedAt is the schema descriptor for updated_at field.
	jobrecordDescUpdatedAt := jobrecordFields[18].Descriptor()
	// jobrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobrecord.DefaultUpdatedAt = jobrecordDescUpdatedAt.Default.(func() time.Time)
	// jobrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobrecord.UpdateDefaultUpdatedAt = jobrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobrecordDescID is the schema descriptor for id field.
	jobrecordDescID := jobrecordFields[0].Descriptor()
	// jobrecord.DefaultID holds the default value on creation for the id field.
	jobrecord.DefaultID = jobrecordDescID.Default.(func() uuid.UUID)
	stepconfigFields := schema.StepConfig{}.Fields()
	_ = stepconfigFields
	// stepconfigDescStep is the schema descriptor for step field.
	stepconfigDescStep := stepconfigFields[0].Descriptor()
	// stepconfig.StepValidator is a validator for the "step" field. It is called by the builders before save.
	stepconfig.StepValidator = func() func(int) error {
		validators := stepconfigDescStep.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(step int) error {
			for _, fn := range fns {
				if err := fn(step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stepconfigDescStepName is the schema descriptor for step_name field.
	stepconfigDescStepName := stepconfigFields[1].Descriptor()
	// stepconfig.StepNameValidator is a validator for the "step_name" field. It is called by the builders before save.
	stepconfig.StepNameValidator = stepconfigDescStepName.Validators[0].(func(string) error)
	// stepconfigDescDoerEmails is the schema descriptor for doer_emails field.
	stepconfigDescDoerEmails := stepconfigFields[2].Descriptor()
	// stepconfig.DefaultDoerEmails holds the default value on creation for the doer_emails field.
	stepconfig.DefaultDoerEmails = stepconfigDescDoerEmails.Default.(string)
	// stepconfigDescVisibleColumns is the schema descriptor for visible_columns field.
	stepconfigDescVisibleColumns := stepconfigFields[3].Descriptor()
	// stepconfig.DefaultVisibleColumns holds the default value on creation for the visible_columns field.
	stepconfig.DefaultVisibleColumns = stepconfigDescVisibleColumns.Default.(string)
	// stepconfigDescUpdatedAt is the schema descriptor for updated_at field.
	stepconfigDescUpdatedAt := stepconfigFields[4].Descriptor()
	// stepconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stepconfig.DefaultUpdatedAt = stepconfigDescUpdatedAt.Default.(func() time.Time)
	// stepconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stepconfig.UpdateDefaultUpdatedAt = stepconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	steptaskFields := schema.StepTask{}.Fields()
	_ = steptaskFields
	// steptaskDescStep is the schema descriptor for step field.
	steptaskDescStep := steptaskFields[2].Descriptor()
	// steptask.StepValidator is a validator for the "step" field. It is called by the builders before save.
	steptask.StepValidator = func() func(int) error {
		validators := steptaskDescStep.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(step int) error {
			for _, fn := range fns {
				if err := fn(step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// steptaskDescStatus is the schema descriptor for status field.
	steptaskDescStatus := steptaskFields[5].Descriptor()
	// steptask.DefaultStatus holds the default value on creation for the status field.
	steptask.DefaultStatus = steptaskDescStatus.Default.(string)
	// steptask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	steptask.StatusValidator = steptaskDescStatus.Validators[0].(func(string) error)
	// steptaskDescDelayReason is the schema descriptor for delay_reason field.
	steptaskDescDelayReason := steptaskFields[6].Descriptor()
	// steptask.DefaultDelayReason holds the default value on creation for the delay_reason field.
	steptask.DefaultDelayReason = steptaskDescDelayReason.Default.(string)
	// steptaskDescWorkerName is the schema descriptor for worker_name field.
	steptaskDescWorkerName := steptaskFields[7].Descriptor()
	// steptask.DefaultWorkerName holds the default value on creation for the worker_name field.
	steptask.DefaultWorkerName = steptaskDescWorkerName.Default.(string)
	// steptaskDescCompletedQty is the schema descriptor for completed_qty field.
	steptaskDescCompletedQty := steptaskFields[8].Descriptor()
	// steptask.DefaultCompletedQty holds the default value on creation for the completed_qty field.
	steptask.DefaultCompletedQty = steptaskDescCompletedQty.Default.(int)
	// steptaskDescDelayHours is the schema descriptor for delay_hours field.
	steptaskDescDelayHours := steptaskFields[9].Descriptor()
	// steptask.DefaultDelayHours holds the default value on creation for the delay_hours field.
	steptask.DefaultDelayHours = steptaskDescDelayHours.Default.(float64)
	// steptaskDescCreatedAt is the schema descriptor for created_at field.
	steptaskDescCreatedAt := steptaskFields[10].Descriptor()
	// steptask.DefaultCreatedAt holds the default value on creation for the created_at field.
	steptask.DefaultCreatedAt = steptaskDescCreatedAt.Default.(func() time.Time)
	// steptaskDescUpdatedAt is the schema descriptor for updated_at field.
	steptaskDescUpdatedAt := steptaskFields[11].Descriptor()
	// steptask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	steptask.DefaultUpdatedAt = steptaskDescUpdatedAt.Default.(func() time.Time)
	// steptask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	steptask.UpdateDefaultUpdatedAt = steptaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// steptaskDescID is the schema descriptor for id field.
	steptaskDescID := steptaskFields[0].Descriptor()
	// steptask.DefaultID holds the default value on creation for the id field.
	steptask.DefaultID = steptaskDescID.Default.(func() uuid.UUID)
	taskcommentFields := schema.TaskComment{}.Fields()
	_ = taskcommentFields
	// taskcommentDescUserName is the schema descriptor for user_name field.
	taskcommentDescUserName := taskcommentFields[2].Descriptor()
	// taskcomment.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	taskcomment.UserNameValidator = taskcommentDescUserName.Validators[0].(func(string) error)
	// taskcommentDescComment is the schema descriptor for comment field.
	taskcommentDescComment := taskcommentFields[3].Descriptor()
	// taskcomment.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	taskcomment.CommentValidator = taskcommentDescComment.Validators[0].(func(string) error)
	// taskcommentDescCreatedAt is the schema descriptor for created_at field.
	taskcommentDescCreatedAt := taskcommentFields[4].Descriptor()
	// taskcomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskcomment.DefaultCreatedAt = taskcommentDescCreatedAt.Default.(func() time.Time)
	// taskcommentDescID is the schema descriptor for id field.
	taskcommentDescID := taskcommentFields[0].Descriptor()
	// taskcomment.DefaultID holds the default value on creation for the id field.
	taskcomment.DefaultID = taskcommentDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[2].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescDepartment is the schema descriptor for department field.
	userDescDepartment := userFields[3].Descriptor()
	// user.DefaultDepartment holds the default value on creation for the department field.
	user.DefaultDepartment = userDescDepartment.Default.(string)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[4].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescMobile is the schema descriptor for mobile field.
	userDescMobile := userFields[5].Descriptor()
	// user.DefaultMobile holds the default value on creation for the mobile field.
	user.DefaultMobile = userDescMobile.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

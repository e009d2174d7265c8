// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChecklistTasksColumns holds the columns for the "checklist_tasks" table.
	ChecklistTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "uid", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "employee_email", Type: field.TypeString},
		{Name: "employee_name", Type: field.TypeString, Default: ""},
		{Name: "frequency", Type: field.TypeString, Default: "Daily"},
		{Name: "target_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "Pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ChecklistTasksTable holds the schema information for the "checklist_tasks" table.
	ChecklistTasksTable = &schema.Table{
		Name:       "checklist_tasks",
		Columns:    ChecklistTasksColumns,
		PrimaryKey: []*schema.Column{ChecklistTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checklisttask_employee_email_target_date",
				Unique:  false,
				Columns: []*schema.Column{ChecklistTasksColumns[3], ChecklistTasksColumns[6]},
			},
			{
				Name:    "checklisttask_status_target_date",
				Unique:  false,
				Columns: []*schema.Column{ChecklistTasksColumns[7], ChecklistTasksColumns[6]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "task_uid", Type: field.TypeString, Unique: true},
		{Name: "employee_name", Type: field.TypeString, Default: ""},
		{Name: "assigned_to_email", Type: field.TypeString},
		{Name: "approver_email", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString},
		{Name: "target_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "priority", Type: field.TypeString, Default: "Normal"},
		{Name: "approval_needed", Type: field.TypeBool, Default: false},
		{Name: "assigned_by", Type: field.TypeString, Default: "System"},
		{Name: "remarks", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "Pending"},
		{Name: "previous_status", Type: field.TypeString, Default: "Pending"},
		{Name: "revised_date_request", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "revision_remarks", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "delegationtask_assigned_to_email_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[11]},
			},
			{
				Name:    "delegationtask_approver_email_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[11]},
			},
		},
	}
	// EmployeePlansColumns holds the columns for the "employee_plans" table.
	EmployeePlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "employee_email", Type: field.TypeString},
		{Name: "plan_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "planned_count", Type: field.TypeInt},
	}
	// EmployeePlansTable holds the schema information for the "employee_plans" table.
	EmployeePlansTable = &schema.Table{
		Name:       "employee_plans",
		Columns:    EmployeePlansColumns,
		PrimaryKey: []*schema.Column{EmployeePlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "employeeplan_employee_email_plan_date",
				Unique:  true,
				Columns: []*schema.Column{EmployeePlansColumns[1], EmployeePlansColumns[2]},
			},
		},
	}
	// HolidaysColumns holds the columns for the "holidays" table.
	HolidaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "holiday_date", Type: field.TypeTime, Unique: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "name", Type: field.TypeString},
	}
	// HolidaysTable holds the schema information for the "holidays" table.
	HolidaysTable = &schema.Table{
		Name:       "holidays",
		Columns:    HolidaysColumns,
		PrimaryKey: []*schema.Column{HolidaysColumns[0]},
	}
	// FmsJobRecordsColumns holds the columns for the "fms_job_records" table.
	FmsJobRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row_index", Type: field.TypeInt, Unique: true},
		{Name: "source_date", Type: field.TypeTime, Nullable: true},
		{Name: "otd_type", Type: field.TypeString, Default: ""},
		{Name: "job_number", Type: field.TypeString, Default: ""},
		{Name: "order_by", Type: field.TypeString, Default: ""},
		{Name: "company_name", Type: field.TypeString, Default: ""},
		{Name: "box_type", Type: field.TypeString, Default: ""},
		{Name: "box_style", Type: field.TypeString, Default: ""},
		{Name: "box_color", Type: field.TypeString, Default: ""},
		{Name: "printing_type", Type: field.TypeString, Default: ""},
		{Name: "printing_color", Type: field.TypeString, Default: ""},
		{Name: "specification", Type: field.TypeString, Default: ""},
		{Name: "city", Type: field.TypeString, Default: ""},
		{Name: "quantity", Type: field.TypeInt, Default: 0},
		{Name: "lead_time", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "repeat_new", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FmsJobRecordsTable holds the schema information for the "fms_job_records" table.
	FmsJobRecordsTable = &schema.Table{
		Name:       "fms_job_records",
		Columns:    FmsJobRecordsColumns,
		PrimaryKey: []*schema.Column{FmsJobRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobrecord_job_number",
				Unique:  false,
				Columns: []*schema.Column{FmsJobRecordsColumns[4]},
			},
		},
	}
	// FmsStepConfigColumns holds the columns for the "fms_step_config" table.
	FmsStepConfigColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step", Type: field.TypeInt, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "doer_emails", Type: field.TypeString, Default: ""},
		{Name: "visible_columns", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FmsStepConfigTable holds the schema information for the "fms_step_config" table.
	FmsStepConfigTable = &schema.Table{
		Name:       "fms_step_config",
		Columns:    FmsStepConfigColumns,
		PrimaryKey: []*schema.Column{FmsStepConfigColumns[0]},
	}
	// FmsStepTasksColumns holds the columns for the "fms_step_tasks" table.
	FmsStepTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "step", Type: field.TypeInt},
		{Name: "plan_date", Type: field.TypeTime, Nullable: true},
		{Name: "actual_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "Pending"},
		{Name: "delay_reason", Type: field.TypeString, Default: ""},
		{Name: "worker_name", Type: field.TypeString, Default: ""},
		{Name: "completed_qty", Type: field.TypeInt, Default: 0},
		{Name: "delay_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// FmsStepTasksTable holds the schema information for the "fms_step_tasks" table.
	FmsStepTasksTable = &schema.Table{
		Name:       "fms_step_tasks",
		Columns:    FmsStepTasksColumns,
		PrimaryKey: []*schema.Column{FmsStepTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fms_step_tasks_fms_job_records_tasks",
				Columns:    []*schema.Column{FmsStepTasksColumns[11]},
				RefColumns: []*schema.Column{FmsJobRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "steptask_job_id_step",
				Unique:  true,
				Columns: []*schema.Column{FmsStepTasksColumns[11], FmsStepTasksColumns[1]},
			},
			{
				Name:    "steptask_status",
				Unique:  false,
				Columns: []*schema.Column{FmsStepTasksColumns[4]},
			},
		},
	}
	// TaskCommentsColumns holds the columns for the "task_comments" table.
	TaskCommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_name", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskCommentsTable holds the schema information for the "task_comments" table.
	TaskCommentsTable = &schema.Table{
		Name:       "task_comments",
		Columns:    TaskCommentsColumns,
		PrimaryKey: []*schema.Column{TaskCommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_comments_tasks_comments",
				Columns:    []*schema.Column{TaskCommentsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskcomment_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskCommentsColumns[4], TaskCommentsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "Member"},
		{Name: "department", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "mobile", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChecklistTasksTable,
		TasksTable,
		EmployeePlansTable,
		HolidaysTable,
		FmsJobRecordsTable,
		FmsStepConfigTable,
		FmsStepTasksTable,
		TaskCommentsTable,
		UsersTable,
	}
)

func init() {
	ChecklistTasksTable.Annotation = &entsql.Annotation{
		Table: "checklist_tasks",
	}
	TasksTable.Annotation = &entsql.Annotation{
		Table: "tasks",
	}
	EmployeePlansTable.Annotation = &entsql.Annotation{
		Table: "employee_plans",
	}
	HolidaysTable.Annotation = &entsql.Annotation{
		Table: "holidays",
	}
	FmsJobRecordsTable.Annotation = &entsql.Annotation{
		Table: "fms_job_records",
	}
	FmsStepConfigTable.Annotation = &entsql.Annotation{
		Table: "fms_step_config",
	}
	FmsStepTasksTable.ForeignKeys[0].RefTable = FmsJobRecordsTable
	FmsStepTasksTable.Annotation = &entsql.Annotation{
		Table: "fms_step_tasks",
	}
	TaskCommentsTable.ForeignKeys[0].RefTable = TasksTable
	TaskCommentsTable.Annotation = &entsql.Annotation{
		Table: "task_comments",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}

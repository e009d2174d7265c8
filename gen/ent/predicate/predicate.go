// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChecklistTask is the predicate function for checklisttask builders.
type ChecklistTask func(*sql.Selector)

// DelegationTask is the predicate function for delegationtask builders.
type DelegationTask func(*sql.Selector)

// EmployeePlan is the predicate function for employeeplan builders.
type EmployeePlan func(*sql.Selector)

// Holiday is the predicate function for holiday builders.
type Holiday func(*sql.Selector)

// JobRecord is the predicate function for jobrecord builders.
type JobRecord func(*sql.Selector)

// StepConfig is the predicate function for stepconfig builders.
type StepConfig func(*sql.Selector)

// StepTask is the predicate function for steptask builders.
type StepTask func(*sql.Selector)

// TaskComment is the predicate function for taskcomment builders.
type TaskComment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

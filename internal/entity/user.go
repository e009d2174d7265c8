package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory entry for doers and approvers. No credentials live here.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeePlan is the planned task count for one employee on one day,
// compared against actuals in the MIS reports.
type EmployeePlan struct {
	ID            uuid.UUID `json:"id"`
	EmployeeEmail string    `json:"employee_email"`
	PlanDate      time.Time `json:"plan_date"`
	PlannedCount  int       `json:"planned_count"`
}

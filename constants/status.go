package constants

// TaskStatus is the canonical status for rows in step_tasks and checklist_tasks.
type TaskStatus string

// Stable values (store these exact strings in DB).
const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// DelegationStatus covers the delegation-task state machine. A rejection
// restores previous_status; "Revised" adopts the requested revision date.
type DelegationStatus string

const (
	DelegationPending         DelegationStatus = "Pending"
	DelegationWaitingApproval DelegationStatus = "Waiting Approval"
	DelegationRevisionRequest DelegationStatus = "Revision Requested"
	DelegationRevised         DelegationStatus = "Revised"
	DelegationCompleted       DelegationStatus = "Completed"
)

var taskStatuses = []TaskStatus{TaskStatusPending, TaskStatusCompleted}

var delegationStatuses = []DelegationStatus{
	DelegationPending,
	DelegationWaitingApproval,
	DelegationRevisionRequest,
	DelegationRevised,
	DelegationCompleted,
}

func TaskStatuses() []string {
	out := make([]string, len(taskStatuses))
	for i, s := range taskStatuses {
		out[i] = string(s)
	}
	return out
}

func DelegationStatuses() []string {
	out := make([]string, len(delegationStatuses))
	for i, s := range delegationStatuses {
		out[i] = string(s)
	}
	return out
}

package ports

import (
	"github.com/le0623/slack-app-demo/internal/core/domain"
)

// AutomationStore is the in-memory state shared by the event handlers
// and the scheduled jobs. Collections are append-only except for the
// approval status transition.
type AutomationStore interface {
	AppendTask(task domain.Task)
	AppendApproval(approval domain.Approval)
	AppendWorkflow(workflow domain.Workflow)

	// UpdateApproval applies mutate to the first approval matching id.
	// Returns false without error when no approval matches.
	UpdateApproval(id string, mutate func(*domain.Approval)) bool

	Tasks() []domain.Task
	Approvals() []domain.Approval
	Workflows() []domain.Workflow

	PendingTasks() []domain.Task
	TaskCount() int
	PendingApprovalCount() int
	WorkflowCount() int

	TaskByID(id string) (domain.Task, error)
	ApprovalByID(id string) (domain.Approval, error)
}

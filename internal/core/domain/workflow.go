package domain

type WorkflowStepStatus string

const (
	WorkflowStepCompleted  WorkflowStepStatus = "completed"
	WorkflowStepInProgress WorkflowStepStatus = "in_progress"
	WorkflowStepPending    WorkflowStepStatus = "pending"
)

type WorkflowStep struct {
	Name        string
	Description string
	Status      WorkflowStepStatus
}

// Workflow is a reserved store collection. No handler populates it
// yet; the daily report only counts it.
type Workflow struct {
	ID          string
	Name        string
	Description string
	Status      string
	Steps       []WorkflowStep
}

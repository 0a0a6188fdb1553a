package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	CreatedBy   string
	CreatedAt   time.Time
	Status      TaskStatus
}

// CreateTaskInput carries the fields extracted from a task modal
// submission. Description and DueDate are optional and default empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	CreatedBy   string
}

// NewTaskID returns a time-based task token. Uniqueness holds unless
// two tasks are created within the same nanosecond tick.
func NewTaskID() string {
	return fmt.Sprintf("task_%d", time.Now().UnixNano())
}

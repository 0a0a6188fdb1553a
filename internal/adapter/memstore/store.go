// Package memstore keeps the automation state in process memory.
// Nothing survives a restart; persistence is out of scope for this
// service.
package memstore

import (
	"sync"

	"github.com/le0623/slack-app-demo/internal/core/domain"
	"github.com/le0623/slack-app-demo/internal/core/ports"
)

// Store holds the three automation collections. Collections are
// append-only except for the approval status transition. A single
// mutex keeps concurrent webhook and scheduler access consistent;
// racing updates to the same approval remain last-write-wins.
type Store struct {
	mu        sync.Mutex
	tasks     []domain.Task
	workflows []domain.Workflow
	approvals []domain.Approval
}

var _ ports.AutomationStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) AppendTask(task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

func (s *Store) AppendApproval(approval domain.Approval) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals = append(s.approvals, approval)
}

func (s *Store) AppendWorkflow(workflow domain.Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflows = append(s.workflows, workflow)
}

// UpdateApproval mutates the first approval matching id. A miss is a
// silent no-op reported through the return value.
func (s *Store) UpdateApproval(id string, mutate func(*domain.Approval)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.approvals {
		if s.approvals[i].ID == id {
			mutate(&s.approvals[i])
			return true
		}
	}
	return false
}

func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

func (s *Store) Approvals() []domain.Approval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Approval(nil), s.approvals...)
}

func (s *Store) Workflows() []domain.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Workflow(nil), s.workflows...)
}

func (s *Store) PendingTasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Status == domain.TaskStatusPending {
			pending = append(pending, task)
		}
	}
	return pending
}

func (s *Store) TaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Store) PendingApprovalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, approval := range s.approvals {
		if approval.Status == domain.ApprovalStatusPending {
			count++
		}
	}
	return count
}

func (s *Store) WorkflowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workflows)
}

func (s *Store) TaskByID(id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *Store) ApprovalByID(id string) (domain.Approval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, approval := range s.approvals {
		if approval.ID == id {
			return approval, nil
		}
	}
	return domain.Approval{}, domain.ErrApprovalNotFound
}

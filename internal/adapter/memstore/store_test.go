package memstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/le0623/slack-app-demo/internal/adapter/memstore"
	"github.com/le0623/slack-app-demo/internal/core/domain"
)

func pendingTask(id, title string) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     title,
		Priority:  domain.TaskPriorityMedium,
		CreatedAt: time.Now(),
		Status:    domain.TaskStatusPending,
	}
}

func TestStore_AppendAndCount(t *testing.T) {
	store := memstore.New()
	require.Equal(t, 0, store.TaskCount())
	require.Equal(t, 0, store.WorkflowCount())
	require.Equal(t, 0, store.PendingApprovalCount())

	store.AppendTask(pendingTask("task_1", "first"))
	store.AppendTask(pendingTask("task_2", "second"))
	store.AppendWorkflow(domain.Workflow{ID: "wf_1", Name: "demo"})
	store.AppendApproval(domain.Approval{ID: "req_1", Status: domain.ApprovalStatusPending})

	require.Equal(t, 2, store.TaskCount())
	require.Equal(t, 1, store.WorkflowCount())
	require.Equal(t, 1, store.PendingApprovalCount())

	tasks := store.Tasks()
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
}

func TestStore_UpdateApproval(t *testing.T) {
	store := memstore.New()
	store.AppendApproval(domain.Approval{ID: "req_1", Status: domain.ApprovalStatusPending})

	now := time.Now()
	ok := store.UpdateApproval("req_1", func(a *domain.Approval) {
		a.Approve("U123", now)
	})
	require.True(t, ok)

	approval, err := store.ApprovalByID("req_1")
	require.NoError(t, err)
	require.Equal(t, domain.ApprovalStatusApproved, approval.Status)
	require.Equal(t, "U123", approval.ApprovedBy)
	require.Equal(t, 0, store.PendingApprovalCount())
}

func TestStore_UpdateApproval_MissIsNoOp(t *testing.T) {
	store := memstore.New()
	store.AppendApproval(domain.Approval{ID: "req_1", Status: domain.ApprovalStatusPending})

	ok := store.UpdateApproval("req_missing", func(a *domain.Approval) {
		a.Status = domain.ApprovalStatusApproved
	})
	require.False(t, ok)

	approval, err := store.ApprovalByID("req_1")
	require.NoError(t, err)
	require.Equal(t, domain.ApprovalStatusPending, approval.Status)
}

func TestStore_UpdateApproval_LastWriteWins(t *testing.T) {
	store := memstore.New()
	store.AppendApproval(domain.Approval{ID: "req_1", Status: domain.ApprovalStatusPending})

	now := time.Now()
	store.UpdateApproval("req_1", func(a *domain.Approval) { a.Approve("U1", now) })
	store.UpdateApproval("req_1", func(a *domain.Approval) { a.Reject("U2", now) })

	approval, err := store.ApprovalByID("req_1")
	require.NoError(t, err)
	require.Equal(t, domain.ApprovalStatusRejected, approval.Status)
	require.Equal(t, "U2", approval.RejectedBy)
	// The earlier approval attribution stays; only status is single-valued.
	require.Equal(t, "U1", approval.ApprovedBy)
}

func TestStore_PendingTasks_FiltersByStatus(t *testing.T) {
	store := memstore.New()
	store.AppendTask(pendingTask("task_1", "pending one"))
	done := pendingTask("task_2", "done one")
	done.Status = domain.TaskStatus("done")
	store.AppendTask(done)

	pending := store.PendingTasks()
	require.Len(t, pending, 1)
	require.Equal(t, "task_1", pending[0].ID)
}

func TestStore_ByID_NotFound(t *testing.T) {
	store := memstore.New()

	_, err := store.TaskByID("task_missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = store.ApprovalByID("req_missing")
	require.ErrorIs(t, err, domain.ErrApprovalNotFound)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := memstore.New()
	store.AppendTask(pendingTask("task_1", "original"))

	tasks := store.Tasks()
	tasks[0].Title = "mutated"

	again := store.Tasks()
	require.Equal(t, "original", again[0].Title)
}

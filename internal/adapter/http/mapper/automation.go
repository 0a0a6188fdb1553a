package mapper

import (
	"time"

	"github.com/le0623/slack-app-demo/internal/adapter/http/dto"
	"github.com/le0623/slack-app-demo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		Status:      string(task.Status),
	}
}

func ToApprovalItems(approvals []domain.Approval) []dto.ApprovalItem {
	items := make([]dto.ApprovalItem, 0, len(approvals))
	for _, approval := range approvals {
		items = append(items, ToApprovalItem(approval))
	}
	return items
}

func ToApprovalItem(approval domain.Approval) dto.ApprovalItem {
	item := dto.ApprovalItem{
		ID:        approval.ID,
		Requester: approval.Requester,
		Type:      approval.Type,
		Details:   approval.Details,
		Status:    string(approval.Status),
		CreatedAt: approval.CreatedAt.Format(time.RFC3339),
	}

	if !approval.ApprovedAt.IsZero() {
		item.ApprovedBy = approval.ApprovedBy
		item.ApprovedAt = approval.ApprovedAt.Format(time.RFC3339)
	}
	if !approval.RejectedAt.IsZero() {
		item.RejectedBy = approval.RejectedBy
		item.RejectedAt = approval.RejectedAt.Format(time.RFC3339)
	}

	return item
}

package ports

import (
	"context"

	"github.com/le0623/slack-app-demo/internal/core/domain"
)

// AutomationService holds the handlers behind the Slack event router.
// Each method performs at most one store mutation and one outbound
// call; the transport adapter acknowledges the event before invoking
// any of them.
type AutomationService interface {
	PublishDashboard(ctx context.Context, userID string) error
	HandleMessage(ctx context.Context, channelID, userID, text string) error
	SendCommandMenu(ctx context.Context, channelID string) error
	OpenTaskModal(ctx context.Context, triggerID string) error
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	SendWorkflowExample(ctx context.Context, channelID string) error
	RequestApproval(ctx context.Context, channelID, requesterID string) (domain.Approval, error)
	ApproveRequest(ctx context.Context, channelID, messageTS, requestID, userID string) error
	RejectRequest(ctx context.Context, channelID, messageTS, requestID, userID string) error
}

// ReportService owns the two time-triggered jobs.
type ReportService interface {
	SendDailyReport(ctx context.Context) error
	RemindPendingTasks(ctx context.Context) error
	RegisterJobs(scheduler Scheduler, reportHour, reportMinute int) error
}

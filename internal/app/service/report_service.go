package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/le0623/slack-app-demo/internal/core/ports"
	"github.com/le0623/slack-app-demo/pkg/blockkit"
)

// reminderTaskLimit caps how many pending tasks the hourly reminder
// enumerates; the headline count is never truncated.
const reminderTaskLimit = 5

// ReportService owns the two scheduled jobs. Both read the store and
// post to the configured default channel; a failed send is logged and
// swallowed so the scheduler keeps running.
type ReportService struct {
	store     ports.AutomationStore
	messenger ports.Messenger
	channelID string
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(store ports.AutomationStore, messenger ports.Messenger, channelID string) *ReportService {
	return &ReportService{store: store, messenger: messenger, channelID: channelID}
}

// SendDailyReport posts the daily summary. An empty store still
// reports, with every count at zero.
func (s *ReportService) SendDailyReport(ctx context.Context) error {
	blocks := []slack.Block{
		blockkit.Header("📊 Daily Automation Report"),
		blockkit.Section(fmt.Sprintf(
			"*Date:* %s\n*Total Tasks:* %d\n*Pending Approvals:* %d\n*Active Workflows:* %d",
			time.Now().Format("2006-01-02"),
			s.store.TaskCount(),
			s.store.PendingApprovalCount(),
			s.store.WorkflowCount(),
		)),
		blockkit.Divider(),
		blockkit.Section("*Summary*\nAll systems are running smoothly! ✅"),
	}
	return s.messenger.Send(ctx, s.channelID, blocks, "Daily automation report")
}

// RemindPendingTasks posts a reminder listing up to the first five
// pending tasks. No pending tasks means no message at all.
func (s *ReportService) RemindPendingTasks(ctx context.Context) error {
	pending := s.store.PendingTasks()
	if len(pending) == 0 {
		return nil
	}

	listed := pending
	if len(listed) > reminderTaskLimit {
		listed = listed[:reminderTaskLimit]
	}
	lines := make([]string, 0, len(listed))
	for _, task := range listed {
		lines = append(lines, fmt.Sprintf("• %s (Priority: %s)", task.Title, task.Priority))
	}

	blocks := []slack.Block{
		blockkit.Header("⏰ Pending Tasks Reminder"),
		blockkit.Section(fmt.Sprintf("You have %d pending task(s):\n\n%s",
			len(pending), strings.Join(lines, "\n"))),
		blockkit.Actions(
			blockkit.Button("View All Tasks", blockkit.ActionViewTasks),
		),
	}
	return s.messenger.Send(ctx, s.channelID, blocks, "Pending tasks reminder")
}

// RegisterJobs wires the daily report and the hourly reminder onto
// the scheduler. Job errors stop at the job boundary.
func (s *ReportService) RegisterJobs(scheduler ports.Scheduler, reportHour, reportMinute int) error {
	daily := fmt.Sprintf("%d %d * * *", reportMinute, reportHour)
	if err := scheduler.AddJob(daily, func() {
		if err := s.SendDailyReport(context.Background()); err != nil {
			zap.L().Error("failed to send daily report", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	if err := scheduler.AddJob("0 * * * *", func() {
		if err := s.RemindPendingTasks(context.Background()); err != nil {
			zap.L().Error("failed to send pending task reminder", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	return nil
}

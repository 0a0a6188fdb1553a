package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/le0623/slack-app-demo/internal/adapter/memstore"
	"github.com/le0623/slack-app-demo/internal/app/service"
	"github.com/le0623/slack-app-demo/internal/core/domain"
)

type schedulerMock struct {
	mock.Mock
}

func (m *schedulerMock) AddJob(schedule string, job func()) error {
	args := m.Called(schedule, job)
	return args.Error(0)
}

func (m *schedulerMock) Start() {
	m.Called()
}

func (m *schedulerMock) Stop() {
	m.Called()
}

func seedPendingTasks(store *memstore.Store, count int) {
	for i := 1; i <= count; i++ {
		store.AppendTask(domain.Task{
			ID:        fmt.Sprintf("task_%d", i),
			Title:     fmt.Sprintf("Task %d", i),
			Priority:  domain.TaskPriorityMedium,
			CreatedAt: time.Now(),
			Status:    domain.TaskStatusPending,
		})
	}
}

func TestSendDailyReport_EmptyStore(t *testing.T) {
	messenger := new(messengerMock)
	messenger.On("Send", mock.Anything, "#general", mock.Anything, "Daily automation report").Return(nil).Once()

	reports := service.NewReportService(memstore.New(), messenger, "#general")
	require.NoError(t, reports.SendDailyReport(context.Background()))

	summary := sectionText(t, blocksArg(t, messenger.Calls[0], 2)[1])
	require.Contains(t, summary, "*Total Tasks:* 0")
	require.Contains(t, summary, "*Pending Approvals:* 0")
	require.Contains(t, summary, "*Active Workflows:* 0")
	messenger.AssertExpectations(t)
}

func TestSendDailyReport_CountsStoreContents(t *testing.T) {
	store := memstore.New()
	seedPendingTasks(store, 3)
	store.AppendApproval(domain.Approval{ID: "req_1", Status: domain.ApprovalStatusPending})
	store.AppendApproval(domain.Approval{ID: "req_2", Status: domain.ApprovalStatusApproved})

	messenger := new(messengerMock)
	messenger.On("Send", mock.Anything, "#general", mock.Anything, mock.Anything).Return(nil).Once()

	reports := service.NewReportService(store, messenger, "#general")
	require.NoError(t, reports.SendDailyReport(context.Background()))

	summary := sectionText(t, blocksArg(t, messenger.Calls[0], 2)[1])
	require.Contains(t, summary, "*Total Tasks:* 3")
	require.Contains(t, summary, "*Pending Approvals:* 1")
	require.Contains(t, summary, "*Active Workflows:* 0")
}

func TestRemindPendingTasks_NoPendingMeansNoMessage(t *testing.T) {
	messenger := new(messengerMock)

	reports := service.NewReportService(memstore.New(), messenger, "#general")
	require.NoError(t, reports.RemindPendingTasks(context.Background()))

	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindPendingTasks_TruncatesListButNotCount(t *testing.T) {
	store := memstore.New()
	seedPendingTasks(store, 7)

	messenger := new(messengerMock)
	messenger.On("Send", mock.Anything, "#general", mock.Anything, "Pending tasks reminder").Return(nil).Once()

	reports := service.NewReportService(store, messenger, "#general")
	require.NoError(t, reports.RemindPendingTasks(context.Background()))

	text := sectionText(t, blocksArg(t, messenger.Calls[0], 2)[1])
	require.Contains(t, text, "You have 7 pending task(s)")
	require.Equal(t, 5, strings.Count(text, "• "))
	require.Contains(t, text, "Task 1 (Priority: medium)")
	require.Contains(t, text, "Task 5 (Priority: medium)")
	require.NotContains(t, text, "Task 6")
	messenger.AssertExpectations(t)
}

func TestRemindPendingTasks_ListsAllWhenUnderLimit(t *testing.T) {
	store := memstore.New()
	seedPendingTasks(store, 2)

	messenger := new(messengerMock)
	messenger.On("Send", mock.Anything, "#general", mock.Anything, mock.Anything).Return(nil).Once()

	reports := service.NewReportService(store, messenger, "#general")
	require.NoError(t, reports.RemindPendingTasks(context.Background()))

	text := sectionText(t, blocksArg(t, messenger.Calls[0], 2)[1])
	require.Contains(t, text, "You have 2 pending task(s)")
	require.Equal(t, 2, strings.Count(text, "• "))

	blocks := blocksArg(t, messenger.Calls[0], 2)
	actions, ok := blocks[2].(*slack.ActionBlock)
	require.True(t, ok)
	button, ok := actions.Elements.ElementSet[0].(*slack.ButtonBlockElement)
	require.True(t, ok)
	require.Equal(t, "view_tasks", button.ActionID)
}

func TestRegisterJobs_Schedules(t *testing.T) {
	scheduler := new(schedulerMock)
	scheduler.On("AddJob", "0 9 * * *", mock.Anything).Return(nil).Once()
	scheduler.On("AddJob", "0 * * * *", mock.Anything).Return(nil).Once()

	reports := service.NewReportService(memstore.New(), new(messengerMock), "#general")
	require.NoError(t, reports.RegisterJobs(scheduler, 9, 0))
	scheduler.AssertExpectations(t)
}

func TestRegisterJobs_PropagatesSchedulerError(t *testing.T) {
	scheduler := new(schedulerMock)
	scheduler.On("AddJob", "30 18 * * *", mock.Anything).Return(errors.New("bad spec")).Once()

	reports := service.NewReportService(memstore.New(), new(messengerMock), "#general")
	require.Error(t, reports.RegisterJobs(scheduler, 18, 30))
}

// A failed send inside a registered job must stop at the job
// boundary: the wrapped callback never panics or propagates.
func TestRegisteredJobsSwallowDeliveryErrors(t *testing.T) {
	store := memstore.New()
	seedPendingTasks(store, 1)

	messenger := new(messengerMock)
	messenger.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("rate limited"))

	scheduler := new(schedulerMock)
	jobs := make([]func(), 0, 2)
	scheduler.On("AddJob", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		jobs = append(jobs, args.Get(1).(func()))
	}).Return(nil).Twice()

	reports := service.NewReportService(store, messenger, "#general")
	require.NoError(t, reports.RegisterJobs(scheduler, 9, 0))
	require.Len(t, jobs, 2)

	for _, job := range jobs {
		require.NotPanics(t, job)
	}
}

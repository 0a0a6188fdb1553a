package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/le0623/slack-app-demo/internal/core/domain"
	"github.com/le0623/slack-app-demo/internal/core/ports"
	"github.com/le0623/slack-app-demo/pkg/blockkit"
)

const greetingText = "Hello! 👋 Use `/automation` to get started with automations."

// exampleWorkflowSteps is the fixed demo workflow shown for the
// "workflow" keyword and the view_workflow_example action.
var exampleWorkflowSteps = []domain.WorkflowStep{
	{Name: "Data Collection", Description: "Collecting data from sources", Status: domain.WorkflowStepCompleted},
	{Name: "Data Processing", Description: "Processing collected data", Status: domain.WorkflowStepCompleted},
	{Name: "Report Generation", Description: "Generating final report", Status: domain.WorkflowStepInProgress},
	{Name: "Notification", Description: "Sending notifications", Status: domain.WorkflowStepPending},
}

// AutomationService implements the handlers behind the Slack event
// router. Every handler performs at most one store mutation followed
// by one outbound call; outbound failures are logged by the caller or
// returned, never retried here.
type AutomationService struct {
	store     ports.AutomationStore
	messenger ports.Messenger
}

var _ ports.AutomationService = (*AutomationService)(nil)

func NewAutomationService(store ports.AutomationStore, messenger ports.Messenger) *AutomationService {
	return &AutomationService{store: store, messenger: messenger}
}

// PublishDashboard renders the static dashboard on the user's App
// Home tab.
func (s *AutomationService) PublishDashboard(ctx context.Context, userID string) error {
	return s.messenger.Publish(ctx, userID, blockkit.DashboardHome())
}

// HandleMessage routes a channel message by case-insensitive keyword.
// Precedence: hello/hi, workflow, task, approval. Unmatched text is a
// silent no-op.
func (s *AutomationService) HandleMessage(ctx context.Context, channelID, userID, text string) error {
	lowered := strings.ToLower(text)

	switch {
	case strings.Contains(lowered, "hello") || strings.Contains(lowered, "hi"):
		return s.messenger.Send(ctx, channelID, []slack.Block{blockkit.Section(greetingText)}, greetingText)
	case strings.Contains(lowered, "workflow"):
		return s.SendWorkflowExample(ctx, channelID)
	case strings.Contains(lowered, "task"):
		return s.sendTaskPrompt(ctx, channelID)
	case strings.Contains(lowered, "approval"):
		_, err := s.RequestApproval(ctx, channelID, userID)
		return err
	default:
		return nil
	}
}

// SendCommandMenu posts the /automation command menu.
func (s *AutomationService) SendCommandMenu(ctx context.Context, channelID string) error {
	blocks := []slack.Block{
		blockkit.Header("🤖 Automation Commands"),
		blockkit.Section("Available automation commands:\n\n" +
			"• *Workflow* - View workflow automation example\n" +
			"• *Task* - Create and manage tasks\n" +
			"• *Approval* - Request approvals\n" +
			"• *Schedule* - Schedule automated tasks"),
		blockkit.Divider(),
		blockkit.Actions(
			blockkit.Button("🔄 View Workflow", blockkit.ActionViewWorkflowExample),
			blockkit.Button("📝 Create Task", blockkit.ActionOpenTaskModal),
			blockkit.Button("📋 Request Approval", blockkit.ActionRequestApproval),
		),
	}
	return s.messenger.Send(ctx, channelID, blocks, "Automation commands")
}

// OpenTaskModal opens the task creation modal against the
// interaction's trigger.
func (s *AutomationService) OpenTaskModal(ctx context.Context, triggerID string) error {
	return s.messenger.OpenModal(ctx, triggerID, blockkit.TaskModal())
}

// CreateTask stores a pending task built from a modal submission and
// DMs a confirmation to its creator.
func (s *AutomationService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          domain.NewTaskID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now(),
		Status:      domain.TaskStatusPending,
	}
	s.store.AppendTask(task)

	dueDate := task.DueDate
	if dueDate == "" {
		dueDate = "Not set"
	}
	blocks := []slack.Block{
		blockkit.Header("✅ Task Created"),
		blockkit.Section(fmt.Sprintf("*Title:* %s\n*Priority:* %s\n*Due Date:* %s\n*Status:* Pending",
			task.Title, task.Priority, dueDate)),
	}

	err := s.messenger.Send(ctx, input.CreatedBy, blocks, fmt.Sprintf("Task created: %s", task.Title))
	return task, err
}

// SendWorkflowExample posts the demo workflow status message.
func (s *AutomationService) SendWorkflowExample(ctx context.Context, channelID string) error {
	blocks := blockkit.WorkflowMessage(
		"Daily Report Automation",
		"In Progress",
		"Automated daily report generation workflow",
		workflowStepsToBlockkit(exampleWorkflowSteps),
	)
	return s.messenger.Send(ctx, channelID, blocks, "Workflow status")
}

// RequestApproval stores a pending approval and posts the interactive
// approval card.
func (s *AutomationService) RequestApproval(ctx context.Context, channelID, requesterID string) (domain.Approval, error) {
	approval := domain.Approval{
		ID:        domain.NewRequestID(),
		Requester: requesterID,
		Type:      "Budget Approval",
		Details:   "Requesting approval for Q4 marketing budget",
		Status:    domain.ApprovalStatusPending,
		CreatedAt: time.Now(),
	}
	s.store.AppendApproval(approval)

	blocks := blockkit.ApprovalMessage(
		fmt.Sprintf("<@%s>", requesterID),
		approval.Type,
		approval.Details,
		approval.ID,
	)
	err := s.messenger.Send(ctx, channelID, blocks, "Approval request")
	return approval, err
}

// ApproveRequest marks the approval approved and rewrites the original
// card in place with a read-only confirmation. An unknown request id
// is a silent no-op on the store; the message is still rewritten.
func (s *AutomationService) ApproveRequest(ctx context.Context, channelID, messageTS, requestID, userID string) error {
	now := time.Now()
	if !s.store.UpdateApproval(requestID, func(a *domain.Approval) {
		a.Approve(userID, now)
	}) {
		zap.L().Warn("approve for unknown request", zap.String("request_id", requestID))
	}

	blocks := []slack.Block{
		blockkit.Header("✅ Request Approved"),
		blockkit.Section(fmt.Sprintf("Request `%s` has been approved by <@%s>", requestID, userID)),
		blockkit.Context(fmt.Sprintf("Approved at: %s", now.Format("2006-01-02 15:04:05"))),
	}
	return s.messenger.Update(ctx, channelID, messageTS, blocks, "Request approved")
}

// RejectRequest is the rejection counterpart of ApproveRequest.
func (s *AutomationService) RejectRequest(ctx context.Context, channelID, messageTS, requestID, userID string) error {
	now := time.Now()
	if !s.store.UpdateApproval(requestID, func(a *domain.Approval) {
		a.Reject(userID, now)
	}) {
		zap.L().Warn("reject for unknown request", zap.String("request_id", requestID))
	}

	blocks := []slack.Block{
		blockkit.Header("❌ Request Rejected"),
		blockkit.Section(fmt.Sprintf("Request `%s` has been rejected by <@%s>", requestID, userID)),
		blockkit.Context(fmt.Sprintf("Rejected at: %s", now.Format("2006-01-02 15:04:05"))),
	}
	return s.messenger.Update(ctx, channelID, messageTS, blocks, "Request rejected")
}

func (s *AutomationService) sendTaskPrompt(ctx context.Context, channelID string) error {
	blocks := []slack.Block{
		blockkit.Header("📝 Task Management"),
		blockkit.Section("Click the button below to create a new task using our interactive modal."),
		blockkit.Actions(
			blockkit.Button("Create Task", blockkit.ActionOpenTaskModal),
		),
	}
	return s.messenger.Send(ctx, channelID, blocks, "Task management")
}

func workflowStepsToBlockkit(steps []domain.WorkflowStep) []blockkit.WorkflowStep {
	converted := make([]blockkit.WorkflowStep, 0, len(steps))
	for _, step := range steps {
		converted = append(converted, blockkit.WorkflowStep{
			Name:        step.Name,
			Description: step.Description,
			Status:      string(step.Status),
		})
	}
	return converted
}

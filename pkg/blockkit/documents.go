package blockkit

import (
	"fmt"

	"github.com/slack-go/slack"
)

// TaskModalCallbackID correlates a task modal with its later
// submission payload.
const TaskModalCallbackID = "create_task_modal"

// Stable action identifiers carried by interactive elements. The
// router dispatches on these, never on element position.
const (
	ActionOpenTaskModal       = "open_task_modal"
	ActionViewWorkflowExample = "view_workflow_example"
	ActionRequestApproval     = "request_approval"
	ActionApproveRequest      = "approve_request"
	ActionRejectRequest       = "reject_request"
	ActionViewDetails         = "view_details"
	ActionViewWorkflows       = "view_workflows"
	ActionViewReports         = "view_reports"
	ActionViewTasks           = "view_tasks"
)

// WorkflowStep is one step of a workflow status message.
type WorkflowStep struct {
	Name        string
	Description string
	Status      string
}

// WorkflowMessage renders a workflow status message. Steps keep their
// input order and are numbered from 1; only a status of exactly
// "completed" gets the check glyph.
func WorkflowMessage(title, status, description string, steps []WorkflowStep) []slack.Block {
	blocks := []slack.Block{
		Header("🔄 " + title),
		Section(fmt.Sprintf("*Status:* %s\n*Description:* %s", status, description)),
		Divider(),
		Header("Workflow Steps"),
	}

	for i, step := range steps {
		glyph := "⏳"
		if step.Status == "completed" {
			glyph = "✅"
		}
		blocks = append(blocks, Section(
			fmt.Sprintf("%s *Step %d:* %s\n_%s_", glyph, i+1, step.Name, step.Description)))
	}

	return blocks
}

// TaskModal renders the task creation modal. Title and priority are
// required; description and due date are optional.
func TaskModal() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: TaskModalCallbackID,
		Title:      slack.NewTextBlockObject(slack.PlainTextType, "Create Task", false, false),
		Submit:     slack.NewTextBlockObject(slack.PlainTextType, "Create", false, false),
		Close:      slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				Input("task_title", "Task Title",
					TextInput("title_input", WithPlaceholder("Enter task title"))),
				Input("task_description", "Description",
					TextInput("description_input", WithPlaceholder("Enter task description"), Multiline()),
					Optional()),
				Input("task_priority", "Priority",
					SelectMenu("priority_select", "Select priority", []SelectOption{
						{Label: "High", Value: "high"},
						{Label: "Medium", Value: "medium"},
						{Label: "Low", Value: "low"},
					})),
				Input("task_due_date", "Due Date",
					DatePicker("due_date_picker"),
					Optional()),
			},
		},
	}
}

// ApprovalMessage renders an approval request card. The three action
// buttons all carry the request id as their value.
func ApprovalMessage(requester, requestType, details, requestID string) []slack.Block {
	return []slack.Block{
		Header("📋 Approval Request"),
		Section(fmt.Sprintf("*Requester:* %s\n*Type:* %s\n*Details:* %s",
			requester, requestType, details)),
		Divider(),
		Actions(
			Button("✅ Approve", ActionApproveRequest,
				WithValue(requestID), WithStyle(slack.StylePrimary)),
			Button("❌ Reject", ActionRejectRequest,
				WithValue(requestID), WithStyle(slack.StyleDanger)),
			Button("ℹ️ View Details", ActionViewDetails,
				WithValue(requestID)),
		),
		Context(fmt.Sprintf("Request ID: `%s`", requestID)),
	}
}

// DashboardHome renders the static App Home dashboard. Recent
// activity is a fixed placeholder; nothing is read from the store.
func DashboardHome() slack.HomeTabViewRequest {
	return slack.HomeTabViewRequest{
		Type: slack.VTHomeTab,
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				Header("🏠 Automation Dashboard"),
				Section("Welcome to your automation dashboard! Use the buttons below to manage your workflows."),
				Divider(),
				Section("*Quick Actions*"),
				Actions(
					Button("📝 Create Task", ActionOpenTaskModal),
					Button("🔄 View Workflows", ActionViewWorkflows),
					Button("📊 View Reports", ActionViewReports),
				),
				Divider(),
				Section("*Recent Activity*"),
				Context("No recent activity"),
			},
		},
	}
}

// Package slackbot connects the automation handlers to Slack over
// Socket Mode. The adapter acknowledges every inbound unit of work
// before invoking a handler so the platform never times out waiting.
package slackbot

import (
	"context"
	"sync/atomic"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"

	"github.com/le0623/slack-app-demo/internal/core/domain"
	"github.com/le0623/slack-app-demo/internal/core/ports"
	"github.com/le0623/slack-app-demo/pkg/blockkit"
)

const automationCommand = "/automation"

// Bot runs the Socket Mode event loop and routes events, slash
// commands, block actions and view submissions to the automation
// service.
type Bot struct {
	client     *slack.Client
	socket     *socketmode.Client
	automation ports.AutomationService

	botUserID string
	connected atomic.Bool
}

// NewClient builds a Web API client configured for Socket Mode.
func NewClient(botToken, appToken string) *slack.Client {
	return slack.New(botToken, slack.OptionAppLevelToken(appToken))
}

func NewBot(client *slack.Client, automation ports.AutomationService) *Bot {
	return &Bot{
		client:     client,
		socket:     socketmode.New(client),
		automation: automation,
	}
}

// Connected reports whether the Socket Mode connection is up.
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// Run starts the event loop and blocks until the context is
// canceled.
func (b *Bot) Run(ctx context.Context) error {
	authResp, err := b.client.AuthTestContext(ctx)
	if err != nil {
		zap.L().Warn("auth test failed, bot message filtering degraded", zap.Error(err))
	} else {
		b.botUserID = authResp.UserID
	}

	go func() {
		for evt := range b.socket.Events {
			b.handleEvent(ctx, evt)
		}
	}()

	return b.socket.RunContext(ctx)
}

func (b *Bot) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		zap.L().Info("connecting to slack socket mode")

	case socketmode.EventTypeConnected:
		zap.L().Info("connected to slack socket mode")
		b.connected.Store(true)

	case socketmode.EventTypeConnectionError:
		zap.L().Warn("slack socket mode connection error")
		b.connected.Store(false)

	case socketmode.EventTypeEventsAPI:
		event, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		b.socket.Ack(*evt.Request)
		b.handleEventsAPI(ctx, event)

	case socketmode.EventTypeSlashCommand:
		cmd, ok := evt.Data.(slack.SlashCommand)
		if !ok {
			return
		}
		b.socket.Ack(*evt.Request)
		b.handleSlashCommand(ctx, cmd)

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			return
		}
		b.socket.Ack(*evt.Request)
		b.handleInteraction(ctx, callback)
	}
}

func (b *Bot) handleEventsAPI(ctx context.Context, event slackevents.EventsAPIEvent) {
	if event.Type != slackevents.CallbackEvent {
		return
	}

	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.AppHomeOpenedEvent:
		if err := b.automation.PublishDashboard(ctx, ev.User); err != nil {
			zap.L().Error("failed to publish home tab", zap.String("user", ev.User), zap.Error(err))
		}

	case *slackevents.MessageEvent:
		// Skip edits, joins and our own (or any bot's) messages.
		if ev.SubType != "" || ev.BotID != "" || ev.User == b.botUserID {
			return
		}
		if err := b.automation.HandleMessage(ctx, ev.Channel, ev.User, ev.Text); err != nil {
			zap.L().Error("failed to handle message", zap.String("channel", ev.Channel), zap.Error(err))
		}
	}
}

func (b *Bot) handleSlashCommand(ctx context.Context, cmd slack.SlashCommand) {
	switch cmd.Command {
	case automationCommand:
		if err := b.automation.SendCommandMenu(ctx, cmd.ChannelID); err != nil {
			zap.L().Error("failed to send command menu", zap.String("channel", cmd.ChannelID), zap.Error(err))
		}
	default:
		zap.L().Debug("ignoring unknown slash command", zap.String("command", cmd.Command))
	}
}

func (b *Bot) handleInteraction(ctx context.Context, callback slack.InteractionCallback) {
	if callback.Type == slack.InteractionTypeViewSubmission {
		b.handleViewSubmission(ctx, callback)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		switch action.ActionID {
		case blockkit.ActionOpenTaskModal:
			if err := b.automation.OpenTaskModal(ctx, callback.TriggerID); err != nil {
				zap.L().Error("failed to open task modal", zap.Error(err))
			}

		case blockkit.ActionViewWorkflowExample:
			if err := b.automation.SendWorkflowExample(ctx, callback.Channel.ID); err != nil {
				zap.L().Error("failed to send workflow example", zap.Error(err))
			}

		case blockkit.ActionRequestApproval:
			if _, err := b.automation.RequestApproval(ctx, callback.Channel.ID, callback.User.ID); err != nil {
				zap.L().Error("failed to request approval", zap.Error(err))
			}

		case blockkit.ActionApproveRequest:
			if err := b.automation.ApproveRequest(ctx, callback.Channel.ID,
				callback.Message.Timestamp, action.Value, callback.User.ID); err != nil {
				zap.L().Error("failed to approve request", zap.String("request_id", action.Value), zap.Error(err))
			}

		case blockkit.ActionRejectRequest:
			if err := b.automation.RejectRequest(ctx, callback.Channel.ID,
				callback.Message.Timestamp, action.Value, callback.User.ID); err != nil {
				zap.L().Error("failed to reject request", zap.String("request_id", action.Value), zap.Error(err))
			}

		case blockkit.ActionViewDetails, blockkit.ActionViewTasks,
			blockkit.ActionViewWorkflows, blockkit.ActionViewReports:
			// Recognized but not handled yet.

		default:
			zap.L().Debug("ignoring unknown action", zap.String("action_id", action.ActionID))
		}
	}
}

func (b *Bot) handleViewSubmission(ctx context.Context, callback slack.InteractionCallback) {
	if callback.View.CallbackID != blockkit.TaskModalCallbackID || callback.View.State == nil {
		return
	}

	input := taskInputFromViewState(callback.View.State.Values, callback.User.ID)
	if _, err := b.automation.CreateTask(ctx, input); err != nil {
		zap.L().Error("failed to create task from modal", zap.Error(err))
	}
}

// taskInputFromViewState pulls the form fields out of the submitted
// view state. Missing optional blocks yield zero values, so absent
// description and due date default to empty.
func taskInputFromViewState(values map[string]map[string]slack.BlockAction, userID string) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Title:       values["task_title"]["title_input"].Value,
		Description: values["task_description"]["description_input"].Value,
		Priority:    domain.TaskPriority(values["task_priority"]["priority_select"].SelectedOption.Value),
		DueDate:     values["task_due_date"]["due_date_picker"].SelectedDate,
		CreatedBy:   userID,
	}
}

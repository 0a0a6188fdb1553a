package slackbot

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/le0623/slack-app-demo/internal/core/ports"
)

// webAPI is the subset of the Slack Web API the messenger uses,
// narrowed for test doubles.
type webAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// Messenger implements the outbound port on top of the Slack Web API
// client. Calls are fire-and-forget from the store's point of view;
// retry and backoff stay inside the SDK.
type Messenger struct {
	api webAPI
}

var _ ports.Messenger = (*Messenger)(nil)

func NewMessenger(client *slack.Client) *Messenger {
	return &Messenger{api: client}
}

func (m *Messenger) Send(ctx context.Context, channelID string, blocks []slack.Block, fallback string) error {
	_, _, err := m.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false))
	return err
}

func (m *Messenger) Update(ctx context.Context, channelID, timestamp string, blocks []slack.Block, fallback string) error {
	_, _, _, err := m.api.UpdateMessageContext(ctx, channelID, timestamp,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false))
	return err
}

func (m *Messenger) Publish(ctx context.Context, userID string, view slack.HomeTabViewRequest) error {
	_, err := m.api.PublishViewContext(ctx, userID, view, "")
	return err
}

func (m *Messenger) OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	_, err := m.api.OpenViewContext(ctx, triggerID, view)
	return err
}

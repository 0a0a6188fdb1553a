package slackbot

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"

	"github.com/le0623/slack-app-demo/pkg/blockkit"
)

type webAPIFake struct {
	postChannel string
	postOptions int

	updateChannel   string
	updateTimestamp string

	publishUser string
	openTrigger string
	openView    slack.ModalViewRequest

	err error
}

func (f *webAPIFake) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.postChannel = channelID
	f.postOptions = len(options)
	return channelID, "1.0", f.err
}

func (f *webAPIFake) UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	f.updateChannel = channelID
	f.updateTimestamp = timestamp
	return channelID, timestamp, "", f.err
}

func (f *webAPIFake) PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error) {
	f.publishUser = userID
	return nil, f.err
}

func (f *webAPIFake) OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	f.openTrigger = triggerID
	f.openView = view
	return nil, f.err
}

func TestMessenger_Send(t *testing.T) {
	fake := &webAPIFake{}
	m := &Messenger{api: fake}

	err := m.Send(context.Background(), "C1", []slack.Block{blockkit.Section("hi")}, "hi")
	require.NoError(t, err)
	require.Equal(t, "C1", fake.postChannel)
	// Blocks plus fallback text.
	require.Equal(t, 2, fake.postOptions)
}

func TestMessenger_Update(t *testing.T) {
	fake := &webAPIFake{}
	m := &Messenger{api: fake}

	err := m.Update(context.Background(), "C1", "1712.34", []slack.Block{blockkit.Section("done")}, "done")
	require.NoError(t, err)
	require.Equal(t, "C1", fake.updateChannel)
	require.Equal(t, "1712.34", fake.updateTimestamp)
}

func TestMessenger_OpenModal(t *testing.T) {
	fake := &webAPIFake{}
	m := &Messenger{api: fake}

	err := m.OpenModal(context.Background(), "trigger-9", blockkit.TaskModal())
	require.NoError(t, err)
	require.Equal(t, "trigger-9", fake.openTrigger)
	require.Equal(t, "create_task_modal", fake.openView.CallbackID)
}

func TestMessenger_PublishPropagatesDeliveryError(t *testing.T) {
	fake := &webAPIFake{err: errors.New("invalid_auth")}
	m := &Messenger{api: fake}

	err := m.Publish(context.Background(), "U1", blockkit.DashboardHome())
	require.Error(t, err)
	require.Equal(t, "U1", fake.publishUser)
}

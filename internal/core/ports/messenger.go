package ports

import (
	"context"

	"github.com/slack-go/slack"
)

// Messenger is the outbound side of the Slack Web API. Delivery
// errors (rate limit, invalid channel, auth) are returned to the
// caller, which logs and continues.
type Messenger interface {
	// Send posts a new block message to a channel. The fallback text
	// is used by notifications and clients that cannot render blocks.
	Send(ctx context.Context, channelID string, blocks []slack.Block, fallback string) error

	// Update replaces the whole block set of an existing message.
	Update(ctx context.Context, channelID, timestamp string, blocks []slack.Block, fallback string) error

	// Publish renders a view on a user's App Home tab.
	Publish(ctx context.Context, userID string, view slack.HomeTabViewRequest) error

	// OpenModal opens a modal bound to an interaction trigger.
	OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
}

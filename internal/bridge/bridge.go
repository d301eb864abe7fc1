package bridge

import (
	"context"
	"encoding/json"
	"log/slog"

	"printwatch/internal/logging"
	"printwatch/internal/notify"
)

// Bridge filters inbound plugin messages by sender identity and forwards
// qualifying payloads to a notifier. All dependencies are injected once at
// construction; the bridge itself holds no mutable state.
type Bridge struct {
	identity string
	title    string
	notifier notify.Notifier
	logger   *slog.Logger
}

// payload is the recognized shape of an inbound plugin message. Every other
// field is ignored.
type payload struct {
	Text *string `json:"text"`
}

// New constructs a bridge that accepts messages from the given plugin
// identity and dispatches notifications with the given title.
func New(identity, title string, notifier notify.Notifier, logger *slog.Logger) *Bridge {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Bridge{
		identity: identity,
		title:    title,
		notifier: notifier,
		logger:   logging.NewComponentLogger(logger, "bridge"),
	}
}

// HandleMessage processes one inbound (sender, payload) event. Messages
// from other senders, payloads without a non-empty text field, and
// malformed payloads are dropped without side effects. The handler never
// panics and never reports an error to the caller; a failed dispatch is
// logged and otherwise degrades to "no notification shown".
func (b *Bridge) HandleMessage(ctx context.Context, senderID string, data json.RawMessage) {
	if senderID != b.identity {
		return
	}

	var msg payload
	if err := json.Unmarshal(data, &msg); err != nil {
		b.logger.Debug("ignoring malformed payload",
			logging.String(logging.FieldSender, senderID),
			logging.Error(err),
		)
		return
	}
	if msg.Text == nil || *msg.Text == "" {
		return
	}

	n := notify.Notification{
		Title:       b.title,
		Body:        *msg.Text,
		Kind:        notify.KindInfo,
		AutoDismiss: true,
	}
	if err := b.notifier.Send(ctx, n); err != nil {
		b.logger.Warn("notification dispatch failed",
			logging.String(logging.FieldSender, senderID),
			logging.Error(err),
		)
	}
}

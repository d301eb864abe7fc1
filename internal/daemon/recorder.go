package daemon

import (
	"context"
	"log/slog"

	"printwatch/internal/history"
	"printwatch/internal/logging"
	"printwatch/internal/notify"
)

// recordingNotifier journals every notification before forwarding it. A
// journal failure is logged and does not block delivery.
type recordingNotifier struct {
	next   notify.Notifier
	store  *history.Store
	sender string
	logger *slog.Logger
}

// sender is the configured plugin identity; the bridge only forwards
// messages from that sender, so it is stamped on every journal entry.
func newRecordingNotifier(next notify.Notifier, store *history.Store, sender string, logger *slog.Logger) *recordingNotifier {
	return &recordingNotifier{
		next:   next,
		store:  store,
		sender: sender,
		logger: logging.NewComponentLogger(logger, "history"),
	}
}

func (r *recordingNotifier) Name() string { return "recording" }

func (r *recordingNotifier) Send(ctx context.Context, n notify.Notification) error {
	err := r.store.Record(ctx, history.Entry{
		Sender: r.sender,
		Title:  n.Title,
		Body:   n.Body,
	})
	if err != nil {
		r.logger.Warn("failed to journal notification", logging.Error(err))
	}
	return r.next.Send(ctx, n)
}

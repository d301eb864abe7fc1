package notify

import (
	"context"
	"log/slog"

	"printwatch/internal/logging"
)

// Multi fans a notification out to several sinks. A failing sink is logged
// and skipped; the remaining sinks still run. Send never returns an error
// because a missed popup is an acceptable, silent outcome.
type Multi struct {
	sinks  []Notifier
	logger *slog.Logger
}

// NewMulti combines sinks into one notifier.
func NewMulti(logger *slog.Logger, sinks ...Notifier) *Multi {
	return &Multi{
		sinks:  sinks,
		logger: logging.NewComponentLogger(logger, "notify"),
	}
}

func (m *Multi) Name() string { return "multi" }

func (m *Multi) Send(ctx context.Context, n Notification) error {
	for _, sink := range m.sinks {
		if err := sink.Send(ctx, n); err != nil {
			m.logger.Warn("notifier sink failed",
				logging.String("sink", sink.Name()),
				logging.Error(err),
			)
		}
	}
	return nil
}

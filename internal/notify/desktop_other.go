//go:build !windows

package notify

import (
	"context"
	"log/slog"

	"printwatch/internal/logging"
)

// DesktopSink logs notifications on platforms without a native toast
// implementation so foreground runs still show what would have popped up.
type DesktopSink struct {
	logger *slog.Logger
}

// NewDesktopSink creates the fallback desktop sink.
func NewDesktopSink(logger *slog.Logger) *DesktopSink {
	return &DesktopSink{logger: logging.NewComponentLogger(logger, "desktop-notify")}
}

func (s *DesktopSink) Name() string { return "desktop" }

func (s *DesktopSink) Send(_ context.Context, n Notification) error {
	s.logger.Info("notification",
		logging.String("title", n.Title),
		logging.String("body", n.Body),
		logging.String("kind", string(n.Kind)),
	)
	return nil
}

package notify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"printwatch/internal/config"
)

// Kind classifies a notification for sinks that distinguish severities.
type Kind string

const (
	// KindInfo is a plain informational popup.
	KindInfo Kind = "info"
)

// Notification is a single transient popup request. It is constructed fresh
// per qualifying message and discarded after dispatch.
type Notification struct {
	Title       string
	Body        string
	Kind        Kind
	AutoDismiss bool
}

// Notifier renders or forwards a notification. Implementations must treat
// the notification as an opaque, read-only value.
type Notifier interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// FromConfig builds the notifier fan-out selected by the [notify] config
// section. When no sink is enabled a no-op notifier is returned.
func FromConfig(cfg *config.Config, logger *slog.Logger) Notifier {
	var sinks []Notifier

	if cfg.Notify.Desktop {
		sinks = append(sinks, NewDesktopSink(logger))
	}
	if cfg.Notify.Console {
		sinks = append(sinks, NewConsoleSink(nil))
	}
	if cfg.Notify.NtfyTopic != "" {
		timeout := time.Duration(cfg.Notify.RequestTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		sinks = append(sinks, NewNtfySink(cfg.Notify.NtfyTopic, &http.Client{Timeout: timeout}))
	}

	switch len(sinks) {
	case 0:
		return Noop{}
	case 1:
		return sinks[0]
	default:
		return NewMulti(logger, sinks...)
	}
}

// Noop drops every notification.
type Noop struct{}

func (Noop) Name() string                             { return "noop" }
func (Noop) Send(context.Context, Notification) error { return nil }

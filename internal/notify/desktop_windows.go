//go:build windows

package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-toast/toast"
)

const toastAppID = "printwatch"

// DesktopSink shows a native Windows toast notification.
type DesktopSink struct {
	appID string
}

// NewDesktopSink creates a desktop toast sink.
func NewDesktopSink(_ *slog.Logger) *DesktopSink {
	return &DesktopSink{appID: toastAppID}
}

func (s *DesktopSink) Name() string { return "desktop" }

func (s *DesktopSink) Send(_ context.Context, n Notification) error {
	notification := toast.Notification{
		AppID:   s.appID,
		Title:   n.Title,
		Message: n.Body,
	}
	if err := notification.Push(); err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	return nil
}

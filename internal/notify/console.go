package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleSink prints notifications to a writer, one line per notification.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a console sink. A nil writer defaults to stdout.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Name() string { return "console" }

func (s *ConsoleSink) Send(_ context.Context, n Notification) error {
	if _, err := fmt.Fprintf(s.out, "[%s] %s: %s\n", n.Kind, n.Title, n.Body); err != nil {
		return fmt.Errorf("write console notification: %w", err)
	}
	return nil
}

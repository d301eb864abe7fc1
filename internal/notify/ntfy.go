package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const userAgent = "printwatch/0.1.0"

// NtfySink publishes notifications to an ntfy topic URL.
type NtfySink struct {
	endpoint string
	client   *http.Client
}

// NewNtfySink creates an ntfy sink for the given topic URL. A nil client
// falls back to http.DefaultClient.
func NewNtfySink(endpoint string, client *http.Client) *NtfySink {
	if client == nil {
		client = http.DefaultClient
	}
	return &NtfySink{endpoint: strings.TrimSpace(endpoint), client: client}
}

func (s *NtfySink) Name() string { return "ntfy" }

func (s *NtfySink) Send(ctx context.Context, n Notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(n.Body))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if n.Title != "" {
		req.Header.Set("Title", n.Title)
	}
	req.Header.Set("Tags", "printer,"+string(n.Kind))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

package notify_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printwatch/internal/config"
	"printwatch/internal/notify"
)

type recordingSink struct {
	name string
	sent []notify.Notification
	err  error
}

func (r *recordingSink) Name() string { return r.name }

func (r *recordingSink) Send(_ context.Context, n notify.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestNtfySinkSendsExpectedRequest(t *testing.T) {
	var gotTitle, gotBody, gotTags string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		gotTags = r.Header.Get("Tags")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	sink := notify.NewNtfySink(server.URL, server.Client())
	err := sink.Send(context.Background(), notify.Notification{
		Title:       "Print Finished",
		Body:        "Job X complete",
		Kind:        notify.KindInfo,
		AutoDismiss: true,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotTitle != "Print Finished" {
		t.Errorf("title header = %q", gotTitle)
	}
	if gotBody != "Job X complete" {
		t.Errorf("body = %q", gotBody)
	}
	if gotTags != "printer,info" {
		t.Errorf("tags header = %q", gotTags)
	}
}

func TestNtfySinkReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic over quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	sink := notify.NewNtfySink(server.URL, server.Client())
	err := sink.Send(context.Background(), notify.Notification{Body: "x"})
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code, got %v", err)
	}
}

func TestConsoleSinkFormats(t *testing.T) {
	var buf strings.Builder
	sink := notify.NewConsoleSink(&buf)
	err := sink.Send(context.Background(), notify.Notification{
		Title: "Print Finished",
		Body:  "Job X complete",
		Kind:  notify.KindInfo,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := buf.String(); got != "[info] Print Finished: Job X complete\n" {
		t.Errorf("console output = %q", got)
	}
}

func TestMultiIsolatesFailingSink(t *testing.T) {
	failing := &recordingSink{name: "a", err: errors.New("boom")}
	healthy := &recordingSink{name: "b"}
	multi := notify.NewMulti(nil, failing, healthy)

	if err := multi.Send(context.Background(), notify.Notification{Body: "x"}); err != nil {
		t.Fatalf("multi must swallow sink errors, got %v", err)
	}
	if len(healthy.sent) != 1 {
		t.Fatalf("healthy sink received %d notifications", len(healthy.sent))
	}
}

func TestFromConfigNoopWhenEverythingDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notify.Desktop = false
	cfg.Notify.Console = false
	cfg.Notify.NtfyTopic = ""

	notifier := notify.FromConfig(&cfg, nil)
	if notifier.Name() != "noop" {
		t.Fatalf("expected noop notifier, got %q", notifier.Name())
	}
	if err := notifier.Send(context.Background(), notify.Notification{}); err != nil {
		t.Fatalf("noop send: %v", err)
	}
}

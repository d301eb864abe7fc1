package octoprint_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"printwatch/internal/octoprint"
)

type received struct {
	sender string
	data   string
}

// pushServer emulates the OctoPrint SockJS endpoint: it answers passive
// logins and, once a socket connects, replays the given frames.
func pushServer(t *testing.T, frames []string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "watcher", "session": "abc123"})
	})
	mux.HandleFunc("/sockjs/websocket", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		// Consume the auth message the listener sends first.
		_, _, _ = conn.ReadMessage()

		for _, frame := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
		// Hold the socket open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	return httptest.NewServer(mux)
}

func TestPushListenerDeliversPluginMessages(t *testing.T) {
	payload := `{"plugin": {"plugin": "print_finished_when", "data": {"text": "Job X complete"}}}`
	arr, err := json.Marshal([]string{payload})
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}

	frames := []string{
		"o",
		"h",
		`{"connected": {"version": "1.10.0"}}`,
		"a" + string(arr),
	}
	server := pushServer(t, frames)
	defer server.Close()

	got := make(chan received, 4)
	client := octoprint.New(server.URL, "secret", server.Client())
	listener := octoprint.NewPushListener(client, nil, func(_ context.Context, senderID string, data json.RawMessage) {
		got <- received{sender: senderID, data: string(data)}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := listener.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer listener.Stop()

	select {
	case msg := <-got:
		if msg.sender != "print_finished_when" {
			t.Errorf("sender = %q", msg.sender)
		}
		if msg.data != `{"text": "Job X complete"}` {
			t.Errorf("data = %s", msg.data)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for plugin message")
	}

	// Nothing else qualifies as a plugin message.
	select {
	case msg := <-got:
		t.Fatalf("unexpected extra message: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPushListenerStartIsIdempotent(t *testing.T) {
	server := pushServer(t, []string{"o"})
	defer server.Close()

	client := octoprint.New(server.URL, "", server.Client())
	listener := octoprint.NewPushListener(client, nil, func(context.Context, string, json.RawMessage) {})

	ctx := context.Background()
	if err := listener.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := listener.Start(ctx); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !listener.Running() {
		t.Fatal("listener should report running")
	}
	listener.Stop()
	if listener.Running() {
		t.Fatal("listener should report stopped")
	}
}

func TestPushListenerRequiresHandler(t *testing.T) {
	client := octoprint.New("http://127.0.0.1:1", "", nil)
	listener := octoprint.NewPushListener(client, nil, nil)
	if err := listener.Start(context.Background()); err == nil {
		t.Fatal("expected error without handler")
	}
}

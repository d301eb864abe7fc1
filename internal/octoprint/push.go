package octoprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"printwatch/internal/logging"
)

const (
	reconnectInitialDelay = time.Second
	reconnectMaxDelay     = time.Minute
)

// MessageHandler receives one plugin message per inbound event, in the
// order the server delivers them.
type MessageHandler func(ctx context.Context, senderID string, data json.RawMessage)

// PushListener subscribes to the OctoPrint SockJS push channel and feeds
// plugin messages to a handler from a single reader goroutine.
type PushListener struct {
	client  *Client
	logger  *slog.Logger
	handler MessageHandler
	dialer  *websocket.Dialer

	mu      sync.Mutex
	conn    *websocket.Conn
	quit    chan struct{}
	running bool
}

// NewPushListener creates a listener delivering plugin messages to handler.
func NewPushListener(client *Client, logger *slog.Logger, handler MessageHandler) *PushListener {
	return &PushListener{
		client:  client,
		logger:  logging.NewComponentLogger(logger, "push-listener"),
		handler: handler,
		dialer:  websocket.DefaultDialer,
	}
}

// Start begins listening in the background. It returns immediately;
// connection failures are retried with capped backoff until Stop.
func (l *PushListener) Start(ctx context.Context) error {
	if l.handler == nil {
		return errors.New("push listener requires a message handler")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return nil
	}
	l.quit = make(chan struct{})
	l.running = true

	quit := l.quit
	go l.run(ctx, quit)

	l.logger.Info("push listener started", logging.String("server", l.client.BaseURL()))
	return nil
}

// Stop shuts the listener down and closes any open socket.
func (l *PushListener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	if l.quit != nil {
		close(l.quit)
		l.quit = nil
	}
	if l.conn != nil {
		_ = l.conn.Close()
		l.conn = nil
	}
	l.running = false
	l.logger.Info("push listener stopped")
}

// Running reports whether the listener is active.
func (l *PushListener) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *PushListener) run(ctx context.Context, quit <-chan struct{}) {
	delay := reconnectInitialDelay
	for {
		select {
		case <-quit:
			return
		case <-ctx.Done():
			return
		default:
		}

		err := l.listenOnce(ctx, quit)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}

		select {
		case <-quit:
			return
		case <-ctx.Done():
			return
		default:
		}

		l.logger.Warn("push channel disconnected; reconnecting",
			logging.Error(err),
			logging.Duration("retry_in", delay),
		)
		select {
		case <-time.After(delay):
		case <-quit:
			return
		case <-ctx.Done():
			return
		}
		if next := delay * 2; next <= reconnectMaxDelay {
			delay = next
		}
	}
}

// listenOnce dials the socket, authenticates when possible, and pumps
// messages until the connection drops. A nil return means the listener was
// stopped deliberately.
func (l *PushListener) listenOnce(ctx context.Context, quit <-chan struct{}) error {
	socketURL, err := l.socketURL()
	if err != nil {
		return err
	}

	conn, _, err := l.dialer.DialContext(ctx, socketURL, nil)
	if err != nil {
		return fmt.Errorf("dial push channel: %w", err)
	}

	l.mu.Lock()
	select {
	case <-quit:
		l.mu.Unlock()
		_ = conn.Close()
		return nil
	default:
	}
	l.conn = conn
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		if l.conn == conn {
			l.conn = nil
		}
		l.mu.Unlock()
		_ = conn.Close()
	}()

	if err := l.authenticate(ctx, conn); err != nil {
		// Anonymous sessions still receive plugin messages on permissive
		// servers; keep listening.
		l.logger.Warn("push channel authentication failed", logging.Error(err))
	}

	l.logger.Info("push channel connected")

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fmt.Errorf("read push channel: %w", err)
		}

		payloads, err := decodeFrame(frame)
		if err != nil {
			if errors.Is(err, errSocketClosed) {
				return err
			}
			l.logger.Debug("ignoring undecodable frame", logging.Error(err))
			continue
		}

		for _, payload := range payloads {
			msg := decodePluginMessage(payload)
			if msg == nil {
				continue
			}
			l.handler(ctx, msg.Plugin, msg.Data)
		}
	}
}

// authenticate performs a passive login and sends the auth message the
// push channel expects as its first frame.
func (l *PushListener) authenticate(ctx context.Context, conn *websocket.Conn) error {
	session, err := l.client.Login(ctx)
	if err != nil {
		return err
	}
	if session.Name == "" || session.Session == "" {
		return errors.New("login response missing session")
	}
	auth := map[string]string{"auth": session.Name + ":" + session.Session}
	if err := conn.WriteJSON(auth); err != nil {
		return fmt.Errorf("send auth message: %w", err)
	}
	return nil
}

func (l *PushListener) socketURL() (string, error) {
	base, err := url.Parse(l.client.BaseURL())
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	switch base.Scheme {
	case "http":
		base.Scheme = "ws"
	case "https":
		base.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported server scheme %q", base.Scheme)
	}
	base.Path = strings.TrimRight(base.Path, "/") + "/sockjs/websocket"
	return base.String(), nil
}

package octoprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"printwatch/internal/config"
)

const userAgent = "printwatch/0.1.0"

// Client is a minimal OctoPrint REST client.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Session identifies an authenticated push-channel session.
type Session struct {
	Name    string `json:"name"`
	Session string `json:"session"`
}

// NewClient builds a client from configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.Server.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return New(cfg.Server.URL, cfg.Server.APIKey, &http.Client{Timeout: timeout})
}

// New builds a client for the given base URL and API key. A nil http client
// falls back to http.DefaultClient.
func New(baseURL, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Login performs a passive login and returns the session used to
// authenticate the push channel.
func (c *Client) Login(ctx context.Context) (Session, error) {
	var session Session
	err := c.postJSON(ctx, "/api/login", map[string]any{"passive": true}, &session)
	if err != nil {
		return Session{}, fmt.Errorf("passive login: %w", err)
	}
	return session, nil
}

// SimpleAPICommand issues a plugin simple-api command such as
// "test_notification". The server's success payload is not interpreted;
// callers only learn whether the round trip succeeded.
func (c *Client) SimpleAPICommand(ctx context.Context, pluginID, command string) error {
	if strings.TrimSpace(pluginID) == "" {
		return fmt.Errorf("plugin id is empty")
	}
	path := "/api/plugin/" + url.PathEscape(pluginID)
	if err := c.postJSON(ctx, path, map[string]any{"command": command}, nil); err != nil {
		return fmt.Errorf("plugin command %q: %w", command, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

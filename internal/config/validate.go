package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.URL == "" {
		problems = append(problems, "server.url must be set")
	} else if u, err := url.Parse(c.Server.URL); err != nil {
		problems = append(problems, fmt.Sprintf("server.url is not a valid URL: %v", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("server.url must use http or https, got %q", u.Scheme))
	} else if u.Host == "" {
		problems = append(problems, "server.url is missing a host")
	}

	if c.Plugin.Identity == "" {
		problems = append(problems, "plugin.identity must be set")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level))
	}

	if !c.Notify.Desktop && !c.Notify.Console && c.Notify.NtfyTopic == "" {
		problems = append(problems, "no notifier sink enabled; set notify.desktop, notify.console, or notify.ntfy_topic")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
}

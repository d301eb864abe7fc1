package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (c *Config) normalize() error {
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	c.Server.APIKey = strings.TrimSpace(c.Server.APIKey)
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	c.Plugin.Identity = strings.TrimSpace(c.Plugin.Identity)
	c.Plugin.DisplayName = strings.TrimSpace(c.Plugin.DisplayName)
	if c.Plugin.DisplayName == "" && c.Plugin.Identity != "" {
		c.Plugin.DisplayName = displayName(c.Plugin.Identity)
	}
	c.Plugin.NotificationTitle = strings.TrimSpace(c.Plugin.NotificationTitle)
	if c.Plugin.NotificationTitle == "" {
		c.Plugin.NotificationTitle = defaultNotificationTitle
	}

	c.Notify.NtfyTopic = strings.TrimSpace(c.Notify.NtfyTopic)
	if c.Notify.RequestTimeout <= 0 {
		c.Notify.RequestTimeout = defaultNotifyTimeout
	}

	if c.History.RetentionDays < 0 {
		c.History.RetentionDays = 0
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	for name, field := range map[string]*string{
		"data_dir": &c.Paths.DataDir,
		"log_dir":  &c.Paths.LogDir,
	} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return fmt.Errorf("expand %s: %w", name, err)
		}
		*field = expanded
	}
	return nil
}

// displayName turns a plugin identifier such as "print_finished_when" into
// a human-readable label ("Print Finished When").
func displayName(identity string) string {
	words := strings.FieldsFunc(identity, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	if len(words) == 0 {
		return identity
	}
	titler := cases.Title(language.English)
	for i, word := range words {
		words[i] = titler.String(word)
	}
	return strings.Join(words, " ")
}

// Package config loads, normalizes, and validates printwatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the daemon and CLI need: the OctoPrint server address and API key, the
// plugin identity whose messages are bridged into notifications, and the
// notifier sinks to fan out to.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a derived plugin display name, and clear validation
// errors.
package config

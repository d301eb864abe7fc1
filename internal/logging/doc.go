// Package logging constructs the slog loggers used across printwatch and
// provides small attribute helpers so call sites stay terse.
//
// Loggers are configured from the [logging] config section: console or json
// format, a minimum level, and optional duplication into a log file under
// the configured log directory.
package logging

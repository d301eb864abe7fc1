// Package daemon coordinates the long-running printwatch process.
//
// It wires configuration, the notifier fan-out, the history journal, the
// bridge, and the push listener into a single lifecycle with flock-based
// locking to prevent multiple instances. Individual behaviors live in their
// own packages; the daemon focuses on startup, shutdown, and glue.
package daemon

// Package notify delivers transient notifications via pluggable sinks.
//
// A Notification is a small value (title, body, kind, auto-dismiss) handed
// to a Notifier. Concrete sinks cover desktop toasts, the console, and ntfy
// push topics; Multi fans a notification out to several sinks and isolates
// their failures so one broken sink never silences the others.
//
// Construction is config-driven through FromConfig, which degrades to a
// no-op notifier when every sink is disabled.
package notify

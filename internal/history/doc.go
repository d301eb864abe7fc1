// Package history journals dispatched notifications in a local SQLite
// database so operators can review what the bridge forwarded and when.
// Entries are pruned by age according to the [history] config section.
package history

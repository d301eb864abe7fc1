// Command printwatch bridges OctoPrint plugin push messages into desktop,
// console, and ntfy notifications.
//
// Subcommands: run (foreground daemon), test-notify (ask the server plugin
// to emit a test notification), history (show the local journal), and
// config init|validate|show.
package main

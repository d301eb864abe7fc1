// Package bridge turns qualifying plugin push messages into notifications.
//
// The bridge is a stateless, reactive handler: the push listener calls
// HandleMessage once per inbound event, in delivery order. Messages from
// other plugins and payloads without text are ignored silently; a
// qualifying message produces exactly one notification. There is no
// buffering, reordering, or deduplication, so delivering the same message
// twice produces two notifications.
package bridge

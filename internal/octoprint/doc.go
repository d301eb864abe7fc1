// Package octoprint talks to an OctoPrint server.
//
// Client covers the small REST surface printwatch needs: a passive login to
// obtain a socket session and the plugin simple-api command used by the
// test trigger. PushListener subscribes to the server's SockJS push-update
// channel and delivers plugin messages, in arrival order, to an injected
// handler. The listener reconnects with capped backoff; connection trouble
// is logged and never fatal.
package octoprint

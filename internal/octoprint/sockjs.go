package octoprint

import (
	"encoding/json"
	"errors"
	"fmt"
)

// errSocketClosed signals a SockJS close frame; the listener reconnects.
var errSocketClosed = errors.New("sockjs: server closed the session")

// decodeFrame splits one SockJS frame into its JSON message payloads.
// Open ("o") and heartbeat ("h") frames carry no payload. Array frames
// ("a[...]") carry JSON-encoded strings, each holding one message. Close
// frames ("c[...]") end the session.
func decodeFrame(frame []byte) ([][]byte, error) {
	if len(frame) == 0 {
		return nil, nil
	}
	switch frame[0] {
	case 'o', 'h':
		return nil, nil
	case 'c':
		return nil, errSocketClosed
	case 'm':
		var raw string
		if err := json.Unmarshal(frame[1:], &raw); err != nil {
			return nil, fmt.Errorf("sockjs: decode message frame: %w", err)
		}
		return [][]byte{[]byte(raw)}, nil
	case 'a':
		var raws []string
		if err := json.Unmarshal(frame[1:], &raws); err != nil {
			return nil, fmt.Errorf("sockjs: decode array frame: %w", err)
		}
		payloads := make([][]byte, 0, len(raws))
		for _, raw := range raws {
			payloads = append(payloads, []byte(raw))
		}
		return payloads, nil
	default:
		return nil, fmt.Errorf("sockjs: unknown frame type %q", frame[0])
	}
}

// pluginMessage is an OctoPrint push-channel plugin message envelope:
// {"plugin": {"plugin": "<identifier>", "data": {...}}}.
type pluginMessage struct {
	Plugin string          `json:"plugin"`
	Data   json.RawMessage `json:"data"`
}

type socketEnvelope struct {
	Plugin *pluginMessage `json:"plugin"`
}

// decodePluginMessage extracts a plugin message from a push-channel payload,
// or returns nil for every other message type (connected, current, history,
// event, ...).
func decodePluginMessage(payload []byte) *pluginMessage {
	var envelope socketEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil
	}
	if envelope.Plugin == nil || envelope.Plugin.Plugin == "" {
		return nil
	}
	return envelope.Plugin
}

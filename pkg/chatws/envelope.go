package chatws

import (
	"encoding/json"
	"time"
)

// Envelope types.
const (
	TypeMessage = "message"
	TypeError   = "error"
)

// Inbound is a frame sent by a client.
type Inbound struct {
	Text string `json:"text"`
}

// Envelope is a frame sent to a client.
type Envelope struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorData is the payload of a TypeError envelope.
type ErrorData struct {
	Message string `json:"message"`
}

func encode(typ string, data any, now time.Time) ([]byte, error) {
	return json.Marshal(Envelope{Type: typ, Data: data, Timestamp: now.Unix()})
}

package tools

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message is the envelope for all hub WebSocket messages.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a client-originated message with the current timestamp.
func NewMessage(msgType string, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return &Message{
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Client → Hub message types.
const (
	TypeToolCall = "tool.call"
)

// Hub → Client message types.
const (
	TypeToolResult = "tool.result"
	TypeError      = "error"
)

// ToolCallPayload asks the hub to run one tool.
type ToolCallPayload struct {
	ID   string                 `json:"id"`
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// ToolResultPayload carries the outcome of one tool call.
type ToolResultPayload struct {
	ID      string                 `json:"id"`
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// ErrorPayload carries a hub-level error unrelated to a specific call.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

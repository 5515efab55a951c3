package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"labshell/internal/logger"
)

// Client is a WebSocket connection to the hub backend. Its Call method
// satisfies CallFunc, so it plugs directly into an Adapter.
//
// The shell model is strictly request/response: one line is routed to
// completion before the next is accepted, so at most one call is ever in
// flight and no locking is needed here.
type Client struct {
	conn    *websocket.Conn
	timeout time.Duration
	logger  *log.Logger
}

// Dial connects to the hub at the given WebSocket URL.
func Dial(url string, timeout time.Duration) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial hub %s: %w", url, err)
	}
	return &Client{
		conn:    conn,
		timeout: timeout,
		logger:  logger.NewStyledLogger("Hub"),
	}, nil
}

// Call sends one tool.call message and waits for the matching tool.result.
// Messages with a stale correlation id are skipped; hub-level error messages
// abort the call.
func (c *Client) Call(name string, args map[string]interface{}) (*CallResponse, error) {
	id := uuid.New().String()
	msg, err := NewMessage(TypeToolCall, ToolCallPayload{ID: id, Name: name, Args: args})
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set write deadline: %w", err)
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return nil, fmt.Errorf("send tool call: %w", err)
	}

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}
	for {
		var reply Message
		if err := c.conn.ReadJSON(&reply); err != nil {
			return nil, fmt.Errorf("read tool result: %w", err)
		}

		switch reply.Type {
		case TypeToolResult:
			var payload ToolResultPayload
			if err := json.Unmarshal(reply.Payload, &payload); err != nil {
				return nil, fmt.Errorf("decode tool result: %w", err)
			}
			if payload.ID != id {
				c.logger.Debug("Skipping stale result", "want", id, "got", payload.ID)
				continue
			}
			return &CallResponse{
				Success: payload.Success,
				Data:    payload.Data,
				Error:   payload.Error,
			}, nil
		case TypeError:
			var payload ErrorPayload
			if err := json.Unmarshal(reply.Payload, &payload); err != nil {
				return nil, fmt.Errorf("decode hub error: %w", err)
			}
			return nil, fmt.Errorf("hub error %s: %s", payload.Code, payload.Message)
		default:
			// Unsolicited server pushes are not part of the call cycle.
			c.logger.Debug("Ignoring message", "type", reply.Type)
		}
	}
}

// Close shuts down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

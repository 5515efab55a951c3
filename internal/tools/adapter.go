// Package tools wraps remote tool invocations for LabShell. The Adapter
// normalizes success, explicit backend failure, transport errors and panics
// into the single ToolResult shape handlers consume, so no unnormalized
// failure ever reaches the router.
package tools

import (
	"fmt"

	"github.com/charmbracelet/log"

	"labshell/internal/logger"
	"labshell/pkg/labtypes"
)

// CallResponse is the backend's raw response to one tool call.
type CallResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// CallFunc is the injected remote-call capability. It may return an error or
// panic; the Adapter is its only caller and absorbs both.
type CallFunc func(name string, args map[string]interface{}) (*CallResponse, error)

// Adapter performs exactly one remote call per invocation and collapses every
// outcome into a labtypes.ToolResult. It never retries and never panics.
type Adapter struct {
	call   CallFunc
	logger *log.Logger
}

// NewAdapter creates an Adapter around the given call capability. A nil
// capability yields an adapter whose invocations fail with a fixed message,
// which keeps a disconnected shell usable for allow-listed commands.
func NewAdapter(call CallFunc) *Adapter {
	return &Adapter{
		call:   call,
		logger: logger.NewStyledLogger("Tools"),
	}
}

// Invoke implements labtypes.ToolInvoker.
func (a *Adapter) Invoke(name string, args map[string]interface{}) (result labtypes.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			result = labtypes.ToolResult{Message: fmt.Sprintf("%v", r)}
			a.logger.Error("Tool call panicked", "tool", name, "error", result.Message)
		}
	}()

	if a.call == nil {
		return labtypes.ToolResult{Message: "no backend capability configured"}
	}

	resp, err := a.call(name, args)
	if err != nil {
		a.logger.Debug("Tool call failed", "tool", name, "error", err)
		return labtypes.ToolResult{Message: err.Error()}
	}
	if resp == nil {
		return labtypes.ToolResult{Message: "empty response from backend"}
	}
	if !resp.Success {
		message := resp.Error
		if message == "" {
			message = "tool reported failure"
		}
		a.logger.Debug("Tool reported failure", "tool", name, "error", message)
		return labtypes.ToolResult{Message: message}
	}

	a.logger.Debug("Tool call succeeded", "tool", name)
	// Data passes through uninterpreted; response shapes are per-handler.
	return labtypes.ToolResult{OK: true, Data: resp.Data}
}

// Package labtypes defines command system types for LabShell.
// This file contains the command contract and the execution context threaded
// through every handler, plus the structured help model.
package labtypes

// ToolResult is the normalized outcome of one remote tool invocation. The
// adapter collapses transport errors, panics and explicit backend failures
// into this single shape so handlers never see an unnormalized error.
type ToolResult struct {
	OK      bool
	Data    map[string]interface{}
	Message string
}

// ToolInvoker performs a single remote tool call and normalizes the outcome.
// It never panics and never returns an error; failures are carried in the
// ToolResult.
type ToolInvoker interface {
	Invoke(name string, args map[string]interface{}) ToolResult
}

// PrivilegedOps exposes the injected privileged business-logic capabilities
// called directly by specific handlers. They follow the same normalized
// contract as ToolInvoker.
type PrivilegedOps interface {
	UnlockAccount(username string) ToolResult
	InstallAgent(host string) ToolResult
}

// ExecContext carries everything a command handler may read during one
// execution. Session is a snapshot; handlers must not attempt to mutate it.
type ExecContext struct {
	// Args is the raw argument remainder after the command token, whitespace
	// trimmed with original casing. Subcommand tokenization is each handler's
	// responsibility.
	Args       string
	Session    SessionState
	Tools      ToolInvoker
	Privileged PrivilegedOps
}

// Command is the interface every LabShell command implements. Commands
// register themselves with the router registry during initialization.
type Command interface {
	// Name returns the canonical lower-case command name.
	Name() string
	// Aliases returns alternative lower-case names resolving to this command.
	Aliases() []string
	// Description returns a brief description of what the command does.
	Description() string
	// Usage returns the usage syntax.
	Usage() string
	// RequiresAuth reports whether the access guard gates this command on an
	// authenticated session. Commands returning false form the allow-list that
	// works while disconnected or logged out.
	RequiresAuth() bool
	// HelpInfo returns structured help information.
	HelpInfo() HelpInfo
	// Execute runs the command and returns its ordered Results. It must not
	// panic; adapter failures arrive pre-normalized and are mapped to error
	// Results here.
	Execute(ctx ExecContext) Outcome
}

// HelpInfo represents structured help information for a command.
type HelpInfo struct {
	Command     string        `json:"command"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Examples    []HelpExample `json:"examples,omitempty"`
	Notes       []string      `json:"notes,omitempty"`
}

// HelpExample represents a usage example with explanation.
type HelpExample struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

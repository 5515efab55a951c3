package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// StatusCommand implements the /status command. It reports the connection and
// authentication state of the current session without any gating, so it works
// while disconnected.
type StatusCommand struct{}

// Name returns the command name "status".
func (c *StatusCommand) Name() string {
	return "status"
}

// Aliases returns no aliases for status.
func (c *StatusCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the status command does.
func (c *StatusCommand) Description() string {
	return "Show connection and login state"
}

// Usage returns the syntax for the status command.
func (c *StatusCommand) Usage() string {
	return "/status"
}

// RequiresAuth returns false: status must report a broken session too.
func (c *StatusCommand) RequiresAuth() bool {
	return false
}

// HelpInfo returns structured help information for the status command.
func (c *StatusCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/status", Description: "Report hub connectivity and the signed-in user"},
		},
	}
}

// Execute reports connected and authenticated as success or error Results.
// The connection line comes first; callers that only look at the primary
// Result see connectivity.
func (c *StatusCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	var results []labtypes.Result

	if ctx.Session.Connected {
		results = append(results, labtypes.Success("Connected to hub"))
	} else {
		results = append(results, labtypes.Error("Not connected to hub"))
	}

	if ctx.Session.Authenticated {
		name := ctx.Session.Username
		if name == "" {
			name = "unknown user"
		}
		results = append(results, labtypes.Successf("Logged in as %s", name))
	} else {
		results = append(results, labtypes.Error("Not authenticated"))
	}

	return labtypes.Outcome{Results: results}
}

func init() {
	if err := router.GlobalRegistry.Register(&StatusCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register status command: %v", err))
	}
}

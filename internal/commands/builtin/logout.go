package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// LogoutCommand implements the /logout command. It emits the logout Signal;
// the host shell drops the authenticated session after routing returns.
type LogoutCommand struct{}

// Name returns the command name "logout".
func (c *LogoutCommand) Name() string {
	return "logout"
}

// Aliases returns no aliases for logout.
func (c *LogoutCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the logout command does.
func (c *LogoutCommand) Description() string {
	return "Sign out of the hub"
}

// Usage returns the syntax for the logout command.
func (c *LogoutCommand) Usage() string {
	return "/logout"
}

// RequiresAuth returns true: there is nothing to sign out of otherwise.
func (c *LogoutCommand) RequiresAuth() bool {
	return true
}

// HelpInfo returns structured help information for the logout command.
func (c *LogoutCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
	}
}

// Execute emits the logout Signal.
func (c *LogoutCommand) Execute(_ labtypes.ExecContext) labtypes.Outcome {
	return labtypes.Single(labtypes.System(signal.Encode(signal.Logout, "")))
}

func init() {
	if err := router.GlobalRegistry.Register(&LogoutCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register logout command: %v", err))
	}
}

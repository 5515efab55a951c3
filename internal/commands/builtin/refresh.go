package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// RefreshCommand implements the /refresh command, asking the host shell to
// re-fetch the active view.
type RefreshCommand struct{}

// Name returns the command name "refresh".
func (c *RefreshCommand) Name() string { return "refresh" }

// Aliases returns no aliases for refresh.
func (c *RefreshCommand) Aliases() []string { return nil }

// Description returns a brief description of what the refresh command does.
func (c *RefreshCommand) Description() string { return "Reload the active view" }

// Usage returns the syntax for the refresh command.
func (c *RefreshCommand) Usage() string { return "/refresh" }

// RequiresAuth returns true: views show privileged inventory.
func (c *RefreshCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the refresh command.
func (c *RefreshCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
	}
}

// Execute emits the refresh Signal.
func (c *RefreshCommand) Execute(_ labtypes.ExecContext) labtypes.Outcome {
	return labtypes.Single(labtypes.System(signal.Encode(signal.Refresh, "")))
}

func init() {
	if err := router.GlobalRegistry.Register(&RefreshCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register refresh command: %v", err))
	}
}

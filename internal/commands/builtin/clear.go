package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// ClearCommand implements the /clear command. It emits the clear-screen
// Signal; the host shell performs the actual terminal clear.
type ClearCommand struct{}

// Name returns the command name "clear".
func (c *ClearCommand) Name() string {
	return "clear"
}

// Aliases returns the alternative spellings of clear.
func (c *ClearCommand) Aliases() []string {
	return []string{"cls"}
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clear the terminal screen"
}

// Usage returns the syntax for the clear command.
func (c *ClearCommand) Usage() string {
	return "/clear"
}

// RequiresAuth returns false: clearing the screen is purely local.
func (c *ClearCommand) RequiresAuth() bool {
	return false
}

// HelpInfo returns structured help information for the clear command.
func (c *ClearCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes:       []string{"Alias: /cls"},
	}
}

// Execute emits the clear-screen Signal.
func (c *ClearCommand) Execute(_ labtypes.ExecContext) labtypes.Outcome {
	return labtypes.Single(labtypes.System(signal.Encode(signal.ClearScreen, "")))
}

func init() {
	if err := router.GlobalRegistry.Register(&ClearCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register clear command: %v", err))
	}
}

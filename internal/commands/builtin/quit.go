package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// QuitCommand implements the /quit command for leaving the shell. It is the
// only command family that sets the exit flag.
type QuitCommand struct{}

// Name returns the command name "quit" for registration and lookup.
func (c *QuitCommand) Name() string {
	return "quit"
}

// Aliases returns the alternative spellings of quit.
func (c *QuitCommand) Aliases() []string {
	return []string{"exit", "q"}
}

// Description returns a brief description of what the quit command does.
func (c *QuitCommand) Description() string {
	return "Leave the shell"
}

// Usage returns the syntax for the quit command.
func (c *QuitCommand) Usage() string {
	return "/quit"
}

// RequiresAuth returns false: quitting is purely local.
func (c *QuitCommand) RequiresAuth() bool {
	return false
}

// HelpInfo returns structured help information for the quit command.
func (c *QuitCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/quit", Description: "Close the session and exit"},
		},
		Notes: []string{"Aliases: /exit, /q"},
	}
}

// Execute produces the single terminating Result. No backend call is made.
func (c *QuitCommand) Execute(_ labtypes.ExecContext) labtypes.Outcome {
	return labtypes.Outcome{
		Results: []labtypes.Result{{Kind: labtypes.KindInfo, Text: "Goodbye.", Terminate: true}},
		Exit:    true,
	}
}

func init() {
	if err := router.GlobalRegistry.Register(&QuitCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register quit command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// LoginCommand implements the /login command. It emits the bare login Signal;
// the host shell runs the interactive credential flow and mutates the session.
type LoginCommand struct{}

// Name returns the command name "login".
func (c *LoginCommand) Name() string {
	return "login"
}

// Aliases returns no aliases for login.
func (c *LoginCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the login command does.
func (c *LoginCommand) Description() string {
	return "Sign in to the hub"
}

// Usage returns the syntax for the login command.
func (c *LoginCommand) Usage() string {
	return "/login"
}

// RequiresAuth returns false: login is on the allow-list by definition.
func (c *LoginCommand) RequiresAuth() bool {
	return false
}

// HelpInfo returns structured help information for the login command.
func (c *LoginCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes:       []string{"Prompts for username and password interactively"},
	}
}

// Execute emits the login Signal, or a notice when already signed in.
func (c *LoginCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	if ctx.Session.Authenticated {
		return labtypes.Single(labtypes.Infof("Already logged in as %s", ctx.Session.Username))
	}
	return labtypes.Single(labtypes.System(signal.Encode(signal.Login, "")))
}

func init() {
	if err := router.GlobalRegistry.Register(&LoginCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register login command: %v", err))
	}
}

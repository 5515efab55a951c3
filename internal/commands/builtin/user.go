package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// UserCommand implements the /user command. The reset-password subcommand
// emits a Signal carrying the username; the host shell prompts for the new
// password and performs the actual operation.
type UserCommand struct{}

// Name returns the command name "user".
func (c *UserCommand) Name() string { return "user" }

// Aliases returns no aliases for user.
func (c *UserCommand) Aliases() []string { return nil }

// Description returns a brief description of what the user command does.
func (c *UserCommand) Description() string { return "List users or reset a password" }

// Usage returns the syntax for the user command.
func (c *UserCommand) Usage() string {
	return "/user <list | reset-password <username>>"
}

// RequiresAuth returns true.
func (c *UserCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the user command.
func (c *UserCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/user reset-password bob", Description: "Prompt for and set a new password for bob"},
		},
	}
}

// Execute dispatches the user subcommand.
func (c *UserCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, rest := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "list":
		result := ctx.Tools.Invoke("users.list", nil)
		if !result.OK {
			return adapterError(result)
		}
		users := dataList(result.Data, "users")
		if len(users) == 0 {
			return labtypes.Single(labtypes.Info("No users found."))
		}
		results := []labtypes.Result{labtypes.Successf("%d user(s) found", len(users))}
		for _, user := range users {
			results = append(results, labtypes.Info(itemLine(user)))
		}
		return labtypes.Outcome{Results: results}
	case "reset-password":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return usageError(c.Usage())
		}
		return labtypes.Single(labtypes.System(signal.Encode(signal.ResetPassword, fields[0])))
	default:
		return labtypes.Single(labtypes.Errorf("Unknown user subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

func init() {
	if err := router.GlobalRegistry.Register(&UserCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register user command: %v", err))
	}
}

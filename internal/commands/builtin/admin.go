package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// AdminCommand implements the /admin command. The create subcommand is on the
// no-auth allow-list: it opens the first-run setup wizard before any account
// exists. Every other subcommand is gated inside Execute with the same
// precondition precedence the guard applies.
type AdminCommand struct{}

// Name returns the command name "admin".
func (c *AdminCommand) Name() string { return "admin" }

// Aliases returns no aliases for admin.
func (c *AdminCommand) Aliases() []string { return nil }

// Description returns a brief description of what the admin command does.
func (c *AdminCommand) Description() string { return "Administrative operations" }

// Usage returns the syntax for the admin command.
func (c *AdminCommand) Usage() string { return "/admin <create | sessions>" }

// RequiresAuth returns false so that /admin create works before the first
// account exists; the other subcommands gate themselves.
func (c *AdminCommand) RequiresAuth() bool { return false }

// HelpInfo returns structured help information for the admin command.
func (c *AdminCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/admin create", Description: "Open the first-run admin setup wizard"},
			{Command: "/admin sessions", Description: "List active dashboard sessions"},
		},
	}
}

// Execute dispatches the admin subcommand.
func (c *AdminCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, _ := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "create":
		return labtypes.Single(labtypes.System(signal.Encode(signal.OpenSetup, "")))
	case "sessions":
		if result, allowed := router.CheckSession(ctx.Session); !allowed {
			return labtypes.Single(result)
		}
		result := ctx.Tools.Invoke("admin.sessions", nil)
		if !result.OK {
			return adapterError(result)
		}
		sessions := dataList(result.Data, "sessions")
		if len(sessions) == 0 {
			return labtypes.Single(labtypes.Info("No active sessions."))
		}
		results := []labtypes.Result{labtypes.Successf("%d active session(s)", len(sessions))}
		for _, session := range sessions {
			results = append(results, labtypes.Info(itemLine(session)))
		}
		return labtypes.Outcome{Results: results}
	default:
		return labtypes.Single(labtypes.Errorf("Unknown admin subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

func init() {
	if err := router.GlobalRegistry.Register(&AdminCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register admin command: %v", err))
	}
}

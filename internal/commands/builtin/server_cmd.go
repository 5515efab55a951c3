package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// ServerCommand implements the /server command and its subcommands operating
// on a single server.
type ServerCommand struct{}

// Name returns the command name "server".
func (c *ServerCommand) Name() string { return "server" }

// Aliases returns no aliases for server.
func (c *ServerCommand) Aliases() []string { return nil }

// Description returns a brief description of what the server command does.
func (c *ServerCommand) Description() string { return "Inspect or ping one server" }

// Usage returns the syntax for the server command.
func (c *ServerCommand) Usage() string {
	return "/server <status|ping> <server-id> | /server list"
}

// RequiresAuth returns true.
func (c *ServerCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the server command.
func (c *ServerCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/server status nas-01", Description: "Show health details for nas-01"},
			{Command: "/server ping nas-01", Description: "Round-trip check against nas-01"},
		},
	}
}

// Execute dispatches the subcommand. Each subcommand validates its required
// server identifier before any backend call.
func (c *ServerCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, rest := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "list":
		return (&ServersCommand{}).Execute(ctx)
	case "status":
		return c.withServer(ctx, rest, "server.status", func(data map[string]interface{}, id string) labtypes.Result {
			health := dataString(data, "health")
			if health == "" {
				health = "unknown"
			}
			return labtypes.Successf("Server %s: %s", id, health)
		})
	case "ping":
		return c.withServer(ctx, rest, "server.ping", func(data map[string]interface{}, id string) labtypes.Result {
			if latency := dataString(data, "latency"); latency != "" {
				return labtypes.Successf("Server %s answered in %s", id, latency)
			}
			return labtypes.Successf("Server %s is reachable", id)
		})
	default:
		return labtypes.Single(labtypes.Errorf("Unknown server subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

// withServer runs one server-scoped tool call after validating the
// positional identifier.
func (c *ServerCommand) withServer(ctx labtypes.ExecContext, rest, tool string, render func(map[string]interface{}, string) labtypes.Result) labtypes.Outcome {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return usageError(c.Usage())
	}
	id := fields[0]

	result := ctx.Tools.Invoke(tool, map[string]interface{}{"server": id})
	if !result.OK {
		return adapterError(result)
	}
	return labtypes.Single(render(result.Data, id))
}

func init() {
	if err := router.GlobalRegistry.Register(&ServerCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register server command: %v", err))
	}
}

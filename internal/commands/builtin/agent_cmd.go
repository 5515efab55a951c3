package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// AgentCommand implements the /agent command and its subcommands operating on
// a single monitoring agent. The install subcommand goes through the
// privileged agent-install capability instead of the ordinary tool channel.
type AgentCommand struct{}

// Name returns the command name "agent".
func (c *AgentCommand) Name() string { return "agent" }

// Aliases returns no aliases for agent.
func (c *AgentCommand) Aliases() []string { return nil }

// Description returns a brief description of what the agent command does.
func (c *AgentCommand) Description() string { return "Manage one monitoring agent" }

// Usage returns the syntax for the agent command.
func (c *AgentCommand) Usage() string {
	return "/agent <status|ping|rotate> <agent-id> | /agent install <host> | /agent list"
}

// RequiresAuth returns true.
func (c *AgentCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the agent command.
func (c *AgentCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/agent status agent-07", Description: "Show heartbeat and version for agent-07"},
			{Command: "/agent rotate agent-07", Description: "Rotate agent-07's API keys"},
			{Command: "/agent install 10.0.0.12", Description: "Install a new agent on a host"},
		},
		Notes: []string{"rotate invalidates the agent's current credentials immediately"},
	}
}

// Execute dispatches the subcommand. Each subcommand validates its required
// positional argument before any backend call.
func (c *AgentCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, rest := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "list":
		return (&AgentsCommand{}).Execute(ctx)
	case "status":
		return c.withAgent(ctx, rest, "agent.status", func(data map[string]interface{}, id string) labtypes.Result {
			state := dataString(data, "state")
			if state == "" {
				state = "unknown"
			}
			return labtypes.Successf("Agent %s: %s", id, state)
		})
	case "ping":
		return c.withAgent(ctx, rest, "agent.ping", func(_ map[string]interface{}, id string) labtypes.Result {
			return labtypes.Successf("Agent %s is reachable", id)
		})
	case "rotate":
		return c.withAgent(ctx, rest, "agent.rotate_keys", func(_ map[string]interface{}, id string) labtypes.Result {
			return labtypes.Successf("Keys rotated for agent %s", id)
		})
	case "install":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return usageError(c.Usage())
		}
		host := fields[0]
		result := ctx.Privileged.InstallAgent(host)
		if !result.OK {
			return adapterError(result)
		}
		return labtypes.Single(labtypes.Successf("Agent installed on %s", host))
	default:
		return labtypes.Single(labtypes.Errorf("Unknown agent subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

// withAgent runs one agent-scoped tool call after validating the positional
// identifier.
func (c *AgentCommand) withAgent(ctx labtypes.ExecContext, rest, tool string, render func(map[string]interface{}, string) labtypes.Result) labtypes.Outcome {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return usageError(c.Usage())
	}
	id := fields[0]

	result := ctx.Tools.Invoke(tool, map[string]interface{}{"agent": id})
	if !result.OK {
		return adapterError(result)
	}
	return labtypes.Single(render(result.Data, id))
}

func init() {
	if err := router.GlobalRegistry.Register(&AgentCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register agent command: %v", err))
	}
}

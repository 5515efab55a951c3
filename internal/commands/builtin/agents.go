package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// AgentsCommand implements the /agents command, listing the monitoring
// agents registered with the hub.
type AgentsCommand struct{}

// Name returns the command name "agents".
func (c *AgentsCommand) Name() string { return "agents" }

// Aliases returns no aliases for agents.
func (c *AgentsCommand) Aliases() []string { return nil }

// Description returns a brief description of what the agents command does.
func (c *AgentsCommand) Description() string { return "List monitoring agents" }

// Usage returns the syntax for the agents command.
func (c *AgentsCommand) Usage() string { return "/agents" }

// RequiresAuth returns true: the inventory is privileged.
func (c *AgentsCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the agents command.
func (c *AgentsCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
	}
}

// Execute fetches the agent list and renders one line per agent.
func (c *AgentsCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	result := ctx.Tools.Invoke("agents.list", nil)
	if !result.OK {
		return adapterError(result)
	}

	agents := dataList(result.Data, "agents")
	if len(agents) == 0 {
		return labtypes.Single(labtypes.Info("No agents found."))
	}

	results := []labtypes.Result{labtypes.Successf("%d agent(s) found", len(agents))}
	for _, agent := range agents {
		results = append(results, labtypes.Info(itemLine(agent)))
	}
	return labtypes.Outcome{Results: results}
}

func init() {
	if err := router.GlobalRegistry.Register(&AgentsCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register agents command: %v", err))
	}
}

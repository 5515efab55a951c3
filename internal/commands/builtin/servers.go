package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// ServersCommand implements the /servers command, listing the server
// inventory from the hub.
type ServersCommand struct{}

// Name returns the command name "servers".
func (c *ServersCommand) Name() string { return "servers" }

// Aliases returns no aliases for servers.
func (c *ServersCommand) Aliases() []string { return nil }

// Description returns a brief description of what the servers command does.
func (c *ServersCommand) Description() string { return "List managed servers" }

// Usage returns the syntax for the servers command.
func (c *ServersCommand) Usage() string { return "/servers" }

// RequiresAuth returns true: the inventory is privileged.
func (c *ServersCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the servers command.
func (c *ServersCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
	}
}

// Execute fetches the server list and renders one line per server.
func (c *ServersCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	result := ctx.Tools.Invoke("servers.list", nil)
	if !result.OK {
		return adapterError(result)
	}

	servers := dataList(result.Data, "servers")
	if len(servers) == 0 {
		return labtypes.Single(labtypes.Info("No servers found."))
	}

	results := []labtypes.Result{labtypes.Successf("%d server(s) found", len(servers))}
	for _, server := range servers {
		results = append(results, labtypes.Info(itemLine(server)))
	}
	return labtypes.Outcome{Results: results}
}

func init() {
	if err := router.GlobalRegistry.Register(&ServersCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register servers command: %v", err))
	}
}

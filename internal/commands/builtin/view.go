package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// ValidViews is the closed set of view names the dashboard knows. Any other
// argument to /view is rejected with a usage error.
var ValidViews = []string{"dashboard", "servers", "agents", "logs", "settings"}

// ViewCommand implements the /view command, switching the active dashboard
// view through the switch-view Signal.
type ViewCommand struct{}

// Name returns the command name "view".
func (c *ViewCommand) Name() string { return "view" }

// Aliases returns no aliases for view.
func (c *ViewCommand) Aliases() []string { return nil }

// Description returns a brief description of what the view command does.
func (c *ViewCommand) Description() string { return "Switch the active view" }

// Usage returns the syntax for the view command.
func (c *ViewCommand) Usage() string {
	return "/view <" + strings.Join(ValidViews, "|") + ">"
}

// RequiresAuth returns true: views show privileged inventory.
func (c *ViewCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the view command.
func (c *ViewCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/view agents", Description: "Show the agent inventory view"},
		},
	}
}

// Execute validates the view name against the closed set and emits the
// switch-view Signal carrying it.
func (c *ViewCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	fields := strings.Fields(ctx.Args)
	if len(fields) != 1 {
		return usageError(c.Usage())
	}

	name := strings.ToLower(fields[0])
	for _, valid := range ValidViews {
		if name == valid {
			return labtypes.Single(labtypes.System(signal.Encode(signal.SwitchView, name)))
		}
	}
	return usageError(c.Usage())
}

func init() {
	if err := router.GlobalRegistry.Register(&ViewCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register view command: %v", err))
	}
}

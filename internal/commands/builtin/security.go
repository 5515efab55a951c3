package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// SecurityCommand implements the /security command. The unlock subcommand
// goes through the privileged account-unlock capability.
type SecurityCommand struct{}

// Name returns the command name "security".
func (c *SecurityCommand) Name() string { return "security" }

// Aliases returns no aliases for security.
func (c *SecurityCommand) Aliases() []string { return nil }

// Description returns a brief description of what the security command does.
func (c *SecurityCommand) Description() string { return "Run audits and unlock accounts" }

// Usage returns the syntax for the security command.
func (c *SecurityCommand) Usage() string { return "/security <audit | unlock <username>>" }

// RequiresAuth returns true.
func (c *SecurityCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the security command.
func (c *SecurityCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/security audit", Description: "Run the hub security audit"},
			{Command: "/security unlock alice", Description: "Unlock a locked-out account"},
		},
	}
}

// Execute dispatches the security subcommand.
func (c *SecurityCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, rest := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "audit":
		result := ctx.Tools.Invoke("security.audit", nil)
		if !result.OK {
			return adapterError(result)
		}
		findings := dataList(result.Data, "findings")
		if len(findings) == 0 {
			return labtypes.Single(labtypes.Success("Audit clean: no findings"))
		}
		results := []labtypes.Result{labtypes.Errorf("Audit found %d issue(s)", len(findings))}
		for _, finding := range findings {
			results = append(results, labtypes.Info(itemLine(finding)))
		}
		return labtypes.Outcome{Results: results}
	case "unlock":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return usageError(c.Usage())
		}
		username := fields[0]
		result := ctx.Privileged.UnlockAccount(username)
		if !result.OK {
			return adapterError(result)
		}
		return labtypes.Single(labtypes.Successf("Account %s unlocked", username))
	default:
		return labtypes.Single(labtypes.Errorf("Unknown security subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

func init() {
	if err := router.GlobalRegistry.Register(&SecurityCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register security command: %v", err))
	}
}

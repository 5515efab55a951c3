package builtin

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// UpdateCommand implements the /update command, checking for and applying hub
// platform updates.
type UpdateCommand struct{}

// Name returns the command name "update".
func (c *UpdateCommand) Name() string { return "update" }

// Aliases returns no aliases for update.
func (c *UpdateCommand) Aliases() []string { return nil }

// Description returns a brief description of what the update command does.
func (c *UpdateCommand) Description() string { return "Check for or apply hub updates" }

// Usage returns the syntax for the update command.
func (c *UpdateCommand) Usage() string { return "/update <check|apply>" }

// RequiresAuth returns true.
func (c *UpdateCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the update command.
func (c *UpdateCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/update check", Description: "Compare the installed hub version with the latest release"},
			{Command: "/update apply", Description: "Install the latest hub release"},
		},
	}
}

// Execute dispatches the update subcommand.
func (c *UpdateCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, _ := subcommand(ctx.Args)
	switch sub {
	case "", "check":
		return c.check(ctx)
	case "apply":
		result := ctx.Tools.Invoke("update.apply", nil)
		if !result.OK {
			return adapterError(result)
		}
		applied := dataString(result.Data, "version")
		if applied == "" {
			return labtypes.Single(labtypes.Success("Update applied"))
		}
		return labtypes.Single(labtypes.Successf("Updated to v%s", applied))
	default:
		return labtypes.Single(labtypes.Errorf("Unknown update subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

// check compares the installed hub version with the latest release.
func (c *UpdateCommand) check(ctx labtypes.ExecContext) labtypes.Outcome {
	result := ctx.Tools.Invoke("update.check", nil)
	if !result.OK {
		return adapterError(result)
	}

	currentRaw := dataString(result.Data, "current")
	latestRaw := dataString(result.Data, "latest")

	current, errCurrent := semver.NewVersion(currentRaw)
	latest, errLatest := semver.NewVersion(latestRaw)
	if errCurrent != nil || errLatest != nil {
		// Backend sent something non-semver; report it raw.
		return labtypes.Single(labtypes.Infof("Installed: %s, latest: %s", currentRaw, latestRaw))
	}

	if latest.GreaterThan(current) {
		return labtypes.Single(labtypes.Infof("Update available: v%s -> v%s. Run /update apply.", current, latest))
	}
	return labtypes.Single(labtypes.Successf("Hub is up to date (v%s)", current))
}

func init() {
	if err := router.GlobalRegistry.Register(&UpdateCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register update command: %v", err))
	}
}

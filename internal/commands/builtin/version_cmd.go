package builtin

import (
	"fmt"

	"labshell/internal/router"
	"labshell/internal/version"
	"labshell/pkg/labtypes"
)

// VersionCommand implements the /version command.
type VersionCommand struct{}

// Name returns the command name "version".
func (c *VersionCommand) Name() string { return "version" }

// Aliases returns no aliases for version.
func (c *VersionCommand) Aliases() []string { return nil }

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string { return "Show the client version" }

// Usage returns the syntax for the version command.
func (c *VersionCommand) Usage() string { return "/version" }

// RequiresAuth returns false: the client version is local information.
func (c *VersionCommand) RequiresAuth() bool { return false }

// HelpInfo returns structured help information for the version command.
func (c *VersionCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
	}
}

// Execute reports the client version.
func (c *VersionCommand) Execute(_ labtypes.ExecContext) labtypes.Outcome {
	return labtypes.Single(labtypes.Infof("LabShell v%s", version.Version))
}

func init() {
	if err := router.GlobalRegistry.Register(&VersionCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register version command: %v", err))
	}
}

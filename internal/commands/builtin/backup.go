package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// BackupCommand implements the /backup command. Export and import emit
// Signals carrying the file path; the host shell performs the file IO after
// observing them. Only list talks to the backend directly.
type BackupCommand struct{}

// Name returns the command name "backup".
func (c *BackupCommand) Name() string { return "backup" }

// Aliases returns no aliases for backup.
func (c *BackupCommand) Aliases() []string { return nil }

// Description returns a brief description of what the backup command does.
func (c *BackupCommand) Description() string { return "Export, import or list backups" }

// Usage returns the syntax for the backup command.
func (c *BackupCommand) Usage() string {
	return "/backup <list | export <path> | import <path> [--overwrite]>"
}

// RequiresAuth returns true.
func (c *BackupCommand) RequiresAuth() bool { return true }

// HelpInfo returns structured help information for the backup command.
func (c *BackupCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/backup export /tmp/lab.enc", Description: "Write an encrypted backup archive"},
			{Command: "/backup import /tmp/lab.enc --overwrite", Description: "Restore, replacing existing data"},
		},
		Notes: []string{"import without --overwrite refuses to touch existing records"},
	}
}

// Execute dispatches the backup subcommand.
func (c *BackupCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	sub, rest := subcommand(ctx.Args)
	switch sub {
	case "":
		return usageError(c.Usage())
	case "list":
		result := ctx.Tools.Invoke("backup.list", nil)
		if !result.OK {
			return adapterError(result)
		}
		backups := dataList(result.Data, "backups")
		if len(backups) == 0 {
			return labtypes.Single(labtypes.Info("No backups found."))
		}
		results := []labtypes.Result{labtypes.Successf("%d backup(s) found", len(backups))}
		for _, backup := range backups {
			results = append(results, labtypes.Info(itemLine(backup)))
		}
		return labtypes.Outcome{Results: results}
	case "export":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return usageError(c.Usage())
		}
		return labtypes.Single(labtypes.System(signal.Encode(signal.BackupExport, fields[0])))
	case "import":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return usageError(c.Usage())
		}
		path := fields[0]
		action := signal.BackupImport
		for _, flag := range fields[1:] {
			if flag == "--overwrite" {
				action = signal.BackupImportOverwrite
			}
		}
		return labtypes.Single(labtypes.System(signal.Encode(action, path)))
	default:
		return labtypes.Single(labtypes.Errorf("Unknown backup subcommand: %s. Usage: %s", router.SanitizeToken(sub), c.Usage()))
	}
}

func init() {
	if err := router.GlobalRegistry.Register(&BackupCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register backup command: %v", err))
	}
}

package builtin

import (
	"fmt"
	"strings"

	"labshell/internal/output"
	"labshell/internal/router"
	"labshell/pkg/labtypes"
)

// HelpCommand implements the /help command. Without arguments it lists every
// registered command; with a command name it renders that command's help.
type HelpCommand struct{}

// Name returns the command name "help".
func (c *HelpCommand) Name() string {
	return "help"
}

// Aliases returns the alternative spellings of help.
func (c *HelpCommand) Aliases() []string {
	return []string{"h", "?"}
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "List commands or show one command's help"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "/help [command]"
}

// RequiresAuth returns false: help must work before login.
func (c *HelpCommand) RequiresAuth() bool {
	return false
}

// HelpInfo returns structured help information for the help command.
func (c *HelpCommand) HelpInfo() labtypes.HelpInfo {
	return labtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []labtypes.HelpExample{
			{Command: "/help", Description: "List all commands"},
			{Command: "/help backup", Description: "Show backup subcommands and flags"},
		},
	}
}

// Execute lists the registry or renders one command's structured help.
func (c *HelpCommand) Execute(ctx labtypes.ExecContext) labtypes.Outcome {
	args := strings.Fields(ctx.Args)
	if len(args) > 0 {
		return c.commandHelp(args[0])
	}

	results := []labtypes.Result{labtypes.Info("Available commands:")}
	for _, cmd := range router.GlobalRegistry.GetAll() {
		results = append(results, labtypes.Infof("  /%-10s %s", cmd.Name(), cmd.Description()))
	}
	results = append(results, labtypes.Info("Type /help <command> for details."))
	return labtypes.Outcome{Results: results}
}

// commandHelp renders one command's HelpInfo as terminal markdown.
func (c *HelpCommand) commandHelp(name string) labtypes.Outcome {
	name = strings.ToLower(strings.TrimPrefix(name, "/"))
	cmd, found := router.GlobalRegistry.Resolve(name)
	if !found {
		return labtypes.Single(labtypes.Errorf("Unknown command: /%s. Type /help to list commands.", router.SanitizeToken(name)))
	}

	info := cmd.HelpInfo()
	var sb strings.Builder
	fmt.Fprintf(&sb, "# /%s\n\n%s\n\n**Usage:** `%s`\n", info.Command, info.Description, info.Usage)
	if len(info.Examples) > 0 {
		sb.WriteString("\n**Examples:**\n\n")
		for _, example := range info.Examples {
			fmt.Fprintf(&sb, "- `%s`: %s\n", example.Command, example.Description)
		}
	}
	if len(info.Notes) > 0 {
		sb.WriteString("\n")
		for _, note := range info.Notes {
			fmt.Fprintf(&sb, "> %s\n", note)
		}
	}

	return labtypes.Single(labtypes.Info(output.RenderMarkdown(sb.String())))
}

func init() {
	if err := router.GlobalRegistry.Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}

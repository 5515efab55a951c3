// Package main provides the LabShell CLI application entry point.
// LabShell is the interactive terminal client for the homelab hub backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "labshell/internal/commands/builtin" // Import for side effects (init functions)
	"labshell/internal/config"
	"labshell/internal/logger"
	"labshell/internal/output"
	"labshell/internal/router"
	"labshell/internal/shell"
	"labshell/internal/tools"
	"labshell/internal/version"
	"labshell/pkg/labtypes"
)

var (
	logLevel  string
	logFile   string
	testMode  bool
	serverURL string
	plainMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labshell",
	Short: "LabShell - homelab hub terminal client",
	Long: `LabShell is an interactive terminal client for managing a homelab hub:
servers, monitoring agents, backups, users, and platform updates.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long:  `Start the interactive LabShell session against the configured hub.`,
	Run:   runShell,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of the LabShell client.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("LabShell v%s\n", version.Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Hub WebSocket URL (overrides LABSHELL_SERVER_URL)")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Disable styled output")

	// Bind flags to viper
	for _, name := range []string{"log-level", "log-file", "test-mode", "server", "plain"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Configure logger with CLI flags
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting LabShell", "version", version.Version)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	printer := buildPrinter()

	// A failed dial is not fatal: the shell starts disconnected and the
	// allow-listed commands still work.
	session := labtypes.SessionState{}
	var call tools.CallFunc
	if client, err := tools.Dial(cfg.ServerURL, cfg.Timeout); err != nil {
		logger.Warn("Hub unreachable", "url", cfg.ServerURL, "error", err)
		printer.Error(fmt.Sprintf("Could not reach the hub at %s. Starting disconnected.", cfg.ServerURL))
	} else {
		defer func() { _ = client.Close() }()
		call = client.Call
		session.Connected = true

		if cfg.Token != "" {
			session = resumeSession(call, cfg.Token, session, printer)
		}
	}

	adapter := tools.NewAdapter(call)
	privileged := tools.NewPrivileged(call, call)
	rt := router.New(router.GlobalRegistry, adapter, privileged)

	printer.Println(fmt.Sprintf("LabShell v%s - homelab hub terminal client", version.Version))
	printer.Println("Type /help for commands or /quit to leave.")

	sh := shell.New(rt, printer, adapter, session)
	if err := sh.Run(); err != nil {
		logger.Fatal("Shell terminated", "error", err)
	}
}

// resumeSession exchanges a pre-issued token for an authenticated session.
func resumeSession(call tools.CallFunc, token string, session labtypes.SessionState, printer *output.Printer) labtypes.SessionState {
	adapter := tools.NewAdapter(call)
	result := adapter.Invoke("auth.resume", map[string]interface{}{"token": token})
	if !result.OK {
		logger.Warn("Token rejected", "error", result.Message)
		printer.Error("Stored session token was rejected. Type /login to sign in.")
		return session
	}

	session.Authenticated = true
	if username, ok := result.Data["username"].(string); ok {
		session.Username = username
	}
	return session
}

func buildPrinter() *output.Printer {
	if testMode {
		return output.NewPrinter(output.TestMode())
	}
	if plainMode {
		return output.NewPrinter(output.PlainText())
	}
	return output.NewPrinter(output.WithStyles(output.NewLipglossStyleProvider()))
}

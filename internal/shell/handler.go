// Package shell provides the interactive LabShell session. It owns the
// readline loop and the session state, routes each input line, prints the
// routed Results, and performs the host-side effects that commands request
// through signal sentinels.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"labshell/internal/logger"
	"labshell/internal/output"
	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// Shell runs the interactive session. One line is routed to completion
// before the next is read, so session mutations never race.
type Shell struct {
	router  *router.Router
	printer *output.Printer
	tools   labtypes.ToolInvoker
	session labtypes.SessionState
	view    string
	logger  *log.Logger

	// Prompting and host IO are indirected so signal handling is testable
	// without a terminal.
	readLine     func(prompt string) (string, error)
	readPassword func(prompt string) (string, error)
	clearScreen  func()
	readFile     func(path string) ([]byte, error)
	writeFile    func(path string, data []byte) error
}

// New creates a Shell over the given router, printer, and tool channel.
// The tool channel is used for the host-side flows (login, setup, password
// reset, backup transfer); ordinary commands reach it through the router.
func New(rt *router.Router, printer *output.Printer, tools labtypes.ToolInvoker, session labtypes.SessionState) *Shell {
	s := &Shell{
		router:  rt,
		printer: printer,
		tools:   tools,
		session: session,
		view:    "dashboard",
		logger:  logger.NewStyledLogger("Shell"),
	}
	s.clearScreen = func() { termenv.NewOutput(os.Stdout).ClearScreen() }
	s.readFile = os.ReadFile
	s.writeFile = func(path string, data []byte) error { return os.WriteFile(path, data, 0o600) }
	return s
}

// Session returns a snapshot of the current session state.
func (s *Shell) Session() labtypes.SessionState {
	return s.session
}

// Run reads lines until the user quits or input ends. It returns an error
// only for terminal-level failures; command failures are printed Results.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s.readLine = func(prompt string) (string, error) {
		rl.SetPrompt(prompt)
		defer rl.SetPrompt(s.prompt())
		return rl.Readline()
	}
	s.readPassword = func(prompt string) (string, error) {
		pw, err := rl.ReadPassword(prompt)
		return string(pw), err
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.Apply(s.router.Route(line, s.session)) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

// Apply renders one routed Outcome: signal sentinels trigger their host-side
// effect, everything else is printed. It reports whether the shell should
// exit.
func (s *Shell) Apply(outcome labtypes.Outcome) bool {
	for _, result := range outcome.Results {
		if action, payload, ok := signal.DecodeAny(result.Text); ok {
			s.applySignal(action, payload)
			continue
		}
		s.printer.PrintResult(result)
	}
	return outcome.Exit
}

func (s *Shell) applySignal(action signal.Action, payload string) {
	s.logger.Debug("Applying signal", "action", action.String())
	logger.SignalEmitted(action.String(), payload)

	switch action {
	case signal.ClearScreen:
		s.clearScreen()
	case signal.Logout:
		s.session.Authenticated = false
		s.session.Username = ""
		s.printer.Info("Logged out.")
	case signal.Login:
		s.loginFlow()
	case signal.Refresh:
		s.refreshView()
	case signal.OpenSetup:
		s.setupFlow()
	case signal.ResetPassword:
		s.resetPasswordFlow(payload)
	case signal.BackupExport:
		s.exportBackup(payload)
	case signal.BackupImport:
		s.importBackup(payload, false)
	case signal.BackupImportOverwrite:
		s.importBackup(payload, true)
	case signal.SwitchView:
		s.view = payload
		s.printer.Info(fmt.Sprintf("Switched to %s view.", payload))
	}
}

// loginFlow prompts for credentials and authenticates against the hub.
func (s *Shell) loginFlow() {
	username, err := s.readLine("Username: ")
	if err != nil || strings.TrimSpace(username) == "" {
		s.printer.Error("Login cancelled.")
		return
	}
	username = strings.TrimSpace(username)

	password, err := s.readPassword("Password: ")
	if err != nil {
		s.printer.Error("Login cancelled.")
		return
	}

	result := s.tools.Invoke("auth.login", map[string]interface{}{
		"username": username,
		"password": password,
	})
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Login failed: %s", result.Message))
		return
	}

	s.session.Authenticated = true
	s.session.Username = username
	s.printer.Success(fmt.Sprintf("Logged in as %s", username))
}

// setupFlow runs the first-run admin creation wizard.
func (s *Shell) setupFlow() {
	s.printer.Info("Creating the first admin account.")

	username, err := s.readLine("Admin username: ")
	if err != nil || strings.TrimSpace(username) == "" {
		s.printer.Error("Setup cancelled.")
		return
	}
	username = strings.TrimSpace(username)

	password, err := s.readPassword("Admin password: ")
	if err != nil || password == "" {
		s.printer.Error("Setup cancelled.")
		return
	}
	confirm, err := s.readPassword("Confirm password: ")
	if err != nil || confirm != password {
		s.printer.Error("Passwords do not match.")
		return
	}

	result := s.tools.Invoke("admin.create", map[string]interface{}{
		"username": username,
		"password": password,
	})
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Setup failed: %s", result.Message))
		return
	}
	s.printer.Success(fmt.Sprintf("Admin account %s created. Type /login to sign in.", username))
}

// resetPasswordFlow prompts for and sets a new password for the named user.
func (s *Shell) resetPasswordFlow(username string) {
	password, err := s.readPassword(fmt.Sprintf("New password for %s: ", username))
	if err != nil || password == "" {
		s.printer.Error("Password reset cancelled.")
		return
	}

	result := s.tools.Invoke("users.reset_password", map[string]interface{}{
		"username": username,
		"password": password,
	})
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Password reset failed: %s", result.Message))
		return
	}
	s.printer.Success(fmt.Sprintf("Password reset for %s", username))
}

// refreshView re-fetches the active view.
func (s *Shell) refreshView() {
	result := s.tools.Invoke("views.refresh", map[string]interface{}{"view": s.view})
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Refresh failed: %s", result.Message))
		return
	}
	s.printer.Success(fmt.Sprintf("%s view refreshed", s.view))
}

// exportBackup fetches an encrypted archive from the hub and writes it to
// the requested path.
func (s *Shell) exportBackup(path string) {
	result := s.tools.Invoke("backup.export", nil)
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Backup export failed: %s", result.Message))
		return
	}

	archive, _ := result.Data["archive"].(string)
	if archive == "" {
		s.printer.Error("Backup export failed: hub returned an empty archive")
		return
	}
	if err := s.writeFile(path, []byte(archive)); err != nil {
		s.printer.Error(fmt.Sprintf("Failed to write %s: %v", path, err))
		return
	}
	s.printer.Success(fmt.Sprintf("Backup written to %s", path))
}

// importBackup reads an archive from disk and sends it to the hub.
func (s *Shell) importBackup(path string, overwrite bool) {
	data, err := s.readFile(path)
	if err != nil {
		s.printer.Error(fmt.Sprintf("Failed to read %s: %v", path, err))
		return
	}

	result := s.tools.Invoke("backup.import", map[string]interface{}{
		"archive":   string(data),
		"overwrite": overwrite,
	})
	if !result.OK {
		s.printer.Error(fmt.Sprintf("Backup import failed: %s", result.Message))
		return
	}
	s.printer.Success(fmt.Sprintf("Backup restored from %s", path))
}

// prompt formats the readline prompt from the session and active view.
func (s *Shell) prompt() string {
	if s.session.Authenticated {
		return fmt.Sprintf("labshell(%s)> ", s.view)
	}
	return "labshell> "
}

// completer builds tab completion over the registered command names.
func (s *Shell) completer() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0)
	for _, cmd := range s.router.Registry().GetAll() {
		items = append(items, readline.PcItem("/"+cmd.Name()))
		for _, alias := range cmd.Aliases() {
			items = append(items, readline.PcItem("/"+alias))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

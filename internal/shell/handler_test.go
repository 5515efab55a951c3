package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "labshell/internal/commands/builtin" // register the command set
	"labshell/internal/output"
	"labshell/internal/router"
	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// recordingInvoker replies from a canned table and records every call.
type recordingInvoker struct {
	calls     []string
	lastArgs  map[string]interface{}
	responses map[string]labtypes.ToolResult
}

func (r *recordingInvoker) Invoke(name string, args map[string]interface{}) labtypes.ToolResult {
	r.calls = append(r.calls, name)
	r.lastArgs = args
	if result, ok := r.responses[name]; ok {
		return result
	}
	return labtypes.ToolResult{OK: true}
}

func newTestShell(t *testing.T, tools *recordingInvoker, session labtypes.SessionState) (*Shell, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	printer := output.NewPrinter(output.TestMode(), output.WithWriter(&buf))
	rt := router.New(router.GlobalRegistry, tools, nil)
	s := New(rt, printer, tools, session)
	s.readLine = func(string) (string, error) { return "", errors.New("no terminal") }
	s.readPassword = func(string) (string, error) { return "", errors.New("no terminal") }
	return s, &buf
}

func signalOutcome(action signal.Action, payload string) labtypes.Outcome {
	return labtypes.Single(labtypes.System(signal.Encode(action, payload)))
}

func TestApplyPrintsOrdinaryResults(t *testing.T) {
	s, buf := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{})

	exit := s.Apply(labtypes.Outcome{Results: []labtypes.Result{
		labtypes.Success("Connected to hub"),
		labtypes.Error("Not authenticated"),
	}})
	assert.False(t, exit)
	assert.Contains(t, buf.String(), "✓ Connected to hub")
	assert.Contains(t, buf.String(), "✗ Not authenticated")
}

func TestApplyExitFlag(t *testing.T) {
	s, _ := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{})

	exit := s.Apply(labtypes.Outcome{
		Results: []labtypes.Result{{Kind: labtypes.KindInfo, Text: "Goodbye.", Terminate: true}},
		Exit:    true,
	})
	assert.True(t, exit)
}

func TestApplySentinelNeverPrinted(t *testing.T) {
	s, buf := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{Authenticated: true, Username: "alice"})

	s.Apply(signalOutcome(signal.Logout, ""))
	assert.NotContains(t, buf.String(), "__LAB_")
}

func TestApplyClearScreen(t *testing.T) {
	s, _ := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{})
	cleared := false
	s.clearScreen = func() { cleared = true }

	s.Apply(signalOutcome(signal.ClearScreen, ""))
	assert.True(t, cleared)
}

func TestApplyLogoutDropsSession(t *testing.T) {
	s, buf := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{
		Connected: true, Authenticated: true, Username: "alice",
	})

	s.Apply(signalOutcome(signal.Logout, ""))

	session := s.Session()
	assert.True(t, session.Connected, "logout keeps the connection")
	assert.False(t, session.Authenticated)
	assert.Empty(t, session.Username)
	assert.Contains(t, buf.String(), "Logged out.")
}

func TestApplyLoginFlow(t *testing.T) {
	tools := &recordingInvoker{}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Connected: true})
	s.readLine = func(string) (string, error) { return "alice", nil }
	s.readPassword = func(string) (string, error) { return "hunter2", nil }

	s.Apply(signalOutcome(signal.Login, ""))

	require.Equal(t, []string{"auth.login"}, tools.calls)
	assert.Equal(t, map[string]interface{}{"username": "alice", "password": "hunter2"}, tools.lastArgs)
	session := s.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "alice", session.Username)
	assert.Contains(t, buf.String(), "Logged in as alice")
}

func TestApplyLoginRejected(t *testing.T) {
	tools := &recordingInvoker{responses: map[string]labtypes.ToolResult{
		"auth.login": {Message: "invalid credentials"},
	}}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Connected: true})
	s.readLine = func(string) (string, error) { return "alice", nil }
	s.readPassword = func(string) (string, error) { return "wrong", nil }

	s.Apply(signalOutcome(signal.Login, ""))

	assert.False(t, s.Session().Authenticated)
	assert.Contains(t, buf.String(), "invalid credentials")
}

func TestApplySwitchView(t *testing.T) {
	s, buf := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{Authenticated: true})

	s.Apply(signalOutcome(signal.SwitchView, "agents"))
	assert.Equal(t, "agents", s.view)
	assert.Contains(t, buf.String(), "Switched to agents view.")
	assert.Contains(t, s.prompt(), "agents")
}

func TestApplyRefreshUsesActiveView(t *testing.T) {
	tools := &recordingInvoker{}
	s, _ := newTestShell(t, tools, labtypes.SessionState{Authenticated: true})
	s.view = "logs"

	s.Apply(signalOutcome(signal.Refresh, ""))
	require.Equal(t, []string{"views.refresh"}, tools.calls)
	assert.Equal(t, map[string]interface{}{"view": "logs"}, tools.lastArgs)
}

func TestApplyResetPassword(t *testing.T) {
	tools := &recordingInvoker{}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Authenticated: true})
	s.readPassword = func(string) (string, error) { return "s3cret", nil }

	s.Apply(signalOutcome(signal.ResetPassword, "bob"))

	require.Equal(t, []string{"users.reset_password"}, tools.calls)
	assert.Equal(t, map[string]interface{}{"username": "bob", "password": "s3cret"}, tools.lastArgs)
	assert.Contains(t, buf.String(), "Password reset for bob")
}

func TestApplyBackupExportWritesFile(t *testing.T) {
	tools := &recordingInvoker{responses: map[string]labtypes.ToolResult{
		"backup.export": {OK: true, Data: map[string]interface{}{"archive": "encrypted-bytes"}},
	}}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Authenticated: true})

	path := filepath.Join(t.TempDir(), "lab.enc")
	s.Apply(signalOutcome(signal.BackupExport, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "encrypted-bytes", string(data))
	assert.Contains(t, buf.String(), "Backup written to "+path)
}

func TestApplyBackupImportSendsArchive(t *testing.T) {
	tools := &recordingInvoker{}
	s, _ := newTestShell(t, tools, labtypes.SessionState{Authenticated: true})

	path := filepath.Join(t.TempDir(), "lab.enc")
	require.NoError(t, os.WriteFile(path, []byte("encrypted-bytes"), 0o600))

	s.Apply(signalOutcome(signal.BackupImportOverwrite, path))

	require.Equal(t, []string{"backup.import"}, tools.calls)
	assert.Equal(t, map[string]interface{}{
		"archive":   "encrypted-bytes",
		"overwrite": true,
	}, tools.lastArgs)
}

func TestApplyBackupImportMissingFile(t *testing.T) {
	tools := &recordingInvoker{}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Authenticated: true})

	s.Apply(signalOutcome(signal.BackupImport, filepath.Join(t.TempDir(), "absent.enc")))

	assert.Empty(t, tools.calls, "a missing archive never reaches the hub")
	assert.Contains(t, buf.String(), "Failed to read")
}

func TestApplySetupFlow(t *testing.T) {
	tools := &recordingInvoker{}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Connected: true})
	s.readLine = func(string) (string, error) { return "root", nil }
	s.readPassword = func(string) (string, error) { return "s3cret", nil }

	s.Apply(signalOutcome(signal.OpenSetup, ""))

	require.Equal(t, []string{"admin.create"}, tools.calls)
	assert.Contains(t, buf.String(), "Admin account root created")
	assert.False(t, s.Session().Authenticated, "setup does not sign in")
}

func TestApplySetupPasswordMismatch(t *testing.T) {
	tools := &recordingInvoker{}
	s, buf := newTestShell(t, tools, labtypes.SessionState{Connected: true})
	s.readLine = func(string) (string, error) { return "root", nil }
	passwords := []string{"first", "second"}
	s.readPassword = func(string) (string, error) {
		pw := passwords[0]
		passwords = passwords[1:]
		return pw, nil
	}

	s.Apply(signalOutcome(signal.OpenSetup, ""))

	assert.Empty(t, tools.calls)
	assert.Contains(t, buf.String(), "Passwords do not match.")
}

func TestPromptReflectsSession(t *testing.T) {
	s, _ := newTestShell(t, &recordingInvoker{}, labtypes.SessionState{})
	assert.Equal(t, "labshell> ", s.prompt())

	s.session.Authenticated = true
	assert.Equal(t, "labshell(dashboard)> ", s.prompt())
}

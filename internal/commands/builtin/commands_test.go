package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labshell/internal/signal"
	"labshell/pkg/labtypes"
)

// mockInvoker records invocations and replies from a canned table.
type mockInvoker struct {
	calls     []string
	lastArgs  map[string]interface{}
	responses map[string]labtypes.ToolResult
}

func (m *mockInvoker) Invoke(name string, args map[string]interface{}) labtypes.ToolResult {
	m.calls = append(m.calls, name)
	m.lastArgs = args
	if result, ok := m.responses[name]; ok {
		return result
	}
	return labtypes.ToolResult{OK: true}
}

// mockPrivileged records which privileged capability ran.
type mockPrivileged struct {
	unlocked  []string
	installed []string
	result    labtypes.ToolResult
}

func (m *mockPrivileged) UnlockAccount(username string) labtypes.ToolResult {
	m.unlocked = append(m.unlocked, username)
	return m.result
}

func (m *mockPrivileged) InstallAgent(host string) labtypes.ToolResult {
	m.installed = append(m.installed, host)
	return m.result
}

func execCtx(args string, tools *mockInvoker, privileged *mockPrivileged) labtypes.ExecContext {
	return labtypes.ExecContext{
		Args:       args,
		Session:    labtypes.SessionState{Connected: true, Authenticated: true, Username: "alice"},
		Tools:      tools,
		Privileged: privileged,
	}
}

func TestSubcommandSplit(t *testing.T) {
	tests := []struct {
		args string
		sub  string
		rest string
	}{
		{"", "", ""},
		{"status", "status", ""},
		{"STATUS nas-01", "status", "nas-01"},
		{"  import  /tmp/a.enc --overwrite ", "import", "/tmp/a.enc --overwrite"},
	}
	for _, tt := range tests {
		sub, rest := subcommand(tt.args)
		assert.Equal(t, tt.sub, sub, "args %q", tt.args)
		assert.Equal(t, tt.rest, rest, "args %q", tt.args)
	}
}

func TestItemLineFallbacks(t *testing.T) {
	assert.Equal(t, "  nas-01 (online)", itemLine(map[string]interface{}{"name": "nas-01", "status": "online"}))
	assert.Equal(t, "  srv-9", itemLine(map[string]interface{}{"id": "srv-9"}))
	assert.Equal(t, "  unnamed", itemLine(map[string]interface{}{}))
}

func TestServerStatusPassesIdentifier(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"server.status": {OK: true, Data: map[string]interface{}{"health": "degraded"}},
	}}

	outcome := (&ServerCommand{}).Execute(execCtx("status nas-01", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "Server nas-01: degraded", outcome.Results[0].Text)
	require.Equal(t, []string{"server.status"}, tools.calls)
	assert.Equal(t, map[string]interface{}{"server": "nas-01"}, tools.lastArgs)
}

func TestServerPingLatency(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"server.ping": {OK: true, Data: map[string]interface{}{"latency": "12ms"}},
	}}

	outcome := (&ServerCommand{}).Execute(execCtx("ping nas-01", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "12ms")
}

func TestServerMissingIdentifier(t *testing.T) {
	tools := &mockInvoker{}

	outcome := (&ServerCommand{}).Execute(execCtx("status", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindError, outcome.Results[0].Kind)
	assert.Contains(t, outcome.Results[0].Text, "Usage:")
	assert.Empty(t, tools.calls)
}

func TestServerListDelegatesToServers(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"servers.list": {OK: true, Data: map[string]interface{}{"servers": []interface{}{}}},
	}}

	outcome := (&ServerCommand{}).Execute(execCtx("list", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "No servers found.", outcome.Results[0].Text)
	assert.Equal(t, []string{"servers.list"}, tools.calls)
}

func TestAgentsListRendered(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"agents.list": {OK: true, Data: map[string]interface{}{"agents": []interface{}{
			map[string]interface{}{"name": "agent-07", "status": "healthy"},
		}}},
	}}

	outcome := (&AgentsCommand{}).Execute(execCtx("", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 2)
	assert.Contains(t, outcome.Results[0].Text, "1 agent(s) found")
	assert.Contains(t, outcome.Results[1].Text, "agent-07 (healthy)")
}

func TestAgentRotateKeys(t *testing.T) {
	tools := &mockInvoker{}

	outcome := (&AgentCommand{}).Execute(execCtx("rotate agent-07", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "Keys rotated")
	require.Equal(t, []string{"agent.rotate_keys"}, tools.calls)
	assert.Equal(t, map[string]interface{}{"agent": "agent-07"}, tools.lastArgs)
}

func TestAgentInstallUsesPrivilegedCapability(t *testing.T) {
	tools := &mockInvoker{}
	privileged := &mockPrivileged{result: labtypes.ToolResult{OK: true}}

	outcome := (&AgentCommand{}).Execute(execCtx("install 10.0.0.12", tools, privileged))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindSuccess, outcome.Results[0].Kind)
	assert.Equal(t, []string{"10.0.0.12"}, privileged.installed)
	assert.Empty(t, tools.calls, "install must not use the ordinary tool channel")
}

func TestAgentInstallFailureSurfacesMessage(t *testing.T) {
	privileged := &mockPrivileged{result: labtypes.ToolResult{Message: "host unreachable"}}

	outcome := (&AgentCommand{}).Execute(execCtx("install 10.0.0.12", &mockInvoker{}, privileged))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindError, outcome.Results[0].Kind)
	assert.Equal(t, "host unreachable", outcome.Results[0].Text)
}

func TestSecurityUnlockMissingUsername(t *testing.T) {
	privileged := &mockPrivileged{result: labtypes.ToolResult{OK: true}}

	outcome := (&SecurityCommand{}).Execute(execCtx("unlock", &mockInvoker{}, privileged))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "Usage:")
	assert.Empty(t, privileged.unlocked)
}

func TestSecurityAuditFindings(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"security.audit": {OK: true, Data: map[string]interface{}{"findings": []interface{}{
			map[string]interface{}{"name": "weak password policy"},
		}}},
	}}

	outcome := (&SecurityCommand{}).Execute(execCtx("audit", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, labtypes.KindError, outcome.Results[0].Kind)
	assert.Contains(t, outcome.Results[0].Text, "1 issue(s)")
}

func TestSecurityAuditClean(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"security.audit": {OK: true, Data: map[string]interface{}{"findings": []interface{}{}}},
	}}

	outcome := (&SecurityCommand{}).Execute(execCtx("audit", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindSuccess, outcome.Results[0].Kind)
}

func TestBackupExportSignal(t *testing.T) {
	outcome := (&BackupCommand{}).Execute(execCtx("export /tmp/lab.enc", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindSystem, outcome.Results[0].Kind)

	payload, ok := signal.Decode(outcome.Results[0].Text, signal.BackupExport)
	require.True(t, ok)
	assert.Equal(t, "/tmp/lab.enc", payload)
}

func TestBackupImportFlagPlacement(t *testing.T) {
	cmd := &BackupCommand{}

	outcome := cmd.Execute(execCtx("import --overwrite", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	payload, ok := signal.Decode(outcome.Results[0].Text, signal.BackupImport)
	require.True(t, ok, "a lone flag is treated as the path, not as overwrite")
	assert.Equal(t, "--overwrite", payload)

	outcome = cmd.Execute(execCtx("import /tmp/a.enc --overwrite extra", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	payload, ok = signal.Decode(outcome.Results[0].Text, signal.BackupImportOverwrite)
	require.True(t, ok)
	assert.Equal(t, "/tmp/a.enc", payload)
}

func TestSignalCommandsEmitBarePrefixes(t *testing.T) {
	ctx := execCtx("", &mockInvoker{}, &mockPrivileged{})

	tests := []struct {
		cmd    labtypes.Command
		action signal.Action
	}{
		{&ClearCommand{}, signal.ClearScreen},
		{&LogoutCommand{}, signal.Logout},
		{&RefreshCommand{}, signal.Refresh},
	}
	for _, tt := range tests {
		outcome := tt.cmd.Execute(ctx)
		require.Len(t, outcome.Results, 1, "command %s", tt.cmd.Name())
		assert.Equal(t, labtypes.KindSystem, outcome.Results[0].Kind)
		payload, ok := signal.Decode(outcome.Results[0].Text, tt.action)
		require.True(t, ok, "command %s", tt.cmd.Name())
		assert.Empty(t, payload)
	}
}

func TestLoginAlreadyAuthenticated(t *testing.T) {
	ctx := execCtx("", &mockInvoker{}, &mockPrivileged{})

	outcome := (&LoginCommand{}).Execute(ctx)
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindInfo, outcome.Results[0].Kind)
	assert.Contains(t, outcome.Results[0].Text, "alice")
}

func TestHelpListsRegisteredCommands(t *testing.T) {
	outcome := (&HelpCommand{}).Execute(execCtx("", &mockInvoker{}, &mockPrivileged{}))
	require.Greater(t, len(outcome.Results), 2)

	var listing string
	for _, result := range outcome.Results {
		listing += result.Text + "\n"
	}
	assert.Contains(t, listing, "/help")
	assert.Contains(t, listing, "/quit")
	assert.Contains(t, listing, "/backup")
}

func TestHelpUnknownCommand(t *testing.T) {
	outcome := (&HelpCommand{}).Execute(execCtx("frobnicate", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, labtypes.KindError, outcome.Results[0].Kind)
	assert.Contains(t, outcome.Results[0].Text, "/frobnicate")
}

func TestHelpForCommandRendersUsage(t *testing.T) {
	outcome := (&HelpCommand{}).Execute(execCtx("/backup", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "backup")
	assert.Contains(t, outcome.Results[0].Text, "export")
}

func TestUpdateApplyReportsVersion(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"update.apply": {OK: true, Data: map[string]interface{}{"version": "1.5.2"}},
	}}

	outcome := (&UpdateCommand{}).Execute(execCtx("apply", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "Updated to v1.5.2", outcome.Results[0].Text)
}

func TestUpdateCheckNonSemverFallback(t *testing.T) {
	tools := &mockInvoker{responses: map[string]labtypes.ToolResult{
		"update.check": {OK: true, Data: map[string]interface{}{"current": "nightly", "latest": "nightly"}},
	}}

	outcome := (&UpdateCommand{}).Execute(execCtx("check", tools, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "nightly")
}

func TestVersionReportsClientVersion(t *testing.T) {
	outcome := (&VersionCommand{}).Execute(execCtx("", &mockInvoker{}, &mockPrivileged{}))
	require.Len(t, outcome.Results, 1)
	assert.Contains(t, outcome.Results[0].Text, "LabShell v")
}

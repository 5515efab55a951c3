package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labshell/pkg/labtypes"
)

func TestCheckAccess_AllowListBypassesSession(t *testing.T) {
	cmd := NewMockCommand("help")
	cmd.requiresAuth = false

	// Even a fully broken session passes for allow-listed commands.
	_, allowed := CheckAccess(cmd, labtypes.SessionState{Connected: false, Authenticated: false})
	assert.True(t, allowed)
}

func TestCheckAccess_NotConnected(t *testing.T) {
	cmd := NewMockCommand("servers")

	result, allowed := CheckAccess(cmd, labtypes.SessionState{Connected: false, Authenticated: true})
	require.False(t, allowed)
	assert.Equal(t, labtypes.KindError, result.Kind)
	assert.Contains(t, result.Text, "Not connected")
}

func TestCheckAccess_NotAuthenticated(t *testing.T) {
	cmd := NewMockCommand("servers")

	result, allowed := CheckAccess(cmd, labtypes.SessionState{Connected: true, Authenticated: false})
	require.False(t, allowed)
	assert.Equal(t, labtypes.KindError, result.Kind)
	assert.Contains(t, result.Text, "Authentication required")
}

func TestCheckAccess_ConnectionBeforeAuth(t *testing.T) {
	cmd := NewMockCommand("servers")

	// Both preconditions false: the connection failure wins. This precedence
	// is load-bearing; do not reorder.
	result, allowed := CheckAccess(cmd, labtypes.SessionState{Connected: false, Authenticated: false})
	require.False(t, allowed)
	assert.Contains(t, result.Text, "Not connected")
	assert.NotContains(t, result.Text, "Authentication required")
}

func TestCheckAccess_FullSessionAllowed(t *testing.T) {
	cmd := NewMockCommand("servers")

	_, allowed := CheckAccess(cmd, labtypes.SessionState{Connected: true, Authenticated: true, Username: "alice"})
	assert.True(t, allowed)
}

func TestCheckSession_SamePrecedence(t *testing.T) {
	result, allowed := CheckSession(labtypes.SessionState{})
	require.False(t, allowed)
	assert.Contains(t, result.Text, "Not connected")
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean token", "frobnicate", "frobnicate"},
		{"ansi color", "\x1b[31mred\x1b[0m", "red"},
		{"control runes", "a\x00b\x07c", "abc"},
		{"newline injection", "bad\ncmd", "badcmd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeToken(tt.input))
		})
	}
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n  "},
		{"bare slash", "/"},
		{"slash with spaces", "  /  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestParse_NameAndArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs string
	}{
		{"bare command", "help", "help", ""},
		{"slash command", "/help", "help", ""},
		{"upper case name", "/HELP", "help", ""},
		{"surrounding whitespace", "  /HELP  ", "help", ""},
		{"args preserved casing", "/view Dashboard", "view", "Dashboard"},
		{"args trimmed", "/backup   import /tmp/bk.enc --overwrite  ", "backup", "import /tmp/bk.enc --overwrite"},
		{"tab separated", "/agent\tstatus srv-01", "agent", "status srv-01"},
		{"no slash with args", "servers all", "servers", "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, inv.Name)
			assert.Equal(t, tt.wantArgs, inv.Args)
		})
	}
}

func TestParse_WhitespaceIdempotent(t *testing.T) {
	a, ok := Parse("  /HELP  ")
	require.True(t, ok)
	b, ok := Parse("/help")
	require.True(t, ok)
	assert.Equal(t, b, a)
}

func TestHasSlash(t *testing.T) {
	assert.True(t, HasSlash("/servers"))
	assert.True(t, HasSlash("  /servers"))
	assert.False(t, HasSlash("servers"))
	assert.False(t, HasSlash("  what is this"))
}

// Package signal implements the sentinel-string side channel between command
// handlers and the hosting shell. Handlers encode a named action (optionally
// carrying a payload) into a Result's text; the shell decodes it and performs
// the host-side effect instead of printing the raw string. The string encoding
// is confined to this package so nothing else matches on raw substrings.
package signal

import "strings"

// Action identifies one host-side effect a command can request.
type Action int

const (
	// ClearScreen asks the shell to clear the terminal.
	ClearScreen Action = iota
	// Logout asks the shell to drop the authenticated session.
	Logout
	// Login asks the shell to run the interactive login flow.
	Login
	// Refresh asks the shell to re-fetch the active view.
	Refresh
	// OpenSetup asks the shell to run the first-run admin setup wizard.
	OpenSetup
	// ResetPassword carries a username whose password the shell must reset.
	ResetPassword
	// BackupExport carries a destination file path for a backup archive.
	BackupExport
	// BackupImport carries a source file path for a backup archive.
	BackupImport
	// BackupImportOverwrite is BackupImport with existing data replacement.
	BackupImportOverwrite
	// SwitchView carries the name of the view the shell must activate.
	SwitchView
)

// prefixes maps each action to its sentinel prefix. The trailing double
// underscore delimits the action name, so two prefixes can only be in a
// prefix relation if the action names are identical. init verifies this.
var prefixes = map[Action]string{
	ClearScreen:           "__LAB_CLEAR_SCREEN__",
	Logout:                "__LAB_LOGOUT__",
	Login:                 "__LAB_LOGIN__",
	Refresh:               "__LAB_REFRESH__",
	OpenSetup:             "__LAB_OPEN_SETUP__",
	ResetPassword:         "__LAB_RESET_PASSWORD__",
	BackupExport:          "__LAB_BACKUP_EXPORT__",
	BackupImport:          "__LAB_BACKUP_IMPORT__",
	BackupImportOverwrite: "__LAB_BACKUP_IMPORT_OVERWRITE__",
	SwitchView:            "__LAB_SWITCH_VIEW__",
}

// names are used for String only.
var names = map[Action]string{
	ClearScreen:           "clear-screen",
	Logout:                "logout",
	Login:                 "login",
	Refresh:               "refresh",
	OpenSetup:             "open-setup",
	ResetPassword:         "reset-password",
	BackupExport:          "backup-export",
	BackupImport:          "backup-import",
	BackupImportOverwrite: "backup-import-overwrite",
	SwitchView:            "switch-view",
}

func init() {
	// The vocabulary must stay prefix-free in both directions; a cross-match
	// would misroute one action's payload to another. Checked here so a bad
	// vocabulary edit fails at startup, not at decode time.
	for a, pa := range prefixes {
		for b, pb := range prefixes {
			if a == b {
				continue
			}
			if strings.HasPrefix(pa, pb) {
				panic("signal: prefix for " + names[b] + " is a prefix of " + names[a])
			}
		}
	}
}

// String returns the action's human-readable name.
func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "unknown"
}

// Actions returns the full signal vocabulary.
func Actions() []Action {
	return []Action{
		ClearScreen, Logout, Login, Refresh, OpenSetup,
		ResetPassword, BackupExport, BackupImport, BackupImportOverwrite,
		SwitchView,
	}
}

// Encode builds the sentinel string for an action with an optional payload.
// A payload-free action encodes to its bare prefix.
func Encode(a Action, payload string) string {
	return prefixes[a] + payload
}

// Decode returns the payload if candidate starts with the action's exact
// prefix. A bare-prefix match decodes to an empty payload. The second return
// is false when candidate does not carry this action.
func Decode(candidate string, a Action) (string, bool) {
	prefix, ok := prefixes[a]
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(candidate, prefix) {
		return "", false
	}
	return candidate[len(prefix):], true
}

// DecodeAny matches candidate against the whole vocabulary. Prefix-freedom
// guarantees at most one action matches, so iteration order is irrelevant.
func DecodeAny(candidate string) (Action, string, bool) {
	for _, a := range Actions() {
		if payload, ok := Decode(candidate, a); ok {
			return a, payload, true
		}
	}
	return 0, "", false
}

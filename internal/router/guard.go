package router

import "labshell/pkg/labtypes"

// Guard messages. Tests and callers match on the leading fixed phrases.
const (
	msgNotConnected = "Not connected to the hub backend. Check the server URL and try again."
	msgAuthRequired = "Authentication required. Type /login to sign in."
)

// CheckAccess decides whether a command may proceed for the given session.
// Allow-listed commands (RequiresAuth false) always pass. Otherwise the
// connection precondition is checked before the authentication precondition,
// so a disconnected and unauthenticated session reports the connection
// failure. This precedence is deliberate; keep it.
func CheckAccess(cmd labtypes.Command, session labtypes.SessionState) (labtypes.Result, bool) {
	if !cmd.RequiresAuth() {
		return labtypes.Result{}, true
	}
	return CheckSession(session)
}

// CheckSession applies the connection-then-authentication precondition to a
// session, independent of any command. Allow-listed commands with gated
// subcommands use this for their privileged branches.
func CheckSession(session labtypes.SessionState) (labtypes.Result, bool) {
	if !session.Connected {
		return labtypes.Error(msgNotConnected), false
	}
	if !session.Authenticated {
		return labtypes.Error(msgAuthRequired), false
	}
	return labtypes.Result{}, true
}

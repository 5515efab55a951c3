// Package version holds the LabShell client version.
package version

// Version is the client version string. Overridden at build time via
// -ldflags "-X labshell/internal/version.Version=...".
var Version = "0.4.0"

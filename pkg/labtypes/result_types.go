// Package labtypes defines the shared vocabulary for LabShell command routing.
// This file contains the Result model: the unit of output produced by every
// routed command, plus the session snapshot and route outcome shapes.
package labtypes

import "fmt"

// ResultKind classifies a single line of command output.
type ResultKind string

const (
	// KindInfo represents neutral informational output.
	KindInfo ResultKind = "info"
	// KindSuccess represents a successful outcome.
	KindSuccess ResultKind = "success"
	// KindError represents a failed outcome or rejected input.
	KindError ResultKind = "error"
	// KindSystem represents control output, including Signal sentinels that the
	// hosting shell interprets instead of displaying.
	KindSystem ResultKind = "system"
)

// Result is one line of output from a routed command. Ordering within a
// command's Result list is significant: the first Result is the primary
// outcome and callers may inspect only that one.
type Result struct {
	Kind ResultKind
	Text string
	// Terminate is true only for the quit command family.
	Terminate bool
}

// Info builds an informational Result.
func Info(text string) Result {
	return Result{Kind: KindInfo, Text: text}
}

// Infof builds an informational Result from a format string.
func Infof(format string, args ...interface{}) Result {
	return Result{Kind: KindInfo, Text: fmt.Sprintf(format, args...)}
}

// Success builds a success Result.
func Success(text string) Result {
	return Result{Kind: KindSuccess, Text: text}
}

// Successf builds a success Result from a format string.
func Successf(format string, args ...interface{}) Result {
	return Result{Kind: KindSuccess, Text: fmt.Sprintf(format, args...)}
}

// Error builds an error Result.
func Error(text string) Result {
	return Result{Kind: KindError, Text: text}
}

// Errorf builds an error Result from a format string.
func Errorf(format string, args ...interface{}) Result {
	return Result{Kind: KindError, Text: fmt.Sprintf(format, args...)}
}

// System builds a system Result. Signal sentinels are always carried with this
// kind so the hosting shell checks them before printing.
func System(text string) Result {
	return Result{Kind: KindSystem, Text: text}
}

// Outcome is the return shape of one routing pass: the ordered Results for the
// submitted line and whether the hosting shell should exit.
type Outcome struct {
	Results []Result
	Exit    bool
}

// Single wraps one Result into an Outcome.
func Single(r Result) Outcome {
	return Outcome{Results: []Result{r}}
}

// SessionState is the hosting shell's session snapshot, read-only to the
// routing core. The shell owns and mutates it; commands request mutations only
// through Signals.
type SessionState struct {
	Connected     bool
	Authenticated bool
	Username      string
}

// Package parser splits raw shell input into a command token and its argument
// remainder. It performs no deeper tokenization; subcommand and flag parsing
// is each handler's responsibility.
package parser

import (
	"strings"
	"unicode"
)

// Invocation is one parsed input line: the lower-cased command name and the
// trimmed argument remainder with original casing preserved.
type Invocation struct {
	Name string
	Args string
}

// Parse tokenizes a raw input line. It trims surrounding whitespace, strips
// one leading slash so "/help" and "help" resolve identically, and splits on
// the first whitespace run. Returns ok=false for empty or whitespace-only
// input, in which case the caller produces no Results.
func Parse(raw string) (Invocation, bool) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Invocation{}, false
	}

	input = strings.TrimSpace(strings.TrimPrefix(input, "/"))
	if input == "" {
		// A bare slash carries no command token.
		return Invocation{}, false
	}

	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		return Invocation{
			Name: strings.ToLower(input[:i]),
			Args: strings.TrimSpace(input[i:]),
		}, true
	}
	return Invocation{Name: strings.ToLower(input)}, true
}

// HasSlash reports whether the trimmed input begins with a slash. The router
// uses this to distinguish an unknown command name from an unrecognized input
// format when lookup fails.
func HasSlash(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "/")
}

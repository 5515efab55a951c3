package router

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeToken strips ANSI escape sequences and remaining control runes from
// a user-supplied token before it is echoed back in an error message, so
// malicious input cannot corrupt terminal rendering.
func SanitizeToken(token string) string {
	stripped := ansi.Strip(token)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}

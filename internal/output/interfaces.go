// Package output provides the console output system for LabShell.
// It uses dependency injection to support optional styling while maintaining clean architecture.
package output

// StyleProvider is the interface styling backends implement to provide styled
// text rendering. The output package depends only on this interface, not on a
// concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable returns true if the style provider is ready to provide
	// styles. This allows graceful fallback to plain text.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// Implemented by lipgloss.Style or other styling systems.
type TextStyle interface {
	// Render applies styling to the given text and returns the styled result.
	Render(text string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto automatically detects the best output mode based on context
	ModeAuto Mode = iota

	// ModeStyled forces styled output (with colors, formatting)
	ModeStyled

	// ModePlain forces plain text output (no colors, minimal formatting)
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
// The vocabulary mirrors the Result kinds plus plain text.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticSystem represents control or system status text.
	SemanticSystem SemanticType = "system"
)

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"labshell/pkg/labtypes"
)

// Printer is the main output handler that supports both plain and styled
// output. It uses dependency injection to optionally support styling while
// keeping the rendering of Results in one place.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	testMode      bool
	silent        bool

	// Thread safety for concurrent output
	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Error outputs error text with error styling (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// System outputs control or status text with system styling.
func (p *Printer) System(text string) {
	p.output(SemanticSystem, text, true)
}

// PrintResult renders one routed Result according to its kind. Signal
// sentinels must be intercepted by the caller before reaching this method;
// anything arriving here is printed literally.
func (p *Printer) PrintResult(result labtypes.Result) {
	switch result.Kind {
	case labtypes.KindSuccess:
		p.Success(result.Text)
	case labtypes.KindError:
		p.Error(result.Text)
	case labtypes.KindSystem:
		p.System(result.Text)
	default:
		p.Info(result.Text)
	}
}

// output is the core output method that handles all rendering logic.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string
	switch p.mode {
	case ModeStyled:
		finalText = p.renderStyled(semantic, text, addNewline)
	default:
		finalText = p.renderText(semantic, text, addNewline)
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

// renderText renders text in plain or auto mode.
func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	var result string

	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		result = p.styleProvider.GetStyle(semantic).Render(text)
	} else {
		// Fall back to plain text with semantic prefixes
		result = NewPlainStyleProvider().GetStyle(semantic).Render(text)
	}

	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	return result
}

// renderStyled renders text with forced styling.
func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if p.styleProvider != nil && p.styleProvider.IsAvailable() {
		result := p.styleProvider.GetStyle(semantic).Render(text)
		if addNewline && !strings.HasSuffix(result, "\n") {
			result += "\n"
		}
		return result
	}

	return p.renderText(semantic, text, addNewline)
}

// SetWriter changes the output writer. This is useful for testing or redirecting output.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}

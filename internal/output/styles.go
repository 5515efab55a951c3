package output

import "github.com/charmbracelet/lipgloss"

// lipglossTextStyle adapts a lipgloss.Style to the TextStyle interface.
type lipglossTextStyle struct {
	style lipgloss.Style
}

// Render implements TextStyle.Render.
func (s lipglossTextStyle) Render(text string) string {
	return s.style.Render(text)
}

// LipglossStyleProvider implements StyleProvider with lipgloss color styles
// for each Result kind.
type LipglossStyleProvider struct {
	styles map[SemanticType]lipgloss.Style
}

// NewLipglossStyleProvider creates the default styled provider.
func NewLipglossStyleProvider() *LipglossStyleProvider {
	return &LipglossStyleProvider{
		styles: map[SemanticType]lipgloss.Style{
			SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			SemanticSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			SemanticError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			SemanticSystem:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
	}
}

// GetStyle implements StyleProvider.GetStyle.
func (p *LipglossStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := p.styles[semantic]; ok {
		return lipglossTextStyle{style: style}
	}
	return NewPlainTextStyle("")
}

// IsAvailable implements StyleProvider.IsAvailable.
func (p *LipglossStyleProvider) IsAvailable() bool {
	return true
}

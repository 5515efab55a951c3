package output

import "github.com/charmbracelet/glamour"

// RenderMarkdown renders markdown text for terminal display using glamour.
// On any rendering failure the raw markdown is returned unchanged, so help
// output degrades to readable plain text instead of disappearing.
func RenderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return rendered
}

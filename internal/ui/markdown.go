package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders Markdown source for the terminal. Plain themes get the
// source back unchanged.
func (t Theme) Markdown(source string) (string, error) {
	if !t.Color {
		return source, nil
	}
	width := t.Width
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	rendered, err := r.Render(source)
	if err != nil {
		return "", err
	}
	// glamour pads with blank lines; keep a single trailing newline.
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

// Package ui provides terminal presentation helpers for reports.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultWidth is the rule width used when the terminal size is unknown.
const DefaultWidth = 80

// Theme decides how report text is decorated. The zero value is plain text
// with the default width, which is what tests and pipes get.
type Theme struct {
	Color bool
	Width int
}

// DetectTheme enables styling when f is a terminal and sizes rules to it.
func DetectTheme(f *os.File) Theme {
	fd := f.Fd()
	th := Theme{
		Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Width: DefaultWidth,
	}
	if th.Color {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < DefaultWidth {
			th.Width = w
		}
	}
	return th
}

// Header styles a section header.
func (t Theme) Header(s string) string {
	if !t.Color {
		return s
	}
	return headerStyle.Render(s)
}

// Term styles a glossary term.
func (t Theme) Term(s string) string {
	if !t.Color {
		return s
	}
	return termStyle.Render(s)
}

// Path styles a file path.
func (t Theme) Path(s string) string {
	if !t.Color {
		return s
	}
	return pathStyle.Render(s)
}

// Hint styles secondary text.
func (t Theme) Hint(s string) string {
	if !t.Color {
		return s
	}
	return hintStyle.Render(s)
}

// Rule returns a horizontal separator.
func (t Theme) Rule() string {
	w := t.Width
	if w <= 0 {
		w = DefaultWidth
	}
	return t.Hint(strings.Repeat("-", w))
}

// Checkbox renders a checklist box.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Status is carried by symbols, never by color, so plain output
// reads the same as styled output.
var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
	termStyle   = lipgloss.NewStyle().Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

package main

import (
	"github.com/arran4/qapdf/theme"
	"github.com/charmbracelet/lipgloss"
)

var styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a73e8")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5f6368")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f9d58")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d32f2f")),
	Path:    lipgloss.NewStyle().Underline(true),
}

// swatch renders a two-space block in c.
func swatch(c theme.RGB) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.String())).Render("  ")
}

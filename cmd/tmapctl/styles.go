package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)
)

// header renders a section title, plain when colors are off.
func header(s string) string {
	if noColor {
		return s
	}
	return headerStyle.Render(s)
}

// label renders a left-aligned field label padded to a fixed width.
func label(s string) string {
	if noColor {
		return fmt.Sprintf("%-16s", s)
	}
	return labelStyle.Render(s)
}

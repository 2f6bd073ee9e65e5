package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBox creates a box with the given content using box-drawing characters
func renderBox(title string, content string, width int) string {
	if width < 4 {
		width = 4
	}

	var b strings.Builder

	b.WriteString("╭─")
	if title != "" {
		b.WriteString(" ")
		b.WriteString(title)
		b.WriteString(" ")
		remaining := width - lipgloss.Width(title) - 6 // 6 for "╭─  ─╮"
		if remaining > 0 {
			b.WriteString(strings.Repeat("─", remaining))
		}
	} else {
		b.WriteString(strings.Repeat("─", width-4))
	}
	b.WriteString("─╮\n")

	for _, line := range strings.Split(content, "\n") {
		b.WriteString("│ ")
		b.WriteString(line)
		padding := width - lipgloss.Width(line) - 4 // 4 for "│  │"
		if padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(" │\n")
	}

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", width-2))
	b.WriteString("╯")

	return b.String()
}

// truncate shortens s to at most width runes, marking the cut with "…".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

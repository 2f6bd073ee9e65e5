package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/steviee/go-mc-profiles/internal/profiles"
)

const (
	idWidth      = 12
	versionWidth = 28
	usedWidth    = 16
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Profile browser closed.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.loading && len(m.profiles) == 0 {
		b.WriteString("\nLoading profiles...\n")
	} else if len(m.profiles) == 0 {
		b.WriteString("\nNo profiles found.\n")
	} else {
		b.WriteString(m.renderTable())
		if m.showDetail {
			if p, ok := m.Selected(); ok {
				b.WriteString("\n")
				b.WriteString(renderDetail(p, m.totalWidth()))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.notice != "" && m.err == nil {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	if m.err != nil && time.Since(m.errorTime) < errorDisplayTime {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

func (m Model) totalWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

// renderHeader renders the browser header
func (m Model) renderHeader() string {
	title := "Launcher Profiles"
	if m.title != "" {
		title += " · " + m.title
	}
	lastUpdate := fmt.Sprintf("Loaded: %s", m.lastUpdate.Format("15:04:05"))

	totalWidth := m.totalWidth()
	spacing := totalWidth - len([]rune(title)) - len(lastUpdate) - 4
	if spacing < 1 {
		spacing = 1
	}

	var b strings.Builder
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╮\n")

	headerText := fmt.Sprintf(" %s%s%s ", title, strings.Repeat(" ", spacing), lastUpdate)
	b.WriteString("│")
	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("│\n")

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╯")

	return b.String()
}

// renderTable renders the profile list
func (m Model) renderTable() string {
	var b strings.Builder

	nameWidth := 16
	for _, p := range m.profiles {
		if n := len([]rune(p.Name)); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > 32 {
		nameWidth = 32
	}

	headerRow := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s",
		nameWidth+2, "NAME",
		idWidth, "ID",
		versionWidth, "VERSION",
		usedWidth, "LAST USED",
	)
	b.WriteString(tableHeaderStyle.Render(headerRow))
	b.WriteString("\n")

	for i, p := range m.profiles {
		name := fmt.Sprintf("%s %-*s", getProfileIndicator(p), nameWidth, truncate(displayName(p), nameWidth))
		rest := fmt.Sprintf("  %-*s  %-*s  %-*s",
			idWidth, truncate(p.ID, idWidth),
			versionWidth, truncate(orDash(p.LastVersionID), versionWidth),
			usedWidth, formatLastUsed(p),
		)

		if i == m.selectedIdx {
			b.WriteString(selectedRowStyle.Render("> " + name + rest))
		} else {
			b.WriteString("  " + getProfileStyle(p).Render(name) + rest)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderDetail renders every field of one profile in a box
func renderDetail(p profiles.Profile, width int) string {
	javaDir := "(launcher default)"
	if p.JavaDir != nil {
		javaDir = *p.JavaDir
	}

	lines := []string{
		fmt.Sprintf("ID:        %s", p.ID),
		fmt.Sprintf("Name:      %s", orDash(p.Name)),
		fmt.Sprintf("Type:      %s", orDash(p.Type)),
		fmt.Sprintf("Icon:      %s", truncate(orDash(p.Icon), width-15)),
		fmt.Sprintf("Version:   %s", orDash(p.LastVersionID)),
		fmt.Sprintf("Game dir:  %s", orDash(p.GameDir)),
		fmt.Sprintf("Java:      %s", javaDir),
		fmt.Sprintf("Created:   %s", orDash(p.Created)),
		fmt.Sprintf("Last used: %s", orDash(p.LastUsed)),
	}

	return renderBox(displayName(p), strings.Join(lines, "\n"), width)
}

// renderFooter renders the key help
func (m Model) renderFooter() string {
	return footerStyle.Render("[↑/↓] navigate  [enter] details  [f]orge patch  [r]eload  [q]uit")
}

func displayName(p profiles.Profile) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

func formatLastUsed(p profiles.Profile) string {
	t, ok := p.LastUsedTime()
	if !ok {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profilesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.errorTime = time.Now()
			slog.Error("failed to load profiles", "error", msg.err)
			return m, clearErrorCmd()
		}

		m.profiles = msg.profiles
		m.lastUpdate = time.Now()

		if len(m.profiles) == 0 {
			m.selectedIdx = 0
			m.showDetail = false
		} else if m.selectedIdx >= len(m.profiles) {
			m.selectedIdx = len(m.profiles) - 1
		}

		return m, nil

	case actionMsg:
		m.busy = false
		if msg.err != nil {
			m.err = fmt.Errorf("%s failed: %w", msg.action, msg.err)
			m.errorTime = time.Now()
			slog.Error("profile action failed", "action", msg.action, "error", msg.err)
			return m, clearErrorCmd()
		}

		slog.Info("profile action succeeded", "action", msg.action)
		m.notice = msg.action + " done"
		m.loading = true
		return m, loadProfilesCmd(m.source)

	case clearErrorMsg:
		if time.Since(m.errorTime) >= errorDisplayTime {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "r", "f":
		// One source call in flight at a time
		if m.loading || m.busy {
			return m, nil
		}
		m.notice = ""
		if msg.String() == "f" {
			m.busy = true
			return m, patchForgeCmd(m.source)
		}
		m.loading = true
		return m, loadProfilesCmd(m.source)
	}

	if len(m.profiles) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case "down", "j":
		if m.selectedIdx < len(m.profiles)-1 {
			m.selectedIdx++
		}

	case "enter":
		m.showDetail = !m.showDetail
	}

	return m, nil
}

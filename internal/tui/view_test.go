package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/stretchr/testify/assert"
)

func TestView_Loading(t *testing.T) {
	model := NewModel("/mc/launcher_profiles.json", &mockSource{})

	view := model.View()

	assert.Contains(t, view, "Launcher Profiles")
	assert.Contains(t, view, "/mc/launcher_profiles.json")
	assert.Contains(t, view, "Loading profiles")
}

func TestView_NoProfiles(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false

	view := model.View()

	assert.Contains(t, view, "No profiles found")
}

func TestView_WithProfiles(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false
	model.profiles = testProfiles()

	view := model.View()

	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "LAST USED")
	assert.Contains(t, view, "Adakite 58")
	assert.Contains(t, view, "1.14.4-forge-28.1.106")
	assert.Contains(t, view, "> ", "selected row is marked")
	assert.Contains(t, view, "noname", "unnamed profile falls back to ID")
	assert.NotContains(t, view, "Game dir:")
}

func TestView_Detail(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false
	model.profiles = testProfiles()
	model.showDetail = true

	view := model.View()

	assert.Contains(t, view, "Game dir:  /games/adakite")
	assert.Contains(t, view, "Java:      /usr/bin/java")
	assert.Contains(t, view, "Created:   2019-12-12T03:11:18.000Z")

	model.selectedIdx = 2
	view = model.View()
	assert.Contains(t, view, "Java:      (launcher default)")
	assert.Contains(t, view, "Name:      -")
}

func TestView_Error(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false
	model.err = errors.New("something broke")
	model.errorTime = time.Now()

	view := model.View()
	assert.Contains(t, view, "Error: something broke")

	model.errorTime = time.Now().Add(-time.Minute)
	view = model.View()
	assert.NotContains(t, view, "something broke")
}

func TestView_Notice(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false
	model.notice = "patch forge done"

	assert.Contains(t, model.View(), "patch forge done")
}

func TestView_Quitting(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.quitting = true

	assert.Equal(t, "Profile browser closed.\n", model.View())
}

func TestView_Footer(t *testing.T) {
	model := NewModel("", &mockSource{})

	footer := model.renderFooter()
	for _, key := range []string{"navigate", "details", "[f]orge patch", "[r]eload", "[q]uit"} {
		assert.Contains(t, footer, key)
	}
}

func TestRenderBox(t *testing.T) {
	box := renderBox("Title", "line one\nline two", 30)
	lines := strings.Split(box, "\n")

	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Title "))
	assert.Contains(t, lines[1], "line one")
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "a", truncate("abc", 1))
}

func TestGetProfileIndicator(t *testing.T) {
	assert.Equal(t, "⚒", getProfileIndicator(profiles.Profile{ID: profiles.ForgeProfileID}))
	assert.Equal(t, "●", getProfileIndicator(profiles.Profile{ID: "x", Type: profiles.CustomProfileType}))
	assert.Equal(t, "○", getProfileIndicator(profiles.Profile{ID: "x"}))
}

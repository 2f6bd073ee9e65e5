package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestHandleKeyPress_NoProfiles(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.loading = false

	for _, key := range []string{"down", "j", "up", "k", "enter"} {
		updated, cmd := model.handleKeyPress(keyMsg(key))
		m := updated.(Model)

		assert.Equal(t, 0, m.selectedIdx, key)
		assert.False(t, m.showDetail, key)
		assert.Nil(t, cmd, key)
	}
}

func TestHandleKeyPress_Navigation(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		keys    []string
		wantIdx int
	}{
		{name: "down moves", start: 0, keys: []string{"down"}, wantIdx: 1},
		{name: "j moves", start: 0, keys: []string{"j", "j"}, wantIdx: 2},
		{name: "down stops at end", start: 2, keys: []string{"down", "j"}, wantIdx: 2},
		{name: "up moves", start: 2, keys: []string{"up"}, wantIdx: 1},
		{name: "k stops at top", start: 0, keys: []string{"k", "up"}, wantIdx: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel("", &mockSource{})
			model.profiles = testProfiles()
			model.selectedIdx = tt.start

			var current tea.Model = *model
			for _, key := range tt.keys {
				current, _ = current.(Model).handleKeyPress(keyMsg(key))
			}

			assert.Equal(t, tt.wantIdx, current.(Model).selectedIdx)
		})
	}
}

func TestHandleKeyPress_EnterTogglesDetail(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.profiles = testProfiles()

	updated, _ := model.handleKeyPress(keyMsg("enter"))
	m := updated.(Model)
	assert.True(t, m.showDetail)

	updated, _ = m.handleKeyPress(keyMsg("enter"))
	assert.False(t, updated.(Model).showDetail)
}

func TestHandleKeyPress_Quit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		model := NewModel("", &mockSource{})

		updated, cmd := model.handleKeyPress(keyMsg(key))
		m := updated.(Model)

		assert.True(t, m.quitting, key)
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestHandleKeyPress_Reload(t *testing.T) {
	source := &mockSource{}
	source.On("Load").Return(testProfiles()[:1], nil)

	model := NewModel("", source)
	model.loading = false
	model.notice = "patch forge done"

	updated, cmd := model.handleKeyPress(keyMsg("r"))
	m := updated.(Model)

	assert.True(t, m.loading)
	assert.Empty(t, m.notice)
	require.NotNil(t, cmd)

	loaded, ok := cmd().(profilesLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.profiles, 1)
	source.AssertExpectations(t)
}

func TestHandleKeyPress_PatchForge(t *testing.T) {
	source := &mockSource{}
	source.On("PatchForge").Return(nil)

	model := NewModel("", source)
	model.loading = false

	updated, cmd := model.handleKeyPress(keyMsg("f"))
	assert.True(t, updated.(Model).busy)
	require.NotNil(t, cmd)

	action, ok := cmd().(actionMsg)
	require.True(t, ok)
	assert.NoError(t, action.err)
	source.AssertExpectations(t)
}

func TestHandleKeyPress_IgnoresActionsWhileInFlight(t *testing.T) {
	tests := []struct {
		name    string
		loading bool
		busy    bool
		key     string
	}{
		{name: "reload while loading", loading: true, key: "r"},
		{name: "patch while loading", loading: true, key: "f"},
		{name: "reload while patching", busy: true, key: "r"},
		{name: "patch while patching", busy: true, key: "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &mockSource{}
			model := NewModel("", source)
			model.loading = tt.loading
			model.busy = tt.busy
			model.notice = "patch forge done"

			updated, cmd := model.handleKeyPress(keyMsg(tt.key))
			m := updated.(Model)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.loading, m.loading)
			assert.Equal(t, tt.busy, m.busy)
			assert.Equal(t, "patch forge done", m.notice)
			source.AssertNotCalled(t, "Load")
			source.AssertNotCalled(t, "PatchForge")
		})
	}
}

func TestModelUpdate_ProfilesLoaded(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.selectedIdx = 5

	updated, cmd := model.Update(profilesLoadedMsg{profiles: testProfiles()})
	m := updated.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Len(t, m.profiles, 3)
	assert.Equal(t, 2, m.selectedIdx)
}

func TestModelUpdate_ProfilesLoaded_Empty(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.profiles = testProfiles()
	model.selectedIdx = 2
	model.showDetail = true

	updated, _ := model.Update(profilesLoadedMsg{profiles: nil})
	m := updated.(Model)

	assert.Equal(t, 0, m.selectedIdx)
	assert.False(t, m.showDetail)
}

func TestModelUpdate_ProfilesLoaded_Error(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.profiles = testProfiles()

	updated, cmd := model.Update(profilesLoadedMsg{err: errors.New("parse failed")})
	m := updated.(Model)

	assert.False(t, m.loading)
	assert.Error(t, m.err)
	assert.Len(t, m.profiles, 3, "previous list is kept")
	assert.NotNil(t, cmd)
}

func TestModelUpdate_Action_Success(t *testing.T) {
	source := &mockSource{}
	model := NewModel("", source)
	model.loading = false
	model.busy = true

	updated, cmd := model.Update(actionMsg{action: "patch forge"})
	m := updated.(Model)

	assert.False(t, m.busy)
	assert.Nil(t, m.err)
	assert.True(t, m.loading)
	assert.Equal(t, "patch forge done", m.notice)
	assert.NotNil(t, cmd)
}

func TestModelUpdate_Action_Error(t *testing.T) {
	model := NewModel("", &mockSource{})
	model.busy = true

	updated, cmd := model.Update(actionMsg{action: "patch forge", err: errors.New("no forge profile")})
	m := updated.(Model)

	assert.False(t, m.busy)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "patch forge failed")
	assert.Empty(t, m.notice)
	assert.NotNil(t, cmd)
}

func TestModelUpdate_ClearError(t *testing.T) {
	model := NewModel("", &mockSource{})

	model.err = errors.New("recent")
	model.errorTime = time.Now()
	updated, _ := model.Update(clearErrorMsg{})
	assert.Error(t, updated.(Model).err)

	model.errorTime = time.Now().Add(-errorDisplayTime - time.Second)
	updated, _ = model.Update(clearErrorMsg{})
	assert.NoError(t, updated.(Model).err)
}

func TestModelUpdate_WindowSize(t *testing.T) {
	model := NewModel("", &mockSource{})

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

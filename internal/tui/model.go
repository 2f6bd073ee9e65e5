package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/go-mc-profiles/internal/profiles"
)

// Source supplies profiles to the browser and applies its actions.
// Calls are issued from command goroutines.
type Source interface {
	// Load re-reads the profiles file and returns its profiles.
	Load() ([]profiles.Profile, error)

	// PatchForge stamps the forge profile's lastUsed time.
	PatchForge() error
}

// Model is the bubbletea model for the profile browser
type Model struct {
	title       string
	profiles    []profiles.Profile
	selectedIdx int
	showDetail  bool
	lastUpdate  time.Time
	err         error
	errorTime   time.Time
	notice      string
	loading     bool
	busy        bool
	width       int
	height      int
	source      Source
	quitting    bool
}

// NewModel creates a new browser model. title is shown in the header,
// usually the path of the profiles file.
func NewModel(title string, source Source) *Model {
	return &Model{
		title:       title,
		profiles:    []profiles.Profile{},
		selectedIdx: 0,
		lastUpdate:  time.Now(),
		loading:     true,
		source:      source,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return loadProfilesCmd(m.source)
}

// Selected returns the highlighted profile.
func (m Model) Selected() (profiles.Profile, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.profiles) {
		return profiles.Profile{}, false
	}
	return m.profiles[m.selectedIdx], true
}

// loadProfilesCmd returns a command that loads the profile list
func loadProfilesCmd(source Source) tea.Cmd {
	return func() tea.Msg {
		list, err := source.Load()
		return profilesLoadedMsg{
			profiles: list,
			err:      err,
		}
	}
}

// patchForgeCmd returns a command that patches the forge profile
func patchForgeCmd(source Source) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{
			action: "patch forge",
			err:    source.PatchForge(),
		}
	}
}

// clearErrorCmd returns a command that clears the error message after a delay
func clearErrorCmd() tea.Cmd {
	return tea.Tick(errorDisplayTime, func(t time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

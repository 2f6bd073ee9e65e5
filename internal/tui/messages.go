package tui

import (
	"time"

	"github.com/steviee/go-mc-profiles/internal/profiles"
)

const errorDisplayTime = 3 * time.Second

// profilesLoadedMsg is sent when the profile list is loaded
type profilesLoadedMsg struct {
	profiles []profiles.Profile
	err      error
}

// actionMsg is sent when an action on the file completes
type actionMsg struct {
	action string
	err    error
}

// clearErrorMsg is sent to clear the error message
type clearErrorMsg struct{}

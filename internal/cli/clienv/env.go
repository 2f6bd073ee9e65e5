// Package clienv carries the settings resolved by the root command down to
// the command groups, and holds the output helpers they share.
package clienv

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/afero"
	"github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/steviee/go-mc-profiles/internal/state"
)

var (
	// ErrInvalidInput is returned when a flag or argument fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileNotFound is returned when a command names a profile that does not exist.
	ErrProfileNotFound = errors.New("profile not found")
)

// Env is filled by the root command before any subcommand runs.
type Env struct {
	// Config is the loaded user configuration.
	Config *state.Config

	// ConfigFile is the config file in use, empty if none was found.
	ConfigFile string

	// ProfilesFile is the resolved launcher_profiles.json path.
	ProfilesFile string

	JSON  bool
	Quiet bool

	Logger *slog.Logger
	Fs     afero.Fs

	// Now overrides the editor clock. Nil means time.Now.
	Now func() time.Time
}

// EditorConfig builds the profiles editor configuration for this environment.
func (e *Env) EditorConfig() *profiles.Config {
	cfg := profiles.DefaultConfig()

	if e.Fs != nil {
		cfg.Fs = e.Fs
	}
	if e.Config != nil {
		cfg.RemoveBeforeCopy = e.Config.Launcher.RemoveBeforeCopy
	}
	if e.Now != nil {
		cfg.Now = e.Now
	}
	if e.Logger != nil {
		cfg.Logger = e.Logger
	}

	return cfg
}

// OpenEditor opens the launcher profiles file.
func (e *Env) OpenEditor() (*profiles.Editor, error) {
	e.Log().Debug("opening launcher profiles", "path", e.ProfilesFile)
	return profiles.Create(e.ProfilesFile, e.EditorConfig())
}

// Defaults returns the configured defaults for new profiles.
func (e *Env) Defaults() state.DefaultsConfig {
	if e.Config == nil {
		return state.DefaultConfig().Defaults
	}
	return e.Config.Defaults
}

// Log returns the configured logger or the default one.
func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Package profiles reads and edits the Minecraft launcher's launcher_profiles.json.
//
// All access goes through an Editor bound to one file. The editor re-reads the
// file before every mutation and writes changes back with a backup-then-replace
// protocol: the previous file is kept as backup_<name> and the new content is
// written to new_<name> before it is copied over the original.
package profiles

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"github.com/steviee/go-mc-profiles/internal/randname"
)

// maxUniqueAttempts bounds regeneration in NewUniqueID and NewUniqueName.
const maxUniqueAttempts = 1000

// Config holds editor configuration. Zero fields are filled with defaults.
type Config struct {
	// Fs is the filesystem backend. Defaults to the OS filesystem.
	Fs afero.Fs

	// RemoveBeforeCopy deletes the destination before each copy in the
	// write protocol. DefaultConfig enables it on Windows.
	RemoveBeforeCopy bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID and NewName generate candidate profile IDs and names.
	NewID   func() string
	NewName func() string

	// Logger receives debug output for each protocol step. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config for the current platform.
func DefaultConfig() *Config {
	return &Config{
		Fs:               afero.NewOsFs(),
		RemoveBeforeCopy: runtime.GOOS == "windows",
		Now:              time.Now,
		NewID:            randname.NewID,
		NewName:          randname.NewName,
		Logger:           slog.Default(),
	}
}

// Editor edits a single launcher profiles file.
// It is not safe for concurrent use.
type Editor struct {
	path             string
	fs               afero.Fs
	removeBeforeCopy bool
	now              func() time.Time
	newID            func() string
	newName          func() string
	logger           *slog.Logger

	doc document
}

// NewProfile describes a profile to add with WriteProfile.
type NewProfile struct {
	ID      string
	Name    string
	Icon    string
	Version string
	GameDir string
	// JavaDir is written as null when nil.
	JavaDir *string
}

// Create returns an editor bound to path and loads the file.
// It returns an error (and no editor) if the initial Refresh fails.
func Create(path string, cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	e := &Editor{
		path:             path,
		fs:               cfg.Fs,
		removeBeforeCopy: cfg.RemoveBeforeCopy,
		now:              cfg.Now,
		newID:            cfg.NewID,
		newName:          cfg.NewName,
		logger:           cfg.Logger,
		doc:              document{},
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = randname.NewID
	}
	if e.newName == nil {
		e.newName = randname.NewName
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	if err := e.Refresh(); err != nil {
		return nil, err
	}

	return e, nil
}

// Path returns the profiles file this editor is bound to.
func (e *Editor) Path() string {
	return e.path
}

// BackupPath returns the path of the backup copy written before each mutation.
func (e *Editor) BackupPath() string {
	return prefixedPath(e.path, backupPrefix)
}

// Refresh re-reads the profiles file, discarding the in-memory document.
func (e *Editor) Refresh() error {
	if _, err := e.fs.Stat(e.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNonexistent, e.path)
		}
		return fmt.Errorf("%w: %w", ErrNonexistent, err)
	}

	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseFailed, e.path, err)
	}

	e.doc = doc
	e.logger.Debug("loaded launcher profiles", "path", e.path, "profiles", len(doc.profiles()))

	return nil
}

// HasProfileWithID reports whether a profile with exactly this ID exists.
func (e *Editor) HasProfileWithID(id string) bool {
	_, ok := e.doc.profiles()[id]
	return ok
}

// HasProfileWithName reports whether any profile has a string name equal to name.
// Entries without a name, or with a non-string name, never match.
func (e *Editor) HasProfileWithName(name string) bool {
	for _, raw := range e.doc.profiles() {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if n, ok := entry["name"].(string); ok && n == name {
			return true
		}
	}
	return false
}

// NewUniqueID returns a generated ID not used by any profile.
// After maxUniqueAttempts collisions the last candidate is returned as is.
func (e *Editor) NewUniqueID() string {
	id := e.newID()
	for i := 0; e.HasProfileWithID(id) && i < maxUniqueAttempts; i++ {
		id = e.newID()
	}
	return id
}

// NewUniqueName returns a generated name not used by any profile.
// After maxUniqueAttempts collisions the last candidate is returned as is.
func (e *Editor) NewUniqueName() string {
	name := e.newName()
	for i := 0; e.HasProfileWithName(name) && i < maxUniqueAttempts; i++ {
		name = e.newName()
	}
	return name
}

// Profiles returns every object-valued profile entry, sorted by ID.
func (e *Editor) Profiles() []Profile {
	return e.doc.profileList()
}

// Profile returns the profile with the given ID.
func (e *Editor) Profile(id string) (Profile, bool) {
	entry, ok := e.doc.profiles()[id].(map[string]any)
	if !ok {
		return Profile{}, false
	}
	return profileFromEntry(id, entry), true
}

// PatchForgeProfile stamps the forge profile's lastUsed with the current time
// minus one second and writes the file. The Forge installer creates the
// profile without a lastUsed value.
func (e *Editor) PatchForgeProfile() error {
	if err := e.Refresh(); err != nil {
		return err
	}

	forge, ok := e.doc.profiles()[ForgeProfileID].(map[string]any)
	if !ok {
		return ErrNoForgeProfile
	}

	patched := copyEntry(forge)
	patched["lastUsed"] = formatTimestamp(e.now().Add(-time.Second))

	return e.commit(e.doc.withProfile(ForgeProfileID, patched))
}

// WriteProfile adds a custom profile and writes the file.
// It fails with ErrIDUsed or ErrNameUsed if either is already taken.
func (e *Editor) WriteProfile(p NewProfile) error {
	if err := e.Refresh(); err != nil {
		return err
	}
	if e.HasProfileWithID(p.ID) {
		return fmt.Errorf("%w: %q", ErrIDUsed, p.ID)
	}
	if e.HasProfileWithName(p.Name) {
		return fmt.Errorf("%w: %q", ErrNameUsed, p.Name)
	}

	var javaDir any
	if p.JavaDir != nil {
		javaDir = *p.JavaDir
	}

	now := formatTimestamp(e.now())
	entry := map[string]any{
		"created":       now,
		"gameDir":       p.GameDir,
		"icon":          p.Icon,
		"javaDir":       javaDir,
		"lastUsed":      now,
		"lastVersionId": p.Version,
		"name":          p.Name,
		"type":          CustomProfileType,
	}

	return e.commit(e.doc.withProfile(p.ID, entry))
}

// RestoreBackup writes the contents of the backup file back over the profiles
// file. The current file becomes the new backup, so a second call undoes the first.
func (e *Editor) RestoreBackup() error {
	if err := e.Refresh(); err != nil {
		return err
	}

	backupPath := e.BackupPath()
	data, err := afero.ReadFile(e.fs, backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrBackupMissing, backupPath)
		}
		return fmt.Errorf("%w: %w", ErrBackupMissing, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseFailed, backupPath, err)
	}

	return e.commit(doc)
}

// commit writes doc and, once it is on disk, makes it the in-memory document.
func (e *Editor) commit(doc document) error {
	if err := e.writeDocument(doc); err != nil {
		e.logger.Debug("failed to write launcher profiles", "path", e.path, "error", err)
		return err
	}
	e.doc = doc
	return nil
}

package profiles

import (
	"errors"
)

// Sentinel errors for launcher profiles operations.
var (
	// ErrNonexistent is returned when the launcher profiles file does not exist.
	ErrNonexistent = errors.New("launcher profiles file does not exist")

	// ErrParseFailed is returned when the file is not a valid profiles document.
	ErrParseFailed = errors.New("failed to parse launcher profiles")

	// ErrNoForgeProfile is returned when profiles.forge is missing or not an object.
	ErrNoForgeProfile = errors.New("no forge profile in launcher profiles")

	// ErrIDUsed is returned when a profile with the requested ID already exists.
	ErrIDUsed = errors.New("profile ID already in use")

	// ErrNameUsed is returned when a profile with the requested name already exists.
	ErrNameUsed = errors.New("profile name already in use")

	// ErrNotWritable is returned when the profiles file cannot be opened for writing.
	ErrNotWritable = errors.New("launcher profiles file is not writable")

	// ErrBackupFailed is returned when the backup copy could not be made.
	ErrBackupFailed = errors.New("failed to back up launcher profiles")

	// ErrWriteFailed is returned when the new document could not be written.
	ErrWriteFailed = errors.New("failed to write launcher profiles")

	// ErrBackupMissing is returned by RestoreBackup when there is no backup to restore.
	ErrBackupMissing = errors.New("launcher profiles backup does not exist")
)

// CodeUnknown is reported by Code for errors that did not come from this package.
const CodeUnknown = "UNKNOWN"

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNonexistent, "LAUNCHER_PROFILES_NONEXISTENT"},
	{ErrParseFailed, "LAUNCHER_PROFILES_PARSE_FAILED"},
	{ErrNoForgeProfile, "LAUNCHER_PROFILES_NO_FORGE_PROFILE"},
	{ErrIDUsed, "LAUNCHER_PROFILES_ID_USED"},
	{ErrNameUsed, "LAUNCHER_PROFILES_NAME_USED"},
	{ErrNotWritable, "LAUNCHER_PROFILES_NOT_WRITABLE"},
	{ErrBackupFailed, "LAUNCHER_PROFILES_BACKUP_FAILED"},
	{ErrWriteFailed, "LAUNCHER_PROFILES_WRITE_FAILED"},
	{ErrBackupMissing, "LAUNCHER_PROFILES_BACKUP_MISSING"},
}

// Code returns the stable error code for err, such as "LAUNCHER_PROFILES_ID_USED".
// It returns "" for a nil error and CodeUnknown for errors not produced by this package.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeUnknown
}

package state

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// profileIDRegex allows launcher-style IDs: letters, digits, dash, underscore and dot
	profileIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// ValidateProfileID validates a launcher profile ID.
// Rules:
// - Must be 1-64 characters long
// - Must contain only letters, digits, '.', '-' and '_'
func ValidateProfileID(id string) error {
	if id == "" {
		return fmt.Errorf("profile ID cannot be empty")
	}

	if len(id) > 64 {
		return fmt.Errorf("profile ID must be 64 characters or less, got %d", len(id))
	}

	if !profileIDRegex.MatchString(id) {
		return fmt.Errorf("profile ID must contain only letters, digits, '.', '-' and '_': %q", id)
	}

	return nil
}

// ValidateProfileName validates a profile display name.
func ValidateProfileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if len(name) > 128 {
		return fmt.Errorf("profile name must be 128 characters or less, got %d", len(name))
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("profile name cannot contain control characters: %q", name)
		}
	}

	return nil
}

// ValidateIcon validates a profile icon. The launcher accepts either a
// built-in block name ("TNT", "Furnace") or a data:image URI.
func ValidateIcon(icon string) error {
	if icon == "" {
		return fmt.Errorf("icon cannot be empty")
	}

	if strings.HasPrefix(icon, "data:") {
		return nil
	}

	for _, r := range icon {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return fmt.Errorf("icon must be a block name or data URI: %q", icon)
		}
	}

	return nil
}

// ValidateVersion validates a launcher version ID.
// This is a basic check that the version is not empty.
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	if strings.ContainsAny(version, " \t\n") {
		return fmt.Errorf("version cannot contain whitespace: %q", version)
	}

	return nil
}

// ValidatePath validates a file path.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path cannot contain NUL bytes: %q", path)
	}

	return nil
}

// ValidateLogLevel validates a logging level name.
func ValidateLogLevel(level string) error {
	for _, l := range validLogLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", level)
}

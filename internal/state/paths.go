package state

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// ConfigDirName is the directory name for go-mc-profiles configuration
	ConfigDirName = "go-mc-profiles"

	// File names
	ConfigFileName           = "config.yaml"
	LauncherProfilesFileName = "launcher_profiles.json"
)

// GetConfigDir returns the path to the go-mc-profiles configuration directory.
// It honours XDG_CONFIG_HOME and defaults to ~/.config/go-mc-profiles/.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the path to the main configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// GetMinecraftDir returns the default .minecraft directory used by the
// official launcher on this platform.
func GetMinecraftDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return minecraftDir(runtime.GOOS, homeDir, os.Getenv("APPDATA")), nil
}

func minecraftDir(goos, homeDir, appData string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, ".minecraft")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(homeDir, ".minecraft")
	}
}

// GetLauncherProfilesPath returns the default path of launcher_profiles.json.
func GetLauncherProfilesPath() (string, error) {
	minecraftDir, err := GetMinecraftDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(minecraftDir, LauncherProfilesFileName), nil
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}

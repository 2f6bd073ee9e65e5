package state

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the user configuration for go-mc-profiles.
type Config struct {
	Launcher LauncherConfig `yaml:"launcher" json:"launcher" mapstructure:"launcher"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults" mapstructure:"defaults"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// LauncherConfig holds settings for the launcher profiles file.
type LauncherConfig struct {
	// ProfilesFile overrides the platform default launcher_profiles.json path.
	ProfilesFile string `yaml:"profiles_file" json:"profiles_file" mapstructure:"profiles_file"`

	// RemoveBeforeCopy deletes backup and target files before overwriting
	// them, for filesystems where copy-over-existing is unreliable.
	RemoveBeforeCopy bool `yaml:"remove_before_copy" json:"remove_before_copy" mapstructure:"remove_before_copy"`
}

// DefaultsConfig holds default values for new profiles.
type DefaultsConfig struct {
	Icon    string `yaml:"icon" json:"icon" mapstructure:"icon"`
	JavaDir string `yaml:"java_dir" json:"java_dir" mapstructure:"java_dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Launcher: LauncherConfig{
			ProfilesFile:     "",
			RemoveBeforeCopy: runtime.GOOS == "windows",
		},
		Defaults: DefaultsConfig{
			Icon:    "Furnace",
			JavaDir: "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ProfilesFile returns the configured launcher profiles path, falling back
// to the platform default.
func (c *Config) ProfilesFile() (string, error) {
	if c.Launcher.ProfilesFile != "" {
		return c.Launcher.ProfilesFile, nil
	}
	return GetLauncherProfilesPath()
}

// LoadConfig loads the configuration from the config file.
// If the file doesn't exist, it creates a new one with defaults.
// If the file is corrupted, it backs up the corrupted file and creates a fresh one.
func LoadConfig(ctx context.Context) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		backupPath := configPath + ".corrupted"
		if backupErr := os.Rename(configPath, backupPath); backupErr != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to create backup: %w (original error: %v)", backupErr, err)
		}

		cfg := DefaultConfig()
		if saveErr := SaveConfig(ctx, cfg); saveErr != nil {
			return nil, fmt.Errorf("config file was corrupted (backed up to %s), failed to save fresh config: %w (original error: %v)", backupPath, saveErr, err)
		}

		return cfg, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the config file using atomic writes.
func SaveConfig(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := AtomicWrite(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.Launcher.ProfilesFile != "" {
		if err := ValidatePath(cfg.Launcher.ProfilesFile); err != nil {
			return fmt.Errorf("invalid launcher profiles file: %w", err)
		}
	}

	if err := ValidateIcon(cfg.Defaults.Icon); err != nil {
		return fmt.Errorf("invalid default icon: %w", err)
	}

	if cfg.Defaults.JavaDir != "" {
		if err := ValidatePath(cfg.Defaults.JavaDir); err != nil {
			return fmt.Errorf("invalid default java dir: %w", err)
		}
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	"github.com/steviee/go-mc-profiles/internal/cli/config"
	"github.com/steviee/go-mc-profiles/internal/cli/profiles"
	"github.com/steviee/go-mc-profiles/internal/state"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "GOMCP"

var (
	// Global flags
	cfgFile      string
	profilesFile string
	jsonOut      bool
	quiet        bool
	verbose      bool

	// Global logger
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	env := &clienv.Env{}

	rootCmd := &cobra.Command{
		Use:   "go-mc-profiles",
		Short: "Edit Minecraft launcher profiles",
		Long: `go-mc-profiles edits the Minecraft launcher's launcher_profiles.json.

It is meant for modpack installers and for people who prefer a terminal:
  - List and inspect launcher profiles
  - Add custom profiles with their own game directory and Java
  - Fix the forge profile left behind by the Forge installer
  - Restore the previous file from its automatic backup

Every change keeps a backup next to the original file, and fields the tool
does not know about are left untouched.`,
		Example: `  # List profiles
  go-mc-profiles profiles list

  # Add a profile
  go-mc-profiles profiles add --version 1.14.4-forge-28.1.106 --game-dir ~/packs/adakite

  # Work on a copy of the file
  go-mc-profiles --file ./launcher_profiles.json profiles list

  # Browse profiles interactively
  go-mc-profiles profiles browse`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if err := initConfig(cmd.Context(), env); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/go-mc-profiles/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profilesFile, "file", "", "launcher_profiles.json to edit (default: the launcher's own)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(profiles.NewCommand(env))
	rootCmd.AddCommand(config.NewCommand(env))

	return rootCmd
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	switch {
	case quiet:
		logLevel.Set(slog.LevelError)
	case verbose:
		logLevel.Set(slog.LevelDebug)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// initConfig reads the config file and GOMCP_ environment variables into env.
func initConfig(ctx context.Context, env *clienv.Env) error {
	v := viper.New()

	defaults := state.DefaultConfig()
	v.SetDefault("launcher.profiles_file", defaults.Launcher.ProfilesFile)
	v.SetDefault("launcher.remove_before_copy", defaults.Launcher.RemoveBeforeCopy)
	v.SetDefault("defaults.icon", defaults.Defaults.Icon)
	v.SetDefault("defaults.java_dir", defaults.Defaults.JavaDir)
	v.SetDefault("logging.level", defaults.Logging.Level)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(configDir)
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfig(ctx, v); err != nil {
		return err
	}

	cfg := &state.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if profilesFile != "" {
		cfg.Launcher.ProfilesFile = profilesFile
	}
	if err := state.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if !quiet && !verbose {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err == nil {
			logLevel.Set(level)
		}
	}

	path, err := cfg.ProfilesFile()
	if err != nil {
		return fmt.Errorf("resolve launcher profiles path: %w", err)
	}

	env.Config = cfg
	env.ConfigFile = v.ConfigFileUsed()
	env.ProfilesFile = path
	env.JSON = jsonOut
	env.Quiet = quiet
	env.Logger = logger
	if env.Fs == nil {
		env.Fs = afero.NewOsFs()
	}

	return nil
}

// readConfig reads the config file into v. A missing file leaves the
// defaults. A default config file that cannot be parsed is moved aside to
// config.yaml.corrupted and replaced with defaults; an explicit --config
// file is never touched.
func readConfig(ctx context.Context, v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if cfgFile != "" {
		return fmt.Errorf("read config file: %w", err)
	}

	if _, loadErr := state.LoadConfig(ctx); loadErr != nil {
		logger.Debug("config recovery failed", "error", loadErr)
		return fmt.Errorf("read config file: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	logger.Warn("config file was corrupted, replaced it with defaults",
		"path", v.ConfigFileUsed(),
		"backup", v.ConfigFileUsed()+".corrupted",
	)
	return nil
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

package config

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	"github.com/steviee/go-mc-profiles/internal/state"
)

// NewInitCommand creates the config init command.
func NewInitCommand(env *clienv.Env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write ~/.config/go-mc-profiles/config.yaml with default values.

An existing file is left alone unless --force is given.`,
		Example: `  # Create the config file
  go-mc-profiles config init

  # Overwrite an existing file
  go-mc-profiles config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), env, cmd.OutOrStdout(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(ctx context.Context, env *clienv.Env, w io.Writer, force bool) error {
	configPath, err := state.GetConfigPath()
	if err != nil {
		return env.OutputError(w, err)
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		return env.OutputError(w, fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath))
	}

	if err := state.SaveConfig(ctx, state.DefaultConfig()); err != nil {
		return env.OutputError(w, err)
	}

	env.Log().Debug("wrote default config", "path", configPath)

	if env.JSON {
		return clienv.OutputSuccess(w, map[string]string{"config_file": configPath}, "Config file created")
	}

	env.Printf(w, "✓ Wrote default config to %s\n", configPath)
	return nil
}

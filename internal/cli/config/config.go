package config

import (
	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
)

// NewCommand creates the config command group
func NewCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and initialise go-mc-profiles configuration.

Configuration is stored in ~/.config/go-mc-profiles/config.yaml by default.
Every key can be overridden with a GOMCP_ environment variable, for example
GOMCP_LAUNCHER_PROFILES_FILE or GOMCP_DEFAULTS_ICON.`,
		Example: `  # View current configuration
  go-mc-profiles config show

  # Show configuration file path
  go-mc-profiles config path

  # Write a config file with default values
  go-mc-profiles config init`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewShowCommand(env))
	cmd.AddCommand(NewPathCommand(env))
	cmd.AddCommand(NewInitCommand(env))

	return cmd
}

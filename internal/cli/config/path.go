package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	"github.com/steviee/go-mc-profiles/internal/state"
)

// NewPathCommand creates the config path command.
func NewPathCommand(env *clienv.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration and profiles file paths",
		Long:  `Print the config file path and the launcher_profiles.json path in use.`,
		Example: `  # Show paths
  go-mc-profiles config path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(env, cmd.OutOrStdout())
		},
	}
}

func runPath(env *clienv.Env, w io.Writer) error {
	configFile := env.ConfigFile
	if configFile == "" {
		p, err := state.GetConfigPath()
		if err != nil {
			return env.OutputError(w, err)
		}
		configFile = p
	}

	if env.JSON {
		return clienv.OutputSuccess(w, map[string]string{
			"config_file":   configFile,
			"profiles_file": env.ProfilesFile,
		}, "")
	}

	_, _ = fmt.Fprintf(w, "Config:   %s\n", configFile)
	_, _ = fmt.Fprintf(w, "Profiles: %s\n", env.ProfilesFile)
	return nil
}

package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	"github.com/steviee/go-mc-profiles/internal/state"
	"gopkg.in/yaml.v3"
)

// NewShowCommand creates the config show command.
func NewShowCommand(env *clienv.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  `Show the configuration after applying the config file, environment variables and flags.`,
		Example: `  # Show as YAML
  go-mc-profiles config show

  # Show as JSON
  go-mc-profiles config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(env, cmd.OutOrStdout())
		},
	}
}

func runShow(env *clienv.Env, w io.Writer) error {
	cfg := env.Config
	if cfg == nil {
		cfg = state.DefaultConfig()
	}

	if env.JSON {
		return clienv.OutputSuccess(w, map[string]interface{}{
			"config":        cfg,
			"config_file":   env.ConfigFile,
			"profiles_file": env.ProfilesFile,
		}, "")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if env.ConfigFile != "" {
		_, _ = fmt.Fprintf(w, "# %s\n", env.ConfigFile)
	}
	_, _ = w.Write(data)
	return nil
}

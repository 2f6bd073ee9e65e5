package profiles

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
)

// NewPatchForgeCommand creates the profiles patch-forge command.
func NewPatchForgeCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch-forge",
		Short: "Set the forge profile's last used time",
		Long: `Set lastUsed on the "forge" profile to one second ago.

The Forge installer creates its profile without a lastUsed value, which
leaves it hidden at the bottom of the launcher's list.`,
		Example: `  # Patch after running the Forge installer
  go-mc-profiles profiles patch-forge`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatchForge(env, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runPatchForge(env *clienv.Env, w io.Writer) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	if err := editor.PatchForgeProfile(); err != nil {
		return env.OutputError(w, err)
	}

	forge, _ := editor.Profile(lprofiles.ForgeProfileID)
	if env.JSON {
		return clienv.OutputSuccess(w, forge, "Forge profile patched")
	}

	env.Printf(w, "✓ Patched forge profile (lastUsed %s)\n", forge.LastUsed)
	return nil
}

package profiles

import (
	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
)

// NewCommand creates the profiles command group
func NewCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage launcher profiles",
		Long: `Inspect and edit the Minecraft launcher's launcher_profiles.json.

Every change re-reads the file first, keeps the previous version as
backup_launcher_profiles.json next to it and then replaces the original.
Unknown fields in the file are preserved.`,
		Example: `  # List all profiles
  go-mc-profiles profiles list

  # Add a profile for a modpack
  go-mc-profiles profiles add --version 1.14.4-forge-28.1.106 --game-dir ~/packs/adakite

  # Fix the forge profile after running the Forge installer
  go-mc-profiles profiles patch-forge

  # Undo the last change
  go-mc-profiles profiles restore`,
		Aliases: []string{"p"},
	}

	cmd.AddCommand(NewListCommand(env))
	cmd.AddCommand(NewShowCommand(env))
	cmd.AddCommand(NewAddCommand(env))
	cmd.AddCommand(NewPatchForgeCommand(env))
	cmd.AddCommand(NewRestoreCommand(env))
	cmd.AddCommand(NewInfoCommand(env))
	cmd.AddCommand(NewBrowseCommand(env))

	return cmd
}

package profiles

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
)

// NewRestoreCommand creates the profiles restore command.
func NewRestoreCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore launcher_profiles.json from its backup",
		Long: `Replace launcher_profiles.json with backup_launcher_profiles.json.

The current file becomes the new backup, so running restore twice returns
to where you started.`,
		Example: `  # Undo the last change
  go-mc-profiles profiles restore`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(env, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runRestore(env *clienv.Env, w io.Writer) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	if err := editor.RestoreBackup(); err != nil {
		return env.OutputError(w, err)
	}

	count := len(editor.Profiles())
	if env.JSON {
		return clienv.OutputSuccess(w, map[string]interface{}{
			"path":     editor.Path(),
			"backup":   editor.BackupPath(),
			"profiles": count,
		}, "Backup restored")
	}

	env.Printf(w, "✓ Restored %s from backup (%d profile%s)\n", editor.Path(), count, pluralS(count))
	return nil
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}


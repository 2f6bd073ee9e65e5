package profiles

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/steviee/go-mc-profiles/internal/state"
)

type addOptions struct {
	id      string
	name    string
	icon    string
	version string
	gameDir string
	javaDir string
}

// NewAddCommand creates the profiles add command.
func NewAddCommand(env *clienv.Env) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom profile",
		Long: `Add a custom profile to launcher_profiles.json.

A random ID and name are generated when --id or --name are omitted. The icon
and Java executable default to the values in the config file. The command
fails if a profile with the same ID or name already exists.`,
		Example: `  # Add a profile with a generated name
  go-mc-profiles profiles add --version 1.14.4-forge-28.1.106 --game-dir ~/packs/adakite

  # Add a named profile with a specific Java
  go-mc-profiles profiles add --name "My Pack" --version 1.20.4 \
    --game-dir ~/packs/mine --java-dir /usr/lib/jvm/java-17/bin/java`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(env, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "profile ID (generated if empty)")
	cmd.Flags().StringVar(&opts.name, "name", "", "display name (generated if empty)")
	cmd.Flags().StringVar(&opts.icon, "icon", "", "block name or data URI (default from config)")
	cmd.Flags().StringVar(&opts.version, "version", "", "launcher version ID, e.g. 1.14.4-forge-28.1.106")
	cmd.Flags().StringVar(&opts.gameDir, "game-dir", "", "game directory for the profile")
	cmd.Flags().StringVar(&opts.javaDir, "java-dir", "", "Java executable (default from config, else launcher default)")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("game-dir")

	return cmd
}

func runAdd(env *clienv.Env, w io.Writer, opts *addOptions) error {
	defaults := env.Defaults()
	if opts.icon == "" {
		opts.icon = defaults.Icon
	}
	if opts.javaDir == "" {
		opts.javaDir = defaults.JavaDir
	}

	if err := validateAddOptions(opts); err != nil {
		return env.OutputError(w, fmt.Errorf("%w: %w", clienv.ErrInvalidInput, err))
	}

	gameDir, err := filepath.Abs(opts.gameDir)
	if err != nil {
		return env.OutputError(w, fmt.Errorf("%w: game dir: %w", clienv.ErrInvalidInput, err))
	}

	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	p := lprofiles.NewProfile{
		ID:      opts.id,
		Name:    opts.name,
		Icon:    opts.icon,
		Version: opts.version,
		GameDir: gameDir,
	}
	if p.ID == "" {
		p.ID = editor.NewUniqueID()
	}
	if p.Name == "" {
		p.Name = editor.NewUniqueName()
	}
	if opts.javaDir != "" {
		javaDir := opts.javaDir
		p.JavaDir = &javaDir
	}

	if err := editor.WriteProfile(p); err != nil {
		return env.OutputError(w, err)
	}

	env.Log().Debug("profile added", "id", p.ID, "name", p.Name, "path", editor.Path())

	written, _ := editor.Profile(p.ID)
	if env.JSON {
		return clienv.OutputSuccess(w, written, fmt.Sprintf("Profile %q added", p.Name))
	}

	env.Printf(w, "✓ Added profile %q (%s)\n", p.Name, p.ID)
	env.Printf(w, "  Backup: %s\n", editor.BackupPath())
	return nil
}

func validateAddOptions(opts *addOptions) error {
	if opts.id != "" {
		if err := state.ValidateProfileID(opts.id); err != nil {
			return err
		}
	}
	if opts.name != "" {
		if err := state.ValidateProfileName(opts.name); err != nil {
			return err
		}
	}
	if err := state.ValidateIcon(opts.icon); err != nil {
		return err
	}
	if err := state.ValidateVersion(opts.version); err != nil {
		return err
	}
	if err := state.ValidatePath(opts.gameDir); err != nil {
		return fmt.Errorf("game dir: %w", err)
	}
	if opts.javaDir != "" {
		if err := state.ValidatePath(opts.javaDir); err != nil {
			return fmt.Errorf("java dir: %w", err)
		}
	}
	return nil
}

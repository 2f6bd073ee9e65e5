package profiles

import (
	"io"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
)

// FileInfo describes one file on disk.
type FileInfo struct {
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
	Size      int64  `json:"size,omitempty"`
	SizeHuman string `json:"size_human,omitempty"`
}

// Info summarises the profiles file and its backup.
type Info struct {
	File         FileInfo `json:"file"`
	Backup       FileInfo `json:"backup"`
	Profiles     int      `json:"profiles"`
	ForgeProfile bool     `json:"forge_profile"`
}

// NewInfoCommand creates the profiles info command.
func NewInfoCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the profiles file",
		Long:  `Show the location and size of launcher_profiles.json and its backup, and how many profiles it holds.`,
		Example: `  # Show file information
  go-mc-profiles profiles info

  # Use a different file
  go-mc-profiles --file ./launcher_profiles.json profiles info`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(env, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runInfo(env *clienv.Env, w io.Writer) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	fs := env.EditorConfig().Fs
	info := Info{
		File:     statFile(fs, editor.Path()),
		Backup:   statFile(fs, editor.BackupPath()),
		Profiles: len(editor.Profiles()),
	}
	_, info.ForgeProfile = editor.Profile(lprofiles.ForgeProfileID)

	if env.JSON {
		return clienv.OutputSuccess(w, info, "")
	}

	env.Printf(w, "File:     %s (%s)\n", info.File.Path, info.File.SizeHuman)
	if info.Backup.Exists {
		env.Printf(w, "Backup:   %s (%s)\n", info.Backup.Path, info.Backup.SizeHuman)
	} else {
		env.Printf(w, "Backup:   none\n")
	}
	env.Printf(w, "Profiles: %d\n", info.Profiles)
	if info.ForgeProfile {
		env.Printf(w, "Forge:    yes\n")
	} else {
		env.Printf(w, "Forge:    no\n")
	}

	return nil
}

func statFile(fs afero.Fs, path string) FileInfo {
	fi := FileInfo{Path: path}

	st, err := fs.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fi.Exists = true
		}
		return fi
	}

	fi.Exists = true
	fi.Size = st.Size()
	fi.SizeHuman = units.HumanSize(float64(st.Size()))
	return fi
}

package profiles

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
)

// NewShowCommand creates the profiles show command.
func NewShowCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single profile",
		Long:  `Show every known field of the profile with the given ID.`,
		Example: `  # Show the forge profile
  go-mc-profiles profiles show forge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(env, cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func runShow(env *clienv.Env, w io.Writer, id string) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	p, ok := editor.Profile(id)
	if !ok {
		return env.OutputError(w, fmt.Errorf("%w: %q", clienv.ErrProfileNotFound, id))
	}

	if env.JSON {
		return clienv.OutputSuccess(w, p, "")
	}

	printProfile(w, p)
	return nil
}

func printProfile(w io.Writer, p lprofiles.Profile) {
	javaDir := "(launcher default)"
	if p.JavaDir != nil {
		javaDir = *p.JavaDir
	}

	_, _ = fmt.Fprintf(w, "ID:         %s\n", p.ID)
	_, _ = fmt.Fprintf(w, "Name:       %s\n", orDash(p.Name))
	_, _ = fmt.Fprintf(w, "Type:       %s\n", orDash(p.Type))
	_, _ = fmt.Fprintf(w, "Icon:       %s\n", orDash(p.Icon))
	_, _ = fmt.Fprintf(w, "Version:    %s\n", orDash(p.LastVersionID))
	_, _ = fmt.Fprintf(w, "Game dir:   %s\n", orDash(p.GameDir))
	_, _ = fmt.Fprintf(w, "Java:       %s\n", javaDir)
	_, _ = fmt.Fprintf(w, "Created:    %s\n", orDash(p.Created))
	_, _ = fmt.Fprintf(w, "Last used:  %s\n", orDash(p.LastUsed))
}

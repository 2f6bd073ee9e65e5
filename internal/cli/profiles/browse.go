package profiles

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/steviee/go-mc-profiles/internal/tui"
)

// NewBrowseCommand creates the profiles browse command
func NewBrowseCommand(env *clienv.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse profiles interactively",
		Long: `Open an interactive viewer for launcher_profiles.json.

Keyboard shortcuts:
  ↑/k         Move selection up
  ↓/j         Move selection down
  enter       Show or hide profile details
  f           Patch the forge profile
  r           Reload the file
  q/Ctrl+C    Quit`,
		Example: `  # Open the browser
  go-mc-profiles profiles browse`,
		Aliases: []string{"ui"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(env)
		},
	}

	return cmd
}

func runBrowse(env *clienv.Env) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return err
	}

	model := tui.NewModel(editor.Path(), &editorSource{editor: editor})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run profile browser: %w", err)
	}

	return nil
}

// editorSource feeds an editor to the browser. The editor is not safe for
// concurrent use, so calls are serialized.
type editorSource struct {
	mu     sync.Mutex
	editor *lprofiles.Editor
}

func (s *editorSource) Load() ([]lprofiles.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editor.Refresh(); err != nil {
		return nil, err
	}
	return s.editor.Profiles(), nil
}

func (s *editorSource) PatchForge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.PatchForgeProfile()
}

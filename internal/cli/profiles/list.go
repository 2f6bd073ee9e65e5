package profiles

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
	"github.com/steviee/go-mc-profiles/internal/minecraft"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
)

// Sort orders accepted by list --sort.
const (
	SortByID       = "id"
	SortByName     = "name"
	SortByVersion  = "version"
	SortByLastUsed = "last-used"
	SortByCreated  = "created"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

type listOptions struct {
	sortBy   string
	noHeader bool
}

// NewListCommand creates the profiles list command.
func NewListCommand(env *clienv.Env) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List launcher profiles",
		Long: `List all profiles in launcher_profiles.json.

Profiles are sorted by ID unless --sort is given. Sorting by version orders
by Minecraft version first, then by mod loader version. The last-used and
created orders put the newest first and profiles without a time last.`,
		Example: `  # List profiles
  go-mc-profiles profiles list

  # Most recently used first
  go-mc-profiles profiles list --sort last-used

  # JSON output
  go-mc-profiles profiles list --json`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(env, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.sortBy, "sort", SortByID, "sort order: id, name, version, last-used or created")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "omit the header row")

	return cmd
}

func runList(env *clienv.Env, w io.Writer, opts *listOptions) error {
	editor, err := env.OpenEditor()
	if err != nil {
		return env.OutputError(w, err)
	}

	list := editor.Profiles()
	if err := sortProfiles(list, opts.sortBy); err != nil {
		return env.OutputError(w, err)
	}

	if env.JSON {
		return clienv.OutputSuccess(w, map[string]interface{}{
			"profiles": list,
			"count":    len(list),
		}, fmt.Sprintf("Found %d profile(s)", len(list)))
	}

	return outputListHuman(w, list, opts.noHeader)
}

// sortProfiles sorts list in place. The input is expected sorted by ID, so
// stable sorts keep ID as the tie breaker.
func sortProfiles(list []lprofiles.Profile, sortBy string) error {
	switch sortBy {
	case SortByID, "":
		// already sorted
	case SortByName:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	case SortByVersion:
		sort.SliceStable(list, func(i, j int) bool {
			a := minecraft.ParseVersionID(list[i].LastVersionID)
			b := minecraft.ParseVersionID(list[j].LastVersionID)
			return minecraft.CompareVersionIDs(a, b) < 0
		})
	case SortByLastUsed:
		sortNewestFirst(list, lprofiles.Profile.LastUsedTime)
	case SortByCreated:
		sortNewestFirst(list, lprofiles.Profile.CreatedTime)
	default:
		return fmt.Errorf("%w: unknown sort order %q (must be id, name, version, last-used or created)", clienv.ErrInvalidInput, sortBy)
	}
	return nil
}

func sortNewestFirst(list []lprofiles.Profile, when func(lprofiles.Profile) (time.Time, bool)) {
	sort.SliceStable(list, func(i, j int) bool {
		a, aok := when(list[i])
		b, bok := when(list[j])
		if aok != bok {
			return aok
		}
		return a.After(b)
	})
}

func outputListHuman(w io.Writer, list []lprofiles.Profile, noHeader bool) error {
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, "No profiles found")
		return nil
	}

	idWidth, nameWidth := len("ID"), len("NAME")
	for _, p := range list {
		idWidth = max(idWidth, len(p.ID))
		nameWidth = max(nameWidth, len([]rune(p.Name)))
	}

	if !noHeader {
		header := fmt.Sprintf("%-*s  %-*s  %-28s  %s", idWidth, "ID", nameWidth, "NAME", "VERSION", "LAST USED")
		_, _ = fmt.Fprintln(w, headerStyle.Render(header))
	}

	for _, p := range list {
		lastUsed := "-"
		if t, ok := p.LastUsedTime(); ok {
			lastUsed = t.Local().Format("2006-01-02 15:04")
		}
		_, _ = fmt.Fprintf(w, "%-*s  %-*s  %-28s  %s\n",
			idWidth, p.ID,
			nameWidth, orDash(p.Name),
			orDash(p.LastVersionID),
			lastUsed,
		)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

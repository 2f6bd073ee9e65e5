package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/steviee/go-mc-profiles/internal/cli/clienv"
)

// VersionInfo contains version information for the application
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionInfo(version, commit, date, builtBy string) VersionInfo {
	return VersionInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuiltBy:   builtBy,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date, builtBy string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information including build commit, date and platform.",
		Example: `  # Display version information
  go-mc-profiles version

  # Output in JSON format
  go-mc-profiles version --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout(), newVersionInfo(version, commit, date, builtBy))
		},
	}

	return cmd
}

// printVersion prints version information in the appropriate format
func printVersion(w io.Writer, info VersionInfo) error {
	if IsJSONOutput() {
		return clienv.OutputSuccess(w, info, "")
	}
	return printVersionText(w, info)
}

// printVersionText prints version information in human-readable format
func printVersionText(w io.Writer, info VersionInfo) error {
	lines := []struct {
		format string
		value  string
	}{
		{"go-mc-profiles version %s\n", info.Version},
		{"Commit: %s\n", info.Commit},
		{"Built: %s\n", info.Date},
		{"Built by: %s\n", info.BuiltBy},
		{"Go: %s\n", info.GoVersion},
		{"Platform: %s\n", info.Platform},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, l.format, l.value); err != nil {
			return fmt.Errorf("write version info: %w", err)
		}
	}

	return nil
}

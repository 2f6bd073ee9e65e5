package main

import (
	"fmt"
	"os"

	"github.com/steviee/go-mc-profiles/internal/cli"
)

// Version information (set by ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	BuiltBy   = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(Version, Commit, BuildTime, BuiltBy)
	if err := rootCmd.Execute(); err != nil {
		if !cli.IsJSONOutput() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, stamped via -ldflags at release time; a source build
// reports "dev".
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldwork %s (commit %s, built %s, %s)\n",
			version, gitCommit, buildDate, runtime.Version())
	},
}

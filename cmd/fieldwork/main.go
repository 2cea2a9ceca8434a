package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/fieldwork/internal/cli/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldwork",
		Short: "Schema-driven attribute resolution tooling",
		Long: `Fieldwork resolves record attributes through declarative resource
schemas: plain fields read stored values, derived fields dispatch to named
derivation functions bound lazily at read time.`,
	}

	// Add subcommands
	commands.Register(rootCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

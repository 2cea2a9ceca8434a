// Package commands implements the fieldwork CLI: schema inspection,
// ad-hoc attribute resolution, and the explorer server.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/fieldwork/derive"
	"github.com/fieldwork-labs/fieldwork/internal/cli/config"
	"github.com/fieldwork-labs/fieldwork/schema"
)

var (
	// Global flags shared by all commands
	outputFormat string
	noColor      bool
)

// Register adds the fieldwork commands and their shared flags to the root.
func Register(root *cobra.Command) {
	root.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format: json or table")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	}

	root.AddCommand(newSchemasCommand())
	root.AddCommand(newSchemaCommand())
	root.AddCommand(newDerivationsCommand())
	root.AddCommand(newResolveCommand())
	root.AddCommand(newServeCommand())
}

// loadRegistries loads the configuration, reads every schema document under
// the configured schema directory, and seeds the derivation registry with
// the built-in library.
func loadRegistries() (*config.Config, *schema.Registry, *derive.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	schemas := schema.NewRegistry()
	paths, err := filepath.Glob(filepath.Join(cfg.SchemaDir, "*.json"))
	if err != nil {
		return nil, nil, nil, err
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := schemas.LoadDocument(data); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	derivations := derive.NewRegistry()
	derive.RegisterBuiltins(derivations)

	return cfg, schemas, derivations, nil
}

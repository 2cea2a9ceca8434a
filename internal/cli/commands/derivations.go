package commands

import (
	"github.com/spf13/cobra"
)

func newDerivationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "derivations",
		Short: "List registered derivation names",
		Long: `List the derivation names available to derived fields.

The built-in derivation library is always seeded; schemas may reference
names that are not yet registered — such fields fail only when read.`,
		RunE: runDerivationsCommand,
	}
}

func runDerivationsCommand(cmd *cobra.Command, args []string) error {
	_, _, derivations, err := loadRegistries()
	if err != nil {
		return err
	}

	names := derivations.Names()

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), map[string][]string{"derivations": names})
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	printTable(cmd.OutOrStdout(), []string{"NAME"}, rows)
	return nil
}

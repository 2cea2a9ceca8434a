package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/fieldwork/record"
)

func newResolveCommand() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "resolve <type> <field>",
		Short: "Resolve a field against an ad-hoc record",
		Long: `Build an in-memory record of the given type and resolve one of its
fields through the schema. Plain fields return the stored value; derived
fields invoke their registered derivation.`,
		Example: `  # Resolve a derived field
  fieldwork resolve user fullName --set firstName=Rey --set lastName=Skybarker

  # Resolve a stored field
  fieldwork resolve user firstName --set firstName=Rey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCommand(cmd, args[0], args[1], sets)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Raw field value as name=value (repeatable)")
	return cmd
}

func runResolveCommand(cmd *cobra.Command, typeName, field string, sets []string) error {
	_, schemas, derivations, err := loadRegistries()
	if err != nil {
		return err
	}

	attrs := make(map[string]any, len(sets))
	for _, set := range sets {
		name, value, found := strings.Cut(set, "=")
		if !found || name == "" {
			return fmt.Errorf("invalid --set %q, expected name=value", set)
		}
		attrs[name] = value
	}

	resolver := record.NewResolver(schemas, derivations)
	rec, err := resolver.New(typeName, attrs)
	if err != nil {
		return err
	}

	value, err := rec.Get(field)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"type":  typeName,
			"field": field,
			"value": value,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
	return nil
}

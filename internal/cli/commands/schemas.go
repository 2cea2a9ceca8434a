package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/fieldwork/schema"
)

func newSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List all registered resource schemas",
		Long: `List all resource schemas loaded from the schema directory.

Use 'fieldwork schema <type>' to view the field declarations of a
specific resource.`,
		Example: `  # List all schemas
  fieldwork schemas

  # List schemas in JSON format for tooling
  fieldwork schemas --format json`,
		RunE: runSchemasCommand,
	}
}

func runSchemasCommand(cmd *cobra.Command, args []string) error {
	_, schemas, _, err := loadRegistries()
	if err != nil {
		return err
	}

	all := schemas.All()
	names := schemas.List()

	if outputFormat == "json" {
		ordered := make([]*schema.ResourceSchema, 0, len(names))
		for _, name := range names {
			ordered = append(ordered, all[name])
		}
		return printJSON(cmd.OutOrStdout(), schema.DocumentFor(ordered...))
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		s := all[name]
		plain, derived := 0, 0
		for _, f := range s.Fields {
			if f.Kind == schema.KindDerived {
				derived++
			} else {
				plain++
			}
		}
		rows = append(rows, []string{name, strconv.Itoa(plain), strconv.Itoa(derived)})
	}
	printTable(cmd.OutOrStdout(), []string{"TYPE", "FIELDS", "DERIVED"}, rows)
	return nil
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <type>",
		Short: "Show the field declarations of a resource schema",
		Example: `  # View the user schema
  fieldwork schema user

  # View it in JSON format
  fieldwork schema user --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSchemaCommand,
	}
}

func runSchemaCommand(cmd *cobra.Command, args []string) error {
	_, schemas, _, err := loadRegistries()
	if err != nil {
		return err
	}

	s, ok := schemas.Get(args[0])
	if !ok {
		return &schema.SchemaNotFoundError{Type: args[0]}
	}

	if outputFormat == "json" {
		doc := schema.DocumentFor(s)
		return printJSON(cmd.OutOrStdout(), doc.Resources[0])
	}

	rows := make([][]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		options := ""
		if len(f.Options) > 0 {
			options = fmt.Sprintf("%v", f.Options)
		}
		rows = append(rows, []string{f.Name, f.Kind.String(), f.Derivation, options})
	}
	printTable(cmd.OutOrStdout(), []string{"NAME", "KIND", "DERIVATION", "OPTIONS"}, rows)
	return nil
}

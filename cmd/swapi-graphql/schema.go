package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/starwars-explorer/swapi-graphql/schema"
)

var rawSchema bool

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:     "schema",
	Short:   "print the GraphQL schema",
	Example: "swapi-graphql schema > schema.graphql",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSchema(cmd.OutOrStdout(), rawSchema)
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&rawSchema, "raw", false, "print the embedded SDL with its comments instead of formatting it")
	rootCmd.AddCommand(schemaCmd)
}

func printSchema(w io.Writer, raw bool) error {
	if raw {
		_, err := io.WriteString(w, schema.SDL)
		return err
	}
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: schema.SDL})
	if err != nil {
		return err
	}
	formatter.NewFormatter(w).FormatSchemaDocument(doc)
	return nil
}

package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iofields/checkfields/jsonschema"
	"github.com/iofields/checkfields/loader"
)

func newSchemaCmd() *cobra.Command {
	var path, format string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print a schema file in normalized form",
		Long:  `Decodes a schema file and prints it back with every descriptor spelled out, or exports it as a JSON Schema document.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loader.LoadSchemaFile(path)
			if err != nil {
				return err
			}
			var doc any = s.ToMap()
			if format == "jsonschema" {
				if doc, err = jsonschema.FromSchema(s); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			switch format {
			case "json", "jsonschema":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(doc)
			}
			return fmt.Errorf("unknown format %q (want json, yaml or jsonschema)", format)
		},
	}
	cmd.Flags().StringVar(&path, "schema", "", "schema file (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format (json, yaml, jsonschema)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

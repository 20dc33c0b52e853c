package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "checkfields",
		Short:         "Check JSON and YAML documents against field schemas",
		Long:          `checkfields compares a document with a schema of typed field descriptors and reports the first mismatch as a structured error record.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	root.AddCommand(newValidateCmd(), newSchemaCmd(), newVersionCmd())
	return root
}

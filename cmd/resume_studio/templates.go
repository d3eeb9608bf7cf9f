package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	if templatesJSON {
		return writeJSON(cmd, rendering.Templates())
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(rendering.Templates())
	return nil
}

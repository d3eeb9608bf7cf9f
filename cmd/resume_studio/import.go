package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/importing"
	"github.com/jonathan/resume-studio/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a résumé from a JSON file",
	Long: "Reads a best-effort JSON document, validates its shape, fills missing fields " +
		"with defaults and saves it as a new résumé with fresh ids.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show the completed document without saving it")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	importer := importing.NewImporter(a.reconciler, a.cfg.Profile, nil)
	out := observability.NewPrinter(cmd.OutOrStdout())

	if importDryRun {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		doc, err := importer.Candidate(data)
		if err != nil {
			return err
		}
		out.PrintDocument(doc)
		return nil
	}

	doc, err := importer.ImportFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported résumé %s\n", doc.ID)
	out.PrintDocument(doc)
	return nil
}

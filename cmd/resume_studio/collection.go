package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/collection"
	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List résumés, pinned first then most recently saved",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a résumé and save it to the collection",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a résumé from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle the pinned flag of a résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runPin,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Load the collection, migrating a pre-collection document if one is stored",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var (
	listJSON    bool
	showJSON    bool
	newTemplate string
	newSample   bool
	newLight    bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the collection as JSON")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the document as JSON")
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template id (defaults to default_template)")
	newCmd.Flags().BoolVar(&newSample, "sample", false, "Fill the document with sample content")
	newCmd.Flags().BoolVar(&newLight, "light", false, "Use the light theme")

	rootCmd.AddCommand(listCmd, showCmd, newCmd, deleteCmd, pinCmd, migrateCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.load(cmd.Context(), observability.NewPrinter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	docs := collection.Sort(result.Documents)

	if listJSON {
		return writeJSON(cmd, docs)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCollection(docs)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.document(cmd.Context(), observability.NewPrinter(cmd.ErrOrStderr()), args[0])
	if err != nil {
		return err
	}
	if showJSON {
		return writeJSON(cmd, doc)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(doc)
	return nil
}

func runNew(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	templateID := newTemplate
	if templateID == "" {
		templateID = a.cfg.DefaultTemplate
	}
	if !types.IsKnownTemplate(templateID) {
		return fmt.Errorf("unknown template %q", templateID)
	}

	var doc types.ResumeDocument
	if newSample {
		doc = document.Sample(templateID, a.cfg.Profile, nil)
	} else {
		doc = document.New(templateID, a.cfg.Profile, nil)
	}
	if newLight {
		doc.ThemeMode = types.ThemeLight
	}

	if _, err := a.reconciler.Upsert(cmd.Context(), doc); err != nil {
		return fmt.Errorf("failed to save résumé: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created résumé %s\n", doc.ID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	found := false
	_, err = a.reconciler.Apply(cmd.Context(), args[0], func(current *types.ResumeDocument) *types.ResumeDocument {
		found = current != nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete résumé: %w", err)
	}
	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "No résumé %s; nothing deleted\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted résumé %s\n", args[0])
	return nil
}

func runPin(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	docs, err := a.reconciler.TogglePin(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to pin résumé: %w", err)
	}
	doc, ok := collection.Find(docs, args[0])
	if !ok {
		return fmt.Errorf("résumé %q not found", args[0])
	}
	state := "Unpinned"
	if doc.IsPinned {
		state = "Pinned"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s résumé %s\n", state, doc.ID)
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := observability.NewPrinter(cmd.OutOrStdout())
	result, err := a.load(cmd.Context(), out)
	if err != nil {
		return err
	}
	if result.Corrupt {
		return fmt.Errorf("collection is corrupt: %w", result.Problem)
	}
	if !result.Migrated {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to migrate; collection holds %d résumé(s)\n", len(result.Documents))
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

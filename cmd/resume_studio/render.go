package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render a résumé as HTML, PDF or a JSON layout tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var galleryCmd = &cobra.Command{
	Use:   "gallery [id]",
	Short: "Render one résumé in every template",
	Long: "Writes one HTML file per template and theme mode into the output directory. " +
		"Without an id the sample document is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: runGallery,
}

var (
	renderTemplate string
	renderMode     string
	renderFormat   string
	renderOut      string

	galleryOut   string
	galleryMode  string
	galleryPDF   bool
	galleryLimit int
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (defaults to the résumé's own)")
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", "", "Theme mode: light or dark (defaults to the résumé's own)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, pdf or json")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (stdout when empty)")

	galleryCmd.Flags().StringVarP(&galleryOut, "out", "o", "gallery", "Output directory")
	galleryCmd.Flags().StringVarP(&galleryMode, "mode", "m", "", "Only render this theme mode")
	galleryCmd.Flags().BoolVar(&galleryPDF, "pdf", false, "Print a PDF next to every HTML file (requires Chrome)")
	galleryCmd.Flags().IntVar(&galleryLimit, "concurrency", export.DefaultGalleryConcurrency, "Parallel renders")

	rootCmd.AddCommand(renderCmd, galleryCmd)
}

func parseMode(s string, fallback types.ThemeMode) (types.ThemeMode, error) {
	if s == "" {
		return fallback, nil
	}
	mode := types.ThemeMode(s)
	if !mode.Valid() {
		return "", fmt.Errorf("invalid mode %q (want light or dark)", s)
	}
	return mode, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.document(cmd.Context(), observability.NewPrinter(cmd.ErrOrStderr()), args[0])
	if err != nil {
		return err
	}

	templateID := renderTemplate
	if templateID == "" {
		templateID = doc.TemplateID
	}
	mode, err := parseMode(renderMode, doc.ThemeMode)
	if err != nil {
		return err
	}

	var output []byte
	switch renderFormat {
	case "html":
		output, err = export.DocumentHTML(doc, templateID, mode)
	case "pdf":
		pdf := export.NewPDFRenderer(export.PDFOptions{ChromePath: a.cfg.ChromePath})
		output, err = export.DocumentPDF(cmd.Context(), pdf, doc, templateID, mode)
	case "json":
		var tree *rendering.Node
		if tree, err = rendering.Render(doc, templateID, mode); err == nil {
			output, err = json.MarshalIndent(tree, "", "  ")
		}
	default:
		return fmt.Errorf("invalid format %q (want html, pdf or json)", renderFormat)
	}
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = cmd.OutOrStdout().Write(output)
		return err
	}
	if err := os.WriteFile(renderOut, output, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", renderOut)
	return nil
}

func runGallery(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	doc := document.Sample(a.cfg.DefaultTemplate, a.cfg.Profile, nil)
	if len(args) == 1 {
		doc, err = a.document(cmd.Context(), observability.NewPrinter(cmd.ErrOrStderr()), args[0])
		if err != nil {
			return err
		}
	}

	opts := export.GalleryOptions{Concurrency: galleryLimit}
	if galleryMode != "" {
		mode, err := parseMode(galleryMode, "")
		if err != nil {
			return err
		}
		opts.Modes = []types.ThemeMode{mode}
	}
	if galleryPDF {
		opts.PDF = export.NewPDFRenderer(export.PDFOptions{ChromePath: a.cfg.ChromePath})
	}

	entries, err := export.Gallery(cmd.Context(), doc, opts)
	if err != nil {
		return err
	}
	paths, err := export.WriteGallery(galleryOut, entries)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.ToSlash(p))
	}
	return nil
}

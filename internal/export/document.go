package export

import (
	"context"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// Title is the HTML title used for doc
func Title(doc types.ResumeDocument) string {
	if doc.FullName == "" {
		return "Résumé"
	}
	return doc.FullName + " - Résumé"
}

// DocumentHTML renders doc with templateID and mode as a standalone HTML document
func DocumentHTML(doc types.ResumeDocument, templateID string, mode types.ThemeMode) ([]byte, error) {
	tree, err := rendering.Render(doc, templateID, mode)
	if err != nil {
		return nil, err
	}
	return HTML(tree, Title(doc))
}

// DocumentPDF renders doc with templateID and mode and prints it with r
func DocumentPDF(ctx context.Context, r *PDFRenderer, doc types.ResumeDocument, templateID string, mode types.ThemeMode) ([]byte, error) {
	page, err := DocumentHTML(doc, templateID, mode)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, page)
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultGalleryConcurrency bounds parallel renders; PDF printing starts one browser per render
const DefaultGalleryConcurrency = 4

// GalleryOptions configures Gallery
type GalleryOptions struct {
	// Modes to render; both when empty
	Modes []types.ThemeMode
	// Concurrency bounds parallel renders
	Concurrency int
	// PDF prints every page as well when set
	PDF *PDFRenderer
}

// GalleryEntry is one template in one mode
type GalleryEntry struct {
	TemplateID string
	Mode       types.ThemeMode
	HTML       []byte
	PDF        []byte
}

// Name is the file stem for the entry
func (e GalleryEntry) Name() string {
	return fmt.Sprintf("%s-%s", e.TemplateID, e.Mode)
}

// Gallery renders doc in every registered template and requested mode. The
// entries follow catalog order, light before dark.
func Gallery(ctx context.Context, doc types.ResumeDocument, opts GalleryOptions) ([]GalleryEntry, error) {
	modes := opts.Modes
	if len(modes) == 0 {
		modes = []types.ThemeMode{types.ThemeLight, types.ThemeDark}
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultGalleryConcurrency
	}

	templates := rendering.Templates()
	entries := make([]GalleryEntry, 0, len(templates)*len(modes))
	for _, t := range templates {
		for _, mode := range modes {
			entries = append(entries, GalleryEntry{TemplateID: t.ID, Mode: mode})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range entries {
		entry := &entries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := DocumentHTML(doc, entry.TemplateID, entry.Mode)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Name(), err)
			}
			entry.HTML = page
			if opts.PDF == nil {
				return nil
			}
			pdf, err := opts.PDF.Render(gctx, page)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Name(), err)
			}
			entry.PDF = pdf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// WriteGallery writes every entry under dir as <template>-<mode>.html (and
// .pdf when printed) and returns the written paths.
func WriteGallery(dir string, entries []GalleryEntry) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &ExportError{Format: "gallery", Message: "failed to create output directory", Cause: err}
	}
	var paths []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return &ExportError{Format: "gallery", Message: "failed to write " + name, Cause: err}
		}
		paths = append(paths, path)
		return nil
	}
	for _, e := range entries {
		if err := write(e.Name()+".html", e.HTML); err != nil {
			return paths, err
		}
		if len(e.PDF) > 0 {
			if err := write(e.Name()+".pdf", e.PDF); err != nil {
				return paths, err
			}
		}
	}
	return paths, nil
}

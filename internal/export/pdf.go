package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds one headless Chrome print
const DefaultPDFTimeout = 60 * time.Second

// A4 paper size in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// PDFOptions configures the headless browser used for printing
type PDFOptions struct {
	// ChromePath overrides the browser binary; CHROME_PATH is used when empty
	ChromePath string
	Timeout    time.Duration
}

// PDFRenderer prints standalone HTML documents to A4 PDFs with headless Chrome
type PDFRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewPDFRenderer creates a renderer; Chrome is started per call
func NewPDFRenderer(opts PDFOptions) *PDFRenderer {
	r := &PDFRenderer{chromePath: opts.ChromePath, timeout: opts.Timeout}
	if r.chromePath == "" {
		r.chromePath = os.Getenv("CHROME_PATH")
	}
	if r.timeout <= 0 {
		r.timeout = DefaultPDFTimeout
	}
	return r
}

func (r *PDFRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	return opts
}

// Render prints htmlDoc and returns the PDF bytes
func (r *PDFRenderer) Render(ctx context.Context, htmlDoc []byte) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.timeout)
	defer cancelTimeout()

	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return nil, &ExportError{Format: "pdf", Message: "failed to create work directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, htmlDoc, 0o600); err != nil {
		return nil, &ExportError{Format: "pdf", Message: "failed to write page", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &ExportError{Format: "pdf", Message: "headless print failed", Cause: err}
	}
	return pdf, nil
}

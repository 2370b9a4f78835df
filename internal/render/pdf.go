// Package render - pdf.go drives headless Chrome to convert rendered HTML
// into a fixed-layout PDF. Requires Chrome/Chromium to be installed on the
// system.
package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds one browser conversion.
const DefaultPDFTimeout = 60 * time.Second

// PDF loads an HTML file in a headless browser and writes the printed PDF to
// pdfPath. Conversion failure is an ordinary error; callers on the export
// path treat it as non-fatal.
func PDF(ctx context.Context, htmlPath, pdfPath string, timeout time.Duration, verbose bool) error {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve HTML path: %w", err)
	}
	if verbose {
		log.Printf("[BROWSER] Printing %s to PDF", absPath)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("pdf rendering failed: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if verbose {
		log.Printf("[BROWSER] Wrote PDF: %d bytes", len(pdf))
	}
	return nil
}

// FilePDF renders an HTML fragment to a staged page file and converts it,
// cleaning up the staging file afterwards.
func FilePDF(ctx context.Context, fragment, pdfPath string) error {
	tmp, err := os.CreateTemp("", "docfill-*.html")
	if err != nil {
		return fmt.Errorf("failed to stage HTML: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(Page(fragment)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to stage HTML: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to stage HTML: %w", err)
	}

	return PDF(ctx, tmpPath, pdfPath, DefaultPDFTimeout, false)
}

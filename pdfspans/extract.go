// Package pdfspans extracts positioned text spans from PDF files with a
// native text layer. It produces the model.Document consumed by the
// structure engine; scanned files without a usable text layer are flagged
// via NeedsOCR so callers can fall back to recognition.
package pdfspans

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/contour/model"
)

// Config bounds extraction work and sets the thresholds that decide
// whether a file's text layer is trustworthy.
type Config struct {
	// MaxPages caps how many pages are read. Zero or negative means all.
	MaxPages int
	// MinTextLength is the least total trimmed text across all pages for
	// the text layer to count as real content.
	MinTextLength int
	// MinTextBlocks is the least number of extracted spans for the text
	// layer to count as real content.
	MinTextBlocks int
}

// DefaultConfig returns the extraction limits used by the command-line
// tool.
func DefaultConfig() Config {
	return Config{
		MaxPages:      50,
		MinTextLength: 100,
		MinTextBlocks: 10,
	}
}

// defaultPageHeight is US Letter in points, used when a page carries no
// MediaBox anywhere in its tree.
const defaultPageHeight = 792

// Extract reads the PDF at path and returns its pages as positioned span
// collections in top-left coordinates. Pages whose content streams cannot
// be parsed are kept with empty span lists rather than failing the whole
// file.
func Extract(path string, cfg Config) (model.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	if cfg.MaxPages > 0 && total > cfg.MaxPages {
		total = cfg.MaxPages
	}

	doc := model.Document{Pages: make([]model.Page, 0, total)}
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, model.Page{Number: i})
			continue
		}
		doc.Pages = append(doc.Pages, extractPage(page, i))
	}
	return doc, nil
}

// extractPage pulls the raw text and the positioned spans for one page.
// The underlying reader panics on malformed content streams, so both
// passes are isolated; a broken page degrades to an empty one.
func extractPage(page pdflib.Page, number int) (result model.Page) {
	result = model.Page{Number: number}
	defer func() {
		if r := recover(); r != nil {
			result.Spans = nil
		}
	}()

	if text, err := page.GetPlainText(nil); err == nil {
		result.RawText = text
	}
	result.Spans = groupRuns(page.Content().Text, pageHeight(page), number)
	return result
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited values.
func pageHeight(page pdflib.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
	}
	return defaultPageHeight
}

// NeedsOCR reports whether the extracted document's text layer is too thin
// to analyze, meaning the file is likely a scan and should go through
// recognition instead.
func NeedsOCR(doc model.Document, cfg Config) bool {
	totalText := 0
	for _, page := range doc.Pages {
		totalText += page.TextLength()
	}
	return totalText < cfg.MinTextLength || doc.SpanCount() < cfg.MinTextBlocks
}

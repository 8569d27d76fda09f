package contour

import (
	"fmt"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/pdfspans"
	"github.com/tsawler/contour/structure"
)

// Extractor provides a fluent interface for inferring document structure.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: exactly one of filename or doc is set.
	filename string
	doc      *model.Document

	// Configuration
	structure structure.Config
	extract   pdfspans.Config

	// Accumulated error (fail-fast)
	err error
}

func defaultStructureConfig() structure.Config {
	return structure.DefaultConfig()
}

func defaultExtractConfig() pdfspans.Config {
	return pdfspans.DefaultConfig()
}

// clone creates a shallow copy of the Extractor. Each chain method returns
// a new instance, so a configured Extractor can be shared and reused.
func (e *Extractor) clone() *Extractor {
	clone := *e
	return &clone
}

// MaxPages limits how many pages are extracted from the source file. Zero
// or negative means all pages. It has no effect when the Extractor was
// built with FromDocument.
func (e *Extractor) MaxPages(n int) *Extractor {
	c := e.clone()
	c.extract.MaxPages = n
	return c
}

// MaxHeadingLength sets the longest text (in characters) that can be
// considered a heading candidate.
func (e *Extractor) MaxHeadingLength(n int) *Extractor {
	c := e.clone()
	if n <= 0 {
		c.err = fmt.Errorf("max heading length must be positive, got %d", n)
		return c
	}
	c.structure.MaxHeadingLength = n
	return c
}

// MinHeadingScore sets the evidence score a span must accumulate before it
// is considered a heading candidate. Higher values mean fewer, more
// confident headings.
func (e *Extractor) MinHeadingScore(n int) *Extractor {
	c := e.clone()
	c.structure.MinHeadingScore = n
	return c
}

// MaxTitleLength caps the extracted title's length in characters,
// ellipsis included.
func (e *Extractor) MaxTitleLength(n int) *Extractor {
	c := e.clone()
	if n <= 0 {
		c.err = fmt.Errorf("max title length must be positive, got %d", n)
		return c
	}
	c.structure.MaxTitleLength = n
	return c
}

// FallbackTiers sets the font size thresholds used for level assignment
// when the document itself provides no usable size distribution.
func (e *Extractor) FallbackTiers(h1, h2, h3 float64) *Extractor {
	c := e.clone()
	tiers := structure.TierProfile{H1: h1, H2: h2, H3: h3}
	if !tiers.Monotonic() {
		c.err = fmt.Errorf("fallback tiers must be non-increasing, got %v >= %v >= %v", h1, h2, h3)
		return c
	}
	c.structure.FallbackTiers = tiers
	return c
}

// Document extracts and returns the positioned span collection without
// running structure inference.
func (e *Extractor) Document() (model.Document, error) {
	if e.err != nil {
		return model.Document{}, e.err
	}
	return e.load()
}

// Outline runs the full inference pipeline and returns the document's
// title and leveled outline.
func (e *Extractor) Outline() (model.DocumentOutline, error) {
	if e.err != nil {
		return model.DocumentOutline{}, e.err
	}
	doc, err := e.load()
	if err != nil {
		return model.DocumentOutline{}, err
	}
	return structure.NewAssemblerWithConfig(e.structure).Assemble(doc), nil
}

// Title runs title selection only and returns the inferred title.
func (e *Extractor) Title() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	doc, err := e.load()
	if err != nil {
		return "", err
	}
	selector := structure.NewTitleSelectorWithConfig(e.structure)
	return selector.SelectTitle(doc.FirstPage()), nil
}

// NeedsOCR reports whether the source's text layer is too thin to analyze
// and the file should go through image recognition instead.
func (e *Extractor) NeedsOCR() (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	doc, err := e.load()
	if err != nil {
		return false, err
	}
	return pdfspans.NeedsOCR(doc, e.extract), nil
}

func (e *Extractor) load() (model.Document, error) {
	if e.doc != nil {
		return *e.doc, nil
	}
	if e.filename == "" {
		return model.Document{}, fmt.Errorf("no filename specified")
	}
	return pdfspans.Extract(e.filename, e.extract)
}

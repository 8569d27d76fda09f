package model

import "strings"

// Span is one styled, positioned run of text extracted from a page. It is
// the normalized unit of input for structure inference: native PDF
// extraction and OCR both reduce their output to spans before analysis.
type Span struct {
	// Text is the raw text content of the run.
	Text string

	// Page is the 1-based page number the span appears on.
	Page int

	// FontSize is the font size in page units. Zero (or negative) means
	// no size evidence is available; such spans are still analyzed using
	// pattern evidence alone.
	FontSize float64

	// FontName is the reported font name, when the producer knows it.
	// OCR-derived spans typically carry a synthetic name.
	FontName string

	// Bold and Italic are style flags as reported by the producer.
	Bold   bool
	Italic bool

	// BBox is the span's bounding box in page coordinates.
	BBox BBox

	// Confidence is the recognition confidence for OCR-derived spans
	// (Tesseract reports 0-100). Zero means native extraction, where
	// confidence does not apply.
	Confidence float64
}

// TrimmedText returns the span text with surrounding whitespace removed.
func (s Span) TrimmedText() string {
	return strings.TrimSpace(s.Text)
}

// HasSizeEvidence reports whether the span carries a usable font size.
func (s Span) HasSizeEvidence() bool {
	return s.FontSize > 0
}

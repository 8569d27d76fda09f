// Package contour infers document structure from positioned text spans:
// a title and a hierarchical H1/H2/H3 outline with page numbers, derived
// purely from layout signals (font sizes, boldness, position, and text
// patterns). No embedded table of contents or bookmark metadata is read.
//
// Basic usage:
//
//	outline, err := contour.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, err := contour.Open("report.pdf").
//	    MaxPages(10).
//	    MinHeadingScore(3).
//	    Outline()
//
// Spans produced elsewhere (for example by OCR) can be analyzed directly:
//
//	outline, err := contour.FromDocument(doc).Outline()
//
// For lower-level control the pdfspans, structure, ocr, and export
// packages are also available.
package contour

import (
	"github.com/tsawler/contour/model"
)

// Open prepares a PDF file for structure inference and returns an
// Extractor for fluent configuration. The file is not read until a
// terminal operation is called.
//
// Example:
//
//	outline, err := contour.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename:  filename,
		structure: defaultStructureConfig(),
		extract:   defaultExtractConfig(),
	}
}

// FromDocument analyzes an already extracted span collection. This is the
// entry point for OCR output or spans produced by another extractor.
//
// Example:
//
//	outline, err := contour.FromDocument(doc).Outline()
func FromDocument(doc model.Document) *Extractor {
	return &Extractor{
		doc:       &doc,
		structure: defaultStructureConfig(),
		extract:   defaultExtractConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := contour.Must(contour.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

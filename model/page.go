package model

import "strings"

// Page holds the extracted spans for one document page, plus the raw
// extracted text used by callers to judge extraction quality.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Spans are the positioned text runs on the page, in extraction order.
	Spans []Span

	// RawText is the plain extracted text of the page. It is not used by
	// structure inference itself; callers inspect it to decide whether an
	// OCR fallback is warranted.
	RawText string
}

// TextLength returns the length of the page's trimmed raw text.
func (p Page) TextLength() int {
	return len(strings.TrimSpace(p.RawText))
}

// Document is an ordered sequence of pages from a single source document.
type Document struct {
	Pages []Page
}

// SpanCount returns the total number of spans across all pages.
func (d Document) SpanCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Spans)
	}
	return n
}

// FirstPage returns the first page, or an empty page when the document
// has none.
func (d Document) FirstPage() Page {
	if len(d.Pages) == 0 {
		return Page{Number: 1}
	}
	return d.Pages[0]
}

package structure

import (
	"github.com/tsawler/contour/model"
)

// Assembler composes heading detection and title selection into the final
// document outline. It is a pure function of the input span collection:
// no external state, deterministic, and idempotent.
type Assembler struct {
	config   Config
	headings *HeadingDetector
	title    *TitleSelector
}

// NewAssembler creates an assembler with the default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with a custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{
		config:   config,
		headings: NewHeadingDetectorWithConfig(config),
		title:    NewTitleSelectorWithConfig(config),
	}
}

// Assemble infers the document's structure: the title from the first page
// and the leveled outline from every page, sorted into reading order.
//
// A document with no pages, or one where nothing classifies as a heading,
// yields an empty outline and the untitled sentinel rather than an error —
// downstream consumers always receive a well-formed result shape.
func (a *Assembler) Assemble(doc model.Document) model.DocumentOutline {
	result := model.DocumentOutline{
		Title:   UntitledTitle,
		Outline: []model.OutlineEntry{},
	}

	if len(doc.Pages) > 0 {
		result.Title = a.title.SelectTitle(doc.Pages[0])
	}

	if entries := a.headings.Detect(doc); len(entries) > 0 {
		result.Outline = entries
	}

	return result
}

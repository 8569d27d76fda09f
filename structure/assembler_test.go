package structure

import (
	"encoding/json"
	"testing"

	"github.com/tsawler/contour/model"
)

func TestAssembleEmptyDocument(t *testing.T) {
	a := NewAssembler()

	got := a.Assemble(model.Document{})
	if got.Title != UntitledTitle {
		t.Errorf("Title = %q, want %q", got.Title, UntitledTitle)
	}
	if got.Outline == nil {
		t.Error("Outline must be non-nil even for an empty document")
	}
	if len(got.Outline) != 0 {
		t.Errorf("Outline = %v, want empty", got.Outline)
	}
}

func TestAssemblePageWithoutSpans(t *testing.T) {
	a := NewAssembler()

	doc := model.Document{Pages: []model.Page{{Number: 1}}}
	got := a.Assemble(doc)
	if got.Title != UntitledTitle {
		t.Errorf("Title = %q, want %q", got.Title, UntitledTitle)
	}
	if len(got.Outline) != 0 {
		t.Errorf("Outline = %v, want empty", got.Outline)
	}
}

func TestAssembleSmallDocument(t *testing.T) {
	a := NewAssembler()

	doc := model.Document{Pages: []model.Page{
		{Number: 1, Spans: []model.Span{
			makeSpan("Understanding Document Layout", 1, 24, true, 100, 40),
			makeSpan("1. Introduction", 1, 16, true, 50, 200),
			makeSpan("plain paragraph body text that should not become anything at all", 1, 10, false, 120, 260),
		}},
		{Number: 2, Spans: []model.Span{
			makeSpan("1.1 Prior Approaches", 2, 14, false, 50, 80),
			makeSpan("2. Method", 2, 16, true, 50, 400),
		}},
	}}

	got := a.Assemble(doc)

	if got.Title != "Understanding Document Layout" {
		t.Errorf("Title = %q, want %q", got.Title, "Understanding Document Layout")
	}

	// The title span itself classifies as a large bold heading; nothing
	// removes it from the outline.
	want := []model.OutlineEntry{
		{Level: model.LevelH1, Text: "Understanding Document Layout", Page: 1},
		{Level: model.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: model.LevelH2, Text: "1.1 Prior Approaches", Page: 2},
		{Level: model.LevelH1, Text: "2. Method", Page: 2},
	}
	if len(got.Outline) != len(want) {
		t.Fatalf("Outline has %d entries, want %d: %+v", len(got.Outline), len(want), got.Outline)
	}
	for i, w := range want {
		e := got.Outline[i]
		if e.Level != w.Level || e.Text != w.Text || e.Page != w.Page {
			t.Errorf("Outline[%d] = {%v %q %d}, want {%v %q %d}",
				i, e.Level, e.Text, e.Page, w.Level, w.Text, w.Page)
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := NewAssembler()

	doc := model.Document{Pages: []model.Page{
		{Number: 1, Spans: []model.Span{
			makeSpan("Report Title", 1, 20, true, 100, 30),
			makeSpan("EXECUTIVE SUMMARY", 1, 14, true, 50, 120),
			makeSpan("1. Findings", 1, 16, true, 50, 300),
		}},
		{Number: 2, Spans: []model.Span{
			makeSpan("1.1 Detail", 2, 14, false, 50, 100),
		}},
	}}

	first, err := json.Marshal(a.Assemble(doc))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(a.Assemble(doc))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("Assemble is not deterministic:\n%s\n%s", first, second)
	}
}

func TestAssembleCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinHeadingScore = 100 // nothing can reach this

	a := NewAssemblerWithConfig(cfg)

	doc := model.Document{Pages: []model.Page{
		{Number: 1, Spans: []model.Span{
			makeSpan("Some Title", 1, 20, true, 100, 30),
			makeSpan("1. Introduction", 1, 16, true, 50, 200),
		}},
	}}

	got := a.Assemble(doc)
	if len(got.Outline) != 0 {
		t.Errorf("raised score gate should reject everything, got %+v", got.Outline)
	}
	if got.Title == UntitledTitle {
		t.Error("title selection should be unaffected by the heading score gate")
	}
}

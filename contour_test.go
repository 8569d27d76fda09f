package contour

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func span(text string, page int, size float64, bold bool, left, top float64) model.Span {
	return model.Span{
		Text:     text,
		Page:     page,
		FontSize: size,
		Bold:     bold,
		BBox:     model.NewBBox(left, top, left+float64(len(text))*size*0.5, top+size),
	}
}

func sampleDocument() model.Document {
	return model.Document{Pages: []model.Page{
		{Number: 1, Spans: []model.Span{
			span("Signal Processing Field Guide", 1, 24, true, 100, 40),
			span("1. Foundations", 1, 16, true, 50, 200),
			span("plain paragraph text that reads like ordinary body copy on the page", 1, 10, false, 120, 260),
		}},
		{Number: 2, Spans: []model.Span{
			span("1.1 Sampling", 2, 14, false, 50, 80),
		}},
	}}
}

func TestFromDocumentOutline(t *testing.T) {
	outline, err := FromDocument(sampleDocument()).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	if outline.Title != "Signal Processing Field Guide" {
		t.Errorf("Title = %q", outline.Title)
	}
	if len(outline.Outline) == 0 {
		t.Fatal("expected outline entries")
	}

	var found bool
	for _, e := range outline.Outline {
		if e.Text == "1.1 Sampling" && e.Level == model.LevelH2 && e.Page == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("missing expected H2 entry, got %+v", outline.Outline)
	}
}

func TestFromDocumentTitle(t *testing.T) {
	title, err := FromDocument(sampleDocument()).Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Signal Processing Field Guide" {
		t.Errorf("Title = %q", title)
	}
}

func TestChainingDoesNotMutate(t *testing.T) {
	base := FromDocument(sampleDocument())
	strict := base.MinHeadingScore(100)

	strictOutline, err := strict.Outline()
	if err != nil {
		t.Fatalf("strict Outline: %v", err)
	}
	if len(strictOutline.Outline) != 0 {
		t.Errorf("strict chain should reject all headings, got %+v", strictOutline.Outline)
	}

	baseOutline, err := base.Outline()
	if err != nil {
		t.Fatalf("base Outline: %v", err)
	}
	if len(baseOutline.Outline) == 0 {
		t.Error("base extractor must be unaffected by the derived chain")
	}
}

func TestInvalidOptionFailsFast(t *testing.T) {
	if _, err := FromDocument(sampleDocument()).MaxTitleLength(0).Outline(); err == nil {
		t.Error("expected an error for a non-positive title length")
	}
	if _, err := FromDocument(sampleDocument()).FallbackTiers(10, 14, 12).Outline(); err == nil {
		t.Error("expected an error for inverted fallback tiers")
	}
}

func TestNeedsOCR(t *testing.T) {
	needs, err := FromDocument(model.Document{}).NeedsOCR()
	if err != nil {
		t.Fatalf("NeedsOCR: %v", err)
	}
	if !needs {
		t.Error("an empty document should need OCR")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.pdf").Outline(); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestOpenEmptyFilename(t *testing.T) {
	if _, err := Open("").Document(); err == nil {
		t.Error("expected an error for an empty filename")
	}
}

func TestMust(t *testing.T) {
	title := Must(FromDocument(sampleDocument()).Title())
	if title == "" {
		t.Error("Must should pass the value through")
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(Open("testdata/does-not-exist.pdf").Outline())
}

package export

import (
	"strings"
	"testing"

	"github.com/tsawler/contour/model"
)

func sampleOutline() model.DocumentOutline {
	return model.DocumentOutline{
		Title: "Understanding AI",
		Outline: []model.OutlineEntry{
			{Level: model.LevelH1, Text: "Introduction", Page: 1},
			{Level: model.LevelH2, Text: "What is AI", Page: 2},
			{Level: model.LevelH3, Text: "History of AI", Page: 3},
			{Level: model.LevelH1, Text: "Conclusion", Page: 9},
		},
	}
}

func TestMarkdownTOC(t *testing.T) {
	got := MarkdownTOC(sampleOutline())

	want := `# Understanding AI

- Introduction (page 1)
  - What is AI (page 2)
    - History of AI (page 3)
- Conclusion (page 9)
`
	if got != want {
		t.Errorf("MarkdownTOC:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdownTOCEmpty(t *testing.T) {
	got := MarkdownTOC(model.DocumentOutline{})
	if got != "# Untitled Document\n" {
		t.Errorf("MarkdownTOC(empty) = %q", got)
	}
}

func TestHTMLTOC(t *testing.T) {
	got, err := HTMLTOC(sampleOutline())
	if err != nil {
		t.Fatalf("HTMLTOC: %v", err)
	}

	for _, want := range []string{
		"<h1>Understanding AI</h1>",
		"Introduction (page 1)",
		"<ul>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTMLTOC output missing %q:\n%s", want, got)
		}
	}
}

func TestHTMLTOCRoundTrip(t *testing.T) {
	original := sampleOutline()

	rendered, err := HTMLTOC(original)
	if err != nil {
		t.Fatalf("HTMLTOC: %v", err)
	}

	got, err := ParseHTMLTOC(strings.NewReader(rendered))
	if err != nil {
		t.Fatalf("ParseHTMLTOC: %v", err)
	}

	if got.Title != original.Title {
		t.Errorf("Title = %q, want %q", got.Title, original.Title)
	}
	if len(got.Outline) != len(original.Outline) {
		t.Fatalf("got %d entries, want %d: %+v", len(got.Outline), len(original.Outline), got.Outline)
	}
	for i, want := range original.Outline {
		e := got.Outline[i]
		if e.Level != want.Level || e.Text != want.Text || e.Page != want.Page {
			t.Errorf("Outline[%d] = {%v %q %d}, want {%v %q %d}",
				i, e.Level, e.Text, e.Page, want.Level, want.Text, want.Page)
		}
	}
}

func TestParseHTMLTOCHandMade(t *testing.T) {
	input := `<html><body>
<h1>Manual Doc</h1>
<ul>
<li>First (page 1)
<ul><li>Nested (page 2)</li></ul>
</li>
<li>not an entry</li>
</ul>
</body></html>`

	got, err := ParseHTMLTOC(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseHTMLTOC: %v", err)
	}

	if got.Title != "Manual Doc" {
		t.Errorf("Title = %q", got.Title)
	}
	if len(got.Outline) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got.Outline), got.Outline)
	}
	if got.Outline[0].Level != model.LevelH1 || got.Outline[0].Text != "First" {
		t.Errorf("Outline[0] = %+v", got.Outline[0])
	}
	if got.Outline[1].Level != model.LevelH2 || got.Outline[1].Page != 2 {
		t.Errorf("Outline[1] = %+v", got.Outline[1])
	}
}

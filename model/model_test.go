package model

import (
	"encoding/json"
	"testing"
)

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 50)

	if got := b.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := b.Height(); got != 30 {
		t.Errorf("Height() = %v, want 30", got)
	}
	if got := b.Area(); got != 3000 {
		t.Errorf("Area() = %v, want 3000", got)
	}

	c := b.Center()
	if c.X != 60 || c.Y != 35 {
		t.Errorf("Center() = %+v, want (60, 35)", c)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 100, 100)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{50, 50}, true},
		{Point{0, 0}, true},
		{Point{100, 100}, true},
		{Point{101, 50}, false},
		{Point{50, -1}, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBBoxIntersection(t *testing.T) {
	a := NewBBox(0, 0, 100, 100)
	b := NewBBox(50, 50, 150, 150)

	if !a.Intersects(b) {
		t.Fatal("expected boxes to intersect")
	}

	inter := a.Intersection(b)
	want := NewBBox(50, 50, 100, 100)
	if inter != want {
		t.Errorf("Intersection = %+v, want %+v", inter, want)
	}

	far := NewBBox(200, 200, 300, 300)
	if a.Intersects(far) {
		t.Error("expected disjoint boxes not to intersect")
	}
	if got := a.Intersection(far); got != (BBox{}) {
		t.Errorf("Intersection of disjoint boxes = %+v, want zero box", got)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 10, 50, 20)
	b := NewBBox(60, 5, 100, 25)

	got := a.Union(b)
	want := NewBBox(0, 5, 100, 25)
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level HeadingLevel
		want  string
	}{
		{LevelNone, "none"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestHeadingLevelValid(t *testing.T) {
	if LevelNone.Valid() {
		t.Error("LevelNone should not be valid")
	}
	for _, l := range []HeadingLevel{LevelH1, LevelH2, LevelH3} {
		if !l.Valid() {
			t.Errorf("%s should be valid", l)
		}
	}
	if HeadingLevel(7).Valid() {
		t.Error("out-of-range level should not be valid")
	}
}

func TestHeadingLevelJSONRoundTrip(t *testing.T) {
	entry := OutlineEntry{Level: LevelH2, Text: "Background", Page: 3, Position: 42.5}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"level":"H2","text":"Background","page":3}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded OutlineEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Level != LevelH2 || decoded.Text != "Background" || decoded.Page != 3 {
		t.Errorf("round trip = %+v", decoded)
	}
	if decoded.Position != 0 {
		t.Errorf("Position should not survive serialization, got %v", decoded.Position)
	}
}

func TestHeadingLevelMarshalInvalid(t *testing.T) {
	if _, err := json.Marshal(LevelNone); err == nil {
		t.Error("expected error marshaling LevelNone")
	}
}

func TestParseHeadingLevel(t *testing.T) {
	if _, ok := ParseHeadingLevel("H4"); ok {
		t.Error("H4 should not parse")
	}
	level, ok := ParseHeadingLevel("H1")
	if !ok || level != LevelH1 {
		t.Errorf("ParseHeadingLevel(H1) = %v, %v", level, ok)
	}
}

func TestDocumentFirstPage(t *testing.T) {
	var empty Document
	if got := empty.FirstPage(); got.Number != 1 || len(got.Spans) != 0 {
		t.Errorf("FirstPage of empty document = %+v", got)
	}

	doc := Document{Pages: []Page{{Number: 1, Spans: []Span{{Text: "x", Page: 1}}}}}
	if got := doc.FirstPage(); len(got.Spans) != 1 {
		t.Errorf("FirstPage = %+v, want one span", got)
	}
}

func TestSpanHelpers(t *testing.T) {
	s := Span{Text: "  Hello  ", FontSize: 12}
	if got := s.TrimmedText(); got != "Hello" {
		t.Errorf("TrimmedText = %q", got)
	}
	if !s.HasSizeEvidence() {
		t.Error("expected size evidence for FontSize 12")
	}
	if (Span{FontSize: 0}).HasSizeEvidence() {
		t.Error("expected no size evidence for FontSize 0")
	}
}

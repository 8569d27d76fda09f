package model

import "fmt"

// HeadingLevel represents the hierarchical level of an outline entry.
// Only H1 through H3 are ever emitted; a span that fails every
// classification rule produces no entry at all.
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota
	LevelH1                // Main title / chapter
	LevelH2                // Major section
	LevelH3                // Subsection
)

// String returns the conventional label for the level ("H1".."H3").
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// Valid reports whether the level is one of the three emitted values.
func (l HeadingLevel) Valid() bool {
	return l >= LevelH1 && l <= LevelH3
}

// MarshalJSON encodes the level as its string label.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a string label back into a level.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	level, ok := ParseHeadingLevel(s)
	if !ok {
		return fmt.Errorf("invalid heading level %q", s)
	}
	*l = level
	return nil
}

// ParseHeadingLevel converts a label ("H1".."H3") into a HeadingLevel.
func ParseHeadingLevel(s string) (HeadingLevel, bool) {
	switch s {
	case "H1":
		return LevelH1, true
	case "H2":
		return LevelH2, true
	case "H3":
		return LevelH3, true
	default:
		return LevelNone, false
	}
}

// OutlineEntry is a finalized, leveled outline item.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`

	// Position is the vertical top coordinate of the source span, used
	// only for ordering entries within a page. It is not serialized.
	Position float64 `json:"-"`
}

// DocumentOutline is the final result of structure inference: a title and
// an ordered outline. Outline is always non-nil so serialization produces
// an empty array rather than null.
type DocumentOutline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

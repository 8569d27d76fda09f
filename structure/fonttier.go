package structure

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// TierProfile holds the per-document font-size thresholds that map sizes
// to heading levels. Thresholds are derived once per document from the
// observed candidate sizes, so the engine adapts to each document's own
// typographic scale instead of assuming absolute point sizes.
//
// A valid profile always satisfies H1 >= H2 >= H3.
type TierProfile struct {
	H1 float64
	H2 float64
	H3 float64
}

// Monotonic reports whether the thresholds are correctly ordered.
func (p TierProfile) Monotonic() bool {
	return p.H1 >= p.H2 && p.H2 >= p.H3
}

// LevelFor returns the heading level a font size falls into, or LevelNone
// when the size is below every threshold.
func (p TierProfile) LevelFor(size float64) model.HeadingLevel {
	switch {
	case size >= p.H1:
		return model.LevelH1
	case size >= p.H2:
		return model.LevelH2
	case size >= p.H3:
		return model.LevelH3
	default:
		return model.LevelNone
	}
}

// AnalyzeFontTiers derives tier thresholds from the font sizes of heading
// candidates collected across the whole document. Non-positive sizes must
// already be excluded by the caller.
//
//   - Three or more distinct sizes: the top three become the thresholds.
//   - Exactly two: H3 sits one point below the smaller size.
//   - Exactly one: H2 and H3 step down two points each, floored at 10
//     and 8 respectively.
//   - None: the fallback profile applies unchanged.
func AnalyzeFontTiers(sizes []float64, fallback TierProfile) TierProfile {
	distinct := distinctSizesDescending(sizes)

	switch {
	case len(distinct) >= 3:
		return TierProfile{H1: distinct[0], H2: distinct[1], H3: distinct[2]}
	case len(distinct) == 2:
		return TierProfile{H1: distinct[0], H2: distinct[1], H3: distinct[1] - 1}
	case len(distinct) == 1:
		// The floors keep thresholds sensible for typical body sizes, but
		// for very small base sizes they could rise above the base itself;
		// clamp so the profile stays monotonic.
		base := distinct[0]
		h2 := minFloat(maxFloat(base-2, 10), base)
		h3 := minFloat(maxFloat(base-4, 8), h2)
		return TierProfile{H1: base, H2: h2, H3: h3}
	default:
		return fallback
	}
}

// distinctSizesDescending returns the unique positive sizes, largest first.
func distinctSizesDescending(sizes []float64) []float64 {
	seen := make(map[float64]bool, len(sizes))
	var distinct []float64
	for _, s := range sizes {
		if s <= 0 || seen[s] {
			continue
		}
		seen[s] = true
		distinct = append(distinct, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))
	return distinct
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

package structure

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// Config holds the tunable parameters of the structure-inference engine.
type Config struct {
	// MaxHeadingLength is the maximum trimmed text length (in runes) for
	// a span to be considered a heading candidate.
	MaxHeadingLength int

	// MinHeadingScore is the minimum combined typography/pattern score a
	// span must reach to become a heading candidate.
	MinHeadingScore int

	// MaxTitleLength is the maximum length (in runes) of a cleaned title,
	// including the ellipsis appended on truncation.
	MaxTitleLength int

	// FallbackTiers is the tier profile used when no candidate carries
	// font-size evidence at all.
	FallbackTiers TierProfile
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxHeadingLength: 200,
		MinHeadingScore:  2,
		MaxTitleLength:   200,
		FallbackTiers:    TierProfile{H1: 16, H2: 14, H3: 12},
	}
}

// Candidate is a span that passed the pre-filter and scoring gate for
// potential heading status, together with the evidence that got it there.
type Candidate struct {
	// Span is the source span.
	Span model.Span

	// Text is the span's trimmed text.
	Text string

	// Score is the accumulated heading-likelihood score.
	Score int

	// Patterns are the textual patterns the text matched.
	Patterns []Pattern

	// NearLeftMargin is set when the span starts near the page's left edge.
	NearLeftMargin bool

	// ReasonableLength is set when the text length is in the typical
	// heading range.
	ReasonableLength bool
}

// Scoring thresholds. Font sizes above bodyFontSize suggest display text;
// left edges within leftMarginLimit of the page edge suggest a
// block-level heading rather than an inline run.
const (
	minCandidateLength = 2
	bodyFontSize       = 12.0
	leftMarginLimit    = 100.0
	headingLengthMin   = 5
	headingLengthMax   = 80
)

// HeadingDetector classifies spans into outline entries.
type HeadingDetector struct {
	config Config
}

// NewHeadingDetector creates a detector with the default configuration.
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{config: DefaultConfig()}
}

// NewHeadingDetectorWithConfig creates a detector with a custom configuration.
func NewHeadingDetectorWithConfig(config Config) *HeadingDetector {
	return &HeadingDetector{config: config}
}

// Detect runs heading detection across the whole document: candidates are
// gathered per page, tier thresholds derived from the full candidate pool,
// every candidate classified, and the results sorted into reading order
// (page ascending, then top coordinate ascending).
func (d *HeadingDetector) Detect(doc model.Document) []model.OutlineEntry {
	var candidates []Candidate
	for _, page := range doc.Pages {
		candidates = append(candidates, d.FindCandidates(page)...)
	}
	if len(candidates) == 0 {
		return nil
	}

	tiers := AnalyzeFontTiers(candidateSizes(candidates), d.config.FallbackTiers)

	var entries []model.OutlineEntry
	for _, c := range candidates {
		level, ok := d.Classify(c, tiers)
		if !ok {
			continue
		}
		entries = append(entries, model.OutlineEntry{
			Level:    level,
			Text:     c.Text,
			Page:     c.Span.Page,
			Position: c.Span.BBox.Top,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Page != entries[j].Page {
			return entries[i].Page < entries[j].Page
		}
		return entries[i].Position < entries[j].Position
	})

	return entries
}

// FindCandidates scores every span on a page and returns those that clear
// the candidate gate. Spans without font-size evidence still participate;
// they simply earn no size points and rely on patterns and position.
func (d *HeadingDetector) FindCandidates(page model.Page) []Candidate {
	var candidates []Candidate

	for _, span := range page.Spans {
		text := span.TrimmedText()
		length := runeLen(text)
		if length < minCandidateLength || length > d.config.MaxHeadingLength {
			continue
		}

		patterns := MatchPatterns(text)
		nearMargin := span.BBox.Left < leftMarginLimit
		goodLength := length >= headingLengthMin && length <= headingLengthMax

		score := 0
		if span.Bold {
			score += 2
		}
		if span.FontSize > bodyFontSize {
			score++
		}
		score += len(patterns)
		if nearMargin {
			score++
		}
		if goodLength {
			score++
		}

		if score < d.config.MinHeadingScore {
			continue
		}

		candidates = append(candidates, Candidate{
			Span:             span,
			Text:             text,
			Score:            score,
			Patterns:         patterns,
			NearLeftMargin:   nearMargin,
			ReasonableLength: goodLength,
		})
	}

	return candidates
}

// patternRules map unambiguous numbering and section-marker patterns
// directly to levels. They are consulted in order and the first match
// decides the level outright, overriding font-size evidence: explicit
// hierarchy markers in the text are stronger signals than typography.
var patternRules = []struct {
	pattern Pattern
	level   model.HeadingLevel
}{
	{PatternNumbered, model.LevelH1},
	{PatternSubNumbered, model.LevelH2},
	{PatternSubSubNumbered, model.LevelH3},
	{PatternSectionMarker, model.LevelH1},
}

// allCapsPromotionLimit bounds the length of all-caps text eligible for
// promotion from H3 to H2.
const allCapsPromotionLimit = 50

// Classify assigns a heading level to a candidate, or reports false when
// the candidate fails every rule and is not a heading after all.
//
// Rules run in strict priority order: pattern rules first, then a base
// level from the tier profile, then a style demotion for non-bold text
// (large non-bold body text should not be trusted at face value), and
// finally an all-caps promotion.
func (d *HeadingDetector) Classify(c Candidate, tiers TierProfile) (model.HeadingLevel, bool) {
	for _, rule := range patternRules {
		if hasPattern(c.Patterns, rule.pattern) {
			return rule.level, true
		}
	}

	level := tiers.LevelFor(c.Span.FontSize)
	if level == model.LevelNone {
		return model.LevelNone, false
	}

	if !c.Span.Bold {
		switch level {
		case model.LevelH1:
			level = model.LevelH2
		case model.LevelH2:
			level = model.LevelH3
		case model.LevelH3:
			return model.LevelNone, false
		}
	}

	if level == model.LevelH3 &&
		hasPattern(c.Patterns, PatternAllCaps) &&
		runeLen(c.Text) < allCapsPromotionLimit {
		level = model.LevelH2
	}

	return level, true
}

// candidateSizes collects the positive font sizes from the candidate pool.
func candidateSizes(candidates []Candidate) []float64 {
	sizes := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		if c.Span.FontSize > 0 {
			sizes = append(sizes, c.Span.FontSize)
		}
	}
	return sizes
}

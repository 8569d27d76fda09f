package structure

import (
	"regexp"
	"strings"
	"unicode"
)

// Pattern identifies a textual heading pattern. A span may match several
// patterns at once; each match contributes one point to the heading score.
type Pattern string

const (
	PatternNumbered       Pattern = "numbered"         // "1. Introduction"
	PatternSubNumbered    Pattern = "sub_numbered"     // "2.1 Background"
	PatternSubSubNumbered Pattern = "sub_sub_numbered" // "2.1.3 Details"
	PatternLettered       Pattern = "lettered"         // "A. Overview"
	PatternLowerLettered  Pattern = "lower_lettered"   // "a) first item"
	PatternAllCaps        Pattern = "all_caps"         // "EXECUTIVE SUMMARY"
	PatternTitleCase      Pattern = "title_case"       // "Related Work"
	PatternRoman          Pattern = "roman"            // "IV. Methods"
	PatternSectionMarker  Pattern = "section_marker"   // "Chapter 3 ..."
)

var (
	numberedRe       = regexp.MustCompile(`^\d+\.?\s+`)
	subNumberedRe    = regexp.MustCompile(`^\d+\.\d+\.?\s+`)
	subSubNumberedRe = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`)
	letteredRe       = regexp.MustCompile(`^[A-Z]\.?\s+`)
	lowerLetteredRe  = regexp.MustCompile(`^[a-z][\)\.]?\s+`)
	romanRe          = regexp.MustCompile(`^[IVX]+\.?\s+`)
	sectionMarkerRe  = regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\s+`)
)

// maxAllCapsWords bounds the all_caps pattern: longer all-uppercase runs
// are usually shouted body text or legal boilerplate, not headings.
const maxAllCapsWords = 8

// MatchPatterns reports every heading pattern the trimmed text matches.
// The returned slice preserves a fixed evaluation order so downstream
// scoring is deterministic.
func MatchPatterns(text string) []Pattern {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var matched []Pattern

	if numberedRe.MatchString(text) {
		matched = append(matched, PatternNumbered)
	}
	if subNumberedRe.MatchString(text) {
		matched = append(matched, PatternSubNumbered)
	}
	if subSubNumberedRe.MatchString(text) {
		matched = append(matched, PatternSubSubNumbered)
	}
	if letteredRe.MatchString(text) {
		matched = append(matched, PatternLettered)
	}
	if lowerLetteredRe.MatchString(text) {
		matched = append(matched, PatternLowerLettered)
	}
	if isAllCaps(text) && len(strings.Fields(text)) <= maxAllCapsWords {
		matched = append(matched, PatternAllCaps)
	}
	if isTitleCase(text) {
		matched = append(matched, PatternTitleCase)
	}
	if romanRe.MatchString(text) {
		matched = append(matched, PatternRoman)
	}
	if sectionMarkerRe.MatchString(text) {
		matched = append(matched, PatternSectionMarker)
	}

	return matched
}

// hasPattern reports whether p is among the matched patterns.
func hasPattern(patterns []Pattern, p Pattern) bool {
	for _, m := range patterns {
		if m == p {
			return true
		}
	}
	return false
}

// isAllCaps reports whether the text contains at least one cased letter
// and no lowercase letters.
func isAllCaps(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitleCase reports whether the text follows title-case capitalization:
// uppercase letters only follow uncased characters, lowercase letters only
// follow cased ones, and at least one cased letter is present.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

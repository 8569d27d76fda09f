package structure

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	ellipsisRuns = regexp.MustCompile(`\.{3,}`)
	dashRuns     = regexp.MustCompile(`-{3,}`)
)

// NormalizeWhitespace collapses all runs of whitespace into single spaces
// and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanText normalizes text content for analysis and output: Unicode NFC
// normalization, control character removal, whitespace collapsing, and
// squeezing of long punctuation runs. OCR output in particular arrives
// with combining characters and stray control bytes.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	s = NormalizeWhitespace(s)
	// Tabs and newlines are already collapsed; what remains is stray
	// control bytes from broken extraction.
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = ellipsisRuns.ReplaceAllString(s, "...")
	s = dashRuns.ReplaceAllString(s, "---")
	return s
}

// runeLen returns the number of runes in s. Length gates throughout the
// engine count characters, not bytes, so multi-byte scripts are not
// penalized.
func runeLen(s string) int {
	return len([]rune(s))
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package structure

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/contour/model"
)

// UntitledTitle is the sentinel returned when no title can be found. It
// is a valid terminal outcome, never an error.
const UntitledTitle = "Untitled Document"

// TitleStrategy is one independent single-page heuristic for proposing a
// title. Each strategy returns at most one candidate string; the selector
// merges candidates by summing the weights of every strategy that voted
// for the same text.
type TitleStrategy struct {
	Name   string
	Weight int
	Find   func(spans []model.Span) (string, bool)
}

// Title selection geometry thresholds.
const (
	fontSizeTolerance  = 0.1 // sizes within this of the max count as "largest"
	centerTolerance    = 0.2 // fraction of page width a center may deviate
	upperRegionRatio   = 0.3 // fraction of page height that counts as "upper"
	styleTopLimit      = 200 // bold text must start above this to be a title
	topStrategyLimit   = 100 // topmost strategy only looks above this
	defaultMeanSize    = 12
	titleLengthBonusLo = 5
	titleLengthBonusHi = 100
	titleLengthPenalty = 200
)

// TitleSelector picks the single best title candidate from a page.
type TitleSelector struct {
	config Config
}

// NewTitleSelector creates a selector with the default configuration.
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{config: DefaultConfig()}
}

// NewTitleSelectorWithConfig creates a selector with a custom configuration.
func NewTitleSelectorWithConfig(config Config) *TitleSelector {
	return &TitleSelector{config: config}
}

// strategies returns the voting heuristics in evaluation order. The order
// doubles as the tie-break: among equal scores, the text proposed first
// wins.
func (s *TitleSelector) strategies() []TitleStrategy {
	return []TitleStrategy{
		{Name: "font_size", Weight: 3, Find: findByFontSize},
		{Name: "position", Weight: 2, Find: findByPosition},
		{Name: "style", Weight: 2, Find: findByStyle},
		{Name: "top", Weight: 1, Find: findByTopPosition},
	}
}

// SelectTitle runs every strategy against the first page's spans, merges
// the candidates by score, and returns the cleaned winner. A page with no
// spans, or strategies that all come up empty, yields UntitledTitle.
func (s *TitleSelector) SelectTitle(page model.Page) string {
	if len(page.Spans) == 0 {
		return UntitledTitle
	}

	scores := make(map[string]int)
	var order []string

	for _, strat := range s.strategies() {
		text, ok := strat.Find(page.Spans)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		if _, seen := scores[text]; !seen {
			order = append(order, text)
		}
		scores[text] += strat.Weight
	}

	if len(order) == 0 {
		return UntitledTitle
	}

	for _, text := range order {
		length := runeLen(strings.TrimSpace(text))
		if length >= titleLengthBonusLo && length <= titleLengthBonusHi {
			scores[text]++
		} else if length > titleLengthPenalty {
			scores[text] -= 2
		}
		if looksLikeTitle(text) {
			scores[text] += 2
		}
	}

	best := order[0]
	for _, text := range order[1:] {
		if scores[text] > scores[best] {
			best = text
		}
	}

	return s.CleanTitle(best)
}

// findByFontSize returns the topmost span among those sharing the largest
// font size on the page.
func findByFontSize(spans []model.Span) (string, bool) {
	maxSize := 0.0
	for _, span := range spans {
		if span.FontSize > maxSize {
			maxSize = span.FontSize
		}
	}
	if maxSize <= 0 {
		return "", false
	}

	var largest []model.Span
	for _, span := range spans {
		if math.Abs(span.FontSize-maxSize) < fontSizeTolerance {
			largest = append(largest, span)
		}
	}
	return topmostText(largest)
}

// findByPosition returns the topmost span that is horizontally centered
// and sits in the upper region of the page. The upper region is measured
// against page height (the maximum bottom edge among spans); page width is
// approximated by the maximum right edge.
func findByPosition(spans []model.Span) (string, bool) {
	pageWidth := 0.0
	pageHeight := 0.0
	for _, span := range spans {
		if span.BBox.Right > pageWidth {
			pageWidth = span.BBox.Right
		}
		if span.BBox.Bottom > pageHeight {
			pageHeight = span.BBox.Bottom
		}
	}
	if pageWidth <= 0 {
		return "", false
	}

	pageCenter := pageWidth / 2
	tolerance := pageWidth * centerTolerance

	var centered []model.Span
	for _, span := range spans {
		center := (span.BBox.Left + span.BBox.Right) / 2
		if math.Abs(center-pageCenter) < tolerance && span.BBox.Top < pageHeight*upperRegionRatio {
			centered = append(centered, span)
		}
	}
	return topmostText(centered)
}

// boldFontKeywords are font-family name fragments that indicate a bold
// face even when the producer did not set the bold flag.
var boldFontKeywords = []string{"bold", "black", "heavy", "semibold", "demibold"}

// findByStyle returns the topmost bold span in the upper part of the page.
// Boldness comes from the style flag or from the font name.
func findByStyle(spans []model.Span) (string, bool) {
	var bold []model.Span
	for _, span := range spans {
		if (span.Bold || hasBoldFontName(span.FontName)) && span.BBox.Top < styleTopLimit {
			bold = append(bold, span)
		}
	}
	return topmostText(bold)
}

// findByTopPosition returns the topmost span near the page top whose font
// size is at least the page's mean size.
func findByTopPosition(spans []model.Span) (string, bool) {
	mean := defaultMeanSize * 1.0
	if len(spans) > 0 {
		total := 0.0
		for _, span := range spans {
			total += span.FontSize
		}
		mean = total / float64(len(spans))
	}

	var top []model.Span
	for _, span := range spans {
		if span.BBox.Top < topStrategyLimit && span.FontSize >= mean {
			top = append(top, span)
		}
	}
	return topmostText(top)
}

// topmostText returns the text of the span with the smallest top
// coordinate. Ties keep the earliest span in input order.
func topmostText(spans []model.Span) (string, bool) {
	if len(spans) == 0 {
		return "", false
	}
	best := spans[0]
	for _, span := range spans[1:] {
		if span.BBox.Top < best.BBox.Top {
			best = span
		}
	}
	return best.Text, true
}

// hasBoldFontName checks a font name for bold-family keywords.
func hasBoldFontName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range boldFontKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// titlePatterns are shapes that suggest real title text; nonTitlePatterns
// are shapes that rule it out regardless. A candidate "looks like a title"
// only when it matches at least one positive pattern and none of the
// negative ones.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z\s]+$`),  // initial capital, word text
	regexp.MustCompile(`^[A-Z\s]+$`),       // all caps with spaces
	regexp.MustCompile(`^\w+(\s+\w+)*$`),   // plain multi-word token run
}

var nonTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),        // bare number
	regexp.MustCompile(`^page\s+\d+`),  // running page marker
	regexp.MustCompile(`^chapter\s+\d+`), // bare chapter marker
	regexp.MustCompile(`^www\.`),       // URL
	regexp.MustCompile(`@`),            // email address
}

func looksLikeTitle(text string) bool {
	text = strings.TrimSpace(text)

	positive := false
	for _, re := range titlePatterns {
		if re.MatchString(text) {
			positive = true
			break
		}
	}
	if !positive {
		return false
	}

	lower := strings.ToLower(text)
	for _, re := range nonTitlePatterns {
		if re.MatchString(lower) {
			return false
		}
	}
	return true
}

// titlePrefixes are leading labels stripped from extracted titles.
var titlePrefixes = []string{"title:", "subject:", "document:"}

// CleanTitle normalizes a winning title candidate: whitespace collapse,
// repeated case-insensitive prefix stripping, and rune-safe truncation to
// MaxTitleLength including the ellipsis marker. Cleaning an already clean
// title returns it unchanged, so the operation is idempotent.
func (s *TitleSelector) CleanTitle(title string) string {
	title = NormalizeWhitespace(title)

	for {
		stripped := false
		lower := strings.ToLower(title)
		for _, prefix := range titlePrefixes {
			if strings.HasPrefix(lower, prefix) {
				title = strings.TrimSpace(title[len(prefix):])
				lower = strings.ToLower(title)
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}

	maxLen := s.config.MaxTitleLength
	if maxLen <= 0 {
		maxLen = DefaultConfig().MaxTitleLength
	}
	if runeLen(title) > maxLen {
		title = strings.TrimSpace(truncateRunes(title, maxLen-3))
		if !strings.HasSuffix(title, "...") {
			title += "..."
		}
	}

	if title == "" {
		return UntitledTitle
	}
	return title
}

package pdfspans

import (
	"math"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/contour/model"
)

// Run-grouping thresholds. The reader yields one Text per glyph run;
// consecutive runs on the same visual line in the same size belong to one
// span.
const (
	sizeTolerance = 0.1 // font size drift within one span
	lineTolerance = 2.0 // vertical drift within one span
)

// groupRuns assembles the reader's glyph runs into spans. Runs accumulate
// into the current span while the font size and baseline stay put; a jump
// in either starts a new span. Coordinates convert from PDF's bottom-left
// origin to the top-left origin used everywhere downstream.
func groupRuns(texts []pdflib.Text, pageHeight float64, page int) []model.Span {
	var spans []model.Span
	var cur *model.Span
	var curY float64

	flush := func() {
		if cur == nil {
			return
		}
		if strings.TrimSpace(cur.Text) != "" {
			spans = append(spans, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		top := pageHeight - (t.Y + t.FontSize)
		bottom := pageHeight - t.Y

		if cur != nil &&
			math.Abs(t.FontSize-cur.FontSize) <= sizeTolerance &&
			math.Abs(t.Y-curY) <= lineTolerance {
			cur.Text += t.S
			if right := t.X + t.W; right > cur.BBox.Right {
				cur.BBox.Right = right
			}
			continue
		}

		flush()
		span := model.Span{
			Text:     t.S,
			Page:     page,
			FontSize: t.FontSize,
			FontName: t.Font,
			Bold:     hasBoldName(t.Font),
			Italic:   hasItalicName(t.Font),
			BBox:     model.NewBBox(t.X, top, t.X+t.W, bottom),
		}
		cur = &span
		curY = t.Y
	}
	flush()

	return spans
}

var boldNameKeywords = []string{"bold", "black", "heavy", "semibold", "demibold"}

func hasBoldName(font string) bool {
	lower := strings.ToLower(font)
	for _, kw := range boldNameKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasItalicName(font string) bool {
	lower := strings.ToLower(font)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}

package ocr

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
)

// Word is one recognized token with its bounding box in image coordinates
// (origin top-left, y growing downward) and the engine's confidence in
// percent.
type Word struct {
	Text       string
	Left       float64
	Top        float64
	Right      float64
	Bottom     float64
	Confidence float64
}

// ReflowConfig tunes how recognized words are reassembled into line spans.
type ReflowConfig struct {
	// MinConfidence drops words the engine is unsure about. Percent.
	MinConfidence float64
	// LineTolerance is the vertical distance within which words belong
	// to the same line.
	LineTolerance float64
	// FontScale estimates font size from word box height.
	FontScale float64
	// MinFontSize floors the size estimate for thin boxes.
	MinFontSize float64
}

// DefaultReflowConfig returns the reflow settings tuned for 150-300 DPI
// page scans.
func DefaultReflowConfig() ReflowConfig {
	return ReflowConfig{
		MinConfidence: 30,
		LineTolerance: 10,
		FontScale:     0.7,
		MinFontSize:   8,
	}
}

// Reflow reassembles raw OCR words into line-level spans. Words are
// filtered by confidence, grouped into lines by vertical proximity, and
// merged left to right whenever the horizontal gap between neighbors is
// small relative to the character width. The result approximates the spans
// a native text layer would have produced, so the downstream structure
// analysis does not care which path the text arrived through.
func Reflow(words []Word, page int, cfg ReflowConfig) []model.Span {
	kept := make([]Word, 0, len(words))
	for _, w := range words {
		if w.Confidence < cfg.MinConfidence {
			continue
		}
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Top != kept[j].Top {
			return kept[i].Top < kept[j].Top
		}
		return kept[i].Left < kept[j].Left
	})

	var spans []model.Span
	for _, line := range groupLines(kept, cfg.LineTolerance) {
		spans = append(spans, mergeLine(line, page, cfg)...)
	}
	return spans
}

// groupLines splits vertically sorted words into lines. The line anchor is
// the first word's top; a word joins while its top stays within tolerance
// of the anchor.
func groupLines(words []Word, tolerance float64) [][]Word {
	var lines [][]Word
	var current []Word
	lineTop := 0.0

	for _, w := range words {
		if len(current) == 0 {
			current = []Word{w}
			lineTop = w.Top
			continue
		}
		if math.Abs(w.Top-lineTop) < tolerance {
			current = append(current, w)
			continue
		}
		lines = append(lines, current)
		current = []Word{w}
		lineTop = w.Top
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// mergeLine joins adjacent words of one line into spans. Words merge when
// the gap to the previous word is under twice the previous span's average
// character width; a larger gap starts a new span, which keeps columns and
// widely spaced header/footer fields apart.
func mergeLine(line []Word, page int, cfg ReflowConfig) []model.Span {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].Left < line[j].Left
	})

	var spans []model.Span
	cur := newLineSpan(line[0], page, cfg)

	for _, w := range line[1:] {
		avgCharWidth := cur.BBox.Width() / math.Max(float64(len([]rune(cur.Text))), 1)
		if w.Left-cur.BBox.Right < 2*avgCharWidth {
			cur.Text += " " + w.Text
			cur.BBox.Right = w.Right
			if size := estimateFontSize(w, cfg); size > cur.FontSize {
				cur.FontSize = size
			}
			continue
		}
		spans = append(spans, cur)
		cur = newLineSpan(w, page, cfg)
	}
	return append(spans, cur)
}

func newLineSpan(w Word, page int, cfg ReflowConfig) model.Span {
	return model.Span{
		Text:       w.Text,
		Page:       page,
		FontSize:   estimateFontSize(w, cfg),
		FontName:   "ocr",
		BBox:       model.NewBBox(w.Left, w.Top, w.Right, w.Bottom),
		Confidence: w.Confidence,
	}
}

// estimateFontSize derives a point-size stand-in from the word box height.
// OCR gives no typographic metadata, so box height scaled down is the best
// available signal for the font-tier analysis.
func estimateFontSize(w Word, cfg ReflowConfig) float64 {
	return math.Max((w.Bottom-w.Top)*cfg.FontScale, cfg.MinFontSize)
}

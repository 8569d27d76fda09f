package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileSummary records the outcome of processing one input file.
type FileSummary struct {
	File     string  `json:"file"`
	Title    string  `json:"title,omitempty"`
	Headings int     `json:"headings"`
	Seconds  float64 `json:"seconds"`
	UsedOCR  bool    `json:"used_ocr,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// BatchSummary aggregates the outcomes of a whole processing run.
type BatchSummary struct {
	Processed int           `json:"processed"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Seconds   float64       `json:"seconds"`
	Files     []FileSummary `json:"files"`
}

// NewFileSummary builds the per-file record from a processing outcome.
func NewFileSummary(file, title string, headings int, elapsed time.Duration, usedOCR bool, err error) FileSummary {
	s := FileSummary{
		File:     filepath.Base(file),
		Headings: headings,
		Seconds:  elapsed.Seconds(),
		UsedOCR:  usedOCR,
	}
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Title = title
	return s
}

// Summarize rolls individual file outcomes up into a batch summary.
func Summarize(files []FileSummary, elapsed time.Duration) BatchSummary {
	summary := BatchSummary{
		Processed: len(files),
		Seconds:   elapsed.Seconds(),
		Files:     files,
	}
	if summary.Files == nil {
		summary.Files = []FileSummary{}
	}
	for _, f := range files {
		if f.Error == "" {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// SaveSummary writes the batch summary as indented JSON.
func SaveSummary(path string, summary BatchSummary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

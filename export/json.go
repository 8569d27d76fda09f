// Package export serializes inferred document outlines: canonical JSON,
// markdown and HTML tables of contents, and batch processing summaries.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/contour/model"
)

// Output length caps. Titles and entry texts beyond these are truncated
// with a trailing ellipsis.
const (
	maxTitleLength = 200
	maxEntryLength = 500
)

// errorMessage is the fixed text written into error documents, so batch
// output files are distinguishable from real results.
const errorMessage = "Error: could not process document"

// Clean validates and normalizes an outline before serialization: the
// title is whitespace-collapsed, capped and defaulted; entries with
// invalid levels or page numbers below one are dropped; entry texts are
// collapsed and capped. The returned outline always has a non-nil entry
// slice, so it serializes as [] rather than null.
func Clean(outline model.DocumentOutline) model.DocumentOutline {
	title := collapse(outline.Title)
	if title == "" {
		title = "Untitled Document"
	}
	title = capText(title, maxTitleLength)

	entries := make([]model.OutlineEntry, 0, len(outline.Outline))
	for _, e := range outline.Outline {
		if !e.Level.Valid() || e.Page < 1 {
			continue
		}
		text := capText(collapse(e.Text), maxEntryLength)
		if text == "" {
			continue
		}
		entries = append(entries, model.OutlineEntry{
			Level: e.Level,
			Text:  text,
			Page:  e.Page,
		})
	}

	return model.DocumentOutline{Title: title, Outline: entries}
}

// WriteJSON writes the cleaned outline as indented JSON. HTML escaping is
// off so titles with ampersands or angle brackets round-trip verbatim.
func WriteJSON(w io.Writer, outline model.DocumentOutline) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Clean(outline)); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return nil
}

// MarshalJSON returns the cleaned outline as indented JSON bytes.
func MarshalJSON(outline model.DocumentOutline) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, outline); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveJSON writes the outline to a file, creating parent directories as
// needed.
func SaveJSON(path string, outline model.DocumentOutline) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return WriteJSON(f, outline)
}

// errorDocument is the JSON shape written when a file cannot be processed.
type errorDocument struct {
	Title   string               `json:"title"`
	Outline []model.OutlineEntry `json:"outline"`
	Error   string               `json:"error"`
}

// SaveErrorJSON writes a placeholder result for a failed file so every
// input in a batch yields an output, with the failure marked in-band.
func SaveErrorJSON(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(errorDocument{
		Title:   "Untitled Document",
		Outline: []model.OutlineEntry{},
		Error:   errorMessage,
	})
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capText truncates s to at most max runes, ellipsis included.
func capText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-3])) + "..."
}

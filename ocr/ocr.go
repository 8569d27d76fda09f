//go:build ocr

// Package ocr recognizes text in page images of scanned documents.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/contour/model"
)

// upscaleFactor is applied to page images before recognition. Tesseract
// reads small scans far better at double resolution; recognized
// coordinates are divided back so spans stay in the original image space.
const upscaleFactor = 2

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeWords performs OCR on image data and returns every recognized
// word with its bounding box and confidence, in Tesseract's raw order.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text:       b.Word,
			Left:       float64(b.Box.Min.X),
			Top:        float64(b.Box.Min.Y),
			Right:      float64(b.Box.Max.X),
			Bottom:     float64(b.Box.Max.Y),
			Confidence: b.Confidence,
		})
	}
	return words, nil
}

// RecognizePageSpans runs the full recognition pipeline for one page image:
// upscale, recognize words, map coordinates back to the original image
// space, and reflow the words into line-level spans.
func (c *Client) RecognizePageSpans(imageData []byte, page int, cfg ReflowConfig) ([]model.Span, error) {
	upscaled := true
	scaled, err := UpscaleImage(imageData, upscaleFactor)
	if err != nil {
		// Recognition on the original image still beats giving up.
		scaled = imageData
		upscaled = false
	}

	words, err := c.RecognizeWords(scaled)
	if err != nil {
		return nil, err
	}

	if upscaled {
		for i := range words {
			words[i].Left /= upscaleFactor
			words[i].Top /= upscaleFactor
			words[i].Right /= upscaleFactor
			words[i].Bottom /= upscaleFactor
		}
	}

	return Reflow(words, page, cfg), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// Package model defines the shared data types for document structure
// inference: positioned text spans, pages, and the outline produced by
// analysis. All geometry uses page coordinates with the origin at the
// top-left corner and Y increasing downward, matching the coordinate
// space produced by text extraction and OCR tooling.
package model

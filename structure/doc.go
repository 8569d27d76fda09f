// Package structure infers a document's logical structure from positioned
// text spans: a title plus a hierarchical outline of H1-H3 headings with
// page numbers.
//
// The engine has three stages. Heading candidates are gathered per span
// from typography and textual patterns, font-size tier thresholds are
// derived from the candidates' own size distribution, and each candidate
// is classified against an ordered rule list. Title selection runs
// independently over the first page using four weighted heuristics.
//
// Everything here is a pure computation over in-memory spans: no I/O, no
// shared state, and deterministic output for identical input.
package structure

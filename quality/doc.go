// Package quality gates OCR text blocks before they enter the output stream.
//
// The [Filter] combines three defenses against mis-recognized content:
//
//   - an alphanumeric-density check that rejects garbled blocks
//   - a line-length outlier check against a running per-document baseline,
//     which flags mis-recognized tables and full-width noise
//   - containment deduplication across the blocks of one page, which
//     resolves overlapping OCR crops that produced nested text
//
// The baseline is process-local mutable state scoped to one document run.
// Create one [Filter] per document and discard it when the run ends.
package quality

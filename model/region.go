package model

import "image"

// Region is a detected content area on a rendered page. Regions are produced
// by a layout detector and are immutable once detected. A page yields an
// ordered slice of regions with no uniqueness guarantee: duplicates and
// overlapping detections are expected and resolved downstream.
type Region struct {
	Type  string  // model-specific label, e.g. "Text", "Title", "List"
	Score float64 // detector confidence in [0, 1]
	Box   BBox
}

// Candidate pairs the OCR text of a region crop with its source. Candidates
// exist transiently during per-page processing and are discarded after
// filtering and deduplication.
type Candidate struct {
	Text  string
	Index int         // 1-based block index within the page
	Image image.Image // region crop, retained only in diagnostic preview mode
}

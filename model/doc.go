// Package model provides the shared data types for the page-processing
// pipeline.
//
// This package defines the geometric primitives and detection records that
// flow between the layout stages. All detector output and filtering
// operations are expressed in these types.
//
// # Geometry
//
// Coordinates live in rendered-page pixel space with the origin at the
// top-left corner and Y increasing downward, matching layout-detector
// output:
//
//   - [BBox] - corner-form bounding box with intersection, union, and
//     IoU calculations
//   - [Point] - 2D point
//
// # Detection Records
//
// A [Region] is one scored, labeled detection on a page. A [Candidate]
// carries the OCR text recognized from a region crop through quality
// filtering and deduplication.
package model

package model

import "math"

// Point represents a 2D point in page pixel space.
type Point struct {
	X, Y float64
}

// BBox represents a bounding box in rendered-page pixel space. The origin is
// the top-left corner of the page image, with Y increasing downward, matching
// the coordinates produced by layout detectors.
type BBox struct {
	X1 float64 // Left
	Y1 float64 // Top
	X2 float64 // Right
	Y2 float64 // Bottom
}

// NewBBox creates a bounding box from corner coordinates
func NewBBox(x1, y1, x2, y2 float64) BBox {
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X1
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X2
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y1
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y2
}

// Width returns the horizontal extent of the bounding box
func (b BBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the bounding box
func (b BBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	x1 := math.Max(b.X1, other.X1)
	y1 := math.Max(b.Y1, other.Y1)
	x2 := math.Min(b.X2, other.X2)
	y2 := math.Min(b.Y2, other.Y2)

	if x2 <= x1 || y2 <= y1 {
		return BBox{}
	}

	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X1: math.Min(b.X1, other.X1),
		Y1: math.Min(b.Y1, other.Y1),
		X2: math.Max(b.X2, other.X2),
		Y2: math.Max(b.Y2, other.Y2),
	}
}

// IoU calculates the Intersection-over-Union with another box.
// Returns a value between 0 and 1, where values near 1 indicate
// near-identical boxes. Used for duplicate detection.
func (b BBox) IoU(other BBox) float64 {
	interW := math.Min(b.X2, other.X2) - math.Max(b.X1, other.X1)
	interH := math.Min(b.Y2, other.Y2) - math.Max(b.Y1, other.Y1)
	if interW < 0 {
		interW = 0
	}
	if interH < 0 {
		interH = 0
	}
	interArea := interW * interH

	unionArea := b.Area() + other.Area() - interArea
	if unionArea == 0 {
		return 0
	}

	return interArea / unionArea
}

// Expand grows the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X1: b.X1 - margin,
		Y1: b.Y1 - margin,
		X2: b.X2 + margin,
		Y2: b.Y2 + margin,
	}
}

// Clamp clips the bounding box to the bounds of a width x height page image
func (b BBox) Clamp(width, height float64) BBox {
	return BBox{
		X1: math.Max(0, b.X1),
		Y1: math.Max(0, b.Y1),
		X2: math.Min(width, b.X2),
		Y2: math.Min(height, b.Y2),
	}
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

package model

import (
	"math"
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBox(t *testing.T) {
	bbox := NewBBox(10, 20, 110, 70)
	if bbox.X1 != 10 || bbox.Y1 != 20 || bbox.X2 != 110 || bbox.Y2 != 70 {
		t.Errorf("NewBBox() = %+v, want {10, 20, 110, 70}", bbox)
	}
}

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 110, 70)

	if bbox.Left() != 10 {
		t.Errorf("Left() = %v, want 10", bbox.Left())
	}
	if bbox.Right() != 110 {
		t.Errorf("Right() = %v, want 110", bbox.Right())
	}
	if bbox.Top() != 20 {
		t.Errorf("Top() = %v, want 20", bbox.Top())
	}
	if bbox.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", bbox.Bottom())
	}
	if bbox.Width() != 100 {
		t.Errorf("Width() = %v, want 100", bbox.Width())
	}
	if bbox.Height() != 50 {
		t.Errorf("Height() = %v, want 50", bbox.Height())
	}
}

func TestBBoxCenter(t *testing.T) {
	bbox := NewBBox(0, 0, 100, 50)
	center := bbox.Center()
	if center.X != 50 || center.Y != 25 {
		t.Errorf("Center() = %+v, want {50, 25}", center)
	}
}

func TestBBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want bool
	}{
		{"overlapping", NewBBox(0, 0, 50, 50), NewBBox(25, 25, 75, 75), true},
		{"touching edges", NewBBox(0, 0, 50, 50), NewBBox(50, 0, 100, 50), true},
		{"disjoint horizontal", NewBBox(0, 0, 50, 50), NewBBox(60, 0, 100, 50), false},
		{"disjoint vertical", NewBBox(0, 0, 50, 50), NewBBox(0, 60, 50, 100), false},
		{"contained", NewBBox(0, 0, 100, 100), NewBBox(25, 25, 75, 75), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxIntersection(t *testing.T) {
	a := NewBBox(0, 0, 50, 50)
	b := NewBBox(25, 25, 75, 75)

	got := a.Intersection(b)
	want := NewBBox(25, 25, 50, 50)
	if got != want {
		t.Errorf("Intersection() = %+v, want %+v", got, want)
	}

	disjoint := NewBBox(100, 100, 200, 200)
	if got := a.Intersection(disjoint); !got.IsEmpty() {
		t.Errorf("Intersection() of disjoint boxes = %+v, want empty", got)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 50, 50)
	b := NewBBox(25, 25, 75, 75)

	got := a.Union(b)
	want := NewBBox(0, 0, 75, 75)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestBBoxIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want float64
	}{
		{"identical", NewBBox(0, 0, 100, 100), NewBBox(0, 0, 100, 100), 1.0},
		{"disjoint", NewBBox(0, 0, 50, 50), NewBBox(100, 100, 200, 200), 0.0},
		{"half overlap", NewBBox(0, 0, 100, 100), NewBBox(0, 50, 100, 150), 1.0 / 3.0},
		{"zero area boxes", NewBBox(10, 10, 10, 10), NewBBox(10, 10, 10, 10), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.IoU(tt.b)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("IoU() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxIoU_NearDuplicate(t *testing.T) {
	// A one-pixel shift on a large box stays well above the 0.9
	// duplicate threshold.
	a := NewBBox(0, 0, 500, 300)
	b := NewBBox(1, 1, 501, 301)

	if got := a.IoU(b); got <= 0.9 {
		t.Errorf("IoU() of near-duplicates = %v, want > 0.9", got)
	}
}

func TestBBoxExpand(t *testing.T) {
	bbox := NewBBox(20, 20, 80, 80)
	got := bbox.Expand(10)
	want := NewBBox(10, 10, 90, 90)
	if got != want {
		t.Errorf("Expand(10) = %+v, want %+v", got, want)
	}
}

func TestBBoxClamp(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want BBox
	}{
		{"inside bounds", NewBBox(10, 10, 90, 90), NewBBox(10, 10, 90, 90)},
		{"past all edges", NewBBox(-5, -5, 150, 250), NewBBox(0, 0, 100, 200)},
		{"past right only", NewBBox(50, 50, 120, 100), NewBBox(50, 50, 100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Clamp(100, 200); got != tt.want {
				t.Errorf("Clamp(100, 200) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxValidity(t *testing.T) {
	valid := NewBBox(0, 0, 10, 10)
	if !valid.IsValid() {
		t.Error("expected valid box to report IsValid")
	}
	if valid.IsEmpty() {
		t.Error("expected valid box to not report IsEmpty")
	}

	degenerate := NewBBox(10, 10, 10, 20)
	if degenerate.IsValid() {
		t.Error("expected zero-width box to not report IsValid")
	}
	if !degenerate.IsEmpty() {
		t.Error("expected zero-width box to report IsEmpty")
	}
}

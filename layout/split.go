package layout

import (
	"image"
	"image/draw"
)

// SplitterConfig holds configuration for manual page splitting
type SplitterConfig struct {
	// Columns is the number of equal-width vertical strips the page is
	// cut into
	// Default: 1
	Columns int

	// HeaderHeight is the strip cropped from the top of the page, in
	// pixels at 72 DPI before render scaling
	// Default: 0
	HeaderHeight int

	// FooterHeight is the strip cropped from the bottom of the page, in
	// pixels at 72 DPI before render scaling
	// Default: 0
	FooterHeight int

	// Scale is the render scale the page image was produced at; header
	// and footer heights are multiplied by it
	// Default: 3
	Scale float64
}

// DefaultSplitterConfig returns sensible default configuration
func DefaultSplitterConfig() SplitterConfig {
	return SplitterConfig{
		Columns:      1,
		HeaderHeight: 0,
		FooterHeight: 0,
		Scale:        3,
	}
}

// Splitter slices a rendered page into column images without a layout
// model. Fixed header and footer strips are cropped away and the remaining
// band is cut into equal-width columns, the manual alternative to
// detector-driven region extraction.
type Splitter struct {
	config SplitterConfig
}

// NewSplitter creates a new splitter with default configuration
func NewSplitter() *Splitter {
	return &Splitter{
		config: DefaultSplitterConfig(),
	}
}

// NewSplitterWithConfig creates a splitter with custom configuration
func NewSplitterWithConfig(config SplitterConfig) *Splitter {
	return &Splitter{
		config: config,
	}
}

// Split returns one image per column in left-to-right order. The last
// column absorbs any width left over by integer division. When the header
// and footer crops meet or cross, no readable band remains and the result
// is empty.
func (s *Splitter) Split(img image.Image) []image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	cropTop := int(float64(s.config.HeaderHeight) * s.config.Scale)
	if cropTop > height {
		cropTop = height
	}
	cropBottom := int(float64(s.config.FooterHeight) * s.config.Scale)
	if cropBottom > height {
		cropBottom = height
	}
	if cropTop+cropBottom >= height {
		return nil
	}
	bandHeight := height - cropTop - cropBottom

	columns := s.config.Columns
	if columns < 1 {
		columns = 1
	}
	colWidth := width / columns

	var cols []image.Image
	for i := 0; i < columns; i++ {
		left := i * colWidth
		right := (i + 1) * colWidth
		if i == columns-1 {
			right = width
		}

		col := image.NewRGBA(image.Rect(0, 0, right-left, bandHeight))
		draw.Draw(col, col.Bounds(), img,
			image.Pt(bounds.Min.X+left, bounds.Min.Y+cropTop), draw.Src)
		cols = append(cols, col)
	}

	return cols
}

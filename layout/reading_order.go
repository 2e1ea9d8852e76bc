package layout

import (
	"image"
	"image/draw"
	"sort"

	"github.com/tsawler/recital/model"
)

// OrderConfig holds configuration for reading order resolution
type OrderConfig struct {
	// Pad is the number of pixels each region box is expanded by on all
	// sides before cropping, clamped to the page image bounds
	// Default: 10
	Pad float64
}

// DefaultOrderConfig returns sensible default configuration
func DefaultOrderConfig() OrderConfig {
	return OrderConfig{
		Pad: 10,
	}
}

// OrderResolver assigns a left-to-right, top-to-bottom column order to
// reconciled regions and produces their crops.
//
// Column handling is a two-bin split at the page's horizontal midpoint: a
// standard two-column layout orders correctly, and single-column pages
// degenerate to one bin. Layouts with more columns are not supported.
type OrderResolver struct {
	config OrderConfig
}

// NewOrderResolver creates a new resolver with default configuration
func NewOrderResolver() *OrderResolver {
	return &OrderResolver{
		config: DefaultOrderConfig(),
	}
}

// NewOrderResolverWithConfig creates a resolver with custom configuration
func NewOrderResolverWithConfig(config OrderConfig) *OrderResolver {
	return &OrderResolver{
		config: config,
	}
}

// Order returns the regions sorted into reading order. Each region is
// binned left or right by comparing its horizontal center to the page
// midpoint; each bin is sorted by top coordinate; the left bin reads
// before the right bin.
func (r *OrderResolver) Order(regions []model.Region, pageWidth float64) []model.Region {
	if len(regions) == 0 {
		return nil
	}

	mid := pageWidth / 2

	var left, right []model.Region
	for _, reg := range regions {
		if reg.Box.Center().X < mid {
			left = append(left, reg)
		} else {
			right = append(right, reg)
		}
	}

	byTop := func(rs []model.Region) {
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].Box.Top() < rs[j].Box.Top()
		})
	}
	byTop(left)
	byTop(right)

	ordered := make([]model.Region, 0, len(regions))
	ordered = append(ordered, left...)
	ordered = append(ordered, right...)
	return ordered
}

// Crop returns one crop per region, in the order given. Boxes are expanded
// by the configured pad and clamped to the image bounds; regions that end
// up degenerate are skipped.
func (r *OrderResolver) Crop(img image.Image, regions []model.Region) []image.Image {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	var crops []image.Image
	for _, reg := range regions {
		box := reg.Box.Expand(r.config.Pad).Clamp(w, h)
		if !box.IsValid() {
			continue
		}

		rect := image.Rect(
			bounds.Min.X+int(box.X1),
			bounds.Min.Y+int(box.Y1),
			bounds.Min.X+int(box.X2),
			bounds.Min.Y+int(box.Y2),
		)

		crop := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		draw.Draw(crop, crop.Bounds(), img, rect.Min, draw.Src)
		crops = append(crops, crop)
	}

	return crops
}

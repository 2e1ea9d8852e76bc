package layout

import (
	"sort"

	"github.com/tsawler/recital/model"
)

// ReconcilerConfig holds configuration for layout reconciliation
type ReconcilerConfig struct {
	// IoUThreshold is the Intersection-over-Union above which two
	// detections are considered duplicates of each other
	// Default: 0.9
	IoUThreshold float64

	// AnchorHeightRatio is the fraction of page height above which a
	// region counts as an anchor regardless of its type
	// Default: 0.02
	AnchorHeightRatio float64

	// BandTop and BandBottom bound the fallback content band as fractions
	// of page height, used only when a page yields no anchors at all.
	// Regions whose vertical center falls outside the band are dropped.
	// Defaults: 0.10 and 0.90
	BandTop    float64
	BandBottom float64
}

// DefaultReconcilerConfig returns sensible default configuration
func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		IoUThreshold:      0.9,
		AnchorHeightRatio: 0.02,
		BandTop:           0.10,
		BandBottom:        0.90,
	}
}

// Reconciler resolves one page's raw detections into main-content text
// regions
type Reconciler struct {
	config ReconcilerConfig
}

// NewReconciler creates a new reconciler with default configuration
func NewReconciler() *Reconciler {
	return &Reconciler{
		config: DefaultReconcilerConfig(),
	}
}

// NewReconcilerWithConfig creates a reconciler with custom configuration
func NewReconcilerWithConfig(config ReconcilerConfig) *Reconciler {
	return &Reconciler{
		config: config,
	}
}

// Reconcile filters one page's detected regions down to the main-content
// text blocks. The steps run in order:
//
//  1. keep only regions whose type is in the spec's text-bearing set
//  2. deduplicate near-identical detections: regions are visited by
//     descending score and discarded when their IoU with any kept region
//     exceeds the threshold
//  3. partition survivors into anchors (anchor type, or taller than
//     AnchorHeightRatio of the page) and candidates
//  4. with anchors present, keep every anchor plus each candidate whose
//     vertical center lies within the anchors' vertical span; candidates
//     outside the span are header/footer noise
//  5. with no anchors, fall back to the fixed band: keep regions whose
//     vertical center lies strictly inside it
func (r *Reconciler) Reconcile(regions []model.Region, spec ModelSpec, pageWidth, pageHeight float64) []model.Region {
	var textRegions []model.Region
	for _, reg := range regions {
		if spec.HasTextType(reg.Type) {
			textRegions = append(textRegions, reg)
		}
	}

	unique := r.dedupe(textRegions)

	heightThreshold := pageHeight * r.config.AnchorHeightRatio

	var anchors, candidates []model.Region
	for _, reg := range unique {
		if spec.HasAnchorType(reg.Type) || reg.Box.Height() > heightThreshold {
			anchors = append(anchors, reg)
		} else {
			candidates = append(candidates, reg)
		}
	}

	if len(anchors) == 0 {
		return r.bandFilter(unique, pageHeight)
	}

	minY := anchors[0].Box.Top()
	maxY := anchors[0].Box.Bottom()
	for _, a := range anchors[1:] {
		if a.Box.Top() < minY {
			minY = a.Box.Top()
		}
		if a.Box.Bottom() > maxY {
			maxY = a.Box.Bottom()
		}
	}

	final := make([]model.Region, 0, len(unique))
	final = append(final, anchors...)
	for _, c := range candidates {
		cy := c.Box.Center().Y
		if cy < minY || cy > maxY {
			continue
		}
		final = append(final, c)
	}

	return final
}

// dedupe removes near-identical detections, preferring higher scores.
// Sorting is stable so equal scores keep detector order.
func (r *Reconciler) dedupe(regions []model.Region) []model.Region {
	sorted := make([]model.Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	var unique []model.Region
	for _, reg := range sorted {
		duplicate := false
		for _, kept := range unique {
			if reg.Box.IoU(kept.Box) > r.config.IoUThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, reg)
		}
	}

	return unique
}

// bandFilter keeps regions whose vertical center lies strictly inside the
// configured page band
func (r *Reconciler) bandFilter(regions []model.Region, pageHeight float64) []model.Region {
	top := pageHeight * r.config.BandTop
	bottom := pageHeight * r.config.BandBottom

	var kept []model.Region
	for _, reg := range regions {
		cy := reg.Box.Center().Y
		if cy > top && cy < bottom {
			kept = append(kept, reg)
		}
	}

	return kept
}

package layout

import "fmt"

// ModelSpec describes one layout-detector model family. The spec is pure
// configuration: class-id mappings vary between model builds and deployments,
// so they are supplied data, never assumptions baked into logic.
type ModelSpec struct {
	// LabelMap maps detector class ids to type labels
	LabelMap map[int]string

	// TextTypes are the labels that carry readable text
	TextTypes []string

	// AnchorTypes are the labels treated as strong structural evidence
	// when bounding the page's content band
	AnchorTypes []string

	// Threshold is the minimum detection score; detections scoring below
	// it are discarded
	Threshold float64
}

// HasTextType reports whether label is one of the spec's text-bearing types
func (s ModelSpec) HasTextType(label string) bool {
	for _, t := range s.TextTypes {
		if t == label {
			return true
		}
	}
	return false
}

// HasAnchorType reports whether label is one of the spec's anchor types
func (s ModelSpec) HasAnchorType(label string) bool {
	for _, t := range s.AnchorTypes {
		if t == label {
			return true
		}
	}
	return false
}

// Catalog maps model names to their specs
type Catalog map[string]ModelSpec

// DefaultCatalog returns the built-in model catalog.
//
// The prima label map follows the 1-based indexing observed in deployed
// builds of that model; verify it against the detector actually serving
// requests and override through configuration if it disagrees.
func DefaultCatalog() Catalog {
	return Catalog{
		"publaynet": {
			LabelMap: map[int]string{
				0: "Text",
				1: "Title",
				2: "List",
				3: "Table",
				4: "Figure",
			},
			TextTypes:   []string{"Text", "Title", "List"},
			AnchorTypes: []string{"Title", "List"},
			Threshold:   0.4,
		},
		"prima": {
			LabelMap: map[int]string{
				1: "TextRegion",
				2: "ImageRegion",
				3: "TableRegion",
				4: "MathsRegion",
				5: "SeparatorRegion",
				6: "OtherRegion",
			},
			TextTypes:   []string{"TextRegion", "TitleRegion"},
			AnchorTypes: []string{"TitleRegion"},
			Threshold:   0.5,
		},
	}
}

// Spec looks up the spec for a model name
func (c Catalog) Spec(name string) (ModelSpec, error) {
	spec, ok := c[name]
	if !ok {
		return ModelSpec{}, fmt.Errorf("unknown layout model %q", name)
	}
	return spec, nil
}

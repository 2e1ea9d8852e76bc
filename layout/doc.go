// Package layout reconciles raw layout-detector output into an ordered set
// of main-content text regions.
//
// A layout detector returns scored, labeled boxes for a rendered page with
// no uniqueness or ordering guarantees. This package turns that raw signal
// into a readable sequence:
//
//   - [Catalog] and [ModelSpec] describe detector model families as data:
//     class-id label maps, text-bearing labels, anchor labels, and score
//     thresholds
//   - [Reconciler] keeps text-bearing regions, removes near-duplicate
//     detections by Intersection-over-Union, and bounds the page's content
//     band using anchor regions so header and footer noise is rejected
//   - [OrderResolver] sorts surviving regions into reading order and crops
//     them from the page image
//   - [HTTPDetector] implements the detector seam against a detection
//     service endpoint
//   - [Splitter] is the manual fallback when no detector is available:
//     fixed header/footer crops and equal-width column strips
//
// # Typical Flow
//
//	spec, _ := catalog.Spec("publaynet")
//	regions, _ := detector.Detect(ctx, pageImage)
//	kept := reconciler.Reconcile(regions, spec, pageW, pageH)
//	ordered := resolver.Order(kept, pageW)
//	crops := resolver.Crop(pageImage, ordered)
package layout

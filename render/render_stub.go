//go:build !ocr

// Package render rasterizes PDF pages for OCR.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Open returns ErrNotEnabled. Rendering shares the OCR build tag because
// both lean on cgo libraries that pure-Go builds leave out.
//
// To enable rendering, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
package render

import (
	"image"
)

// Enabled reports whether page rendering support was compiled in
func Enabled() bool {
	return false
}

// Document is a stub renderer that returns errors for all operations.
type Document struct{}

// Open returns an error indicating rendering support is not enabled.
func Open(path string) (*Document, error) {
	return nil, ErrNotEnabled
}

// NumPages returns 0 on the stub document.
func (d *Document) NumPages() int {
	return 0
}

// Image returns an error indicating rendering support is not enabled.
func (d *Document) Image(page int, scale float64) (image.Image, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub document.
// It is safe to call on a nil document.
func (d *Document) Close() error {
	return nil
}

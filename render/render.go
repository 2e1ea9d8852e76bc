//go:build ocr

// Package render rasterizes PDF pages for OCR.
//
// The renderer wraps MuPDF via go-fitz, which needs cgo, so like the OCR
// engine it compiles only under the "ocr" build tag. Builds without the tag
// get a stub whose constructor returns ErrNotEnabled.
package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Enabled reports whether page rendering support was compiled in
func Enabled() bool {
	return true
}

// Document is an open PDF being rasterized page by page
type Document struct {
	doc *fitz.Document
}

// Open opens the PDF at path for rendering.
// The document should be closed when no longer needed.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	return &Document{doc: doc}, nil
}

// NumPages returns the page count
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// Image renders a page (0-indexed) at the given scale, where 1.0 is 72 DPI.
// Scale 3 gives roughly 216 DPI, enough for reliable OCR on body text.
func (d *Document) Image(page int, scale float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(page, 72*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page+1, err)
	}
	return img, nil
}

// Close releases the underlying document
func (d *Document) Close() error {
	if d.doc != nil {
		return d.doc.Close()
	}
	return nil
}

// Package extract pulls embedded text out of digitally created PDFs.
//
// Extraction reads the PDF text layer through ledongthuc/pdf, pure Go with
// no external tools, so it works in every build. Scanned documents have no
// text layer; those go through the render and ocr packages instead.
package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF whose text layer is being read
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path for text extraction.
// The document should be closed when no longer needed.
func Open(path string) (*Document, error) {
	if err := SniffPDF(path); err != nil {
		return nil, err
	}
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Document{file: file, reader: reader}, nil
}

// NumPages returns the page count
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Text returns the plain text of a page (0-indexed). Pages with no
// resolvable content return the empty string, not an error; the caller
// decides whether an empty page is worth reporting.
func (d *Document) Text(page int) (string, error) {
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", page+1, err)
	}
	return text, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

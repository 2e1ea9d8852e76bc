package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotPDF reports that a file does not carry the PDF signature.
var ErrNotPDF = errors.New("file is not a PDF")

// pdfMagic is the signature every PDF starts with.
var pdfMagic = []byte("%PDF")

// SniffPDF checks the file's leading bytes for the PDF signature. It
// catches misnamed files with a clear error before the parser produces a
// confusing one.
func SniffPDF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	magic := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	if !bytes.Equal(magic, pdfMagic) {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	return nil
}

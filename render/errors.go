package render

import "errors"

// ErrNotEnabled is returned when page rendering is requested but support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("page rendering not enabled; rebuild with -tags ocr")

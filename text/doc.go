// Package text repairs and restructures raw extracted page text.
//
// This package handles the textual half of the pipeline: normalizing the
// noisy output of PDF extraction or OCR, rebuilding paragraph boundaries
// from flat line sequences, and segmenting normalized text into sentences.
//
// # Normalization
//
// The [Normalizer] applies a fixed sequence of structural repairs to one
// page of raw text:
//
//	n := text.NewNormalizer()
//	clean := n.Normalize(raw)
//
// Hyphenated line breaks are joined, soft line wraps become spaces, blank
// runs collapse to single paragraph breaks, and a whole-word substitution
// table corrects known OCR confusions. Normalize is pure and idempotent.
//
// # Paragraph Segmentation
//
// The [Segmenter] rebuilds paragraphs from a sequence of raw lines using
// punctuation, casing, and list-marker cues:
//
//	s := text.NewSegmenter()
//	paragraphs := s.Paragraphs(lines)
//
// # Sentence Segmentation
//
// The [PunktSplitter] wraps a Punkt sentence tokenizer trained for English
// and yields one trimmed sentence per element.
package text

package text

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSplitter segments normalized text into sentences using the Punkt
// tokenizer with its English training data. One instance is safe to reuse
// across pages.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter creates a sentence splitter backed by the English Punkt
// model
func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &PunktSplitter{tokenizer: tokenizer}, nil
}

// Split returns the sentences of text in order, each trimmed of surrounding
// whitespace. Empty sentences are dropped.
func (s *PunktSplitter) Split(text string) []string {
	var out []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sentence.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

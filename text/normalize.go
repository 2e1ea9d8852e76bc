package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Substitution is one whole-word replacement applied during normalization.
// From matches whole words only (word-boundary bound), so corrections never
// touch unrelated words containing the same letter sequence.
type Substitution struct {
	From string
	To   string
}

// NormalizerConfig holds configuration for text normalization
type NormalizerConfig struct {
	// Substitutions are whole-word corrections for known OCR confusions,
	// applied in order after whitespace repair
	// Default: Al->AI, OpenAl->OpenAI, El->AI
	Substitutions []Substitution

	// FoldUnicode applies NFKC normalization before whitespace repair,
	// expanding typographic ligatures and compatibility characters that
	// PDF extraction tends to emit, and maps curly quotes and dashes to
	// their ASCII forms
	// Default: true
	FoldUnicode bool
}

// DefaultNormalizerConfig returns sensible default configuration
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		Substitutions: []Substitution{
			{From: "Al", To: "AI"},
			{From: "OpenAl", To: "OpenAI"},
			{From: "El", To: "AI"},
		},
		FoldUnicode: true,
	}
}

// Normalizer repairs raw extracted page text. The zero value is not usable;
// create one with NewNormalizer or NewNormalizerWithConfig.
type Normalizer struct {
	config        NormalizerConfig
	substitutions []substitution
}

type substitution struct {
	re *regexp.Regexp
	to string
}

var (
	hyphenBreakRe = regexp.MustCompile(`(\w+)-\n(\w+)`)
	newlineRunRe  = regexp.MustCompile(`\n+`)
	spaceRunRe    = regexp.MustCompile(` +`)

	typographicReplacer = strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", `"`, // left double quote
		"”", `"`, // right double quote
		"–", "-", // en dash
		"—", "-", // em dash
	)
)

// NewNormalizer creates a normalizer with default configuration
func NewNormalizer() *Normalizer {
	return NewNormalizerWithConfig(DefaultNormalizerConfig())
}

// NewNormalizerWithConfig creates a normalizer with custom configuration
func NewNormalizerWithConfig(config NormalizerConfig) *Normalizer {
	n := &Normalizer{config: config}
	for _, s := range config.Substitutions {
		n.substitutions = append(n.substitutions, substitution{
			re: regexp.MustCompile(`\b` + regexp.QuoteMeta(s.From) + `\b`),
			to: s.To,
		})
	}
	return n
}

// Normalize repairs one page of raw extracted text. The transformations run
// in a fixed order over the whole string:
//
//  1. hyphenated line breaks ("multi-\nline") join into one word
//  2. a single newline becomes a space (soft line wrap); runs of two or
//     more newlines collapse to one paragraph break
//  3. runs of spaces collapse to one space
//  4. the whole-word substitution table corrects OCR confusions
//  5. leading and trailing whitespace is stripped
//
// Normalize has no side effects and is idempotent on already-clean text.
func (n *Normalizer) Normalize(raw string) string {
	text := raw

	if n.config.FoldUnicode {
		text = typographicReplacer.Replace(text)
		text = norm.NFKC.String(text)
	}

	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")

	text = newlineRunRe.ReplaceAllStringFunc(text, func(run string) string {
		if run == "\n" {
			return " "
		}
		return "\n\n"
	})

	text = spaceRunRe.ReplaceAllString(text, " ")

	for _, s := range n.substitutions {
		text = s.re.ReplaceAllString(text, s.to)
	}

	return strings.TrimSpace(text)
}

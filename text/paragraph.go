package text

import (
	"regexp"
	"strings"
)

// SegmenterConfig holds configuration for paragraph segmentation
type SegmenterConfig struct {
	// ListItemPattern matches lines that open a list item
	// Default: numbered markers ("1." or "1)") and bullets ("•", "-")
	ListItemPattern string

	// HeadlinePattern matches all-caps headline lines. A line must also
	// carry at least MinHeadlineTokens tokens to count as a headline.
	// Default: upper-case letters, digits, whitespace, '-', ':' and ','
	HeadlinePattern string

	// MinHeadlineTokens is the minimum number of whitespace-separated
	// tokens for a headline match
	// Default: 2
	MinHeadlineTokens int

	// ContinuationWords are sentence openers that continue the previous
	// paragraph even when it ended with terminal punctuation. Matching is
	// exact-case: "And" continues, "AND" does not.
	ContinuationWords []string
}

// DefaultSegmenterConfig returns sensible default configuration
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		ListItemPattern:   `^\s*(\d+[.)]|[•\-])\s+`,
		HeadlinePattern:   `^[A-Z0-9\s\-:,]+$`,
		MinHeadlineTokens: 2,
		ContinuationWords: []string{
			"And", "But", "So", "Because", "At", "As",
			"Yet", "Though", "While", "When", "If",
		},
	}
}

// Segmenter rebuilds paragraph boundaries from a flat sequence of lines.
// The decision for each line depends only on the accumulated paragraph
// buffer's trailing content and the line's leading content.
type Segmenter struct {
	config       SegmenterConfig
	listItemRe   *regexp.Regexp
	headlineRe   *regexp.Regexp
	continuation map[string]bool
}

// NewSegmenter creates a new segmenter with default configuration
func NewSegmenter() *Segmenter {
	return NewSegmenterWithConfig(DefaultSegmenterConfig())
}

// NewSegmenterWithConfig creates a segmenter with custom configuration
func NewSegmenterWithConfig(config SegmenterConfig) *Segmenter {
	s := &Segmenter{
		config:       config,
		listItemRe:   regexp.MustCompile(config.ListItemPattern),
		headlineRe:   regexp.MustCompile(config.HeadlinePattern),
		continuation: make(map[string]bool, len(config.ContinuationWords)),
	}
	for _, w := range config.ContinuationWords {
		s.continuation[w] = true
	}
	return s
}

// Paragraphs assembles raw lines into paragraphs. Lines are trimmed as they
// arrive; a trailing hyphen on the buffer joins the next line with the
// hyphen removed; a blank line flushes the current paragraph; otherwise the
// boundary heuristics decide whether the line opens a new paragraph or
// continues the current one.
func (s *Segmenter) Paragraphs(lines []string) []string {
	var paragraphs []string
	var buffer string

	flush := func() {
		if p := strings.TrimSpace(buffer); p != "" {
			paragraphs = append(paragraphs, p)
		}
		buffer = ""
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		// Hyphenated word break: join with no space.
		if strings.HasSuffix(buffer, "-") && line != "" {
			buffer = buffer[:len(buffer)-1] + line
			continue
		}

		// Blank line signals a paragraph break.
		if line == "" {
			flush()
			continue
		}

		if buffer != "" && s.startsNewParagraph(buffer, line) {
			flush()
			buffer = line
		} else if buffer == "" {
			buffer = line
		} else {
			buffer = buffer + " " + line
		}
	}

	flush()
	return paragraphs
}

// startsNewParagraph decides whether line opens a new paragraph given the
// accumulated buffer so far
func (s *Segmenter) startsNewParagraph(buffer, line string) bool {
	if buffer == "" {
		return true
	}
	if s.listItemRe.MatchString(line) {
		return true
	}

	trimmed := strings.TrimSpace(line)
	if s.headlineRe.MatchString(trimmed) && len(strings.Fields(trimmed)) >= s.config.MinHeadlineTokens {
		return true
	}

	if endsWithTerminal(buffer) {
		fields := strings.Fields(trimmed)
		if len(fields) > 0 && !s.continuation[fields[0]] {
			return true
		}
	}

	return false
}

// endsWithTerminal reports whether text ends with sentence-terminal
// punctuation or a colon
func endsWithTerminal(text string) bool {
	switch {
	case strings.HasSuffix(text, "."),
		strings.HasSuffix(text, "?"),
		strings.HasSuffix(text, "!"),
		strings.HasSuffix(text, ":"):
		return true
	}
	return false
}

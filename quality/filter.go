package quality

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/tsawler/recital/model"
)

// Config holds configuration for text block quality filtering
type Config struct {
	// MinAlnumRatio is the minimum ratio of alphanumeric characters to all
	// non-whitespace characters for a block to pass the density check
	// Default: 0.5
	MinAlnumRatio float64

	// OutlierSigma is the number of standard deviations above the baseline
	// mean line length at which a block is rejected as an outlier
	// Default: 2.0
	OutlierSigma float64

	// MinSamples is the number of recorded line lengths the baseline must
	// exceed before the outlier check is enforced. Blocks seen earlier are
	// provisionally accepted regardless of length.
	// Default: 5
	MinSamples int

	// DisableLengthCheck turns off the line-length outlier check entirely,
	// for documents where it produces false positives
	// Default: false
	DisableLengthCheck bool
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinAlnumRatio:      0.5,
		OutlierSigma:       2.0,
		MinSamples:         5,
		DisableLengthCheck: false,
	}
}

// Filter evaluates OCR text blocks against density and line-length checks
// and deduplicates overlapping blocks. It owns the running line-length
// baseline for one document; it is not safe for concurrent use.
type Filter struct {
	config Config

	// incremental line-length statistics (Welford)
	count int
	mean  float64
	m2    float64
}

// NewFilter creates a new quality filter with default configuration
func NewFilter() *Filter {
	return &Filter{
		config: DefaultConfig(),
	}
}

// NewFilterWithConfig creates a quality filter with custom configuration
func NewFilterWithConfig(config Config) *Filter {
	return &Filter{
		config: config,
	}
}

// Evaluate decides whether a text block is acceptable. It returns the
// decision and a human-readable reason suitable for diagnostics. Evaluate
// does not update the baseline; call Record for blocks that are kept.
func (f *Filter) Evaluate(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, "Empty text"
	}

	// Density check: garbled OCR output is dominated by punctuation and
	// symbol characters.
	var alnum, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isAlnum(r) {
			alnum++
		}
	}
	if total == 0 {
		return false, "Whitespace only"
	}
	ratio := float64(alnum) / float64(total)
	if ratio < f.config.MinAlnumRatio {
		return false, fmt.Sprintf("Low alphanumeric density: %.2f", ratio)
	}

	lines := contentLines(text)
	if len(lines) == 0 {
		return false, "No valid lines"
	}

	var lengthSum int
	for _, l := range lines {
		lengthSum += len([]rune(l))
	}
	blockAvg := float64(lengthSum) / float64(len(lines))

	// Outlier check, only once the baseline has history. Significantly
	// longer lines indicate table rows or full-width noise; shorter is
	// fine (short paragraphs).
	if !f.config.DisableLengthCheck && f.count > f.config.MinSamples {
		mean, std := f.Stats()
		if blockAvg > mean+f.config.OutlierSigma*std {
			return false, fmt.Sprintf("Line length outlier: %.1f > %.1f + %g*%.1f",
				blockAvg, mean, f.config.OutlierSigma, std)
		}
	}

	return true, "OK"
}

// Record folds an accepted block's line lengths into the running baseline
func (f *Filter) Record(text string) {
	for _, l := range contentLines(text) {
		f.addSample(float64(len([]rune(l))))
	}
}

// Stats returns the baseline mean and standard deviation of recorded line
// lengths. Both are zero until the first sample is recorded.
func (f *Filter) Stats() (mean, std float64) {
	if f.count == 0 {
		return 0, 0
	}
	return f.mean, math.Sqrt(f.m2 / float64(f.count))
}

// SampleCount returns the number of line lengths recorded so far
func (f *Filter) SampleCount() int {
	return f.count
}

// Deduplicate filters out candidates whose text is contained in another
// candidate for the same page. Comparison uses lowercased,
// whitespace-collapsed text. When a kept block turns out to be a subset
// of a later candidate, the longer candidate replaces it.
//
// Processing is greedy in input order and compares against kept entries
// only, so the result depends on traversal order. Page block counts are
// single digits, so the O(n^2) scan is fine.
func (f *Filter) Deduplicate(candidates []model.Candidate) []model.Candidate {
	var accepted []model.Candidate

	for _, cand := range candidates {
		cNorm := normalizeForComparison(cand.Text)
		if cNorm == "" {
			continue
		}

		handled := false
		for i, acc := range accepted {
			aNorm := normalizeForComparison(acc.Text)

			// Candidate inside an accepted block: discard candidate.
			if strings.Contains(aNorm, cNorm) {
				handled = true
				break
			}

			// Accepted block inside candidate: prefer the longer text.
			if strings.Contains(cNorm, aNorm) {
				accepted[i] = cand
				handled = true
				break
			}
		}

		if !handled {
			accepted = append(accepted, cand)
		}
	}

	return accepted
}

// addSample updates the incremental mean and variance with one line length
func (f *Filter) addSample(n float64) {
	f.count++
	delta := n - f.mean
	f.mean += delta / float64(f.count)
	f.m2 += delta * (n - f.mean)
}

// contentLines returns the lines of text that contain non-whitespace,
// unmodified (lengths include original spacing)
func contentLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// normalizeForComparison lowercases text and collapses all whitespace runs
// to single spaces
func normalizeForComparison(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

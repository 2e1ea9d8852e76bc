package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FullTextName is the combined whole-document text file written next to
// the per-page files. It is a diagnostic artifact, not a page, and is
// never grouped.
const FullTextName = "full_text.txt"

// pageNumRe matches the page number immediately before the .txt extension
var pageNumRe = regexp.MustCompile(`(\d+)\.txt$`)

// Number parses the page number out of a text file name. The number is the
// digit run directly before the .txt extension; names without one return -1,
// which sorts ahead of every real page.
func Number(name string) int {
	m := pageNumRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// Page is one per-page text file
type Page struct {
	// Path is the file's location on disk
	Path string

	// Number is the page number parsed from the file name, or -1 when the
	// name carries none
	Number int
}

// Group is a consecutive run of pages rendered into one audio file. A group
// always holds at least one page.
type Group struct {
	Pages []Page
}

// First returns the group's first page
func (g Group) First() Page {
	return g.Pages[0]
}

// Last returns the group's last page
func (g Group) Last() Page {
	return g.Pages[len(g.Pages)-1]
}

// OutputName returns the audio file name for the group, with both page
// numbers zero-padded to pad digits
func (g Group) OutputName(pad int) string {
	return fmt.Sprintf("pages_%0*d-%0*d.mp3", pad, g.First().Number, pad, g.Last().Number)
}

// Collection is the grouped page set for one document
type Collection struct {
	// Groups are the fixed-size page groups in reading order
	Groups []Group

	// Pad is the zero-pad width for page numbers in output names, taken
	// from the highest page number present before any skip
	Pad int
}

// GrouperConfig holds configuration for page grouping
type GrouperConfig struct {
	// Size is the number of pages per group; the final group may be
	// shorter
	// Default: 3
	Size int

	// Skip is the number of pages dropped from the front after numeric
	// sort, before grouping
	// Default: 0
	Skip int
}

// DefaultGrouperConfig returns sensible default configuration
func DefaultGrouperConfig() GrouperConfig {
	return GrouperConfig{
		Size: 3,
		Skip: 0,
	}
}

// Grouper arranges a directory of per-page text files into groups
type Grouper struct {
	config GrouperConfig
}

// NewGrouper creates a new grouper with default configuration
func NewGrouper() *Grouper {
	return &Grouper{
		config: DefaultGrouperConfig(),
	}
}

// NewGrouperWithConfig creates a grouper with custom configuration
func NewGrouperWithConfig(config GrouperConfig) *Grouper {
	return &Grouper{
		config: config,
	}
}

// Collect lists the .txt files in dir, sorts them by page number, skips the
// configured number of leading pages, and chunks the rest into fixed-size
// groups. The combined [FullTextName] file is not a page and is left out.
// The pad width reflects the highest page number found, including skipped
// pages, so names stay stable whatever the skip. A directory with no text
// files yields an empty collection.
func (g *Grouper) Collect(dir string) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading page directory: %w", err)
	}

	var found []Page
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		if entry.Name() == FullTextName {
			continue
		}
		found = append(found, Page{
			Path:   filepath.Join(dir, entry.Name()),
			Number: Number(entry.Name()),
		})
	}
	if len(found) == 0 {
		return &Collection{}, nil
	}

	// ReadDir returns name order, so a stable sort keeps that order for
	// equal page numbers.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Number < found[j].Number
	})

	pad := len(strconv.Itoa(found[len(found)-1].Number))

	if g.config.Skip > 0 {
		if g.config.Skip >= len(found) {
			return &Collection{Pad: pad}, nil
		}
		found = found[g.config.Skip:]
	}

	size := g.config.Size
	if size < 1 {
		size = 1
	}

	var groups []Group
	for i := 0; i < len(found); i += size {
		end := i + size
		if end > len(found) {
			end = len(found)
		}
		groups = append(groups, Group{Pages: found[i:end]})
	}

	return &Collection{Groups: groups, Pad: pad}, nil
}

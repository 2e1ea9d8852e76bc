package recital

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/recital/audio"
	"github.com/tsawler/recital/layout"
	"github.com/tsawler/recital/model"
	"github.com/tsawler/recital/pages"
	"github.com/tsawler/recital/quality"
)

// Split extracts per-page text from pdfPath into outDir: one page_<n>.txt
// per page (1-based n, one sentence per line) plus a combined
// full_text.txt with pages separated by blank lines.
//
// With OCR disabled the text comes from the PDF's embedded text layer,
// and pages with no text are logged and skipped. With OCR enabled each
// page is rendered and recognized region by region, and every page
// produces a file, empty or not, so page numbering stays aligned with
// the document.
func (p *Pipeline) Split(ctx context.Context, pdfPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if p.cfg.OCR.Enabled {
		return p.splitOCR(ctx, pdfPath, outDir)
	}
	return p.splitDigital(pdfPath, outDir)
}

func (p *Pipeline) splitDigital(pdfPath, outDir string) error {
	doc, err := p.openText(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	var pageTexts []string
	for i := p.cfg.OCR.StartPage; i < doc.NumPages(); i++ {
		raw, err := doc.Text(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if raw == "" {
			p.logger.Warn("page is empty or unreadable", zap.Int("page", i+1))
			continue
		}
		cleaned := p.normalizer.Normalize(raw)
		pageTexts = append(pageTexts, cleaned)
		if err := p.writePageFile(outDir, i+1, cleaned); err != nil {
			return err
		}
	}
	return p.writeFullText(outDir, pageTexts)
}

func (p *Pipeline) splitOCR(ctx context.Context, pdfPath, outDir string) error {
	doc, err := p.openRender(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	filter := p.newQualityFilter()
	splitter := p.newPageSplitter()

	var pageTexts []string
	for i := p.cfg.OCR.StartPage; i < doc.NumPages(); i++ {
		_, crops, err := p.renderRegions(ctx, doc, splitter, i)
		if err != nil {
			return err
		}

		candidates, err := p.recognize(crops, i)
		if err != nil {
			return err
		}

		unique := filter.Deduplicate(candidates)
		if len(unique) < len(candidates) {
			p.logger.Info("deduplicated blocks",
				zap.Int("page", i+1),
				zap.Int("removed", len(candidates)-len(unique)))
		}

		var joined strings.Builder
		for _, cand := range unique {
			ok, reason := filter.Evaluate(cand.Text)
			if !ok {
				p.logger.Warn("skipped block",
					zap.Int("page", i+1),
					zap.String("reason", reason))
				continue
			}
			filter.Record(cand.Text)
			joined.WriteString(cand.Text)
			joined.WriteByte('\n')
		}

		cleaned := p.normalizer.Normalize(joined.String())
		pageTexts = append(pageTexts, cleaned)
		if err := p.writePageFile(outDir, i+1, cleaned); err != nil {
			return err
		}
	}
	return p.writeFullText(outDir, pageTexts)
}

// renderRegions renders one page and returns the full page image along
// with the region crops to recognize, either from the layout detector or
// from fixed header/footer crops and column strips.
func (p *Pipeline) renderRegions(ctx context.Context, doc PageRenderer, splitter *layout.Splitter, page int) (image.Image, []image.Image, error) {
	img, err := doc.Image(page, p.cfg.OCR.Scale)
	if err != nil {
		return nil, nil, err
	}

	if !p.cfg.Layout.Enabled {
		return img, splitter.Split(img), nil
	}

	regions, err := p.detector.Detect(ctx, img)
	if err != nil {
		return nil, nil, fmt.Errorf("page %d: layout detection: %w", page+1, err)
	}
	bounds := img.Bounds()
	kept := p.reconciler.Reconcile(regions, p.modelSpec, float64(bounds.Dx()), float64(bounds.Dy()))
	ordered := p.order.Order(kept, float64(bounds.Dx()))
	return img, p.order.Crop(img, ordered), nil
}

// recognize runs OCR over the crops of one page, assigning 1-based block
// indices in crop order.
func (p *Pipeline) recognize(crops []image.Image, page int) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, 0, len(crops))
	for k, img := range crops {
		recognized, err := p.engine.Recognize(img)
		if err != nil {
			return nil, fmt.Errorf("page %d block %d: %w", page+1, k+1, err)
		}
		candidates = append(candidates, model.Candidate{
			Text:  recognized,
			Index: k + 1,
		})
	}
	return candidates, nil
}

func (p *Pipeline) newQualityFilter() *quality.Filter {
	return quality.NewFilterWithConfig(quality.Config{
		MinAlnumRatio:      p.cfg.Quality.MinAlnumRatio,
		OutlierSigma:       p.cfg.Quality.OutlierSigma,
		MinSamples:         p.cfg.Quality.MinSamples,
		DisableLengthCheck: p.cfg.Quality.DisableLengthCheck,
	})
}

func (p *Pipeline) newPageSplitter() *layout.Splitter {
	return layout.NewSplitterWithConfig(layout.SplitterConfig{
		Columns:      p.cfg.OCR.Columns,
		HeaderHeight: p.cfg.OCR.HeaderHeight,
		FooterHeight: p.cfg.OCR.FooterHeight,
		Scale:        p.cfg.OCR.Scale,
	})
}

// writePageFile sentence-splits cleaned page text and writes it as one
// trimmed sentence per line.
func (p *Pipeline) writePageFile(outDir string, pageNum int, cleaned string) error {
	var b strings.Builder
	for _, sentence := range p.sentences.Split(cleaned) {
		b.WriteString(strings.TrimSpace(sentence))
		b.WriteByte('\n')
	}

	path := filepath.Join(outDir, fmt.Sprintf("page_%d.txt", pageNum))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	p.logger.Info("saved page", zap.String("file", filepath.Base(path)))
	return nil
}

func (p *Pipeline) writeFullText(dir string, pageTexts []string) error {
	path := filepath.Join(dir, pages.FullTextName)
	if err := os.WriteFile(path, []byte(strings.Join(pageTexts, "\n\n")), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	p.logger.Info("combined text saved", zap.String("file", path))
	return nil
}

// Group collects the per-page text files in dir into fixed-size groups
// following the configured group size and skip count.
func (p *Pipeline) Group(dir string) (*pages.Collection, error) {
	return p.grouper.Collect(dir)
}

// Speak synthesizes each text file into a sibling .mp3, then joins the
// results into outPath. Files whose .mp3 already exists skip synthesis
// but still join the output. A synthesis run that produces no audio is
// logged and skipped; any other tool failure aborts. An empty outPath
// skips the final concatenation. Speak returns the mp3 paths in input
// order.
func (p *Pipeline) Speak(ctx context.Context, txtFiles []string, outPath string) ([]string, error) {
	var mp3s []string
	for _, txtPath := range txtFiles {
		prefix := strings.TrimSuffix(txtPath, filepath.Ext(txtPath))
		mp3Path := prefix + ".mp3"

		if _, err := os.Stat(mp3Path); err == nil {
			p.logger.Info("mp3 already exists, skipping synthesis",
				zap.String("file", filepath.Base(mp3Path)))
			mp3s = append(mp3s, mp3Path)
			continue
		}

		content, err := os.ReadFile(txtPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", txtPath, err)
		}

		p.logger.Info("synthesizing",
			zap.String("from", filepath.Base(txtPath)),
			zap.String("to", filepath.Base(mp3Path)))
		wavPath, err := p.synth.Synthesize(ctx, string(content), prefix)
		if err != nil {
			if errors.Is(err, audio.ErrNoAudio) {
				p.logger.Warn("no audio produced", zap.String("file", filepath.Base(txtPath)))
				continue
			}
			return nil, err
		}

		if err := p.transcoder.EncodeMP3(ctx, wavPath, mp3Path); err != nil {
			return nil, err
		}
		if err := os.Remove(wavPath); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", wavPath, err)
		}
		mp3s = append(mp3s, mp3Path)
	}

	if outPath == "" || len(mp3s) == 0 {
		return mp3s, nil
	}

	p.logger.Info("merging",
		zap.Int("files", len(mp3s)),
		zap.String("output", outPath))
	if err := p.transcoder.Concat(ctx, mp3s, outPath); err != nil {
		return nil, err
	}
	return mp3s, nil
}

// Process runs the full pipeline on one PDF: split into per-page text
// under <tempdir>/<pdf stem>, group the pages, then speak one MP3 per
// group into the output directory. In dry-run mode the planned outputs
// are logged after splitting and no audio is generated.
func (p *Pipeline) Process(ctx context.Context, pdfPath string) error {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	tempDir := filepath.Join(p.cfg.Pipeline.TempDir, stem)
	outDir := p.cfg.Pipeline.OutDir
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	p.logger.Info("splitting PDF", zap.String("file", filepath.Base(pdfPath)))
	if err := p.Split(ctx, pdfPath, tempDir); err != nil {
		return err
	}

	collection, err := p.Group(tempDir)
	if err != nil {
		return err
	}
	if len(collection.Groups) == 0 {
		p.logger.Warn("no text files found to process")
		return nil
	}

	speed := p.cfg.Pipeline.Speed
	if speed < 0.5 || speed > 2.0 {
		return fmt.Errorf("speed must be between 0.5 and 2.0, got %g", speed)
	}

	if p.dryRun {
		p.logger.Info("dry run: planned MP3 outputs")
		for _, g := range collection.Groups {
			p.logger.Info("planned output",
				zap.String("file", filepath.Join(outDir, g.OutputName(collection.Pad))),
				zap.Strings("pages", pageNames(g)))
		}
		return nil
	}

	for _, g := range collection.Groups {
		outFile := filepath.Join(outDir, g.OutputName(collection.Pad))
		p.logger.Info("generating", zap.String("file", filepath.Base(outFile)))
		if _, err := p.Speak(ctx, pagePaths(g), outFile); err != nil {
			return err
		}
	}

	p.logger.Info("all done", zap.String("dir", outDir))
	return nil
}

func pagePaths(g pages.Group) []string {
	paths := make([]string, len(g.Pages))
	for i, pg := range g.Pages {
		paths[i] = pg.Path
	}
	return paths
}

func pageNames(g pages.Group) []string {
	names := make([]string, len(g.Pages))
	for i, pg := range g.Pages {
		names[i] = filepath.Base(pg.Path)
	}
	return names
}

// ReformatFile re-segments a text file with broken line breaks into
// paragraphs and writes the result to <stem>_cleaned.txt beside the
// input, each paragraph followed by a blank line. It returns the output
// path.
func (p *Pipeline) ReformatFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	paragraphs := p.segmenter.Paragraphs(strings.Split(string(content), "\n"))

	var b strings.Builder
	for _, para := range paragraphs {
		b.WriteString(strings.TrimSpace(para))
		b.WriteString("\n\n")
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_cleaned.txt"
	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	p.logger.Info("cleaned version saved", zap.String("file", outPath))
	return outPath, nil
}

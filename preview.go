package recital

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/recital/model"
)

// PreviewDirName is the subdirectory Preview writes into.
const PreviewDirName = "ocr_preview"

// PreviewPageLimit caps how many pages Preview processes.
const PreviewPageLimit = 5

// Preview runs the OCR path over at most five pages and saves the
// intermediate artifacts into <outDir>/ocr_preview for inspection before
// committing to a full run: each region crop as page_<n>_block_<k>.png,
// its recognized text as page_<n>_block_<k>.txt when accepted or
// page_<n>_block_<k>_REJECTED.txt annotated with the rejection reason,
// a stitched page_<n>.txt when any block passed, and a combined
// full_text.txt over the previewed pages. Block numbers count the crops
// of a page in reading order, so gaps reveal deduplicated blocks. A page
// where layout detection finds nothing saves the full render as
// page_<n>_debug_full.png instead.
//
// Preview requires OCR to be enabled in the configuration.
func (p *Pipeline) Preview(ctx context.Context, pdfPath, outDir string) error {
	if !p.cfg.OCR.Enabled {
		return errors.New("preview requires OCR to be enabled")
	}

	previewDir := filepath.Join(outDir, PreviewDirName)
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	doc, err := p.openRender(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	filter := p.newQualityFilter()
	splitter := p.newPageSplitter()

	start := p.cfg.OCR.StartPage
	limit := start + PreviewPageLimit
	if n := doc.NumPages(); limit > n {
		limit = n
	}
	p.logger.Info("dry run: saving preview pages",
		zap.Int("first", start+1),
		zap.Int("last", limit),
		zap.String("dir", previewDir))

	var pageTexts []string
	for i := start; i < limit; i++ {
		full, crops, err := p.renderRegions(ctx, doc, splitter, i)
		if err != nil {
			return err
		}
		if p.cfg.Layout.Enabled && len(crops) == 0 {
			p.logger.Warn("no text blocks detected, saving debug image", zap.Int("page", i+1))
			debugPath := filepath.Join(previewDir, fmt.Sprintf("page_%d_debug_full.png", i+1))
			if err := writePNG(debugPath, full); err != nil {
				return err
			}
			continue
		}

		candidates := make([]model.Candidate, 0, len(crops))
		for k, img := range crops {
			recognized, err := p.engine.Recognize(img)
			if err != nil {
				return fmt.Errorf("page %d block %d: %w", i+1, k+1, err)
			}
			candidates = append(candidates, model.Candidate{
				Text:  recognized,
				Index: k + 1,
				Image: img,
			})
		}

		unique := filter.Deduplicate(candidates)
		if len(unique) < len(candidates) {
			p.logger.Info("deduplicated blocks",
				zap.Int("page", i+1),
				zap.Int("removed", len(candidates)-len(unique)))
		}

		var accepted []string
		for _, cand := range unique {
			base := fmt.Sprintf("page_%d_block_%d", i+1, cand.Index)
			if err := writePNG(filepath.Join(previewDir, base+".png"), cand.Image); err != nil {
				return err
			}

			ok, reason := filter.Evaluate(cand.Text)
			p.logger.Info("block evaluated",
				zap.Int("page", i+1),
				zap.Int("block", cand.Index),
				zap.Bool("accepted", ok),
				zap.String("reason", reason))

			if ok {
				filter.Record(cand.Text)
				path := filepath.Join(previewDir, base+".txt")
				if err := os.WriteFile(path, []byte(cand.Text), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				accepted = append(accepted, cand.Text)
				continue
			}

			path := filepath.Join(previewDir, base+"_REJECTED.txt")
			body := fmt.Sprintf("REASON: %s\n\n%s", reason, cand.Text)
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}

		if len(accepted) > 0 {
			cleaned := p.normalizer.Normalize(strings.Join(accepted, "\n"))
			pageTexts = append(pageTexts, cleaned)
			pagePath := filepath.Join(previewDir, fmt.Sprintf("page_%d.txt", i+1))
			if err := os.WriteFile(pagePath, []byte(cleaned), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", pagePath, err)
			}
			p.logger.Info("saved stitched page", zap.String("file", filepath.Base(pagePath)))
		}
	}

	if len(pageTexts) > 0 {
		return p.writeFullText(previewDir, pageTexts)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

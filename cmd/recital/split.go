package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/recital"
)

var (
	useOCR       bool
	columns      int
	headerHeight int
	footerHeight int
	startPage    int
	ocrLanguage  string
	autoLayout   bool
	layoutModel  string
	layoutURL    string
	splitDry     bool
)

var splitCmd = &cobra.Command{
	Use:   "split <pdf> <output-dir>",
	Short: "Split a PDF into per-page text files",
	Long: `Split a PDF into per-page text files, one sentence per line, plus a
combined full_text.txt.

Digitally born PDFs need no flags: the embedded text layer is read
directly. Scanned PDFs need --ocr, with the page geometry described
either manually (--columns, --header-height, --footer-height) or by a
layout detection service (--auto-layout).

Examples:
  # Digital PDF
  recital split book.pdf temp_txt/book

  # Scanned two-column book with running headers
  recital split scan.pdf temp_txt/scan --ocr --columns 2 --header-height 40

  # Let a layout model find the text regions
  recital split scan.pdf temp_txt/scan --ocr --auto-layout --endpoint http://localhost:8001/detect

  # Preview what OCR would keep before a long run
  recital split scan.pdf temp_txt/scan --ocr --dry-run

With --dry-run the first five pages are processed into an ocr_preview
directory holding every region image and its recognized text, accepted
or rejected, so crop and filter settings can be tuned cheaply.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().BoolVar(&useOCR, "ocr", false, "Render and recognize pages instead of reading the text layer")
	splitCmd.Flags().IntVar(&columns, "columns", 1, "Column count for manual page splitting")
	splitCmd.Flags().IntVar(&headerHeight, "header-height", 0, "Header strip to crop, in pixels at 72 DPI")
	splitCmd.Flags().IntVar(&footerHeight, "footer-height", 0, "Footer strip to crop, in pixels at 72 DPI")
	splitCmd.Flags().IntVar(&startPage, "start-page", 0, "First page to process, 0-indexed")
	splitCmd.Flags().StringVar(&ocrLanguage, "language", "", "Tesseract language (overrides config)")
	splitCmd.Flags().BoolVar(&autoLayout, "auto-layout", false, "Find text regions with a layout detection service")
	splitCmd.Flags().StringVar(&layoutModel, "model", "", "Layout model: publaynet or prima (overrides config)")
	splitCmd.Flags().StringVar(&layoutURL, "endpoint", "", "Layout detection service URL (overrides config)")
	splitCmd.Flags().BoolVar(&splitDry, "dry-run", false, "Preview OCR output for the first pages only")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if useOCR {
		cfg.OCR.Enabled = true
	}
	if cmd.Flags().Changed("columns") {
		cfg.OCR.Columns = columns
	}
	if cmd.Flags().Changed("header-height") {
		cfg.OCR.HeaderHeight = headerHeight
	}
	if cmd.Flags().Changed("footer-height") {
		cfg.OCR.FooterHeight = footerHeight
	}
	if cmd.Flags().Changed("start-page") {
		cfg.OCR.StartPage = startPage
	}
	if ocrLanguage != "" {
		cfg.OCR.Language = ocrLanguage
	}
	if autoLayout {
		cfg.Layout.Enabled = true
	}
	if layoutModel != "" {
		cfg.Layout.Model = layoutModel
	}
	if layoutURL != "" {
		cfg.Layout.Endpoint = layoutURL
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := recital.New(cfg, recital.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer p.Close()

	ctx := context.Background()
	if splitDry {
		return p.Preview(ctx, args[0], args[1])
	}
	return p.Split(ctx, args[0], args[1])
}

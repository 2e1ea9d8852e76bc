package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/recital"
)

var (
	groupSize   int
	skipPages   int
	speechSpeed float64
	tempDir     string
	outDir      string
	processDry  bool
)

var processCmd = &cobra.Command{
	Use:   "process <pdf>",
	Short: "Run the full pipeline: split, group, and speak one PDF",
	Long: `Run the full pipeline on one PDF: split it into per-page text files
under the temp directory, group the pages, and synthesize one MP3 per
group into the output directory.

Examples:
  # Defaults: groups of 3 pages, MP3s under audio_output/
  recital process book.pdf

  # Larger groups, skip front matter, slower speech
  recital process book.pdf --group 5 --skip 2 --speed 0.9

  # Show the planned outputs without generating audio
  recital process book.pdf --dry-run

OCR and layout detection are configured through the configuration file;
see the split command to tune them interactively first.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().IntVarP(&groupSize, "group", "g", 3, "Pages per output MP3")
	processCmd.Flags().IntVar(&skipPages, "skip", 0, "Leading pages to leave out")
	processCmd.Flags().Float64Var(&speechSpeed, "speed", 1.0, "Speech speed, between 0.5 and 2.0")
	processCmd.Flags().StringVar(&tempDir, "temp-dir", "", "Directory for intermediate text files (overrides config)")
	processCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for generated MP3s (overrides config)")
	processCmd.Flags().BoolVar(&processDry, "dry-run", false, "Plan the outputs without generating audio")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("group") {
		cfg.Pipeline.GroupSize = groupSize
	}
	if cmd.Flags().Changed("skip") {
		cfg.Pipeline.Skip = skipPages
	}
	if cmd.Flags().Changed("speed") {
		cfg.Pipeline.Speed = speechSpeed
	}
	if tempDir != "" {
		cfg.Pipeline.TempDir = tempDir
	}
	if outDir != "" {
		cfg.Pipeline.OutDir = outDir
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := recital.New(cfg,
		recital.WithLogger(logger),
		recital.WithDryRun(processDry),
	)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer p.Close()

	return p.Process(context.Background(), args[0])
}

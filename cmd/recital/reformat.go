package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/recital"
)

var reformatCmd = &cobra.Command{
	Use:   "reformat <txt-file>",
	Short: "Rebuild paragraphs in a text file with broken line breaks",
	Long: `Rebuild paragraph boundaries in a text file whose lines were hard
wrapped, as extracted PDF text usually is. The result is written next
to the input as <name>_cleaned.txt, one paragraph per block.

Example:
  recital reformat temp_txt/book/full_text.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReformat,
}

func runReformat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	outPath, err := p.ReformatFile(args[0])
	if err != nil {
		return err
	}
	fmt.Println(outPath)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/recital"
)

var outputFile string

var speakCmd = &cobra.Command{
	Use:   "speak <txt-file-or-dir>...",
	Short: "Synthesize text files into MP3 audio",
	Long: `Synthesize text files into MP3s, one per input file, optionally merged
into a single output. Directory arguments expand to the .txt files they
contain, in name order. Files whose MP3 already exists are not
synthesized again but still join the merged output.

Examples:
  # One MP3 per page file, no merge
  recital speak temp_txt/book/page_1.txt temp_txt/book/page_2.txt

  # A whole directory merged into one file
  recital speak temp_txt/book --output book.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Merge the generated MP3s into this file")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	files, err := expandTextArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no text files found in %v", args)
	}

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

	_, err = p.Speak(context.Background(), files, outputFile)
	return err
}

// expandTextArgs resolves each argument to text files: directories expand
// to the .txt files they contain in name order, anything else passes
// through as given.
func expandTextArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.txt"))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// Package recital turns PDF documents into spoken audio.
//
// A document moves through three stages. Split extracts per-page text,
// either from the PDF's embedded text layer or, for scanned documents,
// by rendering each page and running OCR over layout-detected regions or
// fixed column strips. Group collects the per-page text files into
// fixed-size groups. Speak synthesizes each group into a single MP3.
//
// Basic usage:
//
//	cfg := config.Default()
//	p, err := recital.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer p.Close()
//	err = p.Process(context.Background(), "book.pdf")
//
// With options:
//
//	p, err := recital.New(cfg,
//	    recital.WithLogger(logger),
//	    recital.WithDryRun(true),
//	)
//
// The external tools the pipeline drives (Tesseract, a layout detection
// service, a TTS command, ffmpeg) sit behind small interfaces, so each
// stage can also be exercised with substitutes. OCR and page rendering
// are compiled in only under the "ocr" build tag; a pipeline configured
// for OCR fails fast at construction when the binary lacks them.
package recital

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"go.uber.org/zap"

	"github.com/tsawler/recital/audio"
	"github.com/tsawler/recital/config"
	"github.com/tsawler/recital/extract"
	"github.com/tsawler/recital/layout"
	"github.com/tsawler/recital/model"
	"github.com/tsawler/recital/ocr"
	"github.com/tsawler/recital/pages"
	"github.com/tsawler/recital/render"
	"github.com/tsawler/recital/text"
)

// OCREngine recognizes the text in a page or region image.
type OCREngine interface {
	Recognize(img image.Image) (string, error)
}

// RegionDetector locates content regions in a rendered page image.
type RegionDetector interface {
	Detect(ctx context.Context, img image.Image) ([]model.Region, error)
}

// PageRenderer rasterizes the pages of an open document. Page numbers
// are 0-indexed; scale 1.0 renders at 72 DPI.
type PageRenderer interface {
	NumPages() int
	Image(page int, scale float64) (image.Image, error)
	Close() error
}

// TextSource reads the embedded text layer of an open document. Page
// numbers are 0-indexed.
type TextSource interface {
	NumPages() int
	Text(page int) (string, error)
	Close() error
}

// SentenceSplitter splits prose into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// Synthesizer converts text to speech and returns the path of the wav
// file it produced.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPrefix string) (string, error)
}

// Transcoder converts and joins audio files.
type Transcoder interface {
	EncodeMP3(ctx context.Context, wavPath, mp3Path string) error
	Concat(ctx context.Context, files []string, outPath string) error
}

// Pipeline orchestrates the split, group, and speak stages for one
// configuration. It is not safe for concurrent use: the OCR quality
// baseline and the external tools it drives are inherently sequential.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger
	dryRun bool

	normalizer *text.Normalizer
	segmenter  *text.Segmenter
	sentences  SentenceSplitter
	grouper    *pages.Grouper
	reconciler *layout.Reconciler
	order      *layout.OrderResolver
	modelSpec  layout.ModelSpec

	engine       OCREngine
	engineCloser io.Closer
	detector     RegionDetector
	synth        Synthesizer
	transcoder   Transcoder

	openText   func(path string) (TextSource, error)
	openRender func(path string) (PageRenderer, error)
}

// New creates a Pipeline for the given configuration. A nil cfg uses the
// defaults. New fails immediately when the configuration asks for a
// capability the binary cannot provide: OCR without the "ocr" build tag,
// or layout detection without an endpoint.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	sentences, err := text.NewPunktSplitter()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	p := &Pipeline{
		cfg:        cfg,
		logger:     zap.NewNop(),
		normalizer: text.NewNormalizer(),
		segmenter:  text.NewSegmenter(),
		sentences:  sentences,
		reconciler: layout.NewReconciler(),
		order:      layout.NewOrderResolver(),
		grouper: pages.NewGrouperWithConfig(pages.GrouperConfig{
			Size: cfg.Pipeline.GroupSize,
			Skip: cfg.Pipeline.Skip,
		}),
	}

	for _, opt := range opts {
		opt(p)
	}

	if cfg.OCR.Enabled {
		if p.engine == nil {
			client, err := ocr.New()
			if err != nil {
				return nil, fmt.Errorf("OCR requested but unavailable: %w", err)
			}
			if cfg.OCR.Language != "" {
				if err := client.SetLanguage(cfg.OCR.Language); err != nil {
					client.Close()
					return nil, fmt.Errorf("failed to set OCR language: %w", err)
				}
			}
			p.engine = client
			p.engineCloser = client
		}
		if p.openRender == nil {
			if !render.Enabled() {
				return nil, fmt.Errorf("OCR requested but unavailable: %w", render.ErrNotEnabled)
			}
			p.openRender = func(path string) (PageRenderer, error) {
				return render.Open(path)
			}
		}
	}

	if cfg.Layout.Enabled {
		catalog, err := cfg.Catalog()
		if err != nil {
			return nil, err
		}
		spec, err := catalog.Spec(cfg.Layout.Model)
		if err != nil {
			return nil, err
		}
		p.modelSpec = spec

		if p.detector == nil {
			if cfg.Layout.Endpoint == "" {
				return nil, errors.New("layout detection requires an endpoint")
			}
			dc := layout.DefaultHTTPDetectorConfig(cfg.Layout.Endpoint, cfg.Layout.Model, spec)
			dc.MaxDim = cfg.Layout.MaxDim
			dc.Timeout = cfg.Layout.Timeout()
			p.detector = layout.NewHTTPDetector(dc)
		}
	}

	if p.openText == nil {
		p.openText = func(path string) (TextSource, error) {
			return extract.Open(path)
		}
	}
	if p.synth == nil {
		p.synth = audio.NewSynthesizerWithConfig(audio.SynthesizerConfig{
			Command:    cfg.Audio.Command,
			BaseArgs:   cfg.Audio.BaseArgs,
			Model:      cfg.Audio.Model,
			Voice:      cfg.Audio.Voice,
			LangCode:   cfg.Audio.LangCode,
			Speed:      cfg.Pipeline.Speed,
			SampleRate: cfg.Audio.SampleRate,
		})
	}
	if p.transcoder == nil {
		p.transcoder = audio.NewFFmpegWithConfig(audio.FFmpegConfig{
			Command: cfg.Audio.FFmpeg,
			Bitrate: cfg.Audio.Bitrate,
		})
	}

	return p, nil
}

// Close releases resources held by the pipeline.
// It is safe to call Close multiple times.
func (p *Pipeline) Close() error {
	if p.engineCloser != nil {
		err := p.engineCloser.Close()
		p.engineCloser = nil
		return err
	}
	return nil
}

package recital

import "go.uber.org/zap"

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithLogger sets the logger used for progress and diagnostics.
// The default discards all output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDryRun makes Process log the planned MP3 outputs instead of
// generating audio.
func WithDryRun(dryRun bool) Option {
	return func(p *Pipeline) {
		p.dryRun = dryRun
	}
}

// WithOCREngine replaces the Tesseract engine built from the OCR
// configuration.
func WithOCREngine(engine OCREngine) Option {
	return func(p *Pipeline) {
		p.engine = engine
	}
}

// WithRegionDetector replaces the HTTP detector built from the layout
// configuration.
func WithRegionDetector(detector RegionDetector) Option {
	return func(p *Pipeline) {
		p.detector = detector
	}
}

// WithSynthesizer replaces the TTS command runner built from the audio
// configuration.
func WithSynthesizer(synth Synthesizer) Option {
	return func(p *Pipeline) {
		p.synth = synth
	}
}

// WithTranscoder replaces the ffmpeg transcoder built from the audio
// configuration.
func WithTranscoder(transcoder Transcoder) Option {
	return func(p *Pipeline) {
		p.transcoder = transcoder
	}
}

// WithSentenceSplitter replaces the default English sentence tokenizer.
func WithSentenceSplitter(splitter SentenceSplitter) Option {
	return func(p *Pipeline) {
		if splitter != nil {
			p.sentences = splitter
		}
	}
}

// WithTextOpener replaces how documents are opened for text-layer
// extraction.
func WithTextOpener(open func(path string) (TextSource, error)) Option {
	return func(p *Pipeline) {
		p.openText = open
	}
}

// WithPageRendererOpener replaces how documents are opened for page
// rendering.
func WithPageRendererOpener(open func(path string) (PageRenderer, error)) Option {
	return func(p *Pipeline) {
		p.openRender = open
	}
}

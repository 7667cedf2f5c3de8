package autodeck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alnah/go-autodeck/internal/assets"
	"github.com/alnah/go-autodeck/internal/fileutil"
	"github.com/alnah/go-autodeck/internal/pptx"
)

// deckFileMode is the permission used for written artifacts.
const deckFileMode = 0o644

// Builder orchestrates a deck run: search, generation, normalization,
// rendering and writing.
// Create with NewBuilder, run with Build, and Close when done.
type Builder struct {
	opts    options
	handout handoutRenderer
	loader  assets.AssetLoader
	writer  *pptx.Writer
}

// NewBuilder creates a Builder. WithGenerator is required. Without
// WithSearcher, runs that search fail with ErrSearchUnavailable unless
// Input.SkipWeb or Input.WebOptional is set.
// Deck part templates are loaded here, so a broken asset override fails with
// ErrInvalidAssetPath or ErrRenderUnavailable before any run starts.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.generator == nil {
		return nil, ErrNoGenerator
	}
	loader, w, err := loadRenderParts(o.assetPath)
	if err != nil {
		return nil, err
	}

	b := &Builder{opts: o, handout: o.handout, loader: loader, writer: w}
	if b.handout == nil {
		b.handout = newRodHandout(o.timeout)
	}
	return b, nil
}

// Close releases the browser used for PDF handouts, if one was started.
func (b *Builder) Close() error {
	if b.handout == nil {
		return nil
	}
	return b.handout.Close()
}

// Build runs every stage for in and returns what was produced.
// In dry-run mode nothing is rendered or written. A failed render or write
// leaves no files behind.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	runID := uuid.NewString()
	log := b.opts.logger.With(zap.String("run_id", runID))

	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	log.Info("run started", zap.String("topic", topic))

	res := &Result{RunID: runID}

	webContext, err := b.searchStage(ctx, log, topic, in, res)
	if err != nil {
		return nil, err
	}

	log.Info("requesting content", zap.Int("context_chars", utf8.RuneCountInString(webContext)))
	requester := NewRequester(b.opts.generator, b.opts.retry, b.opts.sleep, log)
	raw, err := requester.Request(ctx, topic, webContext)
	if err != nil {
		return nil, err
	}

	deck, variant, err := normalizeDeck(raw)
	if err != nil {
		return nil, err
	}
	if variant != "" {
		log.Info("content repaired", zap.String("variant", variant))
	}
	res.Deck = deck
	log.Info("content normalized", zap.Int("slides", deck.Len()))

	if in.DryRun {
		log.Info("dry run, skipping render")
		return res, nil
	}

	arts, layouts, err := b.renderStage(ctx, deck, in)
	if err != nil {
		return nil, err
	}
	res.Layouts = layouts

	pptxPath := resolveOutputPath(in, topic)
	for i := range arts {
		arts[i].path = strings.TrimSuffix(pptxPath, deckExt) + arts[i].ext
	}
	if err := writeArtifacts(arts); err != nil {
		return nil, err
	}

	for _, a := range arts {
		switch a.ext {
		case deckExt:
			res.Path = a.path
		case htmlExt:
			res.HTMLPath = a.path
		case pdfExt:
			res.PDFPath = a.path
		}
	}
	log.Info("run finished", zap.String("path", res.Path))
	return res, nil
}

// searchStage fills res.Context and returns the text for the prompt.
func (b *Builder) searchStage(ctx context.Context, log *zap.Logger, topic string, in Input, res *Result) (string, error) {
	if in.SkipWeb {
		log.Info("web search skipped")
		return "", nil
	}

	limit := in.MaxResults
	if limit == 0 {
		limit = DefaultMaxResults
	}
	log.Info("searching web", zap.Int("max_results", limit))

	sc, err := BuildSearchContext(ctx, b.opts.searcher, topic, limit)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if !in.WebOptional {
			return "", err
		}
		log.Warn("web search failed, continuing without context", zap.Error(err))
		return "", nil
	}

	log.Debug("search context built", zap.Int("snippets", len(sc.Snippets)))
	res.Context = sc
	return sc.Text, nil
}

const (
	htmlExt = ".html"
	pdfExt  = ".pdf"
)

// artifact is one file to be written by a run.
type artifact struct {
	ext  string
	path string
	data []byte
}

// renderStage produces every requested artifact in memory.
func (b *Builder) renderStage(ctx context.Context, deck Deck, in Input) ([]artifact, []SlideLayout, error) {
	renderer := &Renderer{writer: b.writer, loader: b.loader, rng: newRand(b.opts.seed), now: b.opts.now}
	rendered, err := renderer.Render(ctx, deck)
	if err != nil {
		return nil, nil, err
	}
	arts := []artifact{{ext: deckExt, data: rendered.PPTX}}

	if !in.HTML && !in.PDF {
		return arts, rendered.Layouts, nil
	}

	preview, err := renderer.Preview(deck, rendered)
	if err != nil {
		return nil, nil, err
	}
	if in.HTML {
		arts = append(arts, artifact{ext: htmlExt, data: []byte(preview)})
	}
	if in.PDF {
		pdf, err := b.renderHandout(ctx, preview)
		if err != nil {
			return nil, nil, err
		}
		arts = append(arts, artifact{ext: pdfExt, data: pdf})
	}
	return arts, rendered.Layouts, nil
}

// renderHandout applies the configured timeout to PDF rendering.
func (b *Builder) renderHandout(ctx context.Context, preview string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, b.opts.timeout)
	defer cancel()

	pdf, err := b.handout.RenderPDF(ctx, preview)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: timed out after %s", ErrPDFGeneration, b.opts.timeout)
		}
		return nil, err
	}
	return pdf, nil
}

// resolveOutputPath picks where the deck is written.
// An explicit OutFile keeps its directory and has its base name sanitized;
// otherwise the name is derived from the topic. Bare names go to OutputDir.
func resolveOutputPath(in Input, topic string) string {
	name := strings.TrimSpace(in.OutFile)
	dir := ""
	if name == "" {
		name = topic
	} else {
		dir = filepath.Dir(name)
		if dir == "." && !strings.HasPrefix(name, "."+string(filepath.Separator)) {
			dir = ""
		}
		name = filepath.Base(name)
	}
	if dir == "" {
		dir = in.OutputDir
	}
	return filepath.Join(dir, SanitizeFilename(name))
}

// writeArtifacts writes each artifact atomically. On failure, files
// already written by this call are removed.
func writeArtifacts(arts []artifact) error {
	if dir := filepath.Dir(arts[0].path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteDeck, err)
		}
	}

	written := make([]string, 0, len(arts))
	for _, a := range arts {
		if err := fileutil.WriteAtomic(a.path, a.data, deckFileMode); err != nil {
			for _, p := range written {
				_ = os.Remove(p)
			}
			return fmt.Errorf("%w: %s: %w", ErrWriteDeck, a.path, err)
		}
		written = append(written, a.path)
	}
	return nil
}

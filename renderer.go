package autodeck

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/alnah/go-autodeck/internal/assets"
	"github.com/alnah/go-autodeck/internal/pipeline"
	"github.com/alnah/go-autodeck/internal/pptx"
)

// titleBox matches the centered title placeholder of the title layout.
var titleBox = pptx.Rect{X: 685800, Y: 2130425, CX: 7772400, CY: 1470025}

// codeFont is used for inline code spans.
const codeFont = "Consolas"

// SlideLayout records the layout decisions made for one slide.
type SlideLayout struct {
	Index      int
	Role       SlideRole
	Marker     string
	Background string
	Title      string // as displayed, "Slide N" for an empty title
}

// RenderResult is a rendered deck.
type RenderResult struct {
	PPTX    []byte
	Layouts []SlideLayout
}

// Renderer turns a Deck into a .pptx document.
// A Renderer owns its random source; use one per run.
type Renderer struct {
	writer *pptx.Writer
	loader assets.AssetLoader
	rng    *rand.Rand
	now    func() time.Time
}

// NewRenderer creates a Renderer. Relevant options are WithSeed, WithClock
// and WithAssetPath. Returns ErrRenderUnavailable if the deck parts cannot be
// loaded or parsed.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRenderer(o)
}

func newRenderer(o options) (*Renderer, error) {
	loader, w, err := loadRenderParts(o.assetPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{writer: w, loader: loader, rng: newRand(o.seed), now: o.now}, nil
}

// loadRenderParts resolves the asset loader for path and parses every part
// template into a writer.
func loadRenderParts(path string) (assets.AssetLoader, *pptx.Writer, error) {
	loader, err := resolveLoader(path)
	if err != nil {
		return nil, nil, err
	}
	parts, err := assets.LoadPartSet(loader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	w, err := pptx.NewWriter(parts)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	return loader, w, nil
}

// resolveLoader returns the embedded loader, or a resolver rooted at path.
func resolveLoader(path string) (assets.AssetLoader, error) {
	if path == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewAssetResolver(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// Render produces one slide per deck slide, in order.
func (r *Renderer) Render(ctx context.Context, deck Deck) (*RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(deck.slides) == 0 {
		return nil, fmt.Errorf("%w: deck has no slides", ErrSchema)
	}

	pres := &pptx.Presentation{
		Title:   displayTitle(0, deck.slides[0]),
		Creator: pptx.Application,
		Created: r.now(),
		Slides:  make([]pptx.Slide, 0, len(deck.slides)),
	}
	layouts := make([]SlideLayout, 0, len(deck.slides))

	for i, s := range deck.slides {
		style := styleFor(i, s, r.rng)
		title := displayTitle(i, s)

		var slide pptx.Slide
		if style.Role == RoleTitle {
			slide = titleSlide(style, title)
		} else {
			slide = contentSlide(style, title, s.Bullets)
		}
		slide.Notes = noteLines(s.Notes)
		pres.Slides = append(pres.Slides, slide)

		layouts = append(layouts, SlideLayout{
			Index:      i,
			Role:       style.Role,
			Marker:     style.Marker,
			Background: style.Background,
			Title:      title,
		})
	}

	var buf bytes.Buffer
	if err := r.writer.Write(&buf, pres); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	return &RenderResult{PPTX: buf.Bytes(), Layouts: layouts}, nil
}

func titleSlide(style SlideStyle, title string) pptx.Slide {
	return pptx.Slide{
		Layout:     pptx.LayoutTitle,
		Background: style.Background,
		Shapes: []pptx.Shape{
			{
				ID:              2,
				Name:            "Title 1",
				Kind:            pptx.KindPlaceholder,
				PlaceholderType: "ctrTitle",
				Text: pptx.TextBody{Paragraphs: []pptx.Paragraph{{
					Align: "ctr",
					Runs: []pptx.Run{{
						Text:  title,
						Size:  style.TitleSize * 100,
						Bold:  style.TitleBold,
						Color: style.TitleColor,
					}},
				}}},
			},
			{
				ID:   3,
				Name: "Accent Bar",
				Kind: pptx.KindRect,
				Rect: accentBarRect(),
				Fill: AccentColor,
			},
			{
				ID:   4,
				Name: "Caption",
				Kind: pptx.KindTextBox,
				Rect: captionRect(),
				Text: pptx.TextBody{Paragraphs: []pptx.Paragraph{{
					Runs: []pptx.Run{{
						Text:   Caption,
						Size:   CaptionSize * 100,
						Italic: true,
						Color:  CaptionColor,
					}},
				}}},
			},
		},
	}
}

func contentSlide(style SlideStyle, title string, bullets []string) pptx.Slide {
	paragraphs := make([]pptx.Paragraph, 0, len(bullets))
	for _, b := range bullets {
		runs := []pptx.Run{{Text: style.Marker + " ", Size: style.BulletSize * 100, Color: style.BulletColor}}
		for _, sp := range pipeline.ParseInline(b) {
			run := pptx.Run{
				Text:   sp.Text,
				Size:   style.BulletSize * 100,
				Bold:   sp.Bold,
				Italic: sp.Italic,
				Color:  style.BulletColor,
			}
			if sp.Code {
				run.Font = codeFont
			}
			runs = append(runs, run)
		}
		paragraphs = append(paragraphs, pptx.Paragraph{NoBullet: true, Runs: runs})
	}

	return pptx.Slide{
		Layout:     pptx.LayoutContent,
		Background: style.Background,
		Shapes: []pptx.Shape{
			{
				ID:              2,
				Name:            "Title 1",
				Kind:            pptx.KindPlaceholder,
				PlaceholderType: "title",
				Text: pptx.TextBody{Paragraphs: []pptx.Paragraph{{
					Runs: []pptx.Run{{
						Text:      title,
						Size:      style.TitleSize * 100,
						Bold:      style.TitleBold,
						Underline: style.TitleUnderline,
						Color:     style.TitleColor,
					}},
				}}},
			},
			{
				ID:             3,
				Name:           "Content Placeholder 2",
				Kind:           pptx.KindPlaceholder,
				PlaceholderIdx: 1,
				Text:           pptx.TextBody{Paragraphs: paragraphs},
			},
		},
	}
}

// accentBarRect sits just below the title box and spans its width.
func accentBarRect() pptx.Rect {
	return pptx.Rect{
		X:  titleBox.X,
		Y:  titleBox.Y + titleBox.CY + pptx.Inches(accentGap),
		CX: titleBox.CX,
		CY: pptx.Inches(accentHeight),
	}
}

func captionRect() pptx.Rect {
	return pptx.Rect{
		X:  pptx.Inches(captionX),
		Y:  pptx.Inches(captionY),
		CX: pptx.Inches(captionWidth),
		CY: pptx.Inches(captionHeight),
	}
}

// noteLines splits notes into paragraphs. Empty notes yield nil.
func noteLines(notes string) []string {
	if notes == "" {
		return nil
	}
	notes = strings.ReplaceAll(notes, "\r\n", "\n")
	return strings.Split(notes, "\n")
}

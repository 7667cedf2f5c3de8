package autodeck

import (
	"fmt"

	"github.com/alnah/go-autodeck/internal/pipeline"
	"github.com/alnah/go-autodeck/internal/pptx"
)

// previewStyle names the stylesheet inlined into previews.
const previewStyle = "preview"

// Preview renders an HTML view of a rendered deck, reusing the layout
// decisions recorded in res.
func (r *Renderer) Preview(deck Deck, res *RenderResult) (string, error) {
	if res == nil || len(res.Layouts) != len(deck.slides) {
		return "", fmt.Errorf("%w: layouts do not match deck", ErrRenderUnavailable)
	}
	css, err := r.loader.LoadStyle(previewStyle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	builder, err := pipeline.NewPreviewBuilder(css)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	html, err := builder.Build(previewDeck(deck, res.Layouts))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	return html, nil
}

func previewDeck(deck Deck, layouts []SlideLayout) pipeline.PreviewDeck {
	pd := pipeline.PreviewDeck{Slides: make([]pipeline.PreviewSlide, len(layouts))}
	if len(layouts) > 0 {
		pd.Title = layouts[0].Title
	}
	for i, l := range layouts {
		s := deck.slides[i]
		ps := pipeline.PreviewSlide{
			Number:     i + 1,
			Title:      l.Title,
			Background: l.Background,
			Notes:      noteLines(s.Notes),
		}
		if l.Role == RoleTitle {
			bar, caption := accentBarRect(), captionRect()
			ps.Role = pipeline.RoleTitle
			ps.TitleColor = TitleColor
			ps.AccentBar = &pipeline.PreviewBox{Color: AccentColor, X: inches(bar.X), Y: inches(bar.Y), Width: inches(bar.CX), Height: inches(bar.CY)}
			ps.Caption = &pipeline.PreviewBox{Text: Caption, Color: CaptionColor, X: inches(caption.X), Y: inches(caption.Y), Width: inches(caption.CX), Height: inches(caption.CY)}
		} else {
			ps.Role = pipeline.RoleContent
			ps.TitleColor = HeadingColor
			ps.TextColor = BulletColor
			for _, b := range s.Bullets {
				ps.Lines = append(ps.Lines, pipeline.PreviewLine{Marker: l.Marker, Spans: pipeline.ParseInline(b)})
			}
		}
		pd.Slides[i] = ps
	}
	return pd
}

func inches(emu int64) float64 {
	return float64(emu) / float64(pptx.EMUPerInch)
}

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPreview indicates the HTML preview could not be built.
var ErrPreview = errors.New("preview generation failed")

// Slide roles as they appear in preview markup.
const (
	RoleTitle   = "title"
	RoleContent = "content"
)

// PreviewDeck is the display model of a rendered deck.
type PreviewDeck struct {
	Title  string
	Slides []PreviewSlide
}

// PreviewSlide mirrors the layout decisions made for one slide.
type PreviewSlide struct {
	Number     int
	Role       string
	Title      string
	TitleColor string // hex RGB without '#'
	Background string
	Caption    *PreviewBox
	AccentBar  *PreviewBox
	Lines      []PreviewLine
	TextColor  string
	Notes      []string
}

// PreviewBox is a positioned element in inches.
type PreviewBox struct {
	Text   string
	Color  string
	X, Y   float64
	Width  float64
	Height float64
}

// PreviewLine is one bullet with its marker.
type PreviewLine struct {
	Marker string
	Spans  []Span
}

const previewTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Deck.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{- range .Deck.Slides}}
<section class="slide slide-{{.Role}}" id="slide-{{.Number}}" style="background-color: #{{.Background}}">
{{- if eq .Role "title"}}
<h1 class="slide-title" style="color: #{{.TitleColor}}">{{.Title}}</h1>
{{- with .AccentBar}}
<div class="accent-bar" style="{{box .}} background-color: #{{.Color}}"></div>
{{- end}}
{{- with .Caption}}
<p class="caption" style="{{box .}} color: #{{.Color}}">{{.Text}}</p>
{{- end}}
{{- else}}
<h2 class="content-title" style="color: #{{.TitleColor}}">{{.Title}}</h2>
<ul class="bullets" style="color: #{{.TextColor}}">
{{- range .Lines}}
<li>{{.Marker}} {{range .Spans}}{{template "span" .}}{{end}}</li>
{{- end}}
</ul>
{{- end}}
</section>
{{- if .Notes}}
<aside class="notes">{{range .Notes}}<p>{{.}}</p>{{end}}</aside>
{{- end}}
{{- end}}
</body>
</html>
{{define "span"}}{{if .Link}}<a href="{{.Link}}">{{end}}{{if .Bold}}<strong>{{end}}{{if .Italic}}<em>{{end}}{{if .Code}}<code>{{end}}{{.Text}}{{if .Code}}</code>{{end}}{{if .Italic}}</em>{{end}}{{if .Bold}}</strong>{{end}}{{if .Link}}</a>{{end}}{{end}}`

// PreviewBuilder renders PreviewDeck values to standalone HTML documents.
type PreviewBuilder struct {
	css  template.CSS
	tmpl *template.Template
}

// NewPreviewBuilder creates a PreviewBuilder that inlines the given stylesheet.
func NewPreviewBuilder(css string) (*PreviewBuilder, error) {
	tmpl, err := template.New("preview").Funcs(template.FuncMap{"box": boxStyle}).Parse(previewTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreview, err)
	}
	// #nosec G203 -- stylesheet comes from embedded or operator-provided assets
	return &PreviewBuilder{css: template.CSS(css), tmpl: tmpl}, nil
}

// Build renders deck as an HTML5 document. All slide text is escaped.
func (b *PreviewBuilder) Build(deck PreviewDeck) (string, error) {
	var buf bytes.Buffer
	data := struct {
		CSS  template.CSS
		Deck PreviewDeck
	}{b.css, deck}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreview, err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}

// boxStyle positions a box absolutely in inches.
func boxStyle(b *PreviewBox) template.CSS {
	// #nosec G203 -- numeric values only
	return template.CSS(fmt.Sprintf("left: %.2fin; top: %.2fin; width: %.2fin; height: %.2fin;", b.X, b.Y, b.Width, b.Height))
}

package pipeline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	textm "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Span is a run of text with uniform inline formatting.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Link   string // destination URL, empty when not a link
}

// sameFormat reports whether two spans can be merged.
func (s Span) sameFormat(o Span) bool {
	return s.Bold == o.Bold && s.Italic == o.Italic && s.Code == o.Code && s.Link == o.Link
}

// inlineParser only knows paragraphs, so list markers, headings and numbered
// prefixes in generated bullets stay literal text.
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(append(parser.DefaultInlineParsers(),
		util.Prioritized(extension.NewStrikethroughParser(), 500))...),
)

// ParseInline parses inline Markdown (emphasis, code spans, links) in a single
// line of text into formatted spans. Adjacent spans with the same formatting
// are merged. Empty input returns nil.
func ParseInline(text string) []Span {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	src := []byte(text)
	doc := inlineParser.Parse(textm.NewReader(src))

	w := &spanWalker{src: src}
	_ = ast.Walk(doc, w.visit)

	if len(w.spans) == 0 {
		return []Span{{Text: text}}
	}
	return w.spans
}

// PlainText concatenates span text without formatting.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

type spanWalker struct {
	src    []byte
	bold   int
	italic int
	link   string
	spans  []Span
	blocks int
}

func (w *spanWalker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Paragraph:
		if entering {
			if w.blocks > 0 {
				w.emit(" ", false)
			}
			w.blocks++
		}
	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if node.Level >= 2 {
			w.bold += delta
		} else {
			w.italic += delta
		}
	case *ast.Link:
		if entering {
			w.link = string(node.Destination)
		} else {
			w.link = ""
		}
	case *ast.AutoLink:
		if entering {
			w.link = string(node.URL(w.src))
			w.emit(string(node.Label(w.src)), false)
			w.link = ""
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		if entering {
			var buf bytes.Buffer
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(w.src))
				}
			}
			w.emit(buf.String(), true)
		}
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if entering {
			value := node.Segment.Value(w.src)
			if !node.IsRaw() {
				value = util.UnescapePunctuations(value)
				value = util.ResolveNumericReferences(value)
				value = util.ResolveEntityNames(value)
			}
			w.emit(string(value), false)
			if node.SoftLineBreak() || node.HardLineBreak() {
				w.emit(" ", false)
			}
		}
	case *ast.String:
		if entering {
			w.emit(string(node.Value), false)
		}
	case *ast.RawHTML:
		if entering {
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				w.emit(string(seg.Value(w.src)), false)
			}
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *spanWalker) emit(text string, code bool) {
	if text == "" {
		return
	}
	span := Span{
		Text:   text,
		Bold:   w.bold > 0,
		Italic: w.italic > 0,
		Code:   code,
		Link:   w.link,
	}
	if n := len(w.spans); n > 0 && w.spans[n-1].sameFormat(span) {
		w.spans[n-1].Text += text
		return
	}
	w.spans = append(w.spans, span)
}

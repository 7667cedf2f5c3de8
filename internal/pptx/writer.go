package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/alnah/go-autodeck/internal/assets"
)

// Application is recorded in docProps/app.xml.
const Application = "go-autodeck"

// packageTime stamps every zip entry so output is reproducible.
var packageTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Writer renders presentations into .pptx archives.
type Writer struct {
	templates map[string]*template.Template
}

// NewWriter parses every part in the set.
// Returns ErrInvalidTemplate if a part is missing or fails to parse.
func NewWriter(parts assets.PartSet) (*Writer, error) {
	funcs := template.FuncMap{"x": escapeXML}
	w := &Writer{templates: make(map[string]*template.Template, len(assets.RequiredParts))}
	for _, name := range assets.RequiredParts {
		src, ok := parts[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q missing", ErrInvalidTemplate, name)
		}
		tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, name, err)
		}
		w.templates[name] = tmpl
	}
	return w, nil
}

// slideRef describes a slide's position in the package.
type slideRef struct {
	ID       int
	RelID    string
	Number   int
	Layout   Layout
	HasNotes bool
}

// packageData feeds the package-level templates.
type packageData struct {
	Title       string
	Creator     string
	Created     string
	Application string
	Width       int64
	Height      int64
	NotesCount  int
	Slides      []slideRef
}

// entry is one file of the archive.
type entry struct {
	path string
	part string
	data any
}

// Write renders p as a .pptx archive to out.
func (w *Writer) Write(out io.Writer, p *Presentation) error {
	if p == nil || len(p.Slides) == 0 {
		return ErrNoSlides
	}

	pkg := packageData{
		Title:       p.Title,
		Creator:     p.Creator,
		Created:     p.Created.UTC().Format(time.RFC3339),
		Application: Application,
		Width:       SlideWidth,
		Height:      SlideHeight,
		Slides:      make([]slideRef, len(p.Slides)),
	}
	for i, s := range p.Slides {
		ref := slideRef{
			ID:       256 + i,
			RelID:    fmt.Sprintf("rId%d", 7+i),
			Number:   i + 1,
			Layout:   s.Layout,
			HasNotes: len(s.Notes) > 0,
		}
		if ref.Layout == 0 {
			ref.Layout = LayoutContent
		}
		if ref.HasNotes {
			pkg.NotesCount++
		}
		pkg.Slides[i] = ref
	}

	entries := []entry{
		{"[Content_Types].xml", assets.PartContentTypes, pkg},
		{"_rels/.rels", assets.PartRootRels, nil},
		{"docProps/core.xml", assets.PartCore, pkg},
		{"docProps/app.xml", assets.PartApp, pkg},
		{"ppt/presentation.xml", assets.PartPresentation, pkg},
		{"ppt/_rels/presentation.xml.rels", assets.PartPresentationRels, pkg},
		{"ppt/presProps.xml", assets.PartPresProps, nil},
		{"ppt/viewProps.xml", assets.PartViewProps, nil},
		{"ppt/tableStyles.xml", assets.PartTableStyles, nil},
		{"ppt/theme/theme1.xml", assets.PartTheme, nil},
		{"ppt/theme/theme2.xml", assets.PartTheme, nil},
		{"ppt/slideMasters/slideMaster1.xml", assets.PartSlideMaster, nil},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", assets.PartSlideMasterRels, nil},
		{"ppt/slideLayouts/slideLayout1.xml", assets.PartLayoutTitle, nil},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", assets.PartLayoutRels, nil},
		{"ppt/slideLayouts/slideLayout2.xml", assets.PartLayoutContent, nil},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", assets.PartLayoutRels, nil},
		{"ppt/notesMasters/notesMaster1.xml", assets.PartNotesMaster, nil},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", assets.PartNotesMasterRels, nil},
	}
	for i, s := range p.Slides {
		ref := pkg.Slides[i]
		entries = append(entries,
			entry{fmt.Sprintf("ppt/slides/slide%d.xml", ref.Number), assets.PartSlide, s},
			entry{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", ref.Number), assets.PartSlideRels, ref},
		)
		if ref.HasNotes {
			entries = append(entries,
				entry{fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", ref.Number), assets.PartNotesSlide, struct{ Lines []string }{s.Notes}},
				entry{fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", ref.Number), assets.PartNotesSlideRels, ref},
			)
		}
	}

	zw := zip.NewWriter(out)
	var buf bytes.Buffer
	for _, e := range entries {
		buf.Reset()
		if err := w.templates[e.part].Execute(&buf, e.data); err != nil {
			return fmt.Errorf("%w: rendering %s: %v", ErrWritePackage, e.path, err)
		}
		hdr := &zip.FileHeader{Name: e.path, Method: zip.Deflate, Modified: packageTime}
		f, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWritePackage, err)
		}
		if _, err := f.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePackage, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePackage, err)
	}
	return nil
}

// escapeXML escapes text for element content and attribute values.
func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

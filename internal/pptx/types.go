package pptx

import "time"

// EMU per unit of measure.
const (
	EMUPerInch  int64 = 914400
	EMUPerPoint int64 = 12700
)

// Slide size for a 4:3 presentation.
const (
	SlideWidth  int64 = 9144000
	SlideHeight int64 = 6858000
)

// Inches converts a length in inches to EMU.
func Inches(in float64) int64 {
	return int64(in * float64(EMUPerInch))
}

// Layout selects the slide layout a slide is based on.
type Layout int

// Layouts shipped with the slide master.
const (
	LayoutTitle   Layout = 1
	LayoutContent Layout = 2
)

// ShapeKind distinguishes the shapes a slide can hold.
type ShapeKind string

// Supported shape kinds.
const (
	KindPlaceholder ShapeKind = "placeholder"
	KindTextBox     ShapeKind = "textbox"
	KindRect        ShapeKind = "rect"
)

// Presentation is the complete content of a deck file.
type Presentation struct {
	Title   string
	Creator string
	Created time.Time
	Slides  []Slide
}

// Slide is one slide with its shapes and optional speaker notes.
type Slide struct {
	Layout     Layout
	Background string // hex RGB without '#', empty inherits the master
	Shapes     []Shape
	Notes      []string // one paragraph per entry
}

// Shape is a placeholder, text box or filled rectangle.
// Placeholders inherit geometry from the layout; other kinds use Rect.
type Shape struct {
	ID              int
	Name            string
	Kind            ShapeKind
	PlaceholderType string
	PlaceholderIdx  int
	Rect            Rect
	Fill            string
	Text            TextBody
}

// Rect is a position and extent in EMU.
type Rect struct {
	X, Y, CX, CY int64
}

// TextBody holds the paragraphs of a shape.
type TextBody struct {
	Paragraphs []Paragraph
}

// Paragraph is a run sequence with paragraph-level formatting.
type Paragraph struct {
	Align    string // "l", "ctr", "r" or empty
	NoBullet bool
	Runs     []Run
}

// Run is a span of uniformly formatted text.
type Run struct {
	Text      string
	Size      int // hundredths of a point
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	Font      string
}

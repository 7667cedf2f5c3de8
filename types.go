package autodeck

import (
	"encoding/json"
	"slices"
)

// Slide is one normalized slide record.
// Title and Notes are trimmed; every bullet is non-empty after trimming.
type Slide struct {
	Title   string   `json:"title" yaml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets"`
	Notes   string   `json:"notes" yaml:"notes"`
}

// Deck is an ordered, non-empty sequence of slides.
// The only way to obtain a populated Deck is NormalizeDeck; the zero value is empty.
type Deck struct {
	slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int { return len(d.slides) }

// Slides returns a copy of the deck's slides.
func (d Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = Slide{Title: s.Title, Bullets: slices.Clone(s.Bullets), Notes: s.Notes}
	}
	return out
}

// deckDocument is the serialized shape of a Deck.
type deckDocument struct {
	Slides []Slide `json:"slides" yaml:"slides"`
}

// MarshalJSON encodes the deck as {"slides": [...]}.
func (d Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(deckDocument{Slides: d.Slides()})
}

// MarshalYAML encodes the deck as a mapping with a slides key.
func (d Deck) MarshalYAML() (any, error) {
	return deckDocument{Slides: d.Slides()}, nil
}

// RawContent is untrusted structured data decoded from a generator reply.
// Convert it with NormalizeDeck.
type RawContent struct {
	value any
}

// NewRawContent wraps an already decoded value.
func NewRawContent(v any) RawContent {
	return RawContent{value: v}
}

// Value returns the wrapped value.
func (r RawContent) Value() any { return r.value }

// Snippet is one web search result.
type Snippet struct {
	Title string
	Body  string
	URL   string
}

// SearchContext is the search-derived text handed to the generator.
type SearchContext struct {
	Snippets []Snippet
	Text     string
}

// Input holds the per-run parameters of Builder.Build.
type Input struct {
	Topic       string
	MaxResults  int    // search results to fetch, DefaultMaxResults when zero
	SkipWeb     bool   // skip the search stage entirely
	WebOptional bool   // continue without context when search fails
	DryRun      bool   // stop after normalization
	OutFile     string // output filename, derived from Topic when empty
	OutputDir   string // directory for derived or bare filenames
	HTML        bool   // also write an HTML preview
	PDF         bool   // also write a PDF handout
}

// Result describes a completed run.
type Result struct {
	RunID    string
	Deck     Deck
	Context  *SearchContext // nil when search was skipped or failed
	Layouts  []SlideLayout  // nil in dry-run mode
	Path     string         // written .pptx, empty in dry-run mode
	HTMLPath string
	PDFPath  string
}

// DefaultMaxResults is the number of search results requested when Input.MaxResults is zero.
const DefaultMaxResults = 8

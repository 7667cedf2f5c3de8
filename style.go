package autodeck

import (
	"fmt"
	"math/rand/v2"
)

// SlideRole decides how a slide is styled.
type SlideRole int

// Slide roles.
const (
	RoleContent SlideRole = iota
	RoleTitle
)

// String returns "title" or "content".
func (r SlideRole) String() string {
	if r == RoleTitle {
		return "title"
	}
	return "content"
}

// Title slide styling.
const (
	TitleBackground = "193264"
	TitleColor      = "FFFFFF"
	TitleSize       = 44
	Caption         = "Auto-Generated Deck • Powered by AI"
	CaptionColor    = "C8C8C8"
	CaptionSize     = 20
	AccentColor     = "8A2BE2"
)

// Title slide geometry, in inches.
const (
	captionX      = 5.0
	captionY      = 6.5
	captionWidth  = 3.0
	captionHeight = 0.5
	accentGap     = 0.1
	accentHeight  = 0.15
)

// Content slide styling.
const (
	HeadingColor = "003366"
	HeadingSize  = 30
	BulletColor  = "323232"
	BulletSize   = 20
)

// Palette holds the background colors of content slides.
var Palette = []string{"E6F0FA", "F5F5F5", "FAF0E6", "F0FAF0", "FFFFF0"}

// Markers prefix bullets, rotating by slide index.
var Markers = []string{"✅", "📈", "🔑", "📊", "💡"}

// SlideStyle is the styling derived for one slide.
type SlideStyle struct {
	Role           SlideRole
	Background     string
	TitleSize      int
	TitleBold      bool
	TitleUnderline bool
	TitleColor     string
	Marker         string // empty for the title role
	BulletSize     int
	BulletColor    string
}

// roleFor returns RoleTitle only for a first slide without bullets.
func roleFor(index int, s Slide) SlideRole {
	if index == 0 && len(s.Bullets) == 0 {
		return RoleTitle
	}
	return RoleContent
}

// styleFor derives the style of slide index. Content slides draw their
// background from rng; the title slide does not consume randomness.
func styleFor(index int, s Slide, rng *rand.Rand) SlideStyle {
	if roleFor(index, s) == RoleTitle {
		return SlideStyle{
			Role:       RoleTitle,
			Background: TitleBackground,
			TitleSize:  TitleSize,
			TitleBold:  true,
			TitleColor: TitleColor,
		}
	}
	return SlideStyle{
		Role:           RoleContent,
		Background:     Palette[rng.IntN(len(Palette))],
		TitleSize:      HeadingSize,
		TitleBold:      true,
		TitleUnderline: true,
		TitleColor:     HeadingColor,
		Marker:         Markers[index%len(Markers)],
		BulletSize:     BulletSize,
		BulletColor:    BulletColor,
	}
}

// displayTitle substitutes "Slide N" for an empty title.
func displayTitle(index int, s Slide) string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Slide %d", index+1)
}

// newRand returns a generator seeded with seed, or randomly when seed is nil.
func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

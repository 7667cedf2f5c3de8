package autodeck

import (
	"strings"

	"github.com/alnah/go-autodeck/internal/fileutil"
)

const (
	deckExt       = ".pptx"
	defaultDeckID = "deck"
)

// SanitizeFilename turns name into a safe .pptx file name.
//
// The name is trimmed, spaces become underscores, characters outside
// [A-Za-z0-9_.-] are removed and runs of underscores collapse to one.
// The result always ends in ".pptx"; a name with nothing left becomes
// "deck.pptx".
//
// Examples:
//   - "My Topic!! 2024.pptx" -> "My_Topic_2024.pptx"
//   - "Go generics" -> "Go_generics.pptx"
//   - "???" -> "deck.pptx"
func SanitizeFilename(name string) string {
	stem := fileutil.SanitizeFilename(name)
	if strings.HasSuffix(strings.ToLower(stem), deckExt) {
		stem = stem[:len(stem)-len(deckExt)]
	}
	stem = strings.Trim(stem, "._")
	if stem == "" {
		stem = defaultDeckID
	}
	return fileutil.EnsureExtension(stem, deckExt)
}

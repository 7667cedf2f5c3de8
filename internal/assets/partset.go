package assets

import (
	"errors"
	"fmt"
)

// Part names required to assemble a presentation package.
const (
	PartContentTypes     = "content-types"
	PartRootRels         = "root-rels"
	PartCore             = "core"
	PartApp              = "app"
	PartPresentation     = "presentation"
	PartPresentationRels = "presentation-rels"
	PartPresProps        = "pres-props"
	PartViewProps        = "view-props"
	PartTableStyles      = "table-styles"
	PartTheme            = "theme"
	PartSlideMaster      = "slide-master"
	PartSlideMasterRels  = "slide-master-rels"
	PartLayoutTitle      = "layout-title"
	PartLayoutContent    = "layout-content"
	PartLayoutRels       = "layout-rels"
	PartNotesMaster      = "notes-master"
	PartNotesMasterRels  = "notes-master-rels"
	PartSlide            = "slide"
	PartSlideRels        = "slide-rels"
	PartNotesSlide       = "notes-slide"
	PartNotesSlideRels   = "notes-slide-rels"
)

// RequiredParts lists every part a PartSet must hold.
var RequiredParts = []string{
	PartContentTypes, PartRootRels, PartCore, PartApp,
	PartPresentation, PartPresentationRels,
	PartPresProps, PartViewProps, PartTableStyles, PartTheme,
	PartSlideMaster, PartSlideMasterRels,
	PartLayoutTitle, PartLayoutContent, PartLayoutRels,
	PartNotesMaster, PartNotesMasterRels,
	PartSlide, PartSlideRels, PartNotesSlide, PartNotesSlideRels,
}

// PartSet holds the raw content of every part template, keyed by part name.
type PartSet map[string]string

// LoadPartSet loads all RequiredParts through the given loader.
// A missing part is reported as ErrIncompletePartSet; other loader errors
// are returned unchanged.
func LoadPartSet(loader AssetLoader) (PartSet, error) {
	if loader == nil {
		loader = defaultLoader
	}
	set := make(PartSet, len(RequiredParts))
	for _, name := range RequiredParts {
		content, err := loader.LoadPart(name)
		if err != nil {
			if errors.Is(err, ErrPartNotFound) {
				return nil, fmt.Errorf("%w: %q", ErrIncompletePartSet, name)
			}
			return nil, err
		}
		set[name] = content
	}
	return set, nil
}

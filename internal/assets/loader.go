package assets

// AssetLoader defines the contract for loading deck part templates and styles.
type AssetLoader interface {
	// LoadPart loads an OOXML part template by name (without .xml extension).
	// Returns ErrPartNotFound if the part doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPart(name string) (string, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

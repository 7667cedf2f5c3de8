// Package assets provides the OOXML part templates and preview styles used to
// render slide decks.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in parts)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in theme, slide master, layouts, notes
// master and the dynamic part templates (slides, notes, presentation, content
// types) embedded at compile time.
//
// FilesystemLoader allows users to override individual parts from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the renderer. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables restyling a deck (e.g. a corporate theme.xml)
// while keeping every other part.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── pptx/
//	│   └── {name}.xml           # Part or part template (e.g. theme.xml)
//	└── styles/
//	    └── {name}.css           # Preview styles (e.g. preview.css)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets

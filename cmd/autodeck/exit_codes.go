package main

import (
	"errors"
	"os"

	autodeck "github.com/alnah/go-autodeck"
	"github.com/alnah/go-autodeck/internal/config"
)

// Exit codes for the autodeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Deck written, or dry run printed
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, topic or credentials
	ExitIO         = 3 // File not found, permission denied, write failed
	ExitSearch     = 4 // Web search unavailable
	ExitGeneration = 5 // Model failed or returned unusable content
	ExitRender     = 6 // Renderer or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 6)
	if errors.Is(err, autodeck.ErrRenderUnavailable) ||
		errors.Is(err, autodeck.ErrBrowserConnect) ||
		errors.Is(err, autodeck.ErrPageCreate) ||
		errors.Is(err, autodeck.ErrPageLoad) ||
		errors.Is(err, autodeck.ErrPDFGeneration) {
		return ExitRender
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, autodeck.ErrEmptyTopic) ||
		errors.Is(err, autodeck.ErrMissingCredential) ||
		errors.Is(err, autodeck.ErrInvalidAssetPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUnknownProvider) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidMaxResults) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, autodeck.ErrWriteDeck) ||
		errors.Is(err, ErrReadEnvFile) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Search errors (exit 4)
	if errors.Is(err, autodeck.ErrSearchUnavailable) {
		return ExitSearch
	}

	// Generation errors (exit 5)
	if errors.Is(err, autodeck.ErrGeneration) ||
		errors.Is(err, autodeck.ErrSchema) {
		return ExitGeneration
	}

	return ExitGeneral
}

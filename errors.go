package autodeck

import (
	"errors"

	"github.com/alnah/go-autodeck/internal/llm"
)

// Sentinel errors for library operations.
var (
	ErrEmptyTopic  = errors.New("topic cannot be empty")
	ErrNoGenerator = errors.New("no content generator configured")

	// ErrMissingCredential indicates the generator has no API key. Never retried.
	ErrMissingCredential = llm.ErrMissingCredential

	ErrSearchUnavailable = errors.New("web search unavailable")
	ErrGeneration        = errors.New("content generation failed")
	ErrSchema            = errors.New("generated content does not match slide schema")
	ErrRenderUnavailable = errors.New("deck renderer unavailable")
	ErrWriteDeck         = errors.New("failed to write deck")

	// Handout rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

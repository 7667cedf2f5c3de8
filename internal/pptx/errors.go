package pptx

import "errors"

// Sentinel errors for package assembly.
var (
	ErrInvalidTemplate = errors.New("invalid part template")
	ErrNoSlides        = errors.New("presentation has no slides")
	ErrWritePackage    = errors.New("failed to write package")
)

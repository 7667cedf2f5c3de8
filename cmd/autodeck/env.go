package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	autodeck "github.com/alnah/go-autodeck"
	"github.com/alnah/go-autodeck/internal/llm"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, process environment, and the network-facing collaborators.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Getenv  func(string) string
	Environ func() []string

	// NewGenerator builds the language model client for a run.
	NewGenerator func(ctx context.Context, s llm.Settings) (llm.Generator, error)
	// NewSearcher builds the web search client. A non-positive timeout
	// uses the search default.
	NewSearcher func(timeout time.Duration) autodeck.Searcher
	// LookBrowser locates Chrome/Chromium for the doctor command.
	LookBrowser func() (string, bool)
}

// DefaultEnv returns the production environment: real process I/O,
// hosted language models and DuckDuckGo search.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Stdin:        os.Stdin,
		Getenv:       os.Getenv,
		Environ:      os.Environ,
		NewGenerator: llm.New,
		NewSearcher: func(timeout time.Duration) autodeck.Searcher {
			return autodeck.NewWebSearcher(timeout)
		},
		LookBrowser: launcher.LookPath,
	}
}

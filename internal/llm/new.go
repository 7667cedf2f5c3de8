package llm

import (
	"context"
	"fmt"
	"strings"
)

// Generator is implemented by every provider in this package.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
	Model() string
}

// New creates the generator selected by s.Provider. Empty selects OpenAI.
func New(ctx context.Context, s Settings) (Generator, error) {
	switch strings.ToLower(s.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAI(s)
	case ProviderGemini:
		return NewGemini(ctx, s)
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s or %s)", s.Provider, ProviderOpenAI, ProviderGemini)
	}
}

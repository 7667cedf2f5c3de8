// Package llm implements text generators backed by hosted language models.
//
// Each generator answers a (system, user) prompt pair with the raw text of
// the model's reply and asks the model for a JSON object. Retries are left to
// the caller, so SDK-level retries are disabled.
package llm

import (
	"errors"
	"strings"
)

// Sentinel errors for generator construction and calls.
var (
	// ErrMissingCredential indicates no API key was configured.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrEmptyResponse indicates the model returned no content.
	ErrEmptyResponse = errors.New("empty model response")
)

// Provider names accepted by New.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Temperature is the sampling temperature used for outline generation.
const Temperature = 0.3

// Settings configures a generator.
type Settings struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// IsKnownProvider reports whether name selects a supported provider.
func IsKnownProvider(name string) bool {
	switch strings.ToLower(name) {
	case ProviderOpenAI, ProviderGemini:
		return true
	}
	return false
}

// CredentialEnv returns the environment variable holding the provider's key.
func CredentialEnv(provider string) string {
	if strings.EqualFold(provider, ProviderGemini) {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

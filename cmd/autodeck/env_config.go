package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/alnah/go-autodeck/internal/config"
)

// ErrReadEnvFile indicates an explicitly requested dotenv file could not be read.
var ErrReadEnvFile = errors.New("failed to read env file")

// envPrefix marks variables owned by autodeck.
const envPrefix = "AUTODECK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // AUTODECK_CONFIG: config file name or path
	Provider   string        // AUTODECK_PROVIDER: openai, gemini
	OutputDir  string        // AUTODECK_OUTPUT_DIR: default output directory
	MaxResults int           // AUTODECK_MAX_RESULTS: web search results
	Timeout    time.Duration // AUTODECK_TIMEOUT: PDF handout timeout
	Seed       *uint64       // AUTODECK_SEED: background seed
	Model      string        // OAI_MODEL: OpenAI model override
}

// knownEnvVars lists valid AUTODECK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"AUTODECK_CONFIG":      true,
	"AUTODECK_PROVIDER":    true,
	"AUTODECK_OUTPUT_DIR":  true,
	"AUTODECK_MAX_RESULTS": true,
	"AUTODECK_TIMEOUT":     true,
	"AUTODECK_SEED":        true,
}

// dotEnv holds variables read from a dotenv file.
type dotEnv struct {
	vars   map[string]string
	loaded bool
}

// loadDotEnv reads path without touching the process environment.
// A missing file is only an error when the path was given explicitly.
func loadDotEnv(path string, explicit bool) (*dotEnv, error) {
	if path == "" {
		return &dotEnv{}, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &dotEnv{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadEnvFile, path, err)
	}
	return &dotEnv{vars: vars, loaded: true}, nil
}

// lookup returns a getenv that prefers the process environment and falls
// back to the dotenv values.
func (d *dotEnv) lookup(getenv func(string) string) func(string) string {
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return d.vars[key]
	}
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numbers and durations are ignored, not errors.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("AUTODECK_CONFIG"),
		Provider:   getenv("AUTODECK_PROVIDER"),
		OutputDir:  getenv("AUTODECK_OUTPUT_DIR"),
		Model:      getenv("OAI_MODEL"),
	}

	if v := getenv("AUTODECK_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}

	if v := getenv("AUTODECK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if v := getenv("AUTODECK_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = &seed
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized AUTODECK_* variables
// found in environ or in the dotenv file.
// Helps catch typos like AUTODECK_PROVDER.
func warnUnknownEnvVars(w io.Writer, environ []string, dotenv map[string]string) {
	seen := make(map[string]bool)
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		seen[name] = true
	}
	for name := range dotenv {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are applied later via mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Provider != "" {
		cfg.Provider.Name = env.Provider
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.MaxResults > 0 {
		cfg.Search.MaxResults = env.MaxResults
	}
	if env.Seed != nil {
		seed := *env.Seed
		cfg.Render.Seed = &seed
	}
	// Timeout and model are resolved separately (resolveTimeout, resolveModel).
}

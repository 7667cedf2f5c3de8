package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-autodeck/internal/fileutil"
	"github.com/alnah/go-autodeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for named configs.
const AppDirName = "go-autodeck"

// Field length limits.
const (
	MaxModelLength    = 100
	MaxURLLength      = 2048 // Browser limit
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxDurationLength = 20   // "1m30s", "750ms"
)

// Range limits.
const (
	MaxMaxResults  = 50
	MaxMaxAttempts = 10
)

// Known providers.
var Providers = []string{"openai", "gemini"}

// Config holds all configuration for deck generation.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Search   SearchConfig   `yaml:"search"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	Retry    RetryConfig    `yaml:"retry"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// ProviderConfig selects the language model backend.
type ProviderConfig struct {
	Name    string `yaml:"name"`    // "openai" or "gemini" (default: "openai")
	Model   string `yaml:"model"`   // Empty = provider default
	BaseURL string `yaml:"baseURL"` // Empty = provider default endpoint
}

// SearchConfig defines web search options.
type SearchConfig struct {
	Skip       bool   `yaml:"skip"`       // Never search
	Optional   bool   `yaml:"optional"`   // Continue without context when search fails
	MaxResults int    `yaml:"maxResults"` // 1-50 (default: 8)
	Timeout    string `yaml:"timeout"`    // Go duration (default: 30s)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
	HTML       bool   `yaml:"html"`       // Also write an HTML preview
	PDF        bool   `yaml:"pdf"`        // Also write a PDF handout
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	Seed    *uint64 `yaml:"seed"`    // Nil = random backgrounds
	Timeout string  `yaml:"timeout"` // Handout rendering, Go duration (default: 30s)
}

// RetryConfig bounds generation retries.
type RetryConfig struct {
	MaxAttempts  int    `yaml:"maxAttempts"`  // 1-10 (default: 3)
	InitialDelay string `yaml:"initialDelay"` // Go duration (default: 1s)
	MaxDelay     string `yaml:"maxDelay"`     // Go duration (default: 8s)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths, enums and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Provider.Name != "" && !isProvider(c.Provider.Name) {
		return fmt.Errorf("%w: provider.name: %q (must be one of %s)", ErrInvalidValue, c.Provider.Name, strings.Join(Providers, ", "))
	}
	if err := validateFieldLength("provider.model", c.Provider.Model, MaxModelLength); err != nil {
		return err
	}
	if err := validateFieldLength("provider.baseURL", c.Provider.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Provider.BaseURL != "" && !strings.HasPrefix(c.Provider.BaseURL, "http://") && !strings.HasPrefix(c.Provider.BaseURL, "https://") {
		return fmt.Errorf("%w: provider.baseURL: must start with http:// or https://", ErrInvalidValue)
	}

	if c.Search.MaxResults < 0 || c.Search.MaxResults > MaxMaxResults {
		return fmt.Errorf("%w: search.maxResults: must be between 0 and %d, got %d", ErrInvalidValue, MaxMaxResults, c.Search.MaxResults)
	}
	if err := validateDuration("search.timeout", c.Search.Timeout); err != nil {
		return err
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateDuration("render.timeout", c.Render.Timeout); err != nil {
		return err
	}

	if c.Retry.MaxAttempts < 0 || c.Retry.MaxAttempts > MaxMaxAttempts {
		return fmt.Errorf("%w: retry.maxAttempts: must be between 0 and %d, got %d", ErrInvalidValue, MaxMaxAttempts, c.Retry.MaxAttempts)
	}
	if err := validateDuration("retry.initialDelay", c.Retry.InitialDelay); err != nil {
		return err
	}
	if err := validateDuration("retry.maxDelay", c.Retry.MaxDelay); err != nil {
		return err
	}
	if c.Retry.InitialDelay != "" && c.Retry.MaxDelay != "" {
		initial, _ := time.ParseDuration(c.Retry.InitialDelay)
		maxDelay, _ := time.ParseDuration(c.Retry.MaxDelay)
		if initial > maxDelay {
			return fmt.Errorf("%w: retry.initialDelay: %s exceeds retry.maxDelay %s", ErrInvalidValue, initial, maxDelay)
		}
	}

	return validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateDuration accepts empty or a positive Go duration.
func validateDuration(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxDurationLength); err != nil {
		return err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %q is not a duration", ErrInvalidValue, fieldName, value)
	}
	if d <= 0 {
		return fmt.Errorf("%w: %s: must be positive, got %s", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// Duration parses a validated duration field. Empty or invalid values yield fallback.
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func isProvider(name string) bool {
	for _, p := range Providers {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// DefaultConfig returns a configuration that defers every choice to
// library defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{Name: "openai"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-autodeck/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

package main

// Notes:
// - loadEnvConfig: we test every variable and that invalid numbers, durations
//   and seeds are ignored, not errors.
// - loadDotEnv: we test default vs explicit missing files and lookup priority.
// - warnUnknownEnvVars: we test typo detection in both sources.
// - applyEnvConfig: env overrides config, unset env leaves config alone.
// Lookups are injected, so no test touches the process environment.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-autodeck/internal/config"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapEnv(map[string]string{
			"AUTODECK_CONFIG":      "team",
			"AUTODECK_PROVIDER":    "gemini",
			"AUTODECK_OUTPUT_DIR":  "/decks",
			"AUTODECK_MAX_RESULTS": "5",
			"AUTODECK_TIMEOUT":     "2m",
			"AUTODECK_SEED":        "99",
			"OAI_MODEL":            "gpt-4.1",
		}))

		if cfg.ConfigPath != "team" || cfg.Provider != "gemini" || cfg.OutputDir != "/decks" {
			t.Errorf("strings = %+v", cfg)
		}
		if cfg.MaxResults != 5 {
			t.Errorf("MaxResults = %d, want 5", cfg.MaxResults)
		}
		if cfg.Timeout != 2*time.Minute {
			t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
		}
		if cfg.Seed == nil || *cfg.Seed != 99 {
			t.Errorf("Seed = %v, want 99", cfg.Seed)
		}
		if cfg.Model != "gpt-4.1" {
			t.Errorf("Model = %q, want gpt-4.1", cfg.Model)
		}
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapEnv(map[string]string{
			"AUTODECK_MAX_RESULTS": "-2",
			"AUTODECK_TIMEOUT":     "forever",
			"AUTODECK_SEED":        "abc",
		}))

		if cfg.MaxResults != 0 || cfg.Timeout != 0 || cfg.Seed != nil {
			t.Errorf("cfg = %+v, want zero values", cfg)
		}
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapEnv(nil))
		if *cfg != (envConfig{}) {
			t.Errorf("cfg = %+v, want zero value", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadDotEnv - Dotenv files
// ---------------------------------------------------------------------------

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()

	t.Run("reads variables", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), ".env", "# keys\nOPENAI_API_KEY=sk-file\nAUTODECK_SEED=3\n")

		d, err := loadDotEnv(path, true)
		if err != nil {
			t.Fatalf("loadDotEnv() error = %v", err)
		}
		if !d.loaded {
			t.Error("loaded = false, want true")
		}
		if d.vars["OPENAI_API_KEY"] != "sk-file" {
			t.Errorf("vars = %v", d.vars)
		}
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		t.Parallel()

		d, err := loadDotEnv(filepath.Join(t.TempDir(), ".env"), false)
		if err != nil {
			t.Fatalf("loadDotEnv() error = %v", err)
		}
		if d.loaded {
			t.Error("loaded = true for missing file")
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := loadDotEnv(filepath.Join(t.TempDir(), "ci.env"), true)
		if !errors.Is(err, ErrReadEnvFile) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrReadEnvFile wrapping ErrNotExist", err)
		}
	})

	t.Run("empty path disables loading", func(t *testing.T) {
		t.Parallel()

		d, err := loadDotEnv("", true)
		if err != nil || d.loaded {
			t.Errorf("loadDotEnv(\"\") = %+v, %v", d, err)
		}
	})

	t.Run("process environment wins over file", func(t *testing.T) {
		t.Parallel()

		d := &dotEnv{vars: map[string]string{"A": "file", "B": "file"}, loaded: true}
		get := d.lookup(mapEnv(map[string]string{"A": "process"}))

		if got := get("A"); got != "process" {
			t.Errorf("A = %q, want process", got)
		}
		if got := get("B"); got != "file" {
			t.Errorf("B = %q, want file", got)
		}
		if got := get("C"); got != "" {
			t.Errorf("C = %q, want empty", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf,
		[]string{"AUTODECK_PROVIDER=openai", "AUTODECK_OUTPT_DIR=x", "HOME=/root", "OAI_MODEL=x"},
		map[string]string{"AUTODECK_SEEDS": "1", "AUTODECK_SEED": "1"},
	)

	out := buf.String()
	for _, want := range []string{"AUTODECK_OUTPT_DIR", "AUTODECK_SEEDS"} {
		if !strings.Contains(out, "unknown environment variable "+want) {
			t.Errorf("output missing warning for %s:\n%s", want, out)
		}
	}
	for _, known := range []string{"AUTODECK_PROVIDER ", "AUTODECK_SEED ", "HOME", "OAI_MODEL"} {
		if strings.Contains(out, known) {
			t.Errorf("unexpected warning for %s:\n%s", known, out)
		}
	}
	if strings.Index(out, "AUTODECK_OUTPT_DIR") > strings.Index(out, "AUTODECK_SEEDS") {
		t.Error("warnings not sorted")
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config priority
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config", func(t *testing.T) {
		t.Parallel()

		seed := uint64(5)
		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-config"
		cfg.Search.MaxResults = 2

		applyEnvConfig(&envConfig{Provider: "gemini", OutputDir: "from-env", MaxResults: 6, Seed: &seed}, cfg)

		if cfg.Provider.Name != "gemini" {
			t.Errorf("Provider.Name = %q", cfg.Provider.Name)
		}
		if cfg.Output.DefaultDir != "from-env" {
			t.Errorf("DefaultDir = %q", cfg.Output.DefaultDir)
		}
		if cfg.Search.MaxResults != 6 {
			t.Errorf("MaxResults = %d", cfg.Search.MaxResults)
		}
		if cfg.Render.Seed == nil || *cfg.Render.Seed != 5 {
			t.Errorf("Seed = %v", cfg.Render.Seed)
		}
		seed = 9
		if *cfg.Render.Seed != 5 {
			t.Error("config seed aliases env seed")
		}
	})

	t.Run("unset env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-config"

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.DefaultDir != "from-config" || cfg.Provider.Name != "openai" {
			t.Errorf("cfg changed: %+v", cfg)
		}
	})
}

package main

// Notes:
// - parseGenerateFlags: we test defaults, short forms, positional topic words
//   and the Changed tracking used for layering.
// - parseDoctorFlags: we test --json and --env-file.

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Generate command flags
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseGenerateFlags(nil, io.Discard)
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
		if f.search.maxResults != 8 {
			t.Errorf("maxResults = %d, want 8", f.search.maxResults)
		}
		if f.output.format != formatJSON {
			t.Errorf("format = %q, want json", f.output.format)
		}
		if f.envFile != defaultEnvFile {
			t.Errorf("envFile = %q, want %q", f.envFile, defaultEnvFile)
		}
		if f.maxResultsSet || f.seedSet || f.envFileSet {
			t.Error("Changed flags reported without arguments")
		}
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseGenerateFlags([]string{
			"--topic", "Go", "--max-results", "3", "--model", "gpt-4.1",
			"--outfile", "a.pptx", "--dry-run", "--no-web", "-c", "work",
			"--provider", "gemini", "--seed", "42", "--web-optional",
			"--format", "yaml", "--html", "--pdf", "-t", "1m",
			"--env-file", "ci.env", "-q", "-v", "-o", "out", "--asset-path", "brand",
		}, io.Discard)
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}

		checks := []struct {
			name string
			ok   bool
		}{
			{"topic", f.topic == "Go"},
			{"maxResults", f.search.maxResults == 3 && f.maxResultsSet},
			{"model", f.model.model == "gpt-4.1"},
			{"provider", f.model.provider == "gemini"},
			{"outfile", f.output.outfile == "a.pptx"},
			{"outputDir", f.output.outputDir == "out"},
			{"dryRun", f.output.dryRun},
			{"format", f.output.format == formatYAML},
			{"html/pdf", f.output.html && f.output.pdf},
			{"noWeb", f.search.noWeb},
			{"webOptional", f.search.webOptional},
			{"config", f.common.config == "work"},
			{"quiet/verbose", f.common.quiet && f.common.verbose},
			{"seed", f.render.seed == 42 && f.seedSet},
			{"timeout", f.render.timeout == "1m"},
			{"assetPath", f.render.assetPath == "brand"},
			{"envFile", f.envFile == "ci.env" && f.envFileSet},
		}
		for _, c := range checks {
			if !c.ok {
				t.Errorf("%s not parsed as expected: %+v", c.name, f)
			}
		}
	})

	t.Run("positional topic words", func(t *testing.T) {
		t.Parallel()

		_, args, err := parseGenerateFlags([]string{"--no-web", "Rust", "vs", "Go"}, io.Discard)
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if len(args) != 3 || args[0] != "Rust" || args[2] != "Go" {
			t.Errorf("args = %v, want [Rust vs Go]", args)
		}
	})

	t.Run("invalid seed", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseGenerateFlags([]string{"--seed", "-1"}, io.Discard); err == nil {
			t.Error("expected error for negative seed")
		}
	})

	t.Run("help returns ErrHelp", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseGenerateFlags([]string{"--help"}, io.Discard)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want ErrHelp", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseDoctorFlags - Doctor command flags
// ---------------------------------------------------------------------------

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "--env-file", "x.env"}, io.Discard)
	if err != nil {
		t.Fatalf("parseDoctorFlags() error = %v", err)
	}
	if !f.json || f.envFile != "x.env" {
		t.Errorf("flags = %+v", f)
	}

	if _, err := parseDoctorFlags([]string{"--verbose"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	autodeck "github.com/alnah/go-autodeck"
	"github.com/alnah/go-autodeck/internal/llm"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Stub collaborators
// ---------------------------------------------------------------------------

// testReply is a well-formed generator reply with three slides.
const testReply = `{"slides": [
  {"title": "Go Generics", "bullets": [], "notes": "Welcome."},
  {"title": "Overview", "bullets": ["Type parameters", "Constraints"], "notes": ""},
  {"title": "Takeaways", "bullets": ["Use any sparingly"], "notes": "Questions?"}
]}`

// stubGenerator replies with a fixed text or error.
type stubGenerator struct {
	reply string
	err   error
	model string

	mu    sync.Mutex
	calls int
	user  string
}

func (g *stubGenerator) Generate(_ context.Context, _, user string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.user = user
	return g.reply, g.err
}

func (g *stubGenerator) Model() string { return g.model }

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// stubSearcher returns fixed snippets or an error.
type stubSearcher struct {
	snippets []autodeck.Snippet
	err      error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]autodeck.Snippet, error) {
	return s.snippets, s.err
}

// testEnv bundles an Environment with its captured output and the
// settings passed to the generator factory.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	vars     map[string]string
	gen      *stubGenerator
	search   *stubSearcher
	mu       sync.Mutex
	settings llm.Settings
}

// newTestEnv returns an environment with an OpenAI key set, a generator
// answering testReply and a searcher returning one snippet.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		vars:   map[string]string{"OPENAI_API_KEY": "sk-test"},
		gen:    &stubGenerator{reply: testReply, model: "stub-model"},
		search: &stubSearcher{snippets: []autodeck.Snippet{
			{Title: "Generics", Body: "Go 1.18 added type parameters.", URL: "https://go.dev"},
		}},
	}
	te.Environment = &Environment{
		Stdout: te.stdout,
		Stderr: te.stderr,
		Stdin:  strings.NewReader(""),
		Getenv: func(k string) string { return te.vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(te.vars))
			for k, v := range te.vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewGenerator: func(_ context.Context, s llm.Settings) (llm.Generator, error) {
			te.mu.Lock()
			te.settings = s
			te.mu.Unlock()
			if s.APIKey == "" {
				return nil, fmt.Errorf("%w: %s is not set", llm.ErrMissingCredential, llm.CredentialEnv(s.Provider))
			}
			return te.gen, nil
		},
		NewSearcher: func(time.Duration) autodeck.Searcher { return te.search },
		LookBrowser: func() (string, bool) { return "", false },
	}
	return te
}

func (te *testEnv) lastSettings() llm.Settings {
	te.mu.Lock()
	defer te.mu.Unlock()
	return te.settings
}

// run calls runMain with the program name prepended.
func (te *testEnv) run(args ...string) int {
	return runMain(context.Background(), append([]string{"autodeck"}, args...), te.Environment)
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// listDir returns the names of the entries in dir.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// errReader fails every read.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

var _ io.Reader = errReader{}

package autodeck

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockGenerator replays replies in order; the last reply repeats.
type mockGenerator struct {
	mu      sync.Mutex
	replies []string
	errs    []error
	calls   int
	system  string
	user    string
}

func (m *mockGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.calls
	m.calls++
	m.system = system
	m.user = user

	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	return m.replies[min(i, len(m.replies)-1)], nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockSearcher struct {
	results []Snippet
	err     error
	called  bool
	query   string
	limit   int
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit int) ([]Snippet, error) {
	m.called = true
	m.query = query
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockHandout struct {
	called    bool
	inputHTML string
	output    []byte
	err       error
	closed    bool
}

func (m *mockHandout) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockHandout) Close() error {
	m.closed = true
	return nil
}

// sleepRecorder records requested pauses without sleeping.
type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return ctx.Err()
}

var errMockTransport = errors.New("mock transport failure")

// validReply is a well-formed generator reply with a title slide and two
// content slides.
const validReply = `{"slides": [
  {"title": "Go Generics", "bullets": [], "notes": "Welcome everyone."},
  {"title": "Overview", "bullets": ["Type parameters", "**Constraints** matter", "  "], "notes": ""},
  {"title": "Takeaways", "bullets": ["Use ` + "`any`" + ` sparingly"], "notes": "Line one\nLine two"}
]}`

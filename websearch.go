package autodeck

import (
	"context"
	"time"

	"github.com/alnah/go-autodeck/internal/search"
)

// Compile-time interface check
var _ Searcher = (*WebSearcher)(nil)

// WebSearcher is the default Searcher, backed by DuckDuckGo's HTML results page.
type WebSearcher struct {
	ddg *search.DuckDuckGo
}

// NewWebSearcher creates a WebSearcher. A non-positive timeout uses the
// search package default.
func NewWebSearcher(timeout time.Duration) *WebSearcher {
	var opts []search.Option
	if timeout > 0 {
		opts = append(opts, search.WithTimeout(timeout))
	}
	return &WebSearcher{ddg: search.NewDuckDuckGo(opts...)}
}

// Search returns up to limit snippets for query.
func (w *WebSearcher) Search(ctx context.Context, query string, limit int) ([]Snippet, error) {
	results, err := w.ddg.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	snippets := make([]Snippet, len(results))
	for i, r := range results {
		snippets[i] = Snippet{Title: r.Title, Body: r.Body, URL: r.URL}
	}
	return snippets, nil
}

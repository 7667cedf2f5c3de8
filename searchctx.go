package autodeck

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ContextCap is the maximum length, in characters, of search context text.
const ContextCap = 6000

const ellipsis = "..."

// Searcher returns web results for a query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Snippet, error)
}

// BuildSearchContext queries s once and formats up to limit results into a
// numbered context block capped at ContextCap characters.
// Any searcher failure is reported as ErrSearchUnavailable.
func BuildSearchContext(ctx context.Context, s Searcher, query string, limit int) (*SearchContext, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no searcher configured", ErrSearchUnavailable)
	}
	if limit <= 0 {
		return &SearchContext{}, nil
	}

	results, err := s.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	snippets := make([]Snippet, 0, min(len(results), limit))
	for _, r := range results {
		if len(snippets) == limit {
			break
		}
		sn := Snippet{
			Title: strings.TrimSpace(r.Title),
			Body:  strings.TrimSpace(r.Body),
			URL:   strings.TrimSpace(r.URL),
		}
		if sn.Title == "" && sn.Body == "" {
			continue
		}
		snippets = append(snippets, sn)
	}

	blocks := make([]string, len(snippets))
	for i, sn := range snippets {
		blocks[i] = fmt.Sprintf("[%d] %s\nSummary: %s\nURL: %s\n", i+1, sn.Title, sn.Body, sn.URL)
	}

	return &SearchContext{
		Snippets: snippets,
		Text:     capBlocks(blocks, ContextCap),
	}, nil
}

// capBlocks joins blocks with newlines. When the result exceeds limit runes,
// whole blocks are kept while they fit and the text ends with an ellipsis.
// A first block that cannot fit on its own is cut short.
func capBlocks(blocks []string, limit int) string {
	joined := strings.Join(blocks, "\n")
	if utf8.RuneCountInString(joined) <= limit {
		return joined
	}

	budget := limit - len(ellipsis)
	var b strings.Builder
	used := 0
	for i, block := range blocks {
		n := utf8.RuneCountInString(block)
		if i > 0 {
			n++
		}
		if used+n > budget {
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(block)
		used += n
	}

	if used == 0 {
		runes := []rune(blocks[0])
		return string(runes[:max(budget, 0)]) + ellipsis
	}
	return b.String() + ellipsis
}

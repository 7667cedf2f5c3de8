// Package search retrieves web search snippets from DuckDuckGo's HTML endpoint.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultEndpoint is DuckDuckGo's JavaScript-free results page.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps the response body read from the endpoint.
const maxBodySize = 1 << 20

const redirectPrefix = "//duckduckgo.com/l/?uddg="

// Sentinel errors for search operations.
var (
	ErrRequest  = errors.New("search request failed")
	ErrStatus   = errors.New("unexpected search response status")
	ErrResponse = errors.New("invalid search response")
)

// Result is one search hit.
type Result struct {
	Title string
	Body  string
	URL   string
}

// DuckDuckGo queries the DuckDuckGo HTML endpoint.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a DuckDuckGo client.
type Option func(*DuckDuckGo)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(d *DuckDuckGo) {
		if c != nil {
			d.client = c
		}
	}
}

// WithEndpoint overrides the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(d *DuckDuckGo) {
		if endpoint != "" {
			d.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-request timeout. Zero keeps DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *DuckDuckGo) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// NewDuckDuckGo creates a DuckDuckGo client.
func NewDuckDuckGo(opts ...Option) *DuckDuckGo {
	d := &DuckDuckGo{
		client:   http.DefaultClient,
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Search returns up to limit results for query.
func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	searchURL := d.endpoint + "?q=" + url.QueryEscape(query)

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	// The endpoint serves an empty page to clients that don't look like browsers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrResponse, err)
	}

	return ParseResults(string(body), limit)
}

// ParseResults extracts up to limit results from a DuckDuckGo HTML page.
// Results with neither a title nor a body are skipped, as are sponsored
// results. A non-positive limit returns nil.
func ParseResults(htmlContent string, limit int) ([]Result, error) {
	if limit <= 0 {
		return nil, nil
	}
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponse, err)
	}

	var results []Result
	var find func(*html.Node)
	find = func(n *html.Node) {
		if len(results) >= limit {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" {
			class := attr(n, "class")
			if strings.Contains(class, "result--ad") {
				return
			}
			if strings.Contains(class, "result") && strings.Contains(class, "results_links") {
				if r := extractResult(n); r.Title != "" || r.Body != "" {
					results = append(results, r)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)

	return results, nil
}

func extractResult(n *html.Node) Result {
	var r Result
	var snippetHref string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			class := attr(n, "class")
			switch {
			case strings.Contains(class, "result__a"):
				r.URL = attr(n, "href")
				r.Title = textContent(n)
			case strings.Contains(class, "result__snippet"):
				r.Body = textContent(n)
				snippetHref = attr(n, "href")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	if r.URL == "" && snippetHref != "#" {
		r.URL = snippetHref
	}
	r.URL = unwrapRedirect(r.URL)
	return r
}

// unwrapRedirect returns the target of a DuckDuckGo click-tracking link.
func unwrapRedirect(raw string) string {
	rest, ok := strings.CutPrefix(raw, redirectPrefix)
	if !ok {
		return raw
	}
	// The target is percent-encoded, so the first raw '&' ends it.
	target, _, _ := strings.Cut(rest, "&")
	decoded, err := url.QueryUnescape(target)
	if err != nil || decoded == "" {
		return raw
	}
	return decoded
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent joins the trimmed text nodes under n with single spaces.
func textContent(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

package autodeck

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Builder or Renderer.
type Option func(*options)

// options holds settings shared by Builder and Renderer.
type options struct {
	generator Generator
	searcher  Searcher
	logger    *zap.Logger
	seed      *uint64
	now       func() time.Time
	retry     RetryPolicy
	sleep     SleepFunc
	assetPath string
	timeout   time.Duration
	handout   handoutRenderer
}

// defaultTimeout bounds handout rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		now:     time.Now,
		retry:   DefaultRetryPolicy(),
		timeout: defaultTimeout,
	}
}

// WithGenerator sets the language model used to produce slide content.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithSearcher sets the web search provider.
func WithSearcher(s Searcher) Option {
	return func(o *options) {
		o.searcher = s
	}
}

// WithLogger sets the structured logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSeed makes background selection reproducible. Every render made with
// the same seed picks the same backgrounds.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithClock sets the clock used for document timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRetryPolicy sets the generation retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *options) {
		o.retry = p
	}
}

// WithSleep replaces the pause between generation attempts.
func WithSleep(fn SleepFunc) Option {
	return func(o *options) {
		o.sleep = fn
	}
}

// WithAssetPath overrides deck parts and styles from a directory, falling
// back to the built-in assets for anything it does not contain.
func WithAssetPath(path string) Option {
	return func(o *options) {
		o.assetPath = path
	}
}

// WithTimeout sets the handout rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("autodeck: WithTimeout duration must be positive")
	}
	return func(o *options) {
		o.timeout = d
	}
}

// withHandoutRenderer injects the PDF backend (tests).
func withHandoutRenderer(h handoutRenderer) Option {
	return func(o *options) {
		o.handout = h
	}
}

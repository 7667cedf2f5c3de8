package autodeck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Generator produces raw text for a system and user instruction pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// RetryPolicy bounds the attempts made by a Requester.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryPolicy returns 3 attempts with delays of 1s then 2s, capped at 8s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     8 * time.Second,
	}
}

// Delay returns the pause before the attempt that follows failed attempt n
// (n starts at 1): min(InitialDelay * 2^(n-1), MaxDelay).
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 {
		return 0
	}
	d := p.InitialDelay
	for i := 1; i < n; i++ {
		if d >= p.MaxDelay/2 {
			return p.MaxDelay
		}
		d *= 2
	}
	return min(d, p.MaxDelay)
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var (
	errEmptyBody     = errors.New("empty response body")
	errMalformedJSON = errors.New("malformed JSON")
)

// Requester obtains raw slide content from a Generator with bounded retries.
type Requester struct {
	gen    Generator
	policy RetryPolicy
	sleep  SleepFunc
	logger *zap.Logger
}

// NewRequester creates a Requester. A nil sleep uses a context-aware timer;
// a nil logger discards output.
func NewRequester(gen Generator, policy RetryPolicy, sleep SleepFunc, logger *zap.Logger) *Requester {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if sleep == nil {
		sleep = sleepContext
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Requester{gen: gen, policy: policy, sleep: sleep, logger: logger}
}

// Request asks the generator for a deck on topic and decodes the reply.
//
// Generator errors, empty replies and undecodable replies are retried until
// the policy's attempts are used up, then reported as ErrGeneration.
// ErrMissingCredential and context cancellation stop immediately.
func (r *Requester) Request(ctx context.Context, topic, webContext string) (RawContent, error) {
	if r.gen == nil {
		return RawContent{}, ErrNoGenerator
	}
	prompt := BuildPrompt(topic, webContext)

	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := r.policy.Delay(attempt - 1)
			r.logger.Debug("retrying generation", zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.Error(lastErr))
			if err := r.sleep(ctx, delay); err != nil {
				return RawContent{}, err
			}
		}

		text, err := r.gen.Generate(ctx, prompt.System, prompt.User)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return RawContent{}, err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return RawContent{}, ctxErr
			}
			lastErr = err
			r.logger.Warn("generation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		raw, err := ParseRawContent(text)
		if err != nil {
			lastErr = err
			r.logger.Warn("generation reply rejected", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		return raw, nil
	}

	return RawContent{}, fmt.Errorf("%w: %d attempts: %w", ErrGeneration, r.policy.MaxAttempts, lastErr)
}

// ParseRawContent decodes a generator reply. Surrounding whitespace and a
// Markdown code fence are removed first; numbers keep their literal text.
func ParseRawContent(text string) (RawContent, error) {
	body := stripCodeFence(strings.TrimSpace(text))
	if body == "" {
		return RawContent{}, errEmptyBody
	}

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return RawContent{}, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return RawContent{}, fmt.Errorf("%w: trailing data after JSON value", errMalformedJSON)
	}
	return RawContent{value: v}, nil
}

// stripCodeFence removes a ```lang ... ``` wrapper if present. The language
// tag may sit on its own line or directly before the body.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	inner := strings.TrimSpace(s[3 : len(s)-3])
	return strings.TrimSpace(inner[fenceTagLen(inner):])
}

// fenceTagLen returns the length of a leading language tag such as "json".
func fenceTagLen(s string) int {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '+' || r == '_'):
		default:
			return i
		}
	}
	return len(s)
}

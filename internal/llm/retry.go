package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 2 * time.Second
)

// RetryClient wraps a Client with exponential-backoff retries. The delay
// doubles after each failed attempt (2s, 4s, ...). Auth failures and context
// cancellation are not retried.
type RetryClient struct {
	inner       Client
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// RetryOption configures a RetryClient.
type RetryOption func(*RetryClient)

// WithMaxAttempts overrides the attempt count.
func WithMaxAttempts(n int) RetryOption {
	return func(r *RetryClient) {
		r.maxAttempts = n
	}
}

// WithBaseDelay overrides the first retry delay.
func WithBaseDelay(d time.Duration) RetryOption {
	return func(r *RetryClient) {
		r.baseDelay = d
	}
}

// WithRetry wraps inner with retry behavior.
func WithRetry(inner Client, opts ...RetryOption) *RetryClient {
	r := &RetryClient{
		inner:       inner,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		sleep:       sleepCtx,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements Client.
func (r *RetryClient) Name() string { return r.inner.Name() }

// Generate implements Client.
func (r *RetryClient) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	delay := r.baseDelay
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		text, err := r.inner.Generate(ctx, prompt, params)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.maxAttempts {
			return "", lastErr
		}

		slog.Warn("generation failed, retrying",
			"backend", r.inner.Name(), "attempt", attempt, "delay", delay, "error", err)

		if err := r.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}
	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

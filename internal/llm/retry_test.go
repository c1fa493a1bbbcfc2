package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeClient fails a fixed number of times before succeeding.
type fakeClient struct {
	failures int
	err      error
	calls    int
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return "ok", nil
}

func newTestRetry(inner Client) *RetryClient {
	r := WithRetry(inner, WithBaseDelay(time.Millisecond))
	// Count sleeps instead of actually waiting.
	r.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return r
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	inner := &fakeClient{failures: 2, err: errors.New("boom")}
	r := newTestRetry(inner)

	text, err := r.Generate(context.Background(), "p", Params{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if text != "ok" {
		t.Errorf("Generate() = %q, want ok", text)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &fakeClient{failures: 10, err: errors.New("boom")}
	r := newTestRetry(inner)

	_, err := r.Generate(context.Background(), "p", Params{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != defaultMaxAttempts {
		t.Errorf("calls = %d, want %d", inner.calls, defaultMaxAttempts)
	}
}

func TestRetryDoesNotRetryAuthErrors(t *testing.T) {
	inner := &fakeClient{failures: 10, err: fmt.Errorf("status 401: %w", ErrUnauthorized)}
	r := newTestRetry(inner)

	_, err := r.Generate(context.Background(), "p", Params{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on auth failure)", inner.calls)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	inner := &fakeClient{failures: 10, err: errors.New("boom")}
	r := WithRetry(inner, WithBaseDelay(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, "p", Params{})
	if err == nil {
		t.Fatal("expected error with canceled context")
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryDelayDoubles(t *testing.T) {
	inner := &fakeClient{failures: 2, err: errors.New("boom")}
	r := WithRetry(inner, WithBaseDelay(2*time.Second))

	var delays []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	if _, err := r.Generate(context.Background(), "p", Params{}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("got %d sleeps %v, want %d", len(delays), delays, len(want))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %s, want %s", i, delays[i], want[i])
		}
	}
}

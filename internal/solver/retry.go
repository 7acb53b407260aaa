package solver

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider decorates a Provider with exponential backoff on
// transient errors.
type retryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, config: cfg}
}

func (r *retryProvider) Solve(ctx context.Context, prob Problem) (*Result, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Solve(ctx, prob)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry classifies an error as transient. A schema-invalid
// response gets exactly one retry; context errors never retry.
func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Anything else (network etc.) is treated as transient.
	return true
}

// backoff computes the wait before the next attempt: exponential with
// ±20% jitter, capped at MaxWait. Rate limits that carry a RetryAfter
// hint are honored directly.
func (r *retryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

package genai

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy retries a generation with exponential backoff (1s, 2s, 4s
// at the defaults). Sleep is injectable so tests run without waiting.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       func(time.Duration)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// Do runs fn up to MaxAttempts times, backing off between retryable
// failures. Non-retryable errors return immediately.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(ctx, err) {
			return fmt.Errorf("%s: %w", op, err)
		}
		if attempt == attempts-1 {
			break
		}
		slog.WarnContext(ctx, "genai retry",
			"op", op,
			"attempt", attempt+1,
			"error", err)
		sleep(time.Duration(1<<attempt) * p.BaseDelay)
	}
	return fmt.Errorf("%s after %d attempts: %w", op, attempts, err)
}

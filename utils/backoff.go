package utils

import (
	"context"
	"fmt"
	"time"
)

// Retry runs fn up to attempts times, sleeping base, 2*base, 4*base, ...
// between tries (capped at 30s). It stops early when fn succeeds or ctx is
// done. It replaces ad hoc poll loops for "wait until a dependency is ready".
func Retry(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := base
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled after %d attempts: %w", i+1, ctx.Err())
		case <-time.After(delay):
		}

		delay *= 2
		if delay > 30*time.Second {
			delay = 30 * time.Second
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}

// Package retry provides the small retry and polling helpers end-to-end
// tests use around flaky UI conditions.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout indicates a polled condition never became true within its
// deadline.
var ErrTimeout = errors.New("retry: condition not met before timeout")

// Do calls fn up to attempts times, sleeping delay between failures.
// It returns nil on the first success, the context error if the context
// is cancelled while waiting, and otherwise the last failure wrapped
// with the attempt count.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		// No sleep after the final attempt
		if i < attempts-1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return fmt.Errorf("retry: %d attempts failed: %w", attempts, lastErr)
}

// Until polls cond every interval until it returns true, the timeout
// elapses, or the context is cancelled. cond errors are terminal and
// returned immediately.
func Until(ctx context.Context, interval, timeout time.Duration, cond func() (bool, error)) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Check once up front so a condition that already holds never waits
	done, err := cond()
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return ErrTimeout
		case <-ticker.C:
			done, err := cond()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}
		if calls != 1 {
			t.Errorf("Expected 1 call, got %d", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), 5, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}
		if calls != 3 {
			t.Errorf("Expected 3 calls, got %d", calls)
		}
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		lastErr := errors.New("still broken")
		calls := 0
		err := Do(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return lastErr
		})
		if !errors.Is(err, lastErr) {
			t.Errorf("Expected wrapped last error, got %v", err)
		}
		if calls != 3 {
			t.Errorf("Expected 3 calls, got %d", calls)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := Do(ctx, 3, time.Millisecond, func() error {
			calls++
			return errors.New("nope")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if calls != 0 {
			t.Errorf("Expected 0 calls after cancellation, got %d", calls)
		}
	})

	t.Run("treats zero attempts as one", func(t *testing.T) {
		calls := 0
		_ = Do(context.Background(), 0, time.Millisecond, func() error {
			calls++
			return errors.New("nope")
		})
		if calls != 1 {
			t.Errorf("Expected 1 call, got %d", calls)
		}
	})
}

func TestUntil(t *testing.T) {
	t.Run("returns immediately when condition already holds", func(t *testing.T) {
		start := time.Now()
		err := Until(context.Background(), 50*time.Millisecond, time.Second, func() (bool, error) {
			return true, nil
		})
		if err != nil {
			t.Fatalf("Until failed: %v", err)
		}
		if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
			t.Errorf("Expected immediate return, took %s", elapsed)
		}
	})

	t.Run("polls until condition becomes true", func(t *testing.T) {
		checks := 0
		err := Until(context.Background(), time.Millisecond, time.Second, func() (bool, error) {
			checks++
			return checks >= 3, nil
		})
		if err != nil {
			t.Fatalf("Until failed: %v", err)
		}
		if checks < 3 {
			t.Errorf("Expected at least 3 checks, got %d", checks)
		}
	})

	t.Run("times out", func(t *testing.T) {
		err := Until(context.Background(), time.Millisecond, 20*time.Millisecond, func() (bool, error) {
			return false, nil
		})
		if !errors.Is(err, ErrTimeout) {
			t.Errorf("Expected ErrTimeout, got %v", err)
		}
	})

	t.Run("condition error is terminal", func(t *testing.T) {
		condErr := errors.New("page gone")
		err := Until(context.Background(), time.Millisecond, time.Second, func() (bool, error) {
			return false, condErr
		})
		if !errors.Is(err, condErr) {
			t.Errorf("Expected condition error, got %v", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(5 * time.Millisecond)
			cancel()
		}()

		err := Until(ctx, time.Millisecond, time.Second, func() (bool, error) {
			return false, nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

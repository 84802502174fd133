package retry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/solutionam/partstore/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {

	t.Run("SucceedsFirstAttempt", func(t *testing.T) {
		calls := 0
		err := retry.Do(t.Context(), retry.RetryConfig{MaxAttempts: 3},
			func() error {
				calls++
				return nil
			})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustedAttemptsReturnLastError", func(t *testing.T) {
		wantErr := errors.New("still failing")
		cfg := retry.RetryConfig{
			MaxAttempts: 2,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), cfg, func() error { return wantErr })
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("NonRetryableErrorReturnedImmediately", func(t *testing.T) {
		calls := 0
		fatal := errors.New("fatal")
		cfg := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool {
				return !errors.Is(err, fatal)
			},
		}
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			return fatal
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})
}

func TestDoWithResult(t *testing.T) {
	cfg := retry.RetryConfig{
		MaxAttempts: 2,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}

	got, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

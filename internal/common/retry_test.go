package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshsymonds/hoard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return nil
		}, fastRetry())
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, fastRetry())
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		err := WithRetry(ctx, func() error {
			return errors.New("always fails")
		}, fastRetry())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaxRetries)
	})

	t.Run("non-retryable errors return immediately", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return &RetryableError{Err: errors.New("bad credentials"), Retryable: false}
		}, fastRetry())
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := WithRetry(cancelled, func() error {
			return errors.New("keep going")
		}, fastRetry())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "provider rate limit", err: ErrProviderRateLimit, want: true},
		{name: "wrapped rate limit", err: &RetryableError{Err: ErrProviderRateLimit, Retryable: true}, want: true},
		{name: "marked non-retryable", err: &RetryableError{Err: errors.New("nope"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "missing config", err: ErrMissingConfig, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := NewUserError("could not reach the provider", inner)

	assert.Equal(t, "could not reach the provider: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, inner)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not reach the provider", userErr.UserMessage)
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient failure")

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecuteSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 4, calls)
}

func TestExecuteStopsOnNonRetryableError(t *testing.T) {
	permanent := errors.New("permanent failure")
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, permanent)
	}

	calls := 0
	err := New(cfg).Execute(context.Background(), func(context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := New(fastConfig()).Execute(ctx, func(context.Context) error {
		calls++
		cancel()
		return errTransient
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestCalculateDelayBackoffAndCap(t *testing.T) {
	cfg := Config{BaseDelay: 10 * time.Millisecond, MaxDelay: 35 * time.Millisecond, Multiplier: 2.0}
	r := New(cfg)

	assert.Equal(t, 10*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 20*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 35*time.Millisecond, r.calculateDelay(2))
}

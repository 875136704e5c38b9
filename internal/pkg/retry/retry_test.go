package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDo_SingleAttemptByDefault(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, func() error {
		calls++
		return errors.New("boom")
	})

	require.EqualError(t, err, "boom")
	require.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	cfg := &RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	err := Do(context.Background(), cfg, func() error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestDo_ZeroAttemptsMeansOne(t *testing.T) {
	calls := 0
	err := Do(context.Background(), &RetryConfig{}, func() error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	require.Equal(t, 1, calls)
}

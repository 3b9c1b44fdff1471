package loops

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRunLoopStopsOnError(t *testing.T) {
	boom := errors.New("boom")

	calls := 0
	err := RunLoop(context.Background(), time.Millisecond, func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, calls)
}

func TestRunLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunLoop(ctx, time.Millisecond, func() error { return nil })
	}()

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

package loops

import (
	"context"
	"time"
)

// RunLoop runs a function in the loop until the context is cancelled. A
// returned error from the looped function stops the loop.
func RunLoop(ctx context.Context, interval time.Duration, fn func() error) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

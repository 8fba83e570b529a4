package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReferencePool(t *testing.T) {
	t.Run("Runs dispatched jobs", func(t *testing.T) {
		pool := newReferencePool(2)
		defer pool.Close()

		done := make(chan struct{})
		err := pool.Dispatch(context.Background(), func() error {
			close(done)
			return nil
		})
		assert.NoError(t, err)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("job never ran")
		}
	})

	t.Run("Gives up on a cancelled context when saturated", func(t *testing.T) {
		pool := newReferencePool(1)
		defer pool.Close()
		block := make(chan struct{})
		defer close(block)

		// One job occupies the worker, one fills the buffer.
		_ = pool.Dispatch(context.Background(), func() error { <-block; return nil })
		_ = pool.Dispatch(context.Background(), func() error { <-block; return nil })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := pool.Dispatch(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

package helpers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyPinger struct {
	failures int32
	calls    atomic.Int32
}

func (p *flakyPinger) Ping(context.Context) error {
	if p.calls.Add(1) <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestWaitForDatabase(t *testing.T) {
	t.Run("returns once the database answers", func(t *testing.T) {
		p := &flakyPinger{failures: 2}

		err := WaitForDatabase(context.Background(), p, 10*time.Second)

		require.NoError(t, err)
		assert.Equal(t, int32(3), p.calls.Load())
	})

	t.Run("gives up after max wait", func(t *testing.T) {
		p := &flakyPinger{failures: 1 << 30}

		err := WaitForDatabase(context.Background(), p, 300*time.Millisecond)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database unreachable")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		p := &flakyPinger{failures: 1 << 30}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WaitForDatabase(ctx, p, time.Minute)

		require.Error(t, err)
		assert.LessOrEqual(t, p.calls.Load(), int32(1))
	})
}

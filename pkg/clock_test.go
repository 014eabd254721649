package pkg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClockTick(t *testing.T) {
	store := NewStore()
	fc := NewFrameClock(store, 0)
	assert.Equal(t, DefaultFrameInterval, fc.Interval)

	_, changed := fc.Tick()
	assert.True(t, changed, "first frame always draws")
	_, changed = fc.Tick()
	assert.False(t, changed)

	store.Publish(BoardGrid{})
	snap, changed := fc.Tick()
	assert.True(t, changed)
	assert.Equal(t, BoardGrid{}, snap.Grid)

	store.SetConnection(ClientConnected)
	snap, changed = fc.Tick()
	assert.True(t, changed)
	assert.Equal(t, ClientConnected, snap.State)
}

func TestFrameClockRun(t *testing.T) {
	store := NewStore()
	fc := NewFrameClock(store, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	frames := make(chan Snapshot, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fc.Run(ctx, func(s Snapshot) {
			frames <- s
		})
	}()

	first := <-frames
	assert.Equal(t, uint64(0), first.Version)

	store.Publish(BoardGrid{})
	select {
	case s := <-frames:
		assert.Equal(t, uint64(1), s.Version)
	case <-time.After(time.Second):
		t.Fatal("no frame after publish")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "Run did not return after cancel")
	}
}

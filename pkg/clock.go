package pkg

import (
	"context"
	"time"
)

// DefaultFrameInterval is how often consumers poll the store.
const DefaultFrameInterval = 50 * time.Millisecond

// FrameClock polls a store once per frame and tells the consumer when the
// snapshot changed since the previous frame.
type FrameClock struct {
	Interval time.Duration

	store *Store
	last  Snapshot
	seen  bool
}

func NewFrameClock(store *Store, interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameClock{Interval: interval, store: store}
}

// Tick reads the store. The first tick always reports a change.
func (fc *FrameClock) Tick() (Snapshot, bool) {
	snap := fc.store.Read()
	changed := !fc.seen || snap.Version != fc.last.Version || snap.State != fc.last.State
	fc.last = snap
	fc.seen = true
	return snap, changed
}

// Run calls draw with every changed snapshot until ctx is done.
func (fc *FrameClock) Run(ctx context.Context, draw func(Snapshot)) {
	tick := time.NewTicker(fc.Interval)
	defer tick.Stop()
	for {
		if snap, changed := fc.Tick(); changed {
			draw(snap)
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

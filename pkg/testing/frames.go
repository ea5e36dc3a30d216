package testing

import (
	"sync"
	"time"
)

// FrameQueue is a fake frame source: it records every frame request and
// lets tests fire the queued callbacks by hand. Its Request method
// satisfies animation.FrameFunc, which makes the scheduler's
// self-sustaining frame loop fully deterministic under test.
type FrameQueue struct {
	mu       sync.Mutex
	pending  []func()
	requests int
}

// Request enqueues a frame callback.
func (q *FrameQueue) Request(callback func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, callback)
	q.requests++
}

// Requests returns the total number of frames requested so far.
func (q *FrameQueue) Requests() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.requests
}

// Pending returns the number of queued, unfired callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Fire runs all currently queued callbacks and returns how many ran.
// Callbacks queued by those callbacks stay pending for the next Fire,
// mirroring one platform frame per call.
func (q *FrameQueue) Fire() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

// Pump advances the clock by step and fires queued callbacks, frames
// times in sequence. It is the test-side stand-in for a running frame
// loop.
func (q *FrameQueue) Pump(clock *FakeClock, step time.Duration, frames int) {
	for i := 0; i < frames; i++ {
		clock.Advance(step)
		q.Fire()
	}
}

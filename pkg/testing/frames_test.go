package testing

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFrameQueue_RecordsRequests(t *testing.T) {
	q := &FrameQueue{}
	q.Request(func() {})
	q.Request(func() {})

	if q.Requests() != 2 {
		t.Errorf("expected 2 requests, got %d", q.Requests())
	}
	if q.Pending() != 2 {
		t.Errorf("expected 2 pending, got %d", q.Pending())
	}
}

func TestFrameQueue_FireRunsOneBatch(t *testing.T) {
	q := &FrameQueue{}
	fired := 0
	q.Request(func() {
		fired++
		// A frame callback requesting the next frame must not run in
		// the same batch.
		q.Request(func() { fired++ })
	})

	if n := q.Fire(); n != 1 {
		t.Errorf("expected 1 callback in first batch, got %d", n)
	}
	if fired != 1 {
		t.Errorf("expected only the first callback to run, fired=%d", fired)
	}
	if q.Pending() != 1 {
		t.Errorf("expected re-requested frame to stay pending, got %d", q.Pending())
	}

	q.Fire()
	if fired != 2 {
		t.Errorf("expected second batch to run, fired=%d", fired)
	}
}

func TestFrameQueue_Pump(t *testing.T) {
	q := &FrameQueue{}
	clk := NewFakeClock()
	start := clk.Now()

	ticks := 0
	var request func()
	request = func() {
		ticks++
		q.Request(request)
	}
	q.Request(request)

	q.Pump(clk, 10*time.Millisecond, 5)
	if ticks != 5 {
		t.Errorf("expected 5 ticks, got %d", ticks)
	}
	if got := clk.Now().Sub(start); got != 50*time.Millisecond {
		t.Errorf("expected clock advanced 50ms, got %v", got)
	}
}

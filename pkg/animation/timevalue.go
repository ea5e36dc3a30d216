package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// TimeValue tracks the progress of a single bounded span of time.
//
// It is the simpler sibling of [Animation]: no repetition, no direction,
// no easing, just wall-clock time normalized to a [0, 1] value with
// start/stop callbacks fired exactly once each.
//
// The state machine is Idle -> Started -> (Paused <-> Started) -> Ended.
// Started is entered lazily on the first Advance whose time exceeds the
// configured start, not at construction. Ended is terminal: once entered,
// every further Advance returns the last computed value unchanged.
type TimeValue struct {
	start time.Time
	end   time.Time

	pausedAt      time.Time
	started       bool
	ended         bool
	stopRequested bool
	value         float64

	onStart func()
	onStop  func()
}

// TimeValueConfig configures a TimeValue.
type TimeValueConfig struct {
	// Start is when progress begins counting.
	Start time.Time
	// Duration is the span length. Must be positive.
	Duration time.Duration
	// OnStart fires once, on the first advance past Start.
	OnStart func()
	// OnStop fires once, on entering the terminal state.
	OnStop func()
}

// NewTimeValue creates a TimeValue. A non-positive duration is rejected.
func NewTimeValue(cfg TimeValueConfig) (*TimeValue, error) {
	if cfg.Duration <= 0 {
		return nil, errors.New("animation.NewTimeValue", errors.KindConfig,
			"duration must be positive, got %v", cfg.Duration)
	}
	return &TimeValue{
		start:   cfg.Start,
		end:     cfg.Start.Add(cfg.Duration),
		onStart: cfg.OnStart,
		onStop:  cfg.OnStop,
	}, nil
}

// Advance computes the progress value at now.
//
// Times at or before the start return 0 without firing the start
// callback. While paused, the previously cached value is returned with
// no side effects. Reaching the end time, or a pending Stop request,
// enters the terminal state and fires the stop callback once.
func (tv *TimeValue) Advance(now time.Time) float64 {
	if tv.ended {
		return tv.value
	}
	if !tv.pausedAt.IsZero() {
		return tv.value
	}
	if !now.After(tv.start) {
		return 0
	}
	if !tv.started {
		tv.started = true
		if tv.onStart != nil {
			tv.onStart()
		}
	}

	p := float64(now.Sub(tv.start)) / float64(tv.end.Sub(tv.start))
	if p > 1 {
		p = 1
	}
	tv.value = p

	if tv.stopRequested || !now.Before(tv.end) {
		tv.ended = true
		if tv.onStop != nil {
			tv.onStop()
		}
	}
	return tv.value
}

// Pause suspends progress at now. Pausing while already paused or after
// the terminal state is a no-op.
func (tv *TimeValue) Pause(now time.Time) {
	if tv.ended || !tv.pausedAt.IsZero() {
		return
	}
	tv.pausedAt = now
}

// Resume ends a pause at now, shifting the start and end times forward
// by the paused span so that paused time is excised from the progress
// calculation. Resuming while not paused is a no-op. Resuming at or
// before the start time cancels the pause without any shift, guarding
// against negative-duration artifacts from clock skew.
func (tv *TimeValue) Resume(now time.Time) {
	if tv.ended || tv.pausedAt.IsZero() {
		return
	}
	paused := tv.pausedAt
	tv.pausedAt = time.Time{}
	if !now.After(tv.start) {
		return
	}
	shift := now.Sub(paused)
	if shift < 0 {
		return
	}
	tv.start = tv.start.Add(shift)
	tv.end = tv.end.Add(shift)
}

// Stop requests the terminal transition. It is observed on the next
// Advance; the value at that advance becomes the frozen final value.
func (tv *TimeValue) Stop() {
	if !tv.ended {
		tv.stopRequested = true
	}
}

// Value returns the last computed progress value.
func (tv *TimeValue) Value() float64 { return tv.value }

// Started reports whether the start transition has fired.
func (tv *TimeValue) Started() bool { return tv.started }

// Ended reports whether the terminal state has been reached.
func (tv *TimeValue) Ended() bool { return tv.ended }

// Paused reports whether the value is currently paused.
func (tv *TimeValue) Paused() bool { return !tv.pausedAt.IsZero() }

// Package animation provides frame-driven animation primitives: easing
// curves backed by precomputed lookup tables, progress state machines
// with pause/resume and repeat semantics, and a shared frame scheduler
// that runs only while something is listening and the surface is
// visible.
//
// # Core Components
//
//   - [Curve]: maps normalized progress in [0, 1] to an eased value.
//     [Bezier] curves are sampled once into a lookup table at
//     construction; the CSS timing functions are prebuilt as [Linear],
//     [EaseIn], [EaseOut] and [EaseInOut].
//
//   - [TimeValue]: normalizes wall-clock time against a start time and
//     duration into a [0, 1] value, with start/stop callbacks fired
//     exactly once.
//
//   - [Animation]: generalizes TimeValue with direction (forward,
//     reverse, ping-pong), a repeat bound, pause time-shift correction
//     and a per-frame OnAnimate callback carrying the eased value.
//
//   - [Scheduler]: measures inter-frame intervals and fans ticks out to
//     registered handlers, requesting platform frames only while the
//     surface is visible and at least one handler is registered.
//
// All advances happen synchronously inside the frame dispatch; the
// package never blocks and animations never fail once constructed.
package animation

import (
	"math"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// Direction controls how progress moves through one cycle.
type Direction int

const (
	// Forward counts progress up from 0 to 1.
	Forward Direction = iota
	// Reverse counts progress down from 1 to 0.
	Reverse
	// PingPong oscillates 0 -> 1 -> 0 within one cycle.
	PingPong
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case PingPong:
		return "ping-pong"
	default:
		return "direction(?)"
	}
}

// Repeat bounds how many cycles an animation runs.
// The zero value runs a single cycle.
type Repeat struct {
	count   int
	forever bool
}

// Times returns a Repeat that runs n full cycles. n must be at least 1.
func Times(n int) Repeat { return Repeat{count: n} }

// Forever returns a Repeat that never ends on its own; only an explicit
// Stop terminates the animation.
func Forever() Repeat { return Repeat{forever: true} }

// Once runs a single cycle.
var Once = Times(1)

// Forever reports whether the repeat is unbounded.
func (r Repeat) Forever() bool { return r.forever }

// Count returns the number of cycles for a bounded repeat.
func (r Repeat) Count() int { return r.count }

// Config configures an Animation.
type Config struct {
	// Start is when the first cycle begins.
	Start time.Time
	// Interval is the length of one cycle. Must be positive.
	Interval time.Duration
	// Direction selects forward, reverse or ping-pong progress.
	Direction Direction
	// Repeat bounds the number of cycles. The zero value runs one cycle.
	Repeat Repeat
	// Curve eases the delivered progress. Defaults to Linear.
	Curve Curve
	// Remap, when set, transforms every advance timestamp before any
	// progress computation.
	Remap func(time.Time) time.Time

	// OnAnimate receives the progress and its eased value on every
	// advance, including the final advance into the terminal state.
	OnAnimate func(progress, eased float64)
	// OnStart fires once, on the first advance past Start.
	OnStart func()
	// OnStop fires once, on entering the terminal state.
	OnStop func()
	// OnPause fires on every transition into the paused state.
	OnPause func()
	// OnResume fires on every transition out of the paused state.
	OnResume func()
}

// Animation is a repeating, directional progress state machine.
//
// It follows the same Idle -> Started -> (Paused <-> Started) -> Ended
// lifecycle as [TimeValue]. Each advance derives a cycle fraction from
// elapsed time, maps it through the direction, eases it through the
// curve and delivers both values to OnAnimate. A bounded repeat, or a
// Stop observed on the next advance, lands the animation exactly on its
// direction's endpoint before the stop transition.
type Animation struct {
	start    time.Time
	end      time.Time // zero when repeat is unbounded
	interval time.Duration

	direction Direction
	repeat    Repeat
	curve     Curve
	remap     func(time.Time) time.Time

	pausedAt      time.Time
	started       bool
	ended         bool
	stopRequested bool
	progress      float64
	eased         float64

	onAnimate func(progress, eased float64)
	onStart   func()
	onStop    func()
	onPause   func()
	onResume  func()

	unsubscribe func()
}

// New creates an Animation. A non-positive interval or a bounded repeat
// count below 1 is rejected.
func New(cfg Config) (*Animation, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("animation.New", errors.KindConfig,
			"interval must be positive, got %v", cfg.Interval)
	}
	repeat := cfg.Repeat
	if repeat == (Repeat{}) {
		repeat = Once
	}
	if !repeat.forever && repeat.count < 1 {
		return nil, errors.New("animation.New", errors.KindConfig,
			"repeat count must be at least 1, got %d", repeat.count)
	}
	curve := cfg.Curve
	if curve == nil {
		curve = Linear
	}

	a := &Animation{
		start:     cfg.Start,
		interval:  cfg.Interval,
		direction: cfg.Direction,
		repeat:    repeat,
		curve:     curve,
		remap:     cfg.Remap,
		onAnimate: cfg.OnAnimate,
		onStart:   cfg.OnStart,
		onStop:    cfg.OnStop,
		onPause:   cfg.OnPause,
		onResume:  cfg.OnResume,
	}
	if !repeat.forever {
		a.end = a.start.Add(a.interval * time.Duration(repeat.count))
	}
	a.progress = a.initialProgress()
	a.eased = curve.Evaluate(a.progress)
	return a, nil
}

// Advance moves the state machine to now and returns the progress.
//
// Times at or before the start return the initial progress without
// firing the start callback. While paused, the cached progress is
// returned with no side effects. After the terminal state, the frozen
// final progress is returned unchanged.
func (a *Animation) Advance(now time.Time) float64 {
	if a.remap != nil {
		now = a.remap(now)
	}
	if a.ended {
		return a.progress
	}
	if !a.pausedAt.IsZero() {
		return a.progress
	}
	if !now.After(a.start) {
		return a.initialProgress()
	}
	if !a.started {
		a.started = true
		if a.onStart != nil {
			a.onStart()
		}
	}

	if a.stopRequested || (!a.end.IsZero() && !now.Before(a.end)) {
		a.finish()
		return a.progress
	}

	q := float64(now.Sub(a.start)) / float64(a.interval)
	frac := q - math.Floor(q)
	a.progress = a.applyDirection(frac)
	a.eased = a.curve.Evaluate(a.progress)
	if a.onAnimate != nil {
		a.onAnimate(a.progress, a.eased)
	}
	return a.progress
}

// finish lands exactly on the direction's endpoint, delivers the final
// frame and enters the terminal state.
func (a *Animation) finish() {
	a.progress = a.terminalProgress()
	a.eased = a.curve.Evaluate(a.progress)
	a.ended = true
	if a.onAnimate != nil {
		a.onAnimate(a.progress, a.eased)
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.onStop != nil {
		a.onStop()
	}
}

func (a *Animation) applyDirection(frac float64) float64 {
	switch a.direction {
	case Reverse:
		return 1 - frac
	case PingPong:
		return 1 - math.Abs(frac*2-1)
	default:
		return frac
	}
}

func (a *Animation) initialProgress() float64 {
	if a.direction == Reverse {
		return 1
	}
	return 0
}

func (a *Animation) terminalProgress() float64 {
	if a.direction == Forward {
		return 1
	}
	return 0
}

// Pause suspends progress at now. Pausing while already paused or after
// the terminal state is a no-op.
func (a *Animation) Pause(now time.Time) {
	if a.ended || !a.pausedAt.IsZero() {
		return
	}
	a.pausedAt = now
	if a.onPause != nil {
		a.onPause()
	}
}

// Resume ends a pause at now, shifting the start and end times forward
// by the paused span so that paused time is excised. Resuming while not
// paused is a no-op. For a bounded animation, resuming at or before the
// start time cancels the pause without any shift.
func (a *Animation) Resume(now time.Time) {
	if a.ended || a.pausedAt.IsZero() {
		return
	}
	paused := a.pausedAt
	a.pausedAt = time.Time{}
	if a.onResume != nil {
		a.onResume()
	}
	if !a.end.IsZero() && !now.After(a.start) {
		return
	}
	shift := now.Sub(paused)
	if shift < 0 {
		return
	}
	a.start = a.start.Add(shift)
	if !a.end.IsZero() {
		a.end = a.end.Add(shift)
	}
}

// Stop requests the terminal transition. It is cooperative: the flag is
// observed on the next Advance, which lands on the direction's endpoint
// and fires the stop callback.
func (a *Animation) Stop() {
	if !a.ended {
		a.stopRequested = true
	}
}

// Run subscribes the animation to the scheduler's frame ticks. Each
// tick advances the state machine; entering the terminal state
// unsubscribes automatically. Running an ended or already-running
// animation is a no-op.
func (a *Animation) Run(s *Scheduler) {
	if a.ended || a.unsubscribe != nil {
		return
	}
	a.unsubscribe = s.Register(func(now time.Time, _ time.Duration) {
		a.Advance(now)
	})
}

// Halt unsubscribes from the scheduler without changing animation
// state. A later Run resumes frame delivery.
func (a *Animation) Halt() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Progress returns the last computed progress value.
func (a *Animation) Progress() float64 { return a.progress }

// Eased returns the curve output for the last computed progress.
func (a *Animation) Eased() float64 { return a.eased }

// Started reports whether the start transition has fired.
func (a *Animation) Started() bool { return a.started }

// Ended reports whether the terminal state has been reached.
func (a *Animation) Ended() bool { return a.ended }

// Paused reports whether the animation is currently paused.
func (a *Animation) Paused() bool { return !a.pausedAt.IsZero() }

// Running reports whether the animation is subscribed to a scheduler.
func (a *Animation) Running() bool { return a.unsubscribe != nil }

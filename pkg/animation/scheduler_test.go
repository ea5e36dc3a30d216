package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

func newTestScheduler(hidden bool) (*animation.Scheduler, *motiontest.FakeClock, *motiontest.FrameQueue) {
	clk := motiontest.NewFakeClockAt(base)
	frames := &motiontest.FrameQueue{}
	sched := animation.NewScheduler(animation.SchedulerConfig{
		Clock:        clk,
		RequestFrame: frames.Request,
		Hidden:       hidden,
	})
	return sched, clk, frames
}

func TestFirstRegisterRequestsExactlyOneFrame(t *testing.T) {
	sched, _, frames := newTestScheduler(false)

	sched.Register(func(time.Time, time.Duration) {})
	if frames.Requests() != 1 {
		t.Errorf("first register requested %d frames, want 1", frames.Requests())
	}

	sched.Register(func(time.Time, time.Duration) {})
	if frames.Requests() != 1 {
		t.Errorf("second register requested %d additional frames, want 0", frames.Requests()-1)
	}
}

func TestFrameDeltaMeasurement(t *testing.T) {
	sched, clk, frames := newTestScheduler(false)

	var deltas []time.Duration
	sched.Register(func(_ time.Time, delta time.Duration) {
		deltas = append(deltas, delta)
	})

	frames.Fire() // first frame, no prior tick
	clk.Advance(16 * time.Millisecond)
	frames.Fire()
	clk.Advance(33 * time.Millisecond)
	frames.Fire()

	want := []time.Duration{0, 16 * time.Millisecond, 33 * time.Millisecond}
	if len(deltas) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(deltas), len(want))
	}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("tick %d delta = %v, want %v", i, deltas[i], want[i])
		}
	}
}

func TestLoopIdlesWithoutListenersAndRestarts(t *testing.T) {
	sched, _, frames := newTestScheduler(false)

	unsub := sched.Register(func(time.Time, time.Duration) {})
	frames.Fire()
	if frames.Pending() != 1 {
		t.Fatalf("expected self-sustaining loop, %d pending", frames.Pending())
	}

	unsub()
	frames.Fire()
	if frames.Pending() != 0 {
		t.Errorf("expected loop to go idle after last unregister, %d pending", frames.Pending())
	}

	// The next registration restarts the loop with one request.
	before := frames.Requests()
	sched.Register(func(time.Time, time.Duration) {})
	if frames.Requests() != before+1 {
		t.Errorf("restart requested %d frames, want 1", frames.Requests()-before)
	}
}

func TestSelfUnregisterDuringDispatch(t *testing.T) {
	sched, _, frames := newTestScheduler(false)

	selfCalls, otherCalls := 0, 0
	var unsub func()
	unsub = sched.Register(func(time.Time, time.Duration) {
		selfCalls++
		unsub()
	})
	sched.Register(func(time.Time, time.Duration) { otherCalls++ })

	frames.Fire()
	if selfCalls != 1 || otherCalls != 1 {
		t.Errorf("dispatch broke on self-unregister: self=%d other=%d", selfCalls, otherCalls)
	}

	frames.Fire()
	if selfCalls != 1 {
		t.Errorf("unregistered handler ticked again: %d", selfCalls)
	}
	if otherCalls != 2 {
		t.Errorf("surviving handler missed a tick: %d", otherCalls)
	}
}

func TestHiddenSchedulerRequestsNoFrames(t *testing.T) {
	sched, _, frames := newTestScheduler(true)

	ticks := 0
	sched.Register(func(time.Time, time.Duration) { ticks++ })
	if frames.Requests() != 0 {
		t.Errorf("hidden scheduler requested %d frames", frames.Requests())
	}

	sched.SetVisible(true)
	if frames.Requests() != 1 {
		t.Errorf("becoming visible requested %d frames, want 1", frames.Requests())
	}
	frames.Fire()
	if ticks != 1 {
		t.Errorf("expected one tick after visibility, got %d", ticks)
	}
}

func TestHideStopsRequestingButKeepsListeners(t *testing.T) {
	sched, _, frames := newTestScheduler(false)

	ticks := 0
	sched.Register(func(time.Time, time.Duration) { ticks++ })
	frames.Fire()

	sched.SetVisible(false)
	// The in-flight frame still fires once, but must not re-request.
	frames.Fire()
	if ticks != 2 {
		t.Errorf("in-flight frame after hide ticked %d times total, want 2", ticks)
	}
	if frames.Pending() != 0 {
		t.Errorf("hidden scheduler kept requesting, %d pending", frames.Pending())
	}
	if !sched.HasListeners() {
		t.Error("hiding must not drop listeners")
	}

	sched.SetVisible(true)
	frames.Fire()
	if ticks != 3 {
		t.Errorf("expected scheduling to resume after show, got %d ticks", ticks)
	}
}

func TestSetVisibleIdempotent(t *testing.T) {
	sched, _, frames := newTestScheduler(false)
	sched.Register(func(time.Time, time.Duration) {})

	sched.SetVisible(true) // already visible, loop already scheduled
	if frames.Requests() != 1 {
		t.Errorf("redundant SetVisible requested frames: %d", frames.Requests())
	}
}

type nullHandler struct{}

func (nullHandler) HandleError(*errors.MotionError) {}
func (nullHandler) HandlePanic(*errors.PanicError)  {}

func TestPanickingListenerDoesNotKillLoop(t *testing.T) {
	prev := errors.DefaultHandler
	errors.SetHandler(nullHandler{})
	defer errors.SetHandler(prev)

	sched, _, frames := newTestScheduler(false)

	after := 0
	sched.Register(func(time.Time, time.Duration) { panic("listener bug") })
	sched.Register(func(time.Time, time.Duration) { after++ })

	frames.Fire()
	if after != 1 {
		t.Errorf("handler after panicking one ticked %d times, want 1", after)
	}
	if frames.Pending() != 1 {
		t.Errorf("loop died after listener panic, %d pending", frames.Pending())
	}
}

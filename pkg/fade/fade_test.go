package fade

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

type fakeSurface struct {
	opacity float64
	shown   bool
	history []float64
}

func (s *fakeSurface) Opacity() float64 { return s.opacity }
func (s *fakeSurface) SetOpacity(v float64) {
	s.opacity = v
	s.history = append(s.history, v)
}
func (s *fakeSurface) SetShown(shown bool) { s.shown = shown }

func newTestFader(cfg Config) (*Fader, *fakeSurface, *motiontest.FakeClock, *motiontest.FrameQueue) {
	clk := motiontest.NewFakeClock()
	frames := &motiontest.FrameQueue{}
	sched := animation.NewScheduler(animation.SchedulerConfig{
		Clock:        clk,
		RequestFrame: frames.Request,
	})
	surface := &fakeSurface{}
	return New(surface, sched, cfg), surface, clk, frames
}

func TestShowFadesOpacityToOne(t *testing.T) {
	f, surface, clk, frames := newTestFader(Config{Curve: animation.Linear})

	f.Show(100 * time.Millisecond)
	if !surface.shown {
		t.Fatal("show must display the surface immediately")
	}
	if !f.IsShown() || !f.Animating() {
		t.Fatalf("expected shown and animating, got %v %v", f.IsShown(), f.Animating())
	}

	frames.Pump(clk, 25*time.Millisecond, 2)
	if math.Abs(surface.opacity-0.5) > 1e-9 {
		t.Errorf("opacity at midpoint = %v, want 0.5", surface.opacity)
	}

	frames.Pump(clk, 25*time.Millisecond, 3)
	if surface.opacity != 1 {
		t.Errorf("final opacity = %v, want 1", surface.opacity)
	}
	if f.Animating() {
		t.Error("expected fade finished")
	}
	if !surface.shown {
		t.Error("surface must stay shown after a show fade")
	}
}

func TestHideFadesOutThenConceals(t *testing.T) {
	f, surface, clk, frames := newTestFader(Config{Curve: animation.Linear})

	f.Show(10 * time.Millisecond)
	frames.Pump(clk, 10*time.Millisecond, 3)
	if surface.opacity != 1 {
		t.Fatalf("setup failed, opacity %v", surface.opacity)
	}

	f.Hide(100 * time.Millisecond)
	if f.IsShown() {
		t.Error("IsShown must flip immediately on hide")
	}
	if !surface.shown {
		t.Error("surface stays displayed while fading out")
	}

	frames.Pump(clk, 50*time.Millisecond, 1)
	if math.Abs(surface.opacity-0.5) > 1e-9 {
		t.Errorf("opacity mid-hide = %v, want 0.5", surface.opacity)
	}

	frames.Pump(clk, 50*time.Millisecond, 2)
	if surface.opacity != 0 {
		t.Errorf("final opacity = %v, want 0", surface.opacity)
	}
	if surface.shown {
		t.Error("surface must be concealed once the hide completes")
	}
}

func TestToggle(t *testing.T) {
	f, surface, clk, frames := newTestFader(Config{Curve: animation.Linear, Duration: 40 * time.Millisecond})

	f.Toggle(0)
	if !f.IsShown() {
		t.Fatal("toggle from hidden should show")
	}
	frames.Pump(clk, 20*time.Millisecond, 4)
	if surface.opacity != 1 {
		t.Fatalf("opacity after toggle on = %v", surface.opacity)
	}

	f.Toggle(0)
	if f.IsShown() {
		t.Fatal("toggle from shown should hide")
	}
	frames.Pump(clk, 20*time.Millisecond, 4)
	if surface.opacity != 0 || surface.shown {
		t.Errorf("after toggle off: opacity=%v shown=%v", surface.opacity, surface.shown)
	}
}

func TestShowInterruptingHideTakesOverWithoutJump(t *testing.T) {
	f, surface, clk, frames := newTestFader(Config{Curve: animation.Linear})

	f.Show(10 * time.Millisecond)
	frames.Pump(clk, 10*time.Millisecond, 3)

	f.Hide(100 * time.Millisecond)
	frames.Pump(clk, 25*time.Millisecond, 2)
	atTakeover := surface.opacity
	if atTakeover <= 0 || atTakeover >= 1 {
		t.Fatalf("expected mid-hide opacity, got %v", atTakeover)
	}

	f.Show(100 * time.Millisecond)
	mark := len(surface.history)
	frames.Pump(clk, 25*time.Millisecond, 5)

	if surface.opacity != 1 {
		t.Errorf("takeover show final opacity = %v, want 1", surface.opacity)
	}
	if surface.shown != true {
		t.Error("surface must remain shown; the superseded hide must not conceal it")
	}
	// The superseded hide animation must not touch the surface again:
	// every opacity written after the takeover rises from the takeover
	// point.
	prev := atTakeover
	for _, v := range surface.history[mark:] {
		if v < prev-1e-9 {
			t.Fatalf("opacity jumped backwards after takeover: %v -> %v", prev, v)
		}
		prev = v
	}
}

// Package fade provides opacity show/hide transitions driven by the
// animation scheduler. What a surface does with its opacity (style
// mutation, terminal color blending) stays outside this package.
package fade

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// Surface is the presentation target of a fade.
type Surface interface {
	// Opacity returns the current opacity in [0, 1].
	Opacity() float64
	// SetOpacity updates the opacity.
	SetOpacity(v float64)
	// SetShown toggles whether the surface is displayed at all. A
	// hidden surface takes no space regardless of opacity.
	SetShown(shown bool)
}

// DefaultDuration is used when Show/Hide receive a zero duration.
const DefaultDuration = 250 * time.Millisecond

// Config configures a Fader.
type Config struct {
	// Curve eases the fades. Defaults to animation.EaseInOut.
	Curve animation.Curve
	// Duration is the fade length used when Show/Hide get zero.
	// Defaults to DefaultDuration.
	Duration time.Duration
}

// Fader drives opacity show/hide transitions on a Surface.
//
// At most one fade runs at a time. Starting a new fade takes over from
// the current opacity, so interrupting a hide with a show (or the
// reverse) never jumps.
type Fader struct {
	surface  Surface
	sched    *animation.Scheduler
	curve    animation.Curve
	duration time.Duration

	anim  *animation.Animation
	shown bool
}

// New creates a Fader for the given surface, driven by the scheduler.
func New(surface Surface, sched *animation.Scheduler, cfg Config) *Fader {
	f := &Fader{
		surface:  surface,
		sched:    sched,
		curve:    cfg.Curve,
		duration: cfg.Duration,
	}
	if f.curve == nil {
		f.curve = animation.EaseInOut
	}
	if f.duration <= 0 {
		f.duration = DefaultDuration
	}
	return f
}

// Show displays the surface and fades its opacity up to 1 over d.
// A zero d uses the configured duration.
func (f *Fader) Show(d time.Duration) {
	f.shown = true
	f.surface.SetShown(true)
	f.fadeTo(1, d, nil)
}

// Hide fades the surface's opacity down to 0 over d, then stops
// displaying it. A zero d uses the configured duration.
func (f *Fader) Hide(d time.Duration) {
	f.shown = false
	f.fadeTo(0, d, func() {
		f.surface.SetShown(false)
	})
}

// Toggle shows a hidden surface or hides a shown one.
func (f *Fader) Toggle(d time.Duration) {
	if f.shown {
		f.Hide(d)
	} else {
		f.Show(d)
	}
}

// IsShown reports the logical visibility target, which leads the
// animated opacity while a fade is in flight.
func (f *Fader) IsShown() bool { return f.shown }

// Animating reports whether a fade is currently in flight.
func (f *Fader) Animating() bool { return f.anim != nil }

func (f *Fader) fadeTo(target float64, d time.Duration, done func()) {
	if d <= 0 {
		d = f.duration
	}
	if f.anim != nil {
		// Cooperative stop: the superseded animation observes the flag
		// on its next frame; its callbacks are disarmed below by the
		// identity check.
		f.anim.Stop()
	}

	opacity := animation.TweenFloat64(f.surface.Opacity(), target)
	var a *animation.Animation
	a, _ = animation.New(animation.Config{
		Start:    f.sched.Now(),
		Interval: d,
		Curve:    f.curve,
		OnAnimate: func(_, eased float64) {
			if f.anim != a {
				return
			}
			f.surface.SetOpacity(opacity.Evaluate(eased))
		},
		OnStop: func() {
			if f.anim != a {
				return
			}
			f.anim = nil
			if done != nil {
				done()
			}
		},
	})
	f.anim = a
	a.Run(f.sched)
}

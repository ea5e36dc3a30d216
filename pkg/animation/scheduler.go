package animation

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/events"
)

// TopicFrame is the bus topic on which the scheduler publishes ticks.
const TopicFrame = "motion/frame"

// DefaultFrameRate is the rate of the fallback timer frame source, in
// frames per second.
const DefaultFrameRate = 30

// Frame is the payload delivered to frame subscribers.
type Frame struct {
	// Now is the timestamp of this tick.
	Now time.Time
	// Delta is the interval since the previous tick, zero on the first
	// tick after the scheduler was created.
	Delta time.Duration
}

// FrameFunc requests a single future frame callback from the platform.
// Each request results in at most one invocation of the callback.
type FrameFunc func(callback func())

// FrameHandler receives one frame tick.
type FrameHandler func(now time.Time, delta time.Duration)

// SchedulerConfig configures a Scheduler. Zero values select defaults.
type SchedulerConfig struct {
	// Clock is the time source. Defaults to SystemClock().
	Clock Clock
	// RequestFrame asks the platform for one frame callback. Defaults
	// to a one-shot timer at DefaultFrameRate.
	RequestFrame FrameFunc
	// Bus carries frame ticks. Defaults to a private bus.
	Bus *events.Bus
	// Hidden starts the scheduler in the hidden state, in which no
	// frames are requested until SetVisible(true).
	Hidden bool
}

// Scheduler fans frame ticks out to registered handlers.
//
// The loop is self-sustaining: each frame requests the next one, but
// only while at least one handler is registered and the surface is
// visible. When either condition drops, the loop goes idle; the next
// Register call (or SetVisible(true)) restarts it with exactly one
// outstanding frame request.
type Scheduler struct {
	mu           sync.Mutex
	clock        Clock
	requestFrame FrameFunc
	bus          *events.Bus
	visible      bool
	scheduled    bool
	lastTick     time.Time
}

// NewScheduler creates a Scheduler from the given configuration.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	s := &Scheduler{
		clock:        cfg.Clock,
		requestFrame: cfg.RequestFrame,
		bus:          cfg.Bus,
		visible:      !cfg.Hidden,
	}
	if s.clock == nil {
		s.clock = SystemClock()
	}
	if s.bus == nil {
		s.bus = events.NewBus()
	}
	if s.requestFrame == nil {
		s.requestFrame = timerFrames(DefaultFrameRate)
	}
	return s
}

// timerFrames is the fallback frame source: one timer per request.
func timerFrames(rate int) FrameFunc {
	interval := time.Second / time.Duration(rate)
	return func(callback func()) {
		time.AfterFunc(interval, callback)
	}
}

// Register subscribes a handler to frame ticks and returns its
// unsubscribe function. Handlers are notified in registration order; a
// handler may unsubscribe itself during its own notification. The first
// registration on an idle visible scheduler requests exactly one frame;
// registrations while the loop is active request none.
func (s *Scheduler) Register(fn FrameHandler) func() {
	unsub := s.bus.Subscribe(TopicFrame, func(data any) {
		defer errors.Recover("animation.Scheduler.frame")
		f := data.(Frame)
		fn(f.Now, f.Delta)
	})
	s.kick()
	return unsub
}

// SetVisible updates surface visibility. Hiding stops further frame
// requests without dropping handlers; an in-flight frame still fires
// once. Showing resumes scheduling if any handlers remain.
func (s *Scheduler) SetVisible(visible bool) {
	s.mu.Lock()
	changed := s.visible != visible
	s.visible = visible
	s.mu.Unlock()
	if changed && visible {
		s.kick()
	}
}

// Visible reports whether the scheduler considers the surface visible.
func (s *Scheduler) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// HasListeners reports whether any frame handler is registered.
func (s *Scheduler) HasListeners() bool {
	return s.bus.HasSubscribers(TopicFrame)
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Bus returns the bus carrying this scheduler's frame ticks.
func (s *Scheduler) Bus() *events.Bus {
	return s.bus
}

// kick requests one frame if the loop is idle and allowed to run.
func (s *Scheduler) kick() {
	s.mu.Lock()
	if s.scheduled || !s.visible || !s.bus.HasSubscribers(TopicFrame) {
		s.mu.Unlock()
		return
	}
	s.scheduled = true
	s.mu.Unlock()
	s.requestFrame(s.frame)
}

// frame handles one platform frame signal: measure the interval, fan
// out to handlers, then keep the loop alive if still needed.
func (s *Scheduler) frame() {
	now := s.clock.Now()

	s.mu.Lock()
	var delta time.Duration
	if !s.lastTick.IsZero() {
		delta = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.mu.Unlock()

	s.bus.Publish(TopicFrame, Frame{Now: now, Delta: delta})

	s.mu.Lock()
	again := s.visible && s.bus.HasSubscribers(TopicFrame)
	s.scheduled = again
	s.mu.Unlock()
	if again {
		s.requestFrame(s.frame)
	}
}

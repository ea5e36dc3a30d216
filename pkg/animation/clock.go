package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock through SchedulerConfig to
// control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

package tickstep

import "time"

// Clock supplies monotonically increasing elapsed time in seconds since
// simulation start. The driver loop reads it once per frame and feeds the
// value into Simulation.DoTick.
type Clock interface {
	Elapsed() float64
}

type wallClock struct {
	start time.Time
}

// NewWallClock returns a Clock measuring real time since the call.
func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a Clock that only moves when told to. It makes scheduler
// behavior reproducible in tests without real waits.
type ManualClock struct {
	elapsed float64
}

// Advance moves the clock forward by seconds. Negative values are ignored so
// the clock stays monotonic.
func (c *ManualClock) Advance(seconds float64) {
	if seconds > 0 {
		c.elapsed += seconds
	}
}

func (c *ManualClock) Elapsed() float64 {
	return c.elapsed
}

package tickstep

import (
	"time"
)

// Timings aggregates observed durations, e.g. the frame times of a driver
// loop. The moving average is exponential with a factor of 5%.
type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
	}

	t.MovingAverage = (95*t.MovingAverage + 5*d) / 100

	t.Count += 1

	return t
}

// PerSecond returns how often an event with the average duration fits into
// one second, e.g. the frame rate for frame timings. Returns 0 while no
// timing was recorded yet.
func (t Timings) PerSecond() float64 {
	if t.MovingAverage == 0 {
		return 0
	}

	return 1 / t.MovingAverage.Seconds()
}

// Stopwatch measures the duration of one section of a frame.
type Stopwatch struct {
	Stop func()
}

// Measure starts a Stopwatch that records the elapsed time into t when
// stopped.
func (t *Timings) Measure() Stopwatch {
	startTime := time.Now()

	return Stopwatch{
		Stop: func() {
			*t = t.Add(time.Since(startTime))
		},
	}
}

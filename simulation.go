package tickstep

import (
	"fmt"
	"math"
	"slices"

	"github.com/tickstep/tickstep/color"
	"github.com/tickstep/tickstep/gm"
)

// Surface is the drawing target handed to every object during a draw pass.
//
// Implementations are expected to be side effect free with respect to
// simulation state: drawing never feeds back into ticking.
type Surface interface {
	// FillCircle draws a filled circle at center.
	FillCircle(center gm.Vec, radius float64, tint color.Color)

	// Line draws a straight line segment of the given width.
	Line(from, to gm.Vec, width float64, tint color.Color)

	// Arrow draws a line segment with a filled triangular head at to.
	// headRatio scales the head relative to the length of the arrow.
	Arrow(from, to gm.Vec, width, headRatio float64, tint color.Color)

	// Text draws text with its top left corner at pos.
	Text(pos gm.Vec, size float64, tint color.Color, text string)
}

// Object is the capability contract a body must implement to participate in
// a Simulation.
//
// Tick advances the object's internal state by exactly one fixed-length step.
// It must be deterministic given the current state and tickLenSeconds, and it
// must only mutate the object's own state.
//
// Draw renders the current state onto the target. It must not mutate
// simulation state, though it may compute transient values for display.
type Object interface {
	Tick(tickLenSeconds float64)
	Draw(target Surface)
}

// Expirer is the optional expiry capability. Objects that never implement it
// are permanently resident.
//
// Once IsExpired returns true it must keep returning true until the object is
// removed.
type Expirer interface {
	IsExpired() bool
}

// Simulation owns an ordered collection of Objects and advances them on a
// fixed timestep, independent of how often the caller renders.
//
// The driver loop is expected to call DoTick, DoHandleExpiry and DoDraw once
// per frame, in that order, from a single goroutine. None of the methods are
// safe for concurrent use.
type Simulation struct {
	secondsPerTick float64
	tickCount      int

	objects []Object

	lastElapsed     float64
	maxCatchUpTicks int
}

// NewSimulation creates an empty Simulation with the given fixed tick length.
func NewSimulation(secondsPerTick float64) (*Simulation, error) {
	if secondsPerTick <= 0 {
		return nil, fmt.Errorf("seconds per tick must be positive, got %v", secondsPerTick)
	}

	return &Simulation{secondsPerTick: secondsPerTick}, nil
}

// SetMaxCatchUpTicks limits the number of tick passes a single DoTick call may
// perform. Zero (the default) means unlimited.
//
// A pathological wall clock jump would otherwise stall the caller while the
// simulation replays the whole backlog. With a limit in place the extra ticks
// are dropped: at most n passes run, but the tick counter still advances to
// the value expected for the elapsed time, so the simulation re-anchors to
// wall time instead of lagging forever. While the limit kicks in, simulated
// time moves faster than the objects actually stepped.
func (s *Simulation) SetMaxCatchUpTicks(n int) {
	s.maxCatchUpTicks = n
}

// AddObject appends obj to the collection. Insertion order defines tick and
// draw order. The Simulation takes ownership; callers must not retain or
// mutate obj after the call.
func (s *Simulation) AddObject(obj Object) {
	s.objects = append(s.objects, obj)
}

// DoTick converts elapsed wall time into a whole number of fixed ticks and
// performs them.
//
// With expected = floor(elapsed / secondsPerTick), the call performs
// expected - TickCount() + 1 full passes over the collection and advances the
// tick counter to expected. The extra pass guarantees forward progress even
// when no tick boundary has been crossed since the last call; the counter is
// deliberately not advanced for it.
//
// elapsed must not regress between calls. A regressed value is rejected with
// an error and leaves the simulation untouched.
func (s *Simulation) DoTick(elapsed float64) error {
	if elapsed < s.lastElapsed {
		return fmt.Errorf("elapsed time went backwards: %v after %v", elapsed, s.lastElapsed)
	}

	s.lastElapsed = elapsed

	expected := int(math.Floor(elapsed / s.secondsPerTick))
	ticksToPerform := expected - s.tickCount

	passes := ticksToPerform + 1
	if s.maxCatchUpTicks > 0 && passes > s.maxCatchUpTicks {
		passes = s.maxCatchUpTicks
	}

	for range passes {
		for _, obj := range s.objects {
			obj.Tick(s.secondsPerTick)
		}
	}

	s.tickCount = expected

	return nil
}

// DoDraw invokes Draw on every object in collection order. It may be called
// any number of times per tick.
func (s *Simulation) DoDraw(target Surface) {
	for _, obj := range s.objects {
		obj.Draw(target)
	}
}

// DoHandleExpiry removes every object whose Expirer capability currently
// reports expired. The relative order of the surviving objects is preserved.
// Objects that do not implement Expirer are never removed.
func (s *Simulation) DoHandleExpiry() {
	s.objects = slices.DeleteFunc(s.objects, func(obj Object) bool {
		expirer, ok := obj.(Expirer)
		return ok && expirer.IsExpired()
	})
}

// SecondsPerTick returns the fixed tick length chosen at construction.
func (s *Simulation) SecondsPerTick() float64 {
	return s.secondsPerTick
}

// TickCount returns the authoritative simulated-time clock: the number of
// whole ticks that have elapsed.
func (s *Simulation) TickCount() int {
	return s.tickCount
}

// ObjectCount returns the number of objects currently held.
func (s *Simulation) ObjectCount() int {
	return len(s.objects)
}

package tickstep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManualClock(t *testing.T) {
	var clock ManualClock

	require.Equal(t, 0.0, clock.Elapsed())

	clock.Advance(1.5)
	require.Equal(t, 1.5, clock.Elapsed())

	// negative advances would break monotonicity and are ignored
	clock.Advance(-1)
	require.Equal(t, 1.5, clock.Elapsed())

	clock.Advance(0.5)
	require.Equal(t, 2.0, clock.Elapsed())
}

func TestWallClock(t *testing.T) {
	clock := NewWallClock()

	first := clock.Elapsed()
	second := clock.Elapsed()

	require.GreaterOrEqual(t, first, 0.0)
	require.GreaterOrEqual(t, second, first)
}

func TestManualClockDrivesSimulation(t *testing.T) {
	sim, err := NewSimulation(0.01)
	require.NoError(t, err)

	var clock ManualClock

	require.NoError(t, sim.DoTick(clock.Elapsed()))
	require.Equal(t, 0, sim.TickCount())

	clock.Advance(0.1)
	require.NoError(t, sim.DoTick(clock.Elapsed()))
	require.Equal(t, 10, sim.TickCount())
}

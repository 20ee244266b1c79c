package tickbiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tickstep/tickstep"
)

// drawOverlay prints the per-frame telemetry derived from the simulation
// accessors and the driver's own counters. Purely observational, nothing in
// here feeds back into simulation state.
func (d *driver) drawOverlay(screen *ebiten.Image) {
	sim := d.game.Sim

	ticks := sim.TickCount()

	expectedTps := 1 / sim.SecondsPerTick()

	actualTps := 0.0
	actualFps := 0.0
	if d.elapsed > 0 {
		actualTps = float64(ticks) / d.elapsed
		actualFps = float64(d.frames) / d.elapsed
	}

	rows := []string{
		fmt.Sprintf("Time elapsed %.2f", d.elapsed),
		fmt.Sprintf("TPS: %.2f (expected %.2f)", actualTps, expectedTps),
		fmt.Sprintf("Ticks: %d", ticks),
		fmt.Sprintf("FPS: %.2f (current %.2f)", actualFps, ebiten.ActualFPS()),
		fmt.Sprintf("Frames: %d", d.frames),
		fmt.Sprintf("Objects: %d", sim.ObjectCount()),
		timingsRow("frame", d.frameTimings),
		timingsRow("tick pass", d.tickTimings),
	}

	for row, text := range rows {
		ebitenutil.DebugPrintAt(screen, text, 4, 4+16*row)
	}
}

func timingsRow(name string, t tickstep.Timings) string {
	return fmt.Sprintf("%s: latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
		name,
		t.Latest.Seconds()*1000,
		t.Min.Seconds()*1000,
		t.Max.Seconds()*1000,
		t.MovingAverage.Seconds()*1000,
	)
}

// Package tickbiten drives a tickstep.Simulation as an ebiten game: it reads
// the wall clock once per frame, runs the tick, expiry and draw passes, and
// translates pointer input into object spawning.
package tickbiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tickstep/tickstep"
	"github.com/tickstep/tickstep/gm"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

// Game couples a Simulation with the collaborators the driver loop needs.
type Game struct {
	Sim *tickstep.Simulation

	// Clock provides elapsed time for DoTick. Defaults to a wall clock
	// started on the first frame.
	Clock tickstep.Clock

	// OnPointerDown is called once per frame while the left mouse button is
	// held, with the cursor position in screen pixels. Use it to construct
	// and add new objects.
	OnPointerDown func(cursor gm.Vec)

	// Overlay enables the telemetry text in the top left corner.
	// It can be toggled at runtime with the D key.
	Overlay bool
}

// Run opens the window and runs the per-frame loop until the window is
// closed or the simulation reports an error.
func Run(win WindowConfig, game *Game) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if game.Clock == nil {
		game.Clock = tickstep.NewWallClock()
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(&driver{game: game}, &options)
}

// driver implements ebiten.Game. One Update call performs the tick and
// expiry passes, one Draw call performs the draw pass.
type driver struct {
	game *Game

	keys  Keys
	mouse MouseButtons

	elapsed float64
	frames  int

	lastFrame    time.Time
	frameTimings tickstep.Timings
	tickTimings  tickstep.Timings
}

func (d *driver) Update() error {
	if d.keys.IsJustPressed(ebiten.KeyD) {
		d.game.Overlay = !d.game.Overlay
	}

	if d.game.OnPointerDown != nil && d.mouse.IsPressed(ebiten.MouseButtonLeft) {
		d.game.OnPointerDown(CursorPosition())
	}

	d.elapsed = d.game.Clock.Elapsed()

	sw := d.tickTimings.Measure()
	err := d.game.Sim.DoTick(d.elapsed)
	sw.Stop()

	if err != nil {
		return err
	}

	d.game.Sim.DoHandleExpiry()

	return nil
}

func (d *driver) Draw(screen *ebiten.Image) {
	now := time.Now()
	if !d.lastFrame.IsZero() {
		d.frameTimings = d.frameTimings.Add(now.Sub(d.lastFrame))
	}
	d.lastFrame = now

	d.frames += 1

	d.game.Sim.DoDraw(&Canvas{Image: screen})

	if d.game.Overlay {
		d.drawOverlay(screen)
	}
}

func (d *driver) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

package tickbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tickstep/tickstep/gm"
)

type Keys struct{}

func (k Keys) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (k Keys) IsJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

func (k Keys) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

type MouseButtons struct{}

func (m MouseButtons) IsJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (m MouseButtons) IsJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (m MouseButtons) IsPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

// CursorPosition returns the mouse cursor position in screen pixels.
func CursorPosition() gm.Vec {
	x, y := ebiten.CursorPosition()
	return gm.VecOf(float64(x), float64(y))
}

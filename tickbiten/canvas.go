package tickbiten

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tickstep/tickstep"
	"github.com/tickstep/tickstep/color"
	"github.com/tickstep/tickstep/gm"
)

var _ tickstep.Surface = (*Canvas)(nil)

var defaultFontFace = sync.OnceValue(func() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
})

// the line height of basicfont.Face7x13
const defaultFontSize = 13.0

// Canvas implements tickstep.Surface on top of an ebiten image.
//
// A fresh Canvas is created for every draw pass, wrapping the current frame's
// screen image. The zero value is not usable, the Image must be set.
type Canvas struct {
	Image *ebiten.Image
}

func (c *Canvas) FillCircle(center gm.Vec, radius float64, tint color.Color) {
	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	p.Close()

	vector.FillPath(c.Image, &p, &vector.FillOptions{}, drawOptions(tint))
}

func (c *Canvas) Line(from, to gm.Vec, width float64, tint color.Color) {
	var p vector.Path
	p.MoveTo(float32(from.X), float32(from.Y))
	p.LineTo(float32(to.X), float32(to.Y))

	opts := &vector.StrokeOptions{Width: float32(width)}
	vector.StrokePath(c.Image, &p, opts, drawOptions(tint))
}

func (c *Canvas) Arrow(from, to gm.Vec, width, headRatio float64, tint color.Color) {
	c.Line(from, to, width, tint)

	a, b := arrowHeadPoints(from, to, headRatio)

	var p vector.Path
	p.MoveTo(float32(to.X), float32(to.Y))
	p.LineTo(float32(a.X), float32(a.Y))
	p.LineTo(float32(b.X), float32(b.Y))
	p.Close()

	vector.FillPath(c.Image, &p, &vector.FillOptions{}, drawOptions(tint))
}

func (c *Canvas) Text(pos gm.Vec, size float64, tint color.Color, str string) {
	scale := size / defaultFontSize

	var op text.DrawOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.Scale(tint.PremultipliedValues())

	text.Draw(c.Image, str, defaultFontFace(), &op)
}

// arrowHeadPoints returns the two back corners of the triangular head of an
// arrow pointing from from to to. The head spans an angle of pi/3 at the tip
// and its size scales with headRatio times the arrow length.
func arrowHeadPoints(from, to gm.Vec, headRatio float64) (gm.Vec, gm.Vec) {
	const tipTheta = math.Pi/6 - math.Pi

	tipFromOrigin := to.Sub(from)

	a := gm.FromAngle(tipTheta).Rotate(tipFromOrigin).Mul(headRatio).Add(to)
	b := gm.FromAngle(-tipTheta).Rotate(tipFromOrigin).Mul(headRatio).Add(to)

	return a, b
}

func drawOptions(tint color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{}
	op.ColorScale.Scale(tint.PremultipliedValues())
	op.AntiAlias = true
	return op
}

// Package color provides the float based color type used by drawing surfaces.
package color

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Red = RGB(1, 0, 0)
var Blue = RGB(0, 0, 1)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

// RGB8 converts 8 bit channel values into a Color.
func RGB8(r, g, b uint8) Color {
	return RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

// PremultipliedValues returns the color channels multiplied with the alpha
// value, plus the alpha value itself.
func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

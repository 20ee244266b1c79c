// Package gm holds the small amount of 2d geometry math the simulation and
// its renderers need.
package gm

import (
	"fmt"
	"math"
)

// Vec is a two dimensional vector. Simulation positions are measured in
// screen pixels with the y axis pointing down.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing into the direction of the given
// angle in radians.
func FromAngle(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Rotate rotates other by the angle this vector encodes, i.e. the complex
// product of the two vectors. Rotating by FromAngle(a) rotates by a radians.
func (v Vec) Rotate(other Vec) Vec {
	return Vec{
		X: v.X*other.X - v.Y*other.Y,
		Y: v.Y*other.X + v.X*other.Y,
	}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) Normalized() Vec {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) DistanceTo(other Vec) float64 {
	return other.Sub(v).Length()
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

// Clamp limits value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// Package physics provides a chipmunk backed body variant: a whole cp.Space
// that participates in a Simulation as one object. Its Tick steps the space
// by the fixed tick length, its Draw renders every body it holds.
package physics

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/tickstep/tickstep"
	"github.com/tickstep/tickstep/color"
	"github.com/tickstep/tickstep/gm"
)

// EarthAcceleration is the gravitational acceleration at the earth's surface
// in m/s^2.
const EarthAcceleration = 9.8

// Space never expires, it intentionally lacks the Expirer capability and
// stays resident for the lifetime of the simulation.
var _ tickstep.Object = (*Space)(nil)

type ball struct {
	body   *cp.Body
	radius float64
	tint   color.Color
}

type wall struct {
	from, to gm.Vec
}

type Space struct {
	space *cp.Space

	balls []ball
	walls []wall

	// Elasticity is applied to all shapes added afterwards.
	Elasticity float64

	// ArrowScale scales the velocity arrows drawn onto the balls.
	// Zero disables the arrows.
	ArrowScale float64
}

// NewSpace creates an empty space with the given constant gravity, in screen
// coordinates (y pointing down).
func NewSpace(gravity gm.Vec) *Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cpVec(gravity))

	return &Space{
		space:      space,
		Elasticity: 0.8,
	}
}

// AddWall adds a static segment the dynamic bodies collide with.
func (s *Space) AddWall(from, to gm.Vec) {
	shape := s.space.AddShape(cp.NewSegment(s.space.StaticBody, cpVec(from), cpVec(to), 1))
	shape.SetElasticity(s.Elasticity)
	shape.SetFriction(0.7)

	s.walls = append(s.walls, wall{from: from, to: to})
}

// AddBall adds a dynamic circle body. Mass scales with the circle area.
func (s *Space) AddBall(pos, velocity gm.Vec, radius float64, tint color.Color) {
	mass := radius * radius / 100

	body := s.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cpVec(pos))
	body.SetVelocityVector(cpVec(velocity))

	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetElasticity(s.Elasticity)
	shape.SetFriction(0.7)

	s.balls = append(s.balls, ball{body: body, radius: radius, tint: tint})
}

func (s *Space) Tick(tickLenSeconds float64) {
	s.space.Step(tickLenSeconds)
}

func (s *Space) Draw(target tickstep.Surface) {
	for _, w := range s.walls {
		target.Line(w.from, w.to, 2, color.Gray(0.5))
	}

	for _, b := range s.balls {
		pos := vecOf(b.body.Position())
		target.FillCircle(pos, b.radius, b.tint)

		if s.ArrowScale > 0 {
			vel := vecOf(b.body.Velocity())
			target.Arrow(pos, pos.Add(vel.Mul(s.ArrowScale)), 1, 0.2, color.Blue)
		}
	}
}

// BallCount returns the number of dynamic bodies in the space.
func (s *Space) BallCount() int {
	return len(s.balls)
}

// BallPosition returns the current position of the idx-th ball, in insertion
// order.
func (s *Space) BallPosition(idx int) gm.Vec {
	return vecOf(s.balls[idx].body.Position())
}

func cpVec(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func vecOf(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomVecIn returns a vector with both components uniformly sampled from
// their respective ranges.
func RandomVecIn(xlow, xhigh, ylow, yhigh float64) Vec {
	return Vec{
		X: RandomIn(xlow, xhigh),
		Y: RandomIn(ylow, yhigh),
	}
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec() Vec {
	for {
		v := Vec{
			X: RandomIn(-1, 1),
			Y: RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

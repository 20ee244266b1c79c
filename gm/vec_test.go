package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		require.Equal(t, VecOf(4, 6), VecOf(1, 2).Add(VecOf(3, 4)))
		require.Equal(t, VecOf(-2, -2), VecOf(1, 2).Sub(VecOf(3, 4)))
		require.Equal(t, VecOf(2, 4), VecOf(1, 2).Mul(2))
		require.Equal(t, VecOf(3, 8), VecOf(1, 2).MulEach(VecOf(3, 4)))
		require.Equal(t, 11.0, VecOf(1, 2).Dot(VecOf(3, 4)))
	})

	t.Run("length", func(t *testing.T) {
		require.Equal(t, 5.0, VecOf(3, 4).Length())
		require.Equal(t, 25.0, VecOf(3, 4).LengthSqr())
		require.Equal(t, 5.0, VecOf(0, 0).DistanceTo(VecOf(3, 4)))
		require.InDelta(t, 1.0, VecOf(3, 4).Normalized().Length(), 1e-9)
	})

	t.Run("angles", func(t *testing.T) {
		up := FromAngle(math.Pi / 2)
		require.InDelta(t, 0, up.X, 1e-9)
		require.InDelta(t, 1, up.Y, 1e-9)

		// rotating (1, 0) by a quarter turn yields (0, 1)
		rotated := FromAngle(math.Pi / 2).Rotate(VecOf(1, 0))
		require.InDelta(t, 0, rotated.X, 1e-9)
		require.InDelta(t, 1, rotated.Y, 1e-9)

		// rotation preserves length
		v := VecOf(3, 4)
		require.InDelta(t, v.Length(), FromAngle(0.7).Rotate(v).Length(), 1e-9)
	})
}

func TestClamp(t *testing.T) {
	require.Equal(t, 2.0, Clamp(1, 2, 5))
	require.Equal(t, 3.0, Clamp(3, 2, 5))
	require.Equal(t, 5.0, Clamp(7, 2, 5))
}

func TestRandomIn(t *testing.T) {
	for range 100 {
		v := RandomIn(2, 5)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
	}
}

func TestRandomVecIn(t *testing.T) {
	for range 100 {
		v := RandomVecIn(200, 400, -10, 10)
		require.GreaterOrEqual(t, v.X, 200.0)
		require.Less(t, v.X, 400.0)
		require.GreaterOrEqual(t, v.Y, -10.0)
		require.Less(t, v.Y, 10.0)
	}
}

func TestRandomVec(t *testing.T) {
	for range 100 {
		require.LessOrEqual(t, RandomVec().Length(), 1.0)
	}
}

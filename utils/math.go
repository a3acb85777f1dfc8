// Package utils contains small numeric helpers shared by the coordinate packages.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance used when comparing derived floating point values.
const DefaultEpsilon = 1e-9

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return float64(180) - math.Abs(math.Abs(math.Mod(a1-a2, 360))-float64(180))
}

// ModAngDeg wraps an angle into [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod(ang, 360)+360, 360)
}

// NormalizeDeg wraps an angle into (-180, 180].
func NormalizeDeg(ang float64) float64 {
	wrapped := ModAngDeg(ang)
	if wrapped > 180 {
		return wrapped - 360
	}
	return wrapped
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is
// less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// Clamp limits value to [lower, upper].
func Clamp(value, lower, upper float64) float64 {
	return math.Min(upper, math.Max(lower, value))
}

// ClampInt limits value to [lower, upper].
func ClampInt(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

// FloorHalf returns floor((n-1)/2) for the non-negative extent n, and 0 for an empty extent.
func FloorHalf(n int) int {
	if n <= 1 {
		return 0
	}
	return (n - 1) / 2
}

// CeilHalf returns ceil((n-1)/2) for the non-negative extent n, and 0 for an empty extent.
func CeilHalf(n int) int {
	if n <= 1 {
		return 0
	}
	return n / 2
}

// Square returns n*n.
// Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// Package units defines the scalar semantic types that every coordinate system is expressed in.
// They are distinct numeric types so that a distance can not be passed where an angle is expected.
package units

import (
	"math"

	"github.com/mipalgu/Coordinates/utils"
)

// Pixels counts pixels. It is signed because centered pixel coordinates and raw,
// out of frame results may be negative.
type Pixels int

// Centimetres is a length in centimetres.
type Centimetres float64

// Degrees is an angle in degrees.
type Degrees float64

// Percent is a normalized, dimensionless value. Valid image percentages lie in [-1, 1].
type Percent float64

// FromRadians converts an angle in radians into degrees.
func FromRadians(radians float64) Degrees {
	return Degrees(utils.RadToDeg(radians))
}

// Radians returns the angle in radians.
func (d Degrees) Radians() float64 {
	return utils.DegToRad(float64(d))
}

// Normalized wraps the angle into (-180, 180].
func (d Degrees) Normalized() Degrees {
	return Degrees(utils.NormalizeDeg(float64(d)))
}

// Abs returns the absolute length.
func (c Centimetres) Abs() Centimetres {
	return Centimetres(math.Abs(float64(c)))
}

// Abs returns the absolute value.
func (p Percent) Abs() Percent {
	return Percent(math.Abs(float64(p)))
}

// Abs returns the absolute pixel count.
func (p Pixels) Abs() Pixels {
	if p < 0 {
		return -p
	}
	return p
}

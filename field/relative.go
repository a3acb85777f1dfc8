// Package field converts between robot centric polar coordinates and field centric cartesian and
// oriented coordinates.
//
// Field positions use a right handed frame: a heading of 0 looks along the positive x axis and
// headings increase counter-clockwise, so a positive relative direction is to the left of the
// observer.
package field

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/mipalgu/Coordinates/units"
)

// RelativeCoordinate is a polar vector from an implicit source, facing 0°, to a target.
type RelativeCoordinate struct {
	// Direction is the bearing of the target. Positive values are to the left.
	Direction units.Degrees `json:"direction"`
	// Distance is the distance to the target.
	Distance units.Centimetres `json:"distance"`
}

// NewRelativeCoordinate returns the target at direction and distance from the source.
func NewRelativeCoordinate(direction units.Degrees, distance units.Centimetres) RelativeCoordinate {
	return RelativeCoordinate{Direction: direction, Distance: distance}
}

// Vector returns the target as a vector from the source, the x axis facing the source's 0°.
func (r RelativeCoordinate) Vector() r2.Point {
	rads := r.Direction.Radians()
	d := float64(r.Distance)
	return r2.Point{X: d * math.Cos(rads), Y: d * math.Sin(rads)}
}

// CartesianCoordinate returns the target's position assuming the source stands on the origin facing 0°.
func (r RelativeCoordinate) CartesianCoordinate() CartesianCoordinate {
	return fromVector(r.Vector())
}

// RelativeCoordinateTo returns the vector from this coordinate's target to other's target, where both
// share the same source. The direction is expressed in the source's frame.
func (r RelativeCoordinate) RelativeCoordinateTo(other RelativeCoordinate) RelativeCoordinate {
	return polar(other.Vector().Sub(r.Vector()))
}

func (r RelativeCoordinate) String() string {
	return fmt.Sprintf("relative(%.2f°, %.2fcm)", float64(r.Direction), float64(r.Distance))
}

// polar converts a vector into a relative coordinate. The zero vector points toward 0°.
func polar(v r2.Point) RelativeCoordinate {
	return RelativeCoordinate{
		Direction: units.FromRadians(math.Atan2(v.Y, v.X)).Normalized(),
		Distance:  units.Centimetres(v.Norm()),
	}
}

package field

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/mipalgu/Coordinates/units"
)

// CartesianCoordinate is a position on the field plane with the origin at the centre of the field.
type CartesianCoordinate struct {
	X units.Centimetres `json:"x"`
	Y units.Centimetres `json:"y"`
}

// NewCartesianCoordinate returns the position (x, y).
func NewCartesianCoordinate(x, y units.Centimetres) CartesianCoordinate {
	return CartesianCoordinate{X: x, Y: y}
}

func fromVector(v r2.Point) CartesianCoordinate {
	return CartesianCoordinate{X: units.Centimetres(v.X), Y: units.Centimetres(v.Y)}
}

// Vector returns the position as a 2D vector.
func (c CartesianCoordinate) Vector() r2.Point {
	return r2.Point{X: float64(c.X), Y: float64(c.Y)}
}

// Add translates the position by other.
func (c CartesianCoordinate) Add(other CartesianCoordinate) CartesianCoordinate {
	return fromVector(c.Vector().Add(other.Vector()))
}

// Sub returns the vector from other to c.
func (c CartesianCoordinate) Sub(other CartesianCoordinate) CartesianCoordinate {
	return fromVector(c.Vector().Sub(other.Vector()))
}

// Distance returns the straight line distance between c and other.
func (c CartesianCoordinate) Distance(other CartesianCoordinate) units.Centimetres {
	return units.Centimetres(c.Vector().Sub(other.Vector()).Norm())
}

// RelativeCoordinate returns the position as seen from a source on the origin facing 0°.
func (c CartesianCoordinate) RelativeCoordinate() RelativeCoordinate {
	return polar(c.Vector())
}

// RelativeCoordinateTo returns target as seen from a source standing on c facing 0°.
func (c CartesianCoordinate) RelativeCoordinateTo(target CartesianCoordinate) RelativeCoordinate {
	return polar(target.Vector().Sub(c.Vector()))
}

func (c CartesianCoordinate) String() string {
	return fmt.Sprintf("cartesian(%.2f, %.2f)", float64(c.X), float64(c.Y))
}

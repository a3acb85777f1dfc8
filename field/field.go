package field

import (
	"fmt"

	"github.com/mipalgu/Coordinates/units"
)

// FieldCoordinate is a position on the field together with the direction being faced.
type FieldCoordinate struct {
	Position CartesianCoordinate `json:"position"`
	// Heading is 0° along the positive x axis and increases counter-clockwise.
	Heading units.Degrees `json:"heading"`
}

// NewFieldCoordinate returns the pose at position facing heading.
func NewFieldCoordinate(position CartesianCoordinate, heading units.Degrees) FieldCoordinate {
	return FieldCoordinate{Position: position, Heading: heading}
}

// CartesianCoordinate returns the field position of a target observed at rel from this pose.
func (f FieldCoordinate) CartesianCoordinate(rel RelativeCoordinate) CartesianCoordinate {
	rotated := NewRelativeCoordinate(f.Heading+rel.Direction, rel.Distance)
	return f.Position.Add(rotated.CartesianCoordinate())
}

// RelativeCoordinate returns target as observed from this pose.
func (f FieldCoordinate) RelativeCoordinate(target CartesianCoordinate) RelativeCoordinate {
	rel := f.Position.RelativeCoordinateTo(target)
	rel.Direction = (rel.Direction - f.Heading).Normalized()
	return rel
}

// FieldCoordinate returns the pose of a target observed at rel from this pose and facing heading
// relative to this pose's heading.
func (f FieldCoordinate) FieldCoordinate(rel RelativeCoordinate, heading units.Degrees) FieldCoordinate {
	return FieldCoordinate{
		Position: f.CartesianCoordinate(rel),
		Heading:  (f.Heading + heading).Normalized(),
	}
}

func (f FieldCoordinate) String() string {
	return fmt.Sprintf("field(%.2f, %.2f facing %.2f°)", float64(f.Position.X), float64(f.Position.Y), float64(f.Heading))
}

package imagecoord

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/units"
)

const (
	// PercentLowerBound is the smallest valid percentage on either axis.
	PercentLowerBound units.Percent = -1
	// PercentUpperBound is the largest valid percentage on either axis.
	PercentUpperBound units.Percent = 1
	// percentExtent is the width of the valid range on either axis.
	percentExtent = float64(PercentUpperBound - PercentLowerBound)
)

// PercentCoordinate is a point in an image normalized so that the edges of the image lie on -1 and 1.
// The origin is the centre of the image and y increases upward. Values outside of [-1, 1] represent
// points outside of the frame; conversions producing them are explicitly unchecked.
type PercentCoordinate struct {
	X units.Percent `json:"x"`
	Y units.Percent `json:"y"`
}

// NewPercentCoordinate returns the percentage (x, y).
func NewPercentCoordinate(x, y units.Percent) PercentCoordinate {
	return PercentCoordinate{X: x, Y: y}
}

// PercentCoordinate returns p; it lets percentages be used wherever a Point is accepted.
func (p PercentCoordinate) PercentCoordinate() PercentCoordinate {
	return p
}

// InBounds reports whether both axes lie within [-1, 1].
func (p PercentCoordinate) InBounds() bool {
	return p.X >= PercentLowerBound && p.X <= PercentUpperBound &&
		p.Y >= PercentLowerBound && p.Y <= PercentUpperBound
}

// PixelCoordinate expands the percentage into a centered pixel of the given resolution.
func (p PercentCoordinate) PixelCoordinate(res Resolution) PixelCoordinate {
	return PixelCoordinate{
		X:         percentToPixel(p.X, res.Width),
		Y:         percentToPixel(p.Y, res.Height),
		ResWidth:  res.Width,
		ResHeight: res.Height,
	}
}

// CameraCoordinate expands the percentage into a camera pixel of the given resolution.
func (p PercentCoordinate) CameraCoordinate(res Resolution) CameraCoordinate {
	return p.PixelCoordinate(res).CameraCoordinate()
}

// Clamped snaps an out of bounds axis onto -1 or 1, provided the overshoot is at most tolerance
// times the width of the valid range. ErrOutOfBounds is returned otherwise.
func (p PercentCoordinate) Clamped(tolerance units.Percent) (PercentCoordinate, error) {
	allowed := sanitizeTolerance(tolerance) * percentExtent
	x, okX := clampAxis(float64(p.X), float64(PercentLowerBound), float64(PercentUpperBound), allowed)
	y, okY := clampAxis(float64(p.Y), float64(PercentLowerBound), float64(PercentUpperBound), allowed)
	if !okX || !okY {
		return p, errors.Wrapf(ErrOutOfBounds, "%v exceeds a tolerance of %v", p, tolerance)
	}
	return PercentCoordinate{X: units.Percent(x), Y: units.Percent(y)}, nil
}

// Vector returns the percentage as a 2D point.
func (p PercentCoordinate) Vector() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (p PercentCoordinate) String() string {
	return fmt.Sprintf("percent(%.4f, %.4f)", float64(p.X), float64(p.Y))
}

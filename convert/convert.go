// Package convert chains the image, projection and field conversions together.
//
// Every conversion into an image comes in four forms:
//   - the plain form fails with ErrNotVisible when the target is outside of the image;
//   - the Unsafe form always returns the raw, possibly out of frame, coordinate;
//   - the Clamped form snaps a coordinate that is out of frame by no more than a tolerance onto the
//     edge of the image, and fails with ErrNotVisible otherwise;
//   - the UnsafeClamped form clamps like Clamped but returns the raw coordinate instead of failing.
//
// Conversions out of an image fail with projection.ErrNotOnGround when the ray never reaches the
// ground, while their Unsafe forms report projection.MaxDistance instead.
package convert

import (
	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/projection"
	"github.com/mipalgu/Coordinates/units"
)

// ErrNotVisible is returned when a target does not appear in the camera's image.
var ErrNotVisible = errors.New("target is not visible to the camera")

type clampable[T any] interface {
	Clamped(tolerance units.Percent) (T, error)
}

func clamped[T clampable[T]](raw T, tolerance units.Percent) (T, error) {
	c, err := raw.Clamped(tolerance)
	if err != nil {
		return c, errors.Wrapf(ErrNotVisible, "%v", err)
	}
	return c, nil
}

func unsafeClamped[T clampable[T]](raw T, tolerance units.Percent) T {
	c, err := raw.Clamped(tolerance)
	if err != nil {
		return raw
	}
	return c
}

func visible(pct imagecoord.PercentCoordinate) error {
	if !pct.InBounds() {
		return errors.Wrapf(ErrNotVisible, "%v is outside of the image", pct)
	}
	return nil
}

// ObjectOnGround reports whether ImageToRelative succeeds for pt.
func ObjectOnGround(pt imagecoord.Point, pivot camera.CameraPivot, index int) bool {
	return projection.ObjectOnGround(pt.PercentCoordinate(), pivot, index)
}

// CanSeeObject reports whether the camera at index of pivot can see rel.
func CanSeeObject(rel field.RelativeCoordinate, pivot camera.CameraPivot, index int) bool {
	return projection.CanSeeObject(rel, pivot, index)
}

// CanSeeCartesian reports whether the camera at index of pivot on a robot standing at source can see target.
func CanSeeCartesian(target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int) bool {
	return CanSeeObject(source.RelativeCoordinate(target), pivot, index)
}

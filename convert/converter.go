package convert

import (
	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/projection"
	"github.com/mipalgu/Coordinates/units"
)

// Converter binds the conversions to one camera of a pivot, the resolution of its images and
// a clamping tolerance.
type Converter struct {
	mount      projection.Mount
	pivot      camera.CameraPivot
	index      int
	resolution imagecoord.Resolution
	tolerance  units.Percent
}

// NewConverter returns a Converter for the camera at index of pivot producing res images.
// It panics if index does not address a camera of pivot.
func NewConverter(pivot camera.CameraPivot, index int, res imagecoord.Resolution, tolerance units.Percent) Converter {
	return Converter{
		mount:      projection.NewMount(pivot, index),
		pivot:      pivot,
		index:      index,
		resolution: res,
		tolerance:  tolerance,
	}
}

// Pivot returns the pivot the camera is attached to.
func (c Converter) Pivot() camera.CameraPivot { return c.pivot }

// CameraIndex returns the index of the camera on the pivot.
func (c Converter) CameraIndex() int { return c.index }

// Resolution returns the resolution of the camera's images.
func (c Converter) Resolution() imagecoord.Resolution { return c.resolution }

// Tolerance returns the clamping tolerance.
func (c Converter) Tolerance() units.Percent { return c.tolerance }

// Mount returns the absolute placement of the camera.
func (c Converter) Mount() projection.Mount { return c.mount }

// ImageToRelative is the package level ImageToRelative for the bound camera.
func (c Converter) ImageToRelative(pt imagecoord.Point) (field.RelativeCoordinate, error) {
	return c.mount.Intersect(pt.PercentCoordinate())
}

// UnsafeImageToRelative is the package level UnsafeImageToRelative for the bound camera.
func (c Converter) UnsafeImageToRelative(pt imagecoord.Point) field.RelativeCoordinate {
	return c.mount.UnsafeIntersect(pt.PercentCoordinate())
}

// RelativeToCamera returns the camera pixel rel appears at, clamped within the bound tolerance.
func (c Converter) RelativeToCamera(rel field.RelativeCoordinate) (imagecoord.CameraCoordinate, error) {
	return clamped(c.mount.Project(rel).CameraCoordinate(c.resolution), c.tolerance)
}

// UnsafeRelativeToCamera returns the raw camera pixel rel appears at.
func (c Converter) UnsafeRelativeToCamera(rel field.RelativeCoordinate) imagecoord.CameraCoordinate {
	return c.mount.Project(rel).CameraCoordinate(c.resolution)
}

// ImageToCartesian is the package level ImageToCartesian for the bound camera.
func (c Converter) ImageToCartesian(pt imagecoord.Point, source field.FieldCoordinate) (field.CartesianCoordinate, error) {
	rel, err := c.ImageToRelative(pt)
	if err != nil {
		return field.CartesianCoordinate{}, err
	}
	return source.CartesianCoordinate(rel), nil
}

// CartesianToCamera returns the camera pixel target appears at from source, clamped within the bound tolerance.
func (c Converter) CartesianToCamera(
	target field.CartesianCoordinate, source field.FieldCoordinate,
) (imagecoord.CameraCoordinate, error) {
	return c.RelativeToCamera(source.RelativeCoordinate(target))
}

// ObjectOnGround reports whether ImageToRelative succeeds for pt.
func (c Converter) ObjectOnGround(pt imagecoord.Point) bool {
	return c.mount.OnGround(pt.PercentCoordinate())
}

// CanSeeObject reports whether the bound camera can see rel without clamping.
func (c Converter) CanSeeObject(rel field.RelativeCoordinate) bool {
	return c.mount.CanSee(rel)
}

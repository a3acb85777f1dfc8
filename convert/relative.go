package convert

import (
	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/projection"
	"github.com/mipalgu/Coordinates/units"
)

// ImageToRelative returns where the object seen at pt by the camera at index of pivot lies relative to the robot.
func ImageToRelative(pt imagecoord.Point, pivot camera.CameraPivot, index int) (field.RelativeCoordinate, error) {
	return projection.PercentToRelative(pt.PercentCoordinate(), pivot, index)
}

// UnsafeImageToRelative is ImageToRelative reporting projection.MaxDistance for points above the horizon.
func UnsafeImageToRelative(pt imagecoord.Point, pivot camera.CameraPivot, index int) field.RelativeCoordinate {
	return projection.UnsafePercentToRelative(pt.PercentCoordinate(), pivot, index)
}

// RelativeToPercent returns where rel appears in the image of the camera at index of pivot.
func RelativeToPercent(rel field.RelativeCoordinate, pivot camera.CameraPivot, index int) (imagecoord.PercentCoordinate, error) {
	pct := projection.RelativeToPercent(rel, pivot, index)
	if err := visible(pct); err != nil {
		return imagecoord.PercentCoordinate{}, err
	}
	return pct, nil
}

// UnsafeRelativeToPercent is RelativeToPercent without the visibility check.
func UnsafeRelativeToPercent(rel field.RelativeCoordinate, pivot camera.CameraPivot, index int) imagecoord.PercentCoordinate {
	return projection.RelativeToPercent(rel, pivot, index)
}

// ClampedRelativeToPercent is RelativeToPercent accepting targets out of frame by at most tolerance.
func ClampedRelativeToPercent(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, tolerance units.Percent,
) (imagecoord.PercentCoordinate, error) {
	return clamped(UnsafeRelativeToPercent(rel, pivot, index), tolerance)
}

// UnsafeClampedRelativeToPercent is ClampedRelativeToPercent returning the raw coordinate beyond tolerance.
func UnsafeClampedRelativeToPercent(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, tolerance units.Percent,
) imagecoord.PercentCoordinate {
	return unsafeClamped(UnsafeRelativeToPercent(rel, pivot, index), tolerance)
}

// RelativeToPixel returns the centered pixel rel appears at in a res image of the camera at index of pivot.
func RelativeToPixel(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) (imagecoord.PixelCoordinate, error) {
	pct, err := RelativeToPercent(rel, pivot, index)
	if err != nil {
		return imagecoord.PixelCoordinate{}, err
	}
	return pct.PixelCoordinate(res), nil
}

// UnsafeRelativeToPixel is RelativeToPixel without the visibility check.
func UnsafeRelativeToPixel(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) imagecoord.PixelCoordinate {
	return UnsafeRelativeToPercent(rel, pivot, index).PixelCoordinate(res)
}

// ClampedRelativeToPixel is RelativeToPixel accepting targets out of frame by at most tolerance of the resolution.
func ClampedRelativeToPixel(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution, tolerance units.Percent,
) (imagecoord.PixelCoordinate, error) {
	return clamped(UnsafeRelativeToPixel(rel, pivot, index, res), tolerance)
}

// UnsafeClampedRelativeToPixel is ClampedRelativeToPixel returning the raw pixel beyond tolerance.
func UnsafeClampedRelativeToPixel(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution, tolerance units.Percent,
) imagecoord.PixelCoordinate {
	return unsafeClamped(UnsafeRelativeToPixel(rel, pivot, index, res), tolerance)
}

// RelativeToCamera returns the camera pixel rel appears at in a res image of the camera at index of pivot.
func RelativeToCamera(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) (imagecoord.CameraCoordinate, error) {
	pct, err := RelativeToPercent(rel, pivot, index)
	if err != nil {
		return imagecoord.CameraCoordinate{}, err
	}
	return pct.CameraCoordinate(res), nil
}

// UnsafeRelativeToCamera is RelativeToCamera without the visibility check.
func UnsafeRelativeToCamera(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) imagecoord.CameraCoordinate {
	return UnsafeRelativeToPercent(rel, pivot, index).CameraCoordinate(res)
}

// ClampedRelativeToCamera is RelativeToCamera accepting targets out of frame by at most tolerance of the resolution.
func ClampedRelativeToCamera(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution, tolerance units.Percent,
) (imagecoord.CameraCoordinate, error) {
	return clamped(UnsafeRelativeToCamera(rel, pivot, index, res), tolerance)
}

// UnsafeClampedRelativeToCamera is ClampedRelativeToCamera returning the raw pixel beyond tolerance.
func UnsafeClampedRelativeToCamera(
	rel field.RelativeCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution, tolerance units.Percent,
) imagecoord.CameraCoordinate {
	return unsafeClamped(UnsafeRelativeToCamera(rel, pivot, index, res), tolerance)
}

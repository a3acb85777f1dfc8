package convert

import (
	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/units"
)

// ImageToCartesian returns the field position of the object seen at pt by the camera at index of pivot
// on a robot standing at source.
func ImageToCartesian(
	pt imagecoord.Point, source field.FieldCoordinate, pivot camera.CameraPivot, index int,
) (field.CartesianCoordinate, error) {
	rel, err := ImageToRelative(pt, pivot, index)
	if err != nil {
		return field.CartesianCoordinate{}, err
	}
	return source.CartesianCoordinate(rel), nil
}

// UnsafeImageToCartesian is ImageToCartesian placing points above the horizon projection.MaxDistance away.
func UnsafeImageToCartesian(
	pt imagecoord.Point, source field.FieldCoordinate, pivot camera.CameraPivot, index int,
) field.CartesianCoordinate {
	return source.CartesianCoordinate(UnsafeImageToRelative(pt, pivot, index))
}

// CartesianToPercent returns where target appears in the image of the camera at index of pivot
// on a robot standing at source.
func CartesianToPercent(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int,
) (imagecoord.PercentCoordinate, error) {
	return RelativeToPercent(source.RelativeCoordinate(target), pivot, index)
}

// UnsafeCartesianToPercent is CartesianToPercent without the visibility check.
func UnsafeCartesianToPercent(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int,
) imagecoord.PercentCoordinate {
	return UnsafeRelativeToPercent(source.RelativeCoordinate(target), pivot, index)
}

// ClampedCartesianToPercent is CartesianToPercent accepting targets out of frame by at most tolerance.
func ClampedCartesianToPercent(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, tolerance units.Percent,
) (imagecoord.PercentCoordinate, error) {
	return ClampedRelativeToPercent(source.RelativeCoordinate(target), pivot, index, tolerance)
}

// UnsafeClampedCartesianToPercent is ClampedCartesianToPercent returning the raw coordinate beyond tolerance.
func UnsafeClampedCartesianToPercent(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, tolerance units.Percent,
) imagecoord.PercentCoordinate {
	return UnsafeClampedRelativeToPercent(source.RelativeCoordinate(target), pivot, index, tolerance)
}

// CartesianToPixel returns the centered pixel target appears at in a res image of the camera at index
// of pivot on a robot standing at source.
func CartesianToPixel(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) (imagecoord.PixelCoordinate, error) {
	return RelativeToPixel(source.RelativeCoordinate(target), pivot, index, res)
}

// UnsafeCartesianToPixel is CartesianToPixel without the visibility check.
func UnsafeCartesianToPixel(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) imagecoord.PixelCoordinate {
	return UnsafeRelativeToPixel(source.RelativeCoordinate(target), pivot, index, res)
}

// ClampedCartesianToPixel is CartesianToPixel accepting targets out of frame by at most tolerance of the resolution.
func ClampedCartesianToPixel(
	target field.CartesianCoordinate,
	source field.FieldCoordinate,
	pivot camera.CameraPivot,
	index int,
	res imagecoord.Resolution,
	tolerance units.Percent,
) (imagecoord.PixelCoordinate, error) {
	return ClampedRelativeToPixel(source.RelativeCoordinate(target), pivot, index, res, tolerance)
}

// UnsafeClampedCartesianToPixel is ClampedCartesianToPixel returning the raw pixel beyond tolerance.
func UnsafeClampedCartesianToPixel(
	target field.CartesianCoordinate,
	source field.FieldCoordinate,
	pivot camera.CameraPivot,
	index int,
	res imagecoord.Resolution,
	tolerance units.Percent,
) imagecoord.PixelCoordinate {
	return UnsafeClampedRelativeToPixel(source.RelativeCoordinate(target), pivot, index, res, tolerance)
}

// CartesianToCamera returns the camera pixel target appears at in a res image of the camera at index
// of pivot on a robot standing at source.
func CartesianToCamera(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) (imagecoord.CameraCoordinate, error) {
	return RelativeToCamera(source.RelativeCoordinate(target), pivot, index, res)
}

// UnsafeCartesianToCamera is CartesianToCamera without the visibility check.
func UnsafeCartesianToCamera(
	target field.CartesianCoordinate, source field.FieldCoordinate, pivot camera.CameraPivot, index int, res imagecoord.Resolution,
) imagecoord.CameraCoordinate {
	return UnsafeRelativeToCamera(source.RelativeCoordinate(target), pivot, index, res)
}

// ClampedCartesianToCamera is CartesianToCamera accepting targets out of frame by at most tolerance of the resolution.
func ClampedCartesianToCamera(
	target field.CartesianCoordinate,
	source field.FieldCoordinate,
	pivot camera.CameraPivot,
	index int,
	res imagecoord.Resolution,
	tolerance units.Percent,
) (imagecoord.CameraCoordinate, error) {
	return ClampedRelativeToCamera(source.RelativeCoordinate(target), pivot, index, res, tolerance)
}

// UnsafeClampedCartesianToCamera is ClampedCartesianToCamera returning the raw pixel beyond tolerance.
func UnsafeClampedCartesianToCamera(
	target field.CartesianCoordinate,
	source field.FieldCoordinate,
	pivot camera.CameraPivot,
	index int,
	res imagecoord.Resolution,
	tolerance units.Percent,
) imagecoord.CameraCoordinate {
	return UnsafeClampedRelativeToCamera(source.RelativeCoordinate(target), pivot, index, res, tolerance)
}

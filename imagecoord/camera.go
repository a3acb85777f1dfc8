package imagecoord

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/units"
)

// CameraCoordinate is a pixel as delivered by a camera: the origin is the top left
// corner and y increases downward. Valid coordinates satisfy 0 <= X < ResWidth and 0 <= Y < ResHeight.
type CameraCoordinate struct {
	X         units.Pixels `json:"x"`
	Y         units.Pixels `json:"y"`
	ResWidth  units.Pixels `json:"res_width"`
	ResHeight units.Pixels `json:"res_height"`
}

// NewCameraCoordinate returns the camera pixel (x, y) of an image with the given resolution.
func NewCameraCoordinate(x, y units.Pixels, res Resolution) CameraCoordinate {
	return CameraCoordinate{X: x, Y: y, ResWidth: res.Width, ResHeight: res.Height}
}

// Resolution returns the resolution of the image the coordinate belongs to.
func (c CameraCoordinate) Resolution() Resolution {
	return NewResolution(c.ResWidth, c.ResHeight)
}

// XLowerBound is the smallest valid x.
func (c CameraCoordinate) XLowerBound() units.Pixels { return 0 }

// XUpperBound is the largest valid x.
func (c CameraCoordinate) XUpperBound() units.Pixels { return c.ResWidth - 1 }

// YLowerBound is the smallest valid y.
func (c CameraCoordinate) YLowerBound() units.Pixels { return 0 }

// YUpperBound is the largest valid y.
func (c CameraCoordinate) YUpperBound() units.Pixels { return c.ResHeight - 1 }

// InBounds reports whether the coordinate lies within its image.
func (c CameraCoordinate) InBounds() bool {
	return c.X >= c.XLowerBound() && c.X <= c.XUpperBound() &&
		c.Y >= c.YLowerBound() && c.Y <= c.YUpperBound()
}

// PixelCoordinate re-centers the coordinate on the middle of the image and flips the y axis.
func (c CameraCoordinate) PixelCoordinate() PixelCoordinate {
	return PixelCoordinate{
		X:         c.X - units.Pixels(centeredLower(c.ResWidth)),
		Y:         units.Pixels(centeredUpper(c.ResHeight)) - c.Y,
		ResWidth:  c.ResWidth,
		ResHeight: c.ResHeight,
	}
}

// PercentCoordinate normalizes the coordinate.
func (c CameraCoordinate) PercentCoordinate() PercentCoordinate {
	return c.PixelCoordinate().PercentCoordinate()
}

// Clamped snaps an out of bounds axis onto the nearest edge pixel, provided the overshoot is at most
// tolerance times the resolution along that axis. ErrOutOfBounds is returned otherwise.
func (c CameraCoordinate) Clamped(tolerance units.Percent) (CameraCoordinate, error) {
	tol := sanitizeTolerance(tolerance)
	x, okX := clampAxis(float64(c.X), float64(c.XLowerBound()), float64(c.XUpperBound()), tol*float64(c.ResWidth))
	y, okY := clampAxis(float64(c.Y), float64(c.YLowerBound()), float64(c.YUpperBound()), tol*float64(c.ResHeight))
	if !okX || !okY {
		return c, errors.Wrapf(ErrOutOfBounds, "%v exceeds a tolerance of %v", c, tolerance)
	}
	return CameraCoordinate{X: units.Pixels(x), Y: units.Pixels(y), ResWidth: c.ResWidth, ResHeight: c.ResHeight}, nil
}

func (c CameraCoordinate) String() string {
	return fmt.Sprintf("camera(%d, %d @ %dx%d)", c.X, c.Y, c.ResWidth, c.ResHeight)
}

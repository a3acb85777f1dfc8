package imagecoord

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/units"
)

// PixelCoordinate is a pixel measured from the centre of the image with y increasing upward.
// For even resolutions the image has no true centre pixel, so (0, 0) is the pixel just
// below and to the left of the centre and the positive axes reach one pixel further than the negative ones.
type PixelCoordinate struct {
	X         units.Pixels `json:"x"`
	Y         units.Pixels `json:"y"`
	ResWidth  units.Pixels `json:"res_width"`
	ResHeight units.Pixels `json:"res_height"`
}

// NewPixelCoordinate returns the centered pixel (x, y) of an image with the given resolution.
func NewPixelCoordinate(x, y units.Pixels, res Resolution) PixelCoordinate {
	return PixelCoordinate{X: x, Y: y, ResWidth: res.Width, ResHeight: res.Height}
}

// Resolution returns the resolution of the image the coordinate belongs to.
func (p PixelCoordinate) Resolution() Resolution {
	return NewResolution(p.ResWidth, p.ResHeight)
}

// XLowerBound is -floor((ResWidth-1)/2).
func (p PixelCoordinate) XLowerBound() units.Pixels { return -units.Pixels(centeredLower(p.ResWidth)) }

// XUpperBound is ceil((ResWidth-1)/2).
func (p PixelCoordinate) XUpperBound() units.Pixels { return units.Pixels(centeredUpper(p.ResWidth)) }

// YLowerBound is -floor((ResHeight-1)/2).
func (p PixelCoordinate) YLowerBound() units.Pixels { return -units.Pixels(centeredLower(p.ResHeight)) }

// YUpperBound is ceil((ResHeight-1)/2).
func (p PixelCoordinate) YUpperBound() units.Pixels { return units.Pixels(centeredUpper(p.ResHeight)) }

// InBounds reports whether the coordinate lies within its image.
func (p PixelCoordinate) InBounds() bool {
	return p.X >= p.XLowerBound() && p.X <= p.XUpperBound() &&
		p.Y >= p.YLowerBound() && p.Y <= p.YUpperBound()
}

// CameraCoordinate moves the origin back to the top left corner.
func (p PixelCoordinate) CameraCoordinate() CameraCoordinate {
	return CameraCoordinate{
		X:         p.X + units.Pixels(centeredLower(p.ResWidth)),
		Y:         units.Pixels(centeredUpper(p.ResHeight)) - p.Y,
		ResWidth:  p.ResWidth,
		ResHeight: p.ResHeight,
	}
}

// PercentCoordinate normalizes the coordinate so that the edge pixels land on exactly -1 and 1.
// Positive values are divided by the positive bound and negative values by the negative bound,
// which differ by one for even resolutions.
func (p PixelCoordinate) PercentCoordinate() PercentCoordinate {
	return PercentCoordinate{
		X: pixelToPercent(p.X, p.ResWidth),
		Y: pixelToPercent(p.Y, p.ResHeight),
	}
}

// Clamped snaps an out of bounds axis onto the nearest edge pixel, provided the overshoot is at most
// tolerance times the resolution along that axis. ErrOutOfBounds is returned otherwise.
func (p PixelCoordinate) Clamped(tolerance units.Percent) (PixelCoordinate, error) {
	tol := sanitizeTolerance(tolerance)
	x, okX := clampAxis(float64(p.X), float64(p.XLowerBound()), float64(p.XUpperBound()), tol*float64(p.ResWidth))
	y, okY := clampAxis(float64(p.Y), float64(p.YLowerBound()), float64(p.YUpperBound()), tol*float64(p.ResHeight))
	if !okX || !okY {
		return p, errors.Wrapf(ErrOutOfBounds, "%v exceeds a tolerance of %v", p, tolerance)
	}
	return PixelCoordinate{X: units.Pixels(x), Y: units.Pixels(y), ResWidth: p.ResWidth, ResHeight: p.ResHeight}, nil
}

func (p PixelCoordinate) String() string {
	return fmt.Sprintf("pixel(%d, %d @ %dx%d)", p.X, p.Y, p.ResWidth, p.ResHeight)
}

func pixelToPercent(value, extent units.Pixels) units.Percent {
	divisor := centeredUpper(extent)
	if value < 0 {
		divisor = centeredLower(extent)
	}
	if divisor == 0 {
		return 0
	}
	return units.Percent(float64(value) / float64(divisor))
}

func percentToPixel(value units.Percent, extent units.Pixels) units.Pixels {
	multiplier := centeredUpper(extent)
	if value < 0 {
		multiplier = centeredLower(extent)
	}
	scaled := math.Round(float64(value) * float64(multiplier))
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled > maxPixels:
		return maxPixels
	case scaled < -maxPixels:
		return -maxPixels
	default:
		return units.Pixels(scaled)
	}
}

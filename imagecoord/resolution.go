// Package imagecoord implements the three interchangeable representations of a point in an image:
// raw camera pixels, centered pixels and normalized percentages.
package imagecoord

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mipalgu/Coordinates/units"
	"github.com/mipalgu/Coordinates/utils"
)

// ErrOutOfBounds is returned when a coordinate lies outside of its image further than a tolerance allows.
var ErrOutOfBounds = errors.New("coordinate is outside of the image bounds")

// Resolution is the width and height of an image in pixels.
type Resolution struct {
	Width  units.Pixels `json:"width"`
	Height units.Pixels `json:"height"`
}

// NewResolution returns the resolution of a width x height image.
func NewResolution(width, height units.Pixels) Resolution {
	return Resolution{Width: width, Height: height}
}

// Validate ensures both dimensions hold at least one pixel.
func (r Resolution) Validate(path string) error {
	var errs error
	if r.Width <= 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: width must be positive, got %d", path, r.Width))
	}
	if r.Height <= 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: height must be positive, got %d", path, r.Height))
	}
	return errs
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Point is any image coordinate that can be expressed as a resolution independent percentage.
type Point interface {
	PercentCoordinate() PercentCoordinate
}

// maxPixels bounds the magnitude of pixels produced from raw percentages so that
// far out of frame values saturate instead of overflowing.
const maxPixels = 1 << 30

// centeredLower is the magnitude of the most negative centered pixel along an axis of extent n.
func centeredLower(n units.Pixels) int {
	return utils.FloorHalf(int(n))
}

// centeredUpper is the most positive centered pixel along an axis of extent n.
func centeredUpper(n units.Pixels) int {
	return utils.CeilHalf(int(n))
}

// clampAxis snaps value into [lower, upper] when it overshoots by no more than allowed.
func clampAxis(value, lower, upper, allowed float64) (float64, bool) {
	switch {
	case value < lower:
		if lower-value > allowed {
			return value, false
		}
		return lower, true
	case value > upper:
		if value-upper > allowed {
			return value, false
		}
		return upper, true
	default:
		return value, true
	}
}

func sanitizeTolerance(tolerance units.Percent) float64 {
	if tolerance < 0 {
		return 0
	}
	return float64(tolerance)
}

// Package camera describes how cameras are mounted on a robot: each camera's placement on its
// pivot, and the pivot's placement on the robot.
package camera

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mipalgu/Coordinates/units"
)

// maxFov is the exclusive upper bound on a field of view for the linear projection model.
const maxFov units.Degrees = 180

// Camera is the static description of a camera mounted on a pivot.
type Camera struct {
	// Height is the vertical distance from the pivot to the centre of the camera.
	Height units.Centimetres `json:"height"`
	// CenterOffset is the distance of the camera in front of the pivot. Negative values are behind it.
	CenterOffset units.Centimetres `json:"center_offset"`
	// VDirection is the vertical tilt of the camera. Positive values point toward the ground.
	VDirection units.Degrees `json:"v_direction"`
	// VFov is the vertical field of view.
	VFov units.Degrees `json:"v_fov"`
	// HFov is the horizontal field of view.
	HFov units.Degrees `json:"h_fov"`
}

// Validate ensures both fields of view are usable.
func (c Camera) Validate(path string) error {
	var errs error
	if c.VFov < 0 || c.VFov >= maxFov {
		errs = multierr.Append(errs, errors.Errorf("%s: v_fov must be within [0, %v), got %v", path, maxFov, c.VFov))
	}
	if c.HFov < 0 || c.HFov >= maxFov {
		errs = multierr.Append(errs, errors.Errorf("%s: h_fov must be within [0, %v), got %v", path, maxFov, c.HFov))
	}
	return errs
}

func (c Camera) String() string {
	return fmt.Sprintf("camera(height: %v, offset: %v, tilt: %v, fov: %vx%v)",
		c.Height, c.CenterOffset, c.VDirection, c.HFov, c.VFov)
}

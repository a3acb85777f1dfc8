package camera

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mipalgu/Coordinates/units"
)

// CameraPivot is the joint a set of cameras is attached to, for example a robot's neck.
type CameraPivot struct {
	// Pitch is the vertical orientation of the pivot. Positive values point toward the ground.
	Pitch units.Degrees `json:"pitch"`
	// Yaw is the horizontal orientation of the pivot. Positive values turn left.
	Yaw units.Degrees `json:"yaw"`
	// Height is the distance from the ground to the pivot.
	Height units.Centimetres `json:"height"`
	// Cameras are the cameras attached to the pivot, addressed by their index.
	Cameras []Camera `json:"cameras"`
}

// NewCameraPivot returns a pivot holding its own copy of cameras.
func NewCameraPivot(pitch, yaw units.Degrees, height units.Centimetres, cameras ...Camera) CameraPivot {
	return CameraPivot{
		Pitch:   pitch,
		Yaw:     yaw,
		Height:  height,
		Cameras: append([]Camera(nil), cameras...),
	}
}

// NumCameras returns the number of cameras attached to the pivot.
func (p CameraPivot) NumCameras() int {
	return len(p.Cameras)
}

// Camera returns the camera at index. An index outside of the pivot's cameras is a programming
// error and panics.
func (p CameraPivot) Camera(index int) Camera {
	if index < 0 || index >= len(p.Cameras) {
		panic(errors.Errorf("camera index %d out of range, pivot has %d cameras", index, len(p.Cameras)))
	}
	return p.Cameras[index]
}

// WithOrientation returns a copy of the pivot facing pitch and yaw, sharing the same cameras.
func (p CameraPivot) WithOrientation(pitch, yaw units.Degrees) CameraPivot {
	p.Pitch = pitch
	p.Yaw = yaw
	return p
}

// Validate ensures the pivot has at least one camera and that every camera is valid.
func (p CameraPivot) Validate(path string) error {
	if len(p.Cameras) == 0 {
		return errors.Errorf("%s: at least one camera is required", path)
	}
	var errs error
	for i, c := range p.Cameras {
		errs = multierr.Append(errs, c.Validate(fmt.Sprintf("%s.cameras.%d", path, i)))
	}
	return errs
}

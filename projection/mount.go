// Package projection casts rays from a camera through an image and intersects them with the ground,
// and projects points on the ground back into the image.
//
// The robot frame has x pointing forward, y to the left and z up, with the origin on the ground
// directly below the camera pivot.
package projection

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/units"
)

// Mount is the absolute placement of one camera in the robot frame.
type Mount struct {
	// Position is the centre of the camera.
	Position r3.Vector
	// Tilt is the angle of the optical axis below the horizon.
	Tilt units.Degrees
	// Yaw is the direction of the optical axis. Positive values are to the left.
	Yaw  units.Degrees
	VFov units.Degrees
	HFov units.Degrees
}

// NewMount places the camera at index of pivot in the robot frame. The camera's mount point is pitched
// about the pivot's lateral axis, then turned about the pivot's vertical axis and lifted by the pivot height.
// It panics if index does not address a camera of pivot.
func NewMount(pivot camera.CameraPivot, index int) Mount {
	cam := pivot.Camera(index)
	pitch := pivot.Pitch.Radians()
	yaw := pivot.Yaw.Radians()
	offset, height := float64(cam.CenterOffset), float64(cam.Height)

	forward := offset*math.Cos(pitch) + height*math.Sin(pitch)
	up := height*math.Cos(pitch) - offset*math.Sin(pitch)
	return Mount{
		Position: r3.Vector{
			X: forward * math.Cos(yaw),
			Y: forward * math.Sin(yaw),
			Z: float64(pivot.Height) + up,
		},
		Tilt: pivot.Pitch + cam.VDirection,
		Yaw:  pivot.Yaw,
		VFov: cam.VFov,
		HFov: cam.HFov,
	}
}

// Height is the height of the camera above the ground.
func (m Mount) Height() units.Centimetres {
	return units.Centimetres(m.Position.Z)
}

// Angles returns the direction of the ray through pct: its depression below the horizon and its
// bearing. Both are interpolated linearly across the fields of view.
func (m Mount) Angles(pct imagecoord.PercentCoordinate) (depression, bearing units.Degrees) {
	depression = m.Tilt - units.Degrees(pct.Y)*m.VFov/2
	bearing = m.Yaw - units.Degrees(pct.X)*m.HFov/2
	return depression, bearing
}

// Ray returns the unit direction of the ray through pct.
func (m Mount) Ray(pct imagecoord.PercentCoordinate) r3.Vector {
	depression, bearing := m.Angles(pct)
	dep, brg := depression.Radians(), bearing.Radians()
	return r3.Vector{
		X: math.Cos(dep) * math.Cos(brg),
		Y: math.Cos(dep) * math.Sin(brg),
		Z: -math.Sin(dep),
	}
}

// OnGround reports whether the ray through pct reaches the ground, i.e. points below the horizon
// from a camera that is not itself below the ground.
func (m Mount) OnGround(pct imagecoord.PercentCoordinate) bool {
	return onGround(m.Position, m.Ray(pct))
}

func onGround(origin, ray r3.Vector) bool {
	return origin.Z >= 0 && ray.Z < 0
}

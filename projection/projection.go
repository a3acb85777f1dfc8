package projection

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/units"
	"github.com/mipalgu/Coordinates/utils"
)

// ErrNotOnGround is returned when the ray through an image point never reaches the ground.
var ErrNotOnGround = errors.New("ray does not intersect the ground")

// MaxDistance is the distance reported by the unsafe conversions for rays that never reach the ground.
const MaxDistance units.Centimetres = math.MaxFloat64

// OutOfFrame is the percentage reported along an axis with a zero field of view for any target off that axis.
const OutOfFrame units.Percent = 2

// Intersect follows the ray through pct to the ground and returns where it lands relative to the robot.
// ErrNotOnGround is returned if the ray points at or above the horizon.
func (m Mount) Intersect(pct imagecoord.PercentCoordinate) (field.RelativeCoordinate, error) {
	ray := m.Ray(pct)
	if !onGround(m.Position, ray) {
		depression, _ := m.Angles(pct)
		return field.RelativeCoordinate{}, errors.Wrapf(ErrNotOnGround,
			"%v is %.2f° below the horizon from %.2fcm", pct, float64(depression), m.Position.Z)
	}
	return m.hit(ray), nil
}

// UnsafeIntersect is Intersect without the feasibility check: rays that never reach the ground
// are reported at MaxDistance in the direction of the ray.
func (m Mount) UnsafeIntersect(pct imagecoord.PercentCoordinate) field.RelativeCoordinate {
	ray := m.Ray(pct)
	if !onGround(m.Position, ray) {
		_, bearing := m.Angles(pct)
		return field.NewRelativeCoordinate(bearing.Normalized(), MaxDistance)
	}
	return m.hit(ray)
}

func (m Mount) hit(ray r3.Vector) field.RelativeCoordinate {
	t := m.Position.Z / -ray.Z
	ground := m.Position.Add(ray.Mul(t))
	return field.NewCartesianCoordinate(units.Centimetres(ground.X), units.Centimetres(ground.Y)).RelativeCoordinate()
}

// Project returns where a target on the ground appears in the image. The result is not bounds checked;
// a target the camera can not see lies outside of [-1, 1] on at least one axis.
// A target directly below the camera is seen straight down.
func (m Mount) Project(rel field.RelativeCoordinate) imagecoord.PercentCoordinate {
	target := rel.Vector()
	v := r3.Vector{X: target.X, Y: target.Y}.Sub(m.Position)
	horizontal := math.Hypot(v.X, v.Y)

	depression := units.FromRadians(math.Atan2(-v.Z, horizontal))
	bearing := units.FromRadians(math.Atan2(v.Y, v.X))
	return imagecoord.PercentCoordinate{
		X: axisPercent((m.Yaw - bearing).Normalized(), m.HFov),
		Y: axisPercent(m.Tilt-depression, m.VFov),
	}
}

// CanSee reports whether rel projects into the image.
func (m Mount) CanSee(rel field.RelativeCoordinate) bool {
	return m.Project(rel).InBounds()
}

// axisPercent normalizes an angular offset from the optical axis by half the field of view.
func axisPercent(offset, fov units.Degrees) units.Percent {
	if fov == 0 {
		switch {
		case utils.Float64AlmostEqual(float64(offset), 0, utils.DefaultEpsilon):
			return 0
		case offset > 0:
			return OutOfFrame
		default:
			return -OutOfFrame
		}
	}
	return units.Percent(offset / (fov / 2))
}

// PercentToRelative returns where the ray through pct from the camera at index of pivot lands on the ground.
func PercentToRelative(pct imagecoord.PercentCoordinate, pivot camera.CameraPivot, index int) (field.RelativeCoordinate, error) {
	return NewMount(pivot, index).Intersect(pct)
}

// UnsafePercentToRelative is PercentToRelative reporting MaxDistance instead of failing.
func UnsafePercentToRelative(pct imagecoord.PercentCoordinate, pivot camera.CameraPivot, index int) field.RelativeCoordinate {
	return NewMount(pivot, index).UnsafeIntersect(pct)
}

// RelativeToPercent returns where rel appears in the image of the camera at index of pivot, without bounds checks.
func RelativeToPercent(rel field.RelativeCoordinate, pivot camera.CameraPivot, index int) imagecoord.PercentCoordinate {
	return NewMount(pivot, index).Project(rel)
}

// ObjectOnGround reports whether PercentToRelative succeeds for pct.
func ObjectOnGround(pct imagecoord.PercentCoordinate, pivot camera.CameraPivot, index int) bool {
	return NewMount(pivot, index).OnGround(pct)
}

// CanSeeObject reports whether the camera at index of pivot can see rel.
func CanSeeObject(rel field.RelativeCoordinate, pivot camera.CameraPivot, index int) bool {
	return NewMount(pivot, index).CanSee(rel)
}

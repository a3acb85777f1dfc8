package projection

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/units"
)

var lowCamera = camera.Camera{
	Height:     1.774,
	VDirection: 39.7,
	VFov:       47.64,
	HFov:       60.97,
}

func lowPivot() camera.CameraPivot {
	return camera.NewCameraPivot(0, 0, 34.2, lowCamera)
}

func TestIntersect(t *testing.T) {
	pixel := imagecoord.NewPixelCoordinate(-50, -326, imagecoord.NewResolution(1920, 1080))
	rel, err := PercentToRelative(pixel.PercentCoordinate(), lowPivot(), 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, 2, 1)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, 26, 1)
}

func TestIntersectCentre(t *testing.T) {
	pivot := camera.NewCameraPivot(0, 0, 40, camera.Camera{Height: 10, VDirection: 45, VFov: 40, HFov: 60})
	rel, err := PercentToRelative(imagecoord.NewPercentCoordinate(0, 0), pivot, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, 0)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, 50)

	// The right edge of the image is half the horizontal field of view to the right.
	rel, err = PercentToRelative(imagecoord.NewPercentCoordinate(1, 0), pivot, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, -30)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, 50)

	// The top edge raises the ray by half the vertical field of view.
	rel, err = PercentToRelative(imagecoord.NewPercentCoordinate(0, 1), pivot, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, 50/math.Tan(25*math.Pi/180))
}

func TestIntersectPivotOrientation(t *testing.T) {
	cam := camera.Camera{Height: 10, CenterOffset: 5, VDirection: 0, VFov: 40, HFov: 60}
	pivot := camera.NewCameraPivot(90, 90, 50, cam)
	mount := NewMount(pivot, 0)
	// Pitched straight down the camera hangs in front of the pivot, then turns to the left.
	test.That(t, mount.Position.X, test.ShouldAlmostEqual, 0)
	test.That(t, mount.Position.Y, test.ShouldAlmostEqual, 10)
	test.That(t, mount.Position.Z, test.ShouldAlmostEqual, 45)
	test.That(t, float64(mount.Height()), test.ShouldAlmostEqual, 45)
	test.That(t, float64(mount.Tilt), test.ShouldAlmostEqual, 90)

	rel, err := mount.Intersect(imagecoord.NewPercentCoordinate(0, 0))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, 90)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, 10)

	rel, err = NewMount(pivot.WithOrientation(45, -30), 0).Intersect(imagecoord.NewPercentCoordinate(0, 0))
	test.That(t, err, test.ShouldBeNil)
	forward := 5*math.Cos(math.Pi/4) + 10*math.Sin(math.Pi/4)
	height := 50 + 10*math.Cos(math.Pi/4) - 5*math.Sin(math.Pi/4)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, -30)
	test.That(t, float64(rel.Distance), test.ShouldAlmostEqual, forward+height)
}

func TestNotOnGround(t *testing.T) {
	pivot := camera.NAOV5Head()
	top := imagecoord.NewPercentCoordinate(0, 1)
	test.That(t, ObjectOnGround(top, pivot, camera.NAOV5TopCameraIndex), test.ShouldBeFalse)

	_, err := PercentToRelative(top, pivot, camera.NAOV5TopCameraIndex)
	test.That(t, err, test.ShouldWrap, ErrNotOnGround)

	rel := UnsafePercentToRelative(imagecoord.NewPercentCoordinate(0.5, 1), pivot, camera.NAOV5TopCameraIndex)
	test.That(t, rel.Distance, test.ShouldEqual, MaxDistance)
	test.That(t, float64(rel.Direction), test.ShouldAlmostEqual, -0.5*60.97/2)

	t.Run("horizon", func(t *testing.T) {
		level := camera.NewCameraPivot(0, 0, 40, camera.Camera{VDirection: 0, VFov: 40, HFov: 60})
		centre := imagecoord.NewPercentCoordinate(0, 0)
		test.That(t, ObjectOnGround(centre, level, 0), test.ShouldBeFalse)
		_, err := PercentToRelative(centre, level, 0)
		test.That(t, err, test.ShouldWrap, ErrNotOnGround)
		test.That(t, ObjectOnGround(imagecoord.NewPercentCoordinate(0, -0.01), level, 0), test.ShouldBeTrue)
	})

	t.Run("underground camera", func(t *testing.T) {
		buried := camera.NewCameraPivot(0, 0, -5, camera.Camera{VDirection: 45, VFov: 40, HFov: 60})
		test.That(t, ObjectOnGround(imagecoord.NewPercentCoordinate(0, 0), buried, 0), test.ShouldBeFalse)
	})
}

func TestFeasibilityConsistency(t *testing.T) {
	pivots := []camera.CameraPivot{
		camera.NAOV5Head(),
		camera.NAOV5Head().WithOrientation(-20, 35),
		camera.NAOV5Head().WithOrientation(25, -60),
		lowPivot(),
	}
	for _, pivot := range pivots {
		for index := 0; index < pivot.NumCameras(); index++ {
			for x := -1.2; x <= 1.2; x += 0.1 {
				for y := -1.2; y <= 1.2; y += 0.1 {
					pct := imagecoord.NewPercentCoordinate(units.Percent(x), units.Percent(y))
					_, err := PercentToRelative(pct, pivot, index)
					test.That(t, ObjectOnGround(pct, pivot, index), test.ShouldEqual, err == nil)
				}
			}
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	for _, pivot := range []camera.CameraPivot{
		camera.NAOV5Head(),
		camera.NAOV5Head().WithOrientation(15, 40),
		camera.NAOV5Head().WithOrientation(-10, -75),
		lowPivot(),
	} {
		for index := 0; index < pivot.NumCameras(); index++ {
			mount := NewMount(pivot, index)
			for x := -1.0; x <= 1.0; x += 0.25 {
				for y := -1.0; y <= 1.0; y += 0.25 {
					pct := imagecoord.NewPercentCoordinate(units.Percent(x), units.Percent(y))
					depression, _ := mount.Angles(pct)
					if depression <= 1 || depression >= 89 {
						continue
					}
					rel, err := mount.Intersect(pct)
					test.That(t, err, test.ShouldBeNil)
					back := mount.Project(rel)
					test.That(t, float64(back.X), test.ShouldAlmostEqual, x, 1e-6)
					test.That(t, float64(back.Y), test.ShouldAlmostEqual, y, 1e-6)
					if math.Abs(x) < 1 && math.Abs(y) < 1 {
						test.That(t, mount.CanSee(rel), test.ShouldBeTrue)
					}
				}
			}
		}
	}
}

func TestProject(t *testing.T) {
	pivot := camera.NewCameraPivot(0, 0, 40, camera.Camera{Height: 10, VDirection: 45, VFov: 40, HFov: 60})
	pct := RelativeToPercent(field.NewRelativeCoordinate(0, 50), pivot, 0)
	test.That(t, float64(pct.X), test.ShouldAlmostEqual, 0)
	test.That(t, float64(pct.Y), test.ShouldAlmostEqual, 0)
	test.That(t, CanSeeObject(field.NewRelativeCoordinate(0, 50), pivot, 0), test.ShouldBeTrue)

	t.Run("behind", func(t *testing.T) {
		rel := field.NewRelativeCoordinate(180, 50)
		test.That(t, CanSeeObject(rel, pivot, 0), test.ShouldBeFalse)
		test.That(t, RelativeToPercent(rel, pivot, 0).InBounds(), test.ShouldBeFalse)
	})

	t.Run("too far to the side", func(t *testing.T) {
		pct := RelativeToPercent(field.NewRelativeCoordinate(45, 50), pivot, 0)
		test.That(t, float64(pct.X), test.ShouldAlmostEqual, -1.5)
		test.That(t, CanSeeObject(field.NewRelativeCoordinate(45, 50), pivot, 0), test.ShouldBeFalse)
	})

	t.Run("directly below", func(t *testing.T) {
		pct := RelativeToPercent(field.NewRelativeCoordinate(0, 0), pivot, 0)
		test.That(t, float64(pct.X), test.ShouldAlmostEqual, 0)
		test.That(t, float64(pct.Y), test.ShouldAlmostEqual, -45.0/20.0)
	})
}

func TestZeroFov(t *testing.T) {
	pivot := camera.NewCameraPivot(0, 0, 40, camera.Camera{Height: 10, VDirection: 45})
	pct := RelativeToPercent(field.NewRelativeCoordinate(0, 50), pivot, 0)
	test.That(t, pct, test.ShouldResemble, imagecoord.NewPercentCoordinate(0, 0))

	pct = RelativeToPercent(field.NewRelativeCoordinate(10, 80), pivot, 0)
	test.That(t, pct.X, test.ShouldEqual, -OutOfFrame)
	test.That(t, pct.Y, test.ShouldEqual, OutOfFrame)
}

func TestCameraIndexPanics(t *testing.T) {
	pivot := lowPivot()
	test.That(t, func() { NewMount(pivot, 1) }, test.ShouldPanic)
	test.That(t, func() { ObjectOnGround(imagecoord.PercentCoordinate{}, pivot, 3) }, test.ShouldPanic)
}

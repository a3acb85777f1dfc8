package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/logging"
	"github.com/mipalgu/Coordinates/units"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(""), test.ShouldBeNil)
	test.That(t, cfg.Camera, test.ShouldEqual, camera.NAOV5BottomCameraIndex)
	test.That(t, cfg.Pivot, test.ShouldResemble, camera.NAOV5Head())
	test.That(t, cfg.Resolution, test.ShouldResemble, imagecoord.NewResolution(1920, 1080))
	test.That(t, cfg.Tolerance, test.ShouldEqual, DefaultTolerance)
	test.That(t, cfg.Level(), test.ShouldEqual, logging.INFO)

	conv := cfg.NewConverter()
	test.That(t, conv.CameraIndex(), test.ShouldEqual, camera.NAOV5BottomCameraIndex)
	test.That(t, conv.Tolerance(), test.ShouldEqual, DefaultTolerance)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Pivot:      camera.NewCameraPivot(0, 0, 40, camera.Camera{VFov: 200, HFov: 60}),
		Camera:     3,
		Resolution: imagecoord.NewResolution(0, 480),
		Tolerance:  -1,
		LogLevel:   "loud",
	}
	err := cfg.Validate("vision")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "vision.pivot.cameras.0: v_fov")
	test.That(t, err.Error(), test.ShouldContainSubstring, "vision.camera_index: camera index 3")
	test.That(t, err.Error(), test.ShouldContainSubstring, "vision.resolution: width must be positive")
	test.That(t, err.Error(), test.ShouldContainSubstring, "vision.tolerance: must not be negative")
	test.That(t, err, test.ShouldWrap, logging.ErrInvalidLevel)
	test.That(t, cfg.Level(), test.ShouldEqual, logging.INFO)

	cfg.LogLevel = "debug"
	test.That(t, cfg.Level(), test.ShouldEqual, logging.DEBUG)
}

func TestFromReader(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)

	_, err := FromReader("somepath", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode")

	_, err = FromReader("somepath", strings.NewReader(`{"tolerance": "lots"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unmarshal")

	cfg, err := FromReader("somepath", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldBeNil)
	expected := Default()
	expected.ConfigFilePath = "somepath"
	test.That(t, cfg, test.ShouldResemble, expected)
	test.That(t, logs.FilterMessage("loaded config").Len(), test.ShouldEqual, 1)

	cfg, err = FromReader("somepath", strings.NewReader(`{"camera_index": 0, "tolerance": 0.25, "log_level": "warn"}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Camera, test.ShouldEqual, camera.NAOV5TopCameraIndex)
	test.That(t, cfg.Tolerance, test.ShouldEqual, units.Percent(0.25))
	test.That(t, cfg.Level(), test.ShouldEqual, logging.WARN)
	test.That(t, cfg.Pivot, test.ShouldResemble, camera.NAOV5Head())

	t.Run("explicit pivot", func(t *testing.T) {
		cfg, err := FromReader("somepath", strings.NewReader(`{
			"pivot": {"pitch": 10, "height": 34.2, "cameras": [{"height": 1.774, "v_direction": 39.7, "v_fov": 47.64, "h_fov": 60.97}]},
			"resolution": {"width": 640, "height": 480}
		}`), logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cfg.Camera, test.ShouldEqual, 0)
		test.That(t, cfg.Resolution, test.ShouldResemble, imagecoord.NewResolution(640, 480))
		test.That(t, cfg.Pivot, test.ShouldResemble, camera.NewCameraPivot(10, 0, 34.2, camera.Camera{
			Height:     1.774,
			VDirection: 39.7,
			VFov:       47.64,
			HFov:       60.97,
		}))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := FromReader("somepath", strings.NewReader(`{"pivot": {"height": 40}}`), logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "pivot: at least one camera is required")

		_, err = FromReader("somepath", strings.NewReader(`{"camera_index": 2}`), logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `invalid config "somepath"`)
		test.That(t, err.Error(), test.ShouldContainSubstring, "camera_index")
	})
}

func TestRead(t *testing.T) {
	logger := logging.NewTestLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "vision.json")
	test.That(t, os.WriteFile(path, []byte(`{
		"camera_index": ${COORDCONV_TEST_CAMERA},
		"resolution": {"width": ${COORDCONV_TEST_WIDTH:-320}, "height": 240}
	}`), 0o600), test.ShouldBeNil)

	t.Setenv("COORDCONV_TEST_CAMERA", "0")
	cfg, err := Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, cfg.Camera, test.ShouldEqual, 0)
	test.That(t, cfg.Resolution, test.ShouldResemble, imagecoord.NewResolution(320, 240))

	t.Setenv("COORDCONV_TEST_WIDTH", "1280")
	cfg, err = Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Resolution.Width, test.ShouldEqual, units.Pixels(1280))

	_, err = Read(filepath.Join(dir, "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}

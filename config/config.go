// Package config reads the description of a robot's cameras from JSON.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mipalgu/Coordinates/camera"
	"github.com/mipalgu/Coordinates/convert"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/logging"
	"github.com/mipalgu/Coordinates/units"
)

// DefaultTolerance is the clamping tolerance used when a config leaves it out.
const DefaultTolerance units.Percent = 0.1

// Config selects one camera of a pivot and describes the images it produces.
type Config struct {
	Pivot      camera.CameraPivot    `json:"pivot"`
	Camera     int                   `json:"camera_index"`
	Resolution imagecoord.Resolution `json:"resolution"`
	// Tolerance is the fraction of the image a target may lie outside of the frame and still be
	// clamped onto its edge.
	Tolerance units.Percent `json:"tolerance"`
	LogLevel  string        `json:"log_level,omitempty"`

	ConfigFilePath string `json:"-"`
}

// Default returns the bottom camera of a NAO V5 head producing 1920x1080 images.
func Default() *Config {
	return &Config{
		Pivot:      camera.NAOV5Head(),
		Camera:     camera.NAOV5BottomCameraIndex,
		Resolution: imagecoord.NewResolution(1920, 1080),
		Tolerance:  DefaultTolerance,
	}
}

// Validate returns every problem with the config, each prefixed by its JSON path.
func (c *Config) Validate(path string) error {
	var errs error
	if err := c.Pivot.Validate(join(path, "pivot")); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Camera < 0 || c.Camera >= c.Pivot.NumCameras() {
		errs = multierr.Append(errs, errors.Errorf(
			"%s: camera index %d does not address one of %d cameras", join(path, "camera_index"), c.Camera, c.Pivot.NumCameras()))
	}
	if err := c.Resolution.Validate(join(path, "resolution")); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Tolerance < 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: must not be negative, got %v", join(path, "tolerance"), float64(c.Tolerance)))
	}
	if c.LogLevel != "" {
		if _, err := logging.LevelFromString(c.LogLevel); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%s", join(path, "log_level")))
		}
	}
	return errs
}

// Level returns the configured log level, defaulting to INFO.
func (c *Config) Level() logging.Level {
	if c.LogLevel == "" {
		return logging.INFO
	}
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// NewConverter binds the conversions to the configured camera. The config must be valid.
func (c *Config) NewConverter() convert.Converter {
	return convert.NewConverter(c.Pivot, c.Camera, c.Resolution, c.Tolerance)
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return fmt.Sprintf("%s.%s", path, field)
}

package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.viam.com/utils"

	"github.com/mipalgu/Coordinates/config"
	"github.com/mipalgu/Coordinates/convert"
	"github.com/mipalgu/Coordinates/field"
	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/logging"
	"github.com/mipalgu/Coordinates/units"
)

// coordClient holds the converter for the configured camera of one invocation.
type coordClient struct {
	c      *cli.Context
	conf   *config.Config
	conv   convert.Converter
	logger logging.Logger
}

func newCoordClient(c *cli.Context) (*coordClient, error) {
	logger := logging.NewBlankLogger("coordconv")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(logging.INFO)
	if c.Bool(flagDebug) {
		logger.SetLevel(logging.DEBUG)
	}

	conf := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		conf, err = config.Read(path, logger.Sublogger("config"))
		if err != nil {
			return nil, errors.Wrap(err, "could not read config")
		}
		if !c.Bool(flagDebug) {
			logger.SetLevel(conf.Level())
		}
	}
	logger.Debugw("using camera",
		"index", conf.Camera,
		"camera", conf.Pivot.Camera(conf.Camera).String(),
		"resolution", conf.Resolution.String(),
	)

	return &coordClient{
		c:      c,
		conf:   conf,
		conv:   conf.NewConverter(),
		logger: logger,
	}, nil
}

func (client *coordClient) out() io.Writer {
	return client.c.App.Writer
}

func (client *coordClient) pixel() imagecoord.CameraCoordinate {
	return imagecoord.NewCameraCoordinate(
		units.Pixels(client.c.Int(flagX)), units.Pixels(client.c.Int(flagY)), client.conf.Resolution)
}

func (client *coordClient) relative() field.RelativeCoordinate {
	return field.NewRelativeCoordinate(
		units.Degrees(client.c.Float64(flagDir)), units.Centimetres(client.c.Float64(flagDistance)))
}

func (client *coordClient) robot() field.FieldCoordinate {
	return field.NewFieldCoordinate(
		field.NewCartesianCoordinate(units.Centimetres(client.c.Float64(flagRobotX)), units.Centimetres(client.c.Float64(flagRobotY))),
		units.Degrees(client.c.Float64(flagHeading)),
	)
}

// CameraToRelativeAction is the corresponding Action for 'camera-to-relative'.
func CameraToRelativeAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.cameraToRelativeAction()
}

func (client *coordClient) cameraToRelativeAction() error {
	pixel := client.pixel()
	if client.c.Bool(flagUnsafe) {
		printf(client.out(), "%v", client.conv.UnsafeImageToRelative(pixel))
		return nil
	}
	rel, err := client.conv.ImageToRelative(pixel)
	if err != nil {
		client.logger.Warnw("conversion failed", "pixel", pixel.String(), "error", err)
		return errors.Wrapf(err, "could not convert %v", pixel)
	}
	printf(client.out(), "%v", rel)
	return nil
}

// RelativeToCameraAction is the corresponding Action for 'relative-to-camera'.
func RelativeToCameraAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.relativeToCameraAction()
}

func (client *coordClient) relativeToCameraAction() error {
	rel := client.relative()
	if client.c.Bool(flagUnsafe) {
		printf(client.out(), "%v", client.conv.UnsafeRelativeToCamera(rel))
		return nil
	}
	pixel, err := client.conv.RelativeToCamera(rel)
	if err != nil {
		client.logger.Warnw("conversion failed", "relative", rel.String(), "tolerance", float64(client.conf.Tolerance), "error", err)
		return errors.Wrapf(err, "could not convert %v", rel)
	}
	printf(client.out(), "%v", pixel)
	return nil
}

// CameraToFieldAction is the corresponding Action for 'camera-to-field'.
func CameraToFieldAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.cameraToFieldAction()
}

func (client *coordClient) cameraToFieldAction() error {
	pixel, robot := client.pixel(), client.robot()
	target, err := client.conv.ImageToCartesian(pixel, robot)
	if err != nil {
		client.logger.Warnw("conversion failed", "pixel", pixel.String(), "robot", robot.String(), "error", err)
		return errors.Wrapf(err, "could not convert %v", pixel)
	}
	printf(client.out(), "%v", target)
	return nil
}

// FieldToCameraAction is the corresponding Action for 'field-to-camera'.
func FieldToCameraAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.fieldToCameraAction()
}

func (client *coordClient) fieldToCameraAction() error {
	robot := client.robot()
	target := field.NewCartesianCoordinate(
		units.Centimetres(client.c.Float64(flagTargetX)), units.Centimetres(client.c.Float64(flagTargetY)))
	pixel, err := client.conv.CartesianToCamera(target, robot)
	if err != nil {
		client.logger.Warnw("conversion failed", "target", target.String(), "robot", robot.String(), "error", err)
		return errors.Wrapf(err, "could not convert %v", target)
	}
	printf(client.out(), "%v", pixel)
	return nil
}

// CanSeeAction is the corresponding Action for 'can-see'.
func CanSeeAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.canSeeAction()
}

func (client *coordClient) canSeeAction() error {
	rel := client.relative()
	printf(client.out(), "%t\t%v", client.conv.CanSeeObject(rel), client.conv.Mount().Project(rel))
	return nil
}

// printf prints a message with a newline to the given writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

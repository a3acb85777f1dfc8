// Package cli contains the coordconv command line interface.
package cli

import (
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	flagConfig   = "config"
	flagDebug    = "debug"
	flagX        = "x"
	flagY        = "y"
	flagUnsafe   = "unsafe"
	flagDir      = "direction"
	flagDistance = "distance"
	flagRobotX   = "robot-x"
	flagRobotY   = "robot-y"
	flagHeading  = "heading"
	flagTargetX  = "target-x"
	flagTargetY  = "target-y"
	flagColumns  = "columns"
	flagRows     = "rows"
)

func pixelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     flagX,
			Usage:    "camera pixel column, 0 is the left edge",
			Required: true,
		},
		&cli.IntFlag{
			Name:     flagY,
			Usage:    "camera pixel row, 0 is the top edge",
			Required: true,
		},
	}
}

func relativeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:     flagDir,
			Usage:    "bearing of the target in degrees, positive to the left",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     flagDistance,
			Usage:    "distance to the target in centimetres",
			Required: true,
		},
	}
}

func robotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  flagRobotX,
			Usage: "x position of the robot on the field in centimetres",
		},
		&cli.Float64Flag{
			Name:  flagRobotY,
			Usage: "y position of the robot on the field in centimetres",
		},
		&cli.Float64Flag{
			Name:  flagHeading,
			Usage: "heading of the robot in degrees, 0 along the x axis",
		},
	}
}

func unsafeFlag(usage string) cli.Flag {
	return &cli.BoolFlag{
		Name:  flagUnsafe,
		Usage: usage,
	}
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	return lo.Flatten(groups)
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "coordconv",
		Usage:           "convert between image and field coordinates of a robot's camera",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load the camera configuration from `FILE` instead of using a NAO V5",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "camera-to-relative",
				Usage:  "find where a camera pixel lies on the ground relative to the robot",
				Flags:  flags(pixelFlags(), []cli.Flag{unsafeFlag("report pixels above the horizon as infinitely far away")}),
				Action: CameraToRelativeAction,
			},
			{
				Name:   "relative-to-camera",
				Usage:  "find the camera pixel a point on the ground relative to the robot appears at",
				Flags:  flags(relativeFlags(), []cli.Flag{unsafeFlag("print pixels outside of the image instead of failing")}),
				Action: RelativeToCameraAction,
			},
			{
				Name:   "camera-to-field",
				Usage:  "find where a camera pixel lies on the field",
				Flags:  flags(pixelFlags(), robotFlags()),
				Action: CameraToFieldAction,
			},
			{
				Name:  "field-to-camera",
				Usage: "find the camera pixel a point on the field appears at",
				Flags: flags([]cli.Flag{
					&cli.Float64Flag{
						Name:     flagTargetX,
						Usage:    "x position of the target on the field in centimetres",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     flagTargetY,
						Usage:    "y position of the target on the field in centimetres",
						Required: true,
					},
				}, robotFlags()),
				Action: FieldToCameraAction,
			},
			{
				Name:   "can-see",
				Usage:  "report whether a point on the ground relative to the robot is in the image",
				Flags:  relativeFlags(),
				Action: CanSeeAction,
			},
			{
				Name:  "table",
				Usage: "print where a grid of camera pixels lies on the ground",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  flagColumns,
						Usage: "number of sampled pixel columns",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  flagRows,
						Usage: "number of sampled pixel rows",
						Value: 5,
					},
				},
				Action: TableAction,
			},
		},
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

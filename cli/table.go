package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.viam.com/utils"

	"github.com/mipalgu/Coordinates/imagecoord"
	"github.com/mipalgu/Coordinates/units"
)

// TableAction is the corresponding Action for 'table'.
func TableAction(c *cli.Context) error {
	client, err := newCoordClient(c)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(client.logger.Sync)
	return client.tableAction()
}

func (client *coordClient) tableAction() error {
	columns, rows := client.c.Int(flagColumns), client.c.Int(flagRows)
	if columns < 1 || rows < 1 {
		return errors.Errorf("columns and rows must be positive, got %d and %d", columns, rows)
	}
	printf(client.out(), "%s", client.groundTable(columns, rows))
	return nil
}

// groundTable renders where an evenly spaced grid of camera pixels lies on the ground, one row of
// the table per sampled pixel row. Pixels that never reach the ground are marked with "-".
func (client *coordClient) groundTable(columns, rows int) string {
	res := client.conf.Resolution
	xs := samples(res.Width, columns)
	ys := samples(res.Height, rows)

	t := table.NewWriter()
	t.AppendHeader(append(table.Row{"y \\ x"}, lo.ToAnySlice(xs)...))

	for _, y := range ys {
		row := table.Row{y}
		for _, x := range xs {
			pixel := imagecoord.NewCameraCoordinate(x, y, res)
			rel, err := client.conv.ImageToRelative(pixel)
			if err != nil {
				client.logger.Debugw("pixel is not on the ground", "pixel", pixel.String())
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.1f° %.1fcm", float64(rel.Direction), float64(rel.Distance)))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// samples returns n pixels evenly spread over [0, extent-1], or the centre when n is 1.
func samples(extent units.Pixels, n int) []units.Pixels {
	if n == 1 || extent <= 1 {
		return []units.Pixels{extent / 2}
	}
	ret := make([]units.Pixels, n)
	for i := range ret {
		ret[i] = units.Pixels(i * int(extent-1) / (n - 1))
	}
	return ret
}

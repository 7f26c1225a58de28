package graphical

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var regionColor = color.NRGBA{R: 31, G: 119, B: 180, A: 64}

// Plot draws the feasible region and marks the best vertex. The format is
// taken from the extension of path (.png, .svg, .pdf, ...).
func Plot(res *Result, path string) error {
	p, err := newPlot(res)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(4*vg.Inch, 4*vg.Inch, path), "saving %s", path)
}

func newPlot(res *Result) (*plot.Plot, error) {
	if res == nil || len(res.Vertices) == 0 {
		return nil, ErrNoFeasibleRegion
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: (%.2f, %.2f), z=%.2f", res.Sense, res.Best.X, res.Best.Y, res.BestValue)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(res.Vertices))
	for i, v := range res.Vertices {
		xys[i].X, xys[i].Y = v.X, v.Y
	}
	region, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, errors.Wrap(err, "feasible region")
	}
	region.Color = regionColor

	best, err := plotter.NewScatter(plotter.XYs{{X: res.Best.X, Y: res.Best.Y}})
	if err != nil {
		return nil, errors.Wrap(err, "optimum marker")
	}
	best.GlyphStyle.Shape = draw.PyramidGlyph{}
	best.GlyphStyle.Radius = vg.Points(6)
	best.GlyphStyle.Color = color.Black

	p.Add(region, best)
	p.Legend.Add("feasible region", region)
	p.Legend.Add("optimum", best)
	return p, nil
}

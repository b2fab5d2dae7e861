// Package visualize renders datasets and fitted regression lines as charts.
//
// Two backends are supported: gonum/plot for static PNG output and
// go-echarts for interactive HTML pages. Both take the same inputs, a
// dataset of observations and a fitted LinearRegression.
package visualize

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/linear"
	linregErrors "github.com/ezoic/linreg/pkg/errors"
)

// PlotConfig controls the labels on a rendered chart.
type PlotConfig struct {
	Title  string
	XLabel string
	YLabel string
}

// DefaultPlotConfig returns labels suitable for a generic regression chart.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Title:  "Linear Regression Fit",
		XLabel: "x",
		YLabel: "y",
	}
}

// ScatterWithFit builds a gonum plot showing the observations as a scatter
// and the fitted line drawn across the dataset's x range.
func ScatterWithFit(ds *dataset.Dataset, lr *linear.LinearRegression, cfg PlotConfig) (*plot.Plot, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, linregErrors.Wrap(linregErrors.ErrEmptyData, "visualize: nothing to plot")
	}
	if !lr.IsFitted() {
		return nil, linregErrors.NewNotFittedError("LinearRegression", "ScatterWithFit")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	scatter, err := scatterPoints(ds)
	if err != nil {
		return nil, linregErrors.Wrap(err, "visualize: failed to build scatter")
	}
	scatter.Color = plotter.DefaultLineStyle.Color
	p.Add(scatter)
	p.Legend.Add("Data points", scatter)

	line, err := regressionLine(ds, lr)
	if err != nil {
		return nil, linregErrors.Wrap(err, "visualize: failed to build regression line")
	}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Fitted line", line)

	return p, nil
}

// SavePNG writes the plot to path as an 8x6 inch PNG.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return linregErrors.Wrapf(err, "visualize: failed to save plot to %s", path)
	}
	return nil
}

func scatterPoints(ds *dataset.Dataset) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, ds.Len())
	for i := range ds.X {
		pts[i].X = ds.X[i]
		pts[i].Y = ds.Y[i]
	}
	return plotter.NewScatter(pts)
}

func regressionLine(ds *dataset.Dataset, lr *linear.LinearRegression) (*plotter.Line, error) {
	minX, maxX := ds.XRange()
	slope := lr.GetWeights()[0]
	intercept := lr.GetIntercept()

	pts := make(plotter.XYs, 2)
	pts[0].X = minX
	pts[0].Y = slope*minX + intercept
	pts[1].X = maxX
	pts[1].Y = slope*maxX + intercept

	return plotter.NewLine(pts)
}

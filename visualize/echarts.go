package visualize

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/linear"
	linregErrors "github.com/ezoic/linreg/pkg/errors"
)

// ScatterWithFitChart builds an echarts scatter of the observations with the
// fitted line overlaid, suitable for embedding in an HTML page.
func ScatterWithFitChart(ds *dataset.Dataset, lr *linear.LinearRegression, cfg PlotConfig) (*charts.Scatter, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, linregErrors.Wrap(linregErrors.ErrEmptyData, "visualize: nothing to chart")
	}
	if !lr.IsFitted() {
		return nil, linregErrors.NewNotFittedError("LinearRegression", "ScatterWithFitChart")
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: cfg.Title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: cfg.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YLabel, Type: "value"}),
	)

	scatterData := make([]opts.ScatterData, 0, ds.Len())
	for i := range ds.X {
		scatterData = append(scatterData, opts.ScatterData{
			Value:      []interface{}{ds.X[i], ds.Y[i]},
			SymbolSize: 6,
		})
	}
	scatter.AddSeries("Data points", scatterData)

	scatter.Overlap(fitLineChart(ds, lr))
	return scatter, nil
}

// WriteHTML renders one or more charts into a single HTML page on w.
func WriteHTML(w io.Writer, chs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chs...)
	if err := page.Render(w); err != nil {
		return linregErrors.Wrap(err, "visualize: failed to render HTML page")
	}
	return nil
}

func fitLineChart(ds *dataset.Dataset, lr *linear.LinearRegression) *charts.Line {
	minX, maxX := ds.XRange()
	slope := lr.GetWeights()[0]
	intercept := lr.GetIntercept()

	line := charts.NewLine()
	line.SetXAxis([]float64{minX, maxX}).
		AddSeries("Fitted line", []opts.LineData{
			{Value: []interface{}{minX, slope*minX + intercept}},
			{Value: []interface{}{maxX, slope*maxX + intercept}},
		})
	return line
}

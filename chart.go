package lulc

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var barColor = color.RGBA{R: 135, G: 206, B: 235, A: 255} // skyblue

// RenderChart draws the per-class area distribution as a bar chart PNG, one
// bar per stat in stat order, labeled with the class value.
func RenderChart(path string, stats []ClassStat) (err error) {
	if len(stats) == 0 {
		return ErrNoStats
	}
	values := make(plotter.Values, len(stats))
	labels := make([]string, len(stats))
	for i, s := range stats {
		values[i] = s.AreaKm2
		labels[i] = strconv.FormatInt(int64(s.Class), 10)
	}
	p := plot.New()
	p.Title.Text = "LULC Class Area Distribution"
	p.X.Label.Text = "LULC Class"
	p.Y.Label.Text = "Area (km²)"
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return
	}
	bars.LineStyle.Width = 0
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(labels...)
	err = p.Save(8*vg.Inch, 6*vg.Inch, path)
	return
}

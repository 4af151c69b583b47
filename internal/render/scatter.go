package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette colors cluster series in scatter plots. Labels beyond the
// palette wrap around.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
}

// Scatter plots the first two coordinates of each point and saves the
// result as a PNG. When labels is non-nil it must hold one cluster
// label per point; points are then colored per cluster with a legend.
func Scatter(points [][]float64, labels []int, title, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("no points to plot")
	}
	for i, p := range points {
		if len(p) < 2 {
			return fmt.Errorf("point %d has %d coordinates, need at least 2", i, len(p))
		}
	}
	if labels != nil && len(labels) != len(points) {
		return fmt.Errorf("label count %d does not match point count %d", len(labels), len(points))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "component 1"
	p.Y.Label.Text = "component 2"

	groups := groupByLabel(points, labels)
	for _, g := range groups {
		s, err := plotter.NewScatter(g.xys)
		if err != nil {
			return fmt.Errorf("failed to build scatter series: %w", err)
		}
		s.GlyphStyle.Color = palette[g.label%len(palette)]
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		if labels != nil {
			p.Legend.Add(fmt.Sprintf("cluster %d", g.label), s)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

type series struct {
	label int
	xys   plotter.XYs
}

func groupByLabel(points [][]float64, labels []int) []series {
	if labels == nil {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		return []series{{label: 0, xys: xys}}
	}

	maxLabel := 0
	for _, l := range labels {
		if l > maxLabel {
			maxLabel = l
		}
	}

	grouped := make([]plotter.XYs, maxLabel+1)
	for i, pt := range points {
		l := labels[i]
		grouped[l] = append(grouped[l], plotter.XY{X: pt[0], Y: pt[1]})
	}

	var out []series
	for l, xys := range grouped {
		if len(xys) == 0 {
			continue
		}
		out = append(out, series{label: l, xys: xys})
	}
	return out
}

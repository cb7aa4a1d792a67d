package report

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Point is one sample of a line chart.
type Point struct {
	X, Y float64
}

// ChartOptions sizes the chart viewBox. Zero fields take the defaults.
type ChartOptions struct {
	Width   float64
	Height  float64
	Padding float64
}

const (
	defaultChartWidth   = 320
	defaultChartHeight  = 120
	defaultChartPadding = 16
	chartColor          = "#2c7be5"
)

const emptyChart = `<svg viewBox="0 0 100 40" role="img" aria-label="Sem dados">` +
	`<text x="50" y="20" text-anchor="middle" font-size="10" fill="#666">Sem dados</text></svg>`

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = defaultChartWidth
	}
	if o.Height <= 0 {
		o.Height = defaultChartHeight
	}
	if o.Padding <= 0 {
		o.Padding = defaultChartPadding
	}
	return o
}

// SVGLineChart draws points as an SVG polyline with a marker per point.
// Points with a NaN or infinite coordinate are dropped; with nothing left
// the chart is a "Sem dados" placeholder. A single point, or a flat
// series, is pinned to the padding edge instead of dividing by zero.
func SVGLineChart(points []Point, opts ChartOptions) template.HTML {
	opts = opts.withDefaults()

	safe := make([]Point, 0, len(points))
	for _, p := range points {
		if finite(p.X) && finite(p.Y) {
			safe = append(safe, p)
		}
	}
	if len(safe) == 0 {
		return template.HTML(emptyChart)
	}

	minX, maxX := safe[0].X, safe[0].X
	minY, maxY := safe[0].Y, safe[0].Y
	for _, p := range safe[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	scaleX := func(v float64) float64 {
		if maxX == minX {
			return opts.Padding
		}
		return opts.Padding + (v-minX)/(maxX-minX)*(opts.Width-opts.Padding*2)
	}
	scaleY := func(v float64) float64 {
		if maxY == minY {
			return opts.Height - opts.Padding
		}
		return opts.Height - opts.Padding - (v-minY)/(maxY-minY)*(opts.Height-opts.Padding*2)
	}

	var path, circles strings.Builder
	for i, p := range safe {
		x, y := scaleX(p.X), scaleY(p.Y)
		if i > 0 {
			path.WriteByte(' ')
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&path, "%s%.2f %.2f", cmd, x, y)
		fmt.Fprintf(&circles, `<circle cx="%.2f" cy="%.2f" r="3" fill="%s" />`, x, y, chartColor)
	}

	return template.HTML(fmt.Sprintf(
		`<svg viewBox="0 0 %s %s" role="img" aria-label="Evolução">`+
			`<path d="%s" fill="none" stroke="%s" stroke-width="2" />%s</svg>`,
		trimFloat(opts.Width), trimFloat(opts.Height), path.String(), chartColor, circles.String(),
	))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

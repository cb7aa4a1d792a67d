// Package report renders the printable equipment report.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-medlux/models"
)

//go:embed report.html.tmpl
var reportTemplate string

// TimeLayout is how dates are printed in the report.
const TimeLayout = "02/01/2006 15:04"

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Format(TimeLayout)
	},
	"formatNumber": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}).Parse(reportTemplate))

// Report is everything printed for one piece of equipment. Measurements
// are expected in chronological order.
type Report struct {
	GeneratedAt  time.Time
	GeneratedBy  string
	Equipment    models.Equipment
	Criteria     []models.Criterion
	Measurements []models.Measurement
}

// EvolutionPoints returns the numeric RL readings of the report as chart
// points: x is the reading time in seconds, y the value. Readings that do
// not parse as numbers are skipped.
func (r Report) EvolutionPoints() []Point {
	points := make([]Point, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		v, ok := m.Payload.RLValue()
		if !ok {
			continue
		}
		points = append(points, Point{X: float64(m.DataHora.Unix()), Y: v})
	}
	return points
}

type view struct {
	Report
	Chart template.HTML
}

// RenderHTML writes r as a standalone HTML page to w.
func RenderHTML(w io.Writer, r Report) error {
	v := view{
		Report: r,
		Chart:  SVGLineChart(r.EvolutionPoints(), ChartOptions{Width: 320, Height: 140}),
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("error rendering report: %w", err)
	}
	return nil
}

package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrNoData = errors.New("no data to chart")

// DailyWindow is how many trailing days the daily chart shows.
const DailyWindow = 90

const (
	defaultWidth  = 1024
	defaultHeight = 420
)

var (
	colorPrimary = drawing.ColorFromHex("3B82F6")
	colorAccent  = drawing.ColorFromHex("10B981")
	colorFill    = drawing.ColorFromHex("3B82F6").WithAlpha(64)
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// ContentType is the MIME type for the format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Renderable is satisfied by chart.Chart and chart.BarChart.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Render draws c into w.
func Render(w io.Writer, c Renderable, f Format) error {
	return c.Render(f.provider(), w)
}

var printer = message.NewPrinter(language.English)

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return printer.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f%%", f)
	}
	return fmt.Sprint(v)
}

func timeSeries(name string, rows []dataset.Record, pick func(dataset.Record) float64, style chart.Style) chart.TimeSeries {
	xs := make([]time.Time, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.Date
		ys[i] = pick(r)
	}
	return chart.TimeSeries{Name: name, XValues: xs, YValues: ys, Style: style}
}

// pinFlatRange gives the y axis a unit range when every plotted value is
// equal; go-chart refuses to draw a zero-height range.
func pinFlatRange(ch *chart.Chart) *chart.Chart {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range ch.Series {
		ts, ok := s.(chart.TimeSeries)
		if !ok {
			continue
		}
		for _, v := range ts.YValues {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo == hi {
		ch.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: lo + 1}
	}
	return ch
}

func totals(r dataset.Record) float64 { return float64(r.TotalVaccinations) }

func daily(r dataset.Record) float64 { return float64(r.DailyVaccinations) }

func dateAxis() chart.XAxis {
	return chart.XAxis{Name: "DATE", ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02")}
}

// CountryTotals plots cumulative vaccinations of one country over time.
func CountryTotals(country string, rows []dataset.Record) (*chart.Chart, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}
	return pinFlatRange(&chart.Chart{
		Title:      country + ": TOTAL VACCINATIONS OVER TIME",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      dateAxis(),
		YAxis:      chart.YAxis{Name: "TOTAL VACCINATIONS", ValueFormatter: countFormatter},
		Series: []chart.Series{
			timeSeries(country, rows, totals, chart.Style{StrokeWidth: 3, StrokeColor: colorPrimary}),
		},
	}), nil
}

// DailyArea plots the daily doses of the last DailyWindow days as a filled
// area.
func DailyArea(country string, rows []dataset.Record) (*chart.Chart, error) {
	if len(rows) > DailyWindow {
		rows = rows[len(rows)-DailyWindow:]
	}
	if len(rows) < 2 {
		return nil, ErrNoData
	}
	return pinFlatRange(&chart.Chart{
		Title:      fmt.Sprintf("%s: DAILY VACCINATIONS (LAST %d DAYS)", country, DailyWindow),
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      dateAxis(),
		YAxis:      chart.YAxis{Name: "DAILY VACCINATIONS", ValueFormatter: countFormatter},
		Series: []chart.Series{
			timeSeries(country, rows, daily, chart.Style{StrokeWidth: 2, StrokeColor: colorPrimary, FillColor: colorFill}),
		},
	}), nil
}

// TopBars draws one bar per record, ranked by metric. Records are expected to
// be ranked already (see dataset.Table.TopN).
func TopBars(records []dataset.Record, by dataset.Metric) (*chart.BarChart, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	title := fmt.Sprintf("TOP %d COUNTRIES BY TOTAL VACCINATIONS", len(records))
	formatter := countFormatter
	color := colorPrimary
	if by == dataset.ByRate {
		title = fmt.Sprintf("TOP %d COUNTRIES BY VACCINATION RATE", len(records))
		formatter = percentFormatter
		color = colorAccent
	}

	bars := make([]chart.Value, len(records))
	for i, r := range records {
		v := float64(r.TotalVaccinations)
		if by == dataset.ByRate {
			v = r.VaccinationRate
		}
		bars[i] = chart.Value{
			Label: r.Country,
			Value: v,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	const barWidth = 24
	width := defaultWidth
	if w := len(bars) * (barWidth + 12); w > width {
		width = w
	}
	return &chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     defaultHeight + 120,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 120}},
		XAxis:      chart.Style{TextRotationDegrees: 90},
		YAxis:      chart.YAxis{ValueFormatter: formatter},
		Bars:       bars,
	}, nil
}

// Comparison overlays the cumulative totals of several countries, each with
// its own dash pattern.
func Comparison(table *dataset.Table, countries []string) (*chart.Chart, error) {
	dashes := [][]float64{nil, {8, 4}, {2, 4}, {12, 4, 2, 4}}

	var series []chart.Series
	for i, c := range countries {
		rows := table.Country(c)
		if len(rows) < 2 {
			continue
		}
		style := chart.Style{
			StrokeWidth:     2,
			StrokeColor:     chart.GetDefaultColor(i),
			StrokeDashArray: dashes[i%len(dashes)],
		}
		series = append(series, timeSeries(c, rows, totals, style))
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}

	ch := &chart.Chart{
		Title:      "VACCINATION PROGRESS COMPARISON",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60}},
		XAxis:      dateAxis(),
		YAxis:      chart.YAxis{Name: "TOTAL VACCINATIONS", ValueFormatter: countFormatter},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return pinFlatRange(ch), nil
}

// RateScatter is the map fallback: one dot per country, x is the country's
// position in the list and y its vaccination rate.
func RateScatter(latest []dataset.Record) (*chart.Chart, error) {
	if len(latest) < 2 {
		return nil, ErrNoData
	}
	xs := make([]float64, len(latest))
	ys := make([]float64, len(latest))
	ticks := make([]chart.Tick, 0, len(latest))
	for i, r := range latest {
		xs[i] = float64(i)
		ys[i] = r.VaccinationRate
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: r.Country})
	}

	return &chart.Chart{
		Title:      "VACCINATION RATES BY COUNTRY",
		Width:      defaultWidth + len(latest)*4,
		Height:     defaultHeight + 80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 100}},
		XAxis: chart.XAxis{
			Name:  "Country",
			Ticks: ticks,
			Style: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:           "Vaccination Rate (%)",
			ValueFormatter: percentFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "vaccination_rate",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    colorPrimary,
				},
			},
		},
	}, nil
}

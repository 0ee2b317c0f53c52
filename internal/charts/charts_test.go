package charts_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PendemixAI/vax-tracker/internal/charts"
	"github.com/PendemixAI/vax-tracker/internal/dataset"
)

var table = dataset.NewGenerator(21, dataset.ProgressMonotonic).Generate()

func TestParseFormat(t *testing.T) {
	if f, err := charts.ParseFormat("SVG"); err != nil || f != charts.SVG {
		t.Fatalf("expected svg, got %q, %v", f, err)
	}
	if f, _ := charts.ParseFormat("png"); f.ContentType() != "image/png" {
		t.Errorf("unexpected content type %q", f.ContentType())
	}
	if _, err := charts.ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestCountryTotals_RendersPNG(t *testing.T) {
	ch, err := charts.CountryTotals("INDIA", table.Country("INDIA"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ch.Title, "INDIA") {
		t.Errorf("unexpected title %q", ch.Title)
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, charts.PNG); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestDailyArea_UsesTrailingWindow(t *testing.T) {
	rows := table.Country("GERMANY")
	ch, err := charts.DailyArea("GERMANY", rows)
	if err != nil {
		t.Fatal(err)
	}
	if n := ch.Series[0].(interface{ Len() int }).Len(); n != charts.DailyWindow {
		t.Fatalf("expected %d points, got %d", charts.DailyWindow, n)
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, charts.SVG); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG")
	}
}

func TestTopBars(t *testing.T) {
	for _, by := range []dataset.Metric{dataset.ByTotal, dataset.ByRate} {
		top := table.TopN(20, by)
		ch, err := charts.TopBars(top, by)
		if err != nil {
			t.Fatalf("[%s] %v", by, err)
		}
		if len(ch.Bars) != 20 || ch.Bars[0].Label != top[0].Country {
			t.Fatalf("[%s] unexpected bars: %d, first %q", by, len(ch.Bars), ch.Bars[0].Label)
		}
		var buf bytes.Buffer
		if err := charts.Render(&buf, ch, charts.PNG); err != nil {
			t.Fatalf("[%s] render: %v", by, err)
		}
	}
}

func TestComparison_SkipsUnknownCountries(t *testing.T) {
	ch, err := charts.Comparison(table, []string{"INDIA", "NOWHERE", "GERMANY"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ch.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(ch.Series))
	}
	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, charts.PNG); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRateScatter(t *testing.T) {
	ch, err := charts.RateScatter(table.Latest())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, charts.SVG); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestEmptyInputs(t *testing.T) {
	checks := map[string]error{}
	_, checks["totals"] = charts.CountryTotals("X", nil)
	_, checks["daily"] = charts.DailyArea("X", nil)
	_, checks["bars"] = charts.TopBars(nil, dataset.ByTotal)
	_, checks["compare"] = charts.Comparison(table, []string{"NOWHERE"})
	_, checks["scatter"] = charts.RateScatter(nil)
	for name, err := range checks {
		if !errors.Is(err, charts.ErrNoData) {
			t.Errorf("%s: expected ErrNoData, got %v", name, err)
		}
	}
}

func TestDailyArea_FlatSeriesRenders(t *testing.T) {
	rows := []dataset.Record{
		{Country: "TUVALU", Date: dataset.Epoch},
		{Country: "TUVALU", Date: dataset.Epoch.AddDate(0, 0, 1)},
	}
	ch, err := charts.DailyArea("TUVALU", rows)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, charts.PNG); err != nil {
		t.Fatalf("render flat series: %v", err)
	}
}

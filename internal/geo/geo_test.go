package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/geo"
)

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"UNITED STATES":          "United States",
		"BOSNIA AND HERZEGOVINA": "Bosnia and Herzegovina",
		"GUINEA-BISSAU":          "Guinea-Bissau",
		"INDIA":                  "India",
		"EL SALVADOR":            "El Salvador",
	}
	for in, want := range cases {
		if got := geo.DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestDefaultResolverCoversRoster(t *testing.T) {
	r := geo.DefaultResolver()
	for _, c := range dataset.Roster() {
		if _, ok := r.Resolve(c); !ok {
			t.Errorf("roster country %s is not placeable", c)
		}
	}
}

func TestChoropleth(t *testing.T) {
	table := dataset.NewGenerator(4, dataset.ProgressMonotonic).Generate()
	latest := table.Latest()

	fig, err := geo.Choropleth(latest, geo.DefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Points) != len(dataset.Roster()) {
		t.Fatalf("expected %d points, got %d", len(dataset.Roster()), len(fig.Points))
	}
	var maxRate float64
	for _, p := range fig.Points {
		maxRate = math.Max(maxRate, p.VaccinationRate)
	}
	if math.Abs(fig.ColorRange[1]-maxRate*1.1) > 1e-9 || fig.ColorRange[0] != 0 {
		t.Errorf("unexpected color range %v for max %f", fig.ColorRange, maxRate)
	}
}

func TestChoropleth_PartialAndUnresolved(t *testing.T) {
	latest := []dataset.Record{
		{Country: "INDIA", VaccinationRate: 40},
		{Country: "ATLANTIS", VaccinationRate: 90},
	}
	resolver, err := geo.ParseLocations([]byte("# test list\nIndia\n"))
	if err != nil {
		t.Fatal(err)
	}

	fig, err := geo.Choropleth(latest, resolver)
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Points) != 1 || len(fig.Unresolved) != 1 || fig.Unresolved[0] != "ATLANTIS" {
		t.Fatalf("unexpected figure: %+v", fig)
	}
	if math.Abs(fig.ColorRange[1]-44) > 1e-9 {
		t.Errorf("unresolved rows must not widen the color range, got %v", fig.ColorRange)
	}

	_, err = geo.Choropleth(latest[1:], resolver)
	if !errors.Is(err, geo.ErrUnresolvedLocations) {
		t.Errorf("expected ErrUnresolvedLocations, got %v", err)
	}

	if _, err := geo.Choropleth(nil, resolver); !errors.Is(err, geo.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

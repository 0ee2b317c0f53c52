package view_test

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/regions"
	"github.com/PendemixAI/vax-tracker/internal/view"
)

var (
	table = dataset.NewGenerator(17, dataset.ProgressMonotonic).Generate()
	rs    = regions.Default()
)

func parse(t *testing.T, raw string) view.ViewState {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatal(err)
	}
	s, err := view.Parse(q, view.ViewState{}, table, rs)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return s
}

func TestParse_Defaults(t *testing.T) {
	s := parse(t, "")
	if s.Country != "INDIA" || s.Region != regions.AllRegions || s.TopN != 20 || s.Download != export.CurrentCountry {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	want := []string{"INDIA", "UNITED STATES", "UNITED KINGDOM", "GERMANY"}
	if !reflect.DeepEqual(s.Compare, want) {
		t.Errorf("expected compare %v, got %v", want, s.Compare)
	}
}

func TestParse_DefaultCompareIsDeduplicated(t *testing.T) {
	s := parse(t, "country=germany")
	want := []string{"GERMANY", "UNITED STATES", "UNITED KINGDOM"}
	if !reflect.DeepEqual(s.Compare, want) {
		t.Errorf("expected compare %v, got %v", want, s.Compare)
	}
}

func TestParse_ClampsTopN(t *testing.T) {
	cases := map[string]int{"top=1": 5, "top=50": 50, "top=500": 50, "top=12": 12}
	for raw, want := range cases {
		if got := parse(t, raw).TopN; got != want {
			t.Errorf("%s: expected %d, got %d", raw, want, got)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]error{
		"region=atlantis":               view.ErrUnknownRegion,
		"top=lots":                      view.ErrInvalidTopN,
		"compare=a,b,c,d,e,f,g,h,i,j,k": view.ErrTooManyCompare,
		"download=everything":           export.ErrUnknownOption,
	}
	for raw, want := range cases {
		q, _ := url.ParseQuery(raw)
		if _, err := view.Parse(q, view.ViewState{}, table, rs); !errors.Is(err, want) {
			t.Errorf("%s: expected %v, got %v", raw, want, err)
		}
	}
}

func TestParse_KeepsBaseSelections(t *testing.T) {
	base := parse(t, "country=japan&region=asia&top=7&compare=japan,china")
	q, _ := url.ParseQuery("download=all")
	s, err := view.Parse(q, base, table, rs)
	if err != nil {
		t.Fatal(err)
	}
	if s.Country != "JAPAN" || s.Region != "ASIA" || s.TopN != 7 || s.Download != export.AllCountries {
		t.Fatalf("base selections lost: %+v", s)
	}
	if !reflect.DeepEqual(s.Compare, []string{"JAPAN", "CHINA"}) {
		t.Errorf("unexpected compare: %v", s.Compare)
	}
}

func TestParse_StaleBaseRegionFallsBackToAll(t *testing.T) {
	base := view.ViewState{Country: "INDIA", Region: "ATLANTIS", TopN: 10}
	s, err := view.Parse(url.Values{}, base, table, rs)
	if err != nil {
		t.Fatal(err)
	}
	if s.Region != regions.AllRegions {
		t.Fatalf("expected %q, got %q", regions.AllRegions, s.Region)
	}
	if _, err := view.Render(table, rs, s); err != nil {
		t.Fatalf("render after fallback: %v", err)
	}
}

func TestRender_UnknownRegionIsBadSelection(t *testing.T) {
	s := parse(t, "")
	s.Region = "ATLANTIS"
	if _, err := view.Render(table, rs, s); !errors.Is(err, view.ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
}

func TestRender_GlobalCards(t *testing.T) {
	d, err := view.Render(table, rs, parse(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalCountries != len(dataset.Roster()) {
		t.Errorf("expected %d countries, got %d", len(dataset.Roster()), d.TotalCountries)
	}
	if d.Global[0].Value != "195" || d.Global[3].Value != "179" {
		t.Errorf("unexpected global cards: %+v", d.Global)
	}
	if !strings.Contains(d.Global[1].Value, ",") {
		t.Errorf("expected thousands separators, got %q", d.Global[1].Value)
	}
	if d.RegionInfo != "" {
		t.Errorf("expected no region info, got %q", d.RegionInfo)
	}
	if len(d.Country.Cards) != 4 || d.Country.Message != "" {
		t.Errorf("unexpected country section: %+v", d.Country)
	}
	if len(d.Country.Trend) != dataset.Days || len(d.Country.Daily) != 90 {
		t.Errorf("expected %d trend and 90 daily points, got %d and %d",
			dataset.Days, len(d.Country.Trend), len(d.Country.Daily))
	}
	if len(d.TopByTotal.Records) != 20 || len(d.Explorer) != len(dataset.Roster()) {
		t.Errorf("unexpected ranking sizes: %d, %d", len(d.TopByTotal.Records), len(d.Explorer))
	}
	if len(d.Compare) != 4 {
		t.Errorf("expected 4 comparison series, got %d", len(d.Compare))
	}
	if d.Download.FileName != "PENDEMIXAI_VACCINATION_INDIA.csv" || d.Download.Rows != dataset.Days {
		t.Errorf("unexpected download: %+v", d.Download)
	}
}

func TestRender_CountryOutsideRegion(t *testing.T) {
	d, err := view.Render(table, rs, parse(t, "country=germany&region=asia"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Country.Message != "No data available for GERMANY" || d.Country.Cards != nil {
		t.Errorf("expected no-data message, got %+v", d.Country)
	}
	members, _ := rs.Countries("ASIA")
	want := "SHOWING DATA FOR ASIA REGION (" + strconv.Itoa(len(members)) + " COUNTRIES)"
	if d.RegionInfo != want {
		t.Errorf("expected %q, got %q", want, d.RegionInfo)
	}
	if d.Download.Rows != 0 {
		t.Errorf("expected empty current-country download, got %d rows", d.Download.Rows)
	}
	// Rankings always cover every country.
	if len(d.Explorer) != len(dataset.Roster()) {
		t.Errorf("explorer should not be region filtered, got %d", len(d.Explorer))
	}
}

func TestRender_DoesNotMutateTable(t *testing.T) {
	before := table.Rows()
	if _, err := view.Render(table, rs, parse(t, "region=europe&download=top50")); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, table.Rows()) {
		t.Fatal("render changed the table")
	}
}

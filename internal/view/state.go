package view

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/regions"
)

const (
	DefaultCountry = "INDIA"
	DefaultTopN    = 20
	MinTopN        = 5
	MaxTopN        = 50
	MaxCompare     = 10
)

// defaultPeers are compared against the selected country when the caller
// does not pick anything.
var defaultPeers = []string{"UNITED STATES", "UNITED KINGDOM", "GERMANY"}

var (
	ErrUnknownRegion  = regions.ErrUnknownRegion
	ErrInvalidTopN    = errors.New("top must be an integer")
	ErrTooManyCompare = fmt.Errorf("at most %d countries can be compared", MaxCompare)
)

// ViewState is everything the user has selected on the dashboard.
type ViewState struct {
	Country  string        `json:"country"`
	Region   string        `json:"region"`
	TopN     int           `json:"top_n"`
	Compare  []string      `json:"compare"`
	Download export.Option `json:"download"`
}

// Defaults is the initial view of a table.
func Defaults(table *dataset.Table) ViewState {
	country := DefaultCountry
	if !table.Has(country) {
		if names := table.Countries(); len(names) > 0 {
			country = names[0]
		}
	}
	return ViewState{
		Country:  country,
		Region:   regions.AllRegions,
		TopN:     DefaultTopN,
		Compare:  defaultCompare(table, country),
		Download: export.CurrentCountry,
	}
}

// Parse applies the query parameters country, region, top, compare and
// download on top of base. A zero base starts from Defaults.
func Parse(q url.Values, base ViewState, table *dataset.Table, rs *regions.Set) (ViewState, error) {
	if base.Country == "" {
		base = Defaults(table)
	}
	s := base
	// A remembered region may have been dropped from the region set since.
	if s.Region == "" || !rs.Has(s.Region) {
		s.Region = regions.AllRegions
	}

	if v := strings.TrimSpace(q.Get("country")); v != "" {
		s.Country = strings.ToUpper(v)
	}

	if v := strings.TrimSpace(q.Get("region")); v != "" {
		name := strings.ToUpper(v)
		if !rs.Has(name) {
			return ViewState{}, fmt.Errorf("%w: %s", ErrUnknownRegion, v)
		}
		s.Region = name
	}

	if v := strings.TrimSpace(q.Get("top")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ViewState{}, fmt.Errorf("%w: %q", ErrInvalidTopN, v)
		}
		s.TopN = ClampTopN(n)
	} else if s.TopN == 0 {
		s.TopN = DefaultTopN
	}

	switch {
	case q.Has("compare"):
		compare := splitCountries(q["compare"])
		if len(compare) > MaxCompare {
			return ViewState{}, ErrTooManyCompare
		}
		s.Compare = compare
	case s.Country != base.Country || len(s.Compare) == 0:
		s.Compare = defaultCompare(table, s.Country)
	}

	if v := q.Get("download"); v != "" {
		o, err := export.ParseOption(v)
		if err != nil {
			return ViewState{}, err
		}
		s.Download = o
	} else if s.Download == "" {
		s.Download = export.CurrentCountry
	}

	return s, nil
}

// ClampTopN forces n into [MinTopN, MaxTopN].
func ClampTopN(n int) int {
	if n < MinTopN {
		return MinTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

func defaultCompare(table *dataset.Table, country string) []string {
	if !table.Has(country) {
		names := table.Countries()
		if len(names) > 4 {
			names = names[:4]
		}
		return names
	}
	return dedupe(append([]string{country}, defaultPeers...))
}

// splitCountries accepts both repeated and comma-separated values.
func splitCountries(values []string) []string {
	var out []string
	for _, v := range values {
		for _, c := range strings.Split(v, ",") {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				out = append(out, c)
			}
		}
	}
	return dedupe(out)
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

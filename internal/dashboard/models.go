package dashboard

import (
	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/geo"
	"github.com/PendemixAI/vax-tracker/internal/regions"
)

type CountriesResponse struct {
	Total     int      `json:"total"`
	Countries []string `json:"countries"`
}

type RegionsResponse struct {
	Options []string         `json:"options"`
	Regions []regions.Region `json:"regions"`
}

type CountryResponse struct {
	Country string                 `json:"country"`
	Summary dataset.CountrySummary `json:"summary"`
	Records []dataset.Record       `json:"records"`
}

// MapResponse carries either the choropleth or a pointer to the scatter
// chart used in its place.
type MapResponse struct {
	Figure   *geo.Figure `json:"figure,omitempty"`
	Message  string      `json:"message"`
	Fallback bool        `json:"fallback"`
	ChartURL string      `json:"chart_url,omitempty"`
}

package view

import (
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
)

type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Point struct {
	Date  time.Time `json:"date"`
	Value int64     `json:"value"`
}

type Series struct {
	Country string  `json:"country"`
	Points  []Point `json:"points"`
}

// CountrySection is either a set of metric cards or a message explaining
// why there is nothing to show.
type CountrySection struct {
	Country string  `json:"country"`
	Cards   []Card  `json:"cards,omitempty"`
	Message string  `json:"message,omitempty"`
	Trend   []Point `json:"trend,omitempty"`
	Daily   []Point `json:"daily,omitempty"`
}

type Ranking struct {
	Title   string           `json:"title"`
	Metric  dataset.Metric   `json:"metric"`
	Records []dataset.Record `json:"records"`
}

type Download struct {
	Option   export.Option `json:"option"`
	Label    string        `json:"label"`
	FileName string        `json:"file_name"`
	Rows     int           `json:"rows"`
}

// Dashboard is the full rendered page for one view state.
type Dashboard struct {
	State          ViewState        `json:"state"`
	TotalCountries int              `json:"total_countries"`
	RegionInfo     string           `json:"region_info,omitempty"`
	Global         []Card           `json:"global"`
	Country        CountrySection   `json:"country"`
	TopByTotal     Ranking          `json:"top_by_total"`
	TopByRate      Ranking          `json:"top_by_rate"`
	Compare        []Series         `json:"compare"`
	Explorer       []dataset.Record `json:"explorer"`
	Download       Download         `json:"download"`
}

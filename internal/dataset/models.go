package dataset

import (
	"sort"
	"time"
)

// Record is one synthetic vaccination row for a country on a given day.
type Record struct {
	Country               string    `json:"country"`
	Date                  time.Time `json:"date"`
	TotalVaccinations     int64     `json:"total_vaccinations"`
	DailyVaccinations     int64     `json:"daily_vaccinations"`
	PeopleVaccinated      int64     `json:"people_vaccinated"`
	PeopleFullyVaccinated int64     `json:"people_fully_vaccinated"`
	PopulationMillions    float64   `json:"population_millions"`
	VaccinationRate       float64   `json:"vaccination_rate"`
}

// Table is an immutable snapshot of generated records. Every accessor hands
// out copies so callers can never mutate the shared snapshot.
type Table struct {
	seed      int64
	rows      []Record
	byCountry map[string][]Record
	countries []string
}

// NewTable indexes rows by country. The row order is kept as given; per-country
// series are sorted by date.
func NewTable(seed int64, rows []Record) *Table {
	t := &Table{
		seed:      seed,
		rows:      append([]Record(nil), rows...),
		byCountry: make(map[string][]Record),
	}
	for _, r := range t.rows {
		t.byCountry[r.Country] = append(t.byCountry[r.Country], r)
	}
	for name, series := range t.byCountry {
		sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
		t.countries = append(t.countries, name)
	}
	sort.Strings(t.countries)
	return t
}

// Seed returns the seed the table was generated from.
func (t *Table) Seed() int64 { return t.seed }

// Len is the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns all rows in generation order.
func (t *Table) Rows() []Record {
	return append([]Record(nil), t.rows...)
}

// Countries returns the sorted unique country names present in the table.
func (t *Table) Countries() []string {
	return append([]string(nil), t.countries...)
}

// Has reports whether the table holds rows for country.
func (t *Table) Has(country string) bool {
	_, ok := t.byCountry[country]
	return ok
}

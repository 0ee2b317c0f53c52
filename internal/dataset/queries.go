package dataset

import (
	"errors"
	"sort"
)

// Metric selects the column used to rank countries.
type Metric string

const (
	ByTotal Metric = "total_vaccinations"
	ByRate  Metric = "vaccination_rate"
)

var ErrUnknownMetric = errors.New("unknown ranking metric")

// ParseMetric maps a query value to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case ByTotal, "total", "":
		return ByTotal, nil
	case ByRate, "rate":
		return ByRate, nil
	}
	return "", ErrUnknownMetric
}

// Country returns the date-ordered series for one country, or nil when the
// table has no rows for it.
func (t *Table) Country(name string) []Record {
	series, ok := t.byCountry[name]
	if !ok {
		return nil
	}
	return append([]Record(nil), series...)
}

// Latest returns the most recent record of every country, sorted by name.
func (t *Table) Latest() []Record {
	out := make([]Record, 0, len(t.countries))
	for _, name := range t.countries {
		series := t.byCountry[name]
		out = append(out, series[len(series)-1])
	}
	return out
}

// TopN ranks the latest record of every country by metric in descending
// order and returns at most n of them. Ties are broken by country name.
func (t *Table) TopN(n int, by Metric) []Record {
	latest := t.Latest()
	SortDesc(latest, by)
	if n < 0 {
		n = 0
	}
	if n < len(latest) {
		latest = latest[:n]
	}
	return latest
}

// SortDesc orders records by metric, largest first.
func SortDesc(records []Record, by Metric) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := value(records[i], by), value(records[j], by)
		if a != b {
			return a > b
		}
		return records[i].Country < records[j].Country
	})
}

func value(r Record, by Metric) float64 {
	if by == ByRate {
		return r.VaccinationRate
	}
	return float64(r.TotalVaccinations)
}

// Filter returns a sub-table holding only the given countries. Unknown names
// are ignored.
func (t *Table) Filter(countries []string) *Table {
	keep := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		keep[c] = struct{}{}
	}
	var rows []Record
	for _, r := range t.rows {
		if _, ok := keep[r.Country]; ok {
			rows = append(rows, r)
		}
	}
	return NewTable(t.seed, rows)
}

// Summary holds the global metric cards.
type Summary struct {
	TotalCountries     int     `json:"total_countries"`
	GlobalVaccinations int64   `json:"global_vaccinations"`
	AverageRate        float64 `json:"average_rate"`
	DaysCovered        int     `json:"days_covered"`
}

// GlobalSummary sums each country's peak total, averages each country's peak
// rate and measures the span of dates in the table.
func (t *Table) GlobalSummary() Summary {
	s := Summary{TotalCountries: len(t.countries)}
	if len(t.countries) == 0 {
		return s
	}

	var rateSum float64
	first, last := t.rows[0].Date, t.rows[0].Date
	for _, name := range t.countries {
		var maxTotal int64
		var maxRate float64
		for _, r := range t.byCountry[name] {
			if r.TotalVaccinations > maxTotal {
				maxTotal = r.TotalVaccinations
			}
			if r.VaccinationRate > maxRate {
				maxRate = r.VaccinationRate
			}
			if r.Date.Before(first) {
				first = r.Date
			}
			if r.Date.After(last) {
				last = r.Date
			}
		}
		s.GlobalVaccinations += maxTotal
		rateSum += maxRate
	}
	s.AverageRate = rateSum / float64(len(t.countries))
	s.DaysCovered = int(last.Sub(first).Hours() / 24)
	return s
}

// CountrySummary holds the metric cards of a single country.
type CountrySummary struct {
	Country           string  `json:"country"`
	TotalVaccinations int64   `json:"total_vaccinations"`
	DailyAverage      float64 `json:"daily_average"`
	PeopleVaccinated  int64   `json:"people_vaccinated"`
	VaccinationRate   float64 `json:"vaccination_rate"`
}

// CountrySummary reports peak totals and the mean daily doses for name. The
// second result is false when the table has no rows for the country.
func (t *Table) CountrySummary(name string) (CountrySummary, bool) {
	series, ok := t.byCountry[name]
	if !ok || len(series) == 0 {
		return CountrySummary{}, false
	}
	s := CountrySummary{Country: name}
	var dailySum float64
	for _, r := range series {
		if r.TotalVaccinations > s.TotalVaccinations {
			s.TotalVaccinations = r.TotalVaccinations
		}
		if r.PeopleVaccinated > s.PeopleVaccinated {
			s.PeopleVaccinated = r.PeopleVaccinated
		}
		if r.VaccinationRate > s.VaccinationRate {
			s.VaccinationRate = r.VaccinationRate
		}
		dailySum += float64(r.DailyVaccinations)
	}
	s.DailyAverage = dailySum / float64(len(series))
	return s, true
}

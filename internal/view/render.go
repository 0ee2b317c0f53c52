package view

import (
	"fmt"

	"github.com/PendemixAI/vax-tracker/internal/charts"
	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/regions"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scope returns the table the selected country is read from: the whole
// table, or only the members of the selected region.
func Scope(table *dataset.Table, rs *regions.Set, region string) (*dataset.Table, error) {
	members, err := rs.Countries(region)
	if err != nil {
		return nil, err
	}
	if members == nil {
		return table, nil
	}
	return table.Filter(members), nil
}

// NoDataMessage is shown when the selected country has no rows in scope.
func NoDataMessage(country string) string {
	return "No data available for " + country
}

// Render builds the dashboard for s. It does not mutate table.
func Render(table *dataset.Table, rs *regions.Set, s ViewState) (Dashboard, error) {
	scope, err := Scope(table, rs, s.Region)
	if err != nil {
		return Dashboard{}, err
	}

	p := message.NewPrinter(language.English)
	d := Dashboard{
		State:          s,
		TotalCountries: len(table.Countries()),
	}

	if members, _ := rs.Countries(s.Region); members != nil {
		d.RegionInfo = fmt.Sprintf("SHOWING DATA FOR %s REGION (%d COUNTRIES)", s.Region, len(members))
	}

	g := table.GlobalSummary()
	d.Global = []Card{
		{Label: "TOTAL COUNTRIES", Value: p.Sprintf("%d", g.TotalCountries)},
		{Label: "GLOBAL VACCINATIONS", Value: p.Sprintf("%d", g.GlobalVaccinations)},
		{Label: "AVG. VACCINATION RATE", Value: p.Sprintf("%.1f%%", g.AverageRate)},
		{Label: "DAYS COVERED", Value: p.Sprintf("%d", g.DaysCovered)},
	}

	d.Country = countrySection(p, scope, s.Country)

	latest := table.Latest()
	d.TopByTotal = ranking(table, s.TopN, dataset.ByTotal)
	d.TopByRate = ranking(table, s.TopN, dataset.ByRate)

	for _, c := range s.Compare {
		rows := table.Country(c)
		if len(rows) == 0 {
			continue
		}
		d.Compare = append(d.Compare, Series{Country: c, Points: points(rows, totals)})
	}

	dataset.SortDesc(latest, dataset.ByTotal)
	d.Explorer = latest

	rows, err := export.Select(table, scope, s.Download, s.Country)
	if err != nil {
		return Dashboard{}, err
	}
	d.Download = Download{
		Option:   s.Download,
		Label:    s.Download.Label(),
		FileName: export.FileName(s.Download, s.Country),
		Rows:     len(rows),
	}
	return d, nil
}

func countrySection(p *message.Printer, scope *dataset.Table, country string) CountrySection {
	sec := CountrySection{Country: country}
	sum, ok := scope.CountrySummary(country)
	if !ok {
		sec.Message = NoDataMessage(country)
		return sec
	}
	sec.Cards = []Card{
		{Label: "TOTAL VACCINATIONS", Value: p.Sprintf("%d", sum.TotalVaccinations)},
		{Label: "DAILY AVERAGE", Value: p.Sprintf("%.0f", sum.DailyAverage)},
		{Label: "PEOPLE VACCINATED", Value: p.Sprintf("%d", sum.PeopleVaccinated)},
		{Label: "VACCINATION RATE", Value: p.Sprintf("%.1f%%", sum.VaccinationRate)},
	}

	rows := scope.Country(country)
	sec.Trend = points(rows, totals)
	if len(rows) > charts.DailyWindow {
		rows = rows[len(rows)-charts.DailyWindow:]
	}
	sec.Daily = points(rows, daily)
	return sec
}

func ranking(table *dataset.Table, n int, by dataset.Metric) Ranking {
	title := fmt.Sprintf("TOP %d COUNTRIES BY TOTAL VACCINATIONS", n)
	if by == dataset.ByRate {
		title = fmt.Sprintf("TOP %d COUNTRIES BY VACCINATION RATE", n)
	}
	return Ranking{Title: title, Metric: by, Records: table.TopN(n, by)}
}

func totals(r dataset.Record) int64 { return r.TotalVaccinations }

func daily(r dataset.Record) int64 { return r.DailyVaccinations }

func points(rows []dataset.Record, pick func(dataset.Record) int64) []Point {
	out := make([]Point, len(rows))
	for i, r := range rows {
		out[i] = Point{Date: r.Date, Value: pick(r)}
	}
	return out
}

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
)

// Option selects which rows a download contains.
type Option string

const (
	CurrentCountry Option = "current"
	AllCountries   Option = "all"
	Top50          Option = "top50"

	// TopLimit is the number of countries in a Top50 export.
	TopLimit = 50

	dateLayout = "2006-01-02"
)

var (
	ErrUnknownOption = errors.New("unknown download option")
	ErrNoCountry     = errors.New("current-country export needs a country")
)

// Columns is the fixed CSV header.
var Columns = []string{
	"country",
	"date",
	"total_vaccinations",
	"daily_vaccinations",
	"people_vaccinated",
	"people_fully_vaccinated",
	"population_millions",
	"vaccination_rate",
}

// ParseOption maps a query value to an Option. Empty means CurrentCountry.
func ParseOption(s string) (Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "current", "current country", "current_country":
		return CurrentCountry, nil
	case "all", "all countries", "all_countries":
		return AllCountries, nil
	case "top50", "top 50", "top_50", "top 50 countries":
		return Top50, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOption, s)
}

// Label is the human label of an option.
func (o Option) Label() string {
	switch o {
	case AllCountries:
		return "ALL COUNTRIES"
	case Top50:
		return "TOP 50 COUNTRIES"
	default:
		return "CURRENT COUNTRY"
	}
}

// FileName returns the download name for an option.
func FileName(o Option, country string) string {
	switch o {
	case AllCountries:
		return "PENDEMIXAI_VACCINATION_ALL_COUNTRIES.csv"
	case Top50:
		return "PENDEMIXAI_VACCINATION_TOP_50.csv"
	default:
		return "PENDEMIXAI_VACCINATION_" + country + ".csv"
	}
}

// Select picks the rows for an option. For CurrentCountry, scope is the table
// the selected country is read from (the region-filtered table in the
// dashboard), so a country outside the region yields no rows.
func Select(full, scope *dataset.Table, o Option, country string) ([]dataset.Record, error) {
	switch o {
	case CurrentCountry:
		if country == "" {
			return nil, ErrNoCountry
		}
		return scope.Country(country), nil
	case AllCountries:
		return full.Rows(), nil
	case Top50:
		return full.TopN(TopLimit, dataset.ByTotal), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOption, string(o))
}

// WriteCSV writes rows with the fixed header.
func WriteCSV(w io.Writer, rows []dataset.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(encode(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encode(r dataset.Record) []string {
	return []string{
		r.Country,
		r.Date.Format(dateLayout),
		strconv.FormatInt(r.TotalVaccinations, 10),
		strconv.FormatInt(r.DailyVaccinations, 10),
		strconv.FormatInt(r.PeopleVaccinated, 10),
		strconv.FormatInt(r.PeopleFullyVaccinated, 10),
		strconv.FormatFloat(r.PopulationMillions, 'f', -1, 64),
		strconv.FormatFloat(r.VaccinationRate, 'f', -1, 64),
	}
}

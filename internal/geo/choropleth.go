package geo

import (
	"errors"
	"fmt"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
)

var (
	ErrNoData              = errors.New("no data to map")
	ErrUnresolvedLocations = errors.New("no country could be placed on the map")
)

// Point is one shaded country.
type Point struct {
	Location          string  `json:"location"`
	Country           string  `json:"country"`
	VaccinationRate   float64 `json:"vaccination_rate"`
	TotalVaccinations int64   `json:"total_vaccinations"`
	PeopleVaccinated  int64   `json:"people_vaccinated"`
	DailyVaccinations int64   `json:"daily_vaccinations"`
}

// Figure is the choropleth payload handed to the map front end.
type Figure struct {
	Title        string     `json:"title"`
	LocationMode string     `json:"location_mode"`
	ColorRange   [2]float64 `json:"color_range"`
	Points       []Point    `json:"points"`
	Unresolved   []string   `json:"unresolved,omitempty"`
}

// Choropleth shades every country by its latest vaccination rate. Countries
// the resolver cannot place are listed in Unresolved. When nothing can be
// placed the figure is unusable and ErrUnresolvedLocations is returned so the
// caller can fall back to another chart.
func Choropleth(latest []dataset.Record, resolver *Resolver) (Figure, error) {
	if len(latest) == 0 {
		return Figure{}, ErrNoData
	}

	fig := Figure{
		Title:        "GLOBAL VACCINATION COVERAGE",
		LocationMode: "country names",
	}
	var maxRate float64
	for _, r := range latest {
		loc, ok := resolver.Resolve(r.Country)
		if !ok {
			fig.Unresolved = append(fig.Unresolved, r.Country)
			continue
		}
		if r.VaccinationRate > maxRate {
			maxRate = r.VaccinationRate
		}
		fig.Points = append(fig.Points, Point{
			Location:          loc,
			Country:           r.Country,
			VaccinationRate:   r.VaccinationRate,
			TotalVaccinations: r.TotalVaccinations,
			PeopleVaccinated:  r.PeopleVaccinated,
			DailyVaccinations: r.DailyVaccinations,
		})
	}
	if len(fig.Points) == 0 {
		return Figure{}, fmt.Errorf("%w (%d countries)", ErrUnresolvedLocations, len(fig.Unresolved))
	}
	fig.ColorRange = [2]float64{0, maxRate * 1.1}
	return fig, nil
}

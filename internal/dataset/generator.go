package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// ProgressMode selects how the per-day progress multiplier is drawn.
type ProgressMode string

const (
	// ProgressMonotonic draws the multiplier once per country so cumulative
	// totals only grow (apart from the jitter band).
	ProgressMonotonic ProgressMode = "monotonic"
	// ProgressLegacy re-draws the multiplier every day, like the first
	// version of the dashboard did.
	ProgressLegacy ProgressMode = "legacy"
)

// ParseProgressMode maps a config string to a ProgressMode.
func ParseProgressMode(s string) (ProgressMode, error) {
	switch ProgressMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProgressMonotonic:
		return ProgressMonotonic, nil
	case ProgressLegacy:
		return ProgressLegacy, nil
	}
	return "", fmt.Errorf("unknown progress mode %q", s)
}

const (
	// Days is the number of simulated days per country.
	Days = 180

	minRandomPopulation = 0.1
	maxRandomPopulation = 50

	totalJitter = 100000
	dailyJitter = 5000
)

// Epoch is day zero of every generated series.
var Epoch = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

// Sampler is the source of randomness for a generation run. Float returns a
// value in [lo, hi) and Int an integer in [lo, hi).
type Sampler interface {
	Float(lo, hi float64) float64
	Int(lo, hi int64) int64
}

type randSampler struct {
	r *rand.Rand
}

// NewSampler returns a deterministic sampler for seed.
func NewSampler(seed int64) Sampler {
	s := uint64(seed)
	return randSampler{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

func (s randSampler) Float(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s randSampler) Int(lo, hi int64) int64 {
	return lo + s.r.Int64N(hi-lo)
}

// TimeSeed derives a seed from the wall clock for interactive sessions.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Generator builds the synthetic vaccination table.
type Generator struct {
	Roster      []string
	Populations map[string]float64
	Epoch       time.Time
	Days        int
	Mode        ProgressMode
	Sampler     Sampler
	// Seed is recorded on the generated table; it does not seed Sampler.
	Seed int64
}

// NewGenerator returns a generator over the built-in roster seeded with seed.
func NewGenerator(seed int64, mode ProgressMode) *Generator {
	return &Generator{
		Roster:      Roster(),
		Populations: copyPopulations(),
		Epoch:       Epoch,
		Days:        Days,
		Mode:        mode,
		Sampler:     NewSampler(seed),
		Seed:        seed,
	}
}

// Generate runs the generator once and returns the resulting table.
func (g *Generator) Generate() *Table {
	rows := make([]Record, 0, len(g.Roster)*g.Days)
	for _, country := range g.Roster {
		rows = g.appendCountry(rows, country)
	}
	return NewTable(g.Seed, rows)
}

func (g *Generator) appendCountry(rows []Record, country string) []Record {
	s := g.Sampler

	population, ok := g.Populations[country]
	if !ok {
		population = s.Float(minRandomPopulation, maxRandomPopulation)
	}
	people := population * 1_000_000

	coverage := s.Float(0.1, 0.8)

	var multiplier float64
	if g.Mode != ProgressLegacy {
		multiplier = s.Float(0.5, 2.0)
	}

	for i := 0; i < g.Days; i++ {
		if g.Mode == ProgressLegacy {
			multiplier = s.Float(0.5, 2.0)
		}
		progress := math.Min(1.0, float64(i)/float64(g.Days)*multiplier)

		total := nonNegative(int64(people*coverage*progress) + s.Int(-totalJitter, totalJitter))
		daily := nonNegative(int64(float64(total)*s.Float(0.001, 0.01)) + s.Int(-dailyJitter, dailyJitter))
		vaccinated := nonNegative(int64(float64(total) * s.Float(0.7, 0.95)))
		fully := nonNegative(int64(float64(total) * s.Float(0.5, 0.85)))

		rows = append(rows, Record{
			Country:               country,
			Date:                  g.Epoch.AddDate(0, 0, i),
			TotalVaccinations:     total,
			DailyVaccinations:     daily,
			PeopleVaccinated:      vaccinated,
			PeopleFullyVaccinated: fully,
			PopulationMillions:    population,
			VaccinationRate:       rate(total, population),
		})
	}
	return rows
}

func rate(total int64, populationMillions float64) float64 {
	if populationMillions <= 0 {
		return 0
	}
	return math.Min(100, float64(total)/(populationMillions*1_000_000)*100)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

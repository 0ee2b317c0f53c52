package regions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// AllRegions is the filter value meaning "no region filter".
const AllRegions = "ALL REGIONS"

var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrDuplicateRegion = errors.New("duplicate region")
	ErrEmptyRegion     = errors.New("region has no countries")
)

//go:embed regions.yaml
var defaultYAML []byte

type Region struct {
	Name      string   `yaml:"name" json:"name"`
	Countries []string `yaml:"countries" json:"countries"`
}

// Set is an ordered, validated collection of regions.
type Set struct {
	regions []Region
	index   map[string]int
}

type file struct {
	Regions []Region `yaml:"regions"`
}

// Default returns the built-in region groupings.
func Default() *Set {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("regions: embedded regions.yaml is invalid: %v", err))
	}
	return s
}

// Load reads region groupings from a YAML file. An empty path yields the
// built-in groupings.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a regions document. Names are upper-cased to
// match the roster.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}

	s := &Set{index: make(map[string]int, len(f.Regions))}
	for _, r := range f.Regions {
		name := normalize(r.Name)
		if name == "" || name == AllRegions {
			return nil, fmt.Errorf("invalid region name %q", r.Name)
		}
		if _, ok := s.index[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRegion, name)
		}

		var countries []string
		for _, c := range r.Countries {
			if c = normalize(c); c != "" {
				countries = append(countries, c)
			}
		}
		if len(countries) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyRegion, name)
		}

		s.index[name] = len(s.regions)
		s.regions = append(s.regions, Region{Name: name, Countries: countries})
	}
	return s, nil
}

// Names lists the region names in file order.
func (s *Set) Names() []string {
	names := make([]string, len(s.regions))
	for i, r := range s.regions {
		names[i] = r.Name
	}
	return names
}

// Options is the dropdown list: AllRegions followed by every region name.
func (s *Set) Options() []string {
	return append([]string{AllRegions}, s.Names()...)
}

// All returns a copy of every region.
func (s *Set) All() []Region {
	out := make([]Region, len(s.regions))
	for i, r := range s.regions {
		out[i] = Region{Name: r.Name, Countries: append([]string(nil), r.Countries...)}
	}
	return out
}

// Countries returns the members of a region. AllRegions returns nil with a
// nil error; callers treat that as "no filter".
func (s *Set) Countries(name string) ([]string, error) {
	name = normalize(name)
	if name == "" || name == AllRegions {
		return nil, nil
	}
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, name)
	}
	return append([]string(nil), s.regions[i].Countries...), nil
}

// Has reports whether name is AllRegions or a known region.
func (s *Set) Has(name string) bool {
	_, err := s.Countries(name)
	return err == nil
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

package geo

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// specialNames are roster names whose map spelling is not plain title case.
var specialNames = map[string]string{
	"UNITED STATES":                    "United States",
	"UNITED KINGDOM":                   "United Kingdom",
	"SOUTH KOREA":                      "South Korea",
	"NORTH KOREA":                      "North Korea",
	"SOUTH AFRICA":                     "South Africa",
	"SAUDI ARABIA":                     "Saudi Arabia",
	"NEW ZEALAND":                      "New Zealand",
	"PAPUA NEW GUINEA":                 "Papua New Guinea",
	"UNITED ARAB EMIRATES":             "United Arab Emirates",
	"DOMINICAN REPUBLIC":               "Dominican Republic",
	"CZECH REPUBLIC":                   "Czech Republic",
	"BOSNIA AND HERZEGOVINA":           "Bosnia and Herzegovina",
	"TRINIDAD AND TOBAGO":              "Trinidad and Tobago",
	"ANTIGUA AND BARBUDA":              "Antigua and Barbuda",
	"SAINT VINCENT AND THE GRENADINES": "Saint Vincent and the Grenadines",
	"SAINT KITTS AND NEVIS":            "Saint Kitts and Nevis",
	"SAO TOME AND PRINCIPE":            "Sao Tome and Principe",
	"TIMOR-LESTE":                      "Timor-Leste",
	"DEMOCRATIC REPUBLIC OF THE CONGO": "Democratic Republic of the Congo",
	"CENTRAL AFRICAN REPUBLIC":         "Central African Republic",
}

// DisplayName converts an upper-case roster name to the spelling the map
// expects.
func DisplayName(country string) string {
	if name, ok := specialNames[country]; ok {
		return name
	}
	// Casers carry state, so one is built per call.
	return cases.Title(language.English).String(country)
}

//go:embed locations.txt
var defaultLocations []byte

// Resolver knows which location names the map can place.
type Resolver struct {
	known map[string]struct{}
}

// DefaultResolver accepts the built-in location list.
func DefaultResolver() *Resolver {
	r, err := ParseLocations(defaultLocations)
	if err != nil {
		panic(fmt.Sprintf("geo: embedded locations.txt is invalid: %v", err))
	}
	return r
}

// LoadResolver reads a location list, one name per line; lines starting with
// '#' are comments. An empty path yields the built-in list.
func LoadResolver(path string) (*Resolver, error) {
	if path == "" {
		return DefaultResolver(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations file: %w", err)
	}
	return ParseLocations(data)
}

// ParseLocations builds a resolver from a location list.
func ParseLocations(data []byte) (*Resolver, error) {
	r := &Resolver{known: map[string]struct{}{}}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.known[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve returns the map location for a roster name, or false when the map
// does not know it.
func (r *Resolver) Resolve(country string) (string, bool) {
	name := DisplayName(country)
	_, ok := r.known[name]
	return name, ok
}

// Len is the number of known locations.
func (r *Resolver) Len() int { return len(r.known) }

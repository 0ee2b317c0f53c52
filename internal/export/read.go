package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
)

// ReadCSV parses an export back into records. Columns are matched by header
// name, so their order does not matter.
func ReadCSV(r io.Reader) ([]dataset.Record, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header")
	}

	header := records[0]
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, k := range Columns {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	out := make([]dataset.Record, 0, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		get := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		var row dataset.Record
		row.Country = get("country")
		if row.Country == "" {
			return nil, fmt.Errorf("row %d: country is required", rowIdx+1)
		}
		if row.Date, err = time.Parse(dateLayout, get("date")); err != nil {
			return nil, fmt.Errorf("row %d: bad date: %w", rowIdx+1, err)
		}

		ints := []struct {
			name string
			dst  *int64
		}{
			{"total_vaccinations", &row.TotalVaccinations},
			{"daily_vaccinations", &row.DailyVaccinations},
			{"people_vaccinated", &row.PeopleVaccinated},
			{"people_fully_vaccinated", &row.PeopleFullyVaccinated},
		}
		for _, f := range ints {
			if *f.dst, err = strconv.ParseInt(get(f.name), 10, 64); err != nil {
				return nil, fmt.Errorf("row %d: bad %s: %w", rowIdx+1, f.name, err)
			}
		}
		if row.PopulationMillions, err = strconv.ParseFloat(get("population_millions"), 64); err != nil {
			return nil, fmt.Errorf("row %d: bad population_millions: %w", rowIdx+1, err)
		}
		if row.VaccinationRate, err = strconv.ParseFloat(get("vaccination_rate"), 64); err != nil {
			return nil, fmt.Errorf("row %d: bad vaccination_rate: %w", rowIdx+1, err)
		}

		out = append(out, row)
	}
	return out, nil
}

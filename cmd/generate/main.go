package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/regions"
	"github.com/PendemixAI/vax-tracker/internal/view"
)

var (
	seed    = flag.Int64("seed", 0, "Dataset seed (0 = derive from the clock)")
	mode    = flag.String("mode", string(dataset.ProgressMonotonic), "Progress mode: monotonic or legacy")
	option  = flag.String("option", string(export.AllCountries), "Export: current, all or top50")
	country = flag.String("country", view.DefaultCountry, "Country for the current-country export")
	region  = flag.String("region", regions.AllRegions, "Region filter for the current-country export")
	out     = flag.String("out", "", "Output path (default: the dashboard file name in the working directory, - for stdout)")
	verify  = flag.Bool("verify", false, "Read the written CSV back and check the row count")
)

func main() {
	flag.Parse()

	progress, err := dataset.ParseProgressMode(*mode)
	if err != nil {
		fatalf("%v", err)
	}
	opt, err := export.ParseOption(*option)
	if err != nil {
		fatalf("%v", err)
	}

	s := *seed
	if s == 0 {
		s = dataset.TimeSeed()
	}

	start := time.Now()
	table := dataset.NewGenerator(s, progress).Generate()
	fmt.Fprintf(os.Stderr, "Generated %d rows for %d countries (seed %d) in %s\n",
		table.Len(), len(table.Countries()), s, time.Since(start).Round(time.Millisecond))

	name := strings.ToUpper(strings.TrimSpace(*country))
	scope, err := view.Scope(table, regions.Default(), *region)
	if err != nil {
		fatalf("%v", err)
	}
	rows, err := export.Select(table, scope, opt, name)
	if err != nil {
		fatalf("select rows: %v", err)
	}
	if len(rows) == 0 {
		fatalf("%s", view.NoDataMessage(name))
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		fatalf("write csv: %v", err)
	}

	path := *out
	if path == "" {
		path = export.FileName(opt, name)
	}
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		w.Write(buf.Bytes())
		if err := w.Flush(); err != nil {
			fatalf("write stdout: %v", err)
		}
	} else {
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(rows), path)
	}

	if *verify {
		back, err := export.ReadCSV(bytes.NewReader(buf.Bytes()))
		if err != nil {
			fatalf("verify: %v", err)
		}
		if len(back) != len(rows) {
			fatalf("verify: wrote %d rows, read back %d", len(rows), len(back))
		}
		fmt.Fprintf(os.Stderr, "Verified %d rows\n", len(back))
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

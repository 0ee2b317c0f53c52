package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vax_datasets_generated_total",
			Help: "Total number of synthetic datasets generated",
		},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vax_dataset_generation_duration_seconds",
			Help:    "Duration of dataset generation",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1},
		},
	)

	exportsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vax_exports_total",
			Help: "Total number of CSV exports served",
		},
		[]string{"option"},
	)

	mapFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vax_map_fallbacks_total",
			Help: "Total number of map renders that degraded to the scatter chart",
		},
	)

	sessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vax_sessions_started_total",
			Help: "Total number of dashboard sessions started",
		},
	)

	chartsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vax_charts_rendered_total",
			Help: "Total number of charts rendered",
		},
		[]string{"kind", "status"},
	)
)

func ObserveGeneration(took time.Duration) {
	datasetsGenerated.Inc()
	generationDuration.Observe(took.Seconds())
}

func ObserveExport(option string) { exportsServed.WithLabelValues(option).Inc() }

func ObserveMapFallback() { mapFallbacks.Inc() }

func ObserveSessionStart() { sessionsStarted.Inc() }

func ObserveChart(kind string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	chartsRendered.WithLabelValues(kind, status).Inc()
}

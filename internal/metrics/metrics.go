package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggest_queries_total",
			Help: "Autosuggest queries by modifier group and outcome.",
		},
		[]string{"group", "outcome"},
	)
	runsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "suggest_runs_total",
			Help: "Completed keyword generation runs.",
		},
	)
	queryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggest_query_duration_seconds",
			Help:    "Duration of individual autosuggest queries.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, runsTotal, queryDuration)
	})
}

// RecordQuery records one autosuggest query outcome and its duration.
func RecordQuery(group string, hit bool, elapsed time.Duration) {
	outcome := "empty"
	if hit {
		outcome = "suggestions"
	}
	queriesTotal.WithLabelValues(group, outcome).Inc()
	queryDuration.Observe(elapsed.Seconds())
}

// RecordRun counts one completed generation run.
func RecordRun() {
	runsTotal.Inc()
}

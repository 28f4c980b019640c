package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImportRuns counts executed import runs by final status (success/error).
	ImportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trust_console_import_runs_total",
		Help: "Completed member import runs by final status.",
	}, []string{"status"})

	// ImportRows counts processed import rows by outcome.
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trust_console_import_rows_total",
		Help: "Processed member import rows by outcome (created/updated/skipped/failed/invalid).",
	}, []string{"outcome"})
)

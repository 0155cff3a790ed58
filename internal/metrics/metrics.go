// Package metrics holds the Prometheus instruments for the import pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImportBatches counts reconciliation runs by paste kind and outcome.
	ImportBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "englishnet_import_batches_total",
		Help: "Import batches processed, by kind (roster, results, class_changes) and outcome.",
	}, []string{"kind", "outcome"})

	// ImportRows counts what happened to individual pasted rows.
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "englishnet_import_rows_total",
		Help: "Row decisions made by the importers, by kind and result.",
	}, []string{"kind", "result"})
)

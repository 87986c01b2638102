// Package metrics exposes counters for the result decoding layer. They are
// registered on the default Prometheus registry; embedding servers scrape
// them through their own /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SegmentsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopdb_traverse_segments_indexed_total",
		Help: "Number of result segments successfully indexed.",
	})
	SegmentsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopdb_traverse_segments_rejected_total",
		Help: "Number of result segments rejected for schema violations.",
	})
	LogicalRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopdb_traverse_logical_rows_total",
		Help: "Number of logical rows produced by segment expansion.",
	})
	SkippedCells = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopdb_traverse_skipped_cells_total",
		Help: "Number of non-list cells and elements skipped while expanding edge columns.",
	})
)

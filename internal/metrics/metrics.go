package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the metrics of a single generator run. A dedicated
// registry keeps Go runtime collectors out of the textfile dump.
var Registry = prometheus.NewRegistry()

var (
	RowsGenerated = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "txgen_rows_generated_total",
			Help: "Total number of data rows written",
		},
	)

	BytesWritten = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "txgen_bytes_written_total",
			Help: "Total number of bytes written to the output stream",
		},
	)

	GenerationDuration = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "txgen_generation_duration_seconds",
			Help:    "Time taken to generate the CSV output",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4m
		},
	)

	OutputErrors = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "txgen_output_errors_total",
			Help: "Total number of runs aborted by an output stream failure",
		},
	)

	LastRunInfo = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "txgen_last_run_info",
			Help: "Digest of the output produced by the last successful run",
		},
		[]string{"sha256"},
	)
)

// RecordRun records a successful generator run
func RecordRun(rows, bytes int64, seconds float64, sha256 string) {
	RowsGenerated.Add(float64(rows))
	BytesWritten.Add(float64(bytes))
	GenerationDuration.Observe(seconds)

	LastRunInfo.Reset()
	LastRunInfo.WithLabelValues(sha256).Set(1)
}

// WriteTextfile dumps the registry in the Prometheus text exposition format
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/draganm/txgen/internal/metrics"
	"github.com/draganm/txgen/internal/models"
	"github.com/draganm/txgen/internal/utils"
)

// Config holds generator configuration
type Config struct {
	// Rows is the number of data rows to emit. Zero or negative values
	// produce the header only.
	Rows int64
}

// Stats describes the stream produced by a run
type Stats struct {
	Rows     int64
	Bytes    int64
	SHA256   string
	Duration time.Duration
}

// Generator writes the synthetic deposit CSV
type Generator struct {
	cfg *Config
}

// New creates a new generator
func New(cfg *Config) *Generator {
	return &Generator{
		cfg: cfg,
	}
}

// Write emits the header followed by cfg.Rows data rows to w in
// increasing tx order. A failing w aborts the run with an error
// wrapping ErrOutput.
func (g *Generator) Write(w io.Writer) (*Stats, error) {
	start := time.Now()
	slog.Debug("Generating CSV", "rows", g.cfg.Rows)

	dw := utils.NewDigestWriter(w)
	cw := csv.NewWriter(dw)

	if err := cw.Write(models.Header); err != nil {
		return nil, g.outputFailure(fmt.Errorf("failed to write header: %w: %w", ErrOutput, err))
	}

	var i int64
	for i = 0; i < g.cfg.Rows; i++ {
		if err := cw.Write(models.RowAt(i).Fields()); err != nil {
			return nil, g.outputFailure(fmt.Errorf("failed to write row %d: %w: %w", i, ErrOutput, err))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, g.outputFailure(fmt.Errorf("failed to flush output after %d rows: %w: %w", i, ErrOutput, err))
	}

	stats := &Stats{
		Rows:     i,
		Bytes:    dw.Count(),
		SHA256:   dw.SHA256(),
		Duration: time.Since(start),
	}

	metrics.RecordRun(stats.Rows, stats.Bytes, stats.Duration.Seconds(), stats.SHA256)

	slog.Info("Generated CSV",
		"rows", stats.Rows,
		"bytes", stats.Bytes,
		"sha256", stats.SHA256,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (g *Generator) outputFailure(err error) error {
	metrics.OutputErrors.Inc()
	return err
}

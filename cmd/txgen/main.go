package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/draganm/txgen/internal/generator"
	"github.com/draganm/txgen/internal/metrics"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if err != nil {
		log.Error("Error running app", "error", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Only CSV data goes to stdout; usage, help and
// logs go to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	rows := &rowCount{}

	return &cli.App{
		Name:            "txgen",
		Usage:           "Write a synthetic deposit transactions CSV to stdout",
		HideHelpCommand: true,
		Writer:          stderr,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:     "rows",
				Value:    rows,
				Aliases:  []string{"n"},
				Usage:    "how many rows to generate",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "write run metrics in Prometheus text format to this file",
			},
		},
		Before: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
			}

			runID := fmt.Sprintf("txgen-%s", uuid.New().String()[:8])
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger.With("run_id", runID))
			return nil
		},
		Action: func(c *cli.Context) (err error) {
			// The textfile is written on failure too, so output errors
			// reach the collector.
			if path := c.String("metrics-textfile"); path != "" {
				defer func() {
					if werr := metrics.WriteTextfile(path); werr != nil {
						err = errors.Join(err, werr)
						return
					}
					slog.Debug("Wrote metrics textfile", "path", path)
				}()
			}

			cfg := &generator.Config{
				Rows: rows.value,
			}

			if _, err := generator.New(cfg).Write(stdout); err != nil {
				return fmt.Errorf("failed to generate CSV: %w", err)
			}

			return nil
		},
	}
}

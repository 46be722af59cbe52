// Package generation provides the commands that produce images: the
// flag-driven generate command and the interactive form.
package generation

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/event"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
	"github.com/Iron-Ham/dialogorithm/internal/metrics"
	"github.com/Iron-Ham/dialogorithm/internal/pipeline"
	"github.com/Iron-Ham/dialogorithm/internal/render"
)

// Wrapper for the external toolchain to allow testing
var newRasterizer = func(cfg config.RenderConfig, logger *logging.Logger) render.Rasterizer {
	return render.NewLatexRasterizer(cfg, logger)
}

// Register adds the generation commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(generateCmd)
	parent.AddCommand(formCmd)
}

// openLogger returns the file logger configured under logging.*, or a logger
// that discards everything when logging is disabled.
func openLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLoggerWithRotation(config.LogDir(), logging.ParseLevel(cfg.Logging.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

// app bundles what a command needs to run generations.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	bus    *event.Bus
	gen    *pipeline.Generator
}

func newApp(cfg *config.Config, opts ...pipeline.Option) (*app, error) {
	logger, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}
	bus := event.NewBus(logger)
	gen, err := pipeline.NewGenerator(pipeline.Config{
		Config:     cfg,
		Rasterizer: newRasterizer(cfg.Render, logger),
		Logger:     logger,
		Metrics:    metrics.New(),
		Bus:        bus,
	}, opts...)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, bus: bus, gen: gen}, nil
}

func (a *app) Close() error {
	return a.logger.Close()
}

// printResult writes the artifact summary of a successful run.
func printResult(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "Image:        %s\n", res.ImagePath)
	if res.VerificationPath != "" {
		fmt.Fprintf(w, "Verification: %s\n", res.VerificationPath)
	}
	fmt.Fprintf(w, "Number:       %s\n", res.Display)
	fmt.Fprintf(w, "Signature:    %s\n", res.Signature)
	fmt.Fprintf(w, "Run:          %s\n", res.RunID)
	if res.Duplicates > 0 {
		fmt.Fprintf(w, "Warning: %d expressions repeat an earlier one\n", res.Duplicates)
	}
	if res.Placeholders > 0 {
		fmt.Fprintf(w, "Warning: %d symbols had no expressions and use a placeholder\n", res.Placeholders)
	}
}

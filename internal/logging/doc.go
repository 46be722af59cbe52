// Package logging provides structured logging for Dialogorithm runs.
//
// Log lines are JSON objects produced by log/slog. A root [Logger] is created
// once by the command layer from configuration and handed to the pipeline,
// which derives a child per generation:
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	runLog := logger.WithRun(runID).WithStage("render")
//	runLog.Error("rasterizer failed", "tool", "pdflatex", "output", out)
//
// Output:
//
//	{"time":"...","level":"ERROR","msg":"rasterizer failed","run_id":"...","stage":"render","tool":"pdflatex","output":"..."}
//
// # Rotation
//
// [RotatingWriter] rolls the file over once it would exceed
// [RotationConfig.MaxSizeMB], keeping MaxBackups older files and gzipping them
// when Compress is set.
//
// Tests and callers that do not care about output use [NopLogger].
package logging

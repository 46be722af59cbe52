package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
)

// jobName is the base name of every file in the scratch directory.
const jobName = "phone_formula"

// waitDelay bounds how long a killed tool may keep its output pipes open.
const waitDelay = 2 * time.Second

// Rasterizer converts a LaTeX source into PNG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, source string, dpi int) ([]byte, error)
}

// LatexRasterizer runs pdflatex then pdftoppm in a scratch directory that is
// removed before Rasterize returns.
type LatexRasterizer struct {
	LatexCommand   string
	RasterCommand  string
	CompileTimeout time.Duration
	ConvertTimeout time.Duration
	logger         *logging.Logger
}

// NewLatexRasterizer builds a rasterizer from the render configuration.
func NewLatexRasterizer(cfg config.RenderConfig, logger *logging.Logger) *LatexRasterizer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &LatexRasterizer{
		LatexCommand:   cfg.LatexCommand,
		RasterCommand:  cfg.RasterCommand,
		CompileTimeout: cfg.CompileTimeout,
		ConvertTimeout: cfg.ConvertTimeout,
		logger:         logger.WithStage("rasterize"),
	}
}

// Rasterize compiles source to PDF and converts the first page to PNG at dpi.
func (r *LatexRasterizer) Rasterize(ctx context.Context, source string, dpi int) ([]byte, error) {
	dir, err := os.MkdirTemp("", "dialogorithm-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scratch directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			r.logger.Warn("failed to remove scratch directory", "dir", dir, "error", rmErr)
		}
	}()

	texPath := filepath.Join(dir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(source), 0o600); err != nil {
		return nil, errors.Wrap(err, "failed to write LaTeX source")
	}

	out, err := r.run(ctx, dir, r.CompileTimeout, "compile", r.LatexCommand,
		"-interaction=nonstopmode",
		"-output-directory="+dir,
		texPath,
	)
	if err != nil {
		return nil, err
	}
	pdfPath := filepath.Join(dir, jobName+".pdf")
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return nil, errors.NewRenderError(r.LatexCommand, "PDF not generated",
			fmt.Errorf("%w: %w", errors.ErrArtifactMissing, statErr)).
			WithOutput(out)
	}

	out, err = r.run(ctx, dir, r.ConvertTimeout, "convert", r.RasterCommand,
		"-png", "-singlefile",
		"-r", strconv.Itoa(dpi),
		pdfPath,
		filepath.Join(dir, jobName),
	)
	if err != nil {
		return nil, err
	}
	png, readErr := os.ReadFile(filepath.Join(dir, jobName+".png"))
	if readErr != nil {
		return nil, errors.NewRenderError(r.RasterCommand, "PNG not generated",
			fmt.Errorf("%w: %w", errors.ErrArtifactMissing, readErr)).
			WithOutput(out)
	}

	r.logger.Debug("rasterized document", "dpi", dpi, "bytes", len(png))
	return png, nil
}

// run executes tool under its own timeout and returns the combined output.
func (r *LatexRasterizer) run(ctx context.Context, dir string, timeout time.Duration, step, tool string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	start := time.Now()
	raw, err := cmd.CombinedOutput()
	output := string(raw)
	r.logger.Debug("tool finished",
		"tool", tool,
		"step", step,
		"duration", time.Since(start),
		"error", err,
	)
	if err == nil {
		return output, nil
	}

	switch ctx.Err() {
	case context.DeadlineExceeded:
		cause := errors.NewTimeoutError(fmt.Sprintf("%s %s", tool, step), timeout)
		return output, errors.NewRenderError(tool, step+" timeout", cause).WithOutput(output)
	case context.Canceled:
		return output, errors.NewRenderError(tool, step+" canceled", errors.ErrCanceled).
			WithSeverity(errors.SeverityWarning).
			WithOutput(output)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, errors.NewRenderError(tool, step+" failed", err).
			WithExitCode(exitErr.ExitCode()).
			WithOutput(output)
	}
	return output, errors.NewRenderError(tool, step+" could not start", err).WithOutput(output)
}

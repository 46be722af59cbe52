package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
)

// DefaultImageName is the file the image is written to when none is configured.
const DefaultImageName = "Dialogorithm_Contact.png"

// DefaultDPI is the rasterization resolution when none is configured.
const DefaultDPI = 600

// Options configures where and how a Renderer writes its image.
type Options struct {
	OutputDir string
	ImageName string
	DPI       int
}

// Renderer builds, rasterizes and stores the image for a document.
type Renderer struct {
	rasterizer Rasterizer
	opts       Options
	logger     *logging.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(r Rasterizer, opts Options, logger *logging.Logger) *Renderer {
	if opts.ImageName == "" {
		opts.ImageName = DefaultImageName
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Renderer{rasterizer: r, opts: opts, logger: logger.WithStage("render")}
}

// ImagePath returns where Render writes the image.
func (r *Renderer) ImagePath() string {
	return filepath.Join(r.opts.OutputDir, r.opts.ImageName)
}

// Render rasterizes doc and writes the PNG to ImagePath, replacing any
// previous image. Nothing is written when rasterization fails.
func (r *Renderer) Render(ctx context.Context, doc *compose.Document) (string, error) {
	source := BuildDocument(doc)
	png, err := r.rasterizer.Rasterize(ctx, source, r.opts.DPI)
	if err != nil {
		var renderErr *errors.RenderError
		if errors.As(err, &renderErr) {
			r.logger.Error("rasterization failed",
				"tool", renderErr.Tool,
				"exit_code", renderErr.ExitCode,
				"output", renderErr.Output,
				"error", err,
			)
		} else {
			r.logger.Error("rasterization failed", "error", err)
		}
		return "", err
	}
	if len(png) == 0 {
		return "", errors.NewRenderError("", "rasterizer returned an empty image", nil)
	}

	path := r.ImagePath()
	if err := writeFileAtomic(path, png); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", path)
	}
	r.logger.Info("image written", "path", path, "bytes", len(png))
	return path, nil
}

// writeFileAtomic writes data to a temporary sibling of path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".dialogorithm-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

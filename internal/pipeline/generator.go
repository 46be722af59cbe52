package pipeline

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/event"
	"github.com/Iron-Ham/dialogorithm/internal/expression"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
	"github.com/Iron-Ham/dialogorithm/internal/metrics"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
	"github.com/Iron-Ham/dialogorithm/internal/render"
	"github.com/Iron-Ham/dialogorithm/internal/signature"
)

// Config holds the collaborators of a Generator. Only Config is required in
// practice; nil fields get working defaults.
type Config struct {
	Config     *config.Config
	Rasterizer render.Rasterizer
	Bank       *expression.Bank
	Logger     *logging.Logger
	Metrics    *metrics.Metrics
	Bus        *event.Bus
}

// Result describes a successful generation.
type Result struct {
	RunID            string
	Display          string
	Signature        string
	ImagePath        string
	VerificationPath string
	Document         *compose.Document
	Duplicates       int
	Placeholders     int
}

// Generator runs generations. It is safe for concurrent use; each run has
// its own random source and UsedSet.
type Generator struct {
	cfg        *config.Config
	rasterizer render.Rasterizer
	bank       *expression.Bank
	logger     *logging.Logger
	metrics    *metrics.Metrics
	bus        *event.Bus

	now   func() time.Time
	seed  func() uint64
	runID func() string
}

// NewGenerator creates a Generator. The configuration is validated up front.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if cfg.Config == nil {
		cfg.Config = config.Default()
	}
	if errs := cfg.Config.Validate(); len(errs) > 0 {
		return nil, config.ValidationErrors(errs)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger()
	}
	if cfg.Bank == nil {
		cfg.Bank = expression.Default()
	}
	if cfg.Rasterizer == nil {
		cfg.Rasterizer = render.NewLatexRasterizer(cfg.Config.Render, cfg.Logger)
	}

	g := &Generator{
		cfg:        cfg.Config,
		rasterizer: cfg.Rasterizer,
		bank:       cfg.Bank,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		bus:        cfg.Bus,
		now:        time.Now,
		seed:       rand.Uint64,
		runID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Validate checks req against the configured minimum length and the
// country's digit limit, returning the local digits.
func (g *Generator) Validate(req Request) (string, error) {
	return ValidateRequest(req, g.cfg.Compose.MinLocalDigits)
}

// Generate validates req, then composes and renders "+<code> <formatted>".
// The verification file is written before rendering starts, so it is left in
// the output directory even when the render fails; the image never is.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	r := g.startRun()
	r.logger.Info("generation started",
		"calling_code", req.CallingCode,
		"local_digits", len(req.LocalNumber),
	)

	local, err := g.Validate(req)
	if err != nil {
		return nil, r.fail(metrics.OutcomeValidationError, err)
	}
	display := phoneformat.InternationalDisplay(local, req.CallingCode)
	sig := signature.Resolve(g.signatureChoice(req.Signature), req.CustomSignature, r.rng)
	return g.generate(ctx, r, display, sig)
}

// GenerateRaw composes and renders a free-form number. Only an input with no
// digits at all is rejected. sig may be a signature choice such as Random,
// or literal heading text.
func (g *Generator) GenerateRaw(ctx context.Context, number, sig string) (*Result, error) {
	r := g.startRun()
	r.logger.Info("generation started", "raw", true)

	display, err := RawDisplay(number)
	if err != nil {
		if errors.Is(err, errors.ErrEmptyInput) {
			return nil, r.fail(metrics.OutcomeValidationError, err)
		}
		display = strings.TrimSpace(number)
	}
	sig = signature.Resolve(g.signatureChoice(strings.TrimSpace(sig)), "", r.rng)
	return g.generate(ctx, r, display, sig)
}

func (g *Generator) signatureChoice(choice string) string {
	if choice == "" {
		return g.cfg.Signature.Default
	}
	return choice
}

func (g *Generator) generate(ctx context.Context, r *run, display, sig string) (*Result, error) {
	r.enter(event.StageCompose)
	composer := compose.New(g.bank, compose.Options{
		MaxAttempts: g.cfg.Compose.MaxUniqueAttempts,
		Strict:      g.cfg.Compose.StrictUnique,
		LineColumns: g.cfg.Compose.LineColumns,
	}, r.logger)
	doc, err := composer.Compose(r.rng, display, sig)
	if err != nil {
		return nil, r.fail(metrics.OutcomeComposeError, err)
	}
	r.duplicates, r.placeholders = doc.Duplicates, doc.Placeholders
	g.metrics.AddDegradations(doc.Duplicates, doc.Placeholders)

	res := &Result{
		RunID:        r.id,
		Display:      display,
		Signature:    sig,
		Document:     doc,
		Duplicates:   doc.Duplicates,
		Placeholders: doc.Placeholders,
	}

	outDir := g.cfg.Output.ResolveDir()
	if g.cfg.Output.Verification {
		r.enter(event.StageVerify)
		path, err := render.WriteVerification(outDir, doc, g.now())
		if err != nil {
			r.logger.Warn("failed to write verification file", "dir", outDir, "error", err)
			g.metrics.IncrementVerificationFailure()
		} else {
			res.VerificationPath = path
			r.logger.Info("verification file written", "path", path)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, r.fail(metrics.OutcomeRenderError, errors.Wrap(errors.ErrCanceled, err.Error()))
	}

	r.enter(event.StageRender)
	renderer := render.NewRenderer(g.rasterizer, render.Options{
		OutputDir: outDir,
		ImageName: g.cfg.Output.ImageName,
		DPI:       g.cfg.Render.DPI,
	}, r.logger)
	res.ImagePath, err = renderer.Render(ctx, doc)
	if err != nil {
		return nil, r.fail(metrics.OutcomeRenderError, err)
	}

	r.succeed(res.ImagePath)
	return res, nil
}

// run tracks one generation's identity, randomness and stage timing.
type run struct {
	g            *Generator
	id           string
	logger       *logging.Logger
	rng          *rand.Rand
	stage        event.Stage
	started      time.Time
	stageStarted time.Time
	duplicates   int
	placeholders int
}

func (g *Generator) startRun() *run {
	id := g.runID()
	seed := g.seed()
	now := g.now()
	r := &run{
		g:            g,
		id:           id,
		logger:       g.logger.WithRun(id),
		rng:          expression.NewRand(seed),
		started:      now,
		stageStarted: now,
	}
	r.logger.Debug("run seeded", "seed", seed)
	r.enter(event.StageValidate)
	return r
}

// enter moves the run to stage, recording the time spent in the previous one.
func (r *run) enter(stage event.Stage) {
	now := r.g.now()
	previous := r.stage
	if previous != "" {
		r.g.metrics.ObserveStage(string(previous), now.Sub(r.stageStarted))
	}
	r.stage, r.stageStarted = stage, now
	r.logger.Debug("stage changed", "from", string(previous), "to", string(stage))
	r.g.bus.Publish(event.NewStageChangedEvent(r.id, previous, stage))
}

func (r *run) fail(outcome string, err error) error {
	failedIn := r.stage
	r.enter(event.StageFailed)

	level := r.logger.Error
	if errors.GetSeverity(err) < errors.SeverityError {
		level = r.logger.Warn
	}
	level("generation failed", "stage", string(failedIn), "error", err)

	r.finish(outcome, "", err)
	return err
}

func (r *run) succeed(imagePath string) {
	r.enter(event.StageDone)
	r.logger.Info("generation finished",
		"image", imagePath,
		"duplicates", r.duplicates,
		"placeholders", r.placeholders,
	)
	r.finish(metrics.OutcomeSuccess, imagePath, nil)
}

func (r *run) finish(outcome, imagePath string, err error) {
	g := r.g
	g.metrics.IncrementOutcome(outcome)
	if werr := g.metrics.WriteTextfile(g.cfg.Metrics.Textfile); werr != nil {
		r.logger.Warn("failed to write metrics textfile", "path", g.cfg.Metrics.Textfile, "error", werr)
	}
	g.bus.Publish(event.NewGenerationCompletedEvent(
		r.id, imagePath, err, r.duplicates, r.placeholders, g.now().Sub(r.started)))
}

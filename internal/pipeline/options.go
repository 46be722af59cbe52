package pipeline

import "time"

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for verification timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithSeeds sets the source of per-run random seeds. Tests use a fixed seed
// to make the drawn expressions reproducible.
func WithSeeds(seed func() uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRunIDs sets the run id generator.
func WithRunIDs(next func() string) Option {
	return func(g *Generator) {
		g.runID = next
	}
}

// Package sssp selects between the classical Dijkstra oracle and the
// BMSSP-based fast_sssp algorithm, derives the k/t/L parameters once, and
// exposes the single Compute entry point both share.
//
// Complexity:
//   - AlgoFastSSSP: the BMSSP recursion followed by a full Dijkstra
//     reconciliation sweep over every vertex it reached, so the total is
//     not bounded by O(m * log^(2/3) n); the sweep alone costs
//     O((n + m) log n).
//   - AlgoDijkstra: O((n + m) log n).
package sssp

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors surfaced across the Compute boundary.
var (
	// ErrSourceOutOfRange indicates the requested source vertex does not
	// exist in the graph.
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

	// ErrInvalidConfig indicates a Config field was set to a value that
	// has no well-defined meaning (e.g. a non-positive override).
	ErrInvalidConfig = errors.New("sssp: invalid config")

	// ErrAborted indicates Config.Context was cancelled before Compute
	// finished. Partial relaxations already applied remain valid upper
	// bounds, but Compute returns no Result when this occurs.
	ErrAborted = errors.New("sssp: aborted")
)

// Algorithm tags which shortest-path algorithm Compute runs.
type Algorithm int

const (
	// AlgoFastSSSP runs the BMSSP recursion (the default).
	AlgoFastSSSP Algorithm = iota
	// AlgoDijkstra runs the classical binary-heap oracle.
	AlgoDijkstra
)

// defaultBaseThreshold is the vertex count at or below which Compute falls
// through to classical Dijkstra regardless of Algorithm, since BMSSP's
// asymptotic win only materializes for larger sparse graphs.
const defaultBaseThreshold = 64

// Config holds the knobs of a single Compute call. Use the With* functional
// options to build one; the zero value is not meant to be constructed by
// hand, because its Algorithm value (AlgoFastSSSP) is meaningful but its
// BaseThreshold must default to defaultBaseThreshold rather than 0.
type Config struct {
	Algorithm     Algorithm
	KOverride     int
	TOverride     int
	LevelOverride int
	BaseThreshold int
	Context       context.Context
	Logger        *zap.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithAlgorithm selects which algorithm Compute runs.
func WithAlgorithm(a Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithKOverride pins the Find-Pivots/base-case parameter k instead of
// deriving it from n.
func WithKOverride(k int) Option {
	return func(c *Config) { c.KOverride = k }
}

// WithTOverride pins the block-size exponent parameter t instead of
// deriving it from n.
func WithTOverride(t int) Option {
	return func(c *Config) { c.TOverride = t }
}

// WithLevelOverride pins the top-level recursion depth L instead of
// deriving it from n and t.
func WithLevelOverride(level int) Option {
	return func(c *Config) { c.LevelOverride = level }
}

// WithBaseThreshold sets the vertex count at or below which Compute always
// falls through to classical Dijkstra.
func WithBaseThreshold(n int) Option {
	return func(c *Config) { c.BaseThreshold = n }
}

// WithContext attaches a cancellation context; BMSSP checks it once per
// recursion frame and aborts without corrupting partial results. Ignored
// by AlgoDijkstra.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.Context = ctx }
}

// WithLogger attaches a structured logger for Compute's run-level log
// lines: which algorithm runs, n, m, the derived k, t and L, and a warning
// on abort. Individual BMSSP frames are not logged. The default is a no-op
// logger; pass zap.NewDevelopment() or similar to see the lines.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// Result is the outcome of a successful Compute call.
type Result struct {
	// Distances[v] is the shortest-path distance from the source to v, or
	// math.Inf(1) if v is unreachable.
	Distances []float64
	// Predecessors[v] is the tail of the last edge that tightened
	// Distances[v], or distance.NoPred if v is the source or unreached.
	Predecessors []int32
}

// resolveConfig applies defaults and validates overrides. It never treats
// a zero override as "set" — zero is the un-set sentinel for every
// override field — so WithKOverride(0) leaves k derived from n rather than
// requesting k=0; only negative values are rejected.
func resolveConfig(opts []Option) (Config, error) {
	cfg := Config{
		Algorithm:     AlgoFastSSSP,
		BaseThreshold: defaultBaseThreshold,
		Context:       context.Background(),
		Logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.KOverride < 0 {
		return cfg, errInvalidField("KOverride")
	}
	if cfg.TOverride < 0 {
		return cfg, errInvalidField("TOverride")
	}
	if cfg.LevelOverride < 0 {
		return cfg, errInvalidField("LevelOverride")
	}
	if cfg.BaseThreshold < 0 {
		return cfg, errInvalidField("BaseThreshold")
	}
	return cfg, nil
}

func errInvalidField(field string) error {
	return &invalidConfigError{field: field}
}

type invalidConfigError struct{ field string }

func (e *invalidConfigError) Error() string {
	return "sssp: invalid config field " + e.field
}
func (e *invalidConfigError) Unwrap() error { return ErrInvalidConfig }

// deriveParams computes k, t, L from n, with floors of 1 on every
// parameter so tiny graphs never derive a degenerate (zero) block size or
// fan-out. Overrides, when non-zero, replace the derived value outright.
func deriveParams(n int, cfg Config) (k, t, level int) {
	logN := math.Log2(float64(n))
	if logN < 1 {
		logN = 1
	}

	t = int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 1 {
		t = 1
	}
	k = int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 1 {
		k = 1
	}

	lnN := math.Log(float64(n))
	level = int(math.Ceil(lnN / float64(t)))
	if level < 1 {
		level = 1
	}

	if cfg.KOverride > 0 {
		k = cfg.KOverride
	}
	if cfg.TOverride > 0 {
		t = cfg.TOverride
	}
	if cfg.LevelOverride > 0 {
		level = cfg.LevelOverride
	}
	return k, t, level
}

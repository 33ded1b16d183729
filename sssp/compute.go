package sssp

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/pmaojo/fast-sssp/bmssp"
	"github.com/pmaojo/fast-sssp/dijkstra"
	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/graph"
)

// Compute runs shortest-path computation from source over g per the given
// options, and returns the full distance/predecessor table on success.
// Either the whole computation succeeds and Result is populated, or it
// fails atomically and no Result is returned (all-or-nothing partial-failure
// semantics: no partial distance table is ever handed back to the caller).
//
// Pass WithLogger to see the run-level log lines (algorithm, n, m, k, t,
// L, abort); individual BMSSP frames are not logged. The default is silent.
func Compute(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger

	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, n)
	}

	if cfg.Algorithm == AlgoDijkstra || n <= cfg.BaseThreshold {
		logger.Info("sssp: falling through to classical dijkstra",
			zap.Int("n", n), zap.Int("base_threshold", cfg.BaseThreshold),
			zap.String("requested_algorithm", algoName(cfg.Algorithm)))
		dt, err := dijkstra.Compute(g, source)
		if err != nil {
			return nil, err
		}
		d, pred := dt.Snapshot()
		return &Result{Distances: d, Predecessors: pred}, nil
	}

	k, t, level := deriveParams(n, cfg)
	logger.Info("sssp: running fast_sssp",
		zap.Int("n", n), zap.Int("m", g.EdgeCount()),
		zap.Int("k", k), zap.Int("t", t), zap.Int("level", level))

	dt := distance.NewTable(n, source)
	params := bmssp.Params{K: k, T: t}

	_, _, err = bmssp.Run(cfg.Context, g, dt, params, level, math.Inf(1), []int{source})
	if err != nil {
		logger.Warn("sssp: aborted", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	// The top-level recursion's own size cap (k * 2^(level*t)) can be
	// smaller than n, so BMSSP alone can leave some reachable vertices
	// still tentative. A Dijkstra sweep seeded from whatever BMSSP already
	// settled finalizes the rest; it is a no-op wherever BMSSP's answer was
	// already optimal.
	dijkstra.Reconcile(g, dt)

	d, pred := dt.Snapshot()
	return &Result{Distances: d, Predecessors: pred}, nil
}

func algoName(a Algorithm) string {
	switch a {
	case AlgoDijkstra:
		return "dijkstra"
	case AlgoFastSSSP:
		return "fast_sssp"
	default:
		return "unknown"
	}
}

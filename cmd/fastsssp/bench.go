package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmaojo/fast-sssp/graphio"
	"github.com/pmaojo/fast-sssp/sssp"
)

// newBenchCmd runs fast_sssp and classical Dijkstra back-to-back, never
// concurrently, and prints their wall-clock times side by side, as a
// sanity check rather than a rigorous benchmark harness.
func newBenchCmd(ctx context.Context, logger *zap.Logger) *cobra.Command {
	var graphPath string
	var source int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare fast_sssp against classical Dijkstra on a DIMACS .gr graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(graphPath)
			if err != nil {
				return fmt.Errorf("fastsssp bench: %w", err)
			}
			defer f.Close()

			g, err := graphio.ReadGr(f)
			if err != nil {
				return fmt.Errorf("fastsssp bench: %w", err)
			}

			start := time.Now()
			fastRes, err := sssp.Compute(g, source,
				sssp.WithAlgorithm(sssp.AlgoFastSSSP),
				sssp.WithContext(ctx),
				sssp.WithLogger(logger),
				sssp.WithBaseThreshold(0),
			)
			if err != nil {
				return fmt.Errorf("fastsssp bench: fast_sssp: %w", err)
			}
			fastElapsed := time.Since(start)

			start = time.Now()
			dijkstraRes, err := sssp.Compute(g, source,
				sssp.WithAlgorithm(sssp.AlgoDijkstra),
				sssp.WithContext(ctx),
				sssp.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("fastsssp bench: dijkstra: %w", err)
			}
			dijkstraElapsed := time.Since(start)

			mismatches := 0
			for v := range fastRes.Distances {
				if fastRes.Distances[v] != dijkstraRes.Distances[v] {
					mismatches++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n=%d m=%d\n", g.VertexCount(), g.EdgeCount())
			fmt.Fprintf(out, "fast_sssp:  %s\n", fastElapsed)
			fmt.Fprintf(out, "dijkstra:   %s\n", dijkstraElapsed)
			fmt.Fprintf(out, "mismatches: %d\n", mismatches)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "path to a DIMACS .gr file")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "0-based source vertex")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmaojo/fast-sssp/graph"
	"github.com/pmaojo/fast-sssp/graphgen"
	"github.com/pmaojo/fast-sssp/graphio"
)

func newGenCmd() *cobra.Command {
	var topology string
	var n, cols, m0 int
	var p float64
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a structured or random graph and write it as DIMACS .gr",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := generate(topology, n, cols, m0, p, seed)
			if err != nil {
				return fmt.Errorf("fastsssp gen: %w", err)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("fastsssp gen: %w", err)
				}
				defer f.Close()
				w = f
			}
			return graphio.WriteGr(w, g)
		},
	}

	cmd.Flags().StringVarP(&topology, "topology", "t", "path", "path|cycle|grid|complete|random_sparse|random_dense|scale_free")
	cmd.Flags().IntVarP(&n, "n", "n", 100, "vertex count")
	cmd.Flags().IntVar(&cols, "cols", 10, "grid column count (topology=grid; n is used as rows)")
	cmd.Flags().IntVar(&m0, "m0", 3, "seed clique size (topology=scale_free)")
	cmd.Flags().Float64VarP(&p, "p", "p", 0.1, "edge probability (topology=random_sparse|random_dense)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path (default: stdout)")

	return cmd
}

func generate(topology string, n, cols, m0 int, p float64, seed int64) (*graph.Graph, error) {
	opt := graphgen.WithSeed(seed)
	switch topology {
	case "path":
		return graphgen.Path(n, opt)
	case "cycle":
		return graphgen.Cycle(n, opt)
	case "grid":
		return graphgen.Grid(n, cols, opt)
	case "complete":
		return graphgen.Complete(n, opt)
	case "random_sparse":
		return graphgen.RandomSparse(n, p, opt)
	case "random_dense":
		return graphgen.RandomDense(n, p, opt)
	case "scale_free":
		return graphgen.ScaleFree(n, m0, opt)
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}

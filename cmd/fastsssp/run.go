package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pmaojo/fast-sssp/graphio"
	"github.com/pmaojo/fast-sssp/sssp"
)

func newRunCmd(ctx context.Context, logger *zap.Logger) *cobra.Command {
	var graphPath string
	var source int
	var algorithm string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute single-source shortest paths from a DIMACS .gr file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(graphPath)
			if err != nil {
				return fmt.Errorf("fastsssp run: %w", err)
			}
			defer f.Close()

			g, err := graphio.ReadGr(f)
			if err != nil {
				return fmt.Errorf("fastsssp run: %w", err)
			}

			algo := sssp.AlgoFastSSSP
			if algorithm == "dijkstra" {
				algo = sssp.AlgoDijkstra
			}

			res, err := sssp.Compute(g, source,
				sssp.WithAlgorithm(algo),
				sssp.WithContext(ctx),
				sssp.WithLogger(logger),
				sssp.WithBaseThreshold(viper.GetInt("base-threshold")),
			)
			if err != nil {
				return fmt.Errorf("fastsssp run: %w", err)
			}

			for v, d := range res.Distances {
				if math.IsInf(d, 1) {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\tunreachable\n", v)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%g\n", v, d)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "path to a DIMACS .gr file")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "0-based source vertex")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fast_sssp", "fast_sssp or dijkstra")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

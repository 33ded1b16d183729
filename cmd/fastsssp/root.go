package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Execute builds the cobra command tree and runs it, exiting the process
// with a non-zero status on failure.
func Execute(ctx context.Context) {
	var verbose bool
	var cfgFile string
	logger := zap.NewNop()

	root := &cobra.Command{
		Use:           "fastsssp",
		Short:         "Single-source shortest paths via the BMSSP recursion, with a classical Dijkstra oracle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			viper.SetDefault("base-threshold", 64)
			viper.SetDefault("algorithm", "fast_sssp")
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("fastsssp: reading config: %w", err)
				}
			}

			built, err := buildLogger(verbose)
			if err != nil {
				return err
			}
			*logger = *built
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (yaml/json/toml) layered under flags")

	root.AddCommand(newRunCmd(ctx, logger))
	root.AddCommand(newBenchCmd(ctx, logger))
	root.AddCommand(newGenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fastsssp:", err)
		os.Exit(1)
	}
}

// buildLogger returns a development logger at Debug level when verbose,
// otherwise a production logger at Info level.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

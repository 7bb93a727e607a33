package main

import (
	"fmt"

	"github.com/katalvlaran/mststep/matrix"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		random bool
		seed   int64
		prob   float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print an empty or random symmetric adjacency matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				m   [][]int64
				err error
			)
			if random {
				if prob < 0 || prob > 1 {
					return fmt.Errorf("--probability %.2f: %w", prob, errProbability)
				}
				opts := []matrix.GenOption{matrix.WithEdgeProbability(prob)}
				if cmd.Flags().Changed("seed") {
					opts = append(opts, matrix.WithSeed(seed))
				}
				m, err = matrix.Random(a.cfg.MatrixSize, opts...)
			} else {
				m, err = matrix.Empty(a.cfg.MatrixSize)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, matrix.Format(m))

			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "fill with random weights instead of zeros")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for --random (default: time-based)")
	cmd.Flags().Float64Var(&prob, "probability", matrix.DefaultEdgeProbability, "edge probability for --random")

	return cmd
}

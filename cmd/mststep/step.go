package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/spf13/cobra"
)

var errProbability = errors.New("probability must be in [0,1]")

// printStep writes one step line, e.g. "2nd step: 1 -- 2 (weight: 2) accepted".
func printStep(w io.Writer, n int, res prim_kruskal.StepResult) {
	verdict := "accepted"
	if !res.Accepted {
		verdict = "rejected"
	}
	fmt.Fprintf(w, "%s step: %v %s\n", humanize.Ordinal(n), res.Edge, verdict)
}

func newStepCmd(a *app) *cobra.Command {
	var (
		file  string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Load a matrix and take a number of algorithm steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(file)
			if err != nil {
				return err
			}
			limit := steps
			if !cmd.Flags().Changed("steps") {
				limit = a.cfg.MaxSteps
			}

			taken := 0
			for !e.IsComplete() && (limit <= 0 || taken < limit) {
				res, err := e.Step()
				if err != nil {
					return err
				}
				if !res.Examined {
					break
				}
				taken++
				printStep(a.out, taken, res)
			}
			a.summary(e)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "matrix file (default: stdin)")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps to take (0 = until complete)")

	return cmd
}

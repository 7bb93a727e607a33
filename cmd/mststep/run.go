package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Auto-run the algorithm, one step per --speed milliseconds; Ctrl-C stops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := 0
			e, err := a.newEngine(file, engine.WithOnStep(func(res prim_kruskal.StepResult) {
				n++
				printStep(a.out, n, res)
			}))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			steps, err := e.RunToCompletion(ctx, a.cfg.Interval(), a.cfg.MaxSteps)
			if errors.Is(err, context.Canceled) {
				a.log.WithField("steps", steps).Info("auto-run interrupted")
				err = nil
			}
			a.summary(e)

			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "matrix file (default: stdin)")

	return cmd
}

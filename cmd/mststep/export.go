package main

import (
	"fmt"

	"github.com/katalvlaran/mststep/export"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
		steps  int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the state after some steps as Graphviz DOT or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(file)
			if err != nil {
				return err
			}
			for taken := 0; !e.IsComplete() && (steps <= 0 || taken < steps); taken++ {
				if _, err := e.Step(); err != nil {
					return err
				}
			}

			snap := e.Snapshot()
			switch format {
			case "dot":
				out, err := export.DOT(snap)
				if err != nil {
					return err
				}
				fmt.Fprint(a.out, out)
			case "json":
				out, err := export.JSON(snap)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, string(out))
			default:
				return fmt.Errorf("unknown --format %q (want dot or json)", format)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "matrix file (default: stdin)")
	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot or json")
	cmd.Flags().IntVar(&steps, "steps", 0, "steps to take before rendering (0 = until complete)")

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mststep/config"
	"github.com/katalvlaran/mststep/engine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the resolved configuration and shared writers for all subcommands.
type app struct {
	cfg     config.Config
	cfgPath string
	log     *logrus.Logger
	in      io.Reader
	out     io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.Default(), in: in, out: out, log: logrus.New()}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "mststep",
		Short:         "Step through Kruskal's or Prim's MST algorithm on an adjacency matrix",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "YAML settings file")
	flags.String("log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringP("algorithm", "a", a.cfg.Algorithm, "MST algorithm: kruskal or prim")
	flags.IntP("start", "s", a.cfg.StartVertex, "Prim start vertex (clamped to the node range)")
	flags.Int("speed", a.cfg.SpeedMS, "auto-run delay between steps in ms (100-2000, step 100)")
	flags.IntP("size", "n", a.cfg.MatrixSize, "matrix size for generate (2-10)")
	flags.Int("max-steps", a.cfg.MaxSteps, "stop after this many steps (0 = until complete)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.resolve(cmd.Flags())
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("mststep: %w", err)
	})

	root.AddCommand(
		newGenerateCmd(a),
		newStepCmd(a),
		newRunCmd(a),
		newExportCmd(a),
	)
	return root
}

// resolve builds the effective Config: defaults, then --config, then changed flags.
func (a *app) resolve(flags *pflag.FlagSet) error {
	if a.cfgPath != "" {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "log-level":
			a.cfg.LogLevel = f.Value.String()
		case "algorithm":
			a.cfg.Algorithm = f.Value.String()
		case "start":
			a.cfg.StartVertex, err = flags.GetInt("start")
		case "speed":
			a.cfg.SpeedMS, err = flags.GetInt("speed")
		case "size":
			a.cfg.MatrixSize, err = flags.GetInt("size")
		case "max-steps":
			a.cfg.MaxSteps, err = flags.GetInt("max-steps")
		}
	})
	if err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, _ := logrus.ParseLevel(a.cfg.LogLevel)
	a.log.SetLevel(level)
	a.log.WithFields(logrus.Fields{
		"algorithm": a.cfg.Algorithm,
		"start":     a.cfg.StartVertex,
		"speed_ms":  a.cfg.SpeedMS,
	}).Debug("configuration resolved")

	return nil
}

// readMatrix returns the matrix text from path, or from stdin for "" and "-".
func (a *app) readMatrix(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// newEngine loads the matrix at path into an Engine configured from a.cfg.
func (a *app) newEngine(path string, opts ...engine.Option) (*engine.Engine, error) {
	text, err := a.readMatrix(path)
	if err != nil {
		return nil, err
	}
	opts = append([]engine.Option{
		engine.WithLogger(a.log),
		engine.WithAlgorithm(a.cfg.Method()),
		engine.WithStartVertex(a.cfg.StartVertex),
	}, opts...)
	e := engine.New(opts...)
	if err := e.Load(text); err != nil {
		return nil, err
	}

	return e, nil
}

// summary prints the closing totals line.
func (a *app) summary(e *engine.Engine) {
	snap := e.Snapshot()
	want := 0
	if n := snap.Graph.Order(); n > 0 {
		want = n - 1
	}
	status := "incomplete"
	if snap.Complete {
		status = "complete"
	}
	if snap.Complete && len(snap.MSTEdges) < want {
		status = "complete, graph is disconnected"
	}
	edges := make([]string, len(snap.MSTEdges))
	for i, e := range snap.MSTEdges {
		edges[i] = e.String()
	}
	fmt.Fprintf(a.out, "MST edges: %d / %d (%s)\n", len(snap.MSTEdges), want, status)
	if len(edges) > 0 {
		fmt.Fprintf(a.out, "  %s\n", strings.Join(edges, "\n  "))
	}
	fmt.Fprintf(a.out, "Total weight: %d\n", snap.TotalWeight)
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/builder"
	"github.com/katalvlaran/lvtrace/config"
	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/topics"
	"github.com/katalvlaran/lvtrace/trace"
)

// app carries what every subcommand shares once the root has loaded config.
type app struct {
	cfg      config.Config
	log      *golog.Logger
	reg      *topics.Registry
	out      io.Writer
	logLevel string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, reg: topics.Default()}
	root := &cobra.Command{
		Use:           "lvtrace",
		Short:         "Step through graph algorithms one snapshot at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = strings.ToLower(a.logLevel)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.log = cfg.Logger()
			a.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn, error or disable (overrides LVTRACE_LOG_LEVEL)")

	root.AddCommand(
		a.topicsCmd(),
		a.runCmd(),
		a.playCmd(),
		a.compareCmd(),
		a.explainCmd(),
		a.feedbackCmd(),
		a.serveCmd(),
	)

	return root
}

// traceFlags are the generator inputs shared by run and play.
type traceFlags struct {
	graph    string
	shape    string
	directed bool
	start    string
	end      string
	sources  []string
	k        int
	seed     int64
}

func (f *traceFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.graph, "graph", "", "YAML or JSON graph file to use instead of the topic's sample")
	fl.StringVar(&f.shape, "shape", "", "generated graph instead of the topic's sample: "+strings.Join(builder.Shapes, ", "))
	fl.BoolVar(&f.directed, "directed", false, "make the --shape graph directed")
	fl.StringVar(&f.start, "start", "", "start vertex")
	fl.StringVar(&f.end, "end", "", "target vertex")
	fl.StringSliceVar(&f.sources, "sources", nil, "source vertices for multi-source topics")
	fl.IntVar(&f.k, "k", 0, "walk length for walk-count topics")
	fl.Int64Var(&f.seed, "seed", 0, "random seed for randomized topics")
}

func (f *traceFlags) params() trace.Params {
	return trace.Params{Start: f.start, End: f.end, Sources: f.sources, K: f.k, Seed: f.seed}
}

// generate runs topic id with the flags applied.
func (a *app) generate(id string, f *traceFlags) (*core.GraphData, trace.Trace, error) {
	override, err := f.override()
	if err != nil {
		return nil, nil, err
	}
	g, tr, err := a.reg.Generate(id, override, f.params())
	if err != nil {
		return nil, nil, err
	}
	a.log.Debugf("generated %s: %d steps", id, len(tr))

	return g, tr, nil
}

// override loads --graph or builds --shape; nil means the topic's sample.
func (f *traceFlags) override() (*core.GraphData, error) {
	switch {
	case f.graph != "" && f.shape != "":
		return nil, errors.New("--graph and --shape are mutually exclusive")
	case f.graph != "":
		return core.LoadFile(f.graph)
	case f.shape != "":
		opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
		if f.directed {
			opts = append(opts, builder.WithDirected())
		}
		return builder.Parse(f.shape, opts...)
	}

	return nil, nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}

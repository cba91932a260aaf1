package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/render"
)

func (a *app) runCmd() *cobra.Command {
	var f traceFlags
	var asJSON bool
	var step int
	cmd := &cobra.Command{
		Use:   "run <topic>",
		Short: "Generate a trace and print it",
		Long: "Generate the trace for a topic and print one line per step. --step renders a " +
			"single step in full; --json prints the graph and every step.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, tr, err := a.generate(args[0], &f)
			if err != nil {
				return err
			}
			switch {
			case asJSON:
				return a.writeJSON(map[string]any{"topic": args[0], "graph": g, "steps": tr})
			case cmd.Flags().Changed("step"):
				i := tr.Clamp(step)
				fmt.Fprintf(a.out, "step %d/%d\n%s\n", i+1, len(tr), render.Text(tr[i], g))
				return nil
			}
			for i, s := range tr {
				fmt.Fprintf(a.out, "%3d  %s\n", i, s.Description)
			}
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().IntVar(&step, "step", 0, "render only this step (clamped)")

	return cmd
}

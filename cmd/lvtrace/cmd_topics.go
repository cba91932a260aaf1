package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/topics"
)

func (a *app) topicsCmd() *cobra.Command {
	var family string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topics and comparisons",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var list []topics.Topic
			for _, t := range a.reg.Topics() {
				if family == "" || t.Family == family {
					list = append(list, t)
				}
			}
			if asJSON {
				return a.writeJSON(map[string]any{"topics": list, "comparisons": a.reg.Comparisons()})
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFAMILY\tTITLE")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Family, t.Title)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "COMPARISON\tLEFT / RIGHT\tTITLE")
			for _, c := range a.reg.Comparisons() {
				fmt.Fprintf(w, "%s\t%s / %s\t%s\n", c.ID, c.Left, c.Right, c.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list topics of this family")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

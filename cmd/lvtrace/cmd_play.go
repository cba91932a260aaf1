package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/compare"
	"github.com/katalvlaran/lvtrace/playback"
	"github.com/katalvlaran/lvtrace/render"
	"github.com/katalvlaran/lvtrace/trace"
)

// follow drains state changes until playback stops or ctx ends, calling
// draw once for every index from 0 to the last one reached, in order. It
// stops c on return, so no timer or listener outlives the command.
func follow(ctx context.Context, c *playback.Controller, start func(), draw func(i int)) error {
	defer c.Stop()
	changed := make(chan struct{}, 1)
	c.OnChange(func(playback.State) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	next := 0
	drawTo := func(upTo int) {
		for ; next <= upTo; next++ {
			draw(next)
		}
	}
	drawTo(0)
	start()
	for {
		st := c.State()
		drawTo(st.Index)
		if !st.Playing {
			return nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *app) speed(ms int) time.Duration {
	if ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}

	return a.cfg.Speed()
}

func (a *app) playCmd() *cobra.Command {
	var f traceFlags
	var speedMS int
	var brief bool
	cmd := &cobra.Command{
		Use:   "play <topic>",
		Short: "Animate a trace in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, tr, err := a.generate(args[0], &f)
			if err != nil {
				return err
			}
			c := playback.New(len(tr), playback.WithSpeed(a.speed(speedMS)), playback.WithLogger(a.log))
			r := render.New()
			return follow(cmd.Context(), c, c.Play, func(i int) {
				if brief {
					fmt.Fprintf(a.out, "[%d/%d] %s\n", i+1, len(tr), tr[i].Description)
					return
				}
				fmt.Fprintf(a.out, "[%d/%d]\n%s\n\n", i+1, len(tr), r.Step(tr[i], g))
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().IntVar(&speedMS, "speed", 0, "milliseconds per step (overrides LVTRACE_SPEED_MS)")
	cmd.Flags().BoolVar(&brief, "brief", false, "print only step descriptions")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var speedMS int
	var brief bool
	cmd := &cobra.Command{
		Use:   "compare <comparison>",
		Short: "Play two traces side by side on one clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := a.reg.Comparison(args[0])
			if err != nil {
				return err
			}
			gl, left, err := a.reg.Generate(cmp.Left, nil, trace.Params{})
			if err != nil {
				return err
			}
			gr, right, err := a.reg.Generate(cmp.Right, nil, trace.Params{})
			if err != nil {
				return err
			}
			p, err := compare.New(left, right, playback.WithSpeed(a.speed(speedMS)), playback.WithLogger(a.log))
			if err != nil {
				return err
			}

			r := render.New(render.WithWidth(48))
			return follow(cmd.Context(), p.Controller(), p.Play, func(i int) {
				fr, _ := compare.FrameAt(left, right, i)
				if brief {
					fmt.Fprintf(a.out, "[%d/%d] %s: %s | %s: %s\n", fr.Index+1, fr.Length,
						cmp.Left, fr.Left.Description, cmp.Right, fr.Right.Description)
					return
				}
				fmt.Fprintf(a.out, "[%d/%d] %s\n%s\n\n", fr.Index+1, fr.Length, cmp.Title,
					lipgloss.JoinHorizontal(lipgloss.Top, r.Step(fr.Left, gl), "  ", r.Step(fr.Right, gr)))
			})
		},
	}
	cmd.Flags().IntVar(&speedMS, "speed", 0, "milliseconds per step (overrides LVTRACE_SPEED_MS)")
	cmd.Flags().BoolVar(&brief, "brief", false, "print only step descriptions")

	return cmd
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/feedback"
	"github.com/katalvlaran/lvtrace/server"
)

func (a *app) openStore(cmd *cobra.Command) (feedback.Store, error) {
	st, err := feedback.Open(cmd.Context(), a.cfg.FeedbackOptions())
	if err != nil {
		return nil, err
	}
	a.log.Debugf("feedback backend: %s", a.cfg.Feedback)

	return st, nil
}

// explainer builds the OpenAI explainer, which takes topic IDs, with the
// feedback store as its cache.
func (a *app) explainer(st feedback.Store) (explain.Explainer, error) {
	oa, err := explain.NewOpenAI(a.cfg.ExplainConfig())
	if err != nil {
		return nil, err
	}
	titled := explain.Titled{Next: oa, Title: a.title}
	if st == nil {
		return titled, nil
	}

	return explain.Cached{Next: titled, Cache: st}, nil
}

func (a *app) title(id string) (string, error) {
	t, err := a.reg.Topic(id)
	if err != nil {
		return "", err
	}

	return t.Title, nil
}

func (a *app) explainCmd() *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "explain <topic>",
		Short: "Ask the configured model to explain a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.reg.Topic(args[0])
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			ex, err := a.explainer(st)
			if err != nil {
				return err
			}
			text, err := ex.Explain(cmd.Context(), t.ID)
			if err != nil {
				return err
			}
			if asHTML {
				fmt.Fprintln(a.out, string(explain.RenderMarkdown(text)))
				return nil
			}
			fmt.Fprintln(a.out, text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print sanitized HTML instead of markdown")

	return cmd
}

func (a *app) feedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <topic> [like|dislike|none]",
		Short: "Show or record your vote for a topic",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.reg.Topic(args[0])
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 2 {
				v, err := feedback.ParseVote(args[1])
				if err != nil {
					return err
				}
				if err := feedback.SaveVote(cmd.Context(), st, t.ID, v); err != nil {
					return err
				}
			}
			v, err := feedback.LoadVote(cmd.Context(), st, t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %s\n", t.ID, v)
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve topics, traces and feedback over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			opts := []server.Option{
				server.WithStore(st),
				server.WithLogger(a.log),
				server.WithExplainRate(a.cfg.ExplainRPS, a.cfg.ExplainBurst),
			}
			switch ex, err := a.explainer(st); {
			case errors.Is(err, explain.ErrNoAPIKey):
				a.log.Warnf("OPENAI_API_KEY is not set: /v1/explain is disabled")
			case err != nil:
				return err
			default:
				opts = append(opts, server.WithExplainer(ex))
			}

			return server.New(a.reg, opts...).Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LVTRACE_ADDR)")

	return cmd
}

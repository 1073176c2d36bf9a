package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ifrof/IFROF-WP/pkg/probe"
)

func newProbeCmd(g *globals) *cobra.Command {
	var (
		baseURL  string
		language string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "probe [query ...]",
		Short: "Send search queries to the site API and report status and timing.",
		Long: "probe posts each query to the factory search endpoint in turn and prints the\n" +
			"HTTP status and duration. Failed queries are reported and the run continues.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("url") {
				baseURL = g.env.ProbeURL
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = g.env.ProbeTimeout
			}

			queries := args
			if len(queries) == 0 {
				queries = probe.DefaultQueries
			}

			client := probe.NewClient(baseURL, language, timeout)
			_, err := probe.Run(cmd.Context(), client, queries, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "site base URL (default from BLOGSEED_PROBE_URL)")
	cmd.Flags().StringVar(&language, "language", "en", "language sent with each query")
	cmd.Flags().DurationVar(&timeout, "timeout", probe.DefaultTimeout, "per-request timeout")
	return cmd
}

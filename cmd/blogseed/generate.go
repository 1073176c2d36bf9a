package main

import (
	"github.com/spf13/cobra"

	"github.com/ifrof/IFROF-WP/pkg/seeder"
)

func newGenerateCmd(g *globals) *cobra.Command {
	var jf jobFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the INSERT migration for the job's datasets.",
		Example: `  blogseed generate --preset final
  blogseed generate -c job.yaml -o -
  blogseed generate -p legacy -o s3://migrations/add_100_articles.sql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := jf.load(cmd, g.env)
			if err != nil {
				return err
			}

			s := seeder.New(g.store(cmd), g.logger)
			res, err := s.Build(cmd.Context(), job, nil)
			if err != nil {
				return err
			}
			return s.Write(cmd.Context(), job, res)
		},
	}

	jf.register(cmd, `output location: file path, "-" for stdout, or s3://bucket/key (default from job)`)
	return cmd
}

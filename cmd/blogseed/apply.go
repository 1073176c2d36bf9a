package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ifrof/IFROF-WP/pkg/database"
	"github.com/ifrof/IFROF-WP/pkg/generator"
	"github.com/ifrof/IFROF-WP/pkg/seeder"
)

func newApplyCmd(g *globals) *cobra.Command {
	var (
		jf           jobFlags
		driver       string
		dsn          string
		skipExisting bool
		createTable  bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Insert the job's articles directly into the blog database.",
		Example: `  BLOGSEED_DATABASE_URL='user:pass@tcp(localhost:3306)/ifrof' blogseed apply --skip-existing
  blogseed apply --driver sqlite --dsn local.db --create-table -p final`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			job, err := jf.load(cmd, g.env)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("driver") {
				driver = g.env.DatabaseDriver
			}
			if !cmd.Flags().Changed("dsn") {
				dsn = g.env.DatabaseURL
			}

			// A dry run only reads the database when it needs existing slugs.
			var db *sql.DB
			if !dryRun || skipExisting {
				db, err = database.Open(ctx, driver, dsn)
				if err != nil {
					return err
				}
				defer db.Close()
			}

			if createTable && db != nil {
				if err := database.EnsureTable(ctx, db, driver, job.Table); err != nil {
					return err
				}
			}

			var skip map[database.SlugKey]struct{}
			if skipExisting {
				skip, err = database.ExistingSlugs(ctx, db, job.Table, job.LanguageColumn)
				if err != nil {
					return err
				}
			}

			s := seeder.New(g.store(cmd), g.logger)
			res, err := s.Build(ctx, job, skip)
			if errors.Is(err, generator.ErrNoRecords) {
				g.logger.Info("nothing to insert", "table", job.Table)
				return nil
			}
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("output") {
				if err := s.Write(ctx, job, res); err != nil {
					return err
				}
			}

			if dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Statement)
				return nil
			}

			n, err := s.Apply(ctx, db, res)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Language", "Inserted"})
			for _, p := range job.Partitions {
				lang, _ := p.Lang()
				t.AppendRow(table.Row{p.Language, res.PerLanguage[lang]})
			}
			t.AppendFooter(table.Row{"total", n})
			if len(res.Skipped) > 0 {
				t.AppendFooter(table.Row{"skipped", len(res.Skipped)})
			}
			t.Render()
			return nil
		},
	}

	jf.register(cmd, "also write the migration to this location")
	cmd.Flags().StringVar(&driver, "driver", "mysql", "database driver: mysql or sqlite (default from BLOGSEED_DATABASE_DRIVER)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database DSN (default from BLOGSEED_DATABASE_URL)")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "leave out articles already in the table (slug and lang when the job has a language column)")
	cmd.Flags().BoolVar(&createTable, "create-table", false, "create the table if missing (local development)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the statement instead of executing it")
	return cmd
}

package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ifrof/IFROF-WP/pkg/article"
	"github.com/ifrof/IFROF-WP/pkg/config"
	"github.com/ifrof/IFROF-WP/pkg/database"
	"github.com/ifrof/IFROF-WP/pkg/generator"
)

// Store reads datasets and writes the generated migration.
type Store interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
	Write(ctx context.Context, location string, data []byte) error
}

// Seeder turns a job into an INSERT statement and delivers it.
type Seeder struct {
	store  Store
	logger *slog.Logger
}

// New creates a seeder. A nil logger uses slog.Default().
func New(store Store, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{store: store, logger: logger}
}

// Result is the outcome of Build.
type Result struct {
	RunID     string
	Statement string

	// Records is the number of tuples in Statement.
	Records     int
	PerLanguage map[article.Language]int

	// Skipped lists slugs dropped because they already exist.
	Skipped []string
}

// Build loads every partition of the job in order and generates the
// statement. Records already in skip are left out; jobs with a language
// column match on (slug, lang), others on the final slug alone. Any read or
// mapping failure aborts the run without producing a statement.
func (s *Seeder) Build(ctx context.Context, job *config.Job, skip map[database.SlugKey]struct{}) (*Result, error) {
	res := &Result{
		RunID:       uuid.NewString(),
		PerLanguage: make(map[article.Language]int),
	}
	log := s.logger.With("run", res.RunID)
	log.Debug("building job", "table", job.Table, "languages", job.Languages(), "skip", len(skip))

	var records []article.Record
	for _, p := range job.Partitions {
		loaded, err := s.loadPartition(ctx, p)
		if err != nil {
			return nil, err
		}

		for _, rec := range loaded {
			rec = rec.WithSlugSuffix(p.SlugSuffix)
			key := database.SlugKey{Slug: rec.Slug}
			if job.LanguageColumn {
				key.Lang = string(rec.Language)
			}
			if _, exists := skip[key]; exists {
				log.Info("skipping existing article", "slug", rec.Slug, "language", rec.Language)
				res.Skipped = append(res.Skipped, rec.Slug)
				continue
			}
			records = append(records, rec)
			res.PerLanguage[rec.Language]++
		}

		log.Info("loaded partition", "language", p.Language, "source", p.Source, "records", len(loaded))
	}

	stmt, err := generator.Generate(records, job.GeneratorOptions())
	if err != nil {
		return nil, err
	}

	res.Statement = stmt
	res.Records = len(records)
	log.Info("generated statement", "table", job.Table, "records", res.Records, "skipped", len(res.Skipped))
	return res, nil
}

func (s *Seeder) loadPartition(ctx context.Context, p config.Partition) ([]article.Record, error) {
	mapping, err := p.Mapping()
	if err != nil {
		return nil, fmt.Errorf("partition %s: %w", p.Language, err)
	}

	rc, err := s.store.Open(ctx, p.Source)
	if err != nil {
		return nil, &article.InputReadError{Source: p.Source, Err: err}
	}
	defer rc.Close()

	return article.DecodeDataset(rc, p.Source, mapping)
}

// Write delivers the statement to the job output. Stdout gets a trailing
// newline; files and objects hold the statement exactly.
func (s *Seeder) Write(ctx context.Context, job *config.Job, res *Result) error {
	data := res.Statement
	if job.Output == "-" {
		data += "\n"
	}

	if err := s.store.Write(ctx, job.Output, []byte(data)); err != nil {
		return fmt.Errorf("writing %s: %w", job.Output, err)
	}

	s.logger.Info("wrote migration", "run", res.RunID, "output", job.Output, "bytes", len(data))
	return nil
}

// Apply executes the statement against db.
func (s *Seeder) Apply(ctx context.Context, db *sql.DB, res *Result) (int64, error) {
	n, err := database.Apply(ctx, db, res.Statement)
	if err != nil {
		return 0, err
	}

	s.logger.Info("applied migration", "run", res.RunID, "rows", n)
	return n, nil
}

// IsInputError reports whether err came from reading or mapping a dataset.
func IsInputError(err error) bool {
	var readErr *article.InputReadError
	var missing *article.MissingFieldError
	return errors.As(err, &readErr) || errors.As(err, &missing)
}

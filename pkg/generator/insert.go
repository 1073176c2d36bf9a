package generator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ifrof/IFROF-WP/pkg/article"
)

// ErrNoRecords is returned when a statement is requested for zero rows.
// A multi-row INSERT needs at least one tuple to be valid SQL.
var ErrNoRecords = errors.New("no records to insert")

// Column names of the blog_posts table, in emitted order.
const (
	ColumnTitle     = "title"
	ColumnLang      = "lang"
	ColumnSlug      = "slug"
	ColumnContent   = "content"
	ColumnExcerpt   = "excerpt"
	ColumnAuthorID  = "authorId"
	ColumnCategory  = "category"
	ColumnTags      = "tags"
	ColumnFeatured  = "featured"
	ColumnPublished = "published"
)

// Options holds the per-job constants injected into every row.
type Options struct {
	Table   string
	Comment string

	AuthorID  int64
	Featured  bool
	Published bool

	// LanguageColumn adds a lang column right after title.
	LanguageColumn bool

	// ExcerptLength defaults to DefaultExcerptLength when zero.
	ExcerptLength int
}

// Columns returns the target column list in tuple order.
func (o Options) Columns() []string {
	cols := []string{ColumnTitle}
	if o.LanguageColumn {
		cols = append(cols, ColumnLang)
	}
	return append(cols,
		ColumnSlug,
		ColumnContent,
		ColumnExcerpt,
		ColumnAuthorID,
		ColumnCategory,
		ColumnTags,
		ColumnFeatured,
		ColumnPublished,
	)
}

func (o Options) excerptLength() int {
	if o.ExcerptLength <= 0 {
		return DefaultExcerptLength
	}
	return o.ExcerptLength
}

// InsertGenerator accumulates article records into one multi-row INSERT statement.
type InsertGenerator struct {
	opts        Options
	columnNames []string
	tuples      []string
}

// NewInsertGenerator creates a generator for the given options.
func NewInsertGenerator(opts Options) *InsertGenerator {
	return &InsertGenerator{
		opts:        opts,
		columnNames: opts.Columns(),
	}
}

// AddRecord formats rec as a value tuple and appends it to the statement.
// The record is not modified.
func (g *InsertGenerator) AddRecord(rec article.Record) {
	g.tuples = append(g.tuples, g.formatTuple(rec))
}

// Statement returns the complete INSERT statement. Calling it again without
// adding records returns the same text.
func (g *InsertGenerator) Statement() (string, error) {
	if len(g.tuples) == 0 {
		return "", ErrNoRecords
	}

	var sb strings.Builder

	if g.opts.Comment != "" {
		sb.WriteString("-- ")
		sb.WriteString(g.opts.Comment)
		sb.WriteString("\n")
	}

	// INSERT INTO table (col1, col2, ...) VALUES
	sb.WriteString("INSERT INTO ")
	sb.WriteString(g.opts.Table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(g.columnNames, ", "))
	sb.WriteString(") VALUES\n")

	sb.WriteString(strings.Join(g.tuples, ",\n"))
	sb.WriteString(";")

	return sb.String(), nil
}

func (g *InsertGenerator) formatTuple(rec article.Record) string {
	values := make([]string, 0, len(g.columnNames))
	for _, col := range g.columnNames {
		values = append(values, g.formatValue(col, rec))
	}
	return "(" + strings.Join(values, ", ") + ")"
}

func (g *InsertGenerator) formatValue(col string, rec article.Record) string {
	switch col {
	case ColumnTitle:
		return QuoteString(rec.Title)
	case ColumnLang:
		return QuoteString(string(rec.Language))
	case ColumnSlug:
		return QuoteString(rec.Slug)
	case ColumnContent:
		return QuoteString(rec.Content)
	case ColumnExcerpt:
		return "'" + Excerpt(rec.Content, g.opts.excerptLength()) + "'"
	case ColumnAuthorID:
		return strconv.FormatInt(g.opts.AuthorID, 10)
	case ColumnCategory:
		return QuoteString(rec.Category)
	case ColumnTags:
		return QuoteString(JoinTags(rec.Tags))
	case ColumnFeatured:
		return formatFlag(g.opts.Featured)
	case ColumnPublished:
		return formatFlag(g.opts.Published)
	default:
		// Columns() is the only source of column names.
		panic("generator: unknown column " + col)
	}
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Generate builds the INSERT statement for records in order.
func Generate(records []article.Record, opts Options) (string, error) {
	gen := NewInsertGenerator(opts)
	for _, rec := range records {
		gen.AddRecord(rec)
	}
	return gen.Statement()
}

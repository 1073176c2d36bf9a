package config

import (
	"github.com/ifrof/IFROF-WP/pkg/article"
	"github.com/ifrof/IFROF-WP/pkg/generator"
)

// DefaultTable is the blog posts table of the site schema.
const DefaultTable = "blog_posts"

// Job describes one dataset-to-SQL conversion run.
type Job struct {
	Table   string `yaml:"table"`
	Comment string `yaml:"comment"`

	AuthorID  int64 `yaml:"authorId"`
	Featured  int   `yaml:"featured"`
	Published int   `yaml:"published"`

	LanguageColumn bool `yaml:"languageColumn"`
	ExcerptLength  int  `yaml:"excerptLength"`

	// Output is a local path, "-" for stdout, or an s3://bucket/key URI.
	Output string `yaml:"output"`

	Partitions []Partition `yaml:"partitions"`
}

// Partition is one language dataset. Partitions are read in the order listed.
type Partition struct {
	Language   string `yaml:"language"`
	Source     string `yaml:"source"`
	SlugSuffix string `yaml:"slugSuffix"`

	// Fields overrides raw JSON keys by canonical field name
	// (title, slug, content, category, tags).
	Fields map[string]string `yaml:"fields"`
}

// defaultJob holds the values a job file may leave out.
func defaultJob() Job {
	return Job{
		Table:     DefaultTable,
		AuthorID:  1,
		Featured:  0,
		Published: 1,
		Output:    "-",
	}
}

// Lang returns the parsed partition language.
func (p Partition) Lang() (article.Language, error) {
	return article.ParseLanguage(p.Language)
}

// Mapping returns the field mapping for the partition: the language's
// suffixed keys with any Fields overrides applied.
func (p Partition) Mapping() (article.FieldMapping, error) {
	lang, err := p.Lang()
	if err != nil {
		return article.FieldMapping{}, err
	}
	return article.DefaultMapping(lang).WithOverrides(p.Fields)
}

// GeneratorOptions converts the job constants for the statement generator.
func (j *Job) GeneratorOptions() generator.Options {
	return generator.Options{
		Table:          j.Table,
		Comment:        j.Comment,
		AuthorID:       j.AuthorID,
		Featured:       j.Featured == 1,
		Published:      j.Published == 1,
		LanguageColumn: j.LanguageColumn,
		ExcerptLength:  j.ExcerptLength,
	}
}

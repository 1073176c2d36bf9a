package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads and parses a YAML job file from the given path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML job on top of the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Job, error) {
	job := defaultJob()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing job YAML: %w", err)
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks that the job is usable.
func (j *Job) Validate() error {
	if !tableNamePattern.MatchString(j.Table) {
		return fmt.Errorf("config error: invalid table name %q", j.Table)
	}
	if j.AuthorID <= 0 {
		return fmt.Errorf("config error: authorId must be positive, got %d", j.AuthorID)
	}
	if j.Featured != 0 && j.Featured != 1 {
		return fmt.Errorf("config error: featured must be 0 or 1, got %d", j.Featured)
	}
	if j.Published != 0 && j.Published != 1 {
		return fmt.Errorf("config error: published must be 0 or 1, got %d", j.Published)
	}
	if j.ExcerptLength < 0 {
		return fmt.Errorf("config error: excerptLength must not be negative, got %d", j.ExcerptLength)
	}
	if j.Output == "" {
		return fmt.Errorf("config error: no output defined")
	}
	if len(j.Partitions) == 0 {
		return fmt.Errorf("config error: no partitions defined")
	}

	for i, p := range j.Partitions {
		if p.Source == "" {
			return fmt.Errorf("config error: partition %d has empty source", i)
		}
		if _, err := p.Mapping(); err != nil {
			return fmt.Errorf("config error: partition %d: %w", i, err)
		}
	}

	return nil
}

// Languages returns the partition languages in order.
func (j *Job) Languages() []string {
	langs := make([]string, len(j.Partitions))
	for i, p := range j.Partitions {
		langs[i] = p.Language
	}
	return langs
}

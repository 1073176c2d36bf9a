package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "BLOGSEED"

// Env holds settings taken from the environment (or a .env file).
type Env struct {
	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"mysql"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	AWSRegion   string `envconfig:"AWS_REGION" default:"us-east-1"`
	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`

	ProbeURL     string        `envconfig:"PROBE_URL" default:"https://ifrof.com"`
	ProbeTimeout time.Duration `envconfig:"PROBE_TIMEOUT" default:"45s"`

	// AuthorID overrides the job's authorId when non-zero.
	AuthorID int64 `envconfig:"AUTHOR_ID"`
}

// LoadEnv loads .env files if present, then reads BLOGSEED_* variables.
// Variables already set in the process environment take precedence over .env.
// Missing files are skipped; unreadable or malformed ones are an error.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &e, nil
}

// Apply copies environment overrides into the job and re-validates it.
func (e *Env) Apply(job *Job) error {
	if e.AuthorID != 0 {
		job.AuthorID = e.AuthorID
	}
	return job.Validate()
}

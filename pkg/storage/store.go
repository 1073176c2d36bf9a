package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Store resolves locations to local files, stdio, or S3 objects.
// The S3 client is created on first use so purely local runs never load
// AWS configuration.
type Store struct {
	Stdin  io.Reader
	Stdout io.Writer

	s3Opts S3Options

	mu       sync.Mutex
	s3Client *S3Client
	newS3    func(ctx context.Context, opts S3Options) (*S3Client, error)
}

// NewStore creates a store using stdin/stdout for "-".
func NewStore(opts S3Options) *Store {
	return &Store{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		s3Opts: opts,
		newS3:  NewS3Client,
	}
}

// NewStoreWithS3 creates a store that uses the given S3 client.
func NewStoreWithS3(client *S3Client) *Store {
	s := NewStore(S3Options{})
	s.s3Client = client
	return s
}

func (s *Store) s3(ctx context.Context) (*S3Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.s3Client == nil {
		client, err := s.newS3(ctx, s.s3Opts)
		if err != nil {
			return nil, err
		}
		s.s3Client = client
	}
	return s.s3Client, nil
}

// Open opens the location for reading.
func (s *Store) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	switch loc.Kind {
	case KindStdio:
		return io.NopCloser(s.Stdin), nil
	case KindS3:
		client, err := s.s3(ctx)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, loc.Bucket, loc.Key)
	default:
		f, err := os.Open(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		return f, nil
	}
}

// Write stores data at the location. Local files are replaced atomically.
func (s *Store) Write(ctx context.Context, location string, data []byte) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}

	switch loc.Kind {
	case KindStdio:
		if _, err := s.Stdout.Write(data); err != nil {
			return fmt.Errorf("write error (downstream process may have died): %w", err)
		}
		return nil
	case KindS3:
		client, err := s.s3(ctx)
		if err != nil {
			return err
		}
		return client.Put(ctx, loc.Bucket, loc.Key, data)
	default:
		return writeFileAtomic(loc.Path, data)
	}
}

// writeFileAtomic writes to a temp file next to path and renames it into
// place, so readers never observe a partial migration.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

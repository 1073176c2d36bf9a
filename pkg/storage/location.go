package storage

import (
	"fmt"
	"strings"
)

// Kind classifies where a Location points.
type Kind int

const (
	KindLocal Kind = iota
	KindStdio
	KindS3
)

const s3Scheme = "s3://"

// Location is a parsed dataset or output address.
type Location struct {
	Kind   Kind
	Path   string // KindLocal
	Bucket string // KindS3
	Key    string // KindS3
}

// ParseLocation accepts "-" (stdin/stdout), "s3://bucket/key", or a local path.
func ParseLocation(s string) (Location, error) {
	switch {
	case s == "":
		return Location{}, fmt.Errorf("empty location")
	case s == "-":
		return Location{Kind: KindStdio}, nil
	case strings.HasPrefix(s, s3Scheme):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(s, s3Scheme), "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Location{}, fmt.Errorf("invalid S3 location %q: want s3://bucket/key", s)
		}
		return Location{Kind: KindS3, Bucket: bucket, Key: key}, nil
	default:
		return Location{Kind: KindLocal, Path: s}, nil
	}
}

func (l Location) String() string {
	switch l.Kind {
	case KindStdio:
		return "-"
	case KindS3:
		return s3Scheme + l.Bucket + "/" + l.Key
	default:
		return l.Path
	}
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the subset of the S3 client used here.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the S3 client.
type S3Options struct {
	Region   string
	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// (MinIO, R2, ...). Path-style addressing is used when set.
	Endpoint string

	// Static keys take precedence over the default credential chain.
	AccessKeyID     string
	SecretAccessKey string
}

// S3Client reads and writes single objects.
type S3Client struct {
	api objectAPI
}

// NewS3Client creates a new S3 client. Without static keys it uses the
// default AWS credential chain.
func NewS3Client(ctx context.Context, opts S3Options) (*S3Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewS3ClientWithConfig(cfg, opts.Endpoint), nil
}

// NewS3ClientWithConfig creates a new S3 client with a custom AWS config.
func NewS3ClientWithConfig(cfg aws.Config, endpoint string) *S3Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Client{api: client}
}

// Get opens an object for reading. The caller closes the body.
func (c *S3Client) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	result, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object s3://%s/%s: %w", bucket, key, err)
	}

	slog.Debug("opened S3 object", "bucket", bucket, "key", key)
	return result.Body, nil
}

// Put uploads data as a single object.
func (c *S3Client) Put(ctx context.Context, bucket, key string, data []byte) error {
	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/sql; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object s3://%s/%s: %w", bucket, key, err)
	}

	slog.Info("uploaded S3 object", "bucket", bucket, "key", key, "bytes", len(data))
	return nil
}

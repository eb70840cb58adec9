package store

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

// MinioConfig configures an S3-compatible destination.
type MinioConfig struct {
	Endpoint  string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// MinioStore publishes artifacts as objects in a MinIO or S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioStore creates a store backed by an existing client.
// prefix is prepended to every object key.
func NewMinioStore(client *minio.Client, bucket, prefix string) *MinioStore {
	return &MinioStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// OpenMinio connects to the configured endpoint and verifies the bucket exists.
func OpenMinio(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, merrors.ConfigError(fmt.Sprintf("invalid minio endpoint %q", cfg.Endpoint), err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, merrors.New(merrors.ErrCodeUploadFailed, fmt.Sprintf("cannot reach bucket %s at %s", cfg.Bucket, cfg.Endpoint), err)
	}
	if !exists {
		return nil, merrors.ConfigError(fmt.Sprintf("bucket %s does not exist", cfg.Bucket), nil).
			WithSuggestion("Create the bucket or change store.minio.bucket")
	}

	return NewMinioStore(client, cfg.Bucket, cfg.Prefix), nil
}

func (s *MinioStore) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put uploads data as a single object.
func (s *MinioStore) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType(name),
	})
	if err != nil {
		return merrors.New(merrors.ErrCodeUploadFailed, fmt.Sprintf("cannot upload %s: %v", s.Location(name), err), err).
			WithDetail("key", key)
	}
	return nil
}

// MakeDir is a no-op: object stores have no directories.
func (s *MinioStore) MakeDir(context.Context, string) error {
	return nil
}

// Location returns the s3:// URL of name.
func (s *MinioStore) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

var _ Store = (*MinioStore)(nil)

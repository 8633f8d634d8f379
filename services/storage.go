package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/FT-Key/Ravello-web-sub001/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage uploads files to an S3-compatible bucket and hands back public
// URLs for the catalog images.
type Storage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewStorage(cfg *config.Config) (*Storage, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &Storage{
		client:   client,
		bucket:   cfg.StorageBucket,
		endpoint: cfg.StorageEndpoint,
		useSSL:   cfg.StorageUseSSL,
	}, nil
}

// Upload streams one file into the bucket under a random name, keeping the
// original extension. Returns the public URL.
func (s *Storage) Upload(ctx context.Context, reader io.Reader, filename, contentType string, size int64) (string, error) {
	objectName := uuid.NewString() + filepath.Ext(filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string `yaml:"endpoint" envconfig:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"accessKey" envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secretKey" envconfig:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" envconfig:"MINIO_BUCKET" default:"car-images"`
	UseSSL    bool   `yaml:"useSSL" envconfig:"MINIO_USE_SSL" default:"false"`
}

// ImageStore keeps car images in a MinIO bucket and hands back public
// object URLs.
type ImageStore struct {
	client *minio.Client
	cfg    Config
}

func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
	}
	return &ImageStore{client: client, cfg: cfg}, nil
}

func (s *ImageStore) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, name), nil
}

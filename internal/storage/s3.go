// Package storage wraps the object store behind a small interface so handlers
// can be tested against an in-memory implementation.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"datadrop-backend/internal/config"
)

// ObjectInfo describes one stored object as returned by a listing.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	StorageClass string    `json:"storageClass"`
}

// ObjectStorage is the surface the file controller consumes.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader) error
	List(ctx context.Context) ([]ObjectInfo, error)
	Bucket() string
}

type s3Storage struct {
	uploader *s3manager.Uploader
	client   *s3.S3
	cfg      config.S3Config
}

// NewS3Storage builds an S3-backed ObjectStorage from static credentials.
// Endpoint, path-style addressing and SSL-off support S3-compatible stores.
func NewS3Storage(cfg config.S3Config) (ObjectStorage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.SSLDisabled),
		HTTPClient:       &http.Client{Timeout: cfg.HTTPTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &s3Storage{
		uploader: s3manager.NewUploader(sess),
		client:   s3.New(sess),
		cfg:      cfg,
	}, nil
}

func (s *s3Storage) Bucket() string {
	return s.cfg.Bucket
}

// Upload streams body to the bucket under key. An existing object with the
// same key is overwritten.
func (s *s3Storage) Upload(ctx context.Context, key string, body io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w, bucket %s, key %s", err, s.cfg.Bucket, key)
	}
	return nil
}

// List enumerates the bucket. A single ListObjectsV2 page is fetched; buckets
// holding more objects than one page return a partial listing.
func (s *s3Storage) List(ctx context.Context) ([]ObjectInfo, error) {
	out, err := s.client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("list failed: %w, bucket %s", err, s.cfg.Bucket)
	}

	objects := make([]ObjectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		objects = append(objects, ObjectInfo{
			Key:          aws.StringValue(obj.Key),
			Size:         aws.Int64Value(obj.Size),
			LastModified: aws.TimeValue(obj.LastModified),
			StorageClass: aws.StringValue(obj.StorageClass),
		})
	}
	return objects, nil
}

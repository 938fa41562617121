package images

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "github.com/akshayraj-industries/website-backend/config"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorage is where uploaded image bytes end up. Backed by S3 in
// production, mocked in tests.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// S3Storage stores objects in an S3 bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage connects to AWS S3, or to an S3-compatible provider when an
// explicit endpoint and static credentials are configured.
func NewS3Storage(ctx context.Context, upload appconfig.UploadConfig) (*S3Storage, error) {
	if upload.S3Endpoint != "" {
		client := s3.New(s3.Options{
			Region:       "auto",
			BaseEndpoint: &upload.S3Endpoint,
			Credentials:  credentials.NewStaticCredentialsProvider(upload.S3AccessKey, upload.S3SecretKey, ""),
		})
		return &S3Storage{client: client, bucket: upload.S3Bucket}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(upload.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: upload.S3Bucket,
	}, nil
}

// validateKey rejects storage keys containing path traversal segments.
func validateKey(key string) error {
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("path traversal detected in storage key")
		}
	}
	return nil
}

func (s *S3Storage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("s3 put object failed: %w", err)
	}
	return nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("s3 delete object failed: %w", err)
	}
	return nil
}

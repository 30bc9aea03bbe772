package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"blogspace-be/internal/config"
)

// S3Storage keeps uploads in an S3-compatible bucket (AWS S3, MinIO, RustFS, ...)
type S3Storage struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	publicURL string
	logger    *zap.Logger
}

var _ Storage = (*S3Storage)(nil)

// NewS3Storage builds a client with static credentials and an optional custom endpoint
func NewS3Storage(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*S3Storage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage access key and secret key are required")
	}
	if cfg.PublicURL == "" {
		return nil, errors.New("storage public url is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Save uploads the object and returns its public URL
func (s *S3Storage) Save(ctx context.Context, obj *Object) (string, error) {
	name, contentType, err := objectName(obj.Filename)
	if err != nil {
		return "", err
	}
	key := s.keyPrefix + name

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        obj.Body,
		ContentType: aws.String(contentType),
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug("Uploaded object", zap.String("bucket", s.bucket), zap.String("key", key))
	return s.publicURL + "/" + key, nil
}

// Delete removes an object previously returned by Save
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key, ok := s.keyFor(ref)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *S3Storage) keyFor(ref string) (string, bool) {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(ref, prefix)
	if key == "" || !strings.HasPrefix(key, s.keyPrefix) {
		return "", false
	}
	return key, true
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"movie-catalog/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const s3KeyPrefix = "poster/"

type S3Store struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	log      *zap.Logger
}

func NewS3Store(cfg utils.StorageConfig, log *zap.Logger) (*S3Store, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
		log:      log.With(zap.String("storage", "s3")),
	}, nil
}

func (s *S3Store) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	fitted, err := fitPoster(data, originalName)
	if err != nil {
		return "", fmt.Errorf("process poster %s: %w", originalName, err)
	}

	key := s3KeyPrefix + newPosterName(originalName)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fitted),
		ContentType: aws.String(contentTypeForExt(filepath.Ext(originalName))),
	})
	if err != nil {
		s.log.Error("Failed to upload poster",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("upload poster %s: %w", key, err)
	}

	s.log.Debug("Poster uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(fitted)),
	)

	return s.objectURL(key), nil
}

func (s *S3Store) Delete(ctx context.Context, ref string) error {
	key := s.keyFromRef(ref)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete poster %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) objectURL(key string) string {
	if s.endpoint != "" {
		// Path-style URL for custom endpoints
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *S3Store) keyFromRef(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	key := strings.TrimPrefix(u.Path, "/")
	// Path-style URLs carry the bucket as the first segment
	key = strings.TrimPrefix(key, s.bucket+"/")
	return key
}

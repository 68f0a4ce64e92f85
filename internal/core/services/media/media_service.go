// Package media stores post images in S3-compatible object storage.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// BaseURL is the public prefix images are served from, e.g.
	// http://localhost:9000/posts
	BaseURL string
}

type MediaService struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMediaService connects to the object store and ensures the bucket
// exists with versioning and a public-read policy.
func NewMediaService(ctx context.Context, cfg Config) (*MediaService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	s := &MediaService{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MediaService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}

	if !exists {
		logger.Log().Info("Creating bucket",
			zap.String(logger.LogKeyContext, logger.LogContextMedia),
			zap.String("bucket", s.bucket),
		)
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
		if err := s.client.SetBucketVersioning(ctx, s.bucket, minio.BucketVersioningConfiguration{Status: "Enabled"}); err != nil {
			return fmt.Errorf("enable versioning on %s: %w", s.bucket, err)
		}
	}

	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": map[string]any{"AWS": []string{"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", s.bucket)},
			},
		},
	}
	policyJSON, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("marshal bucket policy: %w", err)
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, string(policyJSON)); err != nil {
		return fmt.Errorf("set bucket policy on %s: %w", s.bucket, err)
	}
	return nil
}

// Save stores one upload under <kind>/<uuid>.<ext> and returns the
// generated filename.
func (s *MediaService) Save(ctx context.Context, kind domain.ImageKind, upload domain.Upload) (string, error) {
	filename := generateFilename(upload.Filename)
	objectName := objectName(kind, filename)

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, upload.Reader, upload.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("store %s: %w", objectName, err)
	}
	return filename, nil
}

// SaveMultiple stores uploads concurrently, preserving input order in the
// returned filenames.
func (s *MediaService) SaveMultiple(ctx context.Context, kind domain.ImageKind, uploads []domain.Upload) ([]string, error) {
	filenames := make([]string, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	for i, upload := range uploads {
		i, upload := i, upload
		g.Go(func() error {
			filename, err := s.Save(gctx, kind, upload)
			if err != nil {
				return err
			}
			filenames[i] = filename
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filenames, nil
}

func (s *MediaService) Remove(ctx context.Context, kind domain.ImageKind, filename string) error {
	objectName := objectName(kind, filename)
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", objectName, err)
	}
	return nil
}

// RemoveMany deletes best effort, failures are logged and skipped.
func (s *MediaService) RemoveMany(ctx context.Context, kind domain.ImageKind, filenames []string) error {
	var wg sync.WaitGroup
	for _, filename := range filenames {
		filename := filename
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Remove(ctx, kind, filename); err != nil {
				logger.Log().Warn("Error deleting image",
					zap.String(logger.LogKeyContext, logger.LogContextMedia),
					zap.String("filename", filename),
					zap.Error(err),
				)
			}
		}()
	}
	wg.Wait()
	return nil
}

func (s *MediaService) List(ctx context.Context, kind domain.ImageKind) ([]domain.MediaObject, error) {
	prefix := ""
	if kind != "" {
		prefix = string(kind) + "/"
	}

	objects := []domain.MediaObject{}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects: %w", info.Err)
		}
		objects = append(objects, domain.MediaObject{
			Name:         info.Key,
			Size:         info.Size,
			ETag:         info.ETag,
			LastModified: info.LastModified,
		})
	}
	return objects, nil
}

// PublicURL maps a filename to its public address. Full URLs pass through.
func (s *MediaService) PublicURL(kind domain.ImageKind, filename string) string {
	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		return filename
	}
	if strings.HasPrefix(filename, string(kind)+"/") {
		return s.baseURL + "/" + filename
	}
	return s.baseURL + "/" + string(objectName(kind, filename))
}

func (s *MediaService) PresignedGet(ctx context.Context, kind domain.ImageKind, filename string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName(kind, filename), expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", filename, err)
	}
	return u.String(), nil
}

func objectName(kind domain.ImageKind, filename string) string {
	return string(kind) + "/" + filename
}

func generateFilename(original string) string {
	ext := "jpg"
	if idx := strings.LastIndex(original, "."); idx >= 0 && idx < len(original)-1 {
		ext = strings.ToLower(original[idx+1:])
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "") + "." + ext
}

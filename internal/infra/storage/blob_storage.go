// Package storage implements image uploads on top of gocloud.dev blob
// buckets, so local file buckets and cloud object stores share one code path.
package storage

import (
	"context"
	"fmt"
	"strings"

	"lumea/config"
	"lumea/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and returns an ImageStorage
// backed by it. The returned closer shuts the bucket down on app stop.
func NewBlobStorage(ctx context.Context, cfg *config.StorageConfig) (service.ImageStorage, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	s := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}

	return s, bucket.Close, nil
}

// Store writes the bytes under a fresh random key and returns the public URL.
func (s *blobStorage) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	key := uuid.New().String() + extensionFor(contentType)

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write image to bucket")
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// extensionFor maps the accepted image content types to file extensions.
// Unknown types get no extension rather than a guessed one.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}

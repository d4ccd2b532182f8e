// Package storage implements the blob store on top of gocloud.dev buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"board/config"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultBucketURL = "mem://"

// bucketStore implements service.BlobStore with a gocloud.dev bucket.
type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. An empty bucket URL falls back to an in-memory bucket.
func New(params Params) (service.BlobStore, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Blob storage initialized", slog.String("scheme", scheme(bucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStore(bucket, publicBaseURL, params.Logger), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.BlobStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Put writes data under key and returns publicBaseURL+key, or the bare key when no base URL is set.
func (s *bucketStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", domainerrors.ErrBlobUploadFailed.WrapMessage("empty object key")
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write blob",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrBlobUploadFailed.WrapMessage(err.Error())
	}

	return s.reference(key), nil
}

func (s *bucketStore) reference(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
}

func scheme(bucketURL string) string {
	if i := strings.Index(bucketURL, "://"); i > 0 {
		return bucketURL[:i]
	}

	return bucketURL
}

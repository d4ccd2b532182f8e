package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "board/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_Put(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "https://cdn.example.com/", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ref, err := store.Put(context.Background(), "user_avatar/1700000000me.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/user_avatar/1700000000me.png", ref)

	data, err := bucket.ReadAll(context.Background(), "user_avatar/1700000000me.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(context.Background(), "user_avatar/1700000000me.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBucketStore_PutWithoutBaseURLReturnsKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ref, err := store.Put(context.Background(), "/a/b.txt", []byte("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "a/b.txt", ref)
}

func TestBucketStore_PutEmptyKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := store.Put(context.Background(), "", []byte("x"), "text/plain")
	assert.True(t, errors.Is(err, domainerrors.ErrBlobUploadFailed))
}

func TestBucketStore_PutClosedBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.Close())

	store := NewBucketStore(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := store.Put(context.Background(), "k", []byte("x"), "text/plain")
	assert.True(t, errors.Is(err, domainerrors.ErrBlobUploadFailed))
}

func TestScheme(t *testing.T) {
	assert.Equal(t, "s3", scheme("s3://bucket?region=us-east-1"))
	assert.Equal(t, "mem", scheme("mem://"))
	assert.Equal(t, "bucket", scheme("bucket"))
}

package service

import "context"

// BlobStore persists opaque file content and returns a reference usable by clients.
type BlobStore interface {
	// Put writes data under key and returns the public reference of the stored object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

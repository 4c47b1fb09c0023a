package storage

import "context"

// ObjectStore persists user images and exposes short-lived URLs for
// handing them to downstream APIs.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

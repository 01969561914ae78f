package ports

import "context"

//go:generate mockgen -source=object_storage.go -destination=mocks/object_storage_mock.go -package=mocks

// ObjectStorage stores opaque binary objects under caller-chosen keys.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

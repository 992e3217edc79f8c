package storage

import (
	"context"
	"io"
)

// FileStore abstracts where attachment files live. Paths are relative keys
// owned by the store; callers persist them opaquely.
type FileStore interface {
	// Save writes the file content under the given key.
	Save(ctx context.Context, key string, content io.Reader) error

	// Delete removes the file for the given key. Deleting a missing file is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a file is present for the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	portsstorage "github.com/mkassaw/invoicing_backend/internal/core/ports/storage"
)

// LocalFileStore keeps attachment files on the local disk under a base
// directory. Keys are slash-separated relative paths.
type LocalFileStore struct {
	baseDir string
}

// NewLocalFileStore creates the base directory if needed.
func NewLocalFileStore(baseDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &LocalFileStore{baseDir: baseDir}, nil
}

var _ portsstorage.FileStore = (*LocalFileStore)(nil)

func (s *LocalFileStore) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

// Save writes the content to disk under key, creating parent directories.
func (s *LocalFileStore) Save(ctx context.Context, key string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", key, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to write file %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key. A missing file is not an error.
func (s *LocalFileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

// Exists reports whether a file is present for key.
func (s *LocalFileStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat file %s: %w", key, err)
}

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes images to the local filesystem. Files land under
// baseDir and are served by the HTTP server under baseURL+"/uploads/".
type LocalStorage struct {
	baseDir string // root directory on disk, e.g. "./uploads"
	baseURL string // externally visible server base, e.g. "http://localhost:5000"
}

// NewLocalStorage creates a LocalStorage.
func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, baseURL: baseURL}
}

var _ Storage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (*Object, error) {
	dest := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return nil, fmt.Errorf("storage: write: %w", err)
	}

	return &Object{
		URL:      s.baseURL + "/uploads/" + key,
		PublicID: key,
	}, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a directory on disk. The directory is
// served by the HTTP layer under /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Upload(key string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Delete(key string) error {
	return os.Remove(filepath.Join(s.dir, key))
}

func (s *LocalStorage) URL(key string) string {
	return "/uploads/" + key
}

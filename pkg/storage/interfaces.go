package storage

import "io"

// StorageService persists uploaded event images and hands back the path
// or URL they are served from.
type StorageService interface {
	Upload(key string, src io.Reader) error
	Delete(key string) error
	URL(key string) string
}

package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded files. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2.
type Storage interface {
	// Save stores the file and returns its public URL.
	// key is a unique path within the store (e.g. "projects/<id>/<uuid>.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file for key. Missing files are not an error.
	Delete(ctx context.Context, key string) error
}

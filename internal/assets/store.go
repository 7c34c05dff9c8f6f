// Package assets provides the read-only store behind the static file server.
package assets

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"time"
)

// ErrNotFound is returned when an asset does not exist or the name cannot address one.
var ErrNotFound = errors.New("asset not found")

// ObjectInfo contains basic information about an asset.
// ContentType is empty when the backend does not record one.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Store is a read-only asset store.
// Methods use context and streaming readers; callers must close the returned reader.
type Store interface {
	// Open returns the asset content as a streaming reader alongside its info.
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns asset info without reading content.
	Stat(ctx context.Context, name string) (ObjectInfo, error)
}

// CleanName turns a request path into a store-relative asset name.
// Names with empty, "." or ".." elements are rejected so lookups never leave the store root.
func CleanName(p string) (string, error) {
	name := strings.TrimPrefix(p, "/")
	if name == "" || name == "." || !fs.ValidPath(name) {
		return "", ErrNotFound
	}
	return name, nil
}

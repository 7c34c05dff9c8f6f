package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// localStore serves assets from a directory on disk.
type localStore struct {
	root fs.FS
}

// NewLocal creates a Store rooted at dir. The directory must exist.
func NewLocal(dir string) (Store, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("static dir %q is not a directory", dir)
	}
	return NewFS(os.DirFS(dir)), nil
}

// NewFS creates a Store over any fs.FS, e.g. an embed.FS or fstest.MapFS.
func NewFS(fsys fs.FS) Store {
	return &localStore{root: fsys}
}

func (s *localStore) Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	name, err := CleanName(name)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := s.root.Open(name)
	if err != nil {
		return nil, ObjectInfo{}, translateFSError(err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, translateFSError(err)
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}
	return f, fileInfo(name, st), nil
}

func (s *localStore) Stat(ctx context.Context, name string) (ObjectInfo, error) {
	name, err := CleanName(name)
	if err != nil {
		return ObjectInfo{}, err
	}
	st, err := fs.Stat(s.root, name)
	if err != nil {
		return ObjectInfo{}, translateFSError(err)
	}
	if st.IsDir() {
		return ObjectInfo{}, ErrNotFound
	}
	return fileInfo(name, st), nil
}

func fileInfo(name string, st fs.FileInfo) ObjectInfo {
	return ObjectInfo{
		Key:          name,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}
}

func translateFSError(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return ErrNotFound
	}
	return fmt.Errorf("read asset: %w", err)
}

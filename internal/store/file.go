package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore reads documents from disk. Ids are paths relative to root, or
// absolute paths when root is empty.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

func (s *FileStore) Put(ctx context.Context, id string, raw []byte) error {
	return NewStoreError("file", ErrReadOnly)
}

func (s *FileStore) Get(ctx context.Context, id string) ([]byte, bool, error) {
	path := id
	if s.root != "" {
		path = filepath.Join(s.root, filepath.Clean("/"+id))
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, NewStoreError("file", err)
	}
	return data, true, nil
}

func (s *FileStore) Close() error {
	return nil
}

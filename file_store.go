package frozen

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore implements Store, keeping snapshots as files in a
// directory.  Names are content hashes, so an existing file is never
// rewritten.
type FileStore struct {
	basepath string
}

// NewFileStore returns a FileStore that loads and stores snapshots as
// files in the directory at the given path.
func NewFileStore(path string) FileStore {
	return FileStore{path}
}

// Load loads the bytes persisted in the named file.
func (p FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.basepath, name))
}

// Store persists the given bytes in a file of the given name, if it
// doesn't exist already.
func (p FileStore) Store(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(p.basepath, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.WriteFile(path, data, 0o644)
	}
	return nil
}

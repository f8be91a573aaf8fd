package cashie

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the file name used when no explicit path is given.
const DefaultStoreFile = "cashie.json"

// LoadStore reads the persisted store from path. An absent file is a first
// run and yields a freshly seeded store. A file that exists but cannot be
// parsed also yields a freshly seeded store, together with the ParseError so
// the caller can warn before the next save overwrites the corrupt file.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return NewStore(), &PersistenceError{Path: path, Err: err}
	}
	defer f.Close()

	s, err := DecodeStore(f)
	if err != nil {
		return NewStore(), err
	}
	return s, nil
}

// SaveStore writes the store to path atomically, through a temporary file
// renamed into place, so a crash mid-write never leaves a truncated
// document behind.
func SaveStore(path string, s *Store) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Err: fmt.Errorf("encode: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}

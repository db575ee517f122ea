// Package filex stores uploaded payloads on local disk.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/peerlink/internal/common"
	"github.com/google/uuid"
)

// EnsureDir creates dir (and parents) if needed and returns its absolute
// path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// Store writes uploads under root, one random directory per upload, so the
// file keeps its (sanitized) display name without ever colliding.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	abs, err := EnsureDir(root)
	if err != nil {
		return nil, err
	}
	return &Store{root: abs}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Save writes data to <root>/<uuid>/<name> and returns the absolute path.
// name must already be a single sanitized path element.
func (s *Store) Save(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: unsafe file name %q", common.ErrIOFailure, name)
	}

	dir := filepath.Join(s.root, uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return "", fmt.Errorf("create upload dir: %w", errors.Join(common.ErrIOFailure, err))
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("write upload: %w", errors.Join(common.ErrIOFailure, err))
	}

	return path, nil
}

// Remove deletes a file written by Save together with its directory.
func (s *Store) Remove(path string) error {
	dir := filepath.Dir(path)
	if filepath.Dir(dir) != s.root {
		return fmt.Errorf("%w: %s is outside the store", common.ErrIOFailure, path)
	}
	return os.RemoveAll(dir)
}

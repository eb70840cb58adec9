package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

// LocalStore writes artifacts below a directory on the local file system.
// Each file is replaced atomically, so readers never observe a partially
// written artifact.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at root.
func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root = "."
	}
	return &LocalStore{root: root}
}

// Put writes data to root/name, creating parent directories as needed.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := s.Location(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return writeError(p, err)
	}
	if err := writeFileAtomic(p, data, 0o644); err != nil {
		return writeError(p, err)
	}
	return nil
}

// MakeDir creates root/name and any missing parents.
func (s *LocalStore) MakeDir(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := s.Location(name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return writeError(p, err)
	}
	return nil
}

// Location returns the file system path for name.
func (s *LocalStore) Location(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// writeError classifies a write failure. All of them are fatal.
func writeError(path string, err error) *merrors.MaamarimError {
	code := merrors.ErrCodeWriteFailed
	switch {
	case os.IsPermission(err):
		code = merrors.ErrCodeFilePermission
	case stderrors.Is(err, syscall.ENOSPC):
		code = merrors.ErrCodeDiskFull
	}
	return merrors.New(code, fmt.Sprintf("cannot write %s: %v", path, err), err).
		WithDetail("path", path)
}

var _ Store = (*LocalStore)(nil)

// Package fsutil reads and writes the files edited by blockcont.
//
// Writes are atomic (temp file plus rename) and refuse to clobber a file
// that changed on disk after it was read.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for file operations.
var (
	// ErrNilSnapshot is returned when a nil Snapshot is passed.
	ErrNilSnapshot = errors.New("nil snapshot")

	// ErrNotFound is returned when a file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied is returned when a file cannot be accessed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory is returned when a path names a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrChangedOnDisk is returned when a file changed after it was read.
	ErrChangedOnDisk = errors.New("file changed on disk")
)

// Snapshot records the state of a file when it was read.
type Snapshot struct {
	// Path is the file path.
	Path string

	// Mode is the file permission bits.
	Mode os.FileMode

	// ModTime is the last modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 of the content.
	Hash [32]byte
}

// Read reads the file at path and records a snapshot of it.
func Read(ctx context.Context, path string) (string, *Snapshot, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, classify(path, err)
	}
	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, classify(path, err)
	}

	return string(content), &Snapshot{
		Path:    path,
		Mode:    stat.Mode().Perm(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file differs from the snapshot. A missing
// file counts as changed. Timestamps and sizes are compared first; the
// content hash settles the rest.
func (s *Snapshot) Changed(ctx context.Context) (bool, error) {
	if s == nil {
		return false, ErrNilSnapshot
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("check modified: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	if stat.Size() != s.Size {
		return true, nil
	}
	if stat.ModTime().Equal(s.ModTime) {
		return false, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return sha256.Sum256(content) != s.Hash, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

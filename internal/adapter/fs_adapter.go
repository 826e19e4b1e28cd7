// Package adapter contains infrastructure adapters for the scanspec CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "scanspec.dev/pkg/scanspec/internal/model"
)

// FSAdapter abstracts the filesystem operations the report store relies on,
// so the store can be tested against a temporary directory.
type FSAdapter interface {
	// Walk traverses root. When recursive is false only the root directory
	// itself is listed.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalFSAdapter implements FSAdapter on top of the os package.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reports live in a user-chosen directory
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates path and any missing parents.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is the file access the converter needs. Tests replace it with an
// in-memory implementation.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	Abs(path string) (string, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` and `filepath` packages.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Create truncates or creates the file, creating missing parent directories.
func (DefaultFS) Create(name string) (io.WriteCloser, error) {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(name)
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	_ FileIO = (*LocalFileSystem)(nil)
)

// LocalFileSystem is the default implementation of file io using the os package
type LocalFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *LocalFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir is a wrapper around os.ReadDir
func (o *LocalFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// ReadFile is a wrapper around os.ReadFile
func (o *LocalFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Open is a wrapper around os.Open
func (o *LocalFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// OpenAppend opens name for appending, creating it and its parent directory if needed
func (o *LocalFileSystem) OpenAppend(name string) (io.WriteCloser, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := o.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *LocalFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// FileExists reports whether path can be stat'd
func (o *LocalFileSystem) FileExists(path string) bool {
	_, err := o.Stat(path)
	return err == nil
}

// IsNotExist reports whether err means the file does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

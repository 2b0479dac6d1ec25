package io

import (
	"io"
	"io/fs"
	"os"
)

// FileIO is an interface for the file io the ingester and checkpoint store need
type FileIO interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Open(name string) (io.ReadCloser, error)
	OpenAppend(name string) (io.WriteCloser, error)
	MkdirAll(name string, perm os.FileMode) error
}

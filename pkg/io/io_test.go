package io

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem_OpenAppend(t *testing.T) {
	lfs := &LocalFileSystem{}

	t.Run("creates the file and parent directory", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "nested", "processed.txt")

		w, err := lfs.OpenAppend(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, "first\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())

		b, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(b))
	})

	t.Run("appends to existing content", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "processed.txt")
		require.NoError(t, os.WriteFile(name, []byte("first\n"), 0o644))

		w, err := lfs.OpenAppend(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, "second\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())

		b, err := lfs.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(b))
	})
}

func TestLocalFileSystem_ReadDir(t *testing.T) {
	lfs := &LocalFileSystem{}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.torrent"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.torrent"), []byte("a"), 0o644))

	entries, err := lfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.torrent", entries[0].Name())
}

func TestLocalFileSystem_FileExists(t *testing.T) {
	lfs := &LocalFileSystem{}

	tempFile, err := os.CreateTemp(t.TempDir(), "testfile")
	require.NoError(t, err)
	defer tempFile.Close()

	assert.True(t, lfs.FileExists(tempFile.Name()))
	assert.False(t, lfs.FileExists("/non/existent/path"))

	_, err = lfs.Stat("/non/existent/path")
	assert.True(t, IsNotExist(err))
}

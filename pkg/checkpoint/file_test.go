package checkpoint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/io/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFileStore_LoadMissing(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "processed.txt"), filepath.Join(dir, "failed.txt"))

	hashes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, hashes.Size())
}

func TestFileStore_RecordAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	processed := filepath.Join(dir, "state", "processed.txt")
	failed := filepath.Join(dir, "state", "failed.txt")

	store := NewFileStore(processed, failed)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Record(ctx, "abc"))
	require.NoError(t, store.Record(ctx, "def"))
	require.NoError(t, store.Record(ctx, "abc"))

	b, err := os.ReadFile(processed)
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef\n", string(b))

	reopened := NewFileStore(processed, failed)
	hashes, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"abc", "def"}, hashes.Values())

	require.NoError(t, reopened.Record(ctx, "def"))
	b, err = os.ReadFile(processed)
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef\n", string(b))
}

func TestFileStore_LoadSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, "processed.txt")
	require.NoError(t, os.WriteFile(processed, []byte("abc\n\n  def  \n\n"), 0o644))

	store := NewFileStore(processed, filepath.Join(dir, "failed.txt"))
	hashes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"abc", "def"}, hashes.Values())
}

func TestFileStore_RecordFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	failed := filepath.Join(dir, "failed.txt")

	store := NewFileStore(filepath.Join(dir, "processed.txt"), failed)
	require.NoError(t, store.RecordFailure(ctx, Failure{Filename: "a.torrent", Reason: "no video file"}))
	require.NoError(t, store.RecordFailure(ctx, Failure{Filename: "a.torrent", Reason: "multi\nline   reason"}))

	b, err := os.ReadFile(failed)
	require.NoError(t, err)
	assert.Equal(t, "a.torrent | no video file\na.torrent | multi line reason\n", string(b))
}

type failingWriter struct {
	writeErr error
	closeErr error
}

func (w failingWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return len(p), nil
}

func (w failingWriter) Close() error {
	return w.closeErr
}

func TestFileStore_RecordErrors(t *testing.T) {
	ctx := context.Background()
	diskFull := errors.New("no space left on device")

	tests := []struct {
		name  string
		setup func(m *mocks.MockFileIO)
	}{
		{
			name: "open fails",
			setup: func(m *mocks.MockFileIO) {
				m.EXPECT().OpenAppend("processed.txt").Return(nil, diskFull)
			},
		},
		{
			name: "write fails",
			setup: func(m *mocks.MockFileIO) {
				m.EXPECT().OpenAppend("processed.txt").Return(failingWriter{writeErr: diskFull}, nil)
			},
		},
		{
			name: "close fails",
			setup: func(m *mocks.MockFileIO) {
				m.EXPECT().OpenAppend("processed.txt").Return(failingWriter{closeErr: diskFull}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fileIO := mocks.NewMockFileIO(ctrl)
			tt.setup(fileIO)

			store := NewFileStoreWithIO(fileIO, "processed.txt", "failed.txt")
			err := store.Record(ctx, "abc")
			assert.ErrorIs(t, err, ErrIO)
			assert.ErrorIs(t, err, diskFull)
		})
	}
}

func TestFileStore_RecordFailedWriteIsRetried(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fileIO := mocks.NewMockFileIO(ctrl)

	gomock.InOrder(
		fileIO.EXPECT().OpenAppend("processed.txt").Return(nil, errors.New("boom")),
		fileIO.EXPECT().OpenAppend("processed.txt").Return(failingWriter{}, nil),
	)

	store := NewFileStoreWithIO(fileIO, "processed.txt", "failed.txt")
	assert.ErrorIs(t, store.Record(ctx, "abc"), ErrIO)
	assert.NoError(t, store.Record(ctx, "abc"))
}

func TestFileStore_LoadReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileIO := mocks.NewMockFileIO(ctrl)
	fileIO.EXPECT().ReadFile("processed.txt").Return(nil, errors.New("permission denied"))

	store := NewFileStoreWithIO(fileIO, "processed.txt", "failed.txt")
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrIO)
}

func TestFileStore_LoadNotExistFromIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileIO := mocks.NewMockFileIO(ctrl)
	fileIO.EXPECT().ReadFile("processed.txt").Return(nil, os.ErrNotExist)

	store := NewFileStoreWithIO(fileIO, "processed.txt", "failed.txt")
	hashes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, hashes.Size())
}

func TestFormatFailure(t *testing.T) {
	assert.Equal(t, "x.torrent | timed out", FormatFailure(Failure{Filename: "x.torrent", Reason: "  timed\tout "}))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, Options{Processed: filepath.Join(dir, "p.txt"), Failed: filepath.Join(dir, "f.txt")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = Open(ctx, Options{Backend: "redis"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

var _ mio.FileIO = (*mocks.MockFileIO)(nil)

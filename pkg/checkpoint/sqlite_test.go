package checkpoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "checkpoint.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)

	version, dirty, err := migrationVersion(store.db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	hashes, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, hashes.Size())

	require.NoError(t, store.Record(ctx, "abc"))
	require.NoError(t, store.Record(ctx, "abc"))
	require.NoError(t, store.Record(ctx, "def"))
	require.NoError(t, store.RecordFailure(ctx, Failure{Filename: "a.torrent", Reason: "timed out"}))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, Options{Backend: BackendSQLite, Database: path})
	require.NoError(t, err)
	defer reopened.Close()

	hashes, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"abc", "def"}, hashes.Values())

	failures, err := reopened.(*SQLiteStore).Failures(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Failure{{Filename: "a.torrent", Reason: "timed out"}}, failures)
}

func TestSQLiteStore_ClosedDatabase(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "checkpoint.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Record(ctx, "abc"), ErrIO)
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrIO)
}

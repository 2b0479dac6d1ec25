package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anacrolix/torrent/bencode"
	"github.com/anacrolix/torrent/metainfo"
	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTorrent(t *testing.T, dir, name string, files ...metainfo.FileInfo) string {
	t.Helper()

	infoBytes, err := bencode.Marshal(metainfo.Info{
		Name:        strings.TrimSuffix(name, ".torrent"),
		PieceLength: 16384,
		Pieces:      make([]byte, 20),
		Files:       files,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&metainfo.MetaInfo{InfoBytes: infoBytes}).Write(&buf))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestReleaseName(t *testing.T) {
	assert.Equal(t, "Some.Movie.2021.1080p", releaseName("Some.Movie.2021.1080p.torrent"))
	assert.Equal(t, "Some.Movie.2021.1080p", releaseName("Some.Movie.2021.1080p.MKV"))
	assert.Equal(t, "Some.Movie.2021", releaseName("Some.Movie.2021"))
}

func TestClassifyRows(t *testing.T) {
	dir := t.TempDir()
	fs := &mio.LocalFileSystem{}

	path := writeTorrent(t, dir, "Show.Name.S02E05.1080p.torrent",
		metainfo.FileInfo{Path: []string{"sample.mkv"}, Length: 10},
		metainfo.FileInfo{Path: []string{"Show.Name.S02E05.1080p.mp4"}, Length: 5000},
	)

	rows := classifyRows(fs, []string{
		"Some.Movie.2021.1080p.mkv",
		path,
		"Some.Movie.1080p",
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Some.Movie.2021.1080p.mkv", "movie", "Some Movie (2021)/Some Movie (2021).mkv", ""}, rows[0])
	assert.Equal(t, []string{"Show.Name.S02E05.1080p.torrent", "tv", "Show Name/Season 02/Show Name - S02E05.mp4", ""}, rows[1])
	assert.Equal(t, "Some.Movie.1080p", rows[2][0])
	assert.Contains(t, rows[2][3], "no year found")
}

func TestPreviewNames(t *testing.T) {
	dir := t.TempDir()
	fs := &mio.LocalFileSystem{}

	writeTorrent(t, dir, "b.2020.torrent", metainfo.FileInfo{Path: []string{"b.mkv"}, Length: 1})
	writeTorrent(t, dir, "a.2020.TORRENT", metainfo.FileInfo{Path: []string{"a.mkv"}, Length: 1})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	names, err := previewNames(fs, dir)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "a.2020.TORRENT", filepath.Base(names[0]))
	assert.Equal(t, "b.2020.torrent", filepath.Base(names[1]))

	names, err = previewNames(fs, "Some.Movie.2021")
	require.NoError(t, err)
	assert.Equal(t, []string{"Some.Movie.2021"}, names)
}

func TestCategoryRows(t *testing.T) {
	rows := categoryRows(map[string]qbittorrent.Category{
		"tv":     {Name: "tv", SavePath: "/data/tv"},
		"Movies": {Name: "Movies", SavePath: "/data/movies"},
	})
	assert.Equal(t, [][]string{{"Movies", "/data/movies"}, {"tv", "/data/tv"}}, rows)
}

func TestTorrentRows(t *testing.T) {
	rows := torrentRows([]qbittorrent.Torrent{
		{Hash: "aaaaaaaaaaaa", Name: "old", AddedOn: 100, Size: 2000, Progress: 0.5, State: "pausedDL"},
		{Hash: "bbbb", Name: "new", AddedOn: 200, Size: 0, Progress: 1, State: "uploading"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "bbbb", rows[0][0])
	assert.Equal(t, "new", rows[0][1])
	assert.Equal(t, "100.0%", rows[0][4])
	assert.Equal(t, "aaaaaaaa", rows[1][0])
	assert.Equal(t, "2.0 kB", rows[1][3])
	assert.Equal(t, "50.0%", rows[1][4])
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil, nil))

	out := renderTable([]string{"Name", "Size"}, [][]string{{"a", "1 kB"}, {"b"}}, []columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "1 kB")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, isTerminal(&buf))
}

package torrentfile

import (
	"bytes"
	"errors"
	"fmt"
	"path"

	"github.com/anacrolix/torrent/metainfo"
)

// ErrInvalid is returned for files that do not decode as torrent metainfo
var ErrInvalid = errors.New("invalid torrent file")

// Metainfo is the subset of a .torrent file the ingester cares about
type Metainfo struct {
	Name     string
	InfoHash string
	Files    []File
}

// File is a single payload file, with the path relative to the torrent root
type File struct {
	Path   string
	Length int64
}

// TotalLength is the payload size in bytes
func (m Metainfo) TotalLength() int64 {
	var total int64
	for _, f := range m.Files {
		total += f.Length
	}
	return total
}

// Inspect decodes .torrent bytes
func Inspect(content []byte) (Metainfo, error) {
	var m Metainfo

	mi, err := metainfo.Load(bytes.NewReader(content))
	if err != nil {
		return m, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	info, err := mi.UnmarshalInfo()
	if err != nil {
		return m, fmt.Errorf("%w: failed to unmarshal info: %w", ErrInvalid, err)
	}

	if info.Name == "" {
		return m, fmt.Errorf("%w: torrent has no name", ErrInvalid)
	}

	m.Name = info.Name
	m.InfoHash = mi.HashInfoBytes().HexString()

	if !info.IsDir() {
		m.Files = []File{{Path: info.Name, Length: info.Length}}
		return m, nil
	}

	m.Files = make([]File, 0, len(info.Files))
	for _, f := range info.Files {
		m.Files = append(m.Files, File{
			Path:   path.Join(info.Name, f.DisplayPath(&info)),
			Length: f.Length,
		})
	}

	return m, nil
}

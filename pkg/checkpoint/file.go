package checkpoint

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/logger"
	"github.com/kasuboski/ingestz/pkg/set"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps checkpoints as line-delimited text files, one hash per line
// in the processed file and one "filename | reason" line per failure.
type FileStore struct {
	fs        mio.FileIO
	processed string
	failed    string

	mu    sync.Mutex
	known *set.Set[string]
}

// NewFileStore creates a FileStore on the local filesystem
func NewFileStore(processed, failed string) *FileStore {
	return NewFileStoreWithIO(&mio.LocalFileSystem{}, processed, failed)
}

// NewFileStoreWithIO creates a FileStore using the given file io
func NewFileStoreWithIO(fs mio.FileIO, processed, failed string) *FileStore {
	return &FileStore{
		fs:        fs,
		processed: processed,
		failed:    failed,
		known:     set.New[string](),
	}
}

// Load reads the processed file. A missing file is an empty checkpoint.
func (s *FileStore) Load(ctx context.Context) (*set.Set[string], error) {
	log := logger.FromCtx(ctx)

	b, err := s.fs.ReadFile(s.processed)
	if err != nil {
		if mio.IsNotExist(err) {
			log.Debugw("no checkpoint file yet", "path", s.processed)
			return set.New[string](), nil
		}
		return nil, ioError("read", s.processed, err)
	}

	hashes := set.New[string]()
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		hashes.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("read", s.processed, err)
	}

	s.mu.Lock()
	s.known = set.New(hashes.Values()...)
	s.mu.Unlock()

	log.Debugw("loaded checkpoints", "path", s.processed, "count", hashes.Size())
	return hashes, nil
}

// Record appends hash to the processed file unless it is already there
func (s *FileStore) Record(ctx context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.known.Has(hash) {
		return nil
	}

	if err := s.appendLine(s.processed, hash); err != nil {
		return err
	}

	s.known.Add(hash)
	return nil
}

// RecordFailure appends a failure line to the failure log
func (s *FileStore) RecordFailure(ctx context.Context, failure Failure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLine(s.failed, FormatFailure(failure))
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) appendLine(path, line string) error {
	w, err := s.fs.OpenAppend(path)
	if err != nil {
		return ioError("open", path, err)
	}

	_, err = fmt.Fprintln(w, line)
	if err != nil {
		w.Close()
		return ioError("write", path, err)
	}

	if err := w.Close(); err != nil {
		return ioError("close", path, err)
	}

	return nil
}

// FormatFailure renders a failure as a single "filename | reason" line
func FormatFailure(f Failure) string {
	reason := strings.Join(strings.Fields(f.Reason), " ")
	return fmt.Sprintf("%s | %s", f.Filename, reason)
}

package checkpoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/ingestz/pkg/set"
)

var (
	// ErrIO is returned when a checkpoint could not be persisted
	ErrIO = errors.New("checkpoint io error")
	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown checkpoint backend")
)

// Store keeps the durable record of which torrent files were fully ingested
// and an append-only diagnostic log of the ones that failed.
type Store interface {
	// Load reads every recorded hash. It is called once at the start of a run.
	Load(ctx context.Context) (*set.Set[string], error)
	// Record appends a hash. A failure to persist is returned wrapping ErrIO.
	Record(ctx context.Context, hash string) error
	// RecordFailure appends a diagnostic entry. Callers log and continue on error.
	RecordFailure(ctx context.Context, failure Failure) error
	Close() error
}

// Failure is a diagnostic entry for a torrent file that could not be ingested
type Failure struct {
	Filename string
	Reason   string
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Options selects and configures a Store implementation
type Options struct {
	Backend   string
	Processed string
	Failed    string
	Database  string
}

// Open creates the Store described by opts
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Processed, opts.Failed), nil
	case BackendSQLite:
		return NewSQLiteStore(ctx, opts.Database)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}

func ioError(op, target string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, target, err)
}

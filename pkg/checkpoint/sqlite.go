package checkpoint

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasuboski/ingestz/pkg/logger"
	"github.com/kasuboski/ingestz/pkg/set"
	_ "github.com/mattn/go-sqlite3"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps checkpoints in a sqlite database
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the database at path and applies pending migrations
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	log := logger.FromCtx(ctx)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, ioError("open", path, err)
	}

	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, ioError("migrate", path, err)
	}

	log.Debugw("opened checkpoint database", "path", path)
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*set.Set[string], error) {
	rows, err := s.db.QueryContext(ctx, `SELECT hash FROM processed`)
	if err != nil {
		return nil, ioError("query", s.path, err)
	}
	defer rows.Close()

	hashes := set.New[string]()
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, ioError("scan", s.path, err)
		}
		hashes.Add(hash)
	}

	if err := rows.Err(); err != nil {
		return nil, ioError("query", s.path, err)
	}

	return hashes, nil
}

func (s *SQLiteStore) Record(ctx context.Context, hash string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO processed (hash) VALUES (?)`, hash)
	if err != nil {
		return ioError("insert", s.path, err)
	}

	return nil
}

func (s *SQLiteStore) RecordFailure(ctx context.Context, failure Failure) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO failure (filename, reason) VALUES (?, ?)`, failure.Filename, failure.Reason)
	if err != nil {
		return ioError("insert", s.path, err)
	}

	return nil
}

// Failures lists recorded failures, oldest first
func (s *SQLiteStore) Failures(ctx context.Context) ([]Failure, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT filename, reason FROM failure ORDER BY id`)
	if err != nil {
		return nil, ioError("query", s.path, err)
	}
	defer rows.Close()

	failures := make([]Failure, 0)
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.Filename, &f.Reason); err != nil {
			return nil, ioError("scan", s.path, err)
		}
		failures = append(failures, f)
	}

	return failures, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint database: %w", err)
	}
	return nil
}

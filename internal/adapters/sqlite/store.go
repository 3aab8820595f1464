package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.CategoryStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// Ensure Store implements CategoryStore
var _ ports.CategoryStore = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a new SQLite store
func NewStore(opts ...Option) *Store {
	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens (creating if needed) the database at dbPath
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps the pragmas below in effect for every query.
	db.SetMaxOpenConns(1)
	s.db = db

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS categories (
			pk INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			parent INTEGER REFERENCES categories(pk)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories(parent);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	s.logger.Debug("opened category store", zap.String("path", dbPath))
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the resolved database path
func (s *Store) Path() string {
	return s.dbPath
}

// List returns all categories ordered by primary key
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT pk, name, parent FROM categories ORDER BY pk`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var (
			r      domain.Record
			pk     int64
			parent sql.NullInt64
		)
		if err := rows.Scan(&pk, &r.Name, &parent); err != nil {
			return nil, err
		}
		r.ID = domain.Key(pk)
		if parent.Valid {
			r.ParentID = domain.ParentKey(domain.Key(parent.Int64))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("listed categories", zap.Int("count", len(records)))
	return records, nil
}

// Replace makes the stored categories equal to records in one transaction.
// Malformed sets are rejected before anything is written.
func (s *Store) Replace(ctx context.Context, records []domain.Record) (err error) {
	if err := domain.Validate(records); err != nil {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Warn("rollback failed", zap.Error(rbErr))
			}
			s.logger.Warn("replace rolled back", zap.Error(err))
		}
	}()

	keep := make(map[domain.Key]bool, len(records))
	for _, r := range records {
		keep[r.ID] = true
	}
	deleted, err := tx.DeleteExcept(ctx, keep)
	if err != nil {
		return fmt.Errorf("failed to delete removed categories: %w", err)
	}

	for _, r := range records {
		if err := tx.Upsert(ctx, r); err != nil {
			return fmt.Errorf("failed to write category %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Debug("replaced categories",
		zap.Int("written", len(records)),
		zap.Int("deleted", deleted),
	)
	return nil
}

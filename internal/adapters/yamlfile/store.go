package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// entry is the on-disk shape of one category
type entry struct {
	ID     int64  `yaml:"id"`
	Name   string `yaml:"name"`
	Parent *int64 `yaml:"parent,omitempty"`
}

// Store implements ports.CategoryStore on a YAML file holding a list of entries
type Store struct {
	path   string
	logger *zap.Logger
}

var _ ports.CategoryStore = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a store backed by the file at path.
// The file is not touched until List or Replace.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List reads all categories in file order. A missing file is an empty store.
// Every entry needs a positive id.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	records := make([]domain.Record, 0, len(entries))
	for i, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("failed to parse %s: entry %d (%q): id must be a positive integer", s.path, i+1, e.Name)
		}
		r := domain.Record{ID: domain.Key(e.ID), Name: e.Name}
		if e.Parent != nil {
			r.ParentID = domain.ParentKey(domain.Key(*e.Parent))
		}
		records = append(records, r)
	}

	s.logger.Debug("read categories", zap.String("path", s.path), zap.Int("count", len(records)))
	return records, nil
}

// Replace writes records to the file, via a temporary file and rename.
// Malformed sets are rejected before anything is written.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.Validate(records); err != nil {
		return err
	}

	entries := make([]entry, 0, len(records))
	for _, r := range records {
		e := entry{ID: int64(r.ID), Name: r.Name}
		if r.ParentID != nil {
			p := int64(*r.ParentID)
			e.Parent = &p
		}
		entries = append(entries, e)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".categories-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.logger.Debug("wrote categories", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}

// Close is a no-op; the file is not held open
func (s *Store) Close() error {
	return nil
}

package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookkeeper/internal/domain"
)

// memStore is an in-memory ports.CategoryStore
type memStore struct {
	records    []domain.Record
	replaceErr error
	replaced   int
}

func (s *memStore) List(ctx context.Context) ([]domain.Record, error) {
	return append([]domain.Record(nil), s.records...), nil
}

func (s *memStore) Replace(ctx context.Context, records []domain.Record) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced++
	s.records = append([]domain.Record(nil), records...)
	return nil
}

func (s *memStore) Close() error {
	return nil
}

func expenseStore() *memStore {
	return &memStore{records: []domain.Record{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transport"},
		{ID: 3, Name: "Groceries", ParentID: domain.ParentKey(1)},
		{ID: 4, Name: "Restaurants", ParentID: domain.ParentKey(1)},
	}}
}

func loadedSession(t *testing.T, store *memStore) *domain.Session {
	t.Helper()
	session := domain.NewSession()
	if _, err := NewLoadCommand(store, session).Execute(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return session
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

var errDiskFull = errors.New("disk full")

package ports

import (
	"context"

	"bookkeeper/internal/domain"
)

// CategoryStore loads and persists the flat category list.
// List returns records in a stable order; that order decides sibling order
// in the tree. Replace makes the stored set equal to records atomically.
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Record, error)
	Replace(ctx context.Context, records []domain.Record) error
	Close() error
}

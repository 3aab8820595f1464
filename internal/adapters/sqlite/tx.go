package sqlite

import (
	"context"
	"database/sql"

	"bookkeeper/internal/domain"
)

// categoryTx groups the writes of one Replace
type categoryTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*categoryTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &categoryTx{tx: tx}, nil
}

// Upsert inserts or updates a category
func (t *categoryTx) Upsert(ctx context.Context, r domain.Record) error {
	var parent sql.NullInt64
	if r.ParentID != nil {
		parent = sql.NullInt64{Int64: int64(*r.ParentID), Valid: true}
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO categories (pk, name, parent)
		VALUES (?, ?, ?)
		ON CONFLICT(pk) DO UPDATE SET name = excluded.name, parent = excluded.parent
	`, int64(r.ID), r.Name, parent)
	return err
}

// DeleteExcept removes every category whose key is not in keep.
// It returns the number of rows removed.
func (t *categoryTx) DeleteExcept(ctx context.Context, keep map[domain.Key]bool) (int, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT pk FROM categories`)
	if err != nil {
		return 0, err
	}
	var doomed []int64
	for rows.Next() {
		var pk int64
		if err := rows.Scan(&pk); err != nil {
			rows.Close()
			return 0, err
		}
		if !keep[domain.Key(pk)] {
			doomed = append(doomed, pk)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, pk := range doomed {
		if _, err := t.tx.ExecContext(ctx, `DELETE FROM categories WHERE pk = ?`, pk); err != nil {
			return 0, err
		}
	}
	return len(doomed), nil
}

// Commit commits the transaction
func (t *categoryTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *categoryTx) Rollback() error {
	return t.tx.Rollback()
}

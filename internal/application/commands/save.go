package commands

import (
	"context"
	"fmt"

	"bookkeeper/internal/application"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// SaveResult contains the result of a save operation
type SaveResult struct {
	Count   int
	Message string
}

// SaveCommand flattens the session tree and writes it to the store. The
// session is reloaded from the store afterwards so it starts clean.
type SaveCommand struct {
	store   ports.CategoryStore
	session *domain.Session
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(store ports.CategoryStore, session *domain.Session) *SaveCommand {
	return &SaveCommand{
		store:   store,
		session: session,
	}
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context) (*SaveResult, error) {
	records, err := c.session.Flatten()
	if err != nil {
		return nil, &application.SaveError{Count: c.session.Tree().Len(), Err: err}
	}

	if err := c.store.Replace(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	if _, err := NewLoadCommand(c.store, c.session).Execute(ctx); err != nil {
		return nil, err
	}

	return &SaveResult{
		Count:   len(records),
		Message: fmt.Sprintf("Saved %d categories", len(records)),
	}, nil
}

package commands

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// LoadResult contains the result of loading a snapshot
type LoadResult struct {
	Count   int
	Message string
}

// LoadCommand reads the category list from a store into a session
type LoadCommand struct {
	store   ports.CategoryStore
	session *domain.Session
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(store ports.CategoryStore, session *domain.Session) *LoadCommand {
	return &LoadCommand{
		store:   store,
		session: session,
	}
}

// Execute runs the load command
func (c *LoadCommand) Execute(ctx context.Context) (*LoadResult, error) {
	records, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if err := c.session.Load(records); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return &LoadResult{
		Count:   len(records),
		Message: fmt.Sprintf("Loaded %d categories", len(records)),
	}, nil
}

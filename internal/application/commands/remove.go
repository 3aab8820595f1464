package commands

import (
	"context"
	"fmt"

	"bookkeeper/internal/application"
	"bookkeeper/internal/domain"
)

// RemoveResult contains the result of a remove operation
type RemoveResult struct {
	Removed []domain.Key
	Message string
}

// RemoveCommand removes a category and its whole subtree from a session
type RemoveCommand struct {
	session *domain.Session
	ID      domain.Key
}

// NewRemoveCommand creates a new RemoveCommand
func NewRemoveCommand(session *domain.Session, id domain.Key) *RemoveCommand {
	return &RemoveCommand{
		session: session,
		ID:      id,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveCommand) Validate() error {
	if c.ID <= 0 {
		return &application.ValidationError{
			Field:   "id",
			Message: "ID is required",
		}
	}
	return nil
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context) (*RemoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name, err := c.session.Label(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %d: %w", c.ID, err)
	}

	removed, err := c.session.Remove(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %d: %w", c.ID, err)
	}

	msg := fmt.Sprintf("Removed %d %s", c.ID, name)
	if n := len(removed) - 1; n > 0 {
		msg += fmt.Sprintf(" and %d subcategories", n)
	}

	return &RemoveResult{
		Removed: removed,
		Message: msg,
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"bookkeeper/internal/application"
	"bookkeeper/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID      domain.Key
	OldName string
	NewName string
	Message string
}

// RenameCommand relabels a category in the session tree
type RenameCommand struct {
	session *domain.Session
	ID      domain.Key
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(session *domain.Session, id domain.Key, newName string) *RenameCommand {
	return &RenameCommand{
		session: session,
		ID:      id,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if c.ID <= 0 {
		return &application.ValidationError{
			Field:   "id",
			Message: "ID is required",
		}
	}
	return application.ValidateRequired("name", c.NewName)
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	oldName, err := c.session.Label(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	newName := strings.TrimSpace(c.NewName)
	if err := c.session.Rename(c.ID, newName); err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	return &RenameResult{
		ID:      c.ID,
		OldName: oldName,
		NewName: newName,
		Message: fmt.Sprintf("Renamed %s to %s", oldName, newName),
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"bookkeeper/internal/application"
	"bookkeeper/internal/domain"
)

// AddResult contains the result of adding a category
type AddResult struct {
	Record  domain.Record
	Message string
}

// AddCommand adds a pending category to a session. The new category is
// only stored once the session is saved.
type AddCommand struct {
	session  *domain.Session
	Name     string
	ParentID *domain.Key
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(session *domain.Session, name string, parentID *domain.Key) *AddCommand {
	return &AddCommand{
		session:  session,
		Name:     name,
		ParentID: parentID,
	}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	added, err := c.session.Add(strings.TrimSpace(c.Name), c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to add category: %w", err)
	}

	return &AddResult{
		Record:  added,
		Message: fmt.Sprintf("Added category: %d %s", added.ID, added.Name),
	}, nil
}

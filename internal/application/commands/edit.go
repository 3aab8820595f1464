package commands

import (
	"context"
	"fmt"

	"bookkeeper/internal/ports"
)

// ExternalEditCommand edits the whole category set as a file: the stored
// categories are written to file, the user edits it, and the result is
// validated and written back. A malformed edit leaves the store untouched.
type ExternalEditCommand struct {
	store  ports.CategoryStore
	file   ports.CategoryStore
	path   string
	opener ports.EditorOpener
}

// NewExternalEditCommand creates a new ExternalEditCommand. file is the
// store backed by the file at path.
func NewExternalEditCommand(store, file ports.CategoryStore, path string, opener ports.EditorOpener) *ExternalEditCommand {
	return &ExternalEditCommand{
		store:  store,
		file:   file,
		path:   path,
		opener: opener,
	}
}

// Prepare writes the stored categories to the file
func (c *ExternalEditCommand) Prepare(ctx context.Context) error {
	if _, err := NewTransferCommand(c.store, c.file).Execute(ctx); err != nil {
		return fmt.Errorf("failed to prepare edit file: %w", err)
	}
	return nil
}

// Apply reads the edited file back into the store
func (c *ExternalEditCommand) Apply(ctx context.Context) (*TransferResult, error) {
	result, err := NewTransferCommand(c.file, c.store).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("edit not applied: %w", err)
	}
	result.Message = fmt.Sprintf("Applied edit: %d categories", result.Count)
	return result, nil
}

// Execute runs Prepare, the editor and Apply in turn
func (c *ExternalEditCommand) Execute(ctx context.Context) (*TransferResult, error) {
	if err := c.Prepare(ctx); err != nil {
		return nil, err
	}
	if err := c.opener.OpenFile(c.path); err != nil {
		return nil, err
	}
	return c.Apply(ctx)
}

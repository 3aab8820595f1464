package commands

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// TransferResult contains the result of copying categories between stores
type TransferResult struct {
	Count   int
	Message string
}

// TransferCommand copies the whole category set from one store to another.
// Import and export are both transfers; the set is validated on the way.
type TransferCommand struct {
	from ports.CategoryStore
	to   ports.CategoryStore
}

// NewTransferCommand creates a new TransferCommand
func NewTransferCommand(from, to ports.CategoryStore) *TransferCommand {
	return &TransferCommand{
		from: from,
		to:   to,
	}
}

// Execute runs the transfer command
func (c *TransferCommand) Execute(ctx context.Context) (*TransferResult, error) {
	records, err := c.from.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if err := domain.Validate(records); err != nil {
		return nil, fmt.Errorf("refusing to copy malformed categories: %w", err)
	}

	if err := c.to.Replace(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to write categories: %w", err)
	}

	return &TransferResult{
		Count:   len(records),
		Message: fmt.Sprintf("Copied %d categories", len(records)),
	}, nil
}

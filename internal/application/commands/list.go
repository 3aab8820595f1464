package commands

import (
	"context"
	"strings"

	"bookkeeper/internal/domain"
)

// ListEntry is one category row in display order
type ListEntry struct {
	ID       domain.Key  `json:"id"`
	Name     string      `json:"name"`
	ParentID *domain.Key `json:"parent_id"`
	Depth    int         `json:"depth"`
	Path     string      `json:"path"`
}

// PathSeparator joins labels in ListEntry.Path
const PathSeparator = " / "

// ListCommand lists every category of a session in tree order
type ListCommand struct {
	session *domain.Session
}

// NewListCommand creates a new ListCommand
func NewListCommand(session *domain.Session) *ListCommand {
	return &ListCommand{session: session}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]ListEntry, error) {
	var entries []ListEntry
	c.session.Tree().Root.Walk(func(n *domain.Node) {
		entry := ListEntry{
			ID:    n.ID,
			Name:  n.Label,
			Depth: n.Depth(),
			Path:  strings.Join(n.Path(), PathSeparator),
		}
		if n.Parent != nil && !n.Parent.IsRoot() {
			entry.ParentID = domain.ParentKey(n.Parent.ID)
		}
		entries = append(entries, entry)
	})
	return entries, nil
}

// DropdownCommand lists parent choices for a new category
type DropdownCommand struct {
	session *domain.Session
}

// NewDropdownCommand creates a new DropdownCommand
func NewDropdownCommand(session *domain.Session) *DropdownCommand {
	return &DropdownCommand{session: session}
}

// Execute runs the dropdown command
func (c *DropdownCommand) Execute(ctx context.Context) ([]domain.DropdownEntry, error) {
	return c.session.Dropdown(), nil
}

package commands

import (
	"context"

	"bookkeeper/internal/domain"
)

// TreeEntry is one category with its subcategories nested
type TreeEntry struct {
	ID       domain.Key  `json:"id"`
	Name     string      `json:"name"`
	Children []TreeEntry `json:"children,omitempty"`
}

// TreeCommand returns the session tree as nested entries
type TreeCommand struct {
	session *domain.Session
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(session *domain.Session) *TreeCommand {
	return &TreeCommand{session: session}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) ([]TreeEntry, error) {
	return treeEntries(c.session.Tree().Root.Children), nil
}

func treeEntries(nodes []*domain.Node) []TreeEntry {
	if len(nodes) == 0 {
		return nil
	}
	entries := make([]TreeEntry, 0, len(nodes))
	for _, n := range nodes {
		entries = append(entries, TreeEntry{
			ID:       n.ID,
			Name:     n.Label,
			Children: treeEntries(n.Children),
		})
	}
	return entries
}

package commands

import (
	"context"
	"testing"
)

func TestTreeCommand(t *testing.T) {
	session := loadedSession(t, expenseStore())

	entries, err := NewTreeCommand(session).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 top-level entries, got %d", len(entries))
	}
	food := entries[0]
	if food.Name != "Food" || len(food.Children) != 2 {
		t.Fatalf("unexpected Food entry %+v", food)
	}
	if food.Children[0].Name != "Groceries" || food.Children[1].Name != "Restaurants" {
		t.Errorf("unexpected children order %+v", food.Children)
	}
	if entries[1].Name != "Transport" || entries[1].Children != nil {
		t.Errorf("unexpected Transport entry %+v", entries[1])
	}
}

func TestTreeCommand_PendingRename(t *testing.T) {
	session := loadedSession(t, expenseStore())
	if err := session.Rename(4, "Dining out"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	entries, _ := NewTreeCommand(session).Execute(context.Background())
	if got := entries[0].Children[1].Name; got != "Dining out" {
		t.Errorf("expected pending label in tree, got %s", got)
	}
}

package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bookkeeper/internal/adapters/tui/views"
	"bookkeeper/internal/adapters/yamlfile"
	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// drive feeds msg to the app and then follows the view messages its
// commands produce. Cursor blink and other timer messages end the chain.
func drive(a *App, msg tea.Msg) {
	for msg != nil {
		_, cmd := a.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if !isViewMsg(msg) {
			return
		}
	}
}

func isViewMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case views.SwitchToAddMsg, views.SwitchToRenameMsg, views.SwitchToDeleteMsg,
		views.SwitchToHelpMsg, views.SwitchToEditorMsg, views.ExternalEditMsg,
		views.EditDoneMsg, views.EditErrMsg:
		return true
	}
	return false
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_ViewSwitching(t *testing.T) {
	store := yamlfile.NewStore(filepath.Join(t.TempDir(), "categories.yaml"))
	records := []domain.Record{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Groceries", ParentID: domain.ParentKey(1)},
	}
	if err := store.Replace(context.Background(), records); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := NewApp(store, nil, nil)
	drive(app, app.Init()())
	if app.state != ViewEditor {
		t.Fatalf("expected editor view, got %d", app.state)
	}

	drive(app, runeKey("?"))
	if app.state != ViewHelp {
		t.Fatalf("expected help view, got %d", app.state)
	}
	drive(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.state != ViewEditor {
		t.Fatalf("expected editor view after closing help, got %d", app.state)
	}

	drive(app, runeKey("d"))
	if app.state != ViewDelete {
		t.Fatalf("expected delete view, got %d", app.state)
	}
	drive(app, runeKey("y"))
	if app.state != ViewEditor {
		t.Fatalf("expected editor view after delete, got %d", app.state)
	}
	if app.Session().Tree().Len() != 0 {
		t.Errorf("expected empty tree, got %d nodes", app.Session().Tree().Len())
	}
	if !strings.Contains(app.View(), "No categories yet") {
		t.Error("expected empty-state hint in editor view")
	}
}

func TestApp_EditErrorStaysOnForm(t *testing.T) {
	store := yamlfile.NewStore(filepath.Join(t.TempDir(), "categories.yaml"))

	app := NewApp(store, nil, nil)
	drive(app, app.Init()())

	drive(app, runeKey("N"))
	if app.state != ViewAdd {
		t.Fatalf("expected add view, got %d", app.state)
	}

	drive(app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != ViewAdd {
		t.Fatalf("expected to stay on add view, got %d", app.state)
	}
	if !strings.Contains(app.View(), "name is required") {
		t.Error("expected validation message on add form")
	}

	_, _ = app.Update(views.SwitchToEditorMsg{})
	if app.state != ViewEditor {
		t.Errorf("expected editor view, got %d", app.state)
	}
}

func TestApp_ExternalEdit(t *testing.T) {
	dir := t.TempDir()
	store := yamlfile.NewStore(filepath.Join(dir, "categories.yaml"))
	if err := store.Replace(context.Background(), []domain.Record{{ID: 1, Name: "Food"}}); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := NewApp(store, nil, nil)
	drive(app, app.Init()())

	drive(app, runeKey("e"))
	if !strings.Contains(app.View(), "no editor configured") {
		t.Error("expected missing editor message")
	}

	path := filepath.Join(dir, "edit.yaml")
	edit := commands.NewExternalEditCommand(store, yamlfile.NewStore(path), path, nil)
	if err := edit.Prepare(context.Background()); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	edited := "- id: 1\n  name: Eating\n- id: 2\n  name: Snacks\n  parent: 1\n"
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatalf("failed to write edit: %v", err)
	}

	app.Update(externalEditDoneMsg{edit: edit, path: path})

	if app.Session().Tree().Len() != 2 {
		t.Fatalf("expected 2 categories after edit, got %d", app.Session().Tree().Len())
	}
	label, _ := app.Session().Label(1)
	if label != "Eating" {
		t.Errorf("expected Eating, got %s", label)
	}
	if !strings.Contains(app.View(), "Applied edit: 2 categories") {
		t.Error("expected applied message in editor view")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected edit file to be removed")
	}
}

func TestApp_ExternalEditRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	store := yamlfile.NewStore(filepath.Join(dir, "categories.yaml"))
	if err := store.Replace(context.Background(), []domain.Record{{ID: 1, Name: "Food"}}); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := NewApp(store, nil, nil)
	drive(app, app.Init()())

	path := filepath.Join(dir, "edit.yaml")
	edit := commands.NewExternalEditCommand(store, yamlfile.NewStore(path), path, nil)
	broken := "- id: 1\n  name: Food\n- id: 2\n  name: Orphan\n  parent: 7\n"
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatalf("failed to write edit: %v", err)
	}

	app.Update(externalEditDoneMsg{edit: edit, path: path})

	if !strings.Contains(app.View(), "broken parent reference") {
		t.Error("expected rejection message")
	}
	records, _ := store.List(context.Background())
	if len(records) != 1 {
		t.Errorf("rejected edit changed the store: %d records", len(records))
	}
}

package views

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookkeeper/internal/adapters/yamlfile"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

func seededStore(t *testing.T) ports.CategoryStore {
	t.Helper()

	store := yamlfile.NewStore(filepath.Join(t.TempDir(), "categories.yaml"))
	records := []domain.Record{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transport"},
		{ID: 3, Name: "Groceries", ParentID: domain.ParentKey(1)},
		{ID: 4, Name: "Restaurants", ParentID: domain.ParentKey(1)},
	}
	if err := store.Replace(context.Background(), records); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return store
}

func loadedEditor(t *testing.T) (*EditorModel, *domain.Session, ports.CategoryStore) {
	t.Helper()

	store := seededStore(t)
	session := domain.NewSession()
	m := NewEditorModel(store, session, zap.NewNop())
	m.Update(m.Init()())
	if m.MessageErr {
		t.Fatalf("load failed: %s", m.Message)
	}
	return m, session, store
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyPress(k))
	}
	return cmd
}

func selectedLabel(m *EditorModel) string {
	if n := m.SelectedNode(); n != nil {
		return n.Label
	}
	return ""
}

func TestEditor_LoadShowsAllRows(t *testing.T) {
	m, _, _ := loadedEditor(t)

	if m.rows.Len() != 4 {
		t.Fatalf("expected 4 visible rows, got %d", m.rows.Len())
	}
	if m.Message != "Loaded 4 categories" {
		t.Errorf("unexpected load message %q", m.Message)
	}

	view := m.View()
	for _, label := range []string{"Food", "Groceries", "Restaurants", "Transport"} {
		if !strings.Contains(view, label) {
			t.Errorf("expected %s in view", label)
		}
	}
}

func TestEditor_Navigation(t *testing.T) {
	m, _, _ := loadedEditor(t)

	tests := []struct {
		key      string
		selected string
		visible  int
	}{
		{"j", "Groceries", 4},
		{"j", "Restaurants", 4},
		{"h", "Food", 4},
		{"h", "Food", 2},
		{"j", "Transport", 2},
		{"k", "Food", 2},
		{"l", "Food", 4},
		{"enter", "Food", 2},
		{"enter", "Food", 4},
	}

	for i, tt := range tests {
		press(t, m, tt.key)
		if got := selectedLabel(m); got != tt.selected {
			t.Errorf("step %d (%s): expected selection %s, got %s", i, tt.key, tt.selected, got)
		}
		if m.rows.Len() != tt.visible {
			t.Errorf("step %d (%s): expected %d visible rows, got %d", i, tt.key, tt.visible, m.rows.Len())
		}
	}
}

func TestEditor_CopyPath(t *testing.T) {
	m, _, _ := loadedEditor(t)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = orig }()

	press(t, m, "j", "y")

	if copied != "Food / Groceries" {
		t.Errorf("expected Food / Groceries copied, got %q", copied)
	}
	if m.MessageErr {
		t.Errorf("unexpected error message %q", m.Message)
	}
}

func TestEditor_AddThenSave(t *testing.T) {
	m, session, store := loadedEditor(t)

	cmd := press(t, m, "n")
	if cmd == nil {
		t.Fatal("expected switch command")
	}
	sw, ok := cmd().(SwitchToAddMsg)
	if !ok {
		t.Fatalf("expected SwitchToAddMsg, got %T", cmd())
	}
	if sw.Parent == nil || *sw.Parent != 1 {
		t.Fatalf("expected parent 1, got %v", sw.Parent)
	}

	add := NewAddModel(session)
	add.SetParent(sw.Parent)
	press(t, add, "S", "n", "a", "c", "k", "s")
	done, ok := press(t, add, "enter")().(EditDoneMsg)
	if !ok {
		t.Fatal("expected EditDoneMsg after submit")
	}
	if done.Message != "Added category: 5 Snacks" {
		t.Errorf("unexpected message %q", done.Message)
	}

	m.Update(done)
	if got := selectedLabel(m); got != "Snacks" {
		t.Errorf("expected new category selected, got %s", got)
	}
	if !session.Dirty() {
		t.Fatal("expected session to be dirty after add")
	}

	saveCmd := press(t, m, "s")
	if saveCmd == nil {
		t.Fatal("expected save command")
	}
	m.Update(saveCmd())

	if session.Dirty() {
		t.Error("expected clean session after save")
	}
	records, _ := store.List(context.Background())
	if len(records) != 5 {
		t.Errorf("expected 5 stored categories, got %d", len(records))
	}
}

func TestEditor_QuitWithUnsavedChanges(t *testing.T) {
	m, session, _ := loadedEditor(t)

	if err := session.Rename(3, "Supermarket"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	if cmd := press(t, m, "q"); cmd != nil {
		t.Fatal("expected first q to be held back")
	}
	if !m.MessageErr {
		t.Error("expected unsaved changes warning")
	}

	cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected second q to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAddModel_PickerCycles(t *testing.T) {
	session := domain.NewSession()
	if err := session.Load([]domain.Record{{ID: 1, Name: "Food"}, {ID: 2, Name: "Groceries", ParentID: domain.ParentKey(1)}}); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	add := NewAddModel(session)
	add.SetParent(nil)
	if add.form.Picker.Value() != nil {
		t.Fatal("expected no parent preselected")
	}

	press(t, add, "tab")
	if !add.form.PickerFocused() {
		t.Fatal("expected picker to have focus after tab")
	}

	tests := []struct {
		key  string
		want *domain.Key
	}{
		{"down", domain.ParentKey(1)},
		{"down", domain.ParentKey(2)},
		{"down", nil},
		{"up", domain.ParentKey(2)},
	}
	for i, tt := range tests {
		press(t, add, tt.key)
		got := add.form.Picker.Value()
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("step %d: expected %v, got %v", i, tt.want, got)
		}
	}
}

func TestAddModel_EmptyNameRejected(t *testing.T) {
	session := domain.NewSession()
	add := NewAddModel(session)
	add.SetParent(nil)

	msg := press(t, add, "enter")()
	failed, ok := msg.(EditErrMsg)
	if !ok {
		t.Fatalf("expected EditErrMsg, got %T", msg)
	}
	if !strings.Contains(failed.Err.Error(), "name is required") {
		t.Errorf("unexpected error %v", failed.Err)
	}
}

func TestRenameModel_Submit(t *testing.T) {
	m, session, _ := loadedEditor(t)
	press(t, m, "j")

	rename := NewRenameModel(session)
	rename.SetTarget(m.SelectedNode())
	if rename.form.Value(0) != "Groceries" {
		t.Fatalf("expected prefilled label, got %q", rename.form.Value(0))
	}

	rename.form.SetValue(0, "Supermarket")
	done, ok := press(t, rename, "enter")().(EditDoneMsg)
	if !ok {
		t.Fatal("expected EditDoneMsg")
	}
	if done.Message != "Renamed Groceries to Supermarket" {
		t.Errorf("unexpected message %q", done.Message)
	}

	label, _ := session.Label(3)
	if label != "Supermarket" {
		t.Errorf("expected session label updated, got %s", label)
	}
}

func TestDeleteModel_ConfirmAndCancel(t *testing.T) {
	m, session, _ := loadedEditor(t)
	food := m.SelectedNode()

	del := NewDeleteModel(session)
	del.SetTarget(food)
	if !strings.Contains(del.View(), "2 subcategories") {
		t.Error("expected subtree warning in view")
	}

	if _, ok := press(t, del, "n")().(SwitchToEditorMsg); !ok {
		t.Error("expected cancel to switch back to editor")
	}
	if session.Tree().Len() != 4 {
		t.Fatal("cancel must not remove anything")
	}

	done, ok := press(t, del, "y")().(EditDoneMsg)
	if !ok {
		t.Fatal("expected EditDoneMsg on confirm")
	}
	if done.Message != "Removed 1 Food and 2 subcategories" {
		t.Errorf("unexpected message %q", done.Message)
	}
	if session.Tree().Len() != 1 {
		t.Errorf("expected only Transport left, got %d", session.Tree().Len())
	}
}

func pagerRows(n int) []*domain.Node {
	rows := make([]*domain.Node, n)
	for i := range rows {
		rows[i] = &domain.Node{ID: domain.Key(i + 1)}
	}
	return rows
}

func TestRowPager_Paging(t *testing.T) {
	p := NewRowPager(3)
	p.SetRows(pagerRows(7))

	tests := []struct {
		name      string
		action    func()
		cursor    int
		first     int
		size      int
		page      int
		pageTotal int
	}{
		{"initial", func() {}, 0, 0, 3, 1, 3},
		{"next page", func() { p.NextPage() }, 3, 3, 3, 2, 3},
		{"down into last page", func() { p.Down(); p.Down(); p.Down() }, 6, 6, 1, 3, 3},
		{"down at end", func() { p.Down() }, 6, 6, 1, 3, 3},
		{"resize", func() { p.SetPageSize(5) }, 6, 5, 2, 2, 2},
		{"prev page", func() { p.PrevPage() }, 0, 0, 5, 1, 2},
		{"up at start", func() { p.Up() }, 0, 0, 5, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.action()
			first, page := p.Page()
			if p.Cursor() != tt.cursor || first != tt.first || len(page) != tt.size {
				t.Errorf("expected cursor %d page [%d,+%d), got cursor %d page [%d,+%d)",
					tt.cursor, tt.first, tt.size, p.Cursor(), first, len(page))
			}
			if p.CurrentPage() != tt.page || p.TotalPages() != tt.pageTotal {
				t.Errorf("expected page %d/%d, got %d/%d", tt.page, tt.pageTotal, p.CurrentPage(), p.TotalPages())
			}
		})
	}
}

func TestRowPager_SetRowsKeepsSelection(t *testing.T) {
	p := NewRowPager(10)
	p.SetRows(pagerRows(5))
	p.Select(4)

	// Rebuilt rows with 2 hidden: key 4 moves up to row 2.
	rebuilt := pagerRows(5)
	p.SetRows([]*domain.Node{rebuilt[0], rebuilt[2], rebuilt[3], rebuilt[4]})
	if got := p.Selected(); got == nil || got.ID != 4 || p.Cursor() != 2 {
		t.Errorf("expected key 4 at row 2, got %v at row %d", got, p.Cursor())
	}

	// Selected key gone: cursor is clamped to the last row.
	p.SetRows(pagerRows(2))
	if got := p.Selected(); got == nil || got.ID != 2 {
		t.Errorf("expected last row selected, got %v", got)
	}

	p.SetRows(nil)
	if p.Selected() != nil || p.Cursor() != 0 || p.TotalPages() != 1 {
		t.Errorf("expected empty pager, got cursor %d", p.Cursor())
	}
}

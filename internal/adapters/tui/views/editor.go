package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// EditorKeyMap defines key bindings for the tree editor
type EditorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Add      key.Binding
	AddTop   key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Save     key.Binding
	Revert   key.Binding
	Copy     key.Binding
	External key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var EditorKeys = EditorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Add: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new child"),
	),
	AddTop: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new top-level"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Revert: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "revert"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	External: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit as YAML"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// chromeLines is the number of rows used by title, status and help
const chromeLines = 9

// EditorModel is the tree editor: it shows the session tree and dispatches
// edits on the selected category
type EditorModel struct {
	ViewState
	store     ports.CategoryStore
	session   *domain.Session
	logger    *zap.Logger
	rows      *RowPager
	loaded    bool
	quitArmed bool
}

// NewEditorModel creates a new editor over session, persisting to store
func NewEditorModel(store ports.CategoryStore, session *domain.Session, logger *zap.Logger) *EditorModel {
	return &EditorModel{
		store:   store,
		session: session,
		logger:  logger,
		rows:    NewRowPager(20),
	}
}

// Init loads the stored categories
func (m *EditorModel) Init() tea.Cmd {
	return m.load
}

func (m *EditorModel) load() tea.Msg {
	result, err := commands.NewLoadCommand(m.store, m.session).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return loadedMsg{result}
}

func (m *EditorModel) save() tea.Msg {
	result, err := commands.NewSaveCommand(m.store, m.session).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return savedMsg{result}
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.Refresh()
		m.SetMessage(msg.result.Message, false)
		m.logger.Debug("loaded categories", zap.Int("count", msg.result.Count))
		return m, nil

	case savedMsg:
		m.Refresh()
		m.SetMessage(msg.result.Message, false)
		m.logger.Info("saved categories", zap.Int("count", msg.result.Count))
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetError(msg.err)
		m.logger.Warn("editor operation failed", zap.Error(msg.err))
		return m, nil

	case EditDoneMsg:
		m.Refresh()
		if msg.Select != nil {
			m.SelectKey(*msg.Select)
		}
		m.SetMessage(msg.Message, false)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	if key.Matches(msg, EditorKeys.Quit) {
		if m.session.Dirty() && !m.quitArmed {
			m.quitArmed = true
			m.SetMessage("Unsaved changes: press q again to quit, s to save", true)
			return nil
		}
		return tea.Quit
	}
	m.quitArmed = false

	switch {
	case key.Matches(msg, EditorKeys.Up):
		m.rows.Up()

	case key.Matches(msg, EditorKeys.Down):
		m.rows.Down()

	case key.Matches(msg, EditorKeys.PageUp):
		m.rows.PrevPage()

	case key.Matches(msg, EditorKeys.PageDown):
		m.rows.NextPage()

	case key.Matches(msg, EditorKeys.Left):
		if node := m.SelectedNode(); node != nil {
			if node.IsExpanded && len(node.Children) > 0 {
				node.Collapse()
				m.Refresh()
			} else if node.Parent != nil && !node.Parent.IsRoot() {
				m.SelectKey(node.Parent.ID)
			}
		}

	case key.Matches(msg, EditorKeys.Right):
		if node := m.SelectedNode(); node != nil && len(node.Children) > 0 && !node.IsExpanded {
			node.Expand()
			m.Refresh()
		}

	case key.Matches(msg, EditorKeys.Toggle):
		if node := m.SelectedNode(); node != nil && len(node.Children) > 0 {
			node.Toggle()
			m.Refresh()
		}

	case key.Matches(msg, EditorKeys.Add):
		var parent *domain.Key
		if node := m.SelectedNode(); node != nil {
			parent = domain.ParentKey(node.ID)
		}
		return func() tea.Msg { return SwitchToAddMsg{Parent: parent} }

	case key.Matches(msg, EditorKeys.AddTop):
		return func() tea.Msg { return SwitchToAddMsg{} }

	case key.Matches(msg, EditorKeys.Rename):
		if node := m.SelectedNode(); node != nil {
			return func() tea.Msg { return SwitchToRenameMsg{Node: node} }
		}

	case key.Matches(msg, EditorKeys.Delete):
		if node := m.SelectedNode(); node != nil {
			return func() tea.Msg { return SwitchToDeleteMsg{Node: node} }
		}

	case key.Matches(msg, EditorKeys.Save):
		if !m.session.Dirty() {
			m.SetMessage("Nothing to save", false)
			return nil
		}
		return m.save

	case key.Matches(msg, EditorKeys.Revert):
		return m.load

	case key.Matches(msg, EditorKeys.Copy):
		if node := m.SelectedNode(); node != nil {
			path := RenderPath(node)
			if err := copyToClipboard(path); err != nil {
				m.SetError(fmt.Errorf("copy failed: %w", err))
				return nil
			}
			m.SetMessage("Copied: "+path, false)
		}

	case key.Matches(msg, EditorKeys.External):
		if m.session.Dirty() {
			m.SetMessage("Save or revert before editing as YAML", true)
			return nil
		}
		return func() tea.Msg { return ExternalEditMsg{} }

	case key.Matches(msg, EditorKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

// Refresh recomputes the visible rows from the session tree, keeping the
// selected category where possible
func (m *EditorModel) Refresh() {
	m.rows.SetRows(m.session.Tree().Root.Visible())
}

// SelectKey moves the cursor to the visible row of id, if any
func (m *EditorModel) SelectKey(id domain.Key) {
	m.rows.Select(id)
}

// SelectedNode returns the node under the cursor
func (m *EditorModel) SelectedNode() *domain.Node {
	return m.rows.Selected()
}

// SetSize updates the view dimensions and the page size
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.rows.SetPageSize(height - chromeLines)
}

// View renders the editor
func (m *EditorModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	vb := NewViewBuilder().
		Title("Bookkeeper").
		Subtitle("Expense categories")

	if m.rows.Len() == 0 {
		vb.Muted("No categories yet. Press N to add one.")
	}

	first, page := m.rows.Page()
	for i, node := range page {
		vb.Line(RenderNode(node, first+i == m.rows.Cursor()))
	}

	vb.BlankLine().
		Line(RenderStatus(m.session.Tree().Len(), m.session.Dirty(), m.rows.CurrentPage(), m.rows.TotalPages())).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(EditorKeys.Add, EditorKeys.Rename, EditorKeys.Delete, EditorKeys.Save, EditorKeys.Copy, EditorKeys.Help, EditorKeys.Quit)

	return vb.String()
}

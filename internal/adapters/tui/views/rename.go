package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// RenameModel edits the label of one category in place
type RenameModel struct {
	ViewState
	session *domain.Session
	target  *domain.Node
	form    *InputForm
}

// NewRenameModel creates a new rename view model
func NewRenameModel(session *domain.Session) *RenameModel {
	return &RenameModel{
		session: session,
		form:    NewInputForm(NewInputField("New name", "Category name", 80)),
	}
}

// SetTarget prepares the form for node, prefilled with its current label
func (m *RenameModel) SetTarget(node *domain.Node) {
	m.target = node
	m.form.Reset()
	m.form.SetValue(0, node.Label)
	m.ClearMessage()
}

// Init initializes the rename view
func (m *RenameModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the rename view
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToEditorMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *RenameModel) submit() tea.Msg {
	if m.target == nil {
		return SwitchToEditorMsg{}
	}
	result, err := commands.NewRenameCommand(m.session, m.target.ID, m.form.Value(0)).Execute(context.Background())
	if err != nil {
		return EditErrMsg{Err: err}
	}
	return EditDoneMsg{Message: result.Message, Select: domain.ParentKey(result.ID)}
}

// View renders the rename view
func (m *RenameModel) View() string {
	return NewViewBuilder().
		Title("Rename Category").
		Line(RenderTargetInfo(m.target, "Rename")).
		BlankLine().
		Raw(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("rename")).
		String()
}

package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// AddModel is the form for a new pending category: a name and a parent
// chosen from the session's dropdown entries
type AddModel struct {
	ViewState
	session *domain.Session
	form    *InputForm
}

// NewAddModel creates a new add view model
func NewAddModel(session *domain.Session) *AddModel {
	return &AddModel{session: session}
}

// SetParent resets the form with parent preselected
func (m *AddModel) SetParent(parent *domain.Key) {
	picker := NewPicker("Parent", m.session.Dropdown())
	picker.Select(parent)
	m.form = NewInputForm(NewInputField("Name", "Category name", 80)).WithPicker(picker)
	m.ClearMessage()
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *AddModel) submit() tea.Msg {
	cmd := commands.NewAddCommand(m.session, m.form.Value(0), m.form.Picker.Value())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return EditErrMsg{Err: err}
	}
	return EditDoneMsg{Message: result.Message, Select: domain.ParentKey(result.Record.ID)}
}

// View renders the add view
func (m *AddModel) View() string {
	return NewViewBuilder().
		Title("New Category").
		Raw(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("add")).
		String()
}

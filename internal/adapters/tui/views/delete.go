package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	session *domain.Session
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(session *domain.Session) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		session:           session,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			m.doDelete,
			func() tea.Msg { return SwitchToEditorMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.TargetNode == nil {
		return EditErrMsg{Err: fmt.Errorf("no target selected")}
	}

	result, err := commands.NewRemoveCommand(m.session, m.TargetNode.ID).Execute(context.Background())
	if err != nil {
		return EditErrMsg{Err: err}
	}

	var sel *domain.Key
	if p := m.TargetNode.Parent; p != nil && !p.IsRoot() {
		sel = domain.ParentKey(p.ID)
	}
	return EditDoneMsg{Message: result.Message, Select: sel}
}

func (m *DeleteModel) subtreeSize() int {
	count := -1
	if m.TargetNode != nil {
		m.TargetNode.Walk(func(*domain.Node) { count++ })
	}
	return count
}

// View renders the delete view
func (m *DeleteModel) View() string {
	vb := NewViewBuilder().
		Title("Delete Category").
		Line(RenderTargetInfo(m.TargetNode, "Delete")).
		BlankLine()

	if n := m.subtreeSize(); n > 0 {
		vb.Line(RenderMessage(fmt.Sprintf("This also deletes %d subcategories.", n), true)).BlankLine()
	}

	return vb.
		Message(m.Message, m.MessageErr).
		Line(RenderConfirmPrompt("Delete this category?")).
		String()
}

package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookkeeper/internal/adapters/tui/views"
	"bookkeeper/internal/adapters/yamlfile"
	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewEditor ViewState = iota
	ViewAdd
	ViewRename
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store   ports.CategoryStore
	opener  ports.EditorOpener
	session *domain.Session
	logger  *zap.Logger

	state  ViewState
	editor *views.EditorModel
	add    *views.AddModel
	rename *views.RenameModel
	del    *views.DeleteModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application editing the categories in store.
// opener may be nil, which disables editing as YAML.
func NewApp(store ports.CategoryStore, opener ports.EditorOpener, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	session := domain.NewSession()
	return &App{
		store:   store,
		opener:  opener,
		session: session,
		logger:  logger,
		state:   ViewEditor,
		editor:  views.NewEditorModel(store, session, logger),
		add:     views.NewAddModel(session),
		rename:  views.NewRenameModel(session),
		del:     views.NewDeleteModel(session),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.rename.SetSize(msg.Width, msg.Height)
		a.del.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.SetParent(msg.Parent)
		return a, a.add.Init()

	case views.SwitchToRenameMsg:
		a.state = ViewRename
		a.rename.SetTarget(msg.Node)
		return a, a.rename.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.del.SetTarget(msg.Node)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		return a, nil

	case views.ExternalEditMsg:
		return a, a.openExternalEdit()

	case externalEditDoneMsg:
		a.finishExternalEdit(msg)
		return a, nil

	// Edit results
	case views.EditDoneMsg:
		a.state = ViewEditor
		a.logger.Debug("session edited", zap.String("result", msg.Message), zap.Bool("dirty", a.session.Dirty()))
		_, cmd := a.editor.Update(msg)
		return a, cmd

	case views.EditErrMsg:
		a.logger.Warn("edit rejected", zap.Error(msg.Err))
		switch a.state {
		case ViewAdd:
			a.add.SetError(msg.Err)
		case ViewRename:
			a.rename.SetError(msg.Err)
		case ViewDelete:
			a.del.SetError(msg.Err)
		default:
			a.editor.SetError(msg.Err)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewRename:
		_, cmd = a.rename.Update(msg)
	case ViewDelete:
		_, cmd = a.del.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type externalEditDoneMsg struct {
	edit *commands.ExternalEditCommand
	path string
	err  error
}

func (a *App) openExternalEdit() tea.Cmd {
	if a.opener == nil {
		a.editor.SetError(fmt.Errorf("no editor configured"))
		return nil
	}

	tmp, err := os.CreateTemp("", "bookkeeper-*.yaml")
	if err != nil {
		a.editor.SetError(err)
		return nil
	}
	path := tmp.Name()
	tmp.Close()

	file := yamlfile.NewStore(path, yamlfile.WithLogger(a.logger))
	edit := commands.NewExternalEditCommand(a.store, file, path, a.opener)
	if err := edit.Prepare(context.Background()); err != nil {
		os.Remove(path)
		a.editor.SetError(err)
		return nil
	}

	cmd, err := a.opener.Command(path)
	if err != nil {
		os.Remove(path)
		a.editor.SetError(err)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalEditDoneMsg{edit: edit, path: path, err: err}
	})
}

func (a *App) finishExternalEdit(msg externalEditDoneMsg) {
	defer os.Remove(msg.path)

	if msg.err != nil {
		a.editor.SetError(fmt.Errorf("editor exited: %w", msg.err))
		return
	}

	ctx := context.Background()
	result, err := msg.edit.Apply(ctx)
	if err != nil {
		a.logger.Warn("external edit rejected", zap.Error(err))
		a.editor.SetError(err)
		return
	}
	if _, err := commands.NewLoadCommand(a.store, a.session).Execute(ctx); err != nil {
		a.editor.SetError(err)
		return
	}

	a.logger.Info("applied external edit", zap.Int("count", result.Count))
	a.editor.Update(views.EditDoneMsg{Message: result.Message})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewRename:
		return a.rename.View()
	case ViewDelete:
		return a.del.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.editor.View()
	}
}

// Session returns the session being edited
func (a *App) Session() *domain.Session {
	return a.session
}

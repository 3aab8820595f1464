package views

import (
	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// Messages for view switching
type SwitchToAddMsg struct {
	Parent *domain.Key
}

type SwitchToRenameMsg struct {
	Node *domain.Node
}

type SwitchToDeleteMsg struct {
	Node *domain.Node
}

type SwitchToHelpMsg struct{}

type SwitchToEditorMsg struct{}

// ExternalEditMsg asks the app to open the category set in $EDITOR
type ExternalEditMsg struct{}

// EditDoneMsg reports a finished session edit back to the editor
type EditDoneMsg struct {
	Message string
	Select  *domain.Key
}

// EditErrMsg reports a failed edit to the view that started it
type EditErrMsg struct {
	Err error
}

type loadedMsg struct {
	result *commands.LoadResult
}

type savedMsg struct {
	result *commands.SaveResult
}

type errMsg struct {
	err error
}

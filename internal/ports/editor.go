package ports

import "os/exec"

// EditorOpener opens a file in the user's external editor
type EditorOpener interface {
	// OpenFile opens path and blocks until the editor exits
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening path, for callers that run
	// the process themselves (bubbletea's ExecProcess)
	Command(path string) (*exec.Cmd, error)
}

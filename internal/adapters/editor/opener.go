package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"bookkeeper/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

// Opener implements ports.EditorOpener
type Opener struct {
	editor string
}

// Option configures an Opener
type Option func(*Opener)

// WithEditor fixes the editor command instead of looking it up.
// The command may carry arguments, e.g. "code --wait".
func WithEditor(editor string) Option {
	return func(o *Opener) {
		o.editor = editor
	}
}

// NewOpener creates a new editor opener
func NewOpener(opts ...Option) *Opener {
	o := &Opener{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OpenFile opens a file in the user's preferred editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}
	return nil
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

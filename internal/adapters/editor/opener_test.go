package editor

import (
	"reflect"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		env      string
		expected []string
	}{
		{"fixed editor", "nano", "", []string{"nano", "/tmp/c.yaml"}},
		{"editor with args", "code --wait", "", []string{"code", "--wait", "/tmp/c.yaml"}},
		{"from env", "", "hx", []string{"hx", "/tmp/c.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			t.Setenv("VISUAL", "")

			var opts []Option
			if tt.editor != "" {
				opts = append(opts, WithEditor(tt.editor))
			}

			cmd, err := NewOpener(opts...).Command("/tmp/c.yaml")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cmd.Args, tt.expected) {
				t.Errorf("expected args %v, got %v", tt.expected, cmd.Args)
			}
		})
	}
}

func TestOpener_OpenFileReportsFailure(t *testing.T) {
	if err := NewOpener(WithEditor("false")).OpenFile("/tmp/c.yaml"); err == nil {
		t.Error("expected error from failing editor")
	}
	if err := NewOpener(WithEditor("true")).OpenFile("/tmp/c.yaml"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

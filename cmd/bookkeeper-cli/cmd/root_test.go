package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"bookkeeper/internal/application/commands"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag values outlive a single Execute
	listJSON = false
	treeJSON = false
	addParent = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out
}

func TestCLI_EditAndList(t *testing.T) {
	t.Setenv("BOOKKEEPER_LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "categories.db")

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"--db", db, "add", "Food"}, "Added category: 1 Food\n"},
		{[]string{"--db", db, "add", "Transport"}, "Added category: 2 Transport\n"},
		{[]string{"--db", db, "add", "Groceries", "--parent", "1"}, "Added category: 3 Groceries\n"},
		{[]string{"--db", db, "tree"}, "1 Food\n  3 Groceries\n2 Transport\n"},
		{[]string{"--db", db, "rename", "3", "Supermarket"}, "Renamed Groceries to Supermarket\n"},
		{[]string{"--db", db, "tree"}, "1 Food\n  3 Supermarket\n2 Transport\n"},
	}

	for _, tt := range tests {
		if got := mustRun(t, tt.args...); got != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.args[2:], tt.expected, got)
		}
	}

	out := mustRun(t, "--db", db, "list", "--json")
	var entries []commands.ListEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[1].Path != "Food / Supermarket" || entries[1].Depth != 1 {
		t.Errorf("unexpected second entry %+v", entries[1])
	}

	nested := mustRun(t, "--db", db, "tree", "--json")
	var tree []commands.TreeEntry
	if err := json.Unmarshal([]byte(nested), &tree); err != nil {
		t.Fatalf("invalid JSON tree: %v\n%s", err, nested)
	}
	if len(tree) != 2 || len(tree[0].Children) != 1 || tree[0].Children[0].Name != "Supermarket" {
		t.Errorf("unexpected JSON tree %+v", tree)
	}

	text := mustRun(t, "--db", db, "list")
	if !strings.Contains(text, "Food / Supermarket") {
		t.Errorf("expected path in table output, got:\n%s", text)
	}

	if got := mustRun(t, "--db", db, "remove", "1"); got != "Removed 1 Food and 1 subcategories\n" {
		t.Errorf("unexpected remove output %q", got)
	}
	if got := mustRun(t, "--db", db, "tree"); got != "2 Transport\n" {
		t.Errorf("unexpected tree after remove %q", got)
	}
}

func TestCLI_Errors(t *testing.T) {
	t.Setenv("BOOKKEEPER_LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "categories.db")
	mustRun(t, "--db", db, "add", "Food")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown parent", []string{"--db", db, "add", "Fuel", "--parent", "9"}, "broken parent reference"},
		{"bad parent", []string{"--db", db, "add", "Fuel", "--parent", "x"}, "expected parent ID"},
		{"unknown id", []string{"--db", db, "remove", "7"}, "unknown key"},
		{"bad id", []string{"--db", db, "rename", "0", "X"}, "expected ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if got := mustRun(t, "--db", db, "tree"); got != "1 Food\n" {
		t.Errorf("failed commands changed the store: %q", got)
	}
}

func TestCLI_ExportImport(t *testing.T) {
	t.Setenv("BOOKKEEPER_LOG_LEVEL", "error")
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")
	file := filepath.Join(dir, "categories.yaml")

	mustRun(t, "--db", src, "add", "Food")
	mustRun(t, "--db", src, "add", "Groceries", "--parent", "1")

	if got := mustRun(t, "--db", src, "export", file); got != "Copied 2 categories\n" {
		t.Errorf("unexpected export output %q", got)
	}
	if got := mustRun(t, "--db", dst, "import", file); got != "Copied 2 categories\n" {
		t.Errorf("unexpected import output %q", got)
	}

	if got := mustRun(t, "--db", dst, "tree"); got != "1 Food\n  2 Groceries\n" {
		t.Errorf("unexpected imported tree %q", got)
	}
}

func TestCLI_Edit(t *testing.T) {
	t.Setenv("BOOKKEEPER_LOG_LEVEL", "error")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "sed -i s/Food/Eating/")
	db := filepath.Join(t.TempDir(), "categories.db")

	mustRun(t, "--db", db, "add", "Food")
	mustRun(t, "--db", db, "add", "Groceries", "--parent", "1")

	if got := mustRun(t, "--db", db, "edit"); got != "Applied edit: 2 categories\n" {
		t.Errorf("unexpected edit output %q", got)
	}
	if got := mustRun(t, "--db", db, "tree"); got != "1 Eating\n  2 Groceries\n" {
		t.Errorf("unexpected tree after edit %q", got)
	}
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

var treeJSON bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the category tree",
	Long: `Display every category, each one indented under its parent.

Examples:
  bookkeeper-cli tree
  bookkeeper-cli tree --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		if !treeJSON {
			printTree(cmd.OutOrStdout(), session.Tree().Root)
			return nil
		}

		entries, err := commands.NewTreeCommand(session).Execute(ctx)
		if err != nil {
			return err
		}
		if entries == nil {
			entries = []commands.TreeEntry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func printTree(w io.Writer, root *domain.Node) {
	root.Walk(func(n *domain.Node) {
		indent := strings.Repeat("  ", n.Depth())
		fmt.Fprintf(w, "%s%d %s\n", indent, n.ID, n.Label)
	})
}

func init() {
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "print as nested JSON")
	rootCmd.AddCommand(treeCmd)
}

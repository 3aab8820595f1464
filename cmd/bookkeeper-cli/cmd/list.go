package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"bookkeeper/internal/application/commands"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in tree order",
	Long: `List every category with its ID, parent ID and full path, parents
before children.

Examples:
  bookkeeper-cli list
  bookkeeper-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		entries, err := commands.NewListCommand(session).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			if entries == nil {
				entries = []commands.ListEntry{}
			}
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPARENT\tPATH")
		for _, e := range entries {
			parent := "-"
			if e.ParentID != nil {
				parent = e.ParentID.String()
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, parent, e.Path)
		}
		return tw.Flush()
	},
}

var parentsCmd = &cobra.Command{
	Use:   "parents",
	Short: "List the parent choices for a new category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		entries, err := commands.NewDropdownCommand(session).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			if e.Key == nil {
				fmt.Fprintln(out, "-  (no parent)")
				continue
			}
			fmt.Fprintf(out, "%d  %s%s\n", *e.Key, strings.Repeat("  ", e.Depth), e.Label)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(parentsCmd)
}

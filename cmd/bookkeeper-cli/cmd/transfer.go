package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookkeeper/internal/adapters/editor"
	"bookkeeper/internal/adapters/yamlfile"
	"bookkeeper/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace the stored categories with the ones in a YAML file",
	Long: `Replace every stored category with the contents of a YAML file.
The file is checked for duplicate IDs, missing parents and cycles first;
nothing is written if it is malformed.

The file holds a list of entries:
  - id: 1
    name: Food
  - id: 2
    name: Groceries
    parent: 1

Example:
  bookkeeper-cli import categories.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from := yamlfile.NewStore(args[0], yamlfile.WithLogger(logger))
		result, err := commands.NewTransferCommand(from, GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file.yaml>",
	Short: "Write the stored categories to a YAML file",
	Long: `Write every stored category to a YAML file, overwriting it.

Example:
  bookkeeper-cli export categories.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to := yamlfile.NewStore(args[0], yamlfile.WithLogger(logger))
		result, err := commands.NewTransferCommand(GetStore(), to).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit all categories as YAML in $EDITOR",
	Long: `Write every category to a temporary YAML file, open it in $EDITOR and
store the result once the editor exits. Malformed edits are rejected and
the stored categories stay as they were.

Example:
  EDITOR=nano bookkeeper-cli edit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tmp, err := os.CreateTemp("", "bookkeeper-*.yaml")
		if err != nil {
			return err
		}
		path := tmp.Name()
		tmp.Close()
		defer os.Remove(path)

		file := yamlfile.NewStore(path, yamlfile.WithLogger(logger))
		edit := commands.NewExternalEditCommand(GetStore(), file, path, editor.NewOpener())
		result, err := edit.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

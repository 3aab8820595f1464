package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bookkeeper/internal/application"
	"bookkeeper/internal/application/commands"
)

var addParent string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Long: `Add a new category. Without --parent it becomes a top-level category.

Examples:
  bookkeeper-cli add "Food"
  bookkeeper-cli add "Groceries" --parent 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		parentID, err := application.ParseOptionalKey("parentID", addParent)
		if err != nil {
			return err
		}

		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewAddCommand(session, args[0], parentID).Execute(ctx)
		if err != nil {
			return err
		}
		if err := saveSession(ctx, session); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a category and all its subcategories",
	Long: `Remove a category. Every category below it is removed too.

Example:
  bookkeeper-cli remove 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := application.ParseKey("id", args[0])
		if err != nil {
			return err
		}

		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewRemoveCommand(session, id).Execute(ctx)
		if err != nil {
			return err
		}
		if err := saveSession(ctx, session); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a category",
	Long: `Rename a category. Its place in the tree does not change.

Example:
  bookkeeper-cli rename 3 "Supermarket"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := application.ParseKey("id", args[0])
		if err != nil {
			return err
		}

		session, err := loadSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewRenameCommand(session, id, args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		if err := saveSession(ctx, session); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addParent, "parent", "p", "", "ID of the parent category")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(renameCmd)
}

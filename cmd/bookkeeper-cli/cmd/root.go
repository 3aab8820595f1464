package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookkeeper/internal/adapters/sqlite"
	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/logging"
	"bookkeeper/internal/ports"
)

var (
	dbPath string
	store  *sqlite.Store
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bookkeeper-cli",
	Short: "CLI for managing expense categories",
	Long: `bookkeeper-cli manages a hierarchy of expense categories stored in SQLite.

Categories form a tree: each one has an optional parent. Commands print
the tree, add, rename and remove categories, and copy the whole set to
and from YAML files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		// A failed run skips the post-run hook
		closeStore()

		var err error
		logger, err = logging.New(config.LogLevel(), config.LogEncoding())
		if err != nil {
			return err
		}

		store = sqlite.NewStore(sqlite.WithLogger(logger))
		if err := store.Open(dbPath); err != nil {
			return err
		}
		logger.Debug("using database", zap.String("path", store.Path()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return closeStore()
	},
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", config.DBPath(), "path to the category database")
}

// GetStore returns the opened category store
func GetStore() ports.CategoryStore {
	return store
}

// loadSession reads the stored categories into a new session
func loadSession(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession()
	if _, err := commands.NewLoadCommand(GetStore(), session).Execute(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// saveSession writes session back to the store
func saveSession(ctx context.Context, session *domain.Session) error {
	result, err := commands.NewSaveCommand(GetStore(), session).Execute(ctx)
	if err != nil {
		return err
	}
	logger.Debug(result.Message)
	return nil
}

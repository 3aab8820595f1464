package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookkeeper/internal/adapters/editor"
	"bookkeeper/internal/adapters/sqlite"
	"bookkeeper/internal/adapters/tui"
	"bookkeeper/internal/config"
	"bookkeeper/internal/logging"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the category database")
	flag.Parse()

	// The terminal belongs to the UI; only log when a file is given.
	logger := zap.NewNop()
	if path := config.LogFile(); path != "" {
		l, err := logging.NewWithConfig(logging.Config{
			Level:      config.LogLevel(),
			Encoding:   config.LogEncoding(),
			OutputPath: path,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	store := sqlite.NewStore(sqlite.WithLogger(logger))
	if err := store.Open(*dbFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := tui.NewApp(store, editor.NewOpener(), logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

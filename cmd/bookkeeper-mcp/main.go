package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "bookkeeper/internal/adapters/mcp"
	"bookkeeper/internal/adapters/sqlite"
	"bookkeeper/internal/config"
	"bookkeeper/internal/logging"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the category database")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr
	logger, err := logging.New(config.LogLevel(), config.LogEncoding())
	if err != nil {
		log.Fatalf("bookkeeper-mcp: %v", err)
	}
	defer logger.Sync()

	store := sqlite.NewStore(sqlite.WithLogger(logger))
	if err := store.Open(*dbFlag); err != nil {
		logger.Fatal("could not open database", zap.Error(err))
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"bookkeeper-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	logger.Info("serving MCP over stdio", zap.String("db", store.Path()))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("bookkeeper-mcp stopped", zap.Error(err))
	}
}

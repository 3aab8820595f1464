package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// RegisterReadTools adds all read-only category tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.CategoryStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(treeTool(), treeHandler(store))
	s.AddTool(parentsTool(), parentsHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List all categories in tree order with their ID, parent ID and full path."),
	)
}

func listHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session, err := loadSession(ctx, store)
		if err != nil {
			return toolError(err)
		}

		entries, err := commands.NewListCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(entries) == 0 {
			return mcp.NewToolResultText("No categories."), nil
		}

		var sb strings.Builder
		for _, e := range entries {
			parent := "-"
			if e.ParentID != nil {
				parent = e.ParentID.String()
			}
			fmt.Fprintf(&sb, "%d  %s  %s\n", e.ID, parent, e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the category hierarchy as an indented tree."),
	)
}

func treeHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session, err := loadSession(ctx, store)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, session.Tree().Root, "")
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No categories."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.Node, prefix string) {
	if !node.IsRoot() {
		fmt.Fprintf(sb, "%s%d %s\n", prefix, node.ID, node.Label)
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

// --- parents ---

func parentsTool() mcp.Tool {
	return mcp.NewTool("parents",
		mcp.WithDescription("List the choices for a new category's parent, indented by depth. The first entry means no parent."),
	)
}

func parentsHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session, err := loadSession(ctx, store)
		if err != nil {
			return toolError(err)
		}

		entries, err := commands.NewDropdownCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, e := range entries {
			if e.Key == nil {
				sb.WriteString("-  (no parent)\n")
				continue
			}
			fmt.Fprintf(&sb, "%d  %s%s\n", *e.Key, strings.Repeat("  ", e.Depth), e.Label)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func loadSession(ctx context.Context, store ports.CategoryStore) (*domain.Session, error) {
	session := domain.NewSession()
	if _, err := commands.NewLoadCommand(store, session).Execute(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/ports"
)

// RegisterWriteTools adds all category editing tools to the MCP server.
// Each call loads the stored set, applies one edit and saves it back.
func RegisterWriteTools(s *server.MCPServer, store ports.CategoryStore) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(renameTool(), renameHandler(store))
	s.AddTool(removeTool(), removeHandler(store))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a new category. Without a parent ID it becomes a top-level category."),
		mcp.WithString("name",
			mcp.Description("Name of the new category"),
			mcp.Required(),
		),
		mcp.WithNumber("parent_id",
			mcp.Description("ID of the parent category. Omit for a top-level category."),
		),
	)
}

func addHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		// Absent or null parent_id means top level; anything else must
		// name an existing category.
		var parentID *domain.Key
		if v, ok := req.GetArguments()["parent_id"]; ok && v != nil {
			p, err := req.RequireInt("parent_id")
			if err != nil {
				return toolError(err)
			}
			parentID = domain.ParentKey(domain.Key(p))
		}

		return editAndSave(ctx, store, func(session *domain.Session) (string, error) {
			result, err := commands.NewAddCommand(session, name, parentID).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a category. Its position in the hierarchy is unchanged."),
		mcp.WithNumber("id",
			mcp.Description("ID of the category to rename"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func renameHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := domain.Key(req.GetInt("id", 0))
		name := req.GetString("name", "")

		return editAndSave(ctx, store, func(session *domain.Session) (string, error) {
			result, err := commands.NewRenameCommand(session, id, name).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove a category together with all of its subcategories."),
		mcp.WithNumber("id",
			mcp.Description("ID of the category to remove"),
			mcp.Required(),
		),
	)
}

func removeHandler(store ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := domain.Key(req.GetInt("id", 0))

		return editAndSave(ctx, store, func(session *domain.Session) (string, error) {
			result, err := commands.NewRemoveCommand(session, id).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- helpers ---

func editAndSave(ctx context.Context, store ports.CategoryStore, edit func(*domain.Session) (string, error)) (*mcp.CallToolResult, error) {
	session, err := loadSession(ctx, store)
	if err != nil {
		return toolError(err)
	}

	msg, err := edit(session)
	if err != nil {
		return toolError(err)
	}

	if _, err := commands.NewSaveCommand(store, session).Execute(ctx); err != nil {
		return toolError(fmt.Errorf("edit not saved: %w", err))
	}
	return mcp.NewToolResultText(msg), nil
}

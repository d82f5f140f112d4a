package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diarist/internal/domain"
	"diarist/internal/ports"
)

// RegisterReadTools adds the read-only vault tools to the MCP server.
// Page mutation stays with the preparer, so no write tools exist.
func RegisterReadTools(s *server.MCPServer, vault ports.Vault) {
	s.AddTool(eventsOnTool(), eventsOnHandler(vault))
	s.AddTool(readPageTool(), readPageHandler(vault))
	s.AddTool(resolvePathTool(), resolvePathHandler(vault))
}

// --- events_on ---

func eventsOnTool() mcp.Tool {
	return mcp.NewTool("events_on",
		mcp.WithDescription("List the recurring-event reminders due on a date (YYYY-MM-DD)."),
		mcp.WithString("date",
			mcp.Description("The date to check, e.g. 2025-01-12"),
			mcp.Required(),
		),
	)
}

func eventsOnHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("date", "")
		if raw == "" {
			return toolError(fmt.Errorf("date is required"))
		}
		date, err := domain.ParseDate(raw)
		if err != nil {
			return toolError(err)
		}

		events, err := vault.Events()
		if err != nil {
			return toolError(err)
		}

		var due []string
		for _, event := range events {
			if event.Matches(date) {
				due = append(due, event.Content)
			}
		}
		if len(due) == 0 {
			return mcp.NewToolResultText("No reminders due on " + date.String() + "."), nil
		}
		return mcp.NewToolResultText(strings.Join(due, "\n")), nil
	}
}

// --- read_page ---

func readPageTool() mcp.Tool {
	return mcp.NewTool("read_page",
		mcp.WithDescription("Read a vault page by identity. Journal identities (2025-01-12, 2025/Week 02, 2025/January, 2025) resolve through the journals folder; set journal=false for regular pages."),
		mcp.WithString("name",
			mcp.Description("Page identity, e.g. 2025-01-12 or events/recurring"),
			mcp.Required(),
		),
		mcp.WithBoolean("journal",
			mcp.Description("Resolve through the journals folder (default true)"),
		),
	)
}

func readPageHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		load := vault.Journal
		if !req.GetBool("journal", true) {
			load = vault.Note
		}
		page, err := load(name)
		if err != nil {
			return toolError(err)
		}
		if !page.Exists() {
			return mcp.NewToolResultText("Page " + name + " does not exist."), nil
		}
		return mcp.NewToolResultText(page.Render()), nil
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Resolve a page identity to its absolute file path."),
		mcp.WithString("name",
			mcp.Description("Page identity, e.g. 2025/Week 02"),
			mcp.Required(),
		),
		mcp.WithBoolean("journal",
			mcp.Description("Resolve through the journals folder (default true)"),
		),
	)
}

func resolvePathHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}
		if req.GetBool("journal", true) {
			return mcp.NewToolResultText(vault.JournalPath(name)), nil
		}
		return mcp.NewToolResultText(vault.NotePath(name)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

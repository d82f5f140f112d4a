package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diarist/internal/adapters/filesystem"
	mcpadapter "diarist/internal/adapters/mcp"
	"diarist/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	vault, err := filesystem.NewVault(*vaultFlag)
	if err != nil {
		log.Fatalf("diarist-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"diarist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, vault)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("diarist-mcp: %v", err)
	}
}

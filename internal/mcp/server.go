// Package mcp implements the Model Context Protocol server, exposing
// safercmd's catalog to LLMs. An assistant can list templates, check
// candidate values and get back a filled argument list, but it never gets
// a way to run anything.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// The catalog is the one loaded when the process started; edits to the
// templates file take effect on the next serve.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := newServer(extCtx, extension.All())

	slog.Info("safercmd MCP server ready",
		"version", version.Short(),
		"transport", "stdio",
		"catalog", extCtx.Catalog().Path(),
		"templates", len(extCtx.Catalog().Names()))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the catalog.
type handlers struct {
	extCtx extension.Context
}

func newServer(extCtx extension.Context, exts []extension.Extension) *server.MCPServer {
	s := server.NewMCPServer(
		"safercmd",
		version.Short(),
		server.WithToolCapabilities(true),
	)

	registerTools(s, &handlers{extCtx: extCtx})
	registerExtensionTools(s, extCtx, exts)
	return s
}

// registerTools exposes safercmd operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("safercmd_list",
			mcp.WithDescription("List command templates in the catalog with their skeletons and placeholder names"),
			mcp.WithString("filter", mcp.Description("Name prefix, or a glob such as git-*")),
		),
		h.listTemplates,
	)

	s.AddTool(
		mcp.NewTool("safercmd_validate",
			mcp.WithDescription("Check a single value against one placeholder of a template"),
			mcp.WithString("template", mcp.Required(), mcp.Description("Template name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Placeholder name")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Candidate value")),
		),
		h.validateValue,
	)

	s.AddTool(
		mcp.NewTool("safercmd_check",
			mcp.WithDescription("Check a complete set of replacements against a template and report why it is rejected"),
			mcp.WithString("template", mcp.Required(), mcp.Description("Template name")),
			mcp.WithObject("replacements", mcp.Required(), mcp.Description("Map of placeholder name to value")),
		),
		h.checkReplacements,
	)

	s.AddTool(
		mcp.NewTool("safercmd_fill",
			mcp.WithDescription("Fill a template and return the argument list. The command is not run."),
			mcp.WithString("template", mcp.Required(), mcp.Description("Template name")),
			mcp.WithObject("replacements", mcp.Required(), mcp.Description("Map of placeholder name to value")),
			mcp.WithBoolean("preview", mcp.Description("Include a diff of the skeleton against the filled arguments")),
		),
		h.fillTemplate,
	)

	s.AddTool(
		mcp.NewTool("safercmd_guide",
			mcp.WithDescription("Read the safercmd guide. Omit topic for the overview."),
			mcp.WithString("topic", mcp.Description("Guide topic, e.g. catalog or fill")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds the tools contributed by extensions, binding
// each handler to the shared extension context.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context, exts []extension.Extension) {
	for _, ext := range exts {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
		}
	}
}

// Package extension provides the plugin architecture for safercmd. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for safercmd extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared context once the catalog
// and config are loaded.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Catalogless is an optional interface for extensions with commands that
// don't need a template catalog. Commands returned by NoCatalogCommands()
// will not trigger catalog loading in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (config, guide) used before any catalog exists
// 2. Commands that load the catalog themselves (serve)
type Catalogless interface {
	NoCatalogCommands() []string
}

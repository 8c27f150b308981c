// Package core provides the core extension for safercmd.
// It registers commands: audit, config, serve, guide, version.
package core

import (
	"github.com/jpl-au/safercmd/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Catalogless   = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental safercmd commands.
func (e *Extension) Name() string { return "core" }

// Init stores the shared context for serve.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newAuditCmd(),
		newConfigCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the guide tool is registered by the MCP server itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoCatalogCommands returns commands that work without a template catalog.
// serve is absent: it needs the catalog loaded before it can answer anything.
func (e *Extension) NoCatalogCommands() []string {
	return []string{"audit", "config", "guide", "version"}
}

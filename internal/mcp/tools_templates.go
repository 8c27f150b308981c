// tools_templates.go implements the MCP tools for listing, checking and
// filling catalog templates.
//
// Every handler delegates to the same internal package the CLI uses
// (internal/ls, internal/fill) with io.Discard as the writer, so a template
// behaves identically whichever surface it is reached through.
//
// Errors return MCP tool error results rather than Go errors. A rejected
// replacement set is an expected outcome the LLM should read and correct,
// not a protocol failure.

package mcp

import (
	"context"
	"errors"
	"io"

	"github.com/jpl-au/safercmd/internal/fill"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/jpl-au/safercmd/internal/ls"
	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/mark3labs/mcp-go/mcp"
)

// listTemplates handles safercmd_list tool calls.
func (h *handlers) listTemplates(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := getString(req, "filter", "")

	var err error
	l := log.Event("mcp:safercmd_list", "list").Detail("filter", filter)
	defer func() { l.Write(err) }()

	result, err := ls.Run(io.Discard, h.extCtx.Catalog(), ls.Options{Filter: filter, Long: true})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Detail("count", result.Count())
	return jsonResult(result.ToJSON())
}

// validateValue handles safercmd_validate tool calls. A rejected value is
// reported in the result body, not as a tool error.
func (h *handlers) validateValue(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tmpl := getString(req, "template", "")
	name := getString(req, "name", "")
	value := getString(req, "value", "")

	result, err := fill.Validate(io.Discard, h.extCtx.Catalog(), tmpl, name, value)
	log.Event("mcp:safercmd_validate", "validate").
		Template(tmpl).
		Detail("name", name).
		Value("value", value).
		Write(err)

	if err != nil && !errors.Is(err, fill.ErrRejected) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// checkReplacements handles safercmd_check tool calls.
func (h *handlers) checkReplacements(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tmpl := getString(req, "template", "")

	var err error
	l := log.Event("mcp:safercmd_check", "check").Template(tmpl)
	defer func() { l.Write(err) }()

	r, err := getReplacements(req, "replacements")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Replacements(r)

	result, err := fill.Check(io.Discard, h.extCtx.Catalog(), tmpl, r)
	if err != nil && !errors.Is(err, shellcmd.ErrInvalidReplacements) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// fillTemplate handles safercmd_fill tool calls. The result carries the
// argument list and the joined line; the command is never run. A rejected
// replacement set comes back as a check result with the reason.
func (h *handlers) fillTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tmpl := getString(req, "template", "")
	preview := getBool(req, "preview", false)

	var err error
	l := log.Event("mcp:safercmd_fill", "fill").Template(tmpl)
	defer func() { l.Write(err) }()

	r, err := getReplacements(req, "replacements")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Replacements(r)

	result, err := fill.Run(io.Discard, h.extCtx.Catalog(), tmpl, r, fill.Options{Preview: preview})
	if errors.Is(err, shellcmd.ErrInvalidReplacements) {
		return jsonResult(fill.CheckResult{Template: tmpl, Reason: err.Error()})
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

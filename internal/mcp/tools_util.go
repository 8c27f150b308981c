// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map. These helpers provide safe defaults when
// optional parameters are missing.
//
// Design: Optional parameters are extracted permissively (return default on
// error). Replacement maps are the exception: a non-string value is an
// error, because silently dropping it would turn a bad fill into a
// confusing "missing placeholder" report.

package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the MCP request arguments.
// Returns the default if the parameter is missing or not a boolean, which
// handles an LLM passing "true" (string) instead of true (boolean).
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getReplacements extracts a placeholder-name to value object. Every value
// must be a JSON string.
func getReplacements(req mcp.CallToolRequest, name string) (shellcmd.Replacements, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing %q", name)
	}
	raw, ok := args[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an object of strings", name)
	}
	r := make(shellcmd.Replacements, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%s must be a string", name, k)
		}
		r[k] = s
	}
	return r, nil
}

// jsonResult serialises any value as pretty-printed JSON and wraps it in an
// MCP text result for return to the LLM client. Marshalling errors become
// MCP error results so every failure reaches the LLM the same way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

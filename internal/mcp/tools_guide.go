// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the catalog format and fill rules without
// external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/safercmd/guide"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles safercmd_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:safercmd_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}

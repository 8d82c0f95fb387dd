package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
)

// APIResponse represents the standard response format for our tools
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Summary  string      `json:"summary"`
	Error    string      `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	RunID     string    `json:"run_id,omitempty"`
	Seed      int64     `json:"seed,omitempty"`
	TieBreak  string    `json:"tiebreak,omitempty"`
}

// RosterProvider supplies the loaded tournament roster
type RosterProvider interface {
	Roster(ctx context.Context) (*tournament.Roster, error)
}

// Defaults are applied when a tool call omits the optional arguments
type Defaults struct {
	Seed     int64
	TieBreak tournament.TieBreak
}

// formatJSONResponse converts a response struct to a formatted JSON string
func formatJSONResponse(response interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(jsonBytes), nil
}

// textResult wraps a response in an MCP text result
func textResult(response APIResponse) (*mcp.CallToolResult, error) {
	jsonResponse, err := formatJSONResponse(response)
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: jsonResponse,
			},
		},
	}, nil
}

// errorResult returns a failed tool call as an MCP response
func errorResult(format string, args ...interface{}) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: fmt.Sprintf(format, args...),
			},
		},
		IsError: true,
	}
}

// parseSeed reads the optional seed argument. JSON numbers arrive as float64.
// A missing or zero seed falls back to the configured default.
func parseSeed(args map[string]interface{}, fallback int64) (int64, error) {
	raw, exists := args["seed"]
	if !exists || raw == nil {
		return fallback, nil
	}

	var seed int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("seed must be an integer")
		}
		seed = int64(v)
	case int:
		seed = int64(v)
	case int64:
		seed = v
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("seed must be an integer: %w", err)
		}
		seed = parsed
	default:
		return 0, fmt.Errorf("seed must be an integer")
	}

	if seed == 0 {
		return fallback, nil
	}
	return seed, nil
}

// parseTieBreak reads the optional tiebreak argument
func parseTieBreak(args map[string]interface{}, fallback tournament.TieBreak) (tournament.TieBreak, error) {
	raw, exists := args["tiebreak"]
	if !exists || raw == nil {
		return fallback, nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("tiebreak must be a string")
	}
	if s == "" {
		return fallback, nil
	}
	return tournament.ParseTieBreak(s)
}

func seedProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Random seed for a reproducible simulation. Omit or pass 0 to use the server default.",
	}
}

func tieBreakProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "How a level knockout match is decided: 'overtime' (default) plays 5-minute overtimes, 'team1' advances the first listed team",
		"enum":        []string{string(tournament.TieBreakOvertime), string(tournament.TieBreakTeam1)},
	}
}

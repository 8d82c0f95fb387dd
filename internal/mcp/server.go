package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/handlers"
	"github.com/sirupsen/logrus"
)

const (
	ServerName    = "Basketball Tournament Simulator"
	ServerVersion = "1.0.0"
)

// Router dispatches MCP tool calls to the tournament handlers
type Router struct {
	logger            *logrus.Logger
	teamsHandler      *handlers.TeamsHandler
	tournamentHandler *handlers.TournamentHandler
}

// NewRouter creates the tool router over a roster provider
func NewRouter(provider handlers.RosterProvider, defaults handlers.Defaults, logger *logrus.Logger) *Router {
	return &Router{
		logger:            logger,
		teamsHandler:      handlers.NewTeamsHandler(provider, logger),
		tournamentHandler: handlers.NewTournamentHandler(provider, defaults, logger),
	}
}

// Tools lists every tool the server exposes
func (r *Router) Tools() []mcp.Tool {
	return []mcp.Tool{
		r.teamsHandler.ListGroupsTool(),
		r.teamsHandler.GetTeamFormTool(),
		r.tournamentHandler.SimulateMatchTool(),
		r.tournamentHandler.SimulateGroupStageTool(),
		r.tournamentHandler.SimulateTournamentTool(),
		r.tournamentHandler.SimulateKnockoutTool(),
	}
}

// ListTools handles the tools/list request
func (r *Router) ListTools(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
	tools := r.Tools()
	r.logger.WithField("tools_count", len(tools)).Info("Listing available tools")

	return &mcp.ListToolsResult{
		Tools: tools,
	}, nil
}

// CallTool handles the tools/call request
func (r *Router) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	r.logger.WithFields(logrus.Fields{
		"tool": name,
		"args": arguments,
	}).Info("Tool called")

	// Route to specific tool handlers
	switch name {
	case "list_groups":
		return r.teamsHandler.HandleListGroups(ctx, arguments)
	case "get_team_form":
		return r.teamsHandler.HandleGetTeamForm(ctx, arguments)
	case "simulate_match":
		return r.tournamentHandler.HandleSimulateMatch(ctx, arguments)
	case "simulate_group_stage":
		return r.tournamentHandler.HandleSimulateGroupStage(ctx, arguments)
	case "simulate_tournament":
		return r.tournamentHandler.HandleSimulateTournament(ctx, arguments)
	case "simulate_knockout":
		return r.tournamentHandler.HandleSimulateKnockout(ctx, arguments)
	default:
		r.logger.WithField("tool", name).Warn("Unknown tool called")
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{
					Type: "text",
					Text: "Unknown tool: " + name,
				},
			},
			IsError: true,
		}, nil
	}
}

// NewTournamentMCPServer creates the stdio MCP server with every tool registered
func NewTournamentMCPServer(provider handlers.RosterProvider, defaults handlers.Defaults, logger *logrus.Logger) *server.DefaultServer {
	router := NewRouter(provider, defaults, logger)

	s := server.NewDefaultServer(ServerName, ServerVersion)
	if s == nil {
		logger.Error("Failed to create MCP server instance")
		return nil
	}

	logger.Info("MCP server instance created successfully")

	s.HandleListTools(router.ListTools)
	s.HandleCallTool(router.CallTool)

	logger.Info("All tools registered successfully")
	return s
}

package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
	"github.com/sirupsen/logrus"
)

// TeamFormResponse is the data of a get_team_form call
type TeamFormResponse struct {
	Team        tournament.Team               `json:"team"`
	Group       string                        `json:"group"`
	Form        tournament.FormSummary        `json:"form"`
	Exhibitions []tournament.ExhibitionRecord `json:"exhibitions"`
}

// TeamsHandler handles roster-related MCP tools
type TeamsHandler struct {
	provider RosterProvider
	logger   *logrus.Logger
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(provider RosterProvider, logger *logrus.Logger) *TeamsHandler {
	return &TeamsHandler{
		provider: provider,
		logger:   logger,
	}
}

// ListGroupsTool returns the MCP tool definition for list_groups
func (h *TeamsHandler) ListGroupsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_groups",
		Description: "List the tournament groups with their teams, ISO codes and FIBA rankings",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// HandleListGroups handles the list_groups tool call
func (h *TeamsHandler) HandleListGroups(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.Info("Handling list_groups")

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	names := make([]string, 0, len(roster.Groups))
	for _, g := range roster.Groups {
		names = append(names, g.Name)
	}

	return textResult(APIResponse{
		Success: true,
		Data:    roster.Groups,
		Summary: fmt.Sprintf("%d groups (%s), %d teams", len(roster.Groups), strings.Join(names, ", "), len(roster.Teams())),
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "roster",
		},
	})
}

// GetTeamFormTool returns the MCP tool definition for get_team_form
func (h *TeamsHandler) GetTeamFormTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_team_form",
		Description: "Get a team's exhibition results and the form (average score and point differential) that biases its simulated scores",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"team": map[string]interface{}{
					"type":        "string",
					"description": "Team ISO code, e.g. SRB",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetTeamForm handles the get_team_form tool call
func (h *TeamsHandler) HandleGetTeamForm(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_team_form")

	code, ok := args["team"].(string)
	if !ok || code == "" {
		return nil, fmt.Errorf("team is required and must be a string")
	}
	code = strings.ToUpper(strings.TrimSpace(code))

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	team, found := roster.Lookup(code)
	if !found {
		return errorResult("Unknown team: %s", code), nil
	}

	form, err := tournament.CalculateForm(code, roster.Exhibitions)
	if err != nil {
		h.logger.WithError(err).WithField("team", code).Error("Failed to calculate form")
		return errorResult("Failed to calculate form for %s: %s", code, err.Error()), nil
	}

	response := TeamFormResponse{
		Team:        team,
		Form:        form,
		Exhibitions: roster.Exhibitions[code],
	}
	for _, g := range roster.Groups {
		for _, t := range g.Teams {
			if t.Code == code {
				response.Group = g.Name
			}
		}
	}
	if response.Exhibitions == nil {
		response.Exhibitions = []tournament.ExhibitionRecord{}
	}

	return textResult(APIResponse{
		Success: true,
		Data:    response,
		Summary: fmt.Sprintf("%s (group %s): %d exhibition games, average score %.1f, average difference %+.1f",
			team.Name, response.Group, len(response.Exhibitions), form.AverageScore, form.AverageDifference),
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "roster",
		},
	})
}

package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
	"github.com/sirupsen/logrus"
)

// MatchResponse is the data of a simulate_match call
type MatchResponse struct {
	Team1  tournament.Team        `json:"team1"`
	Team2  tournament.Team        `json:"team2"`
	Result tournament.MatchResult `json:"result"`
	Winner string                 `json:"winner,omitempty"`
}

// KnockoutResponse is the data of a simulate_knockout call
type KnockoutResponse struct {
	Pots    map[string][2]string `json:"pots"`
	Bracket *tournament.Bracket  `json:"bracket"`
	Gaps    []string             `json:"gaps,omitempty"`
}

// TournamentHandler handles simulation MCP tools. Every call builds its own
// random source, so concurrent calls share no state.
type TournamentHandler struct {
	provider RosterProvider
	defaults Defaults
	logger   *logrus.Logger
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(provider RosterProvider, defaults Defaults, logger *logrus.Logger) *TournamentHandler {
	if defaults.TieBreak == "" {
		defaults.TieBreak = tournament.TieBreakOvertime
	}
	return &TournamentHandler{
		provider: provider,
		defaults: defaults,
		logger:   logger,
	}
}

// SimulateMatchTool returns the MCP tool definition for simulate_match
func (h *TournamentHandler) SimulateMatchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "simulate_match",
		Description: "Simulate a single group-stage match between two teams. Scores are biased by each team's exhibition form and may end level.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"team1": map[string]interface{}{
					"type":        "string",
					"description": "ISO code of the first team",
					"required":    true,
				},
				"team2": map[string]interface{}{
					"type":        "string",
					"description": "ISO code of the second team",
					"required":    true,
				},
				"seed": seedProperty(),
			},
		},
	}
}

// HandleSimulateMatch handles the simulate_match tool call
func (h *TournamentHandler) HandleSimulateMatch(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling simulate_match")

	// Parse arguments
	code1, ok := args["team1"].(string)
	if !ok || code1 == "" {
		return nil, fmt.Errorf("team1 is required and must be a string")
	}
	code2, ok := args["team2"].(string)
	if !ok || code2 == "" {
		return nil, fmt.Errorf("team2 is required and must be a string")
	}
	code1 = strings.ToUpper(strings.TrimSpace(code1))
	code2 = strings.ToUpper(strings.TrimSpace(code2))
	if code1 == code2 {
		return nil, fmt.Errorf("team1 and team2 must be different teams")
	}

	seed, err := parseSeed(args, h.defaults.Seed)
	if err != nil {
		return nil, err
	}

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	team1, found1 := roster.Lookup(code1)
	team2, found2 := roster.Lookup(code2)
	if !found1 || !found2 {
		gap := &tournament.LookupGapError{}
		if !found1 {
			gap.Missing = append(gap.Missing, code1)
		}
		if !found2 {
			gap.Missing = append(gap.Missing, code2)
		}
		return errorResult("Cannot simulate match: %s", gap.Error()), nil
	}

	sim, usedSeed := tournament.New(roster, h.logger).Simulator(tournament.Options{Seed: seed})
	result, err := sim.Play(team1, team2)
	if err != nil {
		h.logger.WithError(err).Error("Failed to simulate match")
		return errorResult("Failed to simulate match: %s", err.Error()), nil
	}

	response := MatchResponse{Team1: team1, Team2: team2, Result: result}
	summary := fmt.Sprintf("%s - %s (%s), tie", team1.Name, team2.Name, result.ScoreLine())
	switch {
	case result.Team1Score > result.Team2Score:
		response.Winner = team1.Code
		summary = fmt.Sprintf("%s - %s (%s), %s wins", team1.Name, team2.Name, result.ScoreLine(), team1.Name)
	case result.Team2Score > result.Team1Score:
		response.Winner = team2.Code
		summary = fmt.Sprintf("%s - %s (%s), %s wins", team1.Name, team2.Name, result.ScoreLine(), team2.Name)
	}

	return textResult(APIResponse{
		Success: true,
		Data:    response,
		Summary: summary,
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "simulator",
			RunID:     uuid.New().String(),
			Seed:      usedSeed,
		},
	})
}

// SimulateGroupStageTool returns the MCP tool definition for simulate_group_stage
func (h *TournamentHandler) SimulateGroupStageTool() mcp.Tool {
	return mcp.Tool{
		Name:        "simulate_group_stage",
		Description: "Simulate the round-robin group stage: every match of every group plus the final group standings",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"seed": seedProperty(),
			},
		},
	}
}

// HandleSimulateGroupStage handles the simulate_group_stage tool call
func (h *TournamentHandler) HandleSimulateGroupStage(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling simulate_group_stage")

	seed, err := parseSeed(args, h.defaults.Seed)
	if err != nil {
		return nil, err
	}

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	result, usedSeed, err := tournament.New(roster, h.logger).PlayGroupStage(tournament.Options{Seed: seed})
	if err != nil {
		h.logger.WithError(err).Error("Failed to simulate group stage")
		return errorResult("Failed to simulate group stage: %s", err.Error()), nil
	}

	leaders := make([]string, 0, len(result.Groups))
	for _, g := range result.Groups {
		if len(g.Ranking) > 0 {
			leaders = append(leaders, fmt.Sprintf("%s: %s", g.Name, g.Ranking[0].Name))
		}
	}

	return textResult(APIResponse{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("%d matches played in %d groups. Group winners - %s",
			result.MatchCount(), len(result.Groups), strings.Join(leaders, ", ")),
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "simulator",
			RunID:     uuid.New().String(),
			Seed:      usedSeed,
		},
	})
}

// SimulateTournamentTool returns the MCP tool definition for simulate_tournament
func (h *TournamentHandler) SimulateTournamentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "simulate_tournament",
		Description: "Simulate the full tournament: group stage, draw into pots D-G, quarterfinals, semifinals, third-place match, final and medals",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"seed":     seedProperty(),
				"tiebreak": tieBreakProperty(),
			},
		},
	}
}

// HandleSimulateTournament handles the simulate_tournament tool call
func (h *TournamentHandler) HandleSimulateTournament(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling simulate_tournament")

	// Parse arguments
	seed, err := parseSeed(args, h.defaults.Seed)
	if err != nil {
		return nil, err
	}
	tieBreak, err := parseTieBreak(args, h.defaults.TieBreak)
	if err != nil {
		return nil, err
	}

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	result, err := tournament.New(roster, h.logger).Run(ctx, tournament.Options{Seed: seed, TieBreak: tieBreak})
	if err != nil {
		h.logger.WithError(err).Error("Failed to simulate tournament")
		return errorResult("Failed to simulate tournament: %s", err.Error()), nil
	}

	return textResult(APIResponse{
		Success: true,
		Data:    result,
		Summary: medalSummary(result.Bracket),
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "simulator",
			RunID:     result.RunID,
			Seed:      result.Seed,
			TieBreak:  string(tieBreak),
		},
	})
}

// SimulateKnockoutTool returns the MCP tool definition for simulate_knockout
func (h *TournamentHandler) SimulateKnockoutTool() mcp.Tool {
	return mcp.Tool{
		Name:        "simulate_knockout",
		Description: "Simulate the knockout stage from caller-supplied pots. Quarterfinals pair D1-G1, D2-G2, E1-F1, E2-F2. Unknown team codes leave their matches unplayed instead of failing.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pots": map[string]interface{}{
					"type":        "object",
					"description": "Pots D, E, F and G, each an array of exactly two team ISO codes, e.g. {\"D\": [\"USA\", \"CAN\"], ...}",
					"required":    true,
				},
				"seed":     seedProperty(),
				"tiebreak": tieBreakProperty(),
			},
		},
	}
}

// HandleSimulateKnockout handles the simulate_knockout tool call
func (h *TournamentHandler) HandleSimulateKnockout(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling simulate_knockout")

	// Parse arguments
	pots, err := parsePots(args)
	if err != nil {
		return nil, err
	}
	seed, err := parseSeed(args, h.defaults.Seed)
	if err != nil {
		return nil, err
	}
	tieBreak, err := parseTieBreak(args, h.defaults.TieBreak)
	if err != nil {
		return nil, err
	}

	roster, err := h.provider.Roster(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load roster")
		return errorResult("Failed to load roster: %s", err.Error()), nil
	}

	draw := &tournament.Draw{Pots: pots}
	bracket, usedSeed, err := tournament.New(roster, h.logger).PlayKnockout(draw, tournament.Options{Seed: seed, TieBreak: tieBreak})
	if err != nil {
		h.logger.WithError(err).Error("Failed to simulate knockout stage")
		return errorResult("Failed to simulate knockout stage: %s", err.Error()), nil
	}

	response := KnockoutResponse{Pots: pots, Bracket: bracket}
	for _, m := range bracket.Gaps() {
		response.Gaps = append(response.Gaps, fmt.Sprintf("%s %s-%s: %s", m.Round, entrantCode(m.Team1Code), entrantCode(m.Team2Code), m.Gap))
	}

	return textResult(APIResponse{
		Success: true,
		Data:    response,
		Summary: medalSummary(bracket),
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "simulator",
			RunID:     uuid.New().String(),
			Seed:      usedSeed,
			TieBreak:  string(tieBreak),
		},
	})
}

// parsePots reads the pots argument into the draw layout. Every team code
// must be unique across all pots.
func parsePots(args map[string]interface{}) (map[string][2]string, error) {
	raw, ok := args["pots"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("pots is required and must be an object")
	}

	pots := make(map[string][2]string, len(tournament.PotNames))
	seen := make(map[string]string, tournament.SeedCount)
	for _, name := range tournament.PotNames {
		codes, err := potCodes(raw[name])
		if err != nil {
			return nil, fmt.Errorf("pot %s: %w", name, err)
		}
		for _, code := range codes {
			if other, dup := seen[code]; dup {
				return nil, fmt.Errorf("team %s appears in pot %s and pot %s; each team may be drawn once", code, other, name)
			}
			seen[code] = name
		}
		pots[name] = codes
	}
	return pots, nil
}

func potCodes(raw interface{}) ([2]string, error) {
	var codes [2]string

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	default:
		return codes, fmt.Errorf("must be an array of two team codes")
	}

	if len(items) != 2 {
		return codes, fmt.Errorf("must hold exactly two team codes, got %d", len(items))
	}
	for i, item := range items {
		code, ok := item.(string)
		if !ok {
			return codes, fmt.Errorf("team codes must be strings")
		}
		codes[i] = strings.ToUpper(strings.TrimSpace(code))
	}
	return codes, nil
}

func medalSummary(b *tournament.Bracket) string {
	if b == nil {
		return "No knockout stage played"
	}

	names := make([]string, 0, 3)
	for _, t := range []*tournament.Team{b.Medals.Gold, b.Medals.Silver, b.Medals.Bronze} {
		if t == nil {
			names = append(names, "undecided")
			continue
		}
		names = append(names, t.Name)
	}

	summary := fmt.Sprintf("Gold: %s, Silver: %s, Bronze: %s", names[0], names[1], names[2])
	if gaps := len(b.Gaps()); gaps > 0 {
		summary += fmt.Sprintf(" (%d knockout matches not played)", gaps)
	}
	return summary
}

func entrantCode(code string) string {
	if code == "" {
		return "TBD"
	}
	return code
}

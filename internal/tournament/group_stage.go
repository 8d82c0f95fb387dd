package tournament

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PlayedMatch is a simulated group-stage match
type PlayedMatch struct {
	Team1  Team        `json:"team1"`
	Team2  Team        `json:"team2"`
	Result MatchResult `json:"result"`
}

// ScoreLine formats the match as "Team1 - Team2 (s1:s2)"
func (m PlayedMatch) ScoreLine() string {
	return fmt.Sprintf("%s - %s (%s)", m.Team1.Name, m.Team2.Name, m.Result.ScoreLine())
}

// GroupResult holds every match of a group and its final ranking
type GroupResult struct {
	Name    string        `json:"name"`
	Matches []PlayedMatch `json:"matches"`
	Ranking []Standing    `json:"ranking"`
}

// GroupStageResult is the outcome of the whole group stage, in group order
type GroupStageResult struct {
	Groups []GroupResult `json:"groups"`
}

// MatchCount returns the number of matches played across all groups
func (r *GroupStageResult) MatchCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Matches)
	}
	return n
}

// GroupStage plays a single round robin inside every group
type GroupStage struct {
	sim    *Simulator
	logger *logrus.Logger
}

// NewGroupStage creates a group stage orchestrator
func NewGroupStage(sim *Simulator, logger *logrus.Logger) *GroupStage {
	return &GroupStage{sim: sim, logger: logger}
}

// Play runs every group. Any simulation or standings failure aborts the stage.
func (gs *GroupStage) Play(groups []Group) (*GroupStageResult, error) {
	result := &GroupStageResult{Groups: make([]GroupResult, 0, len(groups))}
	for _, g := range groups {
		groupResult, err := gs.PlayGroup(g)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, *groupResult)
	}
	return result, nil
}

// PlayGroup pairs team i with every later team j in listed order, so each
// unordered pair meets exactly once. A team listed twice is a
// DataIntegrityError.
func (gs *GroupStage) PlayGroup(g Group) (*GroupResult, error) {
	log := gs.logger.WithField("group", g.Name)

	seen := make(map[string]bool, len(g.Teams))
	for _, t := range g.Teams {
		if seen[t.Code] {
			err := &DataIntegrityError{Team1: t.Code, Team2: t.Code, Group: g.Name}
			log.WithError(err).Error("Duplicate team in group")
			return nil, err
		}
		seen[t.Code] = true
	}

	standings := NewStandings(g.Name, g.Teams)

	matches := make([]PlayedMatch, 0, len(g.Teams)*(len(g.Teams)-1)/2)
	for i := 0; i < len(g.Teams); i++ {
		for j := i + 1; j < len(g.Teams); j++ {
			team1 := g.Teams[i]
			team2 := g.Teams[j]

			result, err := gs.sim.Play(team1, team2)
			if err != nil {
				return nil, fmt.Errorf("simulating %s vs %s in group %s: %w", team1.Code, team2.Code, g.Name, err)
			}

			if err := standings.Update(team1, team2, result); err != nil {
				log.WithError(err).Error("Standings update failed")
				return nil, err
			}

			match := PlayedMatch{Team1: team1, Team2: team2, Result: result}
			matches = append(matches, match)
			log.WithFields(logrus.Fields{
				"team1": team1.Code,
				"team2": team2.Code,
				"score": result.ScoreLine(),
			}).Debug("Group match played")
		}
	}

	ranking := standings.Rank()
	for pos, st := range ranking {
		log.WithFields(logrus.Fields{
			"position":   pos + 1,
			"team":       st.Code,
			"points":     st.Points,
			"difference": st.PointDifference,
		}).Debug("Final group standing")
	}

	return &GroupResult{Name: g.Name, Matches: matches, Ranking: ranking}, nil
}

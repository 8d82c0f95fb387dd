package tournament

import "fmt"

// Team represents a national team taking part in the tournament
type Team struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Ranking int    `json:"ranking"`
}

func (t Team) String() string { return t.Code }

// Group is a named, ordered collection of teams. Team order is the seeding
// order used for round-robin pairings.
type Group struct {
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

// ExhibitionRecord is a single historical match of a team
type ExhibitionRecord struct {
	Date     string `json:"date,omitempty"`
	Opponent string `json:"opponent"`
	Result   string `json:"result"` // "score-opponentScore"
}

// Exhibitions maps a team code to its exhibition history
type Exhibitions map[string][]ExhibitionRecord

// FormSummary describes a team's scoring tendency
type FormSummary struct {
	AverageScore      float64 `json:"average_score"`
	AverageDifference float64 `json:"average_difference"`
}

// MatchResult holds the final score of a simulated match
type MatchResult struct {
	Team1Score int `json:"team1_score"`
	Team2Score int `json:"team2_score"`
	Overtimes  int `json:"overtimes,omitempty"`
}

// ScoreLine formats the result as "team1:team2"
func (r MatchResult) ScoreLine() string {
	return fmt.Sprintf("%d:%d", r.Team1Score, r.Team2Score)
}

// Standing is a team's accumulated record within its group
type Standing struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Games           int    `json:"games"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Points          int    `json:"points"`
	PointsFor       int    `json:"points_for"`
	PointsAgainst   int    `json:"points_against"`
	PointDifference int    `json:"point_difference"`
}

// Roster is the immutable tournament input: groups plus exhibition history
type Roster struct {
	Groups      []Group
	Exhibitions Exhibitions
	teams       map[string]Team
}

// NewRoster indexes the teams of all groups by code
func NewRoster(groups []Group, exhibitions Exhibitions) *Roster {
	if exhibitions == nil {
		exhibitions = Exhibitions{}
	}
	r := &Roster{
		Groups:      groups,
		Exhibitions: exhibitions,
		teams:       make(map[string]Team),
	}
	for _, g := range groups {
		for _, t := range g.Teams {
			r.teams[t.Code] = t
		}
	}
	return r
}

// Lookup resolves a team by code across all groups
func (r *Roster) Lookup(code string) (Team, bool) {
	t, ok := r.teams[code]
	return t, ok
}

// Teams returns every team in group order
func (r *Roster) Teams() []Team {
	var teams []Team
	for _, g := range r.Groups {
		teams = append(teams, g.Teams...)
	}
	return teams
}

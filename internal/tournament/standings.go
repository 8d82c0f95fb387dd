package tournament

import "sort"

// Standings tracks the records of every team in one group
type Standings struct {
	group   string
	order   []string
	entries map[string]*Standing
}

// NewStandings creates a zeroed standing for each team, keeping team order
func NewStandings(group string, teams []Team) *Standings {
	s := &Standings{
		group:   group,
		order:   make([]string, 0, len(teams)),
		entries: make(map[string]*Standing, len(teams)),
	}
	for _, t := range teams {
		if _, exists := s.entries[t.Code]; exists {
			continue
		}
		s.order = append(s.order, t.Code)
		s.entries[t.Code] = &Standing{Code: t.Code, Name: t.Name}
	}
	return s
}

// Get returns a copy of a team's standing
func (s *Standings) Get(code string) (Standing, bool) {
	e, ok := s.entries[code]
	if !ok {
		return Standing{}, false
	}
	return *e, true
}

// Update records a played match. Both teams are checked before anything is
// mutated so a failed update leaves the standings untouched.
func (s *Standings) Update(team1, team2 Team, result MatchResult) error {
	stats1, ok1 := s.entries[team1.Code]
	stats2, ok2 := s.entries[team2.Code]
	if !ok1 || !ok2 {
		return &DataIntegrityError{Team1: team1.Code, Team2: team2.Code, Group: s.group}
	}

	stats1.Games++
	stats2.Games++
	stats1.PointsFor += result.Team1Score
	stats1.PointsAgainst += result.Team2Score
	stats2.PointsFor += result.Team2Score
	stats2.PointsAgainst += result.Team1Score
	stats1.PointDifference = stats1.PointsFor - stats1.PointsAgainst
	stats2.PointDifference = stats2.PointsFor - stats2.PointsAgainst

	switch {
	case result.Team1Score > result.Team2Score:
		stats1.Wins++
		stats1.Points += 2
		stats2.Losses++
	case result.Team1Score < result.Team2Score:
		stats2.Wins++
		stats2.Points += 2
		stats1.Losses++
	default:
		stats1.Points++
		stats2.Points++
	}
	return nil
}

// Rank orders the standings by points, then point difference, then points
// scored. Teams equal on all three keep their group order.
func (s *Standings) Rank() []Standing {
	ranked := make([]Standing, 0, len(s.order))
	for _, code := range s.order {
		ranked = append(ranked, *s.entries[code])
	}
	sortStandings(ranked)
	return ranked
}

func sortStandings(entries []Standing) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ranksAhead(entries[i], entries[j])
	})
}

func ranksAhead(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.PointDifference != b.PointDifference {
		return a.PointDifference > b.PointDifference
	}
	return a.PointsFor > b.PointsFor
}

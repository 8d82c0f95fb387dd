package tournament

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	// BaseScoreRange is the width of the uniform score draw before form is applied
	BaseScoreRange = 100

	overtimeScoreRange = 15
	maxOvertimes       = 10
)

// RandomSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded source. A zero seed uses the clock.
func NewRandomSource(seed int64) (RandomSource, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// TieBreak decides who advances from a level knockout match
type TieBreak string

const (
	// TieBreakOvertime plays overtime periods until the score is no longer level
	TieBreakOvertime TieBreak = "overtime"
	// TieBreakTeam1 advances team1 on a level score
	TieBreakTeam1 TieBreak = "team1"
)

// ParseTieBreak validates a tie-break policy name
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(s) {
	case "", TieBreakOvertime:
		return TieBreakOvertime, nil
	case TieBreakTeam1:
		return TieBreakTeam1, nil
	}
	return "", fmt.Errorf("unknown tiebreak %q (want %q or %q)", s, TieBreakOvertime, TieBreakTeam1)
}

// Simulator produces form-biased match scores
type Simulator struct {
	exhibitions Exhibitions
	rng         RandomSource
}

// NewSimulator creates a match simulator over the given exhibition history
func NewSimulator(exhibitions Exhibitions, rng RandomSource) *Simulator {
	return &Simulator{exhibitions: exhibitions, rng: rng}
}

// Play simulates a single match. Scores are drawn independently per team and
// may be level.
func (s *Simulator) Play(team1, team2 Team) (MatchResult, error) {
	form1, err := CalculateForm(team1.Code, s.exhibitions)
	if err != nil {
		return MatchResult{}, err
	}
	form2, err := CalculateForm(team2.Code, s.exhibitions)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchResult{
		Team1Score: s.drawScore(form1),
		Team2Score: s.drawScore(form2),
	}, nil
}

// PlayKnockout simulates a match that must produce a winner. The returned
// flag reports whether team1 won.
func (s *Simulator) PlayKnockout(team1, team2 Team, tieBreak TieBreak) (MatchResult, bool, error) {
	result, err := s.Play(team1, team2)
	if err != nil {
		return MatchResult{}, false, err
	}

	if result.Team1Score == result.Team2Score && tieBreak == TieBreakOvertime {
		for result.Team1Score == result.Team2Score && result.Overtimes < maxOvertimes {
			result.Overtimes++
			result.Team1Score += s.rng.Intn(overtimeScoreRange)
			result.Team2Score += s.rng.Intn(overtimeScoreRange)
		}
		if result.Team1Score == result.Team2Score {
			return result, s.rng.Intn(2) == 0, nil
		}
	}

	// level scores only reach here under TieBreakTeam1
	return result, result.Team1Score >= result.Team2Score, nil
}

func (s *Simulator) drawScore(form FormSummary) int {
	n := int(math.Ceil(BaseScoreRange + form.AverageScore))
	if n < 1 {
		n = 1
	}
	score := int(math.Floor(float64(s.rng.Intn(n)) + form.AverageDifference))
	if score < 0 {
		return 0
	}
	return score
}

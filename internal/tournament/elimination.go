package tournament

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Round identifies a knockout round
type Round string

const (
	RoundQuarterfinal Round = "quarterfinal"
	RoundSemifinal    Round = "semifinal"
	RoundThirdPlace   Round = "third_place"
	RoundFinal        Round = "final"
)

// Stage is the state of the knockout bracket
type Stage string

const (
	StageSeeded              Stage = "seeded"
	StageQuarterfinalsPlayed Stage = "quarterfinals_played"
	StageSemifinalsPlayed    Stage = "semifinals_played"
	StageFinalsPlayed        Stage = "finals_played"
	StageMedalsDetermined    Stage = "medals_determined"
	// StageIncomplete is terminal when a gap left at least one medal undecided
	StageIncomplete Stage = "incomplete"
)

// KnockoutMatch is a knockout fixture. When the match could not be played
// Result, Winner and Loser are nil and Err explains the gap.
type KnockoutMatch struct {
	Round     Round        `json:"round"`
	Team1Code string       `json:"team1_code,omitempty"`
	Team2Code string       `json:"team2_code,omitempty"`
	Team1     *Team        `json:"team1,omitempty"`
	Team2     *Team        `json:"team2,omitempty"`
	Result    *MatchResult `json:"result,omitempty"`
	Winner    *Team        `json:"winner,omitempty"`
	Loser     *Team        `json:"loser,omitempty"`
	Err       error        `json:"-"`
	Gap       string       `json:"gap,omitempty"`
}

// Played reports whether the match produced a result
func (m *KnockoutMatch) Played() bool { return m.Result != nil }

// Medals is the final podium. A medal is nil when its match was not played.
type Medals struct {
	Gold   *Team `json:"gold,omitempty"`
	Silver *Team `json:"silver,omitempty"`
	Bronze *Team `json:"bronze,omitempty"`
}

// Complete reports whether all three medals were decided
func (m Medals) Complete() bool {
	return m.Gold != nil && m.Silver != nil && m.Bronze != nil
}

// Codes returns gold, silver and bronze codes, empty for undecided medals
func (m Medals) Codes() []string {
	codes := make([]string, 0, 3)
	for _, t := range []*Team{m.Gold, m.Silver, m.Bronze} {
		if t == nil {
			codes = append(codes, "")
			continue
		}
		codes = append(codes, t.Code)
	}
	return codes
}

// Bracket is the played knockout stage
type Bracket struct {
	Stage         Stage           `json:"stage"`
	Quarterfinals []KnockoutMatch `json:"quarterfinals"`
	Semifinals    []KnockoutMatch `json:"semifinals"`
	ThirdPlace    KnockoutMatch   `json:"third_place"`
	Final         KnockoutMatch   `json:"final"`
	Medals        Medals          `json:"medals"`
}

// Gaps returns every match that could not be played
func (b *Bracket) Gaps() []KnockoutMatch {
	var gaps []KnockoutMatch
	all := append(append([]KnockoutMatch{}, b.Quarterfinals...), b.Semifinals...)
	all = append(all, b.ThirdPlace, b.Final)
	for _, m := range all {
		if !m.Played() {
			gaps = append(gaps, m)
		}
	}
	return gaps
}

// Knockout runs the fixed eight-team bracket
type Knockout struct {
	roster   *Roster
	sim      *Simulator
	tieBreak TieBreak
	logger   *logrus.Logger
}

// NewKnockout creates an elimination orchestrator. Teams are resolved by code
// against roster.
func NewKnockout(roster *Roster, sim *Simulator, tieBreak TieBreak, logger *logrus.Logger) *Knockout {
	if tieBreak == "" {
		tieBreak = TieBreakOvertime
	}
	return &Knockout{roster: roster, sim: sim, tieBreak: tieBreak, logger: logger}
}

// Play runs quarterfinals D1-G1, D2-G2, E1-F1, E2-F2, then the semifinals
// (QF1 v QF2, QF3 v QF4), the third-place match and the final. A match whose
// teams cannot be resolved is skipped and the rest of the bracket still runs.
// A team placed more than once fails with ErrInvalidDraw.
func (k *Knockout) Play(draw *Draw) (*Bracket, error) {
	if err := draw.Validate(); err != nil {
		return nil, err
	}

	b := &Bracket{Stage: StageSeeded}
	d, e, f, g := draw.Pot(PotD), draw.Pot(PotE), draw.Pot(PotF), draw.Pot(PotG)

	pairings := [][2]string{
		{d[0], g[0]},
		{d[1], g[1]},
		{e[0], f[0]},
		{e[1], f[1]},
	}
	for _, p := range pairings {
		m, err := k.playMatch(RoundQuarterfinal, p[0], p[1])
		if err != nil {
			return nil, err
		}
		b.Quarterfinals = append(b.Quarterfinals, m)
	}
	k.advance(b, StageQuarterfinalsPlayed)

	qf := b.Quarterfinals
	for _, p := range [][2]*Team{{qf[0].Winner, qf[1].Winner}, {qf[2].Winner, qf[3].Winner}} {
		m, err := k.playMatch(RoundSemifinal, codeOf(p[0]), codeOf(p[1]))
		if err != nil {
			return nil, err
		}
		b.Semifinals = append(b.Semifinals, m)
	}
	k.advance(b, StageSemifinalsPlayed)

	sf := b.Semifinals
	third, err := k.playMatch(RoundThirdPlace, codeOf(sf[0].Loser), codeOf(sf[1].Loser))
	if err != nil {
		return nil, err
	}
	final, err := k.playMatch(RoundFinal, codeOf(sf[0].Winner), codeOf(sf[1].Winner))
	if err != nil {
		return nil, err
	}
	b.ThirdPlace = third
	b.Final = final
	k.advance(b, StageFinalsPlayed)

	b.Medals = Medals{Gold: final.Winner, Silver: final.Loser, Bronze: third.Winner}
	if b.Medals.Complete() {
		k.advance(b, StageMedalsDetermined)
	} else {
		k.advance(b, StageIncomplete)
	}
	return b, nil
}

func (k *Knockout) advance(b *Bracket, next Stage) {
	k.logger.WithFields(logrus.Fields{
		"from": b.Stage,
		"to":   next,
	}).Debug("Knockout stage advanced")
	b.Stage = next
}

func (k *Knockout) playMatch(round Round, code1, code2 string) (KnockoutMatch, error) {
	m := KnockoutMatch{Round: round, Team1Code: code1, Team2Code: code2}

	gap := &LookupGapError{}
	team1, ok1 := k.resolve(code1, gap)
	team2, ok2 := k.resolve(code2, gap)
	if !ok1 || !ok2 {
		m.Err = gap
		m.Gap = gap.Error()
		k.logger.WithError(gap).WithFields(logrus.Fields{
			"round": round,
			"team1": code1,
			"team2": code2,
		}).Error("Knockout match skipped")
		return m, nil
	}
	m.Team1 = &team1
	m.Team2 = &team2

	result, team1Won, err := k.sim.PlayKnockout(team1, team2, k.tieBreak)
	if err != nil {
		return m, fmt.Errorf("simulating %s %s vs %s: %w", round, code1, code2, err)
	}
	m.Result = &result
	if team1Won {
		m.Winner, m.Loser = m.Team1, m.Team2
	} else {
		m.Winner, m.Loser = m.Team2, m.Team1
	}

	k.logger.WithFields(logrus.Fields{
		"round":     round,
		"team1":     code1,
		"team2":     code2,
		"score":     result.ScoreLine(),
		"overtimes": result.Overtimes,
		"winner":    m.Winner.Code,
	}).Debug("Knockout match played")
	return m, nil
}

func (k *Knockout) resolve(code string, gap *LookupGapError) (Team, bool) {
	if code == "" {
		gap.Undecided++
		return Team{}, false
	}
	t, ok := k.roster.Lookup(code)
	if !ok {
		gap.Missing = append(gap.Missing, code)
	}
	return t, ok
}

func codeOf(t *Team) string {
	if t == nil {
		return ""
	}
	return t.Code
}

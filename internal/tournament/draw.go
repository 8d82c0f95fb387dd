package tournament

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Pot names in seed order
const (
	PotD = "D"
	PotE = "E"
	PotF = "F"
	PotG = "G"
)

// PotNames lists the pots in seed order
var PotNames = []string{PotD, PotE, PotF, PotG}

// SeedCount is the number of teams entering the knockout stage
const SeedCount = 8

// Qualifier is a ranked group-stage team in global seed order
type Qualifier struct {
	Seed          int      `json:"seed"`
	Group         string   `json:"group"`
	GroupPosition int      `json:"group_position"`
	Standing      Standing `json:"standing"`
}

// Draw assigns the eight seeds to pots D, E, F and G
type Draw struct {
	Pots    map[string][2]string `json:"pots"`
	Seeds   []Qualifier          `json:"seeds"`
	Reserve *Qualifier           `json:"reserve,omitempty"`
}

// Pot returns the two team codes of a pot
func (d *Draw) Pot(name string) [2]string {
	return d.Pots[name]
}

// Validate checks that no team code appears twice across the pots. Empty
// codes are undecided entrants and are not compared.
func (d *Draw) Validate() error {
	seen := make(map[string]string, SeedCount)
	for _, name := range PotNames {
		for _, code := range d.Pot(name) {
			if code == "" {
				continue
			}
			if other, dup := seen[code]; dup {
				return fmt.Errorf("%w: team %s placed in pot %s and pot %s", ErrInvalidDraw, code, other, name)
			}
			seen[code] = name
		}
	}
	return nil
}

// SeedOrder ranks every group-stage team globally. Teams are tiered by group
// position (all winners, then all runners-up, ...); inside a tier they are
// ordered by points, point difference and points scored, ties keeping group
// order.
func SeedOrder(results *GroupStageResult) []Qualifier {
	maxPos := 0
	for _, g := range results.Groups {
		if len(g.Ranking) > maxPos {
			maxPos = len(g.Ranking)
		}
	}

	var order []Qualifier
	for pos := 0; pos < maxPos; pos++ {
		var tier []Qualifier
		for _, g := range results.Groups {
			if pos < len(g.Ranking) {
				tier = append(tier, Qualifier{Group: g.Name, GroupPosition: pos + 1, Standing: g.Ranking[pos]})
			}
		}
		sortQualifiers(tier)
		order = append(order, tier...)
	}

	for i := range order {
		order[i].Seed = i + 1
	}
	return order
}

// NewDraw seeds the knockout stage from the final group standings. Seeds 1-2
// go to pot D, 3-4 to E, 5-6 to F and 7-8 to G. The ninth-ranked team is kept
// as a reserve and takes no part in the bracket.
func NewDraw(results *GroupStageResult, logger *logrus.Logger) (*Draw, error) {
	order := SeedOrder(results)
	if len(order) < SeedCount {
		return nil, fmt.Errorf("%w: have %d ranked teams, need %d", ErrNotEnoughQualifiers, len(order), SeedCount)
	}

	top := order
	if len(top) > SeedCount+1 {
		top = top[:SeedCount+1]
	}

	draw := &Draw{
		Pots:  make(map[string][2]string, len(PotNames)),
		Seeds: append([]Qualifier(nil), top[:SeedCount]...),
	}
	for i, name := range PotNames {
		draw.Pots[name] = [2]string{top[2*i].Standing.Code, top[2*i+1].Standing.Code}
	}

	if len(top) > SeedCount {
		reserve := top[SeedCount]
		draw.Reserve = &reserve
		logger.WithFields(logrus.Fields{
			"team":  reserve.Standing.Code,
			"group": reserve.Group,
			"seed":  reserve.Seed,
		}).Info("Reserve qualifier computed but not placed in the bracket")
	}

	for _, name := range PotNames {
		pot := draw.Pots[name]
		logger.WithFields(logrus.Fields{
			"pot":   name,
			"teams": pot[:],
		}).Debug("Pot drawn")
	}

	return draw, nil
}

func sortQualifiers(tier []Qualifier) {
	sort.SliceStable(tier, func(i, j int) bool {
		return ranksAhead(tier[i].Standing, tier[j].Standing)
	})
}

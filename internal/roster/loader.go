package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
	"github.com/sirupsen/logrus"
)

// ErrInvalidRoster is returned when the datasets fail validation
var ErrInvalidRoster = errors.New("invalid roster data")

// Load fetches both datasets from src, validates them and builds the
// tournament roster. Groups are ordered by name.
func Load(ctx context.Context, src Source, logger *logrus.Logger) (*tournament.Roster, error) {
	groupsData, err := src.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}
	exhibitionsData, err := src.LoadExhibitions(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := ConvertGroups(groupsData)
	if err != nil {
		return nil, err
	}
	exhibitions, err := ConvertExhibitions(exhibitionsData)
	if err != nil {
		return nil, err
	}

	roster := tournament.NewRoster(groups, exhibitions)
	for code := range exhibitions {
		if _, ok := roster.Lookup(code); !ok {
			logger.WithField("team", code).Warn("Exhibitions found for a team outside every group")
		}
	}

	logger.WithFields(logrus.Fields{
		"groups":      len(groups),
		"teams":       len(roster.Teams()),
		"exhibitions": len(exhibitions),
	}).Info("Roster loaded")
	return roster, nil
}

// ConvertGroups validates the groups dataset and converts it into ordered
// tournament groups. Team codes must be unique across all groups.
func ConvertGroups(data GroupsData) ([]tournament.Group, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrInvalidRoster)
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]string)
	groups := make([]tournament.Group, 0, len(names))
	for _, name := range names {
		g := tournament.Group{Name: name}
		for i, t := range data[name] {
			code := strings.TrimSpace(t.ISOCode)
			if code == "" {
				return nil, fmt.Errorf("%w: team %d of group %s has no ISO code", ErrInvalidRoster, i+1, name)
			}
			if other, dup := seen[code]; dup {
				return nil, fmt.Errorf("%w: team %s listed in groups %s and %s", ErrInvalidRoster, code, other, name)
			}
			seen[code] = name
			g.Teams = append(g.Teams, tournament.Team{Code: code, Name: t.Team, Ranking: t.FIBARanking})
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ConvertExhibitions validates every result string and converts the dataset
func ConvertExhibitions(data ExhibitionsData) (tournament.Exhibitions, error) {
	exhibitions := make(tournament.Exhibitions, len(data))
	for code, matches := range data {
		records := make([]tournament.ExhibitionRecord, 0, len(matches))
		for i, m := range matches {
			if _, _, err := tournament.ParseResult(m.Result); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, &tournament.MalformedRecordError{Team: code, Index: i, Result: m.Result})
			}
			records = append(records, tournament.ExhibitionRecord{Date: m.Date, Opponent: m.Opponent, Result: m.Result})
		}
		exhibitions[code] = records
	}
	return exhibitions, nil
}

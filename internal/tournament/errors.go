package tournament

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTeam is returned when standings are updated for a team
	// that was never registered in the group, or a group lists a team twice
	ErrUnknownTeam = errors.New("team not found in standings")

	// ErrLookupGap marks a knockout match that could not be played because
	// one of its teams could not be resolved
	ErrLookupGap = errors.New("team not found in roster")

	// ErrMalformedRecord is returned for exhibition results that are not
	// two integers separated by '-'
	ErrMalformedRecord = errors.New("malformed exhibition result")

	// ErrNotEnoughQualifiers is returned when the group stage produced
	// fewer than eight ranked teams
	ErrNotEnoughQualifiers = errors.New("not enough qualifiers for the knockout draw")

	// ErrInvalidDraw is returned when a draw places the same team more than once
	ErrInvalidDraw = errors.New("invalid knockout draw")
)

// DataIntegrityError reports a standings update referencing an unregistered
// team. Team1 == Team2 marks a team listed twice in its group.
type DataIntegrityError struct {
	Team1 string
	Team2 string
	Group string
}

func (e *DataIntegrityError) Error() string {
	if e.Team1 == e.Team2 {
		return fmt.Sprintf("standings issue in group %s: team %s listed more than once", e.Group, e.Team1)
	}
	if e.Group != "" {
		return fmt.Sprintf("standings issue in group %s: %s or %s not found", e.Group, e.Team1, e.Team2)
	}
	return fmt.Sprintf("standings issue: %s or %s not found", e.Team1, e.Team2)
}

func (e *DataIntegrityError) Unwrap() error { return ErrUnknownTeam }

// LookupGapError reports a knockout match whose teams could not be resolved.
// Missing holds codes absent from the roster; Undecided counts entrants left
// empty by an earlier unplayed match.
type LookupGapError struct {
	Missing   []string
	Undecided int
}

func (e *LookupGapError) Error() string {
	switch {
	case len(e.Missing) > 0 && e.Undecided > 0:
		return fmt.Sprintf("teams %v not found in group data, %d entrant(s) undecided", e.Missing, e.Undecided)
	case len(e.Missing) > 0:
		return fmt.Sprintf("teams %v not found in group data", e.Missing)
	}
	return fmt.Sprintf("%d entrant(s) undecided by an earlier unplayed match", e.Undecided)
}

func (e *LookupGapError) Unwrap() error { return ErrLookupGap }

// MalformedRecordError reports an exhibition result that could not be parsed
type MalformedRecordError struct {
	Team   string
	Index  int
	Result string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("exhibition %d of %s: cannot parse result %q", e.Index, e.Team, e.Result)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

package tournament

import (
	"strconv"
	"strings"
)

// CalculateForm derives a team's form from its exhibition history. A team
// without exhibitions has a neutral form.
func CalculateForm(code string, exhibitions Exhibitions) (FormSummary, error) {
	matches := exhibitions[code]
	if len(matches) == 0 {
		return FormSummary{}, nil
	}

	totalScore := 0
	totalDifference := 0
	for i, m := range matches {
		score, opponentScore, err := ParseResult(m.Result)
		if err != nil {
			return FormSummary{}, &MalformedRecordError{Team: code, Index: i, Result: m.Result}
		}
		totalScore += score
		totalDifference += score - opponentScore
	}

	n := float64(len(matches))
	return FormSummary{
		AverageScore:      float64(totalScore) / n,
		AverageDifference: float64(totalDifference) / n,
	}, nil
}

// ParseResult splits a "score-opponentScore" string into its two scores
func ParseResult(result string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(result), "-")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedRecord
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrMalformedRecord
	}
	opponentScore, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrMalformedRecord
	}
	return score, opponentScore, nil
}

package tournament

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standing(code string, points, diff, pointsFor int) Standing {
	return Standing{Code: code, Name: "Team " + code, Points: points, PointDifference: diff, PointsFor: pointsFor}
}

func groupResult(name string, ranking ...Standing) GroupResult {
	return GroupResult{Name: name, Ranking: ranking}
}

func TestNewDraw_FourGroupsUsesTopTwo(t *testing.T) {
	results := &GroupStageResult{Groups: []GroupResult{
		groupResult("A", standing("A1", 6, 20, 250), standing("A2", 4, 5, 240), standing("A3", 2, -5, 230), standing("A4", 0, -20, 200)),
		groupResult("B", standing("B1", 6, 30, 260), standing("B2", 4, 2, 235), standing("B3", 2, -10, 220), standing("B4", 0, -22, 210)),
		groupResult("C", standing("C1", 6, 10, 245), standing("C2", 4, 9, 238), standing("C3", 2, -1, 225), standing("C4", 0, -18, 205)),
		groupResult("D", standing("D1", 4, 12, 248), standing("D2", 4, 1, 236), standing("D3", 4, 0, 229), standing("D4", 0, -13, 207)),
	}}

	draw, err := NewDraw(results, newTestLogger())
	require.NoError(t, err)

	require.Len(t, draw.Pots, 4)
	assert.Equal(t, [2]string{"B1", "A1"}, draw.Pot(PotD))
	assert.Equal(t, [2]string{"C1", "D1"}, draw.Pot(PotE))
	assert.Equal(t, [2]string{"C2", "A2"}, draw.Pot(PotF))
	assert.Equal(t, [2]string{"B2", "D2"}, draw.Pot(PotG))

	qualified := map[string]bool{}
	for _, name := range PotNames {
		for _, code := range draw.Pot(name) {
			assert.NotEmpty(t, code)
			qualified[code] = true
		}
	}
	assert.Len(t, qualified, 8)
	for code := range qualified {
		assert.Contains(t, []string{"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2"}, code)
	}

	require.Len(t, draw.Seeds, 8)
	for i, q := range draw.Seeds {
		assert.Equal(t, i+1, q.Seed)
	}

	// best third place is computed but not placed
	require.NotNil(t, draw.Reserve)
	assert.Equal(t, "D3", draw.Reserve.Standing.Code)
	assert.Equal(t, 9, draw.Reserve.Seed)
	assert.Equal(t, 3, draw.Reserve.GroupPosition)
}

func TestNewDraw_ThreeGroupsTakesBestThirds(t *testing.T) {
	results := &GroupStageResult{Groups: []GroupResult{
		groupResult("A", standing("CAN", 6, 40, 270), standing("AUS", 4, 10, 250), standing("GRE", 2, -10, 240), standing("ESP", 0, -40, 220)),
		groupResult("B", standing("FRA", 6, 25, 260), standing("GER", 4, 15, 255), standing("BRA", 2, -2, 245), standing("JPN", 0, -38, 215)),
		groupResult("C", standing("USA", 6, 60, 290), standing("SRB", 4, 20, 265), standing("SSD", 2, -12, 235), standing("PRI", 0, -68, 210)),
	}}

	logger, hook := test.NewNullLogger()
	draw, err := NewDraw(results, logger)
	require.NoError(t, err)

	assert.Equal(t, [2]string{"USA", "CAN"}, draw.Pot(PotD))
	assert.Equal(t, [2]string{"FRA", "SRB"}, draw.Pot(PotE))
	assert.Equal(t, [2]string{"GER", "AUS"}, draw.Pot(PotF))
	assert.Equal(t, [2]string{"BRA", "GRE"}, draw.Pot(PotG))

	require.NotNil(t, draw.Reserve)
	assert.Equal(t, "SSD", draw.Reserve.Standing.Code)

	found := false
	for _, e := range hook.AllEntries() {
		if e.Message == "Reserve qualifier computed but not placed in the bracket" {
			found = true
			assert.Equal(t, "SSD", e.Data["team"])
		}
	}
	assert.True(t, found, "expected reserve to be logged")
}

func TestNewDraw_EightTeamsHasNoReserve(t *testing.T) {
	results := &GroupStageResult{Groups: []GroupResult{
		groupResult("A", standing("A1", 2, 5, 80), standing("A2", 0, -5, 75)),
		groupResult("B", standing("B1", 2, 5, 80), standing("B2", 0, -5, 75)),
		groupResult("C", standing("C1", 2, 5, 80), standing("C2", 0, -5, 75)),
		groupResult("D", standing("D1", 2, 5, 80), standing("D2", 0, -5, 75)),
	}}

	draw, err := NewDraw(results, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, [2]string{"A1", "B1"}, draw.Pot(PotD))
	assert.Equal(t, [2]string{"C1", "D1"}, draw.Pot(PotE))
	assert.Equal(t, [2]string{"A2", "B2"}, draw.Pot(PotF))
	assert.Equal(t, [2]string{"C2", "D2"}, draw.Pot(PotG))
	assert.Nil(t, draw.Reserve)
}

func TestNewDraw_NotEnoughQualifiers(t *testing.T) {
	results := &GroupStageResult{Groups: []GroupResult{
		groupResult("A", standing("A1", 2, 5, 80), standing("A2", 0, -5, 75)),
		groupResult("B", standing("B1", 2, 5, 80), standing("B2", 0, -5, 75)),
		groupResult("C", standing("C1", 2, 5, 80), standing("C2", 0, -5, 75)),
	}}

	_, err := NewDraw(results, newTestLogger())
	assert.ErrorIs(t, err, ErrNotEnoughQualifiers)
}

func TestSeedOrder_UnevenGroups(t *testing.T) {
	results := &GroupStageResult{Groups: []GroupResult{
		groupResult("A", standing("A1", 4, 10, 160), standing("A2", 2, 0, 150), standing("A3", 0, -10, 140)),
		groupResult("B", standing("B1", 2, 3, 90), standing("B2", 0, -3, 87)),
	}}

	var codes []string
	for _, q := range SeedOrder(results) {
		codes = append(codes, q.Standing.Code)
	}
	assert.Equal(t, []string{"A1", "B1", "A2", "B2", "A3"}, codes)
}

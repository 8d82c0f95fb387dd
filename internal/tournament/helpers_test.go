package tournament

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// sequenceRand replays values in order, wrapping around, reduced modulo n
type sequenceRand struct {
	values []int
	pos    int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

func newTestLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func makeGroup(name string, codes ...string) Group {
	g := Group{Name: name}
	for i, c := range codes {
		g.Teams = append(g.Teams, Team{Code: c, Name: "Team " + c, Ranking: i + 1})
	}
	return g
}

func olympicGroups() []Group {
	return []Group{
		makeGroup("A", "CAN", "AUS", "GRE", "ESP"),
		makeGroup("B", "GER", "FRA", "BRA", "JPN"),
		makeGroup("C", "USA", "SRB", "SSD", "PRI"),
	}
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
)

// Renderer prints tournament results as a console report
type Renderer struct {
	out     io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	winner  lipgloss.Style
	gap     lipgloss.Style
	medals  [3]lipgloss.Style
}

// NewRenderer creates a renderer writing to out. Colors are only emitted when
// out is a terminal.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("240")),
		winner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("green")),
		gap:     r.NewStyle().Foreground(lipgloss.Color("196")),
		medals: [3]lipgloss.Style{
			r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
			r.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
			r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		},
	}
}

// Render prints the full report of a tournament run
func (r *Renderer) Render(result *tournament.Result) error {
	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("Tournament simulation (seed %d)", result.Seed)) + "\n")
	if result.GroupStage != nil {
		r.writeGroupStage(&b, result.GroupStage)
	}
	if result.Draw != nil {
		r.writeDraw(&b, result.Draw)
	}
	if result.Bracket != nil {
		r.writeBracket(&b, result.Bracket)
	}
	return r.flush(&b)
}

// RenderGroupStage prints group matches and final group tables
func (r *Renderer) RenderGroupStage(gs *tournament.GroupStageResult) error {
	var b strings.Builder
	r.writeGroupStage(&b, gs)
	return r.flush(&b)
}

// RenderDraw prints the pots
func (r *Renderer) RenderDraw(d *tournament.Draw) error {
	var b strings.Builder
	r.writeDraw(&b, d)
	return r.flush(&b)
}

// RenderBracket prints every knockout round and the medals
func (r *Renderer) RenderBracket(br *tournament.Bracket) error {
	var b strings.Builder
	r.writeBracket(&b, br)
	return r.flush(&b)
}

func (r *Renderer) flush(b *strings.Builder) error {
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeGroupStage(b *strings.Builder, gs *tournament.GroupStageResult) {
	b.WriteString("\n" + r.heading.Render("Group stage") + "\n")
	for _, g := range gs.Groups {
		fmt.Fprintf(b, "\n  Group %s:\n", g.Name)
		for _, m := range g.Matches {
			fmt.Fprintf(b, "    %s\n", m.ScoreLine())
		}
	}

	for _, g := range gs.Groups {
		fmt.Fprintf(b, "\n  Final standings, group %s:\n", g.Name)
		b.WriteString("    " + r.muted.Render("team games / losses / points / for / against / diff") + "\n")
		for pos, st := range g.Ranking {
			fmt.Fprintf(b, "    %d. %s\n", pos+1, StandingLine(st))
		}
	}
}

// StandingLine formats a standing as "name games / losses / points / for / against / diff"
func StandingLine(st tournament.Standing) string {
	return fmt.Sprintf("%s %d / %d / %d / %d / %d / %d",
		st.Name,
		st.Games,
		st.Losses,
		st.Points,
		st.PointsFor,
		st.PointsAgainst,
		st.PointDifference,
	)
}

func (r *Renderer) writeDraw(b *strings.Builder, d *tournament.Draw) {
	b.WriteString("\n" + r.heading.Render("Draw") + "\n")
	for _, name := range tournament.PotNames {
		pot := d.Pot(name)
		fmt.Fprintf(b, "  Pot %s: %s, %s\n", name, pot[0], pot[1])
	}
	if d.Reserve != nil {
		b.WriteString("  " + r.muted.Render(fmt.Sprintf("Reserve: %s (seed %d, not placed)", d.Reserve.Standing.Code, d.Reserve.Seed)) + "\n")
	}
}

func (r *Renderer) writeBracket(b *strings.Builder, br *tournament.Bracket) {
	b.WriteString("\n" + r.heading.Render("Knockout stage") + "\n")

	r.writeRound(b, "Quarterfinals", br.Quarterfinals)
	r.writeRound(b, "Semifinals", br.Semifinals)
	r.writeRound(b, "Third place", []tournament.KnockoutMatch{br.ThirdPlace})
	r.writeRound(b, "Final", []tournament.KnockoutMatch{br.Final})

	b.WriteString("\n" + r.heading.Render("Medals") + "\n")
	for i, t := range []*tournament.Team{br.Medals.Gold, br.Medals.Silver, br.Medals.Bronze} {
		if t == nil {
			fmt.Fprintf(b, "    %d. %s\n", i+1, r.gap.Render("undecided"))
			continue
		}
		fmt.Fprintf(b, "    %d. %s\n", i+1, r.medals[i].Render(t.Name))
	}
}

func (r *Renderer) writeRound(b *strings.Builder, label string, matches []tournament.KnockoutMatch) {
	fmt.Fprintf(b, "\n  %s:\n", label)
	for _, m := range matches {
		fmt.Fprintf(b, "    %s\n", r.matchLine(m))
	}
}

func (r *Renderer) matchLine(m tournament.KnockoutMatch) string {
	if !m.Played() {
		return fmt.Sprintf("%s - %s %s", entrant(m.Team1Code), entrant(m.Team2Code), r.gap.Render("(not played: "+m.Gap+")"))
	}

	name1, name2 := m.Team1.Name, m.Team2.Name
	if m.Winner.Code == m.Team1.Code {
		name1 = r.winner.Render(name1)
	} else {
		name2 = r.winner.Render(name2)
	}
	line := fmt.Sprintf("%s - %s (%s)", name1, name2, m.Result.ScoreLine())
	switch {
	case m.Result.Overtimes == 1:
		line += " " + r.muted.Render("OT")
	case m.Result.Overtimes > 1:
		line += " " + r.muted.Render(fmt.Sprintf("%dOT", m.Result.Overtimes))
	}
	return line
}

func entrant(code string) string {
	if code == "" {
		return "TBD"
	}
	return code
}

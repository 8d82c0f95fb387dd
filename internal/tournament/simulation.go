package tournament

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures a tournament run
type Options struct {
	// Seed for the random source. Zero seeds from the clock.
	Seed     int64
	TieBreak TieBreak
}

// Result is the complete outcome of one tournament run
type Result struct {
	RunID      string            `json:"run_id"`
	Seed       int64             `json:"seed"`
	GroupStage *GroupStageResult `json:"group_stage"`
	Draw       *Draw             `json:"draw"`
	Bracket    *Bracket          `json:"bracket"`
}

// Medals returns the podium of the run
func (r *Result) Medals() Medals {
	if r.Bracket == nil {
		return Medals{}
	}
	return r.Bracket.Medals
}

// Tournament chains group stage, draw and knockout for one roster
type Tournament struct {
	roster *Roster
	logger *logrus.Logger
}

// New creates a tournament runner
func New(roster *Roster, logger *logrus.Logger) *Tournament {
	return &Tournament{roster: roster, logger: logger}
}

// Simulator returns a match simulator seeded per opts
func (t *Tournament) Simulator(opts Options) (*Simulator, int64) {
	rng, seed := NewRandomSource(opts.Seed)
	return NewSimulator(t.roster.Exhibitions, rng), seed
}

// PlayGroupStage runs only the group stage
func (t *Tournament) PlayGroupStage(opts Options) (*GroupStageResult, int64, error) {
	sim, seed := t.Simulator(opts)
	result, err := NewGroupStage(sim, t.logger).Play(t.roster.Groups)
	return result, seed, err
}

// PlayKnockout runs only the knockout stage from an existing draw
func (t *Tournament) PlayKnockout(draw *Draw, opts Options) (*Bracket, int64, error) {
	sim, seed := t.Simulator(opts)
	bracket, err := NewKnockout(t.roster, sim, opts.TieBreak, t.logger).Play(draw)
	return bracket, seed, err
}

// Run plays a full tournament. The context is checked between phases.
func (t *Tournament) Run(ctx context.Context, opts Options) (*Result, error) {
	sim, seed := t.Simulator(opts)
	result := &Result{RunID: uuid.New().String(), Seed: seed}
	log := t.logger.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"seed":   seed,
	})
	log.Info("Starting tournament simulation")

	groupStage, err := NewGroupStage(sim, t.logger).Play(t.roster.Groups)
	if err != nil {
		log.WithError(err).Error("Group stage aborted")
		return nil, fmt.Errorf("group stage: %w", err)
	}
	result.GroupStage = groupStage
	log.WithField("matches", groupStage.MatchCount()).Info("Group stage completed")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	draw, err := NewDraw(groupStage, t.logger)
	if err != nil {
		log.WithError(err).Error("Draw failed")
		return nil, fmt.Errorf("draw: %w", err)
	}
	result.Draw = draw

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bracket, err := NewKnockout(t.roster, sim, opts.TieBreak, t.logger).Play(draw)
	if err != nil {
		log.WithError(err).Error("Knockout aborted")
		return nil, fmt.Errorf("knockout: %w", err)
	}
	result.Bracket = bracket

	log.WithFields(logrus.Fields{
		"stage":  bracket.Stage,
		"medals": bracket.Medals.Codes(),
	}).Info("Tournament simulation completed")
	return result, nil
}

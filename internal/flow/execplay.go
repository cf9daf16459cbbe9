package flow

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/playexec"
)

// executePlay builds a Context for the current offense/defense and runs
// whichever executor matches pendingPlayKind, stamping the result with a
// fresh Play ID the way every executor leaves to its caller.
func (s *Simulator) executePlay(offUnit, defUnit model.DepthChartUnit) (*model.Play, error) {
	g := s.Game
	ctx := playexec.Context{
		Game:        g,
		Offense:     g.TeamFor(g.Possession),
		Defense:     g.TeamFor(g.Possession.Opponent()),
		OffenseUnit: offUnit,
		DefenseUnit: defUnit,
		Decider:     s.Decider,
	}

	var play model.Play
	var err error
	switch s.pendingPlayKind {
	case model.PlayRun:
		play, err = playexec.ExecuteRun(s.Source, ctx)
	case model.PlayPass:
		play, err = playexec.ExecutePass(s.Source, ctx)
	case model.PlayFieldGoal:
		play, err = playexec.ExecuteFieldGoal(s.Source, ctx)
	case model.PlayPunt:
		play, err = playexec.ExecutePunt(s.Source, ctx)
	default:
		return nil, model.InvariantViolation("executePlay: no play kind was chosen")
	}
	if err != nil {
		return nil, err
	}
	play.ID = uuid.New()
	return &play, nil
}

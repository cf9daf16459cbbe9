package flow

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/playexec"
)

// kickoff is the Kickoff/OvertimeKickoff entry action. Game.Possession
// holds the receiving team going in (coinToss/halftime/overtimeCoinToss all
// set it that way); the kicking team is its opponent.
func (s *Simulator) kickoff(overtime bool) (model.FlowState, error) {
	g := s.Game
	receivingTeam := g.Possession
	kickingTeam := receivingTeam.Opponent()

	ctx := playexec.Context{
		Game:        g,
		Offense:     g.TeamFor(kickingTeam),
		Defense:     g.TeamFor(receivingTeam),
		OffenseUnit: model.DepthChartKickoffCoverage,
		DefenseUnit: model.DepthChartKickoffReturn,
		Decider:     s.Decider,
	}
	trailingBy := g.ScoreFor(kickingTeam)*-1 + g.ScoreFor(receivingTeam)

	play, err := playexec.ExecuteKickoff(s.Source, ctx, trailingBy)
	if err != nil {
		return g.State, err
	}
	play.ID = uuid.New()
	g.CurrentPlay = &play

	if overtime {
		return model.OvertimePostPlay, nil
	}
	return model.PostPlay, nil
}

package flow

import (
	"github.com/brahedrick/gridiron-sim/internal/game"
	"github.com/brahedrick/gridiron-sim/internal/model"
)

// quarterExpired is QuarterExpired's entry action: the destination was
// already computed by game.RunPostPlayChecks when PostPlay detected the
// boundary; this state exists only so the flow state machine carries the
// transition as a distinct step (spec §4.10 lists it as its own state).
func (s *Simulator) quarterExpired() (model.FlowState, error) {
	return s.quarterExpireNext, nil
}

// halftime is Halftime's entry action: reset timeouts and possession for
// the second half's kickoff. CheckQuarterExpire already advanced
// Game.Time.Quarter to Q3 on the play that triggered this state.
func (s *Simulator) halftime() (model.FlowState, error) {
	g := s.Game
	g.ResetTimeouts(g.Config.TimeoutsPerHalf)
	g.Possession = s.receivingTeam()
	g.Down = model.DownNone
	g.YardsToGo = 0
	return model.Kickoff, nil
}

// endOfRegulation is EndOfRegulation's entry action: game.CheckGameExpire
// inspects the final score and the configured overtime provider to decide
// between OvertimeCoinToss and PostGame.
func (s *Simulator) endOfRegulation() (model.FlowState, error) {
	var play *model.Play
	if n := len(s.Game.Plays); n > 0 {
		play = &s.Game.Plays[n-1]
	} else {
		play = &model.Play{}
	}
	next, _ := game.CheckGameExpire(s.Game, play)
	return next, nil
}

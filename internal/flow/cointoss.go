package flow

import "github.com/brahedrick/gridiron-sim/internal/model"

// preGame is a pass-through entry action; PreGame carries no state of its
// own to mutate before the coin toss.
func (s *Simulator) preGame() (model.FlowState, error) {
	return model.CoinToss, nil
}

// coinToss runs the two random integer draws spec §4.10 names (winner,
// deferred) and records the result for every later kickoff to read.
func (s *Simulator) coinToss() (model.FlowState, error) {
	s.Source.Trace("coin_toss_winner")
	winner := model.PossessionHome
	if s.Source.Intn(0, 2) == 1 {
		winner = model.PossessionAway
	}
	s.Source.Trace("coin_toss_defer")
	deferred := s.Source.Intn(0, 2) == 1

	s.Game.CoinTossResult = &model.CoinTossResult{Winner: winner, Deferred: deferred}
	s.Game.Possession = openingReceiver(s.Game.CoinTossResult)
	return model.Kickoff, nil
}

// openingReceiver is the team that receives the opening kickoff: the coin
// toss winner, unless they deferred their choice to the second half (in
// which case the loser receives first).
func openingReceiver(r *model.CoinTossResult) model.Possession {
	if r.Deferred {
		return r.Winner.Opponent()
	}
	return r.Winner
}

// receivingTeam is whoever receives the next regulation kickoff: the
// opening receiver in the first half, and the deferring team once the
// second half starts.
func (s *Simulator) receivingTeam() model.Possession {
	opener := openingReceiver(s.Game.CoinTossResult)
	if model.HalfOf(s.Game.Time.Quarter) == model.FirstHalf {
		return opener
	}
	return opener.Opponent()
}

// overtimeCoinToss is OvertimeCoinToss's entry action: it seeds a fresh
// OvertimeState for the period about to start and determines first
// possession, consulting the overtime provider for whether a toss happens
// at all (spec §4.9 HasCoinToss). CheckGameExpire only routes here with a
// non-nil provider, so none of the provider calls below need a nil guard.
func (s *Simulator) overtimeCoinToss() (model.FlowState, error) {
	provider := s.Game.Config.OvertimeRules

	period := 1
	if s.Game.Overtime != nil {
		period = s.Game.Overtime.Period + 1
	}

	var first model.Possession
	switch {
	case provider.HasCoinToss() && period == 1:
		s.Source.Trace("overtime_coin_toss_winner")
		first = model.PossessionHome
		if s.Source.Intn(0, 2) == 1 {
			first = model.PossessionAway
		}
	case s.Game.Overtime != nil:
		// Sudden-death periods past the first alternate who starts.
		first = s.Game.Overtime.FirstPossessionTeam.Opponent()
	default:
		first = s.Game.CoinTossResult.Winner.Opponent()
	}

	s.Game.Overtime = model.NewOvertimeState(period, first, first)
	s.Game.Possession = first
	s.Game.ResetTimeouts(provider.TimeoutsPerTeam())
	s.Game.Time.Quarter = model.Q4 // overtime has no quarter of its own; keeps Q4-gated checks inert
	s.Game.Time.SecondsRemaining = float64(provider.PeriodDurationSeconds())

	if provider.UsesKickoff(s.Game.Overtime) {
		return model.OvertimeKickoff, nil
	}

	down, yardsToGo := provider.StartingDownAndDistance(s.Game.Overtime)
	s.Game.Down = down
	s.Game.YardsToGo = yardsToGo
	s.Game.FieldPosition = clampFieldPosition(provider.StartingFieldPosition(s.Game.Overtime, first))
	return model.OvertimePrePlay, nil
}

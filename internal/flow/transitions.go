package flow

import (
	"github.com/brahedrick/gridiron-sim/internal/game"
	"github.com/brahedrick/gridiron-sim/internal/model"
)

// scheduleConversion records that scorer's touchdown needs a following
// PAT/2-point attempt; prePlay reads this back on its very next entry.
func (s *Simulator) scheduleConversion(scorer model.Possession) {
	s.conversionPending = true
	s.conversionTeam = scorer
}

// handleConversion finishes a PAT/2-point attempt play: awards the points
// on success, and always routes to the ensuing kickoff (spec §4.11: a
// conversion is a subsequent play, not a normal down, so it skips
// game.RunPostPlayChecks; only game.CheckQuarterExpire runs the clock down).
func (s *Simulator) handleConversion(play *model.Play) (model.FlowState, bool) {
	if !s.conversionPending {
		return model.PrePlay, false
	}
	game.CheckQuarterExpire(s.Game, play)

	successful := play.Touchdown
	if play.Kind == model.PlayFieldGoal && play.FieldGoal != nil {
		successful = play.FieldGoal.Made
	}
	if successful {
		points := 1
		if s.conversionTwoPoint {
			points = 2
		}
		s.Game.AddScore(s.conversionTeam, points)
	}

	s.conversionPending = false
	s.Game.Possession = kickoffReceiverAfterScore(model.ScoreTouchdown, s.conversionTeam)
	s.Game.Down = model.DownNone
	s.Game.YardsToGo = 0
	return model.Kickoff, true
}

// regulationPostPlayTransition decides PostPlay's next state in regulation:
// a conversion attempt in progress takes over entirely; otherwise the
// ordered event checks of spec §4.11 run, a touchdown schedules its
// conversion, a made field goal or safety routes straight to Kickoff, and a
// quarter/half boundary routes through QuarterExpired.
func (s *Simulator) regulationPostPlayTransition(play *model.Play) (model.FlowState, error) {
	if next, handled := s.handleConversion(play); handled {
		return next, nil
	}

	result := game.RunPostPlayChecks(s.Game, play)

	if result.ScoreType == model.ScoreTouchdown {
		s.scheduleConversion(result.Scorer)
		return model.PrePlay, nil
	}

	if result.QuarterExpired && result.Next != model.PrePlay {
		s.quarterExpireNext = result.Next
		return model.QuarterExpired, nil
	}

	if result.ScoreType == model.ScoreFieldGoal || result.ScoreType == model.ScoreSafety {
		s.Game.Possession = kickoffReceiverAfterScore(result.ScoreType, result.Scorer)
		s.Game.Down = model.DownNone
		s.Game.YardsToGo = 0
		return model.Kickoff, nil
	}

	if result.QuarterExpired {
		s.quarterExpireNext = result.Next
		return model.QuarterExpired, nil
	}

	return result.Next, nil
}

// scoreValue is the point value CheckScore already credited, re-derived
// here only for OvertimeState.RecordScore's own bookkeeping.
func scoreValue(t model.ScoreType) int {
	switch t {
	case model.ScoreTouchdown:
		return 6
	case model.ScoreFieldGoal:
		return 3
	case model.ScoreSafety:
		return 2
	default:
		return 0
	}
}

// endReasonFor approximates spec §4.9's PossessionEndReason from a
// finished play; turnover-on-downs and interception/fumble turnovers both
// collapse to EndReasonTurnover, since flow does not carry a dedicated flag
// distinguishing them through to this point.
func endReasonFor(play *model.Play, scoreType model.ScoreType) model.PossessionEndReason {
	switch {
	case scoreType != model.ScoreNone:
		return model.EndReasonScore
	case play.Kind == model.PlayPunt:
		return model.EndReasonPuntOrKick
	default:
		return model.EndReasonTurnover
	}
}

// overtimePostPlayTransition decides OvertimePostPlay's next state (spec
// §4.9): score/clock bookkeeping runs directly against game.CheckScore and
// game.CheckQuarterExpire rather than game.RunPostPlayChecks, since that
// helper's Next field assumes regulation's quarter numbering (overtime
// pins Game.Time.Quarter at Q4 for the two-minute-warning/clock checks,
// which would otherwise misroute a clock-expiry here to EndOfRegulation).
func (s *Simulator) overtimePostPlayTransition(play *model.Play) (model.FlowState, error) {
	provider := s.Game.Config.OvertimeRules
	ot := s.Game.Overtime

	scoreType, scorer := game.CheckScore(s.Game, play)
	game.CheckQuarterExpire(s.Game, play)

	if scoreType != model.ScoreNone {
		ot.RecordScore(scorer, scoreValue(scoreType))
		if provider.ShouldGameEnd(ot, scoreType, scorer) {
			play.GameExpired = true
			return model.PostGame, nil
		}
		ot.AdvancePossession(play.Possession)
		s.Game.Possession = ot.CurrentPossession
	} else if play.PossessionChanged {
		ot.AdvancePossession(play.Possession)
		s.Game.Possession = ot.CurrentPossession
	}

	if provider.ShouldStartNewPeriod(ot) {
		return model.OvertimeCoinToss, nil
	}

	switch provider.NextPossessionAction(ot, endReasonFor(play, scoreType)) {
	case model.ActionGameOver:
		play.GameExpired = true
		return model.PostGame, nil
	case model.ActionNewPeriod:
		return model.OvertimeCoinToss, nil
	}

	if scoreType != model.ScoreNone || play.PossessionChanged {
		if provider.UsesKickoff(ot) {
			return model.OvertimeKickoff, nil
		}
		down, yardsToGo := provider.StartingDownAndDistance(ot)
		s.Game.Down = down
		s.Game.YardsToGo = yardsToGo
		s.Game.FieldPosition = clampFieldPosition(provider.StartingFieldPosition(ot, s.Game.Possession))
	}
	return model.OvertimePrePlay, nil
}

// Package game implements the post-play event checks of spec §4.11: score
// detection, quarter/half/game clock expiry, and the two-minute warning.
// internal/flow's PostPlay state runs these, in order, against the just
// finished Play before deciding the next FlowState. Grounded on the
// teacher's SimulateYear walk, which runs the same kind of fixed, ordered
// per-unit check sequence (injury roll, then stat accumulation) once per
// game in a season loop; here the unit is a play instead of a game.
package game

import "github.com/brahedrick/gridiron-sim/internal/model"

// CheckScore applies a play's primary scoring event to the game's running
// score (spec §4.11: "a play may record at most one primary scoring event
// TD/FG/safety; a subsequent PAT/2-pt is a separate play"). It reports the
// ScoreType and the scoring team for callers (overtime transitions) that
// need them; ScoreNone/PossessionNone when the play did not score.
func CheckScore(g *model.Game, play *model.Play) (model.ScoreType, model.Possession) {
	switch {
	case play.Touchdown:
		scorer := play.Possession
		if play.PossessionChanged {
			// A defensive/return score (pick-six, fumble/INT return, muffed
			// kick recovery) credits whichever side ended the play with the
			// ball, not the side that started on offense.
			scorer = play.Possession.Opponent()
		}
		g.AddScore(scorer, 6)
		return model.ScoreTouchdown, scorer
	case play.Safety:
		scorer := play.Possession.Opponent()
		g.AddScore(scorer, 2)
		return model.ScoreSafety, scorer
	case play.Kind == model.PlayFieldGoal && play.FieldGoal != nil && play.FieldGoal.Made:
		g.AddScore(play.Possession, 3)
		return model.ScoreFieldGoal, play.Possession
	default:
		return model.ScoreNone, model.PossessionNone
	}
}

// CheckQuarterExpire subtracts a play's elapsed time from the current
// quarter and, if it runs out, advances the quarter pointer. It reports
// whether the quarter expired on this play; play.QuarterExpired mirrors the
// result for the permanent record.
func CheckQuarterExpire(g *model.Game, play *model.Play) bool {
	g.Time.SecondsRemaining -= play.ElapsedSeconds
	if g.Time.SecondsRemaining > 0 {
		return false
	}
	g.Time.SecondsRemaining = 0
	if g.Time.Quarter < model.Q4 {
		g.Time.Quarter++
		g.Time.SecondsRemaining = g.Config.QuarterLengthSeconds
	}
	play.QuarterExpired = true
	return true
}

// CheckTwoMinuteWarning consults the configured TwoMinuteWarningProvider
// after the clock mutation and, if it fires, marks it called for the
// quarter and stops the clock (spec §4.11). timeBefore/timeAfter are the
// quarter's seconds remaining immediately before and after this play's
// elapsed time was subtracted.
func CheckTwoMinuteWarning(g *model.Game, play *model.Play, timeBefore, timeAfter float64) bool {
	provider := g.Config.TwoMinuteWarningRules
	if provider == nil {
		return false
	}
	quarter := int(g.Time.Quarter)
	if g.Time.TwoMinuteWarningCalled[g.Time.Quarter] {
		return false
	}
	if !provider.ShouldCall(quarter, timeBefore, timeAfter, false) {
		return false
	}
	g.Time.TwoMinuteWarningCalled[g.Time.Quarter] = true
	play.ClockStopped = true
	return true
}

// CheckHalfExpire runs at the end of Q2 (and, by the same rule, Q4 of
// regulation): if the quarter just expired and an accepted defensive foul
// is on the play, consult the end-of-half provider; when it disallows the
// half ending on that foul, grant one untimed down instead of proceeding to
// halftime (spec §4.11, §4.9). Reports whether an untimed down was
// granted.
func CheckHalfExpire(g *model.Game, play *model.Play) bool {
	if !play.QuarterExpired {
		return false
	}
	if g.Time.Quarter != model.Q2 && g.Time.Quarter != model.Q4 {
		return false
	}
	if !hasAcceptedDefensiveFoul(play) {
		return false
	}
	provider := g.Config.EndOfHalfRules
	if provider == nil {
		return false
	}
	if provider.AllowsHalfToEndOnDefensivePenalty() {
		return false
	}
	g.PendingUntimedDown = true
	return true
}

// hasAcceptedDefensiveFoul reports whether the play carries at least one
// accepted penalty charged to the defense.
func hasAcceptedDefensiveFoul(play *model.Play) bool {
	for _, p := range play.Penalties {
		if !p.Accepted {
			continue
		}
		if model.PenaltyCatalog[p.Kind].OnDefense {
			return true
		}
	}
	return false
}

// CheckGameExpire is the entry action of EndOfRegulation (spec §4.10,
// §4.11): it inspects the score and, if tied and an overtime provider is
// configured, moves the game to OvertimeCoinToss; otherwise to PostGame.
// It reports the next FlowState and whether regulation actually ended
// (false if time remains or the quarter isn't Q4 — a defensive guard since
// RunPostPlayChecks only routes here when both hold).
func CheckGameExpire(g *model.Game, play *model.Play) (model.FlowState, bool) {
	if g.Time.Quarter != model.Q4 || g.Time.SecondsRemaining > 0 {
		return model.PrePlay, false
	}
	if g.HomeScore != g.AwayScore {
		play.GameExpired = true
		return model.PostGame, true
	}
	provider := g.Config.OvertimeRules
	if provider == nil {
		play.GameExpired = true
		return model.PostGame, true
	}
	play.GameExpired = true
	return model.OvertimeCoinToss, true
}

// PostPlayResult summarizes what the ordered PostPlay checks found, for
// internal/flow to act on.
type PostPlayResult struct {
	ScoreType        model.ScoreType
	Scorer           model.Possession
	QuarterExpired   bool
	UntimedDown      bool
	TwoMinuteWarning bool
	Next             model.FlowState
}

// RunPostPlayChecks runs the event checks of spec §4.11 in the order spec
// §4.10 names for the PostPlay state: score check, quarter-expire,
// half-expire, two-minute warning. Game-expire is not run here: it is
// CheckGameExpire, the entry action of EndOfRegulation. Penalty post-play checks
// (accept/decline and enforcement) are internal/penalty's responsibility
// and run by the caller before this, since they must finalize YardsGained
// before CheckScore and CheckQuarterExpire read the play's final state.
func RunPostPlayChecks(g *model.Game, play *model.Play) PostPlayResult {
	scoreType, scorer := CheckScore(g, play)

	quarterBefore := g.Time.Quarter
	timeBefore := g.Time.SecondsRemaining
	quarterExpired := CheckQuarterExpire(g, play)
	timeAfter := g.Time.SecondsRemaining

	untimedDown := false
	if quarterExpired {
		// CheckQuarterExpire has already advanced past Q2, so the half is
		// judged against the quarter that just ran out; an untimed down
		// keeps the game in that quarter with no time left.
		advancedQuarter, advancedSeconds := g.Time.Quarter, g.Time.SecondsRemaining
		g.Time.Quarter, g.Time.SecondsRemaining = quarterBefore, 0
		untimedDown = CheckHalfExpire(g, play)
		if !untimedDown {
			g.Time.Quarter, g.Time.SecondsRemaining = advancedQuarter, advancedSeconds
		}
	}

	warned := CheckTwoMinuteWarning(g, play, timeBefore, timeAfter)

	next := model.PrePlay
	if quarterExpired {
		next = nextStateAfterQuarterExpire(g, untimedDown)
	}

	return PostPlayResult{
		ScoreType:        scoreType,
		Scorer:           scorer,
		QuarterExpired:   quarterExpired,
		UntimedDown:      untimedDown,
		TwoMinuteWarning: warned,
		Next:             next,
	}
}

// nextStateAfterQuarterExpire resolves the state to move to when a quarter
// boundary was just crossed: an untimed down keeps play going in the same
// half; the end of Q2 goes to Halftime; the end of Q4 goes to
// EndOfRegulation, whose entry action is CheckGameExpire; any other quarter
// boundary simply continues to the next PrePlay.
func nextStateAfterQuarterExpire(g *model.Game, untimedDown bool) model.FlowState {
	if untimedDown {
		return model.PrePlay
	}
	switch g.Time.Quarter {
	case model.Q3:
		// CheckQuarterExpire already advanced Quarter from Q2 to Q3; Q2's
		// boundary is the half, so this is the moment the half actually
		// ended.
		return model.Halftime
	case model.Q4:
		// Quarter stays Q4 once it's the last one; SecondsRemaining == 0
		// is what signals regulation just ended.
		return model.EndOfRegulation
	default:
		return model.PrePlay
	}
}

package decision

import (
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// FourthDownDecision enumerates the fourth-down decision's outcomes.
type FourthDownDecision int

const (
	Punt FourthDownDecision = iota
	FieldGoalAttempt
	GoForIt
)

// PlayCallDecision enumerates the play-call decision's outcomes.
type PlayCallDecision int

const (
	CallRun PlayCallDecision = iota
	CallPass
	CallKneel
	CallSpike
)

// Decider bundles the configurable probability tables every decision
// function reads. Zero-valued fields fall back to documented defaults via
// NewDecider, the same "DI with defaults" shape as the teacher's
// YearSimulatorConfig/SeederConfig.
type Decider struct {
	GoForItByDistance map[int]float64 // keyed by distance bucket: 1,2,3,4,5(4-5),10(6-10),11(>=11)
	TwoPointBaseProbability float64
	OnsideAttemptProbability float64
	RunVsPassBase float64
}

// NewDecider returns a Decider with the documented defaults for any
// zero-valued field in cfg.
func NewDecider(cfg Decider) *Decider {
	d := cfg
	if d.GoForItByDistance == nil {
		d.GoForItByDistance = map[int]float64{
			1: 0.65, 2: 0.35, 3: 0.20, 4: 0.08, 5: 0.08, 10: 0.03, 11: 0.01,
		}
	}
	if d.TwoPointBaseProbability == 0 {
		d.TwoPointBaseProbability = 0.05
	}
	if d.OnsideAttemptProbability == 0 {
		d.OnsideAttemptProbability = 0.10
	}
	if d.RunVsPassBase == 0 {
		d.RunVsPassBase = 0.50
	}
	return &d
}

// ConversionDecision enumerates the post-touchdown conversion decision's
// outcomes.
type ConversionDecision int

const (
	ExtraPoint ConversionDecision = iota
	TwoPointAttempt
)

// TimeoutDecision enumerates the timeout decision's outcomes.
type TimeoutDecision int

const (
	NoTimeout TimeoutDecision = iota
	CallTimeout
)

// FairCatchDecision enumerates the kickoff/punt return decision's outcomes.
type FairCatchDecision int

const (
	ReturnKick FairCatchDecision = iota
	CallFairCatch
)

// OnsideDecision enumerates the onside-kick decision's outcomes.
type OnsideDecision int

const (
	NormalKickoff OnsideDecision = iota
	AttemptOnside
)

// PenaltyAcceptDecision enumerates the penalty accept/decline decision's
// outcomes.
type PenaltyAcceptDecision int

const (
	DeclinePenalty PenaltyAcceptDecision = iota
	AcceptPenalty
)

func bucketFor(distance int) int {
	switch {
	case distance <= 3:
		return distance
	case distance <= 5:
		return 5
	case distance <= 10:
		return 10
	default:
		return 11
	}
}

// FourthDown implements spec §4.8's fourth-down decision: classify into a
// mandatory-go mode first (desperation, last-chance, aggressive), else
// compute goForItProb from the 6-bucket distance table adjusted by
// field-position, score-differential, time and chip-shot-FG-available
// modifiers, else choose FG vs punt by distance band.
func (d *Decider) FourthDown(src rng.Source, ctx FourthDownContext) FourthDownDecision {
	trailing := ctx.ScoreDifferential < 0

	// Desperation mode: trailing >= 9 and < 120s.
	if trailing && ctx.ScoreDifferential <= -9 && ctx.SecondsRemaining < 120 {
		return GoForIt
	}
	// Last chance: trailing and < 30s.
	if trailing && ctx.SecondsRemaining < 30 {
		return GoForIt
	}
	// Aggressive: trailing, opponent territory (<=50 yards to go), <=5 min, <=3 yd.
	if trailing && ctx.FieldPosition <= 50 && ctx.SecondsRemaining <= 300 && ctx.Distance <= 3 {
		return GoForIt
	}

	base := d.GoForItByDistance[bucketFor(ctx.Distance)]
	prob := base

	// Field-position modifier: closer to the goal line nudges upward.
	if ctx.FieldPosition <= 35 {
		prob += 0.10
	} else if ctx.FieldPosition >= 60 {
		prob -= 0.05
	}
	// Score-differential modifier: trailing nudges up, leading nudges down.
	if ctx.ScoreDifferential < 0 {
		prob += 0.05
	} else if ctx.ScoreDifferential > 8 {
		prob -= 0.05
	}
	// Time modifier: 4th quarter under 5 minutes nudges up regardless of score.
	if ctx.Quarter == 4 && ctx.SecondsRemaining <= 300 {
		prob += 0.05
	}
	// Chip-shot-FG-available modifier nudges down (take the easy points).
	if ctx.ChipShotFGAvailable {
		prob -= 0.15
	}
	prob = distributions.ClampFloat(prob, 0.0, 0.95)

	src.Trace("fourth_down_go_for_it")
	if src.Float64() < prob {
		return GoForIt
	}

	// FG vs punt.
	fgDistance := ctx.FieldPosition + 17 // + snap depth + holder spot
	switch {
	case fgDistance <= 35:
		return FieldGoalAttempt
	case fgDistance <= 45:
		src.Trace("fourth_down_fg_vs_punt_normal")
		if src.Float64() < 0.80 {
			return FieldGoalAttempt
		}
		return Punt
	case fgDistance <= 55:
		p := 0.50
		if ctx.ScoreDifferential < 0 && ctx.ScoreDifferential >= -3 {
			p = 1.0
		}
		src.Trace("fourth_down_fg_vs_punt_long")
		if src.Float64() < p {
			return FieldGoalAttempt
		}
		return Punt
	default:
		return Punt
	}
}

// PlayCall implements spec §4.8's play-call decision: classify
// clock-management plays first (kneel, spike), else sample run vs pass.
func (d *Decider) PlayCall(src rng.Source, ctx PlayCallContext) PlayCallDecision {
	// Victory formation: leading in the 4th quarter with the clock running
	// and enough downs left in the series to bleed the remaining time.
	if ctx.Quarter == 4 && ctx.Leading && ctx.ClockRunning && !ctx.IsKickoffOrConversion {
		downsLeft := int(model.Fourth-ctx.Down) + 1
		if float64(downsLeft)*40 >= ctx.SecondsRemaining {
			return CallKneel
		}
	}
	// Spike: trailing, under two minutes, out of timeouts, clock running,
	// not already on fourth down (spiking on 4th burns the down for nothing).
	if ctx.Quarter == 4 && ctx.SecondsRemaining <= 120 && ctx.Trailing &&
		ctx.TimeoutsRemaining == 0 && ctx.ClockRunning &&
		ctx.Down != model.Fourth && !ctx.IsKickoffOrConversion {
		return CallSpike
	}
	src.Trace("play_call_run_vs_pass")
	if src.Float64() < d.RunVsPassBase {
		return CallRun
	}
	return CallPass
}

// Conversion implements spec §4.8's post-touchdown decision: a two-point
// attempt is always taken when down 2, 10, or 11, taken with probability
// 0.30 when down 1, and otherwise sampled at d.TwoPointBaseProbability.
// Only the score differential is read; the game clock is not consulted.
func (d *Decider) Conversion(src rng.Source, ctx ConversionContext) ConversionDecision {
	switch ctx.ScoreDifferential {
	case -2, -10, -11:
		return TwoPointAttempt
	case -1:
		src.Trace("conversion_down_one")
		if src.Float64() < 0.30 {
			return TwoPointAttempt
		}
		return ExtraPoint
	}
	src.Trace("conversion_base")
	if src.Float64() < d.TwoPointBaseProbability {
		return TwoPointAttempt
	}
	return ExtraPoint
}

// Timeout implements spec §4.8's timeout decision. Pre-play timeouts stop
// an opponent's long play clock when trailing late; post-play timeouts
// stop the clock to preserve time for a two-minute-drill or to set up a
// field goal attempt.
func (d *Decider) Timeout(src rng.Source, ctx TimeoutContext) TimeoutDecision {
	if ctx.TimeoutsRemaining == 0 {
		return NoTimeout
	}
	if !ctx.ClockRunning {
		return NoTimeout
	}
	if ctx.PrePlay {
		if ctx.IsDefense && ctx.Trailing && ctx.PlayClockSeconds <= 5 && ctx.SecondsRemainingInHalf <= 120 {
			return CallTimeout
		}
		return NoTimeout
	}
	if ctx.Trailing && ctx.SecondsRemainingInHalf <= 120 {
		return CallTimeout
	}
	if ctx.UpcomingFGDistance > 0 && ctx.SecondsRemainingInHalf <= 40 {
		return CallTimeout
	}
	return NoTimeout
}

// FairCatch implements spec §4.8's return decision: fair-catch probability
// rises with hang time and falls the deeper the returner already is in
// their own territory (a long return from deep is worth the risk).
func (d *Decider) FairCatch(src rng.Source, ctx FairCatchContext) FairCatchDecision {
	base := 0.20 + ctx.HangTimeSeconds/10
	if ctx.IsKickoff {
		base -= 0.10
	}
	if ctx.FieldPosition <= 10 {
		base -= 0.15
	}
	p := distributions.ClampFloat(base, 0.05, 0.90)
	src.Trace("fair_catch")
	if src.Float64() < p {
		return CallFairCatch
	}
	return ReturnKick
}

// Onside implements spec §4.8's onside-kick decision: non-zero only when
// the kicking team trails by two scores or more (>= 7), in which case it
// samples d.OnsideAttemptProbability. Every other margin -- including
// leading or trailing by fewer than 7 -- returns NormalKickoff without
// consuming a draw, so a go-ahead field goal that leaves the kicking team
// down 1-6 never perturbs the replay stream. A configured zero probability
// also short-circuits before drawing, since the outcome is certain either
// way.
func (d *Decider) Onside(src rng.Source, ctx OnsideContext) OnsideDecision {
	if ctx.TrailingBy < 7 {
		return NormalKickoff
	}
	if d.OnsideAttemptProbability == 0 {
		return NormalKickoff
	}
	src.Trace("onside_attempt")
	if src.Float64() < d.OnsideAttemptProbability {
		return AttemptOnside
	}
	return NormalKickoff
}

// PenaltyAccept implements spec §4.8's accept/decline decision from the
// non-fouling team's perspective: accept whichever of the raw-play result
// or the enforced-penalty result is more favorable, always accepting a
// foul that produces an automatic first down or erases a play that was
// itself a turnover against the fouled team.
func (d *Decider) PenaltyAccept(ctx PenaltyAcceptContext) PenaltyAcceptDecision {
	if ctx.OnDefense {
		// Offense fouled; defense decides. Accepting erases any gain the
		// offense made and, on a turnover-erasing foul, restores possession.
		if ctx.PlayWasTurnover || ctx.PlayWasTurnoverOnDowns {
			return DeclinePenalty
		}
		if ctx.LossOfDown {
			return AcceptPenalty
		}
		if ctx.PlayYards < -ctx.PenaltyYards {
			return DeclinePenalty
		}
		return AcceptPenalty
	}
	// Defense fouled; offense decides.
	if ctx.PlayWasTouchdownByFouledTeam {
		return DeclinePenalty
	}
	if ctx.PlayWasTurnover || ctx.PlayWasTurnoverOnDowns {
		return AcceptPenalty
	}
	if ctx.AutomaticFirstDown && !ctx.PlayAlreadyFirstDown {
		return AcceptPenalty
	}
	if ctx.PenaltyYards > ctx.PlayYards {
		return AcceptPenalty
	}
	return DeclinePenalty
}

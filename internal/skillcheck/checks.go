// Package skillcheck implements the occurrence booleans and typed yardage
// results in spec §4.5. Every check documents the base probability, its
// modifiers, and its clamp range; every draw goes through an rng.Source so
// the draw order stays part of the replay contract (spec §5, §8).
//
// Grounded on the teacher's PlayerGameStatsGenerator interface + one
// concrete generator struct per position (quarterBackGenerator,
// runningBackGenerator, ...), generalized here into one small function (or
// struct, where state needs bundling) per check, and on
// createCdfForStat/generateValueFromCdf for enumerated-outcome sampling
// (run direction, fumble bounce).
package skillcheck

import (
	"github.com/brahedrick/gridiron-sim/internal/attributes"
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

func clampP(p, lo, hi float64) float64 { return distributions.ClampFloat(p, lo, hi) }

// PassCompletion resolves whether a thrown pass is completed. Base 0.60,
// +(off-cov)/250, -0.20*(pressureFactor-1.0), clamped to [0.25, 0.85].
// pressureFactor is attributes.DefensivePressureFactor's continuous
// pressure reading (1.0 is the neutral four-man-rush baseline), so a
// weaker-than-baseline rush relieves the penalty instead of a flat
// pressured/not-pressured toggle.
func PassCompletion(src rng.Source, offPassing, covPower, pressureFactor float64) bool {
	p := 0.60 + (offPassing-covPower)/250 - 0.20*(pressureFactor-1.0)
	p = clampP(p, 0.25, 0.85)
	src.Trace("pass_completion")
	return src.Float64() < p
}

// PassProtection resolves whether the offensive line holds up (true) or the
// quarterback is sacked (false). Base 0.75, +Modifier(block-rush), clamped
// to [0.30, 0.95].
func PassProtection(src rng.Source, blockPower, rushPower float64) bool {
	p := 0.75 + attributes.Modifier(blockPower-rushPower)
	p = clampP(p, 0.30, 0.95)
	src.Trace("pass_protection")
	return src.Float64() < p
}

// InterceptionOnIncomplete resolves whether an incomplete pass is picked
// off. Base 0.04, +(cov-off)/300, +0.02*(pressureFactor-1.0), clamped to
// [0.00, 0.15]. pressureFactor is attributes.DefensivePressureFactor's
// continuous pressure reading, scaling the pick bump instead of applying
// it as a flat constant regardless of how much pressure there actually was.
func InterceptionOnIncomplete(src rng.Source, covPower, offPassing, pressureFactor float64) bool {
	p := 0.04 + (covPower-offPassing)/300 + 0.02*(pressureFactor-1.0)
	p = clampP(p, 0.00, 0.15)
	src.Trace("interception_on_incomplete")
	return src.Float64() < p
}

// TackleBreak resolves whether the ball carrier breaks an initial tackle
// attempt. Base 0.25, +(carrier-tackle)/250, clamped to [0.05, 0.50].
func TackleBreak(src rng.Source, carrierRushing, tacklePower float64) bool {
	p := 0.25 + (carrierRushing-tacklePower)/250
	p = clampP(p, 0.05, 0.50)
	src.Trace("tackle_break")
	return src.Float64() < p
}

// BigRun resolves whether a run breaks away for a long gain. Base 0.05,
// +speed/500, clamped to [0.01, 0.15].
func BigRun(src rng.Source, carrierSpeed float64) bool {
	p := clampP(0.05+carrierSpeed/500, 0.01, 0.15)
	src.Trace("big_run")
	return src.Float64() < p
}

// FumbleNormal resolves a fumble check on a non-sack play. Base 0.015,
// scaled by (1-awareness/200)*(0.5+defPressure/200), then *1.3 if a gang
// tackle occurred, clamped to [0.003, 0.25].
func FumbleNormal(src rng.Source, carrierAwareness, defPressure float64, gangTackle bool) bool {
	p := 0.015 * (1 - carrierAwareness/200) * (0.5 + defPressure/200)
	if gangTackle {
		p *= 1.3
	}
	p = clampP(p, 0.003, 0.25)
	src.Trace("fumble_normal")
	return src.Float64() < p
}

// FumbleOnSack mirrors FumbleNormal with a higher base rate of 0.12,
// clamped to [0.01, 0.35].
func FumbleOnSack(src rng.Source, passerAwareness, defPressure float64, gangTackle bool) bool {
	p := 0.12 * (1 - passerAwareness/200) * (0.5 + defPressure/200)
	if gangTackle {
		p *= 1.3
	}
	p = clampP(p, 0.01, 0.35)
	src.Trace("fumble_on_sack")
	return src.Float64() < p
}

// InjuryCheck resolves whether a player on the play is injured. base is the
// per-play+position base rate supplied by the caller (internal/playexec
// documents the table per play type/role); the result is scaled by
// (0.5+fragility/100)*contactMult and clamped to [0, 0.05].
func InjuryCheck(src rng.Source, base, fragility, contactMult float64) bool {
	p := base * (0.5 + fragility/100) * contactMult
	p = clampP(p, 0, 0.05)
	src.Trace("injury_check")
	return src.Float64() < p
}

// KickBlockCheck resolves whether a field goal or punt is blocked; both
// kicks share the same shape: base ~0.015, +(rush-block)/400, clamped to
// [0.002, 0.05].
func KickBlockCheck(src rng.Source, rushPower, blockPower float64) bool {
	p := clampP(0.015+(rushPower-blockPower)/400, 0.002, 0.05)
	src.Trace("kick_block_check")
	return src.Float64() < p
}

// MuffedCatch resolves whether a returner muffs a catchable kick. Base
// 0.03, -catching/400, clamped to [0.005, 0.10].
func MuffedCatch(src rng.Source, returnerCatching float64) bool {
	p := clampP(0.03-returnerCatching/400, 0.005, 0.10)
	src.Trace("muffed_catch")
	return src.Float64() < p
}

// PreSnapPenalty resolves whether a pre-snap foul of the given base rate
// occurs, reduced by committer discipline/300.
func PreSnapPenalty(src rng.Source, base, discipline float64) bool {
	p := clampP(base-discipline/300, 0, 0.05)
	src.Trace("pre_snap_penalty")
	return src.Float64() < p
}

// FieldGoalMakeProbability is the piecewise distance/kicker-skill curve
// feeding FieldGoalMake (spec §4.5 "FG make"). Short kicks are reliable;
// probability falls off with distance and rises with kicker.Kicking.
func FieldGoalMakeProbability(distanceYards int, kickerKicking float64) float64 {
	d := float64(distanceYards)
	var base float64
	switch {
	case d <= 30:
		base = 0.98
	case d <= 40:
		base = 0.93
	case d <= 50:
		base = 0.83
	case d <= 55:
		base = 0.68
	default:
		base = 0.50 - (d-55)*0.02
	}
	base += (kickerKicking - 75) / 500
	return clampP(base, 0.35, 0.99)
}

// FieldGoalMake resolves whether a field goal attempt is good.
func FieldGoalMake(src rng.Source, distanceYards int, kickerKicking float64) bool {
	p := FieldGoalMakeProbability(distanceYards, kickerKicking)
	src.Trace("field_goal_make")
	return src.Float64() < p
}

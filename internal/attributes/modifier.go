// Package attributes turns player/lineup attributes into the probability
// and mean nudges the skill checks consume: the attribute modifier curve
// (spec §4.3) and the power/line calculators (spec §4.4).
//
// Grounded on the teacher's multiplyStatByPlayerSkill (a scalar-skill-to-
// stat-multiplier function) generalized from one skill field into the
// spec's skill-differential-to-probability-modifier curve, and on
// CreatePositionAttributeGenerators/LabeledPositionGenerators (one
// generator per eligible position set) generalized into one weighted-
// average calculator per eligible position set.
package attributes

import (
	"math"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Modifier maps a skill differential (offense - defense) to a probability
// or mean nudge via modifier = sign(delta) * ln(1+|delta|/10) * 0.15,
// returning 0 for |delta| < 1e-3 (spec §4.3). Callers clamp the composed
// probability to its own documented range; Modifier itself only clamps its
// own output to +-0.35 per the spec's "individually" bound.
func Modifier(delta float64) float64 {
	if math.Abs(delta) < 1e-3 {
		return 0
	}
	sign := 1.0
	if delta < 0 {
		sign = -1.0
	}
	m := sign * math.Log(1+math.Abs(delta)/10) * 0.15
	if m > 0.35 {
		m = 0.35
	}
	if m < -0.35 {
		m = -0.35
	}
	return m
}

// ClampSum clamps the sum of several modifiers applied together to +-0.50,
// the spec's "in sum" bound.
func ClampSum(sum float64) float64 {
	if sum > 0.50 {
		return 0.50
	}
	if sum < -0.50 {
		return -0.50
	}
	return sum
}

// ClampProbability clamps a composed probability to [0.01, 0.99], the
// spec's general-purpose probability bound; individual checks further
// narrow this to their own documented range.
func ClampProbability(p float64) float64 {
	if p < 0.01 {
		return 0.01
	}
	if p > 0.99 {
		return 0.99
	}
	return p
}

// meanOf averages an attribute across players, falling back to
// model.DefaultAttributeValue when the set is empty (spec §3 invariant 4,
// §4.4).
func meanOf(players []model.Player, f func(model.Player) float64) float64 {
	if len(players) == 0 {
		return model.DefaultAttributeValue
	}
	sum := 0.0
	for _, p := range players {
		sum += f(p)
	}
	return sum / float64(len(players))
}

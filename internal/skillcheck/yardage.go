package skillcheck

import (
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// YACOpportunity gates whether a receiver gets yards after catch at all;
// gated by receiver quality per spec §4.5 "YAC: if YAC opportunity
// succeeds (check gated by receiver quality)". Modeled as a simple
// catching-scaled probability, clamped to a sane floor/ceiling so it's
// never guaranteed or impossible.
func YACOpportunity(src rng.Source, receiverCatching float64) bool {
	p := clampP(0.55+receiverCatching/400, 0.30, 0.85)
	src.Trace("yac_opportunity")
	return src.Float64() < p
}

// YAC draws yards after catch: 3 + (speed+agility+rushing)/30 + U(-2,6),
// with a 3% chance of a 15-40 yard bonus when receiver.Speed > 85 (spec
// §4.5).
func YAC(src rng.Source, speed, agility, rushing float64) int {
	base := 3 + (speed+agility+rushing)/30 + distributions.UniformFloat(src, -2, 6)
	y := distributions.Round(base)
	src.Trace("yac_bonus_roll")
	if speed > 85 && src.Float64() < 0.03 {
		y += distributions.UniformInt(src, 15, 40)
	}
	return y
}

// AirYards draws PassYards by type for a completed pass, clamped so the
// throw cannot travel past the opponent's goal line (spec §4.5: "AirYards
// draws PassYards by type, clamped to remaining field"). remainingYards is
// the offense's distance to the opponent's goal line.
func AirYards(src rng.Source, t distributions.PassType, skillMod float64, remainingYards int) int {
	y := distributions.PassYards(src, t, skillMod)
	if y > remainingYards {
		y = remainingYards
	}
	return y
}

// TackleBreakYards draws U{3..8}.
func TackleBreakYards(src rng.Source) int {
	return distributions.UniformInt(src, 3, 8)
}

// BreakawayYards draws U{15..44}.
func BreakawayYards(src rng.Source) int {
	return distributions.UniformInt(src, 15, 44)
}

// SackYardsClamped draws distributions.SackYards() and clamps it so the
// ball does not cross the possessor's own goal line, i.e. the sack cannot
// move the ball below absolute field position 0 (home goal line) or above
// 100 (away goal line) depending on direction of play. fieldPosition is
// the possessor's current absolute field position, and possessorGoal is
// the absolute position of the possessor's own goal line (0 for home on
// offense, 100 for away on offense).
func SackYardsClamped(src rng.Source, fieldPosition, possessorGoal int) int {
	y := distributions.SackYards(src)
	if possessorGoal == 0 {
		if fieldPosition+y < 0 {
			y = -fieldPosition
		}
	} else {
		if fieldPosition+y > 100 {
			y = 100 - fieldPosition
		}
	}
	return y
}

// KickoffDistance draws 40 + 30*kicking/100 + U(-10,10), clamped [30,80].
func KickoffDistance(src rng.Source, kicking float64) int {
	raw := 40 + 30*kicking/100 + distributions.UniformFloat(src, -10, 10)
	return distributions.ClampInt(distributions.Round(raw), 30, 80)
}

// KickoffReturnYards draws 10 + 20*(speed+agility)/200 + U(-60,60), clamped
// [-5,85].
func KickoffReturnYards(src rng.Source, speed, agility float64) int {
	raw := 10 + 20*(speed+agility)/200 + distributions.UniformFloat(src, -60, 60)
	return distributions.ClampInt(distributions.Round(raw), -5, 85)
}

// PuntDistance draws 30 + 25*kicking/100 + U(-10,15), floored at 10 and
// ceilinged at 110-fieldPosition.
func PuntDistance(src rng.Source, kicking float64, fieldPosition int) int {
	raw := 30 + 25*kicking/100 + distributions.UniformFloat(src, -10, 15)
	d := distributions.Round(raw)
	if d < 10 {
		d = 10
	}
	ceiling := 110 - fieldPosition
	if d > ceiling {
		d = ceiling
	}
	return d
}

// PuntHangTime draws 0.08*distance + U(-0.5,0.5), floored at 2.0 seconds.
func PuntHangTime(src rng.Source, distance int) float64 {
	h := 0.08*float64(distance) + distributions.UniformFloat(src, -0.5, 0.5)
	if h < 2.0 {
		h = 2.0
	}
	return h
}

// PuntReturnYards draws 5 + (returnerSkill-coverage)/10 + U(-5,15), floored
// at -3.
func PuntReturnYards(src rng.Source, returnerSkill, coverage float64) int {
	raw := 5 + (returnerSkill-coverage)/10 + distributions.UniformFloat(src, -5, 15)
	y := distributions.Round(raw)
	if y < -3 {
		y = -3
	}
	return y
}

// FumbleBounceDirection enumerates the three bounce buckets from spec §4.5.
type FumbleBounceDirection int

const (
	BounceBackward FumbleBounceDirection = iota
	BounceForward
	BounceSideways
)

// FumbleBounce draws which direction the ball bounces: backward 0.4,
// forward 0.4, sideways 0.2, plus the yardage of the bounce within its
// documented range.
func FumbleBounce(src rng.Source) (FumbleBounceDirection, int) {
	r := src.Float64()
	switch {
	case r < 0.4:
		return BounceBackward, distributions.UniformInt(src, -8, 0)
	case r < 0.8:
		return BounceForward, distributions.UniformInt(src, 0, 8)
	default:
		return BounceSideways, distributions.UniformInt(src, -2, 2)
	}
}

// FumbleRecoveredByOffense resolves who recovers a fumble. Baseline
// recovery-by-offense probability per bounce direction is
// 0.35/0.35/0.50 (backward/forward/sideways), shifted by
// 0.30*(offAwareness-defAwareness)/100 and clamped to [0.10, 0.85]. A 5%
// chance the ball goes out of bounds first, in which case it is retained
// by the fumbler's own team (handled by the caller via the returned bool).
func FumbleRecoveredByOffense(src rng.Source, bounce FumbleBounceDirection, offAwareness, defAwareness float64) (outOfBounds, recoveredByOffense bool) {
	src.Trace("fumble_out_of_bounds_check")
	if src.Float64() < 0.05 {
		return true, true
	}
	var baseline float64
	switch bounce {
	case BounceBackward:
		baseline = 0.35
	case BounceForward:
		baseline = 0.35
	default:
		baseline = 0.50
	}
	p := clampP(baseline+0.30*(offAwareness-defAwareness)/100, 0.10, 0.85)
	src.Trace("fumble_recovery_check")
	return false, src.Float64() < p
}

// DefensiveFumbleReturnYards draws the return yards a defense gets after
// recovering a fumble: returner_skill-based base 5..20 plus U(-30,50).
func DefensiveFumbleReturnYards(src rng.Source, returnerSkill float64) int {
	base := 5 + returnerSkill/100*15
	raw := base + distributions.UniformFloat(src, -30, 50)
	return distributions.Round(raw)
}

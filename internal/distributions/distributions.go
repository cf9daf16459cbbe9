// Package distributions implements the statistical distributions every
// yardage-producing skill check samples from. All functions draw from an
// rng.Source — never math/rand directly — so replay logs stay exhaustive.
package distributions

import (
	"math"

	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// Normal draws a Normal(mu, sigma) value using the Box-Muller transform.
// Two uniform draws are consumed per call; u1 = 0 is rejected and redrawn
// because log(0) is undefined.
func Normal(src rng.Source, mu, sigma float64) float64 {
	var u1, u2 float64
	for {
		u1 = src.Float64()
		u2 = src.Float64()
		if u1 > 0 {
			break
		}
	}
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mu + sigma*z0
}

// LogNormal draws exp(Normal(mu, sigma)).
func LogNormal(src rng.Source, mu, sigma float64) float64 {
	return math.Exp(Normal(src, mu, sigma))
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunYards draws a run play's base yardage. LogNormal(mu=1.1, sigma=0.7),
// shifted by -1 to permit negative (stuffed) outcomes, then nudged by
// 2*skillMod and rounded to the nearest integer. Tuned so the aggregate
// distribution has mean ~4.3, median ~3, ~15% negative, ~5% at or above 15.
func RunYards(src rng.Source, skillMod float64) int {
	raw := LogNormal(src, 1.1, 0.7) - 1 + 2*skillMod
	return round(raw)
}

// PassType enumerates the depth of a pass attempt, selected by the
// play-call logic in internal/playexec based on down and distance.
type PassType int

const (
	Screen PassType = iota
	Short
	Medium
	Deep
)

type passParams struct {
	mu, sigma float64
}

var passTypeParams = map[PassType]passParams{
	Screen: {mu: 4, sigma: 3},
	Short:  {mu: 7, sigma: 3.5},
	Medium: {mu: 14, sigma: 5},
	Deep:   {mu: 30, sigma: 10},
}

// PassYards draws air yards for a completed pass of the given type, with mu
// shifted by 3*skillMod and the result floored at 1 yard.
func PassYards(src rng.Source, t PassType, skillMod float64) int {
	p := passTypeParams[t]
	y := round(Normal(src, p.mu+3*skillMod, p.sigma))
	if y < 1 {
		y = 1
	}
	return y
}

// SackYards draws Normal(7, 2), clamps to [1, 15], and returns it negated
// (yards lost).
func SackYards(src rng.Source) int {
	y := round(Normal(src, 7, 2))
	y = clampInt(y, 1, 15)
	return -y
}

// TFL draws Normal(2, 1), clamps to [1, 5], and returns it negated (a
// tackle-for-loss on a run play).
func TFL(src rng.Source) int {
	y := round(Normal(src, 2, 1))
	y = clampInt(y, 1, 5)
	return -y
}

// UniformInt draws a uniform integer in [lo, hi] inclusive, the common shape
// used by the U{a..b} and U(a,b) notations throughout the spec's yardage
// formulas.
func UniformInt(src rng.Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return src.Intn(lo, hi+1)
}

// UniformFloat draws a uniform float64 in [lo, hi).
func UniformFloat(src rng.Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// ClampFloat clamps v to [lo, hi]. Exported so callers composing
// probabilities/modifiers across packages share one clamp implementation.
func ClampFloat(v, lo, hi float64) float64 { return clampFloat(v, lo, hi) }

// ClampInt clamps v to [lo, hi]. Exported for the same reason as ClampFloat.
func ClampInt(v, lo, hi int) int { return clampInt(v, lo, hi) }

// Round rounds v to the nearest integer, rounding half away from zero.
func Round(v float64) int { return round(v) }

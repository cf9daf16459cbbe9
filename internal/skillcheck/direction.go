package skillcheck

import "github.com/brahedrick/gridiron-sim/internal/rng"

// RunDirections are the 5 enumerated buckets a run play's direction draw
// selects from (spec §4.6 run executor step 2).
var RunDirections = [5]string{"left_end", "left_tackle", "middle", "right_tackle", "right_end"}

// RunDirection draws a uniform direction bucket. Grounded on the teacher's
// createCdfForStat/generateValueFromCdf pattern, specialized here to a flat
// (equal-weight) CDF since the spec does not document a skewed one.
func RunDirection(src rng.Source) string {
	idx := src.Intn(0, len(RunDirections))
	src.Trace("run_direction")
	return RunDirections[idx]
}

// QBScrambleGate resolves the run play's first check: whether the play
// becomes a scramble rather than a designed hand-off. Threshold 0.10 (spec
// §4.6 run executor step 1).
func QBScrambleGate(src rng.Source) bool {
	src.Trace("qb_scramble_gate")
	return src.Float64() < 0.10
}

package rules

// NFLTwoMinuteWarning fires once per half, when the quarter clock crosses
// 120 seconds remaining in Q2 or Q4 (spec §4.9).
type NFLTwoMinuteWarning struct{}

func (NFLTwoMinuteWarning) Name() string { return "nfl" }

// ShouldCall reports whether the warning should fire given the seconds
// remaining before and after the play that just elapsed time. It fires
// exactly once per half: only in Q2 or Q4, only while crossing the 120s
// threshold, and never twice in the same quarter.
func (NFLTwoMinuteWarning) ShouldCall(quarter int, timeBefore, timeAfter float64, alreadyCalled bool) bool {
	if alreadyCalled {
		return false
	}
	if quarter != 2 && quarter != 4 {
		return false
	}
	return timeBefore > 120 && timeAfter <= 120
}

// NCAATwoMinuteWarning never fires; NCAA has no two-minute warning.
type NCAATwoMinuteWarning struct{}

func (NCAATwoMinuteWarning) Name() string { return "ncaa" }

func (NCAATwoMinuteWarning) ShouldCall(quarter int, timeBefore, timeAfter float64, alreadyCalled bool) bool {
	return false
}

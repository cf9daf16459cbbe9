package penalty

import (
	"testing"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

func accepted(kind model.PenaltyKind, onTeam model.Possession, phase model.PenaltyPhase, yards int) model.Penalty {
	return model.Penalty{Kind: kind, OnTeam: onTeam, Phase: phase, Yards: yards, Accepted: true}
}

// TestOffsettingExceptionEnforcesMajorOffensiveFoulAlone is spec §4.7 step 2
// / §8 scenario 5's worked example: a major (>=15yd) offensive foul with no
// change of possession, against only minor (<=5yd) defensive fouls, does
// not offset. The offensive foul is enforced alone and the defensive foul
// is discarded.
func TestOffsettingExceptionEnforcesMajorOffensiveFoulAlone(t *testing.T) {
	penalties := []model.Penalty{
		accepted(model.IllegalBlockAboveWaist, model.PossessionHome, model.PhaseDuring, 15),
		accepted(model.DefensiveOffside, model.PossessionAway, model.PhaseDuring, 5),
	}
	got := Enforce(50, 3, false, penalties)

	if got.Offsetting {
		t.Fatalf("expected the exception to suppress offsetting, got Offsetting=true")
	}
	if got.ReplayDown {
		t.Fatalf("expected the down not to be replayed")
	}
	if got.EnforcedPenalty == nil || got.EnforcedPenalty.Kind != model.IllegalBlockAboveWaist {
		t.Fatalf("expected the offensive foul enforced alone, got %+v", got.EnforcedPenalty)
	}
	if want := 3 - 15; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d", got.NetYards, want)
	}
}

// TestOffsettingAppliesWhenDefensiveFoulIsAlsoMajor confirms the exception
// is narrow: once the defensive foul exceeds the 5-yard minor threshold,
// the fouls genuinely offset and the down is replayed.
func TestOffsettingAppliesWhenDefensiveFoulIsAlsoMajor(t *testing.T) {
	penalties := []model.Penalty{
		accepted(model.PersonalFoulOffense, model.PossessionHome, model.PhaseDuring, 15),
		accepted(model.PersonalFoulDefense, model.PossessionAway, model.PhaseDuring, 15),
	}
	got := Enforce(50, 3, false, penalties)

	if !got.Offsetting || !got.ReplayDown {
		t.Fatalf("expected a genuine offset with the down replayed, got %+v", got)
	}
	if got.NetYards != 0 {
		t.Errorf("NetYards = %d, want 0", got.NetYards)
	}
}

// TestOffsettingExceptionDoesNotApplyOnPossessionChange confirms the
// exception is conditioned on possessionChanged=false; the same foul pair
// on a turnover play offsets normally.
func TestOffsettingExceptionDoesNotApplyOnPossessionChange(t *testing.T) {
	penalties := []model.Penalty{
		accepted(model.IllegalBlockAboveWaist, model.PossessionHome, model.PhaseDuring, 15),
		accepted(model.DefensiveOffside, model.PossessionAway, model.PhaseDuring, 5),
	}
	got := Enforce(50, 3, true, penalties)

	if !got.Offsetting {
		t.Fatalf("expected the fouls to offset on a possession-changing play, got %+v", got)
	}
}

// TestHalfDistanceCapped exercises spec §4.7 step 4 for both sides of the
// ball: an offensive foul caps at fieldPosition/2, a defensive foul caps at
// (100-fieldPosition)/2.
func TestHalfDistanceCapped(t *testing.T) {
	tests := []struct {
		name          string
		fieldPosition int
		yards         int
		onDefense     bool
		want          int
	}{
		{"offensive foul deep in own territory is capped", 8, 15, false, 4},
		{"offensive foul with room is uncapped", 50, 15, false, 15},
		{"defensive foul near its own goal is capped", 96, 5, true, 2},
		{"defensive foul with room is uncapped", 50, 5, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := halfDistanceCapped(tt.fieldPosition, tt.yards, tt.onDefense); got != tt.want {
				t.Errorf("halfDistanceCapped(%d, %d, %v) = %d, want %d", tt.fieldPosition, tt.yards, tt.onDefense, got, tt.want)
			}
		})
	}
}

// TestEnforceCapsYardageAgainstTheGoalLine confirms the cap flows through
// Enforce itself, not just the halfDistanceCapped helper in isolation.
func TestEnforceCapsYardageAgainstTheGoalLine(t *testing.T) {
	penalties := []model.Penalty{accepted(model.PersonalFoulOffense, model.PossessionHome, model.PhaseDuring, 15)}
	got := Enforce(8, 3, false, penalties)
	if want := 3 - 4; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d (capped at fieldPosition/2=4)", got.NetYards, want)
	}
}

// TestSpotFoulReplacesPlayYardage covers spec §4.7 step 5's spot-foul
// classification: a SpotFoul-rule penalty (defensive pass interference)
// replaces the play's own yardage rather than adding to it, and grants the
// automatic first down defensive fouls carry unless excluded.
func TestSpotFoulReplacesPlayYardage(t *testing.T) {
	penalties := []model.Penalty{accepted(model.DefensivePassInterference, model.PossessionAway, model.PhaseDuring, 22)}
	got := Enforce(50, -3, false, penalties)

	if got.NetYards != 22 {
		t.Errorf("NetYards = %d, want 22 (the foul's spot yardage, not rawYards)", got.NetYards)
	}
	if !got.AutomaticFirstDown {
		t.Errorf("expected an automatic first down on a defensive foul without NoAutomaticFirstDown")
	}
}

// TestNonSpotFoulAddsToPlayYardage covers the default (previous-spot) case:
// the foul's yardage is added to/subtracted from the play's own result
// instead of replacing it.
func TestNonSpotFoulAddsToPlayYardage(t *testing.T) {
	penalties := []model.Penalty{accepted(model.DefensiveHolding, model.PossessionAway, model.PhaseDuring, 5)}
	got := Enforce(50, 7, false, penalties)
	if want := 7 + 5; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d (rawYards + applied)", got.NetYards, want)
	}
}

// TestDeadBallPenaltySuppressesThePlay covers spec §4.7 step 7: a dead-ball
// foul discards the play's own yardage entirely, win or lose.
func TestDeadBallPenaltySuppressesThePlay(t *testing.T) {
	penalties := []model.Penalty{accepted(model.FalseStart, model.PossessionHome, model.PhaseBefore, 5)}
	got := Enforce(50, 8, false, penalties)

	if !got.PlaySuppressed {
		t.Fatalf("expected PlaySuppressed on a dead-ball foul")
	}
	if want := -5; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d (the foul's own yardage, not the play's 8)", got.NetYards, want)
	}
}

// TestDeadBallDefensiveFoulInTheNoAutomaticFirstDownSet confirms a
// dead-ball defensive foul in spec §4.7 step 6's closed set still withholds
// the automatic first down.
func TestDeadBallDefensiveFoulInTheNoAutomaticFirstDownSet(t *testing.T) {
	penalties := []model.Penalty{accepted(model.DefensiveDelayOfGame, model.PossessionAway, model.PhaseBefore, 5)}
	got := Enforce(50, 8, false, penalties)

	if got.AutomaticFirstDown {
		t.Errorf("expected no automatic first down: defensive_delay_of_game is in the closed exclusion set")
	}
	if want := 5; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d", got.NetYards, want)
	}
}

// TestLossOfDownOffensiveFoul covers spec §4.7 step 6's offense-only
// loss-of-down fouls (e.g. intentional grounding).
func TestLossOfDownOffensiveFoul(t *testing.T) {
	penalties := []model.Penalty{accepted(model.IntentionalGrounding, model.PossessionHome, model.PhaseDuring, 10)}
	got := Enforce(50, -5, false, penalties)

	if !got.LossOfDown {
		t.Errorf("expected LossOfDown on intentional grounding")
	}
	if want := -5 - 10; got.NetYards != want {
		t.Errorf("NetYards = %d, want %d", got.NetYards, want)
	}
}

// TestEnforceNoPenaltiesPassesThroughRawYards confirms a clean play (or a
// play with only declined fouls, since Enforce filters to Accepted) returns
// the play's own yardage untouched.
func TestEnforceNoPenaltiesPassesThroughRawYards(t *testing.T) {
	if got := Enforce(50, 7, false, nil); got.NetYards != 7 {
		t.Errorf("NetYards = %d, want 7", got.NetYards)
	}

	declined := []model.Penalty{{Kind: model.OffensiveHolding, OnTeam: model.PossessionHome, Yards: 10, Accepted: false}}
	if got := Enforce(50, 7, false, declined); got.NetYards != 7 {
		t.Errorf("declined foul: NetYards = %d, want 7", got.NetYards)
	}
}

// TestGreatestYardageBreaksTiesByPhase covers spec §4.7 step 3: among
// same-team penalties of equal yardage, the earliest phase (Before < During
// < After) is chosen.
func TestGreatestYardageBreaksTiesByPhase(t *testing.T) {
	penalties := []model.Penalty{
		accepted(model.PersonalFoulOffense, model.PossessionHome, model.PhaseAfter, 15),
		accepted(model.UnsportsmanlikeConductOffense, model.PossessionHome, model.PhaseBefore, 15),
	}
	got, ok := greatestYardage(penalties)
	if !ok {
		t.Fatalf("expected a result")
	}
	if got.Kind != model.UnsportsmanlikeConductOffense {
		t.Errorf("expected the earlier-phase foul to win the tiebreak, got %v", got.Kind)
	}
}

package rules

import "testing"

import "github.com/brahedrick/gridiron-sim/internal/model"

// TestNFLRegularOvertimeTie is scenario 6 from spec §8: both teams kick a
// field goal on their initial OT possessions and nothing else scores ⇒ the
// game ends as a tie under the regular-season provider.
func TestNFLRegularOvertimeTie(t *testing.T) {
	p := NewNFLRegularSeason()
	state := model.NewOvertimeState(1, model.PossessionHome, model.PossessionHome)

	state.RecordScore(model.PossessionHome, 3)
	state.AdvancePossession(model.PossessionHome)
	if p.ShouldGameEnd(state, model.ScoreFieldGoal, model.PossessionHome) {
		t.Fatalf("game should not end after the first possession's field goal")
	}

	state.RecordScore(model.PossessionAway, 3)
	state.AdvancePossession(model.PossessionAway)
	if p.ShouldGameEnd(state, model.ScoreFieldGoal, model.PossessionAway) {
		t.Fatalf("tied score after both possessions should not end the game on this check alone")
	}
	if p.ShouldStartNewPeriod(state) {
		t.Fatalf("expected no new period when ties are allowed and only one period is permitted")
	}
}

// TestNFLPlayoffOvertimeContinues is scenario 7 from spec §8: the same
// sequence under the playoff provider (no ties, unlimited periods) starts a
// new period instead of ending in a tie.
func TestNFLPlayoffOvertimeContinues(t *testing.T) {
	p := NewNFLPlayoff()
	state := model.NewOvertimeState(1, model.PossessionHome, model.PossessionHome)

	state.RecordScore(model.PossessionHome, 3)
	state.AdvancePossession(model.PossessionHome)
	state.RecordScore(model.PossessionAway, 3)
	state.AdvancePossession(model.PossessionAway)

	if p.ShouldGameEnd(state, model.ScoreFieldGoal, model.PossessionAway) {
		t.Fatalf("tied playoff score should not end the game")
	}
	if !p.ShouldStartNewPeriod(state) {
		t.Fatalf("expected a new period to start since playoff overtime disallows ties")
	}
}

// TestDefensiveTouchdownEndsOvertimeImmediately covers the shared rule that
// a score by the team that did not have first possession ends the game
// right away, regardless of era.
func TestDefensiveTouchdownEndsOvertimeImmediately(t *testing.T) {
	for _, p := range []model.OvertimeRuleProvider{NewNFLRegularSeason(), NewNFLPlayoff(), NewNFLRegularSeason2025()} {
		state := model.NewOvertimeState(1, model.PossessionHome, model.PossessionHome)
		if !p.ShouldGameEnd(state, model.ScoreTouchdown, model.PossessionAway) {
			t.Errorf("%s: expected defensive/second-possession touchdown to end the game immediately", p.Name())
		}
	}
}

// TestNFLRegularSeason2025ContinuesAfterFirstPossessionTD covers the 2025
// rule-change variant: a touchdown on the first possession no longer ends
// the game outright.
func TestNFLRegularSeason2025ContinuesAfterFirstPossessionTD(t *testing.T) {
	p := NewNFLRegularSeason2025()
	state := model.NewOvertimeState(1, model.PossessionHome, model.PossessionHome)
	if p.ShouldGameEnd(state, model.ScoreTouchdown, model.PossessionHome) {
		t.Fatalf("2025 variant must let the second team possess after a first-possession touchdown")
	}
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	if _, ok := OvertimeProvider("NFL_Regular"); !ok {
		t.Fatalf("expected case-insensitive lookup to find nfl_regular")
	}
	if _, ok := OvertimeProvider("unknown"); ok {
		t.Fatalf("expected unknown provider name to miss")
	}
}

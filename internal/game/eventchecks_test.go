package game

import (
	"testing"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rules"
)

func testGame() *model.Game {
	home := &model.Team{ID: uuid.New(), Name: "Home"}
	away := &model.Team{ID: uuid.New(), Name: "Away"}
	cfg := model.DefaultConfiguration()
	cfg.OvertimeRules = rules.DefaultOvertimeProvider()
	cfg.TwoMinuteWarningRules = rules.DefaultTwoMinuteWarningProvider()
	cfg.EndOfHalfRules = rules.DefaultEndOfHalfProvider()
	return model.NewGame(home, away, cfg)
}

func TestCheckScoreTouchdownCreditsOffense(t *testing.T) {
	g := testGame()
	play := &model.Play{Possession: model.PossessionHome, Touchdown: true}
	scoreType, scorer := CheckScore(g, play)
	if scoreType != model.ScoreTouchdown || scorer != model.PossessionHome {
		t.Fatalf("expected home touchdown, got %v %v", scoreType, scorer)
	}
	if g.HomeScore != 6 {
		t.Fatalf("expected home score 6, got %d", g.HomeScore)
	}
}

func TestCheckScoreTouchdownOnPossessionChangeCreditsDefense(t *testing.T) {
	g := testGame()
	play := &model.Play{Possession: model.PossessionHome, Touchdown: true, PossessionChanged: true}
	_, scorer := CheckScore(g, play)
	if scorer != model.PossessionAway {
		t.Fatalf("expected a pick-six to credit the away defense, got %v", scorer)
	}
	if g.AwayScore != 6 || g.HomeScore != 0 {
		t.Fatalf("unexpected scores: home=%d away=%d", g.HomeScore, g.AwayScore)
	}
}

func TestCheckScoreSafetyCreditsDefense(t *testing.T) {
	g := testGame()
	play := &model.Play{Possession: model.PossessionAway, Safety: true}
	scoreType, scorer := CheckScore(g, play)
	if scoreType != model.ScoreSafety || scorer != model.PossessionHome {
		t.Fatalf("expected home safety credit, got %v %v", scoreType, scorer)
	}
	if g.HomeScore != 2 {
		t.Fatalf("expected home score 2, got %d", g.HomeScore)
	}
}

func TestCheckScoreFieldGoalMade(t *testing.T) {
	g := testGame()
	play := &model.Play{Kind: model.PlayFieldGoal, Possession: model.PossessionAway, FieldGoal: &model.FieldGoalDetail{Made: true}}
	scoreType, scorer := CheckScore(g, play)
	if scoreType != model.ScoreFieldGoal || scorer != model.PossessionAway {
		t.Fatalf("expected away field goal credit, got %v %v", scoreType, scorer)
	}
	if g.AwayScore != 3 {
		t.Fatalf("expected away score 3, got %d", g.AwayScore)
	}
}

func TestCheckScoreNoneLeavesScoreUntouched(t *testing.T) {
	g := testGame()
	play := &model.Play{Kind: model.PlayRun, Possession: model.PossessionHome}
	scoreType, _ := CheckScore(g, play)
	if scoreType != model.ScoreNone {
		t.Fatalf("expected no score, got %v", scoreType)
	}
	if g.HomeScore != 0 || g.AwayScore != 0 {
		t.Fatalf("score should be untouched: home=%d away=%d", g.HomeScore, g.AwayScore)
	}
}

func TestCheckQuarterExpireAdvancesQuarterAndResetsClock(t *testing.T) {
	g := testGame()
	g.Time.SecondsRemaining = 5
	play := &model.Play{ElapsedSeconds: 8}
	if !CheckQuarterExpire(g, play) {
		t.Fatalf("expected quarter to expire")
	}
	if g.Time.Quarter != model.Q2 {
		t.Fatalf("expected advance to Q2, got %v", g.Time.Quarter)
	}
	if g.Time.SecondsRemaining != g.Config.QuarterLengthSeconds {
		t.Fatalf("expected clock reset to %v, got %v", g.Config.QuarterLengthSeconds, g.Time.SecondsRemaining)
	}
	if !play.QuarterExpired {
		t.Fatalf("expected play.QuarterExpired to be set")
	}
}

func TestCheckQuarterExpireDoesNotAdvancePastQ4(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q4
	g.Time.SecondsRemaining = 3
	play := &model.Play{ElapsedSeconds: 10}
	if !CheckQuarterExpire(g, play) {
		t.Fatalf("expected quarter to expire")
	}
	if g.Time.Quarter != model.Q4 {
		t.Fatalf("expected quarter to stay at Q4, got %v", g.Time.Quarter)
	}
	if g.Time.SecondsRemaining != 0 {
		t.Fatalf("expected seconds remaining floored at 0, got %v", g.Time.SecondsRemaining)
	}
}

func TestCheckQuarterExpireFalseWhenTimeRemains(t *testing.T) {
	g := testGame()
	play := &model.Play{ElapsedSeconds: 30}
	if CheckQuarterExpire(g, play) {
		t.Fatalf("did not expect the quarter to expire with plenty of time left")
	}
}

func TestCheckHalfExpireGrantsUntimedDownOnDefensiveFoul(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	play := &model.Play{
		QuarterExpired: true,
		Penalties:      []model.Penalty{{Kind: model.DefensiveHolding, Accepted: true}},
	}
	if !CheckHalfExpire(g, play) {
		t.Fatalf("expected an untimed down to be granted")
	}
	if !g.PendingUntimedDown {
		t.Fatalf("expected PendingUntimedDown to be set")
	}
}

func TestCheckHalfExpireNoFoulEndsHalfNormally(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	play := &model.Play{QuarterExpired: true}
	if CheckHalfExpire(g, play) {
		t.Fatalf("did not expect an untimed down with no accepted defensive foul")
	}
	if g.PendingUntimedDown {
		t.Fatalf("did not expect PendingUntimedDown to be set")
	}
}

func TestCheckHalfExpireOffensiveFoulDoesNotGrantUntimedDown(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	play := &model.Play{
		QuarterExpired: true,
		Penalties:      []model.Penalty{{Kind: model.OffensiveHolding, Accepted: true}},
	}
	if CheckHalfExpire(g, play) {
		t.Fatalf("an offensive foul should end the half normally")
	}
}

func TestCheckTwoMinuteWarningFiresOnceCrossingThreshold(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	play := &model.Play{}
	if !CheckTwoMinuteWarning(g, play, 125, 115) {
		t.Fatalf("expected the warning to fire crossing 120s in Q2")
	}
	if !g.Time.TwoMinuteWarningCalled[model.Q2] {
		t.Fatalf("expected TwoMinuteWarningCalled[Q2] to be set")
	}
	if !play.ClockStopped {
		t.Fatalf("expected the clock to stop")
	}

	play2 := &model.Play{}
	if CheckTwoMinuteWarning(g, play2, 119, 110) {
		t.Fatalf("did not expect the warning to fire twice in the same quarter")
	}
}

func TestCheckGameExpireTiedGoesToOvertime(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q4
	g.Time.SecondsRemaining = 0
	play := &model.Play{}
	next, expired := CheckGameExpire(g, play)
	if !expired || next != model.OvertimeCoinToss {
		t.Fatalf("expected a tied Q4 to move to OvertimeCoinToss, got %v expired=%v", next, expired)
	}
}

func TestCheckGameExpireNotTiedGoesToPostGame(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q4
	g.Time.SecondsRemaining = 0
	g.HomeScore = 20
	play := &model.Play{}
	next, expired := CheckGameExpire(g, play)
	if !expired || next != model.PostGame {
		t.Fatalf("expected a decided Q4 to move to PostGame, got %v expired=%v", next, expired)
	}
}

func TestCheckGameExpireFalseBeforeQ4Expires(t *testing.T) {
	g := testGame()
	play := &model.Play{}
	if _, expired := CheckGameExpire(g, play); expired {
		t.Fatalf("did not expect regulation to expire in Q1 with time on the clock")
	}
}

func TestRunPostPlayChecksEndsHalfAtQ2Boundary(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	g.Time.SecondsRemaining = 5
	play := &model.Play{ElapsedSeconds: 10}
	result := RunPostPlayChecks(g, play)
	if !result.QuarterExpired {
		t.Fatalf("expected the quarter to expire")
	}
	if result.Next != model.Halftime {
		t.Fatalf("expected Halftime, got %v", result.Next)
	}
}

func TestRunPostPlayChecksEndOfRegulationAtQ4Boundary(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q4
	g.Time.SecondsRemaining = 5
	play := &model.Play{ElapsedSeconds: 10}
	result := RunPostPlayChecks(g, play)
	if result.Next != model.EndOfRegulation {
		t.Fatalf("expected EndOfRegulation, got %v", result.Next)
	}
}

func TestRunPostPlayChecksUntimedDownKeepsPlayGoing(t *testing.T) {
	g := testGame()
	g.Time.Quarter = model.Q2
	g.Time.SecondsRemaining = 5
	play := &model.Play{
		ElapsedSeconds: 10,
		Penalties:      []model.Penalty{{Kind: model.DefensiveHolding, Accepted: true}},
	}
	result := RunPostPlayChecks(g, play)
	if !result.UntimedDown {
		t.Fatalf("expected an untimed down")
	}
	if result.Next != model.PrePlay {
		t.Fatalf("expected PrePlay (one more down before halftime), got %v", result.Next)
	}
}

func TestRunPostPlayChecksContinuesMidQuarter(t *testing.T) {
	g := testGame()
	play := &model.Play{ElapsedSeconds: 30}
	result := RunPostPlayChecks(g, play)
	if result.QuarterExpired {
		t.Fatalf("did not expect the quarter to expire")
	}
	if result.Next != model.PrePlay {
		t.Fatalf("expected PrePlay, got %v", result.Next)
	}
}

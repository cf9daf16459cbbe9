package engine

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/roster"
)

func TestSimulateGameRejectsNilTeams(t *testing.T) {
	team := &model.Team{ID: uuid.New()}
	if _, err := SimulateGame(nil, team, SimulationOptions{}); err == nil {
		t.Error("expected an error for a nil home team")
	}
	if _, err := SimulateGame(team, nil, SimulationOptions{}); err == nil {
		t.Error("expected an error for a nil away team")
	}
}

func TestProviderOrDefaultFallsBackOnUnknownName(t *testing.T) {
	p := providerOrDefault("not-a-real-provider")
	if p == nil {
		t.Fatal("expected a default provider, got nil")
	}
	if p.Name() != "nfl_regular" {
		t.Errorf("Name() = %q, want %q", p.Name(), "nfl_regular")
	}
}

func TestTwoMinuteProviderOrDefaultFallsBackOnUnknownName(t *testing.T) {
	p := twoMinuteProviderOrDefault("bogus")
	if p == nil {
		t.Fatal("expected a default provider, got nil")
	}
}

func TestEndOfHalfProviderOrDefaultFallsBackOnUnknownName(t *testing.T) {
	p := endOfHalfProviderOrDefault("bogus")
	if p == nil {
		t.Fatal("expected a default provider, got nil")
	}
}

func buildTestTeams() (*model.Team, *model.Team) {
	home := roster.BuildTeam("Home City Testers", "HCT", roster.NFLComposition, rand.New(rand.NewSource(100)))
	away := roster.BuildTeam("Away City Testers", "ACT", roster.NFLComposition, rand.New(rand.NewSource(200)))
	return home, away
}

func TestSimulateGameCompletesAndIsDeterministic(t *testing.T) {
	home, away := buildTestTeams()
	seed := int64(42)

	first, err := SimulateGame(home, away, SimulationOptions{RandomSeed: &seed})
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if first.TotalPlays == 0 {
		t.Fatal("expected at least one play")
	}
	if first.Game.State != model.PostGame {
		t.Errorf("Game.State = %v, want PostGame", first.Game.State)
	}

	second, err := SimulateGame(home, away, SimulationOptions{RandomSeed: &seed})
	if err != nil {
		t.Fatalf("SimulateGame (second run): %v", err)
	}

	if first.TotalPlays != second.TotalPlays {
		t.Errorf("play count differs across identical seeds: %d vs %d", first.TotalPlays, second.TotalPlays)
	}
	if first.HomeScore != second.HomeScore || first.AwayScore != second.AwayScore {
		t.Errorf("scores differ across identical seeds: %d-%d vs %d-%d", first.HomeScore, first.AwayScore, second.HomeScore, second.AwayScore)
	}
	for i := range first.Plays {
		if first.Plays[i].Kind != second.Plays[i].Kind {
			t.Fatalf("play %d kind differs: %v vs %v", i, first.Plays[i].Kind, second.Plays[i].Kind)
		}
		if first.Plays[i].EndFieldPosition != second.Plays[i].EndFieldPosition {
			t.Fatalf("play %d end field position differs: %d vs %d", i, first.Plays[i].EndFieldPosition, second.Plays[i].EndFieldPosition)
		}
	}
}

func TestSimulateGameFieldPositionStaysInBounds(t *testing.T) {
	home, away := buildTestTeams()
	seed := int64(7)
	result, err := SimulateGame(home, away, SimulationOptions{RandomSeed: &seed})
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	for i, p := range result.Plays {
		if p.StartFieldPosition < 0 || p.StartFieldPosition > 100 {
			t.Errorf("play %d StartFieldPosition = %d out of [0,100]", i, p.StartFieldPosition)
		}
		if p.EndFieldPosition < 0 || p.EndFieldPosition > 100 {
			t.Errorf("play %d EndFieldPosition = %d out of [0,100]", i, p.EndFieldPosition)
		}
	}
}

func TestSimulateGameRecordsReplayLogThatReproducesTheGame(t *testing.T) {
	home, away := buildTestTeams()
	seed := int64(99)

	recorded, err := SimulateGame(home, away, SimulationOptions{RandomSeed: &seed, RecordReplayLog: true})
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if recorded.ReplayLog == nil {
		t.Fatal("expected a non-nil ReplayLog")
	}

	replayed, err := ReplayGame(home, away, recorded.ReplayLog, nil, nil, nil)
	if err != nil {
		t.Fatalf("ReplayGame: %v", err)
	}

	if replayed.TotalPlays != recorded.TotalPlays {
		t.Errorf("replayed play count = %d, want %d", replayed.TotalPlays, recorded.TotalPlays)
	}
	if replayed.HomeScore != recorded.HomeScore || replayed.AwayScore != recorded.AwayScore {
		t.Errorf("replayed score = %d-%d, want %d-%d", replayed.HomeScore, replayed.AwayScore, recorded.HomeScore, recorded.AwayScore)
	}
}


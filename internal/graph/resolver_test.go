package graph

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/engine"
	gmodel "github.com/brahedrick/gridiron-sim/internal/graph/model"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/store"
	"github.com/brahedrick/gridiron-sim/pkg/replay"
)

var errEngineFailed = errors.New("engine: simulation failed")

// fakeStore is a hand-rolled in-memory gameStore, grounded on the teacher's
// MockTx/MockDataGenerator style of fake (synthetic-data/seed_database_test.go)
// generalized from a pgx.Tx fake to this package's own persistence seam.
type fakeStore struct {
	teams map[uuid.UUID]*model.Team
	saved *engine.GameResult
}

func newFakeStore() *fakeStore {
	return &fakeStore{teams: make(map[uuid.UUID]*model.Team)}
}

func (f *fakeStore) SaveTeam(ctx context.Context, team *model.Team) error {
	f.teams[team.ID] = team
	return nil
}

func (f *fakeStore) GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, errors.New("fakeStore: team not found")
	}
	return team, nil
}

func (f *fakeStore) SaveGame(ctx context.Context, result *engine.GameResult) (uuid.UUID, error) {
	f.saved = result
	return result.Game.ID, nil
}

func (f *fakeStore) GetGame(ctx context.Context, id uuid.UUID) (*store.Record, error) {
	return nil, errors.New("fakeStore: not implemented")
}

func (f *fakeStore) GetReplayLog(ctx context.Context, gameID uuid.UUID) (*replay.Log, error) {
	return nil, errors.New("fakeStore: not implemented")
}

func withStubbedSimulateGame(t *testing.T, stub func(home, away *model.Team, opts engine.SimulationOptions) (*engine.GameResult, error)) {
	t.Helper()
	original := simulateGame
	simulateGame = stub
	t.Cleanup(func() { simulateGame = original })
}

func newTestResolver() (*Resolver, *fakeStore) {
	fs := newFakeStore()
	return &Resolver{Store: fs, rosterSeed: rand.New(rand.NewSource(1))}, fs
}

func TestCreateTeamBuildsAndPersistsRoster(t *testing.T) {
	r, fs := newTestResolver()

	got, err := r.Mutation().CreateTeam(context.Background(), gmodel.TeamInput{Name: "Home City Testers", Abbr: "HCT"})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if got.Name != "Home City Testers" || got.Abbr != "HCT" {
		t.Errorf("got team %+v, want name/abbr to match input", got)
	}
	id, err := uuid.Parse(got.ID)
	if err != nil {
		t.Fatalf("CreateTeam returned a non-UUID id %q", got.ID)
	}
	if _, ok := fs.teams[id]; !ok {
		t.Error("expected CreateTeam to persist the team via Store.SaveTeam")
	}
}

func TestSimulateGameResolverLoadsTeamsByIDAndReturnsResult(t *testing.T) {
	r, fs := newTestResolver()
	home := mustCreateTeam(t, r, "Home City Testers", "HCT")
	away := mustCreateTeam(t, r, "Away City Testers", "ACT")

	var capturedHome, capturedAway *model.Team
	withStubbedSimulateGame(t, func(h, a *model.Team, opts engine.SimulationOptions) (*engine.GameResult, error) {
		capturedHome, capturedAway = h, a
		game := model.NewGame(h, a, model.DefaultConfiguration())
		return &engine.GameResult{
			Game:       game,
			HomeScore:  24,
			AwayScore:  17,
			Winner:     model.PossessionHome,
			TotalPlays: 0,
			SeedUsed:   7,
		}, nil
	})

	got, err := r.Mutation().SimulateGame(context.Background(), gmodel.SimulateGameInput{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	})
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if got.HomeScore != 24 || got.AwayScore != 17 {
		t.Errorf("scores = %d-%d, want 24-17", got.HomeScore, got.AwayScore)
	}
	if got.Winner != gmodel.PossessionHome {
		t.Errorf("Winner = %v, want HOME", got.Winner)
	}
	if capturedHome.Name != "Home City Testers" || capturedAway.Name != "Away City Testers" {
		t.Error("expected teams loaded by homeTeamId/awayTeamId to reach engine.SimulateGame")
	}
	if fs.saved == nil {
		t.Error("expected SimulateGame to persist its result via Store.SaveGame")
	}
}

func TestSimulateGameResolverRejectsUnknownTeamID(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.Mutation().SimulateGame(context.Background(), gmodel.SimulateGameInput{
		HomeTeamID: uuid.New().String(),
		AwayTeamID: uuid.New().String(),
	})
	if err == nil {
		t.Error("expected an error looking up teams that were never created")
	}
}

func TestSimulateGameResolverWrapsEngineErrors(t *testing.T) {
	r, fs := newTestResolver()
	home := mustCreateTeam(t, r, "A", "AAA")
	away := mustCreateTeam(t, r, "B", "BBB")
	_ = fs

	withStubbedSimulateGame(t, func(home, away *model.Team, opts engine.SimulationOptions) (*engine.GameResult, error) {
		return nil, errEngineFailed
	})

	_, err := r.Mutation().SimulateGame(context.Background(), gmodel.SimulateGameInput{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	})
	if !errors.Is(err, errEngineFailed) {
		t.Errorf("expected the engine.SimulateGame error to be wrapped, got %v", err)
	}
}

func mustCreateTeam(t *testing.T, r *Resolver, name, abbr string) *gmodel.Team {
	t.Helper()
	team, err := r.Mutation().CreateTeam(context.Background(), gmodel.TeamInput{Name: name, Abbr: abbr})
	if err != nil {
		t.Fatalf("CreateTeam(%s): %v", name, err)
	}
	return team
}

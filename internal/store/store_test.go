package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brahedrick/gridiron-sim/engine"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/pkg/replay"
)

// mockTx is a hand-rolled fake pgx.Tx, grounded on the teacher's MockTx
// (synthetic-data/seed_database_test.go) -- no mocking framework, every
// method implemented by hand, only Exec/Commit/Rollback actually exercised.
type mockTx struct {
	execCalls []mockExecCall
	execErr   error
	committed bool
	rolledBack bool
}

type mockExecCall struct {
	sql  string
	args []any
}

func (m *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.execCalls = append(m.execCalls, mockExecCall{sql: sql, args: args})
	if m.execErr != nil {
		return pgconn.CommandTag{}, m.execErr
	}
	return pgconn.CommandTag{}, nil
}

func (m *mockTx) Commit(ctx context.Context) error   { m.committed = true; return nil }
func (m *mockTx) Rollback(ctx context.Context) error { m.rolledBack = true; return nil }

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *mockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *mockTx) Conn() *pgx.Conn                                               { return nil }

func testResult(t *testing.T) *engine.GameResult {
	t.Helper()
	home := &model.Team{ID: uuid.New(), Name: "Home City Testers"}
	away := &model.Team{ID: uuid.New(), Name: "Away City Testers"}
	game := model.NewGame(home, away, model.DefaultConfiguration())
	game.Plays = []model.Play{{ID: uuid.New(), Index: 0, Kind: model.PlayRun}}
	return &engine.GameResult{
		Game:       game,
		HomeScore:  21,
		AwayScore:  14,
		Winner:     model.PossessionHome,
		TotalPlays: 1,
		Plays:      game.Plays,
		SeedUsed:   42,
	}
}

func TestInsertGameWritesGameRow(t *testing.T) {
	tx := &mockTx{}
	result := testResult(t)

	id, err := insertGame(context.Background(), tx, result)
	if err != nil {
		t.Fatalf("insertGame: %v", err)
	}
	if id != result.Game.ID {
		t.Errorf("returned id = %v, want %v", id, result.Game.ID)
	}
	if len(tx.execCalls) != 1 {
		t.Fatalf("expected exactly one exec call without a replay log, got %d", len(tx.execCalls))
	}
}

func TestInsertGameAlsoWritesReplayLogWhenPresent(t *testing.T) {
	tx := &mockTx{}
	result := testResult(t)
	result.ReplayLog = &replay.Log{Seed: 42, Doubles: []float64{0.5}, Ints: []int{3}}

	if _, err := insertGame(context.Background(), tx, result); err != nil {
		t.Fatalf("insertGame: %v", err)
	}
	if len(tx.execCalls) != 2 {
		t.Fatalf("expected a game insert and a replay log insert, got %d exec calls", len(tx.execCalls))
	}
}

func TestInsertGamePropagatesExecErrors(t *testing.T) {
	tx := &mockTx{execErr: errors.New("connection reset")}
	result := testResult(t)

	if _, err := insertGame(context.Background(), tx, result); err == nil {
		t.Error("expected an error when the underlying exec fails")
	}
}

func TestPossessionLabel(t *testing.T) {
	cases := map[model.Possession]string{
		model.PossessionHome: "home",
		model.PossessionAway: "away",
		model.PossessionNone: "none",
	}
	for possession, want := range cases {
		if got := possessionLabel(possession); got != want {
			t.Errorf("possessionLabel(%v) = %q, want %q", possession, got, want)
		}
	}
}

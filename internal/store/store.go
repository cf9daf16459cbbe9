// Package store persists engine.GameResult values and their Replay Logs to
// Postgres. It is the "persistence" layer spec §1 explicitly excludes from
// the CORE engine, kept only as an outer shell (SPEC_FULL.md §1) the same
// way the teacher keeps seed_database.go's pgx access outside its data
// model packages.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/brahedrick/gridiron-sim/engine"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/pkg/replay"
)

// Store wraps a connection pool, grounded on the teacher's DBExecutor/pgx.Tx
// injection pattern (synthetic-data/seed_database.go) generalized from a
// single seeding transaction to a long-lived pool a GraphQL server's
// resolvers share.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an already-connected pool. cmd/server builds the pool exactly
// as the teacher's cmd/server/main.go does.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// SaveTeam persists a team built by internal/roster so later simulations
// can reference it by ID, the way spec §6's GraphQL surface documents
// simulateGame(homeTeamId, awayTeamId, options) rather than taking full
// roster payloads on every call.
func (s *Store) SaveTeam(ctx context.Context, team *model.Team) error {
	rosterJSON, err := json.Marshal(team.Roster)
	if err != nil {
		return fmt.Errorf("store: marshaling roster for team %s: %w", team.ID, err)
	}
	depthChartJSON, err := json.Marshal(team.DepthChart)
	if err != nil {
		return fmt.Errorf("store: marshaling depth chart for team %s: %w", team.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO teams (id, name, abbr, roster, depth_chart) VALUES ($1, $2, $3, $4, $5)`,
		team.ID, team.Name, team.Abbr, rosterJSON, depthChartJSON)
	if err != nil {
		return fmt.Errorf("store: inserting team %s: %w", team.ID, err)
	}
	return nil
}

// GetTeam loads a previously persisted team by ID.
func (s *Store) GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	row := s.pool.QueryRow(ctx, `SELECT id, name, abbr, roster, depth_chart FROM teams WHERE id = $1`, id)

	team := &model.Team{}
	var rosterJSON, depthChartJSON []byte
	if err := row.Scan(&team.ID, &team.Name, &team.Abbr, &rosterJSON, &depthChartJSON); err != nil {
		return nil, fmt.Errorf("store: loading team %s: %w", id, err)
	}
	if err := json.Unmarshal(rosterJSON, &team.Roster); err != nil {
		return nil, fmt.Errorf("store: unmarshaling roster for team %s: %w", id, err)
	}
	if err := json.Unmarshal(depthChartJSON, &team.DepthChart); err != nil {
		return nil, fmt.Errorf("store: unmarshaling depth chart for team %s: %w", id, err)
	}
	return team, nil
}

// Record is the persisted row shape for one simulated game, independent of
// engine.GameResult so storage schema changes don't ripple into the
// simulation engine's own types.
type Record struct {
	ID         uuid.UUID
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Winner     string
	Tie        bool
	TotalPlays int
	SeedUsed   int64
	Plays      []model.Play
}

// SaveGame inserts a single GameResult and, when present, its ReplayLog.
// Both inserts run in one transaction so a game row never exists without
// its replay log once RecordReplayLog was requested.
func (s *Store) SaveGame(ctx context.Context, result *engine.GameResult) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	gameID, err := insertGame(ctx, tx, result)
	if err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("store: committing game %s: %w", gameID, err)
	}
	return gameID, nil
}

// insertGame does the actual row inserts against any pgx.Tx, split out from
// SaveGame so it can run against a hand-rolled fake transaction in tests,
// the same split the teacher uses between SeedDatabase (opens the real
// connection) and Seed/insertConferences et al. (take a pgx.Tx parameter
// and are unit tested with MockTx).
func insertGame(ctx context.Context, tx pgx.Tx, result *engine.GameResult) (uuid.UUID, error) {
	playsJSON, err := json.Marshal(result.Plays)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: marshaling plays: %w", err)
	}

	gameID := result.Game.ID
	_, err = tx.Exec(ctx,
		`INSERT INTO games (id, home_team_name, away_team_name, home_score, away_score, winner, tie, total_plays, seed_used, plays)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		gameID, result.Game.Home.Name, result.Game.Away.Name, result.HomeScore, result.AwayScore,
		possessionLabel(result.Winner), result.Tie, result.TotalPlays, result.SeedUsed, playsJSON)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: inserting game %s: %w", gameID, err)
	}

	if result.ReplayLog != nil {
		if err := insertReplayLog(ctx, tx, gameID, result.ReplayLog); err != nil {
			return uuid.Nil, err
		}
	}
	return gameID, nil
}

// SaveGames persists many independent GameResults concurrently across the
// pool. Grounded on golang.org/x/sync/errgroup's fan-out-and-collect-first-
// error pattern; safe here because pgxpool.Pool (unlike a single pgx.Tx) is
// designed for concurrent use by multiple goroutines.
func (s *Store) SaveGames(ctx context.Context, results []*engine.GameResult) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(results))
	g, gctx := errgroup.WithContext(ctx)
	for i, result := range results {
		i, result := i, result
		g.Go(func() error {
			id, err := s.SaveGame(gctx, result)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

func insertReplayLog(ctx context.Context, tx pgx.Tx, gameID uuid.UUID, log *replay.Log) error {
	doublesJSON, err := json.Marshal(log.Doubles)
	if err != nil {
		return fmt.Errorf("store: marshaling replay doubles: %w", err)
	}
	intsJSON, err := json.Marshal(log.Ints)
	if err != nil {
		return fmt.Errorf("store: marshaling replay ints: %w", err)
	}
	rangesJSON, err := json.Marshal(log.IntRanges)
	if err != nil {
		return fmt.Errorf("store: marshaling replay int ranges: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO replay_logs (game_id, seed, doubles, ints, int_ranges) VALUES ($1, $2, $3, $4, $5)`,
		gameID, log.Seed, doublesJSON, intsJSON, rangesJSON)
	if err != nil {
		return fmt.Errorf("store: inserting replay log for game %s: %w", gameID, err)
	}
	return nil
}

// GetGame loads a persisted game's summary row and its play list.
func (s *Store) GetGame(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, home_team_name, away_team_name, home_score, away_score, winner, tie, total_plays, seed_used, plays
		 FROM games WHERE id = $1`, id)

	var rec Record
	var playsJSON []byte
	if err := row.Scan(&rec.ID, &rec.HomeTeam, &rec.AwayTeam, &rec.HomeScore, &rec.AwayScore,
		&rec.Winner, &rec.Tie, &rec.TotalPlays, &rec.SeedUsed, &playsJSON); err != nil {
		return nil, fmt.Errorf("store: loading game %s: %w", id, err)
	}
	if err := json.Unmarshal(playsJSON, &rec.Plays); err != nil {
		return nil, fmt.Errorf("store: unmarshaling plays for game %s: %w", id, err)
	}
	return &rec, nil
}

// GetReplayLog loads a persisted game's replay log, if one was recorded.
func (s *Store) GetReplayLog(ctx context.Context, gameID uuid.UUID) (*replay.Log, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT seed, doubles, ints, int_ranges FROM replay_logs WHERE game_id = $1`, gameID)

	var log replay.Log
	var doublesJSON, intsJSON, rangesJSON []byte
	if err := row.Scan(&log.Seed, &doublesJSON, &intsJSON, &rangesJSON); err != nil {
		return nil, fmt.Errorf("store: loading replay log for game %s: %w", gameID, err)
	}
	if err := json.Unmarshal(doublesJSON, &log.Doubles); err != nil {
		return nil, fmt.Errorf("store: unmarshaling replay doubles for game %s: %w", gameID, err)
	}
	if err := json.Unmarshal(intsJSON, &log.Ints); err != nil {
		return nil, fmt.Errorf("store: unmarshaling replay ints for game %s: %w", gameID, err)
	}
	if err := json.Unmarshal(rangesJSON, &log.IntRanges); err != nil {
		return nil, fmt.Errorf("store: unmarshaling replay int ranges for game %s: %w", gameID, err)
	}
	return &log, nil
}

func possessionLabel(p model.Possession) string {
	switch p {
	case model.PossessionHome:
		return "home"
	case model.PossessionAway:
		return "away"
	default:
		return "none"
	}
}

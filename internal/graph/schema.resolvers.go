package graph

// This file would normally be regenerated by `go generate ./...` (gqlgen.yml)
// against schema.graphqls, with hand-written resolver bodies copied through
// on each run; the method bodies below are exactly those hand-written
// bodies, written directly since generated.go is not checked in here.

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	gmodel "github.com/brahedrick/gridiron-sim/internal/graph/model"
	"github.com/brahedrick/gridiron-sim/internal/roster"
)

// CreateTeam builds a full roster/depth chart via internal/roster and
// persists it so later simulateGame calls can reference it by ID, per
// spec §6's documented simulateGame(homeTeamId, awayTeamId, options)
// signature.
func (r *mutationResolver) CreateTeam(ctx context.Context, input gmodel.TeamInput) (*gmodel.Team, error) {
	team := roster.BuildTeam(input.Name, input.Abbr, roster.NFLComposition, r.rosterSeed)

	if r.Store != nil {
		if err := r.Store.SaveTeam(ctx, team); err != nil {
			return nil, fmt.Errorf("createTeam: %w", err)
		}
	}

	return teamToGraphQL(team), nil
}

// SimulateGame loads the two teams a prior createTeam mutation persisted,
// runs engine.SimulateGame, persists the result (and its replay log, if
// asked for), and returns the GraphQL projection of the outcome.
func (r *mutationResolver) SimulateGame(ctx context.Context, input gmodel.SimulateGameInput) (*gmodel.Game, error) {
	homeID, err := uuid.Parse(input.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("simulateGame: invalid homeTeamId %q: %w", input.HomeTeamID, err)
	}
	awayID, err := uuid.Parse(input.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("simulateGame: invalid awayTeamId %q: %w", input.AwayTeamID, err)
	}

	home, err := r.Store.GetTeam(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("simulateGame: loading home team %s: %w", homeID, err)
	}
	away, err := r.Store.GetTeam(ctx, awayID)
	if err != nil {
		return nil, fmt.Errorf("simulateGame: loading away team %s: %w", awayID, err)
	}

	opts := simulationOptionsFromInput(input)
	result, err := simulateGame(home, away, opts)
	if err != nil {
		return nil, fmt.Errorf("simulateGame: %w", err)
	}

	if _, err := r.Store.SaveGame(ctx, result); err != nil {
		return nil, fmt.Errorf("simulateGame: persisting result: %w", err)
	}

	return gameToGraphQL(result), nil
}

// Team loads a previously persisted team by ID.
func (r *queryResolver) Team(ctx context.Context, id string) (*gmodel.Team, error) {
	teamID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("team: invalid id %q: %w", id, err)
	}
	team, err := r.Store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("team: %w", err)
	}
	return teamToGraphQL(team), nil
}

// Game loads a previously simulated and persisted game by ID.
func (r *queryResolver) Game(ctx context.Context, id string) (*gmodel.Game, error) {
	gameID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("game: invalid id %q: %w", id, err)
	}
	rec, err := r.Store.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return recordToGraphQL(rec), nil
}

// ReplayLog loads a persisted game's replay log.
func (r *queryResolver) ReplayLog(ctx context.Context, gameID string) (*gmodel.ReplayLog, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("replayLog: invalid id %q: %w", gameID, err)
	}
	log, err := r.Store.GetReplayLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("replayLog: %w", err)
	}
	return &gmodel.ReplayLog{
		GameID:  gameID,
		Seed:    int(log.Seed),
		Doubles: log.Doubles,
		Ints:    log.Ints,
	}, nil
}

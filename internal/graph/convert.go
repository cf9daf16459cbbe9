package graph

import (
	"github.com/brahedrick/gridiron-sim/engine"
	gmodel "github.com/brahedrick/gridiron-sim/internal/graph/model"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/store"
)

// simulateGame is a package-level indirection over engine.SimulateGame so
// tests can stub it without spinning up a real roster/engine run.
var simulateGame = engine.SimulateGame

// simulationOptionsFromInput translates the GraphQL-exposed subset of
// engine.SimulationOptions spec §6 documents as per-simulation overrides;
// everything else keeps the engine's documented defaults.
func simulationOptionsFromInput(input gmodel.SimulateGameInput) engine.SimulationOptions {
	opts := engine.SimulationOptions{}
	if input.RandomSeed != nil {
		seed := int64(*input.RandomSeed)
		opts.RandomSeed = &seed
	}
	if input.OvertimeRules != nil {
		opts.OvertimeRules = *input.OvertimeRules
	}
	if input.TwoMinuteWarningRules != nil {
		opts.TwoMinuteWarningRules = *input.TwoMinuteWarningRules
	}
	if input.EndOfHalfRules != nil {
		opts.EndOfHalfRules = *input.EndOfHalfRules
	}
	if input.RecordReplayLog != nil {
		opts.RecordReplayLog = *input.RecordReplayLog
	}
	return opts
}

func gameToGraphQL(result *engine.GameResult) *gmodel.Game {
	plays := make([]*gmodel.Play, len(result.Plays))
	for i, p := range result.Plays {
		plays[i] = playToGraphQL(p)
	}
	return &gmodel.Game{
		ID:         result.Game.ID.String(),
		Home:       teamToGraphQL(result.Game.Home),
		Away:       teamToGraphQL(result.Game.Away),
		HomeScore:  result.HomeScore,
		AwayScore:  result.AwayScore,
		Winner:     gmodel.PossessionFromDomain(result.Winner),
		Tie:        result.Tie,
		TotalPlays: result.TotalPlays,
		SeedUsed:   int(result.SeedUsed),
		Plays:      plays,
	}
}

func teamToGraphQL(t *model.Team) *gmodel.Team {
	return &gmodel.Team{ID: t.ID.String(), Name: t.Name, Abbr: t.Abbr}
}

func playToGraphQL(p model.Play) *gmodel.Play {
	return &gmodel.Play{
		Index:              p.Index,
		Kind:               gmodel.PlayKindString(p.Kind),
		StartFieldPosition: p.StartFieldPosition,
		EndFieldPosition:   p.EndFieldPosition,
		YardsGained:        p.YardsGained,
		Down:               int(p.Down),
		YardsToGo:          p.YardsToGo,
		Possession:         gmodel.PossessionFromDomain(p.Possession),
		Touchdown:          p.Touchdown,
		Safety:             p.Safety,
		FirstDown:          p.FirstDown,
	}
}

// recordToGraphQL projects a persisted store.Record. Team identity beyond
// name isn't persisted (internal/store.Record carries only the names used
// at simulation time), so Abbr is left blank for games loaded this way.
func recordToGraphQL(rec *store.Record) *gmodel.Game {
	plays := make([]*gmodel.Play, len(rec.Plays))
	for i, p := range rec.Plays {
		plays[i] = playToGraphQL(p)
	}
	return &gmodel.Game{
		ID:         rec.ID.String(),
		Home:       &gmodel.Team{Name: rec.HomeTeam},
		Away:       &gmodel.Team{Name: rec.AwayTeam},
		HomeScore:  rec.HomeScore,
		AwayScore:  rec.AwayScore,
		Winner:     gmodel.Possession(possessionGraphQLLabel(rec.Winner)),
		Tie:        rec.Tie,
		TotalPlays: rec.TotalPlays,
		SeedUsed:   int(rec.SeedUsed),
		Plays:      plays,
	}
}

func possessionGraphQLLabel(winner string) string {
	switch winner {
	case "home":
		return string(gmodel.PossessionHome)
	case "away":
		return string(gmodel.PossessionAway)
	default:
		return string(gmodel.PossessionNone)
	}
}

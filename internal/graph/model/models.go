// Package model holds the hand-written Go types bound to schema.graphqls
// via gqlgen.yml's `models:` section. Real gqlgen projects either let
// codegen produce models_gen.go or bind types by hand when, as here, a
// DTO layer already exists (engine.GameResult, internal/store.Record) and
// a second generated struct would just duplicate it.
package model

import (
	"fmt"
	"io"
	"strconv"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Possession mirrors the schema's Possession enum. A plain string alias
// with hand-written (Un)MarshalGQL, the minimal shape gqlgen needs from a
// custom-bound enum model.
type Possession string

const (
	PossessionHome Possession = "HOME"
	PossessionAway Possession = "AWAY"
	PossessionNone Possession = "NONE"
)

// PossessionFromDomain converts an internal/model.Possession into its GraphQL enum.
func PossessionFromDomain(p model.Possession) Possession {
	switch p {
	case model.PossessionHome:
		return PossessionHome
	case model.PossessionAway:
		return PossessionAway
	default:
		return PossessionNone
	}
}

func (p Possession) MarshalGQL(w io.Writer) {
	fmt.Fprintf(w, "%q", string(p))
}

func (p *Possession) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("Possession must be a string, got %T", v)
	}
	switch Possession(s) {
	case PossessionHome, PossessionAway, PossessionNone:
		*p = Possession(s)
		return nil
	default:
		return fmt.Errorf("unknown Possession %q", s)
	}
}

// Team is the GraphQL projection of internal/model.Team: identity only,
// no roster -- the GraphQL surface exposes game outcomes, not roster
// management (spec §1's Non-goals).
type Team struct {
	ID   string
	Name string
	Abbr string
}

// Play is the GraphQL projection of one internal/model.Play.
type Play struct {
	Index              int
	Kind               string
	StartFieldPosition int
	EndFieldPosition   int
	YardsGained        int
	Down               int
	YardsToGo          int
	Possession         Possession
	Touchdown          bool
	Safety             bool
	FirstDown          bool
}

// Game is the GraphQL projection of a simulated game.
type Game struct {
	ID         string
	Home       *Team
	Away       *Team
	HomeScore  int
	AwayScore  int
	Winner     Possession
	Tie        bool
	TotalPlays int
	SeedUsed   int
	Plays      []*Play
}

// ReplayLog is the GraphQL projection of pkg/replay.Log.
type ReplayLog struct {
	GameID  string
	Seed    int
	Doubles []float64
	Ints    []int
}

// TeamInput is the GraphQL input for naming a team to simulate with; the
// resolver hands it to internal/roster to build a full Team.
type TeamInput struct {
	Name string
	Abbr string
}

// SimulateGameInput mirrors engine.SimulationOptions' GraphQL-exposed
// subset: tuning knobs stay server-side defaults, only the ones spec §6
// documents as per-simulation overrides cross the wire. Teams are
// referenced by the ID a prior createTeam mutation returned, per spec §6's
// documented simulateGame(homeTeamId, awayTeamId, options) signature --
// not re-sent as full roster payloads on every call.
type SimulateGameInput struct {
	HomeTeamID            string
	AwayTeamID            string
	RandomSeed            *int
	OvertimeRules         *string
	TwoMinuteWarningRules *string
	EndOfHalfRules        *string
	RecordReplayLog       *bool
}

// PlayKindString renders a model.PlayKind the way the GraphQL Play.kind
// field exposes it -- a stable string name rather than a raw ordinal,
// since PlayKind's int values aren't part of any public contract.
func PlayKindString(k model.PlayKind) string {
	switch k {
	case model.PlayRun:
		return "RUN"
	case model.PlayPass:
		return "PASS"
	case model.PlayKickoff:
		return "KICKOFF"
	case model.PlayPunt:
		return "PUNT"
	case model.PlayFieldGoal:
		return "FIELD_GOAL"
	default:
		return "UNKNOWN_" + strconv.Itoa(int(k))
	}
}

// Package model holds the entities described in spec.md §3: Game, Team,
// Player, Play and its variants, PlaySegment and its variants, Penalty,
// OvertimeState and Configuration. Ownership is exclusive: only the
// simulation run that created a Game mutates it.
package model

import "github.com/google/uuid"

// Position is the eligible-position tag used by the power calculators
// (internal/attributes) and depth-chart construction (internal/roster).
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	FB Position = "FB"
	WR Position = "WR"
	TE Position = "TE"
	C  Position = "C"
	G  Position = "G"
	T  Position = "T"
	DT Position = "DT"
	DE Position = "DE"
	LB Position = "LB"
	OLB Position = "OLB"
	CB Position = "CB"
	S  Position = "S"
	FS Position = "FS"
	K  Position = "K"
	P  Position = "P"
	LS Position = "LS"
)

// PhysicalAttributes are integer attributes in [0,100] describing a
// player's body and movement.
type PhysicalAttributes struct {
	Speed     int
	Strength  int
	Agility   int
	Awareness int
	Fragility int
}

// SkillAttributes are integer attributes in [0,100] describing a player's
// football-specific ability.
type SkillAttributes struct {
	Passing  int
	Catching int
	Rushing  int
	Blocking int
	Tackling int
	Coverage int
	Kicking  int
}

// MentalAttributes are integer attributes in [0,100].
type MentalAttributes struct {
	Discipline int
	Morale     int
}

// Injury records a current, in-game injury for a player.
type Injury struct {
	Description  string
	GamesOut     int
	OccurredPlay int
}

// PlayerGameCounters are the per-game stat counters referenced by outcomes
// (spec §1 excludes stat accumulation beyond these counters). See
// internal/stats for the accumulation logic that mutates these.
type PlayerGameCounters struct {
	RushAttempts     int
	RushYards        int
	RushTDs          int
	Targets          int
	Receptions       int
	ReceivingYards   int
	ReceivingTDs     int
	PassAttempts     int
	PassCompletions  int
	PassYards        int
	PassTDs          int
	Interceptions    int
	Sacks            int
	SackYardsAllowed int
	Tackles          int
	TacklesForLoss   int
	ForcedFumbles    int
	FumbleRecoveries int
	FumblesLost      int
	PenaltiesCommitted int
	FieldGoalsMade   int
	FieldGoalsAttempted int
	ExtraPointsMade  int
	KickReturnYards  int
	PuntReturnYards  int
}

// Player is the unit of attributes the skill checks read. Fragility,
// discipline and morale never leave [0,100]; callers that average over an
// empty position set must fall back to the documented default of 50 rather
// than divide by zero (spec §3 invariant 4).
type Player struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Position  Position
	TeamID    uuid.UUID

	Physical PhysicalAttributes
	Skill    SkillAttributes
	Mental   MentalAttributes

	Injury  *Injury
	Counters PlayerGameCounters

	// DepthSlot is the player's ordinal within their position's depth
	// chart (0 = starter), populated by internal/roster.
	DepthSlot int
}

// FullName returns "First Last" for logging and play-by-play text.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsAvailable reports whether the player can currently take the field.
func (p Player) IsAvailable() bool {
	return p.Injury == nil
}

// DefaultAttributeValue is the documented fallback used whenever a power or
// skill-check calculation would otherwise average over an empty set of
// eligible players (spec §3 invariant 4, §4.4).
const DefaultAttributeValue = 50

package model

import "github.com/google/uuid"

// DepthChartUnit names one of a team's eight depth charts (spec §3: offense,
// defense, and four kicking/receiving special-teams units — split here into
// coverage/return pairs for both kickoff and punt, plus field goal and
// field goal block, for eight total).
type DepthChartUnit string

const (
	DepthChartOffense         DepthChartUnit = "offense"
	DepthChartDefense         DepthChartUnit = "defense"
	DepthChartKickoffCoverage DepthChartUnit = "kickoff_coverage"
	DepthChartKickoffReturn   DepthChartUnit = "kickoff_return"
	DepthChartPunt            DepthChartUnit = "punt"
	DepthChartPuntReturn      DepthChartUnit = "punt_return"
	DepthChartFieldGoal       DepthChartUnit = "field_goal"
	DepthChartFieldGoalBlock  DepthChartUnit = "field_goal_block"
)

// AllDepthChartUnits lists all eight units in a stable order, for
// iteration when building or validating a roster.
var AllDepthChartUnits = []DepthChartUnit{
	DepthChartOffense,
	DepthChartDefense,
	DepthChartKickoffCoverage,
	DepthChartKickoffReturn,
	DepthChartPunt,
	DepthChartPuntReturn,
	DepthChartFieldGoal,
	DepthChartFieldGoalBlock,
}

// StaffRole names a non-playing staff position. The core engine never reads
// staff; they are retained on Team for completeness per spec §3.
type StaffRole string

const (
	HeadCoach           StaffRole = "head_coach"
	OffensiveCoordinator StaffRole = "offensive_coordinator"
	DefensiveCoordinator StaffRole = "defensive_coordinator"
	SpecialTeamsCoordinator StaffRole = "special_teams_coordinator"
)

// StaffMember is a non-playing team employee.
type StaffMember struct {
	Name string
	Role StaffRole
}

// Team owns a roster, eight depth charts keyed by DepthChartUnit, and
// non-playing staff. The core engine reads only depth charts and player
// attribute fields (spec §3).
type Team struct {
	ID   uuid.UUID
	Name string
	Abbr string

	Roster     []Player
	DepthChart map[DepthChartUnit][]uuid.UUID
	Staff      []StaffMember
}

// PlayerByID returns the roster player with the given ID, or false if not
// found.
func (t *Team) PlayerByID(id uuid.UUID) (*Player, bool) {
	for i := range t.Roster {
		if t.Roster[i].ID == id {
			return &t.Roster[i], true
		}
	}
	return nil, false
}

// Lineup resolves a depth chart unit into the ordered slice of Player
// values currently eligible to take the field (skipping injured players).
func (t *Team) Lineup(unit DepthChartUnit) []Player {
	ids := t.DepthChart[unit]
	out := make([]Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := t.PlayerByID(id); ok && p.IsAvailable() {
			out = append(out, *p)
		}
	}
	return out
}

// PlayersAtPositions filters a lineup down to the given eligible positions,
// the shape every power calculator in internal/attributes consumes.
func PlayersAtPositions(lineup []Player, positions ...Position) []Player {
	set := make(map[Position]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	out := make([]Player, 0, len(lineup))
	for _, p := range lineup {
		if set[p.Position] {
			out = append(out, p)
		}
	}
	return out
}

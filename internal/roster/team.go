// Package roster is the external roster/depth-chart generator spec §1
// keeps outside the CORE engine — present the way the teacher's
// synthetic-data command is present, exercising the same attribute model
// rather than simulating a play. internal/flow and internal/playexec never
// import this package; they only read the model.Team/model.Player values it
// produces.
package roster

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// BuildTeam generates a full model.Team: a roster matching comp, every
// player's attributes drawn from its position's profile, and all eight
// depth charts populated in depth-slot order. r is the roster generator's
// own random source — distinct from internal/rng.Source, since roster
// construction happens before a simulation and is never part of a replay
// log (spec §1: roster/depth-chart construction is an external
// collaborator, not CORE).
func BuildTeam(name, abbr string, comp Composition, r *rand.Rand) *model.Team {
	team := &model.Team{
		ID:         uuid.New(),
		Name:       name,
		Abbr:       abbr,
		DepthChart: make(map[model.DepthChartUnit][]uuid.UUID),
	}

	for _, position := range orderedPositions(comp) {
		count := comp[position]
		for slot := 0; slot < count; slot++ {
			first, last := randomName(r)
			phys, skill, mental := generateAttributes(r, position, slot, count)
			team.Roster = append(team.Roster, model.Player{
				ID:        uuid.New(),
				FirstName: first,
				LastName:  last,
				Position:  position,
				TeamID:    team.ID,
				Physical:  phys,
				Skill:     skill,
				Mental:    mental,
				DepthSlot: slot,
			})
		}
	}

	allIDs := make([]uuid.UUID, len(team.Roster))
	var offenseIDs, defenseIDs []uuid.UUID
	for i, p := range team.Roster {
		allIDs[i] = p.ID
		if isOffensePosition(p.Position) {
			offenseIDs = append(offenseIDs, p.ID)
		} else {
			defenseIDs = append(defenseIDs, p.ID)
		}
	}

	team.DepthChart[model.DepthChartOffense] = offenseIDs
	team.DepthChart[model.DepthChartDefense] = defenseIDs
	// Special-teams units field the whole roster; see positions.go's
	// offensePositions/defensePositions comment for why that's safe.
	team.DepthChart[model.DepthChartKickoffCoverage] = allIDs
	team.DepthChart[model.DepthChartKickoffReturn] = allIDs
	team.DepthChart[model.DepthChartPunt] = allIDs
	team.DepthChart[model.DepthChartPuntReturn] = allIDs
	team.DepthChart[model.DepthChartFieldGoal] = allIDs
	team.DepthChart[model.DepthChartFieldGoalBlock] = allIDs

	return team
}

// BuildFranchiseTeam picks a random unused franchise identity from pool
// (mutating it by removing the chosen entry, mirroring the teacher's
// generateLeagueFlat "remove the franchise from the list" idiom) and builds
// a full roster for it under NFLComposition.
func BuildFranchiseTeam(pool *[]Franchise, r *rand.Rand) (*model.Team, error) {
	if len(*pool) == 0 {
		return nil, fmt.Errorf("roster: no franchises remaining in pool")
	}
	idx := r.Intn(len(*pool))
	franchise := (*pool)[idx]
	*pool = append((*pool)[:idx], (*pool)[idx+1:]...)

	team := BuildTeam(franchise.City+" "+franchise.Name, franchise.Abbr, NFLComposition, r)
	return team, nil
}

// orderedPositions returns comp's keys in NFLComposition's declared order
// when comp is NFLComposition itself, falling back to map iteration order
// for any other Composition; deterministic enough for BuildTeam's own use
// (draw order only affects which name a position's nth player gets, not
// roster shape) and keeps tests readable.
func orderedPositions(comp Composition) []model.Position {
	canonical := []model.Position{
		model.QB, model.RB, model.FB, model.WR, model.TE, model.C, model.G, model.T,
		model.DT, model.DE, model.LB, model.OLB, model.CB, model.S, model.FS,
		model.K, model.P, model.LS,
	}
	out := make([]model.Position, 0, len(comp))
	seen := make(map[model.Position]bool, len(comp))
	for _, p := range canonical {
		if _, ok := comp[p]; ok {
			out = append(out, p)
			seen[p] = true
		}
	}
	for p := range comp {
		if !seen[p] {
			out = append(out, p)
		}
	}
	return out
}

package roster

import "github.com/brahedrick/gridiron-sim/internal/model"

// Composition dictates how many players of each position a generated
// roster carries. Grounded on the teacher's RosterComposition
// (synthetic-data/types.go: "instead of random chance, we force a specific
// structure"), generalized from five skill positions to the full
// eighteen-position set spec §3's Player.Position names.
type Composition map[model.Position]int

// NFLComposition is the documented default: 54 players, enough depth at
// every position the play executors read from.
var NFLComposition = Composition{
	model.QB:  3,
	model.RB:  4,
	model.FB:  1,
	model.WR:  6,
	model.TE:  3,
	model.C:   2,
	model.G:   4,
	model.T:   4,
	model.DT:  4,
	model.DE:  4,
	model.LB:  4,
	model.OLB: 3,
	model.CB:  5,
	model.S:   2,
	model.FS:  2,
	model.K:   1,
	model.P:   1,
	model.LS:  1,
}

// offensePositions and defensePositions split the roster between
// Team.DepthChartOffense and Team.DepthChartDefense. Special-teams units
// (kickoff/punt coverage/return, field goal, field goal block) each field
// the whole roster rather than a curated subset: internal/playexec's own
// best()-by-position selection already filters out anyone not eligible for
// the role it's looking for (e.g. kicker() only ever considers model.K),
// so listing every player on every special-teams unit costs nothing and
// avoids having to duplicate that eligibility table here.
var offensePositions = []model.Position{model.QB, model.RB, model.FB, model.WR, model.TE, model.C, model.G, model.T}
var defensePositions = []model.Position{model.DT, model.DE, model.LB, model.OLB, model.CB, model.S, model.FS}

func isOffensePosition(p model.Position) bool {
	for _, o := range offensePositions {
		if o == p {
			return true
		}
	}
	return false
}

// Package penalty implements the penalty enforcement mechanic of spec
// §4.7: multi-penalty resolution, yardage/down/first-down effects, and the
// half-distance rule. Accept/decline itself is a separate decision (see
// internal/decision); this package only enforces already-decided fouls.
package penalty

import (
	"sort"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Result is the output of Enforce: the net effect of the accepted-penalty
// set on a play's yardage, down and yards-to-go.
type Result struct {
	NetYards            int
	NewDown             model.Down
	NewYardsToGo        int
	AutomaticFirstDown  bool
	LossOfDown          bool
	Offsetting          bool
	ReplayDown          bool
	PlaySuppressed      bool // dead-ball foul: play yards are discarded, clock stopped
	EnforcedPenalty     *model.Penalty
}

// Enforce runs the algorithm in spec §4.7 against the accepted penalties on
// a play. fieldPosition is the offense's distance from its own goal line at
// the snap (not the absolute field position); rawYards is the yardage the play produced with no penalty applied;
// possessionChanged reports whether the play itself (independent of
// penalty) changed possession, used by the offsetting exception.
func Enforce(fieldPosition int, rawYards int, possessionChanged bool, penalties []model.Penalty) Result {
	accepted := make([]model.Penalty, 0, len(penalties))
	for _, p := range penalties {
		if p.Accepted {
			accepted = append(accepted, p)
		}
	}

	var offense, defense []model.Penalty
	for _, p := range accepted {
		if p.OnTeam == model.PossessionNone {
			continue
		}
		rule := model.PenaltyCatalog[p.Kind]
		if rule.OnDefense {
			defense = append(defense, p)
		} else {
			offense = append(offense, p)
		}
	}

	if len(offense) > 0 && len(defense) > 0 {
		if major, ok := offsettingException(offense, defense, possessionChanged); ok {
			return enforceSingle(fieldPosition, rawYards, []model.Penalty{major}, false)
		}
		return Result{NetYards: 0, ReplayDown: true, Offsetting: true}
	}

	if len(offense) > 0 {
		return enforceSingle(fieldPosition, rawYards, offense, false)
	}
	if len(defense) > 0 {
		return enforceSingle(fieldPosition, rawYards, defense, true)
	}

	return Result{NetYards: rawYards}
}

// offsettingException implements the 2024 offsetting exception (spec §4.7
// step 2): a major (>=15yd) offensive foul with no change of possession,
// combined with only minor (<=5yd) defensive fouls, does not offset;
// enforce the major offensive foul alone.
func offsettingException(offense, defense []model.Penalty, possessionChanged bool) (model.Penalty, bool) {
	if possessionChanged {
		return model.Penalty{}, false
	}
	major, hasMajorOffense := greatestYardage(offense)
	if !hasMajorOffense || major.Yards < 15 {
		return model.Penalty{}, false
	}
	for _, d := range defense {
		if d.Yards > 5 {
			return model.Penalty{}, false
		}
	}
	return major, true
}

// greatestYardage selects the penalty with the greatest yardage, breaking
// ties by occurrence phase Before < During < After (spec §4.7 step 3).
func greatestYardage(penalties []model.Penalty) (model.Penalty, bool) {
	if len(penalties) == 0 {
		return model.Penalty{}, false
	}
	sorted := append([]model.Penalty(nil), penalties...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Yards != sorted[j].Yards {
			return sorted[i].Yards > sorted[j].Yards
		}
		return sorted[i].Phase < sorted[j].Phase
	})
	return sorted[0], true
}

func enforceSingle(fieldPosition, rawYards int, teamPenalties []model.Penalty, onDefense bool) Result {
	chosen, _ := greatestYardage(teamPenalties)
	rule := model.PenaltyCatalog[chosen.Kind]

	applied := halfDistanceCapped(fieldPosition, chosen.Yards, onDefense)

	res := Result{EnforcedPenalty: &chosen}

	if rule.DeadBall {
		res.PlaySuppressed = true
		res.NetYards = 0
		if onDefense {
			res.NetYards = applied
		} else {
			res.NetYards = -applied
		}
		res.AutomaticFirstDown = onDefense && !rule.NoAutomaticFirstDown
		return res
	}

	switch rule.Spot {
	case model.SpotFoul:
		// Spot fouls replace the play's own yardage with the foul's spot
		// yardage (spec §4.7 step 5).
		if onDefense {
			res.NetYards = applied
		} else {
			res.NetYards = -applied
		}
	default:
		if onDefense {
			res.NetYards = rawYards + applied
		} else {
			res.NetYards = rawYards - applied
		}
	}

	if onDefense {
		res.AutomaticFirstDown = !rule.NoAutomaticFirstDown
	}
	if !onDefense && rule.LossOfDown {
		res.LossOfDown = true
	}

	return res
}

// halfDistanceCapped applies spec §4.7 step 4: an offensive foul's applied
// yardage is capped at floor(fieldPosition/2); a defensive foul's is capped
// at floor((100-fieldPosition)/2).
func halfDistanceCapped(fieldPosition, yards int, onDefense bool) int {
	var cap int
	if onDefense {
		cap = (100 - fieldPosition) / 2
	} else {
		cap = fieldPosition / 2
	}
	if yards > cap {
		return cap
	}
	return yards
}

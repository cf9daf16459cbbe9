// Package playexec implements the play executors of spec §4.6: Run, Pass,
// Kickoff, Punt, FieldGoal. Each executor is a strict, ordered sequence of
// skill checks (internal/skillcheck) over lineup power (internal/attributes)
// producing a fully-populated model.Play. Ordering is a behavioral contract
// — see each executor's doc comment — because it is externally observable
// via the random stream (spec §5, §8).
//
// Grounded on the teacher's generatePlayerGameStats per-position dispatch
// switch (collectPlayerAttributes.go), generalized here from "one stat line
// per position" into "one ordered skill-check sequence per play type".
package playexec

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Context bundles everything an executor needs beyond the random source:
// the offense/defense lineups for the relevant units and the game state the
// skill checks read from (field position, down, distance).
type Context struct {
	Game *model.Game

	Offense *model.Team
	Defense *model.Team

	// OffenseUnit/DefenseUnit pick which of Team's eight depth charts to
	// field; PrePlay (internal/flow) sets these per play type (e.g.
	// DepthChartKickoffCoverage for the kicking team on a kickoff).
	OffenseUnit model.DepthChartUnit
	DefenseUnit model.DepthChartUnit

	// Decider supplies the decision engines a kickoff/punt/FG executor
	// needs mid-play (fair catch, onside). It is never nil in practice;
	// internal/flow constructs one Decider per simulation and threads it
	// through every Context.
	Decider *decision.Decider
}

// OffenseLineup resolves the offense's fielded unit.
func (c Context) OffenseLineup() []model.Player { return c.Offense.Lineup(c.OffenseUnit) }

// DefenseLineup resolves the defense's fielded unit.
func (c Context) DefenseLineup() []model.Player { return c.Defense.Lineup(c.DefenseUnit) }

// OffensePossession reports which of Home/Away is currently on offense.
func (c Context) OffensePossession() model.Possession {
	if c.Offense == c.Game.Home {
		return model.PossessionHome
	}
	return model.PossessionAway
}

// DefensePossession reports which of Home/Away is currently on defense.
func (c Context) DefensePossession() model.Possession {
	return c.OffensePossession().Opponent()
}

// best returns the highest-scoring player at any of the given positions by
// f, or (zero, false) if none are eligible. Ties favor the lower depth
// slot (the starter), mirroring how a depth chart is meant to be read.
func best(lineup []model.Player, f func(model.Player) float64, positions ...model.Position) (model.Player, bool) {
	eligible := model.PlayersAtPositions(lineup, positions...)
	if len(eligible) == 0 {
		return model.Player{}, false
	}
	top := eligible[0]
	topScore := f(top)
	for _, p := range eligible[1:] {
		if s := f(p); s > topScore || (s == topScore && p.DepthSlot < top.DepthSlot) {
			top, topScore = p, s
		}
	}
	return top, true
}

func quarterback(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Passing) }, model.QB)
}

func ballCarrier(lineup []model.Player) (model.Player, bool) {
	if p, ok := best(lineup, func(p model.Player) float64 { return float64(p.Skill.Rushing) }, model.RB, model.FB); ok {
		return p, true
	}
	return quarterback(lineup)
}

func receiver(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Catching) }, model.WR, model.TE, model.RB)
}

func tackler(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Tackling) }, model.LB, model.DT, model.DE, model.CB, model.S, model.FS, model.OLB)
}

func kicker(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Kicking) }, model.K)
}

func punter(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Kicking) }, model.P)
}

func returner(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Physical.Speed) + float64(p.Physical.Agility) }, model.WR, model.RB, model.CB, model.S)
}

func longSnapper(lineup []model.Player) (model.Player, bool) {
	return best(lineup, func(p model.Player) float64 { return float64(p.Skill.Blocking) }, model.LS, model.C)
}

// distanceToGoalFrom mirrors model.Game.DistanceToGoal but for an arbitrary
// absolute field position, used when a turnover or return hands the ball to
// a team whose attacking direction differs from the prior offense's.
func distanceToGoalFrom(pos int, forOffense model.Possession) int {
	if forOffense == model.PossessionHome {
		return 100 - pos
	}
	return pos
}

// ownGoalDistance is a team's distance from its OWN goal line (as opposed
// to distanceToGoalFrom, which measures distance to the goal it scores on).
// Used for decision.FairCatchContext.FieldPosition, which the decision
// engine documents as "returner's distance from their own goal line".
func ownGoalDistance(pos int, team model.Possession) int {
	return 100 - distanceToGoalFrom(pos, team)
}

// scoringGoalLine is the absolute field position of the goal line a team
// scores by crossing.
func scoringGoalLine(team model.Possession) int {
	if team == model.PossessionHome {
		return 100
	}
	return 0
}

func ids(players ...model.Player) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

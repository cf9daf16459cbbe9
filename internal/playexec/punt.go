package playexec

import (
	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// BadSnapBase is the punt-snap failure rate, shifted by the long snapper's
// blocking rating. Named as a play-type constant alongside KickInjuryBase
// and PassInjuryBase; the spec names the bad-snap check (§4.6) but not its
// base rate.
const BadSnapBase = 0.02

// ExecutePunt runs the Punt play executor (spec §4.6), in order:
//
//  1. bad-snap check, depending on the long snapper
//  2. block check
//  3. distance
//  4. hang time
//  5. fair-catch decision
//  6. if returned: return yards; otherwise downed/out-of-bounds end-states
func ExecutePunt(src rng.Source, ctx Context) (model.Play, error) {
	puntingTeam := ctx.OffenseLineup()
	returningTeam := ctx.DefenseLineup()

	p, havePunter := punter(puntingTeam)
	if !havePunter {
		return model.Play{}, model.ContractViolation("punt", "punter")
	}
	snapper, _ := longSnapper(puntingTeam)
	ret, haveReturner := returner(returningTeam)

	detail := &model.PuntDetail{Punter: p.ID, Returner: ret.ID}

	badSnapP := distributions.ClampFloat(BadSnapBase-float64(snapper.Skill.Blocking)/2000, 0.002, 0.05)
	src.Trace("punt_bad_snap_check")
	badSnap := src.Float64() < badSnapP

	rushPower := attributesPuntRushPower(returningTeam)
	blockPower := float64(p.Skill.Kicking)

	var spotAbsolute int
	var elapsed float64
	var injuries []model.Injury

	switch {
	case badSnap:
		loss := distributions.UniformInt(src, 5, 15)
		detail.Distance = 0
		spotAbsolute = advance(ctx.Game.FieldPosition, -loss, ctx.OffensePossession())
		elapsed = distributions.UniformFloat(src, 4, 7)

	case skillcheck.KickBlockCheck(src, rushPower, blockPower):
		detail.Blocked = true
		recoverer, _ := tackler(returningTeam)
		outOfBounds, recoveredByPuntingTeam := skillcheck.FumbleRecoveredByOffense(src, skillcheck.BounceForward, float64(p.Physical.Awareness), float64(recoverer.Physical.Awareness))
		detail.BlockRecoveredByDefense = !outOfBounds && !recoveredByPuntingTeam
		spotAbsolute = ctx.Game.FieldPosition
		elapsed = distributions.UniformFloat(src, 3, 5)

	default:
		distanceCovered := 100 - ctx.Game.DistanceToGoal(ctx.OffensePossession())
		dist := skillcheck.PuntDistance(src, float64(p.Skill.Kicking), distanceCovered)
		detail.Distance = dist
		hang := skillcheck.PuntHangTime(src, dist)
		detail.HangTime = hang

		landingSpot := advance(ctx.Game.FieldPosition, dist, ctx.OffensePossession())
		if landingSpot >= 100 {
			landingSpot = 100
		}
		if landingSpot <= 0 {
			landingSpot = 0
		}

		if haveReturner {
			fc := ctx.Decider.FairCatch(src, decision.FairCatchContext{
				HangTimeSeconds: hang,
				IsKickoff:       false,
				FieldPosition:   ownGoalDistance(landingSpot, ctx.DefensePossession()),
			})
			if fc == decision.CallFairCatch {
				detail.FairCatchCalled = true
				spotAbsolute = landingSpot
				elapsed = distributions.UniformFloat(src, 6, 9)
			} else if skillcheck.MuffedCatch(src, float64(ret.Skill.Catching)) {
				recoverer, _ := tackler(puntingTeam)
				outOfBounds, recoveredByReturningTeam := skillcheck.FumbleRecoveredByOffense(src, skillcheck.BounceForward, float64(ret.Physical.Awareness), float64(recoverer.Physical.Awareness))
				spotAbsolute = landingSpot
				detail.BlockRecoveredByDefense = !outOfBounds && !recoveredByReturningTeam
				elapsed = distributions.UniformFloat(src, 5, 8)
			} else {
				coverage := attributesPuntCoverage(puntingTeam)
				retYards := skillcheck.PuntReturnYards(src, float64(ret.Physical.Speed)+float64(ret.Physical.Agility), coverage)
				detail.ReturnYards = retYards
				spotAbsolute = advance(landingSpot, retYards, ctx.DefensePossession())
				elapsed = distributions.UniformFloat(src, 8, 12)
			}
		} else {
			detail.Downed = true
			spotAbsolute = landingSpot
			elapsed = distributions.UniformFloat(src, 6, 9)
		}
	}

	coverage, _ := topTacklers(puntingTeam, 2)
	for _, c := range coverage {
		if skillcheck.InjuryCheck(src, KickInjuryBase, float64(c.Physical.Fragility), 1.0) {
			injuries = append(injuries, model.Injury{Description: "punt coverage contact", OccurredPlay: -1})
		}
	}

	play := model.Play{
		Kind:               model.PlayPunt,
		StartFieldPosition: ctx.Game.FieldPosition,
		Down:               ctx.Game.Down,
		YardsToGo:          ctx.Game.YardsToGo,
		Possession:         ctx.OffensePossession(),
		ElapsedSeconds:     elapsed,
		Injuries:           injuries,
		EndFieldPosition:   spotAbsolute,
		OffensivePlayers:   ids(puntingTeam...),
		DefensivePlayers:   ids(returningTeam...),
		Punt:               detail,
	}
	return play, nil
}

// attributesPuntRushPower and attributesPuntCoverage approximate a
// return-team punt-rush/coverage unit power, mirroring
// internal/attributes's weighted-average-over-eligible-positions pattern
// without requiring a dedicated depth chart unit for punt rush/coverage.
func attributesPuntRushPower(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.DE, model.DT, model.LB, model.CB, model.S)
	if len(eligible) == 0 {
		return 50
	}
	total := 0.0
	for _, p := range eligible {
		total += float64(p.Skill.Blocking)
	}
	return total / float64(len(eligible))
}

func attributesPuntCoverage(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.WR, model.LB, model.CB, model.S, model.FS)
	if len(eligible) == 0 {
		return 50
	}
	total := 0.0
	for _, p := range eligible {
		total += float64(p.Skill.Tackling)
	}
	return total / float64(len(eligible))
}

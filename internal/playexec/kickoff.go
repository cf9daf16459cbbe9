package playexec

import (
	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// KickInjuryBase is the documented per-play base rate for coverage-team
// injury rolls on kicks.
const KickInjuryBase = 0.008

// OnsideRecoveryBase is the kicking team's recovery probability on an
// attempted onside kick. The spec names the onside-kick attempt decision
// (§4.8) but not the recovery check's own base rate; 0.12 mirrors NFL
// onside-recovery history closely enough for a tuning default.
const OnsideRecoveryBase = 0.12

// ExecuteKickoff runs the Kickoff play executor (spec §4.6): onside
// decision, distance or onside-recovery check, fair-catch decision,
// muffed-catch check, return yards, touchback logic, coverage-team injury
// rolls.
func ExecuteKickoff(src rng.Source, ctx Context, trailingBy int) (model.Play, error) {
	kickingTeamLineup := ctx.OffenseLineup()
	receivingTeamLineup := ctx.DefenseLineup()

	k, haveKicker := kicker(kickingTeamLineup)
	if !haveKicker {
		return model.Play{}, model.ContractViolation("kickoff", "kicker")
	}
	ret, _ := returner(receivingTeamLineup)

	detail := &model.KickoffDetail{Kicker: k.ID, Returner: ret.ID}

	onsideDecision := ctx.Decider.Onside(src, decision.OnsideContext{TrailingBy: trailingBy})
	detail.Onside = onsideDecision == decision.AttemptOnside

	var spotAbsolute int
	var elapsed float64

	if detail.Onside {
		src.Trace("onside_recovery")
		recovered := src.Float64() < OnsideRecoveryBase
		detail.OnsideRecovered = recovered
		detail.KickDistance = distributions.UniformInt(src, 8, 12)
		spotAbsolute = onsideSpot(ctx, detail.KickDistance)
		elapsed = distributions.UniformFloat(src, 6, 10)
	} else {
		dist := skillcheck.KickoffDistance(src, float64(k.Skill.Kicking))
		detail.KickDistance = dist
		landingSpot := kickLandingSpot(ctx, dist)

		if landingSpot >= 100 || landingSpot <= 0 {
			detail.Touchback = true
			spotAbsolute = touchbackSpot(ctx)
			elapsed = distributions.UniformFloat(src, 4, 6)
		} else {
			hangTime := distributions.UniformFloat(src, 3.5, 4.5)
			fc := ctx.Decider.FairCatch(src, decision.FairCatchContext{
				HangTimeSeconds: hangTime,
				IsKickoff:       true,
				FieldPosition:   ownGoalDistance(landingSpot, ctx.DefensePossession()),
			})
			if fc == decision.CallFairCatch {
				detail.FairCatchCalled = true
				spotAbsolute = landingSpot
				elapsed = distributions.UniformFloat(src, 5, 7)
			} else {
				if skillcheck.MuffedCatch(src, float64(ret.Skill.Catching)) {
					detail.Muffed = true
					spotAbsolute = landingSpot
					elapsed = distributions.UniformFloat(src, 5, 8)
				} else {
					retYards := skillcheck.KickoffReturnYards(src, float64(ret.Physical.Speed), float64(ret.Physical.Agility))
					detail.ReturnYards = retYards
					spotAbsolute = advance(landingSpot, retYards, ctx.DefensePossession())
					elapsed = distributions.UniformFloat(src, 8, 14)
				}
			}
		}
	}

	var injuries []model.Injury
	coverage, _ := topTacklers(kickingTeamLineup, 2)
	for _, c := range coverage {
		if skillcheck.InjuryCheck(src, KickInjuryBase, float64(c.Physical.Fragility), 1.1) {
			injuries = append(injuries, model.Injury{Description: "kickoff coverage contact", OccurredPlay: -1})
		}
	}

	play := model.Play{
		Kind:               model.PlayKickoff,
		StartFieldPosition: ctx.Game.FieldPosition,
		Down:               model.DownNone,
		Possession:         ctx.OffensePossession(),
		ElapsedSeconds:     elapsed,
		Injuries:           injuries,
		EndFieldPosition:   spotAbsolute,
		OffensivePlayers:   ids(kickingTeamLineup...),
		DefensivePlayers:   ids(receivingTeamLineup...),
		Kickoff:            detail,
	}
	return play, nil
}

// kickLandingSpot converts a kick distance into an absolute field position
// in the kicking team's direction of travel.
func kickLandingSpot(ctx Context, distance int) int {
	if ctx.OffensePossession() == model.PossessionHome {
		return ctx.Game.FieldPosition + distance
	}
	return ctx.Game.FieldPosition - distance
}

func onsideSpot(ctx Context, distance int) int {
	return kickLandingSpot(ctx, distance)
}

// touchbackSpot is the receiving team's 25 yard line, expressed as an
// absolute field position in the direction the receiving team attacks.
func touchbackSpot(ctx Context) int {
	if ctx.DefensePossession() == model.PossessionHome {
		return 25
	}
	return 75
}

// advance moves an absolute field position by yards in the given team's
// attacking direction.
func advance(spot, yards int, attacker model.Possession) int {
	if attacker == model.PossessionHome {
		return spot + yards
	}
	return spot - yards
}

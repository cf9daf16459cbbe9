package playexec

import (
	"github.com/brahedrick/gridiron-sim/internal/attributes"
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// PassInjuryBase is the documented per-play base rate fed into
// skillcheck.InjuryCheck for pass-play participants.
const PassInjuryBase = 0.010

// selectPassType picks a pass depth bucket from down and distance, the
// "pass-type selection based on down/distance" step of spec §4.6. Short-
// yardage downs favor short throws; long-yardage downs favor deeper ones.
// The exact thresholds aren't specified by the spec; this mirrors the
// fourth-down distance buckets already used elsewhere in the engine.
func selectPassType(src rng.Source, distance int) distributions.PassType {
	var weights [4]float64 // Screen, Short, Medium, Deep
	switch {
	case distance <= 3:
		weights = [4]float64{0.35, 0.45, 0.15, 0.05}
	case distance <= 7:
		weights = [4]float64{0.15, 0.45, 0.30, 0.10}
	case distance <= 12:
		weights = [4]float64{0.05, 0.30, 0.45, 0.20}
	default:
		weights = [4]float64{0.05, 0.20, 0.35, 0.40}
	}
	src.Trace("pass_type_selection")
	r := src.Float64()
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return distributions.PassType(i)
		}
	}
	return distributions.Deep
}

// ExecutePass runs the Pass play executor (spec §4.6), in order:
//
//  1. pre-snap penalty check
//  2. protection check (false ⇒ sack branch: sack yards, fumble-on-sack
//     check, injury on sacker/passer)
//  3. pass-type selection based on down/distance
//  4. completion check
//  5. if incomplete: interception check (true ⇒ interceptor selection +
//     return, with potential pick-six and fumble-on-return)
//  6. if complete: air yards, YAC
//  7. coverage penalty (DPI/holding)
//  8. tackle penalty
//  9. injury checks
//  10. fumble after catch
//  11. elapsed time
func ExecutePass(src rng.Source, ctx Context) (model.Play, error) {
	offense := ctx.OffenseLineup()
	defense := ctx.DefenseLineup()

	blockPower := attributes.PassBlockPower(offense)
	rushPower := attributes.PassRushPower(defense)
	covPower := attributes.CoveragePower(defense)
	rushCount := len(model.PlayersAtPositions(defense, model.DT, model.DE, model.LB, model.OLB))
	pressureFactor := attributes.DefensivePressureFactor(rushPower, blockPower, rushCount)

	passer, _ := quarterback(offense)
	target, haveTarget := receiver(offense)

	var penalties []model.Penalty
	if p, ok := maybeDrawPenalty(src, model.FalseStart, ctx.OffensePossession(), offense, model.PhaseBefore); ok {
		penalties = append(penalties, p)
	}

	protectionHeld := skillcheck.PassProtection(src, blockPower, rushPower)

	detail := &model.PassDetail{Passer: passer.ID, PrimaryTarget: target.ID}
	var injuries []model.Injury
	var fumbles []model.PlaySegment
	var yards int
	var elapsed float64

	if !protectionHeld {
		sackYards := skillcheck.SackYardsClamped(src, ctx.Game.FieldPosition, possessorGoal(ctx))
		yards = sackYards
		detail.Sacked = true

		tack, _ := tackler(defense)
		detail.Sacker = tack.ID
		gangTackle := false
		if skillcheck.FumbleOnSack(src, float64(passer.Physical.Awareness), 100*(rushPower-blockPower)/100, gangTackle) {
			fumbles = append(fumbles, model.PlaySegment{Kind: model.SegmentRun, Carrier: passer.ID, Fumbled: true})
		}
		if skillcheck.InjuryCheck(src, PassInjuryBase, float64(passer.Physical.Fragility), 1.3) {
			injuries = append(injuries, model.Injury{Description: "sacked", OccurredPlay: -1})
		}
		if skillcheck.InjuryCheck(src, PassInjuryBase, float64(tack.Physical.Fragility), 1.0) {
			injuries = append(injuries, model.Injury{Description: "pass rush contact", OccurredPlay: -1})
		}
		elapsed = distributions.UniformFloat(src, 3, 5)
	} else {
		passType := selectPassType(src, ctx.Game.YardsToGo)
		detail.PassType = int(passType)

		completed := skillcheck.PassCompletion(src, float64(passer.Skill.Passing), covPower, pressureFactor)
		detail.Completed = completed

		if !completed {
			intercepted := skillcheck.InterceptionOnIncomplete(src, covPower, float64(passer.Skill.Passing), pressureFactor)
			detail.Intercepted = intercepted
			if intercepted {
				interceptor, _ := tackler(defense)
				retYards := distributions.UniformInt(src, -2, 20)
				distanceToScore := distanceToGoalFrom(ctx.Game.FieldPosition, ctx.DefensePossession())
				pickSix := retYards >= distanceToScore
				fumbledOnReturn := skillcheck.FumbleNormal(src, float64(interceptor.Physical.Awareness), 0, false)
				detail.Interception = &model.InterceptionDetail{
					Interceptor:     interceptor.ID,
					ReturnYards:     retYards,
					PickSix:         pickSix,
					FumbledOnReturn: fumbledOnReturn,
				}
				yards = 0
			}
		} else {
			air := skillcheck.AirYards(src, passType, attributes.Modifier(float64(passer.Skill.Passing)-covPower), ctx.Game.DistanceToGoal(ctx.OffensePossession()))
			detail.AirYards = air
			yards = air
			if haveTarget && skillcheck.YACOpportunity(src, float64(target.Skill.Catching)) {
				yac := skillcheck.YAC(src, float64(target.Physical.Speed), float64(target.Physical.Agility), float64(target.Skill.Rushing))
				detail.YardsAfterCatch = yac
				yards += yac
			}
		}

		if p, ok := maybeDrawPenalty(src, model.DefensivePassInterference, ctx.DefensePossession(), defense, model.PhaseDuring); ok {
			penalties = append(penalties, p)
		}
		if p, ok := maybeDrawPenalty(src, model.PersonalFoulDefense, ctx.DefensePossession(), defense, model.PhaseAfter); ok {
			penalties = append(penalties, p)
		}

		if completed && !detail.Intercepted {
			if haveTarget && skillcheck.InjuryCheck(src, PassInjuryBase, float64(target.Physical.Fragility), 1.0) {
				injuries = append(injuries, model.Injury{Description: "pass reception contact", OccurredPlay: -1})
			}
			if haveTarget && skillcheck.FumbleNormal(src, float64(target.Physical.Awareness), 100*(rushPower-blockPower)/100, false) {
				fumbles = append(fumbles, model.PlaySegment{Kind: model.SegmentPass, Carrier: target.ID, Fumbled: true})
			}
		}
		elapsed = distributions.UniformFloat(src, 5, 8)
	}

	play := model.Play{
		Kind:               model.PlayPass,
		StartFieldPosition: ctx.Game.FieldPosition,
		Down:               ctx.Game.Down,
		YardsToGo:          ctx.Game.YardsToGo,
		Possession:         ctx.OffensePossession(),
		YardsGained:        yards,
		Interception:       detail.Intercepted,
		ElapsedSeconds:     elapsed,
		Penalties:          penalties,
		Injuries:           injuries,
		Fumbles:            fumbles,
		OffensivePlayers:   ids(offense...),
		DefensivePlayers:   ids(defense...),
		Pass:               detail,
	}
	return play, nil
}

func possessorGoal(ctx Context) int {
	if ctx.OffensePossession() == model.PossessionHome {
		return 0
	}
	return 100
}

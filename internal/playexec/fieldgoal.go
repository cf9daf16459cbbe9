package playexec

import (
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// ExecuteFieldGoal runs the FieldGoal play executor (spec §4.6), in order:
//
//  1. block check
//  2. make check, depending on distance and kicker.Kicking
//  3. if missed and the block was recovered by the defense, blocked-FG
//     return yards
func ExecuteFieldGoal(src rng.Source, ctx Context) (model.Play, error) {
	offense := ctx.OffenseLineup()
	defense := ctx.DefenseLineup()

	k, haveKicker := kicker(offense)
	if !haveKicker {
		return model.Play{}, model.ContractViolation("field_goal", "kicker")
	}
	snapper, _ := longSnapper(offense)

	distanceYards := ctx.Game.DistanceToGoal(ctx.OffensePossession()) + 17 // line of scrimmage to holder, plus end zone depth

	rushPower := attributesPuntRushPower(defense)
	blockPower := float64(k.Skill.Kicking) + float64(snapper.Skill.Blocking)/2

	detail := &model.FieldGoalDetail{Kicker: k.ID, DistanceYards: distanceYards}
	var spotAbsolute int
	var elapsed float64
	var injuries []model.Injury

	if skillcheck.KickBlockCheck(src, rushPower, blockPower) {
		detail.Blocked = true
		recoverer, _ := tackler(defense)
		outOfBounds, recoveredByOffense := skillcheck.FumbleRecoveredByOffense(src, skillcheck.BounceForward, float64(k.Physical.Awareness), float64(recoverer.Physical.Awareness))
		detail.BlockRecoveredByDefense = !outOfBounds && !recoveredByOffense

		if detail.BlockRecoveredByDefense {
			retYards := skillcheck.DefensiveFumbleReturnYards(src, float64(recoverer.Skill.Tackling))
			detail.ReturnYards = retYards
			spotAbsolute = advance(ctx.Game.FieldPosition, retYards, ctx.DefensePossession())
		} else {
			spotAbsolute = ctx.Game.FieldPosition
		}
		elapsed = distributions.UniformFloat(src, 3, 5)
	} else {
		made := skillcheck.FieldGoalMake(src, distanceYards, float64(k.Skill.Kicking))
		detail.Made = made
		if made {
			spotAbsolute = scoringGoalLine(ctx.OffensePossession())
		} else {
			spotAbsolute = ctx.Game.FieldPosition
		}
		elapsed = distributions.UniformFloat(src, 4, 6)
	}

	play := model.Play{
		Kind:               model.PlayFieldGoal,
		StartFieldPosition: ctx.Game.FieldPosition,
		Down:               ctx.Game.Down,
		YardsToGo:          ctx.Game.YardsToGo,
		Possession:         ctx.OffensePossession(),
		ElapsedSeconds:     elapsed,
		Injuries:           injuries,
		EndFieldPosition:   spotAbsolute,
		OffensivePlayers:   ids(offense...),
		DefensivePlayers:   ids(defense...),
		FieldGoal:          detail,
	}
	return play, nil
}

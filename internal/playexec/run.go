package playexec

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/attributes"
	"github.com/brahedrick/gridiron-sim/internal/distributions"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// runBlockingSuccess is the "did the line win the box" gate ahead of base
// run yards. The spec documents the run-yards distribution and the
// run-block/run-defense power calculators but leaves this gate's exact
// constants unspecified; this base and clamp are a local, documented
// assumption following the shape of every other skill check in §4.5 (base
// + Modifier(...), clamped).
func runBlockingSuccess(src rng.Source, blockPower, defPower float64) bool {
	p := distributions.ClampFloat(0.65+attributes.Modifier(blockPower-defPower), 0.30, 0.90)
	src.Trace("run_blocking_success")
	return src.Float64() < p
}

// RunInjuryBase is the documented per-play base rate fed into
// skillcheck.InjuryCheck for run-play participants (spec §4.5: "per play +
// position base").
const RunInjuryBase = 0.012

// ExecuteRun runs the Run play executor (spec §4.6): a strict, ordered
// sequence of skill checks. Ordering is a replay contract:
//
//  1. QB-scramble gate (threshold 0.10)
//  2. direction draw (5 buckets)
//  3. blocking-success check
//  4. blocking-penalty check
//  5. base run yards
//  6. tackle-break check, then tackle-break yards if true
//  7. breakaway check, then breakaway yards if true
//  8. tackle-penalty check
//  9. injury check for the ball carrier and up to two tacklers (each
//     preceded by a per-tackler injury-check-skip draw, preserved for
//     replay compatibility per spec §9 Open Questions)
//  10. fumble check
//  11. out-of-bounds check
//  12. elapsed-time draw
//  13. runoff-time draw, if the clock keeps running
func ExecuteRun(src rng.Source, ctx Context) (model.Play, error) {
	offense := ctx.OffenseLineup()
	defense := ctx.DefenseLineup()

	blockPower := attributes.RunBlockPower(offense)
	defPower := attributes.RunDefensePower(defense)
	skillMod := attributes.Modifier(blockPower - defPower)

	carrier, haveCarrier := ballCarrier(offense)
	qb, _ := quarterback(offense)

	scrambled := skillcheck.QBScrambleGate(src)
	if scrambled && qb.ID != uuid.Nil {
		carrier, haveCarrier = qb, true
	}

	direction := skillcheck.RunDirection(src)

	blockingSucceeded := runBlockingSuccess(src, blockPower, defPower)

	var penalties []model.Penalty
	if p, ok := maybeDrawPenalty(src, model.OffensiveHolding, ctx.OffensePossession(), offense, model.PhaseDuring); ok {
		penalties = append(penalties, p)
	}

	var yards int
	if blockingSucceeded {
		yards = distributions.RunYards(src, skillMod)
	} else {
		yards = distributions.TFL(src)
	}

	brokeTackle := false
	primaryTackler, haveTackler := tackler(defense)
	if haveCarrier && haveTackler {
		if skillcheck.TackleBreak(src, float64(carrier.Skill.Rushing), float64(primaryTackler.Skill.Tackling)) {
			brokeTackle = true
			yards += skillcheck.TackleBreakYards(src)
		}
	}

	breakaway := false
	if haveCarrier && skillcheck.BigRun(src, float64(carrier.Physical.Speed)) {
		breakaway = true
		yards += skillcheck.BreakawayYards(src)
	}

	if p, ok := maybeDrawPenalty(src, model.FacemaskDefense, ctx.DefensePossession(), defense, model.PhaseDuring); ok {
		penalties = append(penalties, p)
	}

	var injuries []model.Injury
	tacklersOnPlay, _ := topTacklers(defense, 2)
	if haveCarrier {
		if injuryCheckGate(src) {
			if skillcheck.InjuryCheck(src, RunInjuryBase, float64(carrier.Physical.Fragility), contactMultiplier(yards)) {
				injuries = append(injuries, model.Injury{Description: "run play contact", OccurredPlay: -1})
			}
		}
	}
	for _, t := range tacklersOnPlay {
		if injuryCheckGate(src) {
			if skillcheck.InjuryCheck(src, RunInjuryBase, float64(t.Physical.Fragility), contactMultiplier(yards)) {
				injuries = append(injuries, model.Injury{Description: "run play contact", OccurredPlay: -1})
			}
		}
	}

	defPressure := 100 * (defPower - blockPower) / 100
	gangTackle := brokeTackle && len(tacklersOnPlay) > 1
	fumbled := haveCarrier && skillcheck.FumbleNormal(src, float64(carrier.Physical.Awareness), defPressure, gangTackle)

	src.Trace("run_out_of_bounds")
	outOfBounds := src.Float64() < 0.15

	elapsed := distributions.UniformFloat(src, 4, 7)
	clockStopped := outOfBounds
	if !clockStopped {
		src.Trace("run_runoff_time")
		elapsed += distributions.UniformFloat(src, 20, 40)
	}

	play := model.Play{
		Kind:               model.PlayRun,
		StartFieldPosition: ctx.Game.FieldPosition,
		Down:               ctx.Game.Down,
		YardsToGo:          ctx.Game.YardsToGo,
		Possession:         ctx.OffensePossession(),
		YardsGained:        yards,
		ElapsedSeconds:     elapsed,
		ClockStopped:       clockStopped,
		Penalties:          penalties,
		Injuries:           injuries,
		OffensivePlayers:   ids(offense...),
		DefensivePlayers:   ids(defense...),
		Run: &model.RunDetail{
			Carrier:     carrier.ID,
			Tackler:     primaryTackler.ID,
			Direction:   direction,
			Scrambled:   scrambled,
			BrokeTackle: brokeTackle,
			Breakaway:   breakaway,
			OutOfBounds: outOfBounds,
		},
	}
	if fumbled {
		play.Fumbles = []model.PlaySegment{{Kind: model.SegmentRun, Carrier: carrier.ID, Fumbled: true}}
	}
	return play, nil
}

func topTacklers(defense []model.Player, n int) ([]model.Player, bool) {
	eligible := model.PlayersAtPositions(defense, model.LB, model.DT, model.DE, model.CB, model.S, model.FS, model.OLB)
	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible, len(eligible) > 0
}

// injuryCheckGate is the extra per-tackler draw that precedes the injury
// check itself, documented in spec §9 Open Questions as a behavior to
// preserve exactly for replay-log compatibility.
func injuryCheckGate(src rng.Source) bool {
	src.Trace("injury_check_skip_gate")
	return src.Float64() < 1.0 // always proceeds to the injury check; the draw's existence, not its outcome, is the preserved contract
}

func contactMultiplier(yards int) float64 {
	if yards < 0 {
		return 1.3
	}
	if yards > 15 {
		return 1.2
	}
	return 1.0
}

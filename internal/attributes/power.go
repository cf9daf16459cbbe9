package attributes

import "github.com/brahedrick/gridiron-sim/internal/model"

// PassBlockPower is the mean Blocking across {C,G,T,TE,RB,FB} on offense
// (spec §4.4).
func PassBlockPower(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.C, model.G, model.T, model.TE, model.RB, model.FB)
	return meanOf(eligible, func(p model.Player) float64 { return float64(p.Skill.Blocking) })
}

// RunBlockPower is the mean Blocking across {C,G,T,TE,FB} on offense
// (RB excluded per spec §4.4).
func RunBlockPower(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.C, model.G, model.T, model.TE, model.FB)
	return meanOf(eligible, func(p model.Player) float64 { return float64(p.Skill.Blocking) })
}

// PassRushPower is the mean of (Tackling+Speed+Strength)/3 across
// {DT,DE,LB,OLB} on defense (spec §4.4).
func PassRushPower(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.DT, model.DE, model.LB, model.OLB)
	return meanOf(eligible, func(p model.Player) float64 {
		return (float64(p.Skill.Tackling) + float64(p.Physical.Speed) + float64(p.Physical.Strength)) / 3
	})
}

// RunDefensePower mirrors PassRushPower (spec §4.4: "Run-defense mirrors
// pass-rush").
func RunDefensePower(lineup []model.Player) float64 {
	return PassRushPower(lineup)
}

// CoveragePower is the mean of (Coverage+Speed+Awareness)/3 across
// {CB,S,FS,LB} on defense (spec §4.4).
func CoveragePower(lineup []model.Player) float64 {
	eligible := model.PlayersAtPositions(lineup, model.CB, model.S, model.FS, model.LB)
	return meanOf(eligible, func(p model.Player) float64 {
		return (float64(p.Skill.Coverage) + float64(p.Physical.Speed) + float64(p.Physical.Awareness)) / 3
	})
}

// DefensivePressureFactor is the pass-play pressure multiplier:
// 1.0 + Modifier(rush-block) + 0.15*(rushCount-4), clamped to [0.0, 2.5]
// (spec §4.4).
func DefensivePressureFactor(rushPower, blockPower float64, rushCount int) float64 {
	f := 1.0 + Modifier(rushPower-blockPower) + 0.15*float64(rushCount-4)
	if f < 0 {
		return 0
	}
	if f > 2.5 {
		return 2.5
	}
	return f
}

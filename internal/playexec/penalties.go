package playexec

import (
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
)

// maybeDrawPenalty runs the preferred-pre-snap/in-play penalty check for a
// single PenaltyKind against the team fielding lineup, and returns a
// model.Penalty if it occurs. Discipline used is the mean of the fielded
// lineup's Discipline attribute — the spec's §4.5 "Preferred pre-snap
// penalty" check reduced by committer discipline/300, generalized here to
// the whole unit's discipline since no single "the committer" is chosen
// ahead of the check firing.
func maybeDrawPenalty(src rng.Source, kind model.PenaltyKind, onTeam model.Possession, lineup []model.Player, phase model.PenaltyPhase) (model.Penalty, bool) {
	rule, ok := model.PenaltyCatalog[kind]
	if !ok || len(lineup) == 0 {
		return model.Penalty{}, false
	}
	discipline := meanDiscipline(lineup)
	if !skillcheck.PreSnapPenalty(src, rule.BaseProbability, discipline) {
		return model.Penalty{}, false
	}
	committer := lineup[0].ID
	for _, p := range lineup {
		if p.DepthSlot == 0 {
			committer = p.ID
			break
		}
	}
	return model.Penalty{
		Kind:      kind,
		OnTeam:    onTeam,
		Committer: committer,
		Phase:     phase,
		Yards:     rule.Yards,
		Accepted:  false, // decided later by internal/decision.PenaltyAccept
	}, true
}

func meanDiscipline(lineup []model.Player) float64 {
	if len(lineup) == 0 {
		return model.DefaultAttributeValue
	}
	sum := 0
	for _, p := range lineup {
		sum += p.Mental.Discipline
	}
	return float64(sum) / float64(len(lineup))
}

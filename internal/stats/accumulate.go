// Package stats accumulates model.PlayerGameCounters from finished plays.
// Grounded on the teacher's walkThroughPlayerYear per-game loop, which
// accumulates a running FootballStats struct field-by-field from each
// game's generated stat line; here the loop runs once per finished Play
// instead of once per game, and the accumulation target is the player's
// PlayerGameCounters rather than a season total.
package stats

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Accumulate updates both rosters' PlayerGameCounters from a single finished
// play. It is safe to call exactly once per play, after penalty enforcement
// has finalized YardsGained and the touchdown/safety/turnover flags (spec
// §3 invariant 5: a Play is appended, and therefore accumulated, only once).
func Accumulate(game *model.Game, play model.Play) {
	switch play.Kind {
	case model.PlayRun:
		accumulateRun(game, play)
	case model.PlayPass:
		accumulatePass(game, play)
	case model.PlayKickoff:
		accumulateKickoff(game, play)
	case model.PlayPunt:
		accumulatePunt(game, play)
	case model.PlayFieldGoal:
		accumulateFieldGoal(game, play)
	}
	accumulatePenalties(game, play)
	accumulateFumbles(game, play)
}

func accumulateRun(game *model.Game, play model.Play) {
	if play.Run == nil {
		return
	}
	if carrier, ok := offenseOrDefensePlayer(game, play.Run.Carrier); ok {
		carrier.Counters.RushAttempts++
		carrier.Counters.RushYards += play.YardsGained
		if play.Touchdown {
			carrier.Counters.RushTDs++
		}
	}
	if tackler, ok := offenseOrDefensePlayer(game, play.Run.Tackler); ok {
		tackler.Counters.Tackles++
		if play.YardsGained < 0 {
			tackler.Counters.TacklesForLoss++
		}
	}
}

func accumulatePass(game *model.Game, play model.Play) {
	if play.Pass == nil {
		return
	}
	d := play.Pass

	if passer, ok := offenseOrDefensePlayer(game, d.Passer); ok {
		if d.Sacked {
			passer.Counters.Sacks++
			passer.Counters.SackYardsAllowed += -play.YardsGained
		} else {
			passer.Counters.PassAttempts++
			if d.Completed {
				passer.Counters.PassCompletions++
				passer.Counters.PassYards += play.YardsGained
				if play.Touchdown {
					passer.Counters.PassTDs++
				}
			}
			if d.Intercepted {
				passer.Counters.Interceptions++
			}
		}
	}

	if d.Sacked {
		if sacker, ok := offenseOrDefensePlayer(game, d.Sacker); ok {
			sacker.Counters.Tackles++
			sacker.Counters.TacklesForLoss++
		}
		return
	}

	if target, ok := offenseOrDefensePlayer(game, d.PrimaryTarget); ok {
		target.Counters.Targets++
		if d.Completed {
			target.Counters.Receptions++
			target.Counters.ReceivingYards += play.YardsGained
			if play.Touchdown {
				target.Counters.ReceivingTDs++
			}
		}
	}

	if d.Intercepted && d.Interception != nil {
		if interceptor, ok := offenseOrDefensePlayer(game, d.Interception.Interceptor); ok {
			interceptor.Counters.Interceptions++
			interceptor.Counters.ForcedFumbles += boolToInt(d.Interception.FumbledOnReturn)
		}
	}
}

func accumulateKickoff(game *model.Game, play model.Play) {
	if play.Kickoff == nil || play.Kickoff.ReturnYards == 0 {
		return
	}
	if returner, ok := offenseOrDefensePlayer(game, play.Kickoff.Returner); ok {
		returner.Counters.KickReturnYards += play.Kickoff.ReturnYards
	}
}

func accumulatePunt(game *model.Game, play model.Play) {
	if play.Punt == nil || play.Punt.ReturnYards == 0 {
		return
	}
	if returner, ok := offenseOrDefensePlayer(game, play.Punt.Returner); ok {
		returner.Counters.PuntReturnYards += play.Punt.ReturnYards
	}
}

func accumulateFieldGoal(game *model.Game, play model.Play) {
	if play.FieldGoal == nil {
		return
	}
	kicker, ok := offenseOrDefensePlayer(game, play.FieldGoal.Kicker)
	if !ok {
		return
	}
	kicker.Counters.FieldGoalsAttempted++
	if play.FieldGoal.Made {
		kicker.Counters.FieldGoalsMade++
	}
}

func accumulatePenalties(game *model.Game, play model.Play) {
	for _, p := range play.Penalties {
		if !p.Accepted {
			continue
		}
		if committer, ok := offenseOrDefensePlayer(game, p.Committer); ok {
			committer.Counters.PenaltiesCommitted++
		}
	}
}

func accumulateFumbles(game *model.Game, play model.Play) {
	for _, seg := range play.Fumbles {
		if !seg.Fumbled {
			continue
		}
		if carrier, ok := offenseOrDefensePlayer(game, seg.Carrier); ok {
			carrier.Counters.FumblesLost++
		}
		if seg.Recoverer != uuid.Nil {
			if recoverer, ok := offenseOrDefensePlayer(game, seg.Recoverer); ok {
				recoverer.Counters.FumbleRecoveries++
			}
		}
	}
}

// offenseOrDefensePlayer looks up a player by ID on whichever of Home/Away
// rosters carries them, returning a mutable pointer into that roster.
func offenseOrDefensePlayer(game *model.Game, id uuid.UUID) (*model.Player, bool) {
	if id == uuid.Nil {
		return nil, false
	}
	if p, ok := game.Home.PlayerByID(id); ok {
		return p, true
	}
	if p, ok := game.Away.PlayerByID(id); ok {
		return p, true
	}
	return nil, false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

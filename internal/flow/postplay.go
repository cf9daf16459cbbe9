package flow

import (
	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/penalty"
	"github.com/brahedrick/gridiron-sim/internal/skillcheck"
	"github.com/brahedrick/gridiron-sim/internal/stats"
)

// advance moves an absolute field position by yards in the given team's
// attacking direction, mirroring internal/playexec's private helper of the
// same name (that one isn't reachable from this package).
func advance(spot, yards int, attacker model.Possession) int {
	if attacker == model.PossessionHome {
		spot += yards
	} else {
		spot -= yards
	}
	return clampFieldPosition(spot)
}

// offenseRelative expresses an absolute field position as the offense's own
// distance from their own goal line, the convention internal/penalty.Enforce
// assumes its fieldPosition argument follows (spec §4.7).
func offenseRelative(pos int, offense model.Possession) int {
	if offense == model.PossessionAway {
		return 100 - pos
	}
	return pos
}

// resolveFumbles fills in Recoverer/OutOfBounds for any fumble segment the
// executor left unresolved (run and pass fumbles; kickoff/punt/field-goal
// fumbles are already fully resolved by their own executors). Reports
// whether the ball ended up with the defense.
func (s *Simulator) resolveFumbles(play *model.Play, offense, defense *model.Team, offenseTeam model.Possession) bool {
	recoveredByDefense := false
	for i := range play.Fumbles {
		seg := &play.Fumbles[i]
		if seg.Recoverer != uuid.Nil {
			continue // already resolved by its executor (kickoff/punt/FG block)
		}
		carrier, _ := offense.PlayerByID(seg.Carrier)
		defender, haveDefender := defense.PlayerByID(mostLikelyDefender(defense, offenseTeam))

		bounce, bounceYards := skillcheck.FumbleBounce(s.Source)
		offAware, defAware := 50.0, 50.0
		if carrier != nil {
			offAware = float64(carrier.Physical.Awareness)
		}
		if haveDefender && defender != nil {
			defAware = float64(defender.Physical.Awareness)
		}
		outOfBounds, recoveredByOffense := skillcheck.FumbleRecoveredByOffense(s.Source, bounce, offAware, defAware)
		seg.OutOfBounds = outOfBounds

		if recoveredByOffense {
			seg.Recoverer = seg.Carrier
			seg.Yards = bounceYards
			continue
		}
		recoveredByDefense = true
		if haveDefender {
			seg.Recoverer = defender.ID
			retYards := 0
			if !outOfBounds {
				retYards = skillcheck.DefensiveFumbleReturnYards(s.Source, float64(defender.Skill.Tackling))
			}
			seg.Yards = bounceYards + retYards
		} else {
			seg.Yards = bounceYards
		}
	}
	return recoveredByDefense
}

// mostLikelyDefender picks a plausible recovering defender: the first
// linebacker/defensive-back-ish player on the roster, falling back to the
// first rostered player. Flow has no lineup selection of its own (that
// lives, unexported, in internal/playexec), so this is necessarily a
// coarser pick than the executors' own tackler() helper.
func mostLikelyDefender(defense *model.Team, offenseTeam model.Possession) uuid.UUID {
	for _, p := range defense.Roster {
		switch p.Position {
		case model.LB, model.CB, model.S, model.FS, model.DE, model.DT, model.OLB:
			return p.ID
		}
	}
	if len(defense.Roster) > 0 {
		return defense.Roster[0].ID
	}
	return uuid.Nil
}

// finalizeRunOrPass computes the parts of a Run/Pass play its executor
// leaves for flow: final field position, touchdown/safety detection, and
// fumble/interception possession changes. Kickoff/Punt/FieldGoal already
// carry a final EndFieldPosition from their own executors.
func (s *Simulator) finalizeRunOrPass(play *model.Play, offenseTeam model.Possession, offense, defense *model.Team) {
	switch play.Kind {
	case model.PlayPass:
		if play.Pass != nil && play.Pass.Intercepted && play.Pass.Interception != nil {
			ic := play.Pass.Interception
			spot := advance(play.StartFieldPosition, ic.ReturnYards, offenseTeam.Opponent())
			if ic.FumbledOnReturn {
				play.Fumbles = append(play.Fumbles, model.PlaySegment{Kind: model.SegmentReturn, Carrier: ic.Interceptor})
				backToOffense := s.resolveFumbles(play, defense, offense, offenseTeam.Opponent())
				if backToOffense {
					play.PossessionChanged = false
					play.EndFieldPosition = spot
					return
				}
			}
			play.PossessionChanged = true
			play.EndFieldPosition = spot
			if ic.PickSix || spot == scoringGoalLine(offenseTeam.Opponent()) {
				play.Touchdown = true
			}
			return
		}
	}

	if len(play.Fumbles) > 0 {
		lostToDefense := s.resolveFumbles(play, offense, defense, offenseTeam)
		last := play.Fumbles[len(play.Fumbles)-1]
		spotAtFumble := advance(play.StartFieldPosition, play.YardsGained, offenseTeam)
		if lostToDefense {
			play.PossessionChanged = true
			attacker := offenseTeam.Opponent()
			play.EndFieldPosition = advance(spotAtFumble, last.Yards, attacker)
			if play.EndFieldPosition == scoringGoalLine(attacker) {
				play.Touchdown = true
			}
			return
		}
		play.EndFieldPosition = advance(spotAtFumble, last.Yards, offenseTeam)
		return
	}

	play.EndFieldPosition = advance(play.StartFieldPosition, play.YardsGained, offenseTeam)
	if play.EndFieldPosition == scoringGoalLine(offenseTeam) {
		play.Touchdown = true
	}
	if play.EndFieldPosition == scoringGoalLine(offenseTeam.Opponent()) {
		play.Safety = true
	}
}

// scoringGoalLine is the absolute field position a team scores a touchdown
// by reaching: 100 for Home, 0 for Away, matching internal/playexec's
// private helper of the same name.
func scoringGoalLine(team model.Possession) int {
	if team == model.PossessionHome {
		return 100
	}
	return 0
}

// penaltyAcceptContext builds the decision context for one penalty already
// drawn on the play.
func penaltyAcceptContext(play *model.Play, p model.Penalty, turnover, turnoverOnDowns bool) decision.PenaltyAcceptContext {
	rule := model.PenaltyCatalog[p.Kind]
	return decision.PenaltyAcceptContext{
		OnDefense:                    !rule.OnDefense,
		AutomaticFirstDown:           rule.OnDefense && !rule.NoAutomaticFirstDown,
		PlayAlreadyFirstDown:         play.YardsGained >= play.YardsToGo,
		PlayWasTurnover:              turnover,
		PlayWasTurnoverOnDowns:       turnoverOnDowns,
		PlayWasTouchdownByFouledTeam: play.Touchdown,
		LossOfDown:                   !rule.OnDefense && rule.LossOfDown,
		PenaltyYards:                 p.Yards,
		PlayYards:                    play.YardsGained,
	}
}

// applyPenalties runs the accept/decline decision over every drawn penalty,
// then enforces the accepted set, returning the penalty.Result and the
// field position it was computed against.
func (s *Simulator) applyPenalties(play *model.Play, offenseTeam model.Possession, turnover, turnoverOnDowns bool) penalty.Result {
	for i := range play.Penalties {
		ctx := penaltyAcceptContext(play, play.Penalties[i], turnover, turnoverOnDowns)
		play.Penalties[i].Accepted = s.Decider.PenaltyAccept(ctx) == decision.AcceptPenalty
	}
	fp := offenseRelative(play.StartFieldPosition, offenseTeam)
	return penalty.Enforce(fp, play.YardsGained, play.PossessionChanged, play.Penalties)
}

// postPlay is the PostPlay/OvertimePostPlay entry action: it finalizes the
// just-executed play (fumble/interception resolution, penalty
// accept/decline and enforcement, final field position and down/distance),
// records it, and decides the next state.
func (s *Simulator) postPlay(overtime bool) (model.FlowState, error) {
	play := s.Game.CurrentPlay
	if play == nil {
		return s.Game.State, model.InvariantViolation("postPlay entered with no current play")
	}
	offenseTeam := play.Possession
	offense, defense := s.Game.Home, s.Game.Away
	if offenseTeam == model.PossessionAway {
		offense, defense = s.Game.Away, s.Game.Home
	}

	switch play.Kind {
	case model.PlayRun, model.PlayPass:
		s.finalizeRunOrPass(play, offenseTeam, offense, defense)
	case model.PlayKickoff:
		s.finalizeKickoffPossession(play, offenseTeam)
	case model.PlayPunt, model.PlayFieldGoal:
		play.PossessionChanged = true
	}

	turnoverOnDowns := false
	if play.Kind == model.PlayRun || play.Kind == model.PlayPass {
		if !play.PossessionChanged && play.Down == model.Fourth && play.YardsGained < play.YardsToGo {
			turnoverOnDowns = true
		}
	}

	result := s.applyPenalties(play, offenseTeam, play.PossessionChanged, turnoverOnDowns)
	s.applyDownAndDistance(play, result, offenseTeam, turnoverOnDowns)

	stats.Accumulate(s.Game, *play)
	s.Game.AppendPlay(*play)
	s.Game.CurrentPlay = nil

	if overtime {
		return s.overtimePostPlayTransition(play)
	}
	return s.regulationPostPlayTransition(play)
}

// applyDownAndDistance finalizes Game.{FieldPosition,Down,YardsToGo,Possession}
// from the play's resolved outcome and its penalty.Result.
func (s *Simulator) applyDownAndDistance(play *model.Play, result penalty.Result, offenseTeam model.Possession, turnoverOnDowns bool) {
	g := s.Game

	if result.AutomaticFirstDown && !play.PossessionChanged {
		// A defensive foul's automatic first down overrides an otherwise
		// failed fourth down; the offense keeps the ball.
		turnoverOnDowns = false
	}

	if result.Offsetting || result.PlaySuppressed {
		if result.PlaySuppressed {
			g.FieldPosition = advance(play.StartFieldPosition, result.NetYards, offenseTeam)
		}
		g.Down = play.Down
		g.YardsToGo = play.YardsToGo
		if !result.ReplayDown {
			g.Down = nextDown(play.Down)
		}
		return
	}

	switch {
	case play.Touchdown, play.Safety:
		g.FieldPosition = play.EndFieldPosition
		g.Down = model.DownNone
		g.YardsToGo = 0
		return
	case play.PossessionChanged:
		g.Possession = offenseTeam.Opponent()
		if play.Kind == model.PlayRun || play.Kind == model.PlayPass {
			g.FieldPosition = clampFieldPosition(advance(play.StartFieldPosition, result.NetYards, offenseTeam))
		} else {
			g.FieldPosition = play.EndFieldPosition
		}
		g.Down = model.First
		g.YardsToGo = min(10, 100-g.FieldPosition)
		if g.Possession == model.PossessionAway {
			g.YardsToGo = min(10, g.FieldPosition)
		}
		return
	case turnoverOnDowns:
		g.Possession = offenseTeam.Opponent()
		g.FieldPosition = clampFieldPosition(advance(play.StartFieldPosition, result.NetYards, offenseTeam))
		g.Down = model.First
		g.YardsToGo = min(10, 100-g.FieldPosition)
		if g.Possession == model.PossessionAway {
			g.YardsToGo = min(10, g.FieldPosition)
		}
		return
	}

	newPos := clampFieldPosition(advance(play.StartFieldPosition, result.NetYards, offenseTeam))
	play.EndFieldPosition = newPos
	g.FieldPosition = newPos

	gotFirstDown := result.AutomaticFirstDown || result.NetYards >= play.YardsToGo
	switch {
	case gotFirstDown && !result.LossOfDown:
		play.FirstDown = true
		g.Down = model.First
		g.YardsToGo = min(10, distanceToGoal(newPos, offenseTeam))
	default:
		g.Down = nextDown(play.Down)
		g.YardsToGo = play.YardsToGo - result.NetYards
		if g.YardsToGo < 1 {
			g.YardsToGo = 1
		}
	}
}

func distanceToGoal(pos int, team model.Possession) int {
	if team == model.PossessionAway {
		return pos
	}
	return 100 - pos
}

func nextDown(d model.Down) model.Down {
	if d >= model.Fourth {
		return model.Fourth
	}
	return d + 1
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// finalizeKickoffPossession resolves whether the kicking team kept the ball
// (onside recovery) or it passed to the receiving team, and detects a
// return touchdown; the executor leaves both to flow (see internal/flow
// package docs).
func (s *Simulator) finalizeKickoffPossession(play *model.Play, kickingTeam model.Possession) {
	if play.Kickoff != nil && play.Kickoff.Onside && play.Kickoff.OnsideRecovered {
		play.PossessionChanged = false
		return
	}
	play.PossessionChanged = true
	receiver := kickingTeam.Opponent()
	if play.EndFieldPosition == scoringGoalLine(receiver) {
		play.Touchdown = true
	}
}

// kickoffReceiverAfterScore is who receives the ensuing kickoff: the
// opponent of whoever scored a touchdown or field goal, or the safety
// scorer itself (the team that just conceded a safety kicks it away).
func kickoffReceiverAfterScore(scoreType model.ScoreType, scorer model.Possession) model.Possession {
	if scoreType == model.ScoreSafety {
		return scorer
	}
	return scorer.Opponent()
}

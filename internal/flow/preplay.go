package flow

import (
	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// conversionPlayKind resolves a 2-point attempt (or a 4th-and-short "go for
// it") to Run or Pass via the same run/pass-call decision an ordinary down
// uses, with IsKickoffOrConversion set so the decision can weight it
// differently.
func conversionPlayKind(src rng.Source, d *decision.Decider) model.PlayKind {
	if d.PlayCall(src, decision.PlayCallContext{IsKickoffOrConversion: true}) == decision.CallPass {
		return model.PlayPass
	}
	return model.PlayRun
}

// conversionSpot is the absolute field position yardsToGoalLine yards from
// offense's scoring goal line, used to place the ball for a PAT/2-point
// attempt (spec §4.11 calls conversions "a subsequent play", not a normal
// scrimmage down, so PrePlay has to set the spot itself rather than
// inheriting one from the prior play).
func conversionSpot(offense model.Possession, yardsToGoalLine int) int {
	if offense == model.PossessionHome {
		return 100 - yardsToGoalLine
	}
	return yardsToGoalLine
}

// prePlay is the PrePlay/OvertimePrePlay entry action: it picks the next
// play's kind (spec §4.8's decision layer) and routes to Snap/OvertimeSnap.
// A pending conversion (scheduled by the previous PostPlay) is handled
// first, since it substitutes for the normal down/distance decision chain
// entirely.
func (s *Simulator) prePlay(overtime bool) (model.FlowState, error) {
	g := s.Game
	snapState := model.Snap
	if overtime {
		snapState = model.OvertimeSnap
	}

	if s.conversionPending {
		diff := g.ScoreFor(s.conversionTeam) - g.ScoreFor(s.conversionTeam.Opponent())
		dec := s.Decider.Conversion(s.Source, decision.ConversionContext{ScoreDifferential: diff})
		s.conversionTwoPoint = dec == decision.TwoPointAttempt

		g.Possession = s.conversionTeam
		g.Down = model.First
		if s.conversionTwoPoint {
			s.pendingPlayKind = conversionPlayKind(s.Source, s.Decider)
			g.YardsToGo = 2
			g.FieldPosition = conversionSpot(s.conversionTeam, 2)
		} else {
			s.pendingPlayKind = model.PlayFieldGoal
			g.YardsToGo = 0
			g.FieldPosition = conversionSpot(s.conversionTeam, 15)
		}
		return snapState, nil
	}

	offenseScore := g.ScoreFor(g.Possession)
	defenseScore := g.ScoreFor(g.Possession.Opponent())

	if g.Down == model.Fourth {
		fd := s.Decider.FourthDown(s.Source, decision.FourthDownContext{
			Distance:            g.YardsToGo,
			FieldPosition:       g.DistanceToGoal(g.Possession),
			ScoreDifferential:   offenseScore - defenseScore,
			SecondsRemaining:    g.Time.SecondsRemaining,
			Quarter:             g.Time.Quarter,
			ChipShotFGAvailable: g.DistanceToGoal(g.Possession) <= 20,
		})
		switch fd {
		case decision.Punt:
			s.pendingPlayKind = model.PlayPunt
		case decision.FieldGoalAttempt:
			s.pendingPlayKind = model.PlayFieldGoal
		default:
			s.pendingPlayKind = conversionPlayKind(s.Source, s.Decider)
		}
		return snapState, nil
	}

	pc := s.Decider.PlayCall(s.Source, decision.PlayCallContext{
		Down:              g.Down,
		Distance:          g.YardsToGo,
		Quarter:           g.Time.Quarter,
		SecondsRemaining:  g.Time.SecondsRemaining,
		Leading:           offenseScore > defenseScore,
		Trailing:          offenseScore < defenseScore,
		TimeoutsRemaining: g.TimeoutsFor(g.Possession),
	})
	// Kneel and spike have no dedicated PlayKind (spec §9's tagged variant
	// set is Run/Pass/Kickoff/Punt/FieldGoal); a kneel rides the ordinary
	// run executor's natural short-yardage output, a spike the pass
	// executor's incomplete-pass clock behavior.
	switch pc {
	case decision.CallPass, decision.CallSpike:
		s.pendingPlayKind = model.PlayPass
	default:
		s.pendingPlayKind = model.PlayRun
	}
	return snapState, nil
}

// snap is the Snap/OvertimeSnap entry action: it routes to whichever
// Play-* state (or, in overtime, the single OvertimePlay) matches the kind
// PrePlay chose.
func (s *Simulator) snap(overtime bool) (model.FlowState, error) {
	if overtime {
		return model.OvertimePlay, nil
	}
	switch s.pendingPlayKind {
	case model.PlayRun:
		return model.PlayRunState, nil
	case model.PlayPass:
		return model.PlayPassState, nil
	case model.PlayFieldGoal:
		return model.PlayFieldGoalState, nil
	case model.PlayPunt:
		return model.PlayPuntState, nil
	default:
		return s.Game.State, model.InvariantViolation("snap: no play kind was chosen")
	}
}

// playState is the Play-Run/Play-Pass/Play-FG/Play-Punt (and, in overtime,
// OvertimePlay) entry action: it builds the executor Context and runs the
// chosen play.
func (s *Simulator) playState(overtime bool) (model.FlowState, error) {
	g := s.Game
	offUnit, defUnit := unitsFor(s.pendingPlayKind)

	play, err := s.executePlay(offUnit, defUnit)
	if err != nil {
		return g.State, err
	}
	g.CurrentPlay = play

	if overtime {
		return model.OvertimePostPlay, nil
	}
	return model.PostPlay, nil
}

func unitsFor(kind model.PlayKind) (model.DepthChartUnit, model.DepthChartUnit) {
	switch kind {
	case model.PlayFieldGoal:
		return model.DepthChartFieldGoal, model.DepthChartFieldGoalBlock
	case model.PlayPunt:
		return model.DepthChartPunt, model.DepthChartPuntReturn
	default:
		return model.DepthChartOffense, model.DepthChartDefense
	}
}

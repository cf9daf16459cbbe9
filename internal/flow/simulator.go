// Package flow drives the nineteen-state game flow state machine of spec
// §4.10: PreGame -> CoinToss -> {Kickoff, PrePlay, Snap, Play-Run, Play-Pass,
// Play-FG, Play-Punt, PostPlay, QuarterExpired, Halftime, EndOfRegulation,
// OvertimeCoinToss, OvertimeKickoff, OvertimePrePlay, OvertimeSnap,
// OvertimePlay, OvertimePostPlay, PostGame}. Each state's entry action
// mutates the Game and reports the next state; Simulator.Run steps until
// PostGame.
//
// Grounded on the teacher's CareerSimulator/YearSimulatorConfig idiom
// (synthetic-data/createPlayerCareer.go): a struct of injectable
// dependencies, defaulted by its constructor, driving a single ordered walk
// instead of simulating the next year's stats.
package flow

import (
	"fmt"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// LogSink receives one human-readable line per notable flow event (spec §5:
// "the only cooperative boundary is the log sink; emitting a log line must
// be non-failing"). A nil Log is replaced with a no-op by NewSimulator.
type LogSink func(string)

func noopLog(string) {}

// Config bundles Simulator's injectable dependencies. Any zero/nil field
// adopts a documented default via NewSimulator, the same DI-with-defaults
// shape as decision.Decider/NewDecider.
type Config struct {
	Game    *model.Game
	Source  rng.Source
	Decider *decision.Decider
	Log     LogSink
}

// Simulator owns the single walk through the flow state machine for one
// Game. Per spec §5, Game and Simulator are exclusively owned by this one
// run; nothing here is safe to share across goroutines.
type Simulator struct {
	Game    *model.Game
	Source  rng.Source
	Decider *decision.Decider
	Log     LogSink

	// pendingPlayKind is the play type PrePlay/Snap chose, read by the
	// Play-* (or, in overtime, the single OvertimePlay) entry action.
	// Overtime collapses all four regulation Play-* states into one
	// OvertimePlay state, so the chosen kind can't live in Game.State the
	// way it does in regulation; it has to live here instead.
	pendingPlayKind model.PlayKind

	// conversion* track the PAT/2-point attempt spec §4.11 calls "a
	// subsequent play" after a touchdown. There is no dedicated FlowState
	// for it: PostPlay schedules it and PrePlay/Snap special-case it.
	conversionPending  bool
	conversionTeam     model.Possession
	conversionTwoPoint bool

	// quarterExpireNext is the destination game.RunPostPlayChecks already
	// computed when it reported QuarterExpired; the QuarterExpired state's
	// entry action only has to read it back, matching QuarterExpired's
	// standing as its own FlowState rather than a flag on PostPlay.
	quarterExpireNext model.FlowState
}

// NewSimulator constructs a Simulator from cfg, applying the documented
// defaults for any dependency left unset. cfg.Game must be non-nil.
func NewSimulator(cfg Config) *Simulator {
	s := &Simulator{
		Game:   cfg.Game,
		Source: cfg.Source,
		Log:    cfg.Log,
	}
	if s.Decider == nil {
		s.Decider = cfg.Decider
	}
	if s.Decider == nil {
		s.Decider = decision.NewDecider(decision.Decider{
			TwoPointBaseProbability:  s.Game.Config.TwoPointConversionBaseProbability,
			OnsideAttemptProbability: s.Game.Config.OnsideKickAttemptProbability,
		})
	}
	if s.Log == nil {
		s.Log = noopLog
	}
	return s
}

// Run drives the state machine from Game.State to PostGame. Replay
// exhaustion (spec §7) is the one fatal condition that surfaces as a panic
// from deep inside rng.ReplaySource rather than a returned error; Run
// recovers it here and turns it into model.ErrReplayExhausted. Every other
// fatal condition (contract/invariant violation) is returned directly by a
// state handler.
func (s *Simulator) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			exhausted, ok := r.(*rng.ErrExhausted)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %s", model.ErrReplayExhausted, exhausted.Error())
		}
	}()
	for s.Game.State != model.PostGame {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs exactly one state's entry action and advances Game.State to
// whatever it reports.
func (s *Simulator) Step() error {
	next, err := s.dispatch(s.Game.State)
	if err != nil {
		return err
	}
	s.Log(fmt.Sprintf("%s -> %s", s.Game.State, next))
	s.Game.State = next
	return nil
}

func (s *Simulator) dispatch(state model.FlowState) (model.FlowState, error) {
	switch state {
	case model.PreGame:
		return s.preGame()
	case model.CoinToss:
		return s.coinToss()
	case model.Kickoff:
		return s.kickoff(false)
	case model.PrePlay:
		return s.prePlay(false)
	case model.Snap:
		return s.snap(false)
	case model.PlayRunState, model.PlayPassState, model.PlayFieldGoalState, model.PlayPuntState:
		return s.playState(false)
	case model.PostPlay:
		return s.postPlay(false)
	case model.QuarterExpired:
		return s.quarterExpired()
	case model.Halftime:
		return s.halftime()
	case model.EndOfRegulation:
		return s.endOfRegulation()
	case model.OvertimeCoinToss:
		return s.overtimeCoinToss()
	case model.OvertimeKickoff:
		return s.kickoff(true)
	case model.OvertimePrePlay:
		return s.prePlay(true)
	case model.OvertimeSnap:
		return s.snap(true)
	case model.OvertimePlay:
		return s.playState(true)
	case model.OvertimePostPlay:
		return s.postPlay(true)
	case model.PostGame:
		return model.PostGame, nil
	default:
		return state, model.InvariantViolation(fmt.Sprintf("unhandled flow state %s", state))
	}
}

// clampFieldPosition keeps an absolute field position within [0,100]; a
// value outside that range without a recorded score is an invariant
// violation the caller is expected to have already ruled out.
func clampFieldPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > 100 {
		return 100
	}
	return pos
}

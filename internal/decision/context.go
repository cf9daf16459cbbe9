// Package decision implements the Context -> Decision -> Mechanic pattern
// of spec §4.8 and §9: each decision is a pure function of a value-typed
// context plus a random draw, returning an enumerated Decision. Mechanics
// (play executors, rule actions) live elsewhere and are never invoked from
// here.
//
// Grounded on the teacher's injectable-dependency-with-defaults idiom
// (YearSimulatorConfig/NewCareerSimulator, SeederConfig) applied to a
// Decider struct whose probability tables can be overridden at
// construction, defaulting to the documented constants.
package decision

import "github.com/brahedrick/gridiron-sim/internal/model"

// FourthDownContext is the value record internal/flow derives from the
// current Game for the fourth-down decision.
type FourthDownContext struct {
	Distance           int
	FieldPosition      int // offense's distance to the opponent's goal line
	ScoreDifferential  int // offense's score minus defense's score
	SecondsRemaining   float64
	Quarter            model.Quarter
	ChipShotFGAvailable bool
}

// PlayCallContext is the context for the run/pass/kneel/spike decision.
type PlayCallContext struct {
	Down              model.Down
	Distance          int
	Quarter           model.Quarter
	SecondsRemaining  float64
	Leading           bool
	Trailing          bool
	TimeoutsRemaining int
	ClockRunning      bool
	IsKickoffOrConversion bool
}

// ConversionContext is the context for the post-touchdown 2-point decision.
type ConversionContext struct {
	ScoreDifferential int
}

// TimeoutContext is the context for the pre-play and post-play timeout
// decisions.
type TimeoutContext struct {
	TimeoutsRemaining int
	PlayClockSeconds  float64
	IsDefense         bool
	UpcomingFGDistance int // 0 if no field goal is upcoming
	Trailing          bool
	SecondsRemainingInHalf float64
	ClockRunning      bool
	PrePlay           bool // true = pre-play decision, false = post-play
}

// FairCatchContext is the context for a kickoff or punt return decision.
type FairCatchContext struct {
	HangTimeSeconds float64
	IsKickoff       bool
	FieldPosition   int // returner's distance from their own goal line
}

// OnsideContext is the context for the onside-kick decision.
type OnsideContext struct {
	TrailingBy int
}

// PenaltyAcceptContext is the context for the accept/decline decision,
// evaluated from the perspective of the team that did NOT commit the foul.
type PenaltyAcceptContext struct {
	OnDefense           bool // true if the foul was committed by the offense (defense decides)
	AutomaticFirstDown  bool
	PlayAlreadyFirstDown bool
	PlayWasTurnover     bool
	PlayWasTurnoverOnDowns bool
	PlayWasTouchdownByFouledTeam bool
	LossOfDown          bool
	PenaltyYards        int
	PlayYards           int
}

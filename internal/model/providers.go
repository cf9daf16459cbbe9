package model

// The rule-provider interfaces live in model (rather than internal/rules)
// so that model.Configuration can hold them without an import cycle:
// internal/rules implements these against model types, and internal/flow
// queries them through model.Game.Config without importing internal/rules
// directly (spec §4.9, §9 "capability records, not classes with
// inheritance").

// ScoreType tags what kind of score just happened, for
// OvertimeRuleProvider.ShouldGameEnd.
type ScoreType int

const (
	ScoreNone ScoreType = iota
	ScoreTouchdown
	ScoreFieldGoal
	ScoreSafety
)

// PossessionEndReason tags why a possession in overtime just ended, for
// OvertimeRuleProvider.NextPossessionAction.
type PossessionEndReason int

const (
	EndReasonScore PossessionEndReason = iota
	EndReasonTurnoverOnDowns
	EndReasonTurnover
	EndReasonPuntOrKick
)

// PossessionAction is what the flow should do next after a possession ends
// in overtime.
type PossessionAction int

const (
	ActionContinue PossessionAction = iota // give the ball to the other team, game continues
	ActionGameOver
	ActionNewPeriod
)

// OvertimeRuleProvider abstracts the rule variations between overtime
// formats (spec §4.9). Providers are read-only after construction and are
// never mutated by the engine; they are queried during flow transitions.
type OvertimeRuleProvider interface {
	Name() string
	PeriodDurationSeconds() int
	TimeoutsPerTeam() int
	// FixedStartingFieldPosition returns (position, true) when overtime
	// possessions start from a fixed spot rather than a kickoff.
	FixedStartingFieldPosition() (int, bool)
	HasCoinToss() bool
	AllowsTies() bool
	// MaxPeriods is 0 for unlimited.
	MaxPeriods() int

	ShouldGameEnd(state *OvertimeState, scoreType ScoreType, scorer Possession) bool
	NextPossessionAction(state *OvertimeState, reason PossessionEndReason) PossessionAction
	ShouldStartNewPeriod(state *OvertimeState) bool
	StartingFieldPosition(state *OvertimeState, possession Possession) int
	StartingDownAndDistance(state *OvertimeState) (Down, int)
	IsTwoPointConversionRequired(state *OvertimeState) bool
	IsTwoPointPlayOnly(state *OvertimeState) bool
	UsesKickoff(state *OvertimeState) bool
}

// TwoMinuteWarningProvider decides whether the two-minute warning fires as
// the quarter clock crosses a threshold (spec §4.9).
type TwoMinuteWarningProvider interface {
	Name() string
	ShouldCall(quarter int, timeBefore, timeAfter float64, alreadyCalled bool) bool
}

// EndOfHalfProvider governs whether a half is allowed to end on a
// penalty, or whether an untimed down is granted instead (spec §4.9).
type EndOfHalfProvider interface {
	Name() string
	AllowsHalfToEndOnDefensivePenalty() bool
	AllowsHalfToEndOnOffensivePenalty() bool
}

// Package rules implements the pluggable rule-provider model of spec §4.9:
// concrete Overtime/TwoMinuteWarning/EndOfHalf providers against the
// interfaces model defines, plus process-wide name-keyed registries with a
// registration hook, grounded on the teacher's swappable-function-field DI
// idiom (YearSimulatorConfig.Clock, SeederConfig) generalized from a single
// injected function to a named, registry-looked-up implementation.
package rules

import "github.com/brahedrick/gridiron-sim/internal/model"

// overtimeBase encodes the rule logic shared by every NFL-family overtime
// provider (spec §4.9): defensive TD ends the game immediately; FG or
// safety on the first possession hands the ball to the second team; the
// second team winning the score comparison after both have possessed ends
// the game; a tie after both possess enters sudden death.
type overtimeBase struct {
	name                string
	periodSeconds       int
	timeoutsPerTeam     int
	hasCoinToss         bool
	allowTies           bool
	maxPeriods          int
	firstPossessionTDEndsGame bool // pre-2025 rule; false under the 2025 variant
}

func (b overtimeBase) Name() string                  { return b.name }
func (b overtimeBase) PeriodDurationSeconds() int     { return b.periodSeconds }
func (b overtimeBase) TimeoutsPerTeam() int           { return b.timeoutsPerTeam }
func (b overtimeBase) FixedStartingFieldPosition() (int, bool) { return 0, false }
func (b overtimeBase) HasCoinToss() bool              { return b.hasCoinToss }
func (b overtimeBase) AllowsTies() bool               { return b.allowTies }
func (b overtimeBase) MaxPeriods() int                { return b.maxPeriods }

func (b overtimeBase) ShouldGameEnd(state *model.OvertimeState, scoreType model.ScoreType, scorer model.Possession) bool {
	scoringTeamHadFirstPossession := scorer == state.FirstPossessionTeam

	if scoreType == model.ScoreTouchdown && !scoringTeamHadFirstPossession {
		// Defensive touchdown (pick-six, fumble return) by the
		// second-possession team ends it immediately regardless of rule era.
		return true
	}
	if scoreType == model.ScoreTouchdown && scoringTeamHadFirstPossession && b.firstPossessionTDEndsGame {
		return true
	}

	if !state.SecondPossessionDone {
		return false
	}
	// Both teams have possessed; compare period scores.
	first := state.PeriodScores[state.FirstPossessionTeam]
	second := state.PeriodScores[state.SecondPossessionTeam()]
	return second > first
}

func (b overtimeBase) NextPossessionAction(state *model.OvertimeState, reason model.PossessionEndReason) model.PossessionAction {
	if reason == model.EndReasonScore {
		first := state.PeriodScores[state.FirstPossessionTeam]
		second := state.PeriodScores[state.SecondPossessionTeam()]
		if state.SuddenDeath || (state.FirstPossessionDone && state.SecondPossessionDone) {
			if first != second {
				return model.ActionGameOver
			}
		}
	}
	return model.ActionContinue
}

func (b overtimeBase) ShouldStartNewPeriod(state *model.OvertimeState) bool {
	first := state.PeriodScores[state.FirstPossessionTeam]
	second := state.PeriodScores[state.SecondPossessionTeam()]
	if first == second {
		if !b.allowTies {
			return true
		}
		return state.Period < b.maxPeriods || b.maxPeriods == 0
	}
	return false
}

func (b overtimeBase) StartingFieldPosition(state *model.OvertimeState, possession model.Possession) int {
	if pos, fixed := b.FixedStartingFieldPosition(); fixed {
		return pos
	}
	return 25
}

func (b overtimeBase) StartingDownAndDistance(state *model.OvertimeState) (model.Down, int) {
	return model.First, 10
}

func (b overtimeBase) IsTwoPointConversionRequired(state *model.OvertimeState) bool { return false }
func (b overtimeBase) IsTwoPointPlayOnly(state *model.OvertimeState) bool           { return false }
func (b overtimeBase) UsesKickoff(state *model.OvertimeState) bool                  { return true }

// NFLRegularSeason is the standard regular-season overtime format: one
// ten-minute untimed-down period, two timeouts per team, ties allowed.
type NFLRegularSeason struct{ overtimeBase }

// NewNFLRegularSeason constructs the pre-2025 regular-season provider:
// a touchdown on the opening possession wins outright.
func NewNFLRegularSeason() *NFLRegularSeason {
	return &NFLRegularSeason{overtimeBase{
		name: "nfl_regular", periodSeconds: 600, timeoutsPerTeam: 2,
		hasCoinToss: true, allowTies: true, maxPeriods: 1,
		firstPossessionTDEndsGame: true,
	}}
}

// NFLPlayoff is the playoff overtime format: full fifteen-minute periods,
// unlimited periods, no ties.
type NFLPlayoff struct{ overtimeBase }

// NewNFLPlayoff constructs the pre-2025 playoff provider.
func NewNFLPlayoff() *NFLPlayoff {
	return &NFLPlayoff{overtimeBase{
		name: "nfl_playoff", periodSeconds: 900, timeoutsPerTeam: 3,
		hasCoinToss: true, allowTies: false, maxPeriods: 0,
		firstPossessionTDEndsGame: true,
	}}
}

// NFLRegularSeason2025 is the 2025 rule-change variant (spec §9 Open
// Questions resolution): both teams are guaranteed a possession even when
// the first-possession team scores a touchdown; only a touchdown by the
// second-possession team, or the outcome of the score comparison once both
// have possessed, ends the game.
type NFLRegularSeason2025 struct{ overtimeBase }

// NewNFLRegularSeason2025 constructs the 2025-variant regular-season
// provider, routing a first-possession touchdown through Continue instead
// of GameOver.
func NewNFLRegularSeason2025() *NFLRegularSeason2025 {
	return &NFLRegularSeason2025{overtimeBase{
		name: "nfl_regular_2025", periodSeconds: 600, timeoutsPerTeam: 2,
		hasCoinToss: true, allowTies: true, maxPeriods: 1,
		firstPossessionTDEndsGame: false,
	}}
}

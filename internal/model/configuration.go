package model

// Configuration is process-wide and immutable after construction (spec §3,
// §5: "configuration and registries are constructed once and held by the
// simulation; do not use runtime-mutable process globals"). It may be
// overridden per simulation via engine.SimulationOptions.
//
// Field grouping and naming mirrors the teacher's injectable-config-with-
// defaults idiom (YearSimulatorConfig / SeederConfig): every field has a
// documented default, set by DefaultConfiguration.
type Configuration struct {
	// QuarterLengthSeconds is the length of a regulation quarter. Default 900.
	QuarterLengthSeconds float64

	// TimeoutsPerHalf is timeouts available per team per half. Default 3.
	TimeoutsPerHalf int

	OvertimeRules         OvertimeRuleProvider
	TwoMinuteWarningRules TwoMinuteWarningProvider
	EndOfHalfRules        EndOfHalfProvider

	// TwoPointConversionBaseProbability is the base rate an offense elects
	// to go for two after a touchdown. Default 0.05.
	TwoPointConversionBaseProbability float64

	// OnsideKickAttemptProbability is the probability a trailing-by-7-plus
	// kicking team attempts an onside kick. Default 0.10.
	OnsideKickAttemptProbability float64
}

// DefaultConfiguration returns the documented-default configuration with no
// rule providers set; engine.SimulateGame fills providers from the named
// registries in internal/rules before use.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		QuarterLengthSeconds:              900,
		TimeoutsPerHalf:                   3,
		TwoPointConversionBaseProbability: 0.05,
		OnsideKickAttemptProbability:      0.10,
	}
}

// Half identifies the first or second half of regulation.
type Half int

const (
	FirstHalf Half = iota
	SecondHalf
)

// Quarter identifies one of regulation's four quarters.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// TimeState is the Game's clock: two Halves, each two Quarters, each
// QuarterLengthSeconds long (spec §3).
type TimeState struct {
	Quarter         Quarter
	SecondsRemaining float64
	TwoMinuteWarningCalled map[Quarter]bool
}

// NewTimeState starts the clock at the first quarter, full time remaining.
func NewTimeState(cfg *Configuration) *TimeState {
	return &TimeState{
		Quarter:          Q1,
		SecondsRemaining: cfg.QuarterLengthSeconds,
		TwoMinuteWarningCalled: map[Quarter]bool{},
	}
}

// HalfOf returns which half a quarter belongs to.
func HalfOf(q Quarter) Half {
	if q == Q1 || q == Q2 {
		return FirstHalf
	}
	return SecondHalf
}

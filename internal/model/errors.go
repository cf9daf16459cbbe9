package model

import "fmt"

// The three fatal error kinds from spec §7. All other conditions
// (decision ambiguity, clamp events) are handled locally and never
// propagate as errors.
var (
	// ErrContractViolation wraps a required-player-slot-empty failure, e.g.
	// a field goal attempted with no kicker on the field goal depth chart.
	ErrContractViolation = fmt.Errorf("contract violation")
	// ErrInvariantViolation wraps a detected violation of an invariant in
	// spec §3, e.g. field position drifting outside [0,100] without a
	// scoring event.
	ErrInvariantViolation = fmt.Errorf("invariant violation")
	// ErrReplayExhausted wraps rng.ErrExhausted when it surfaces out of a
	// replay simulation.
	ErrReplayExhausted = fmt.Errorf("replay exhausted")
)

// ContractViolation builds a contract-violation error naming the play and
// the required role, per spec §7.
func ContractViolation(play, role string) error {
	return fmt.Errorf("%w: play %q requires a %s but none was available", ErrContractViolation, play, role)
}

// InvariantViolation builds an invariant-violation error naming the
// invariant that failed.
func InvariantViolation(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, detail)
}

// Package engine is the public library surface (spec §6): SimulateGame,
// its options, and the GameResult it returns. Everything else in this
// module — internal/flow's state machine, internal/playexec's executors,
// internal/rules' providers — is orchestration this package wires
// together; nothing outside this package needs to import them directly.
package engine

import (
	"fmt"
	"time"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/flow"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
	"github.com/brahedrick/gridiron-sim/internal/rules"
	"github.com/brahedrick/gridiron-sim/pkg/replay"
)

// LogSink receives one human-readable line per notable flow event. A nil
// sink is replaced with a no-op, mirroring flow.LogSink's own default.
type LogSink = flow.LogSink

// SimulationOptions configures one SimulateGame call (spec §6). Every field
// is optional; a zero-valued SimulationOptions runs with documented
// defaults (NFL Regular / NFL / NFL).
type SimulationOptions struct {
	// RandomSeed seeds the deterministic source. A nil value falls back to
	// a seed derived from the wall-clock time (see defaultSeed) so repeated
	// calls without an explicit seed still vary.
	RandomSeed *int64

	LogSink LogSink

	// OvertimeRules, TwoMinuteWarningRules, EndOfHalfRules name a provider
	// registered in internal/rules. Empty adopts the documented default.
	OvertimeRules         string
	TwoMinuteWarningRules string
	EndOfHalfRules        string

	// InitialCoinTossOverride forces the opening coin toss winner instead of
	// drawing it, for callers that need a fixed first-possession team
	// (e.g. deterministic fixture generation). PossessionNone (the zero
	// value) means "draw normally".
	InitialCoinTossOverride model.Possession

	// Configuration overrides tuning constants and timeouts. A nil value
	// adopts model.DefaultConfiguration().
	Configuration *model.Configuration

	Decider *decision.Decider

	// RecordReplayLog captures every random draw made during the
	// simulation into GameResult.ReplayLog when true (spec §6's "Replay
	// Log JSON round-trip").
	RecordReplayLog bool
}

// GameResult is everything spec §6 says SimulateGame must expose: the
// completed Game, final scores, winner, play count/sequence, and the seed
// actually used.
type GameResult struct {
	Game *model.Game

	HomeScore int
	AwayScore int

	// Winner is PossessionNone when the game ended tied (only possible
	// under an overtime provider that AllowsTies).
	Winner model.Possession
	Tie    bool

	TotalPlays int
	Plays      []model.Play

	SeedUsed int64

	// ReplayLog is non-nil only when SimulationOptions.RecordReplayLog was
	// set; Save it via pkg/replay to reproduce this exact game later.
	ReplayLog *replay.Log
}

// SimulateGame runs one complete game between home and away from coin toss
// through PostGame and returns its result (spec §6). Both teams must be
// non-nil; any other engine failure (contract violation, invariant
// violation, replay exhaustion) is returned as a fatal error.
func SimulateGame(home, away *model.Team, opts SimulationOptions) (*GameResult, error) {
	if home == nil || away == nil {
		return nil, fmt.Errorf("engine: SimulateGame requires non-nil home and away teams")
	}

	cfg := opts.Configuration
	if cfg == nil {
		cfg = model.DefaultConfiguration()
	}
	if cfg.OvertimeRules == nil {
		cfg.OvertimeRules = providerOrDefault(opts.OvertimeRules)
	}
	if cfg.TwoMinuteWarningRules == nil {
		cfg.TwoMinuteWarningRules = twoMinuteProviderOrDefault(opts.TwoMinuteWarningRules)
	}
	if cfg.EndOfHalfRules == nil {
		cfg.EndOfHalfRules = endOfHalfProviderOrDefault(opts.EndOfHalfRules)
	}

	seed := int64(0)
	if opts.RandomSeed != nil {
		seed = *opts.RandomSeed
	} else {
		seed = defaultSeed()
	}

	var source rng.Source = rng.NewSeededSource(seed)
	var recorder *rng.Recorder
	if opts.RecordReplayLog {
		recorder = rng.NewRecorder(source)
		source = recorder
	}

	game := model.NewGame(home, away, cfg)
	if opts.InitialCoinTossOverride != model.PossessionNone {
		game.CoinTossResult = &model.CoinTossResult{Winner: opts.InitialCoinTossOverride}
		game.Possession = opts.InitialCoinTossOverride
		game.State = model.Kickoff
	}

	sim := flow.NewSimulator(flow.Config{
		Game:    game,
		Source:  source,
		Decider: opts.Decider,
		Log:     opts.LogSink,
	})

	if err := sim.Run(); err != nil {
		return nil, err
	}

	result := &GameResult{
		Game:       game,
		HomeScore:  game.HomeScore,
		AwayScore:  game.AwayScore,
		TotalPlays: len(game.Plays),
		Plays:      game.Plays,
		SeedUsed:   seed,
	}
	switch {
	case game.HomeScore > game.AwayScore:
		result.Winner = model.PossessionHome
	case game.AwayScore > game.HomeScore:
		result.Winner = model.PossessionAway
	default:
		result.Tie = true
		result.Winner = model.PossessionNone
	}
	if recorder != nil {
		result.ReplayLog = replay.FromRecorder(seed, recorder)
	}
	return result, nil
}

// ReplayGame reproduces a previously recorded game bit-for-bit: same teams,
// same configuration, same draw sequence (spec §6 round-trip). The
// returned GameResult's SeedUsed is log.Seed, carried for provenance only —
// the replay source never reseeds from it.
func ReplayGame(home, away *model.Team, log *replay.Log, cfg *model.Configuration, dec *decision.Decider, sink LogSink) (*GameResult, error) {
	if home == nil || away == nil {
		return nil, fmt.Errorf("engine: ReplayGame requires non-nil home and away teams")
	}
	if cfg == nil {
		cfg = model.DefaultConfiguration()
	}
	if cfg.OvertimeRules == nil {
		cfg.OvertimeRules = rules.DefaultOvertimeProvider()
	}
	if cfg.TwoMinuteWarningRules == nil {
		cfg.TwoMinuteWarningRules = rules.DefaultTwoMinuteWarningProvider()
	}
	if cfg.EndOfHalfRules == nil {
		cfg.EndOfHalfRules = rules.DefaultEndOfHalfProvider()
	}

	game := model.NewGame(home, away, cfg)
	sim := flow.NewSimulator(flow.Config{
		Game:    game,
		Source:  log.Source(),
		Decider: dec,
		Log:     sink,
	})
	if err := sim.Run(); err != nil {
		return nil, err
	}

	result := &GameResult{
		Game:       game,
		HomeScore:  game.HomeScore,
		AwayScore:  game.AwayScore,
		TotalPlays: len(game.Plays),
		Plays:      game.Plays,
		SeedUsed:   log.Seed,
	}
	switch {
	case game.HomeScore > game.AwayScore:
		result.Winner = model.PossessionHome
	case game.AwayScore > game.HomeScore:
		result.Winner = model.PossessionAway
	default:
		result.Tie = true
	}
	return result, nil
}

func providerOrDefault(name string) model.OvertimeRuleProvider {
	if name == "" {
		return rules.DefaultOvertimeProvider()
	}
	if p, ok := rules.OvertimeProvider(name); ok {
		return p
	}
	return rules.DefaultOvertimeProvider()
}

func twoMinuteProviderOrDefault(name string) model.TwoMinuteWarningProvider {
	if name == "" {
		return rules.DefaultTwoMinuteWarningProvider()
	}
	if p, ok := rules.TwoMinuteWarningProvider(name); ok {
		return p
	}
	return rules.DefaultTwoMinuteWarningProvider()
}

func endOfHalfProviderOrDefault(name string) model.EndOfHalfProvider {
	if name == "" {
		return rules.DefaultEndOfHalfProvider()
	}
	if p, ok := rules.EndOfHalfProvider(name); ok {
		return p
	}
	return rules.DefaultEndOfHalfProvider()
}

// defaultSeed derives a seed from wall-clock time so unseeded SimulateGame
// calls still vary run to run; it never participates in the game's own
// recorded draw sequence.
func defaultSeed() int64 {
	return time.Now().UnixNano()
}

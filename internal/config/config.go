// Package config loads YAML overrides for a simulation's Configuration and
// Decider — the one file-based override path spec §4 allows ("Configuration
// ... may be overridden per simulation"). Grounded on the teacher's
// SeederConfig/NewDatabaseSeeder shape (synthetic-data/seed_database.go):
// an injectable struct whose New* constructor fills documented defaults for
// anything the file left zero-valued.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
)

// File is the on-disk shape of a configuration override file. Every field
// is optional; a zero value means "use the engine's documented default"
// exactly as model.DefaultConfiguration and decision.NewDecider already do
// for Go zero values, so Apply only ever needs to forward what's set.
type File struct {
	QuarterLengthSeconds float64 `yaml:"quarter_length_seconds"`
	TimeoutsPerHalf      int     `yaml:"timeouts_per_half"`

	// OvertimeRules, TwoMinuteWarningRules, and EndOfHalfRules are
	// provider names looked up in internal/rules's registries
	// (e.g. "nfl_regular", "nfl_playoff", "nfl", "ncaa").
	OvertimeRules         string `yaml:"overtime_rules"`
	TwoMinuteWarningRules string `yaml:"two_minute_warning_rules"`
	EndOfHalfRules        string `yaml:"end_of_half_rules"`

	TwoPointConversionBaseProbability float64 `yaml:"two_point_conversion_base_probability"`
	OnsideKickAttemptProbability      float64 `yaml:"onside_kick_attempt_probability"`

	Decider DeciderOverrides `yaml:"decider"`
}

// DeciderOverrides mirrors decision.Decider's tunable fields.
type DeciderOverrides struct {
	GoForItByDistance        map[int]float64 `yaml:"go_for_it_by_distance"`
	TwoPointBaseProbability  float64         `yaml:"two_point_base_probability"`
	OnsideAttemptProbability float64         `yaml:"onside_attempt_probability"`
	RunVsPassBase            float64         `yaml:"run_vs_pass_base"`
}

// Loader reads override files from disk. Logger defaults to log.Printf, the
// same "injectable field defaults to the stdlib logger" shape as the
// teacher's SeederConfig.Logger.
type Loader struct {
	Logger func(format string, v ...any)
}

// NewLoader returns a Loader with documented defaults applied to any
// zero-valued field of cfg.
func NewLoader(cfg Loader) *Loader {
	l := cfg
	if l.Logger == nil {
		l.Logger = log.Printf
	}
	return &l
}

// Load reads and parses a YAML override file. A missing file is not an
// error — it's treated the same as an empty override, since override files
// are optional per simulation.
func (l *Loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.Logger("config: %s not found, using engine defaults", path)
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	l.Logger("config: loaded overrides from %s", path)
	return &f, nil
}

// ApplyToConfiguration overlays f's non-zero fields onto base, returning
// base for chaining. Provider name fields are resolved by the caller
// (engine.SimulateGame already accepts provider names as strings via
// SimulationOptions, so File mirrors that rather than importing
// internal/rules directly and risking an import cycle).
func (f *File) ApplyToConfiguration(base *model.Configuration) *model.Configuration {
	if f.QuarterLengthSeconds != 0 {
		base.QuarterLengthSeconds = f.QuarterLengthSeconds
	}
	if f.TimeoutsPerHalf != 0 {
		base.TimeoutsPerHalf = f.TimeoutsPerHalf
	}
	if f.TwoPointConversionBaseProbability != 0 {
		base.TwoPointConversionBaseProbability = f.TwoPointConversionBaseProbability
	}
	if f.OnsideKickAttemptProbability != 0 {
		base.OnsideKickAttemptProbability = f.OnsideKickAttemptProbability
	}
	return base
}

// BuildDecider returns a decision.Decider with f.Decider's overrides
// applied on top of the documented defaults.
func (f *File) BuildDecider() *decision.Decider {
	return decision.NewDecider(decision.Decider{
		GoForItByDistance:        f.Decider.GoForItByDistance,
		TwoPointBaseProbability:  f.Decider.TwoPointBaseProbability,
		OnsideAttemptProbability: f.Decider.OnsideAttemptProbability,
		RunVsPassBase:            f.Decider.RunVsPassBase,
	})
}

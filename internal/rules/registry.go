package rules

import (
	"strings"
	"sync"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// Registries are process-wide, read-only maps constructed from a default
// set plus optional registrations made during initialization (spec §4.9,
// §5: "process-wide read-only maps with a registration hook called during
// initialization"). Lookups are case-insensitive by name.

type overtimeRegistry struct {
	mu        sync.RWMutex
	providers map[string]model.OvertimeRuleProvider
}

var overtimeRegistryInstance = &overtimeRegistry{
	providers: map[string]model.OvertimeRuleProvider{
		"nfl_regular":      NewNFLRegularSeason(),
		"nfl_playoff":      NewNFLPlayoff(),
		"nfl_regular_2025": NewNFLRegularSeason2025(),
	},
}

// RegisterOvertimeProvider adds or replaces a named overtime provider in
// the process-wide registry. Intended to be called during initialization,
// never mid-simulation.
func RegisterOvertimeProvider(p model.OvertimeRuleProvider) {
	overtimeRegistryInstance.mu.Lock()
	defer overtimeRegistryInstance.mu.Unlock()
	overtimeRegistryInstance.providers[strings.ToLower(p.Name())] = p
}

// OvertimeProvider looks up a registered overtime provider by case-
// insensitive name. The documented default is "nfl_regular".
func OvertimeProvider(name string) (model.OvertimeRuleProvider, bool) {
	overtimeRegistryInstance.mu.RLock()
	defer overtimeRegistryInstance.mu.RUnlock()
	p, ok := overtimeRegistryInstance.providers[strings.ToLower(name)]
	return p, ok
}

// DefaultOvertimeProvider returns the documented default ("NFL Regular").
func DefaultOvertimeProvider() model.OvertimeRuleProvider {
	p, _ := OvertimeProvider("nfl_regular")
	return p
}

type twoMinuteRegistry struct {
	mu        sync.RWMutex
	providers map[string]model.TwoMinuteWarningProvider
}

var twoMinuteRegistryInstance = &twoMinuteRegistry{
	providers: map[string]model.TwoMinuteWarningProvider{
		"nfl":  NFLTwoMinuteWarning{},
		"ncaa": NCAATwoMinuteWarning{},
	},
}

// RegisterTwoMinuteWarningProvider adds or replaces a named provider.
func RegisterTwoMinuteWarningProvider(p model.TwoMinuteWarningProvider) {
	twoMinuteRegistryInstance.mu.Lock()
	defer twoMinuteRegistryInstance.mu.Unlock()
	twoMinuteRegistryInstance.providers[strings.ToLower(p.Name())] = p
}

// TwoMinuteWarningProvider looks up a registered provider by case-
// insensitive name.
func TwoMinuteWarningProvider(name string) (model.TwoMinuteWarningProvider, bool) {
	twoMinuteRegistryInstance.mu.RLock()
	defer twoMinuteRegistryInstance.mu.RUnlock()
	p, ok := twoMinuteRegistryInstance.providers[strings.ToLower(name)]
	return p, ok
}

// DefaultTwoMinuteWarningProvider returns the documented default ("NFL").
func DefaultTwoMinuteWarningProvider() model.TwoMinuteWarningProvider {
	p, _ := TwoMinuteWarningProvider("nfl")
	return p
}

type endOfHalfRegistry struct {
	mu        sync.RWMutex
	providers map[string]model.EndOfHalfProvider
}

var endOfHalfRegistryInstance = &endOfHalfRegistry{
	providers: map[string]model.EndOfHalfProvider{
		"nfl":  NewNFLEndOfHalf(),
		"ncaa": NewNCAAEndOfHalf(),
	},
}

// RegisterEndOfHalfProvider adds or replaces a named provider.
func RegisterEndOfHalfProvider(p model.EndOfHalfProvider) {
	endOfHalfRegistryInstance.mu.Lock()
	defer endOfHalfRegistryInstance.mu.Unlock()
	endOfHalfRegistryInstance.providers[strings.ToLower(p.Name())] = p
}

// EndOfHalfProvider looks up a registered provider by case-insensitive name.
func EndOfHalfProvider(name string) (model.EndOfHalfProvider, bool) {
	endOfHalfRegistryInstance.mu.RLock()
	defer endOfHalfRegistryInstance.mu.RUnlock()
	p, ok := endOfHalfRegistryInstance.providers[strings.ToLower(name)]
	return p, ok
}

// DefaultEndOfHalfProvider returns the documented default ("NFL").
func DefaultEndOfHalfProvider() model.EndOfHalfProvider {
	p, _ := EndOfHalfProvider("nfl")
	return p
}

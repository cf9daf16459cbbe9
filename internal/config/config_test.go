package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsEmptyOverrides(t *testing.T) {
	var logged []string
	l := NewLoader(Loader{Logger: func(format string, v ...any) { logged = append(logged, format) }})

	f, err := l.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.QuarterLengthSeconds != 0 || f.OvertimeRules != "" {
		t.Errorf("expected an empty File, got %+v", f)
	}
	if len(logged) == 0 {
		t.Error("expected a log line noting the missing file")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := writeFile(t, `
quarter_length_seconds: 600
timeouts_per_half: 2
overtime_rules: nfl_playoff
two_point_conversion_base_probability: 0.08
decider:
  two_point_base_probability: 0.2
  run_vs_pass_base: 0.6
  go_for_it_by_distance:
    1: 0.9
    10: 0.1
`)

	l := NewLoader(Loader{})
	f, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if f.QuarterLengthSeconds != 600 {
		t.Errorf("QuarterLengthSeconds = %v, want 600", f.QuarterLengthSeconds)
	}
	if f.TimeoutsPerHalf != 2 {
		t.Errorf("TimeoutsPerHalf = %v, want 2", f.TimeoutsPerHalf)
	}
	if f.OvertimeRules != "nfl_playoff" {
		t.Errorf("OvertimeRules = %q, want nfl_playoff", f.OvertimeRules)
	}
	if f.Decider.GoForItByDistance[1] != 0.9 || f.Decider.GoForItByDistance[10] != 0.1 {
		t.Errorf("GoForItByDistance = %v, unexpected", f.Decider.GoForItByDistance)
	}
}

func TestApplyToConfigurationOnlyOverridesSetFields(t *testing.T) {
	base := model.DefaultConfiguration()
	originalTimeouts := base.TimeoutsPerHalf

	f := &File{QuarterLengthSeconds: 720}
	out := f.ApplyToConfiguration(base)

	if out.QuarterLengthSeconds != 720 {
		t.Errorf("QuarterLengthSeconds = %v, want 720", out.QuarterLengthSeconds)
	}
	if out.TimeoutsPerHalf != originalTimeouts {
		t.Errorf("TimeoutsPerHalf changed to %v despite no override", out.TimeoutsPerHalf)
	}
}

func TestBuildDeciderFillsDocumentedDefaultsAroundOverrides(t *testing.T) {
	f := &File{Decider: DeciderOverrides{TwoPointBaseProbability: 0.2}}
	d := f.BuildDecider()

	if d.TwoPointBaseProbability != 0.2 {
		t.Errorf("TwoPointBaseProbability = %v, want 0.2", d.TwoPointBaseProbability)
	}
	if d.RunVsPassBase != 0.50 {
		t.Errorf("RunVsPassBase = %v, want documented default 0.50", d.RunVsPassBase)
	}
	if d.GoForItByDistance == nil {
		t.Error("expected GoForItByDistance to fall back to the documented default table")
	}
}

package replay

import (
	"bytes"
	"testing"

	"github.com/brahedrick/gridiron-sim/internal/rng"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := rng.NewSeededSource(42)
	rec := rng.NewRecorder(src)

	_ = rec.Float64()
	_ = rec.Intn(0, 2)
	_ = rec.Bytes(3)
	_ = rec.Intn(10, 30)

	want := FromRecorder(42, rec)

	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Seed != want.Seed {
		t.Errorf("Seed = %d, want %d", got.Seed, want.Seed)
	}
	if len(got.Doubles) != len(want.Doubles) || got.Doubles[0] != want.Doubles[0] {
		t.Errorf("Doubles = %v, want %v", got.Doubles, want.Doubles)
	}
	if len(got.Ints) != len(want.Ints) {
		t.Errorf("Ints = %v, want %v", got.Ints, want.Ints)
	}
	if len(got.IntRanges) != len(want.IntRanges) {
		t.Errorf("IntRanges = %v, want %v", got.IntRanges, want.IntRanges)
	}
}

func TestSourceReplaysRecordedDraws(t *testing.T) {
	live := rng.NewSeededSource(7)
	rec := rng.NewRecorder(live)

	firstDouble := rec.Float64()
	firstRange := rec.Intn(0, 100)

	log := FromRecorder(7, rec)
	replay := log.Source()

	if got := replay.Float64(); got != firstDouble {
		t.Errorf("replayed Float64 = %v, want %v", got, firstDouble)
	}
	if got := replay.Intn(0, 100); got != firstRange {
		t.Errorf("replayed Intn = %v, want %v", got, firstRange)
	}
}

func TestSourceExhaustionPanics(t *testing.T) {
	log := &Log{Seed: 1, Doubles: []float64{0.5}}
	src := log.Source()
	_ = src.Float64()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on replay exhaustion")
		}
		if _, ok := r.(*rng.ErrExhausted); !ok {
			t.Fatalf("expected *rng.ErrExhausted, got %T", r)
		}
	}()
	_ = src.Float64()
}

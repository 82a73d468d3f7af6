package engine

import (
	"testing"
	"time"
)

func TestStatsEmitter_Throttles(t *testing.T) {
	var got []Stats
	e := newStatsEmitter(func(s Stats) { got = append(got, s) })

	now := time.Unix(0, 0)
	e.now = func() time.Time { return now }

	build := func() Stats { return Stats{Mode: ModeRepulsion, Count: 42} }

	// First tick primes the clock, no emission yet.
	e.maybeEmit(build)
	// 60 ticks over 240ms: still inside the interval.
	for i := 0; i < 60; i++ {
		now = now.Add(4 * time.Millisecond)
		if now.Sub(time.Unix(0, 0)) < StatsInterval {
			e.maybeEmit(build)
		}
	}
	if len(got) != 0 {
		t.Fatalf("expected no emission inside the interval, got %d", len(got))
	}

	// Crossing the interval emits once with FPS derived from tick count.
	now = time.Unix(0, 0).Add(StatsInterval + 10*time.Millisecond)
	e.maybeEmit(build)
	if len(got) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(got))
	}
	if got[0].Count != 42 {
		t.Errorf("expected payload passed through, got count %d", got[0].Count)
	}
	if got[0].FPS <= 0 {
		t.Errorf("expected positive FPS, got %f", got[0].FPS)
	}
}

func TestStatsEmitter_NilSinkIsDisabled(t *testing.T) {
	e := newStatsEmitter(nil)
	// Must not panic and must not call build.
	e.maybeEmit(func() Stats {
		t.Error("build must not be invoked without a sink")
		return Stats{}
	})
}

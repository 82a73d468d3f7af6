package engine

import "time"

// StatsInterval is how often aggregate statistics are pushed to the sink.
// Throttling only bounds the notification rate; it has no bearing on
// physics correctness.
const StatsInterval = 250 * time.Millisecond

// Stats is the aggregate payload a mode emits on the throttled interval.
// Repulsion mode fills Count, FPS and AvgSpeed; battle mode additionally
// fills the per-group slices (indexed by group, sized to the palette).
type Stats struct {
	Mode          ModeKind
	Count         int
	FPS           float64
	AvgSpeed      float64
	GroupCounts   []int
	GroupPercents []float64
}

// StatsSink receives throttled statistics. A nil sink disables emission.
type StatsSink func(Stats)

// statsEmitter rate-limits sink notifications and derives FPS from the
// number of ticks seen between emissions.
type statsEmitter struct {
	sink     StatsSink
	interval time.Duration
	last     time.Time
	ticks    int
	now      func() time.Time // swappable for tests
}

func newStatsEmitter(sink StatsSink) *statsEmitter {
	return &statsEmitter{
		sink:     sink,
		interval: StatsInterval,
		now:      time.Now,
	}
}

// maybeEmit counts one tick and, once the interval has passed, fills in FPS
// and forwards the payload. build is only invoked when an emission is due.
func (e *statsEmitter) maybeEmit(build func() Stats) {
	if e == nil || e.sink == nil {
		return
	}
	e.ticks++
	now := e.now()
	if e.last.IsZero() {
		e.last = now
		return
	}
	elapsed := now.Sub(e.last)
	if elapsed < e.interval {
		return
	}
	stats := build()
	stats.FPS = float64(e.ticks) / elapsed.Seconds()
	e.sink(stats)
	e.ticks = 0
	e.last = now
}

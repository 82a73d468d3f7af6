package engine

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// RepulsionMode is the symmetric variant: every neighbor repels regardless
// of group, so the population spreads into an even carpet.
type RepulsionMode struct {
	modeCore
	noise  *perlin.Perlin
	driftT float64
}

var _ Mode = (*RepulsionMode)(nil)
var _ PointerReactive = (*RepulsionMode)(nil)
var _ Selectable = (*RepulsionMode)(nil)

// NewRepulsionMode constructs an uninitialized repulsion mode over a
// width x height arena.
func NewRepulsionMode(width, height float64, c Controls, spawn SpawnFunc, sink StatsSink, seed int64) *RepulsionMode {
	return &RepulsionMode{
		modeCore: newModeCore(width, height, c, spawn, sink, seed),
		noise:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
	}
}

// Init spawns the initial population.
func (m *RepulsionMode) Init() {
	m.populate()
}

// Update advances the simulation by dt logical steps: neighbor repulsion,
// optional pointer attraction and noise drift, then integration and wall
// resolution, with throttled stats at the end.
func (m *RepulsionMode) Update(dt float64) {
	if m.destroyed {
		return
	}

	m.forcePass(dt, func(_, _ *Dot) float64 { return -1 })
	m.pointerPass(dt)
	m.driftPass(dt)
	m.integrate(dt)

	m.emitter.maybeEmit(func() Stats {
		return Stats{
			Mode:     ModeRepulsion,
			Count:    len(m.dots),
			AvgSpeed: m.averageSpeed(),
		}
	})
}

// driftPass steers dots along a perlin flow field. Skipped when the
// configured strength is zero.
func (m *RepulsionMode) driftPass(dt float64) {
	strength := m.controls.DriftStrength
	if strength == 0 {
		return
	}
	m.driftT += 0.002 * dt
	for _, d := range m.dots {
		angle := m.noise.Noise3D(d.Pos.X*0.004, d.Pos.Y*0.004, m.driftT) * 2 * math.Pi
		d.Vel.X += math.Cos(angle) * strength * dt
		d.Vel.Y += math.Sin(angle) * strength * dt
	}
}

func (m *RepulsionMode) averageSpeed() float64 {
	if len(m.dots) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range m.dots {
		sum += d.Vel.Len()
	}
	return sum / float64(len(m.dots))
}

package engine

import "github.com/dotsbattle/go-dots-battle/pkg/geometry"

// BattleMode is the faction-conversion variant. Same-group neighbors repel
// while different-group neighbors attract, so factions cluster internally
// and get drawn toward rivals; contact between rivals resolves a battle in
// which the loser is converted to the winner's group.
type BattleMode struct {
	modeCore
	impulse *RadialImpulse
}

var _ Mode = (*BattleMode)(nil)
var _ PointerReactive = (*BattleMode)(nil)
var _ ImpulseReactive = (*BattleMode)(nil)
var _ Selectable = (*BattleMode)(nil)

// NewBattleMode constructs an uninitialized battle mode over a
// width x height arena.
func NewBattleMode(width, height float64, c Controls, spawn SpawnFunc, sink StatsSink, seed int64) *BattleMode {
	return &BattleMode{
		modeCore: newModeCore(width, height, c, spawn, sink, seed),
	}
}

// Init spawns the initial population, groups split evenly over the palette.
func (m *BattleMode) Init() {
	m.populate()
}

// Update advances the simulation by dt logical steps. Forces are fully
// applied to all dots before battle resolution runs; the battle pass marks
// each resolved pair so overlapping neighborhoods never re-decide it within
// the tick.
func (m *BattleMode) Update(dt float64) {
	if m.destroyed {
		return
	}

	m.forcePass(dt, func(d, other *Dot) float64 {
		if d.Group == other.Group {
			return -1
		}
		return 1
	})
	m.battlePass()
	m.pointerPass(dt)
	m.impulsePass(dt)
	m.integrate(dt)

	m.emitter.maybeEmit(m.buildStats)
}

// battlePass resolves conversion contests between different-group dots
// within the battle radius. Win probability is proportional to the square
// of each side's size (area-weighted strength); at equal sizes this
// degrades to a fair coin flip, which is intended.
func (m *BattleMode) battlePass() {
	radiusSq := m.controls.BattleRadius * m.controls.BattleRadius
	if radiusSq == 0 {
		return
	}
	m.grid.ForEachPair(func(a, b *Dot) bool {
		if a.Group == b.Group {
			return false
		}
		if DistSquared(a, b) > radiusSq {
			return false
		}
		m.resolveBattle(a, b)
		return true
	})
}

func (m *BattleMode) resolveBattle(a, b *Dot) {
	wa := a.Size * a.Size
	wb := b.Size * b.Size
	if m.rng.Float64()*(wa+wb) < wa {
		b.Group = a.Group
	} else {
		a.Group = b.Group
	}
}

// HandleInteractionEvent triggers a radial impulse on a modified click; a
// new impulse replaces any active one. Unmodified events are ignored here,
// the host routes those to selection.
func (m *BattleMode) HandleInteractionEvent(x, y float64, modifier bool) {
	if !modifier {
		return
	}
	m.impulse = &RadialImpulse{
		Origin:   geometry.Vector2D{X: x, Y: y},
		Radius:   m.controls.ImpulseRadius,
		Strength: m.controls.ImpulseStrength,
		Duration: m.controls.ImpulseDuration,
	}
}

// impulsePass applies the active radial impulse and drops it once expired.
func (m *BattleMode) impulsePass(dt float64) {
	if m.impulse == nil {
		return
	}
	m.impulse.Apply(m.dots, dt)
	if m.impulse.Expired() {
		m.impulse = nil
	}
}

// buildStats counts dots per group, wrapping stale group indices into the
// palette so the counts always sum to the population.
func (m *BattleMode) buildStats() Stats {
	n := m.controls.PaletteSize
	counts := make([]int, n)
	if n > 0 {
		for _, d := range m.dots {
			counts[wrapGroup(d.Group, n)]++
		}
	}
	percents := make([]float64, n)
	if total := len(m.dots); total > 0 {
		for i, c := range counts {
			percents[i] = 100 * float64(c) / float64(total)
		}
	}
	return Stats{
		Mode:          ModeBattle,
		Count:         len(m.dots),
		GroupCounts:   counts,
		GroupPercents: percents,
	}
}

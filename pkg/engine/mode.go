package engine

import (
	"math/rand"

	"github.com/dotsbattle/go-dots-battle/pkg/geometry"
)

// Mode is the shared contract of a tick algorithm. A mode instance moves
// through exactly one lifecycle: uninitialized -> running (Update callable)
// -> destroyed (terminal). SetControls never changes lifecycle state.
//
// The dot list is exposed read/write so population-edit helpers can mutate
// it directly between ticks; no dot outlives its owning mode.
type Mode interface {
	Init()
	Update(dt float64)
	SetControls(c Controls)
	Controls() Controls
	Dots() []*Dot
	SetDots(dots []*Dot)
	Destroy()
}

// Optional per-mode capabilities. Callers type-assert once; a mode that
// lacks a capability is silently skipped, never an error.

// PointerReactive folds cursor input into the force pass.
type PointerReactive interface {
	HandlePointerMove(x, y float64)
	HandlePointerLeave()
}

// ImpulseReactive reacts to a discrete interaction event, e.g. a modified
// click triggering a radial impulse.
type ImpulseReactive interface {
	HandleInteractionEvent(x, y float64, modifier bool)
}

// Selectable supports picking single dots and editing them in place.
type Selectable interface {
	SelectAt(x, y float64) *Dot
	ClearSelection()
	UpdateSelected(size float64, group int)
}

// modeCore carries the state and passes both mode variants share: the dot
// list, the grid, controls, pointer input and selection. Variants embed it
// and add their own tick shape on top.
type modeCore struct {
	width, height float64
	controls      Controls
	dots          []*Dot
	grid          *Grid
	spawn         SpawnFunc
	emitter       *statsEmitter
	rng           *rand.Rand
	pointer       PointerState
	selected      *Dot
	destroyed     bool
}

func newModeCore(width, height float64, c Controls, spawn SpawnFunc, sink StatsSink, seed int64) modeCore {
	c = c.Clamped()
	return modeCore{
		width:    width,
		height:   height,
		controls: c,
		grid:     NewGrid(width, height, RecommendedCellSize(c.MaxSize)),
		spawn:    spawn,
		emitter:  newStatsEmitter(sink),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (m *modeCore) Dots() []*Dot       { return m.dots }
func (m *modeCore) SetDots(ds []*Dot)  { m.dots = ds }
func (m *modeCore) Controls() Controls { return m.controls }

// SetControls hot-swaps parameters without resetting dot state. Sizes of
// existing dots are pulled into the new range so the size invariant holds
// across the swap.
func (m *modeCore) SetControls(c Controls) {
	m.controls = c.Clamped()
	for _, d := range m.dots {
		d.Size = Clamp(d.Size, m.controls.MinSize, m.controls.MaxSize)
	}
}

// Destroy releases references. Idempotent; the second call has no further
// effect. There is no background work to cancel, the engine is
// single-threaded.
func (m *modeCore) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.dots = nil
	m.selected = nil
	m.grid.Clear()
}

func (m *modeCore) HandlePointerMove(x, y float64) {
	m.pointer = PointerState{Pos: geometry.Vector2D{X: x, Y: y}, Active: true}
}

func (m *modeCore) HandlePointerLeave() {
	m.pointer = PointerState{}
}

// SelectAt picks the dot under (x, y), nearest first, or nil when the point
// hits empty space.
func (m *modeCore) SelectAt(x, y float64) *Dot {
	p := geometry.Vector2D{X: x, Y: y}
	var best *Dot
	bestSq := 0.0
	for _, d := range m.dots {
		distSq := d.Pos.DistanceSquaredTo(p)
		if distSq > d.Size*d.Size {
			continue
		}
		if best == nil || distSq < bestSq {
			best = d
			bestSq = distSq
		}
	}
	m.selected = best
	return best
}

func (m *modeCore) ClearSelection() {
	m.selected = nil
}

// UpdateSelected edits the currently selected dot in place. The size lands
// clamped into the configured range, the group wrapped into the palette.
func (m *modeCore) UpdateSelected(size float64, group int) {
	if m.selected == nil {
		return
	}
	m.selected.Size = Clamp(size, m.controls.MinSize, m.controls.MaxSize)
	m.selected.Group = wrapGroup(group, m.controls.PaletteSize)
}

// wrapGroup re-normalizes a group index into the palette range, so a stale
// index (e.g. after the palette shrank) wraps instead of crashing.
func wrapGroup(group, paletteSize int) int {
	if paletteSize <= 0 {
		return 0
	}
	g := group % paletteSize
	if g < 0 {
		g += paletteSize
	}
	return g
}

// populate fills the dot list per the current controls, assigning groups
// round-robin over the palette. A zero-length palette spawns no dots rather
// than producing an invalid group index.
func (m *modeCore) populate() {
	n := m.controls.NumDots
	if m.controls.PaletteSize <= 0 {
		n = 0
	}
	m.dots = make([]*Dot, 0, n)
	for i := 0; i < n; i++ {
		m.dots = append(m.dots, m.spawn(i%m.controls.PaletteSize))
	}
}

// forcePass rebuilds the grid and accumulates the pairwise neighbor force
// for every dot. sign decides direction per pair: negative repels, positive
// attracts. Magnitude falls off linearly with distance inside the influence
// radius and scales with the neighbor's relative size, so big dots shove
// small ones around more than the reverse.
func (m *modeCore) forcePass(dt float64, sign func(d, other *Dot) float64) {
	m.grid.Rebuild(m.dots)
	m.grid.ResetPairs()

	radius := m.controls.InfluenceRadius
	if radius <= 0 {
		return
	}
	radiusSq := radius * radius
	strength := m.controls.ForceStrength

	m.grid.ForEachWithNeighbors(func(d *Dot, neighbors []*Dot) {
		for _, other := range neighbors {
			distSq := DistSquared(d, other)
			if distSq >= radiusSq {
				continue
			}
			dir, dist := d.Pos.Sub(other.Pos).Normalize()
			if dist == 0 {
				// Same point: no direction, zero contribution.
				continue
			}
			falloff := 1 - dist/radius
			relSize := other.Size / d.Size
			ApplyForce(d, dir, -sign(d, other)*strength*falloff*relSize*dt)
		}
	})
}

// pointerPass attracts dots toward the active pointer. Skipped entirely
// when the configured strength is zero.
func (m *modeCore) pointerPass(dt float64) {
	strength := m.controls.PointerStrength
	if strength == 0 || !m.pointer.Active {
		return
	}
	for _, d := range m.dots {
		dir, dist := m.pointer.Pos.Sub(d.Pos).Normalize()
		if dist == 0 {
			continue
		}
		ApplyForce(d, dir, strength*dt)
	}
}

// integrate caps velocities, advances positions and resolves wall contact.
func (m *modeCore) integrate(dt float64) {
	for _, d := range m.dots {
		d.Vel = d.Vel.Limit(m.controls.MaxSpeed)
		d.Pos = d.Pos.Add(d.Vel.Mul(dt))
		FixOutOfBounds(d, m.width, m.height, m.controls.Damping)
	}
}

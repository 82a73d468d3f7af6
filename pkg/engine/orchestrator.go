package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	// NominalStep is the logical step the tick loop is calibrated for.
	NominalStep = time.Second / 60
	// maxDeltaSteps caps a single wall-clock delta so one long stall does
	// not destabilize the physics when the loop resumes.
	maxDeltaSteps = 3.0
)

// Orchestrator owns exactly one active mode instance, drives the
// fixed-logical-step/variable-wall-clock tick loop, and performs atomic
// mode replacement. The render-facing dot list is delegated to the mode's
// own list.
type Orchestrator struct {
	width, height float64
	spawner       *Spawner
	sink          StatsSink
	log           *zap.SugaredLogger
	seed          int64

	active   Mode
	paused   bool
	lastTick time.Time
}

// NewOrchestrator validates the arena and installs the initial mode per the
// given controls. The mode still needs Init before ticking.
func NewOrchestrator(width, height float64, c Controls, sink StatsSink, log *zap.SugaredLogger, seed int64) (*Orchestrator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid arena %gx%g: dimensions must be positive", width, height)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	o := &Orchestrator{
		width:   width,
		height:  height,
		spawner: NewSpawner(width, height, seed),
		sink:    sink,
		log:     log,
		seed:    seed,
	}
	o.active = o.newMode(c)
	return o, nil
}

// newMode constructs (but does not init) the mode variant the controls ask
// for.
func (o *Orchestrator) newMode(c Controls) Mode {
	c = c.Clamped()
	spawn := o.spawner.Spawn(c)
	o.seed++
	if c.Mode == ModeBattle {
		return NewBattleMode(o.width, o.height, c, spawn, o.sink, o.seed)
	}
	return NewRepulsionMode(o.width, o.height, c, spawn, o.sink, o.seed)
}

// Init spawns the active mode's initial population.
func (o *Orchestrator) Init() {
	o.active.Init()
	o.log.Infow("mode initialized",
		"mode", o.active.Controls().Mode,
		"dots", len(o.active.Dots()),
	)
}

// Step computes a clamped logical dt from the wall clock and ticks the
// active mode. While paused the physics call is skipped but the dot list
// stays renderable. Returns the dt that was applied (0 when paused or on
// the priming call).
func (o *Orchestrator) Step(now time.Time) float64 {
	if o.lastTick.IsZero() {
		o.lastTick = now
		return 0
	}
	elapsed := now.Sub(o.lastTick)
	o.lastTick = now

	if o.paused {
		return 0
	}
	dt := Clamp(float64(elapsed)/float64(NominalStep), 0, maxDeltaSteps)
	o.active.Update(dt)
	return dt
}

// Update ticks the active mode directly with a caller-chosen dt. Hosts with
// their own fixed-step scheduling (tests, the terminal host) use this
// instead of Step.
func (o *Orchestrator) Update(dt float64) {
	if !o.paused {
		o.active.Update(dt)
	}
}

// Apply installs new controls. A different mode kind replaces the active
// instance wholesale: destroy old, construct new, init new. No state leaks
// across modes. The same kind forwards the controls unchanged.
func (o *Orchestrator) Apply(c Controls) {
	c = c.Clamped()
	if c.Mode == o.active.Controls().Mode {
		o.active.SetControls(c)
		return
	}
	o.log.Infow("switching mode", "from", o.active.Controls().Mode, "to", c.Mode)
	o.active.Destroy()
	o.active = o.newMode(c)
	o.active.Init()
}

// Dots exposes the active mode's read/write dot list for the renderer and
// the population-edit helpers.
func (o *Orchestrator) Dots() []*Dot { return o.active.Dots() }

// Controls returns the active mode's current controls snapshot.
func (o *Orchestrator) Controls() Controls { return o.active.Controls() }

// Mode exposes the active mode for population edits between ticks.
func (o *Orchestrator) Mode() Mode { return o.active }

// Spawn returns a spawn function bound to the active controls, for
// population edits that add dots.
func (o *Orchestrator) Spawn() SpawnFunc { return o.spawner.Spawn(o.active.Controls()) }

// Pause stops physics while keeping rendering; Resume restarts it.
func (o *Orchestrator) Pause()       { o.paused = true }
func (o *Orchestrator) Resume()      { o.paused = false }
func (o *Orchestrator) Paused() bool { return o.paused }

// TogglePause flips the pause flag and returns the new state.
func (o *Orchestrator) TogglePause() bool {
	o.paused = !o.paused
	return o.paused
}

// Destroy tears down the active mode. Idempotent.
func (o *Orchestrator) Destroy() {
	o.active.Destroy()
}

// Optional interaction handlers are forwarded to the active mode only when
// it implements the capability; absence is a silent no-op.

func (o *Orchestrator) HandlePointerMove(x, y float64) {
	if p, ok := o.active.(PointerReactive); ok {
		p.HandlePointerMove(x, y)
	}
}

func (o *Orchestrator) HandlePointerLeave() {
	if p, ok := o.active.(PointerReactive); ok {
		p.HandlePointerLeave()
	}
}

func (o *Orchestrator) HandleInteractionEvent(x, y float64, modifier bool) {
	if h, ok := o.active.(ImpulseReactive); ok {
		h.HandleInteractionEvent(x, y, modifier)
	}
}

func (o *Orchestrator) SelectAt(x, y float64) *Dot {
	if s, ok := o.active.(Selectable); ok {
		return s.SelectAt(x, y)
	}
	return nil
}

func (o *Orchestrator) ClearSelection() {
	if s, ok := o.active.(Selectable); ok {
		s.ClearSelection()
	}
}

func (o *Orchestrator) UpdateSelected(size float64, group int) {
	if s, ok := o.active.(Selectable); ok {
		s.UpdateSelected(size, group)
	}
}

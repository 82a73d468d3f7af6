package engine

import "github.com/dotsbattle/go-dots-battle/pkg/geometry"

// PointerState is the transient cursor input a mode folds into its force
// pass. It is overwritten every frame and never persisted.
type PointerState struct {
	Pos    geometry.Vector2D
	Active bool
}

// RadialImpulse is a decaying, time-bounded outward force burst anchored at
// a point, triggered by a discrete input event. At most one is active at a
// time; a new impulse replaces the old one. It self-expires once its
// elapsed time reaches the duration.
type RadialImpulse struct {
	Origin   geometry.Vector2D
	Radius   float64
	Strength float64
	Elapsed  float64 // logical steps since trigger
	Duration float64 // logical steps until full decay
}

// DecayFactor is the current linear decay multiplier, 1 at trigger time
// falling to 0 at the duration.
func (ri *RadialImpulse) DecayFactor() float64 {
	if ri.Duration <= 0 || ri.Elapsed >= ri.Duration {
		return 0
	}
	return 1 - ri.Elapsed/ri.Duration
}

// Expired reports whether the impulse has fully decayed.
func (ri *RadialImpulse) Expired() bool {
	return ri.Elapsed >= ri.Duration
}

// Apply pushes every dot inside the effective radius outward from the
// origin, scaled by the current decay factor and a linear distance falloff,
// then advances the impulse clock by dt. Dots exactly at the origin get no
// contribution (no direction to push).
func (ri *RadialImpulse) Apply(dots []*Dot, dt float64) {
	decay := ri.DecayFactor()
	if decay > 0 {
		radiusSq := ri.Radius * ri.Radius
		for _, d := range dots {
			away := d.Pos.Sub(ri.Origin)
			if away.LenSqr() >= radiusSq {
				continue
			}
			dir, dist := away.Normalize()
			if dist == 0 {
				continue
			}
			falloff := 1 - dist/ri.Radius
			ApplyForce(d, dir, ri.Strength*decay*falloff*dt)
		}
	}
	ri.Elapsed += dt
}

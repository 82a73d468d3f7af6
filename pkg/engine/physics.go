package engine

import "github.com/dotsbattle/go-dots-battle/pkg/geometry"

// Stateless physics primitives. Each is callable on its own so the hot-path
// building blocks can be unit tested without a running mode.

// DistSquared returns the squared distance between two dots.
// Callers compare against squared thresholds to keep Sqrt off the hot path.
func DistSquared(a, b *Dot) float64 {
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	return dx*dx + dy*dy
}

// ApplyForce accumulates a force into the dot's velocity:
// vel += dir * strength. No implicit clamping; callers enforce speed caps.
func ApplyForce(d *Dot, dir geometry.Vector2D, strength float64) {
	d.Vel = d.Vel.Add(dir.Mul(strength))
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FixOutOfBounds resolves wall contact. If the dot's edge crosses an arena
// wall the relevant velocity component is reflected and scaled by damping
// (0 < damping < 1, energy loss on bounce) and the position is clamped back
// inside. Axes are checked independently so corner contact resolves on both.
func FixOutOfBounds(d *Dot, width, height, damping float64) {
	if d.Pos.X-d.Size < 0 {
		d.Pos.X = d.Size
		d.Vel.X = -d.Vel.X * damping
	} else if d.Pos.X+d.Size > width {
		d.Pos.X = width - d.Size
		d.Vel.X = -d.Vel.X * damping
	}

	if d.Pos.Y-d.Size < 0 {
		d.Pos.Y = d.Size
		d.Vel.Y = -d.Vel.Y * damping
	} else if d.Pos.Y+d.Size > height {
		d.Pos.Y = height - d.Size
		d.Vel.Y = -d.Vel.Y * damping
	}
}

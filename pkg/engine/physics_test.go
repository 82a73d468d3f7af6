package engine

import (
	"math"
	"testing"

	"github.com/dotsbattle/go-dots-battle/pkg/geometry"
)

func TestDistSquared(t *testing.T) {
	a := dotAt(0, 0)
	b := dotAt(3, 4)
	if got := DistSquared(a, b); math.Abs(got-25) > 1e-12 {
		t.Errorf("expected 25, got %f", got)
	}
	if got := DistSquared(a, a); got != 0 {
		t.Errorf("expected 0 for the same dot, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestApplyForce_AccumulatesWithoutClamping(t *testing.T) {
	d := dotAt(0, 0)
	dir := geometry.Vector2D{X: 1, Y: 0}

	ApplyForce(d, dir, 2)
	ApplyForce(d, dir, 3)

	if d.Vel.X != 5 {
		t.Errorf("expected accumulated vx=5, got %f", d.Vel.X)
	}
	// No implicit cap: a large force goes through untouched.
	ApplyForce(d, dir, 1000)
	if d.Vel.X != 1005 {
		t.Errorf("ApplyForce must not clamp, got vx=%f", d.Vel.X)
	}
}

func TestFixOutOfBounds_LeftWallBounce(t *testing.T) {
	// Dot crossing the left wall with inward radius: position clamps back
	// and the velocity component flips, scaled by damping.
	d := dotAt(0, 50)
	d.Size = 5
	d.Pos.X = 4 // radius - 1
	d.Vel = geometry.Vector2D{X: -5, Y: 0}

	FixOutOfBounds(d, 100, 100, 0.8)

	if d.Pos.X < d.Size {
		t.Errorf("expected x >= radius after wall fix, got %f", d.Pos.X)
	}
	if d.Vel.X <= 0 {
		t.Errorf("expected vx flipped positive, got %f", d.Vel.X)
	}
	if math.Abs(d.Vel.X-4) > 1e-12 {
		t.Errorf("expected |vx| scaled by damping to 4, got %f", d.Vel.X)
	}
}

func TestFixOutOfBounds_CornerResolvesBothAxes(t *testing.T) {
	d := dotAt(98, 99)
	d.Size = 5
	d.Vel = geometry.Vector2D{X: 3, Y: 4}

	FixOutOfBounds(d, 100, 100, 0.5)

	if d.Pos.X != 95 || d.Pos.Y != 95 {
		t.Errorf("expected corner clamp to (95, 95), got %s", d.Pos)
	}
	if d.Vel.X != -1.5 || d.Vel.Y != -2 {
		t.Errorf("expected both components reflected and damped, got %s", d.Vel)
	}
}

func TestFixOutOfBounds_InsideUntouched(t *testing.T) {
	d := dotAt(50, 50)
	d.Size = 5
	d.Vel = geometry.Vector2D{X: 1, Y: -2}

	FixOutOfBounds(d, 100, 100, 0.8)

	if !d.Pos.Eq(geometry.Vector2D{X: 50, Y: 50}) || !d.Vel.Eq(geometry.Vector2D{X: 1, Y: -2}) {
		t.Errorf("in-bounds dot must be untouched, got pos=%s vel=%s", d.Pos, d.Vel)
	}
}

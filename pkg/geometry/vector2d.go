package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the threshold under which a float64 length is treated as zero.
const Epsilon = 1e-9

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are public because they are fundamental data, not internal state,
// which allows clean literal initialization: v := Vector2D{1, 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Methods use value receivers and return new values. This keeps vectors
// immutable and is efficient for a struct of two float64.

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// LenSqr calculates the squared magnitude of the vector.
// Faster than Len() as it avoids the square root. Use for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction together with the
// original length. A zero-length vector yields the zero vector and length 0
// instead of dividing by zero; callers treat that as "no direction".
func (v Vector2D) Normalize() (Vector2D, float64) {
	l := v.Len()
	if l < Epsilon {
		return Vector2D{}, 0
	}
	return v.Mul(1 / l), l
}

// Limit caps the magnitude of the vector at max, preserving direction.
func (v Vector2D) Limit(max float64) Vector2D {
	if max <= 0 {
		return Vector2D{}
	}
	lsq := v.LenSqr()
	if lsq <= max*max {
		return v
	}
	return v.Mul(max / math.Sqrt(lsq))
}

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromPolar creates a Vector2D from polar coordinates, theta in radians.
func FromPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}
	return Vector2D{X: x, Y: y}
}

// Eq checks if two vectors are approximately equal using Epsilon.
// This handles floating point inaccuracies.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

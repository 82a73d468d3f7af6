// Package engine implements the simulation core: a population of circular
// dots moving under pairwise short-range forces on a uniform spatial grid,
// with two interchangeable tick algorithms (repulsion, battle) driven by a
// single orchestrator.
package engine

import "github.com/dotsbattle/go-dots-battle/pkg/geometry"

// Dot is a single simulated particle. It is owned exclusively by the
// active mode's dot list: created at spawn, mutated every tick, gone when
// its mode is destroyed.
type Dot struct {
	Pos   geometry.Vector2D
	Vel   geometry.Vector2D
	Size  float64
	Group int
}

// SpawnFunc produces a fresh dot for the given group. The orchestrator
// supplies one to each mode; population-edit helpers take one directly.
type SpawnFunc func(group int) *Dot

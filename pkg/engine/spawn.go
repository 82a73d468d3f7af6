package engine

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/dotsbattle/go-dots-battle/pkg/geometry"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Spawner produces dots with a uniformly random in-bounds position, a size
// uniform in the controls' range, and a small starting velocity. Headings
// come from a 1D perlin walk instead of white noise, so dots spawned close
// together in time drift in loosely correlated directions, which reads as a
// swarm settling rather than static.
type Spawner struct {
	width, height float64
	rng           *rand.Rand
	noise         *perlin.Perlin
	t             float64
}

// NewSpawner creates a spawner for the given arena. The seed drives both
// the position rng and the heading noise.
func NewSpawner(width, height float64, seed int64) *Spawner {
	return &Spawner{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
		noise:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
	}
}

// Spawn returns a SpawnFunc bound to the given controls snapshot.
func (s *Spawner) Spawn(c Controls) SpawnFunc {
	return func(group int) *Dot {
		size := c.MinSize + s.rng.Float64()*(c.MaxSize-c.MinSize)
		s.t += 0.1
		heading := s.noise.Noise1D(s.t) * 2 * math.Pi
		speed := s.rng.Float64() * c.MaxSpeed * 0.25
		return &Dot{
			Pos: geometry.Vector2D{
				X: Clamp(s.rng.Float64()*s.width, size, s.width-size),
				Y: Clamp(s.rng.Float64()*s.height, size, s.height-size),
			},
			Vel:   geometry.FromPolar(speed, heading),
			Size:  size,
			Group: group,
		}
	}
}

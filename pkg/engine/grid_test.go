package engine

import (
	"math/rand"
	"testing"

	"github.com/dotsbattle/go-dots-battle/pkg/geometry"
)

func dotAt(x, y float64) *Dot {
	return &Dot{Pos: geometry.Vector2D{X: x, Y: y}, Size: 2}
}

func TestRecommendedCellSize(t *testing.T) {
	if got := RecommendedCellSize(1); got != 8 {
		t.Errorf("expected floor of 8 for tiny dots, got %f", got)
	}
	if got := RecommendedCellSize(6); got != 30 {
		t.Errorf("expected 30 for max size 6, got %f", got)
	}
}

func TestGrid_RebuildBuckets(t *testing.T) {
	// Cell size 100 over 1000x1000: dot coordinates map to known cells.
	g := NewGrid(1000, 1000, 100)

	dots := []*Dot{
		dotAt(50, 50),   // cell 0,0
		dotAt(150, 50),  // cell 1,0
		dotAt(50, 150),  // cell 0,1
		dotAt(250, 250), // cell 2,2
	}
	g.Rebuild(dots)

	contains := func(bucket []int, idx int) bool {
		for _, i := range bucket {
			if i == idx {
				return true
			}
		}
		return false
	}

	if !contains(g.cells[0*g.cols+0], 0) {
		t.Errorf("expected dot 0 in cell 0,0, got %v", g.cells[0])
	}
	if !contains(g.cells[0*g.cols+1], 1) {
		t.Errorf("expected dot 1 in cell 1,0, got %v", g.cells[1])
	}
	if !contains(g.cells[1*g.cols+0], 2) {
		t.Errorf("expected dot 2 in cell 0,1")
	}
	if !contains(g.cells[2*g.cols+2], 3) {
		t.Errorf("expected dot 3 in cell 2,2")
	}
	if contains(g.cells[0], 1) {
		t.Error("did not expect dot 1 in cell 0,0")
	}
}

func TestGrid_EveryDotInExactlyOneBucket(t *testing.T) {
	g := NewGrid(500, 500, 25)
	rng := rand.New(rand.NewSource(7))
	dots := make([]*Dot, 200)
	for i := range dots {
		// Includes transiently out-of-bounds positions.
		dots[i] = dotAt(rng.Float64()*700-100, rng.Float64()*700-100)
	}
	g.Rebuild(dots)

	seen := make(map[int]int)
	for _, bucket := range g.cells {
		for _, i := range bucket {
			seen[i]++
		}
	}
	if len(seen) != len(dots) {
		t.Fatalf("expected %d bucketed dots, got %d", len(dots), len(seen))
	}
	for i, n := range seen {
		if n != 1 {
			t.Errorf("dot %d appears in %d buckets, expected exactly 1", i, n)
		}
	}
}

func TestGrid_OutOfBoundsClampsToEdgeCell(t *testing.T) {
	g := NewGrid(100, 100, 10)
	dots := []*Dot{dotAt(-50, -50), dotAt(1e6, 1e6)}
	g.Rebuild(dots)

	first := g.cells[0]
	last := g.cells[len(g.cells)-1]
	if len(first) != 1 || first[0] != 0 {
		t.Errorf("expected negative position clamped into cell 0,0, got %v", first)
	}
	if len(last) != 1 || last[0] != 1 {
		t.Errorf("expected far position clamped into the last cell, got %v", last)
	}
}

func TestGrid_ForEachWithNeighbors_3x3Block(t *testing.T) {
	// Nine dots, one per cell in a 3x3 block: the center dot must see
	// exactly the other eight, regardless of distance.
	g := NewGrid(100, 100, 10)
	var dots []*Dot
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			dots = append(dots, dotAt(float64(col)*10+5, float64(row)*10+5))
		}
	}
	center := dots[4] // cell 1,1
	g.Rebuild(dots)

	g.ForEachWithNeighbors(func(d *Dot, neighbors []*Dot) {
		if d != center {
			return
		}
		if len(neighbors) != 8 {
			t.Errorf("expected 8 neighbors for the center dot, got %d", len(neighbors))
		}
		for _, n := range neighbors {
			if n == center {
				t.Error("a dot must not appear in its own neighbor list")
			}
		}
	})
}

func TestGrid_ForEachWithNeighbors_ExcludesFarCells(t *testing.T) {
	g := NewGrid(1000, 1000, 100)
	near := dotAt(150, 150) // cell 1,1
	adj := dotAt(50, 50)    // cell 0,0 - adjacent
	far := dotAt(350, 350)  // cell 3,3 - outside the 3x3 block
	g.Rebuild([]*Dot{near, adj, far})

	g.ForEachWithNeighbors(func(d *Dot, neighbors []*Dot) {
		if d != near {
			return
		}
		foundAdj, foundFar := false, false
		for _, n := range neighbors {
			if n == adj {
				foundAdj = true
			}
			if n == far {
				foundFar = true
			}
		}
		if !foundAdj {
			t.Error("expected the adjacent-cell dot in the neighbor list")
		}
		if foundFar {
			t.Error("should not see a dot two cells away")
		}
	})
}

func TestGrid_ForEachPair_VisitsEachPairOncePerSweep(t *testing.T) {
	g := NewGrid(100, 100, 10)
	dots := []*Dot{dotAt(5, 5), dotAt(7, 7), dotAt(12, 5)}
	g.Rebuild(dots)
	g.ResetPairs()

	visits := make(map[pairKey]int)
	g.ForEachPair(func(a, b *Dot) bool {
		var ia, ib int
		for i, d := range dots {
			if d == a {
				ia = i
			}
			if d == b {
				ib = i
			}
		}
		if ia > ib {
			ia, ib = ib, ia
		}
		visits[pairKey{ia, ib}]++
		return false
	})

	if len(visits) != 3 {
		t.Errorf("expected 3 distinct pairs, got %d: %v", len(visits), visits)
	}
	for k, n := range visits {
		if n != 1 {
			t.Errorf("pair %v visited %d times in one sweep, expected 1", k, n)
		}
	}
}

func TestGrid_ForEachPair_ResolvedSkippedOnSecondSweep(t *testing.T) {
	g := NewGrid(100, 100, 10)
	dots := []*Dot{dotAt(5, 5), dotAt(7, 7)}
	g.Rebuild(dots)
	g.ResetPairs()

	calls := 0
	resolve := func(a, b *Dot) bool {
		calls++
		return true
	}
	g.ForEachPair(resolve)
	g.ForEachPair(resolve)
	if calls != 1 {
		t.Errorf("resolved pair re-decided within one tick: %d calls, expected 1", calls)
	}

	// Unresolved pairs stay eligible within the same tick.
	g.ResetPairs()
	calls = 0
	g.ForEachPair(func(a, b *Dot) bool {
		calls++
		return false
	})
	g.ForEachPair(func(a, b *Dot) bool {
		calls++
		return false
	})
	if calls != 2 {
		t.Errorf("unresolved pair should be revisited, got %d calls", calls)
	}

	// ResetPairs clears the relation for the next tick.
	g.ResetPairs()
	calls = 0
	g.ForEachPair(resolve)
	if calls != 1 {
		t.Errorf("expected pair eligible again after ResetPairs, got %d calls", calls)
	}
}

func TestGrid_ClearIdempotent(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Rebuild([]*Dot{dotAt(5, 5), dotAt(50, 50)})

	g.Clear()
	g.Clear() // second call must be a no-op, not a panic

	for i, bucket := range g.cells {
		if len(bucket) != 0 {
			t.Errorf("cell %d not empty after Clear: %v", i, bucket)
		}
	}
	g.ForEachWithNeighbors(func(d *Dot, neighbors []*Dot) {
		t.Error("no dots should be visited after Clear")
	})
}

func BenchmarkGrid_Rebuild(b *testing.B) {
	g := NewGrid(1000, 1000, 30)
	rng := rand.New(rand.NewSource(1))
	dots := make([]*Dot, 1000)
	for i := range dots {
		dots[i] = dotAt(rng.Float64()*1000, rng.Float64()*1000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Rebuild(dots)
	}
}

func BenchmarkGrid_ForEachWithNeighbors(b *testing.B) {
	g := NewGrid(1000, 1000, 30)
	rng := rand.New(rand.NewSource(1))
	dots := make([]*Dot, 1000)
	for i := range dots {
		dots[i] = dotAt(rng.Float64()*1000, rng.Float64()*1000)
	}
	g.Rebuild(dots)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ForEachWithNeighbors(func(d *Dot, neighbors []*Dot) {})
	}
}

package engine

import "math"

// pairKey identifies an unordered dot pair by slice indices, a < b.
// Index-based keys stay stable within a tick even though dots are stored
// in a contiguous slice.
type pairKey struct {
	a, b int
}

// Grid is a uniform spatial grid over the arena. It is rebuilt from the
// owning mode's dot list every tick and only answers neighbor queries within
// that same tick. Buckets are stored row-major and keep their capacity
// across rebuilds, so steady-state rebuilds allocate almost nothing.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cols, rows  int
	cells       [][]int // cells[row*cols+col] = dot indices
	dots        []*Dot  // list the current tick was built from
	resolved    map[pairKey]struct{}
	scratch     []*Dot // reusable neighbor buffer
}

// RecommendedCellSize returns a grid cell size large enough that any two
// interacting dots are guaranteed to be found via the 3x3 neighborhood.
func RecommendedCellSize(maxDotSize float64) float64 {
	return math.Max(8, maxDotSize*5)
}

// NewGrid creates a grid covering a width x height arena with square cells
// of the given size. Degenerate inputs fall back to a single cell.
func NewGrid(width, height, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = RecommendedCellSize(0)
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
		resolved:    make(map[pairKey]struct{}),
		scratch:     make([]*Dot, 0, 64),
	}
}

// CellSize returns the configured cell size.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Clear empties all buckets, keeping their capacity. Safe to call twice.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.dots = nil
}

// cellIndex maps a position to a bucket, clamping out-of-range coordinates
// into the nearest valid cell. A dot exactly on a boundary belongs to the
// cell its floored coordinate selects.
func (g *Grid) cellIndex(x, y float64) int {
	col := int(math.Floor(x * g.invCellSize))
	row := int(math.Floor(y * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return row*g.cols + col
}

// Insert buckets the dot at index i by its current position.
func (g *Grid) Insert(i int, d *Dot) {
	idx := g.cellIndex(d.Pos.X, d.Pos.Y)
	g.cells[idx] = append(g.cells[idx], i)
}

// Rebuild clears the grid and inserts every dot of the list, which becomes
// the backing list for queries until the next Rebuild or Clear.
func (g *Grid) Rebuild(dots []*Dot) {
	g.Clear()
	g.dots = dots
	for i, d := range dots {
		g.Insert(i, d)
	}
}

// ResetPairs clears the per-tick "already resolved" pair relation without
// reallocating the set. Call at the start of every tick.
func (g *Grid) ResetPairs() {
	clear(g.resolved)
}

// neighborCells iterates the 3x3 cell block around (col, row), clipped to
// the grid, invoking fn with each bucket.
func (g *Grid) neighborCells(idx int, fn func(bucket []int)) {
	col := idx % g.cols
	row := idx / g.cols
	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			fn(g.cells[r*g.cols+c])
		}
	}
}

// ForEachWithNeighbors invokes cb once per dot with every other dot found in
// its own cell plus the 8 adjacent cells, regardless of exact distance.
// Callers still distance-filter; the grid only bounds the candidate count to
// local density. The neighbor slice is reused between invocations and must
// not be retained.
func (g *Grid) ForEachWithNeighbors(cb func(d *Dot, neighbors []*Dot)) {
	for i, d := range g.dots {
		g.scratch = g.scratch[:0]
		idx := g.cellIndex(d.Pos.X, d.Pos.Y)
		g.neighborCells(idx, func(bucket []int) {
			for _, j := range bucket {
				if j == i {
					continue
				}
				g.scratch = append(g.scratch, g.dots[j])
			}
		})
		cb(d, g.scratch)
	}
}

// ForEachPair visits each unordered pair of dots sharing a cell or adjacent
// cells exactly once per sweep. cb returns whether the pair is resolved;
// resolved pairs are skipped for the remainder of the tick even across a
// second sweep, so overlapping neighborhoods never re-decide a collision.
func (g *Grid) ForEachPair(cb func(a, b *Dot) bool) {
	for i, d := range g.dots {
		idx := g.cellIndex(d.Pos.X, d.Pos.Y)
		g.neighborCells(idx, func(bucket []int) {
			for _, j := range bucket {
				// Process each unordered pair from the lower index only.
				if j <= i {
					continue
				}
				key := pairKey{a: i, b: j}
				if _, done := g.resolved[key]; done {
					continue
				}
				if cb(d, g.dots[j]) {
					g.resolved[key] = struct{}{}
				}
			}
		})
	}
}

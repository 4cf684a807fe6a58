// Package grid implements the square occupancy map: validated construction,
// clustered stochastic obstacle generation, and lock-guarded queries.
package grid

import (
	"fmt"
	"math/rand"
)

// orthOffsets enumerates the four orthogonal neighbor directions:
// up, down, left, right. Diagonal movement is intentionally absent.
var orthOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// clusterChance is the probability gate used twice during generation:
// once to decide whether a placed obstacle seeds a cluster, and once per
// orthogonal neighbor to decide whether it joins the cluster.
const clusterChance = 0.5

// percentScale converts a fraction to a percentage.
const percentScale = 100.0

// New constructs an N×N occupancy grid and populates obstacles to
// approximate the requested density, clustering blocked cells to resemble
// shelving units. The two conventional corner cells (0,0) and (N-1,N-1)
// are forced free after generation.
//
// Returns ErrBadSize if size < 1, ErrBadDensity if density is outside
// [0,1]. No partial grid is produced on error.
//
// Complexity: O(N²) expected time, O(N²) memory.
func New(size int, density float64, opts ...Option) (*Grid, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}

	// 2) Build and apply Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate the occupancy map (all cells free).
	cells := make([][]bool, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]bool, size)
	}
	g := &Grid{size: size, cells: cells}

	// 4) Populate obstacles from the injected source.
	g.generateObstacles(cfg.Rand, density)

	// 5) The conventional default start and exit corners stay traversable.
	g.free(Position{Row: 0, Col: 0})
	g.free(Position{Row: size - 1, Col: size - 1})

	return g, nil
}

// NewFromCells constructs a Grid from a prebuilt N×N occupancy map
// (true = blocked). The input is deep-copied to ensure immutability.
// Returns ErrBadSize for an empty map and ErrNotSquare if any row length
// differs from the row count. Complexity: O(N²).
func NewFromCells(cells [][]bool) (*Grid, error) {
	size := len(cells)
	if size < 1 {
		return nil, ErrBadSize
	}

	g := &Grid{size: size, cells: make([][]bool, size)}
	for r, row := range cells {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), size)
		}
		g.cells[r] = make([]bool, size)
		copy(g.cells[r], row)
		for _, blocked := range row {
			if blocked {
				g.blocked++
			}
		}
	}

	return g, nil
}

// generateObstacles blocks cells until the target count ⌊N²·density⌋ is
// reached or no free cell remains. Each placement may seed a cluster:
// with probability clusterChance, every orthogonal neighbor independently
// joins with probability clusterChance, subject to bounds and quota.
//
// Runs during construction only, before the grid escapes to callers,
// so no locking is needed here.
func (g *Grid) generateObstacles(rng *rand.Rand, density float64) {
	total := g.size * g.size
	target := int(float64(total) * density)

	for g.blocked < target && g.blocked < total {
		p := Position{Row: rng.Intn(g.size), Col: rng.Intn(g.size)}
		if g.cells[p.Row][p.Col] {
			continue // already blocked; redraw
		}
		g.cells[p.Row][p.Col] = true
		g.blocked++

		// Cluster growth around the freshly placed obstacle.
		if g.blocked < target && rng.Float64() > clusterChance {
			for _, d := range orthOffsets {
				n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
				if !g.InBounds(n) || g.cells[n.Row][n.Col] || g.blocked >= target {
					continue
				}
				if rng.Float64() > clusterChance {
					g.cells[n.Row][n.Col] = true
					g.blocked++
				}
			}
		}
	}
}

// free unblocks p without locking; construction-time helper.
func (g *Grid) free(p Position) {
	if g.cells[p.Row][p.Col] {
		g.cells[p.Row][p.Col] = false
		g.blocked--
	}
}

// Size returns the side length N. Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies within [0,N)×[0,N).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// IsValid reports whether p is both within bounds and free of obstacles.
// This is the predicate search engines use to gate neighbor exploration;
// out-of-bounds coordinates yield false, never an error.
// Complexity: O(1).
func (g *Grid) IsValid(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.cells[p.Row][p.Col]
}

// Clear marks the cell at p free. Out-of-bounds positions are a silent
// no-op; callers wanting a signal should bounds-check via InBounds first.
// Clear takes the write lock and must not race an in-flight search.
// Complexity: O(1).
func (g *Grid) Clear(p Position) {
	if !g.InBounds(p) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cells[p.Row][p.Col] {
		g.cells[p.Row][p.Col] = false
		g.blocked--
	}
}

// Neighbors returns the orthogonal neighbors of p that satisfy IsValid,
// in up/down/left/right order. At most four positions are returned.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(orthOffsets))
	for _, d := range orthOffsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.IsValid(n) {
			out = append(out, n)
		}
	}

	return out
}

// Stats returns cell counts and the realized obstacle percentage.
// Complexity: O(1).
func (g *Grid) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := g.size * g.size

	return Stats{
		Size:               g.size,
		TotalCells:         total,
		ObstacleCount:      g.blocked,
		FreeCount:          total - g.blocked,
		ObstaclePercentage: float64(g.blocked) / float64(total) * percentScale,
	}
}

// Snapshot returns a deep copy of the occupancy map (true = blocked),
// suitable for renderers and other external collaborators. Mutating the
// copy never affects the grid. Complexity: O(N²).
func (g *Grid) Snapshot() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]bool, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]bool, g.size)
		copy(out[r], g.cells[r])
	}

	return out
}

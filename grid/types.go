// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSize indicates a non-positive grid side length.
	ErrBadSize = errors.New("grid: size must be a positive integer")
	// ErrBadDensity indicates an obstacle density outside [0,1].
	ErrBadDensity = errors.New("grid: density must lie in [0,1]")
	// ErrNotSquare indicates a prebuilt occupancy map with ragged or
	// non-square rows.
	ErrNotSquare = errors.New("grid: occupancy map must be square")
)

// defaultSeed is the fixed "zero" seed used when no random source is
// injected. The value is arbitrary but stable to keep defaults reproducible.
const defaultSeed int64 = 1

// Position is an immutable (row, column) coordinate pair.
// Equality is purely structural; Position is comparable and map-key safe.
type Position struct {
	Row, Col int
}

// ManhattanTo returns the L1 (city-block) distance between p and q:
// |Δrow| + |Δcol|. Complexity: O(1).
func (p Position) ManhattanTo(q Position) int {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Stats summarizes a grid layout.
type Stats struct {
	Size               int     // side length N
	TotalCells         int     // N×N
	ObstacleCount      int     // blocked cells
	FreeCount          int     // traversable cells
	ObstaclePercentage float64 // ObstacleCount / TotalCells × 100
}

// Grid is a square occupancy map. Cells are addressable only within
// [0,N)×[0,N); true in cells marks an obstacle.
//
// After construction the only mutation path is Clear, guarded by mu;
// searches never mutate a Grid.
type Grid struct {
	size    int
	cells   [][]bool // cells[row][col]; true = blocked
	blocked int      // maintained by generation and Clear
	mu      sync.RWMutex
}

// Options holds tunable construction parameters.
//
// Rand – random source consumed by obstacle generation. math/rand.Rand is
// not goroutine-safe; do not share one source across concurrent New calls.
type Options struct {
	Rand *rand.Rand
}

// Option is a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns Options with a deterministic default source
// (fixed seed), so New without options is reproducible.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(defaultSeed)),
	}
}

// WithRand injects a custom random source for obstacle generation.
// A nil source is ignored and the default deterministic source is kept.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh deterministic source for obstacle generation.
// Seed 0 selects the library default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(s))
	}
}

// Package astar defines sentinel errors and configuration options
// for the A* search over gridpath occupancy grids.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartInvalid indicates the start cell is out of bounds or blocked.
	ErrStartInvalid = errors.New("astar: start position is not a valid free cell")

	// ErrGoalInvalid indicates the goal cell is out of bounds or blocked.
	ErrGoalInvalid = errors.New("astar: goal position is not a valid free cell")

	// ErrNoPath indicates the frontier emptied without reaching the goal;
	// no route exists under the current obstacles.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrEmptyPath indicates PathMetrics was given an empty path.
	ErrEmptyPath = errors.New("astar: path is empty")
)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// OnExpand is called once per finalized cell, in expansion order,
	// immediately before its neighbors are relaxed. Presentation layers
	// use it to observe the search without touching its internals.
	OnExpand func(p grid.Position)
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Position) {},
	}
}

// WithOnExpand registers a callback to run on every cell expansion.
// A nil callback is ignored.
func WithOnExpand(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Metrics summarizes the quality of a returned path.
type Metrics struct {
	Steps      int     // edges traversed: len(path) - 1
	Manhattan  int     // straight-line lower bound between the endpoints
	Efficiency float64 // Manhattan / max(1, Steps) × 100
}

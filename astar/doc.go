// Package astar provides an optimal best-first shortest-path search (A*)
// over gridpath occupancy grids, plus path quality metrics.
//
// Overview:
//
//   - FindPath computes a minimum-step orthogonal path between two grid
//     cells, or reports that none exists.
//   - Every step costs exactly 1; movement is 4-connected (no diagonals).
//   - The heuristic is the Manhattan distance to the goal. It is admissible
//     and consistent on a unit-cost 4-connected grid, so the first time the
//     goal is finalized its cost-from-start is optimal and the search stops.
//   - Frontier entries are ordered by (f = g + h, insertion sequence).
//     The monotonically increasing sequence number makes tie-breaking
//     deterministic: given the same grid and query, FindPath always returns
//     the identical path.
//   - Duplicate frontier entries use the lazy decrease-key strategy:
//     a cell may be re-pushed when its cost improves, and stale entries are
//     ignored when popped after the cell was finalized.
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N grid
//   - Each cell is finalized at most once: up to N² pops.
//   - Each relaxation may push one entry: up to 4·N² pushes.
//   - Each heap Push/Pop costs O(log N²).
//   - Space: O(N²) for cost, predecessor, and closed-set maps.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      a nil *grid.Grid was passed to FindPath.
//   - ErrStartInvalid: start is out of bounds or sits on an obstacle.
//   - ErrGoalInvalid:  goal is out of bounds or sits on an obstacle.
//   - ErrNoPath:       the frontier emptied without reaching the goal.
//   - ErrEmptyPath:    PathMetrics received an empty path.
//
// A successful FindPath never returns an empty path: start==goal yields the
// single-cell path, and an unreachable goal yields ErrNoPath. "No path" is
// therefore never conflated with the trivial path.
//
// Thread safety:
//
//   - Each call owns its frontier, cost, and predecessor structures
//     exclusively; no state is shared across calls. Concurrent FindPath
//     calls over the same unchanging Grid are safe by construction.
//     Synchronize grid.Clear externally (the Grid's own write lock covers
//     the cell flip, but a clear mid-search changes what the search sees).
//
// See also:
//
//   - grid.Grid: occupancy map construction, clearing, and stats.
package astar
